package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tastytwist-api/models"
)

func (s *Mongo) ListFeedback(ctx context.Context, f FeedbackFilter) ([]models.Feedback, error) {
	var (
		query bson.M
		opts  *options.FindOptions
	)
	switch f.Mode() {
	case FeedbackBySeller:
		query = bson.M{"sellerEmail": f.SellerEmail}
	case FeedbackByMenu:
		query = bson.M{"menuId": f.MenuID}
	default:
		query = bson.M{}
		opts = options.Find().SetSkip(f.Page * f.Size).SetLimit(f.Size)
	}

	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = s.col(colFeedbacks).Find(ctx, query, opts)
	} else {
		cursor, err = s.col(colFeedbacks).Find(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	var feedbacks []models.Feedback
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, fmt.Errorf("failed to decode feedback: %w", err)
	}
	return feedbacks, nil
}

// RecordFeedback inserts the feedback and flips the source order's isFeedback
// flag in one transaction.
func (s *Mongo) RecordFeedback(ctx context.Context, orderID string, fb models.Feedback) (*mongo.InsertOneResult, error) {
	oid, err := objectID(orderID)
	if err != nil {
		return nil, err
	}
	res, err := s.withTxn(ctx, func(sc mongo.SessionContext) (any, error) {
		inserted, err := s.col(colFeedbacks).InsertOne(sc, fb)
		if err != nil {
			return nil, fmt.Errorf("failed to insert feedback: %w", err)
		}
		_, err = s.col(colOrders).UpdateOne(sc,
			bson.M{"_id": oid},
			bson.M{"$set": bson.M{"isFeedback": true}},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to flag order feedback: %w", err)
		}
		return inserted, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*mongo.InsertOneResult), nil
}

func (s *Mongo) DeleteFeedback(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := s.col(colFeedbacks).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("failed to delete feedback: %w", err)
	}
	return res, nil
}

func (s *Mongo) SellerStats(ctx context.Context, email string) (*models.SellerStats, error) {
	stats := &models.SellerStats{}
	counts := []struct {
		col   string
		query bson.M
		out   *int64
	}{
		{colOrders, bson.M{"sellerEmail": email, "status": models.StatusDelivered}, &stats.Delivered},
		{colOrders, bson.M{"sellerEmail": email, "status": models.StatusCancelled}, &stats.Cancelled},
		{colMenu, bson.M{"email": email}, &stats.MenuItems},
		{colFeedbacks, bson.M{"sellerEmail": email}, &stats.Feedbacks},
		{colUsers, bson.M{}, &stats.Users},
	}
	for _, c := range counts {
		n, err := s.col(c.col).CountDocuments(ctx, c.query)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.col, err)
		}
		*c.out = n
	}

	// Revenue over delivered orders; stays zero when none matched.
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"sellerEmail": email, "status": models.StatusDelivered}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "totalRevenue": bson.M{"$sum": "$total"}}}},
	}
	cursor, err := s.col(colOrders).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	var revenue []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cursor.All(ctx, &revenue); err != nil {
		return nil, fmt.Errorf("failed to decode revenue: %w", err)
	}
	if len(revenue) > 0 {
		stats.TotalRevenue = revenue[0].TotalRevenue
	}
	return stats, nil
}

// OrderStatsByCategory expands every delivered line item of the seller, joins
// it back to its menu document and groups by category. Categories without a
// matched delivery simply do not appear.
func (s *Mongo) OrderStatsByCategory(ctx context.Context, email string) ([]models.CategoryStat, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"sellerEmail": email, "status": models.StatusDelivered}}},
		{{Key: "$unwind", Value: "$cartItems"}},
		{{Key: "$addFields", Value: bson.M{"menuObjectId": bson.M{"$toObjectId": "$cartItems.menuId"}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         colMenu,
			"localField":   "menuObjectId",
			"foreignField": "_id",
			"as":           "menuDoc",
		}}},
		{{Key: "$unwind", Value: "$menuDoc"}},
		{{Key: "$group", Value: bson.M{
			"_id":      "$menuDoc.category",
			"quantity": bson.M{"$sum": 1},
			"revenue":  bson.M{"$sum": "$cartItems.price"},
		}}},
	}
	cursor, err := s.col(colOrders).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate category stats: %w", err)
	}
	var stats []models.CategoryStat
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("failed to decode category stats: %w", err)
	}
	return stats, nil
}
