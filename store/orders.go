package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tastytwist-api/models"
	"tastytwist-api/statemachine"
)

// orderProjection is the fixed shape returned by order listings.
var orderProjection = bson.D{
	{Key: "_id", Value: 1},
	{Key: "transactionId", Value: 1},
	{Key: "total", Value: 1},
	{Key: "orderId", Value: 1},
	{Key: "status", Value: 1},
	{Key: "date", Value: 1},
	{Key: "estimatedDate", Value: 1},
	{Key: "isFeedback", Value: 1},
	{Key: "cartItems.count", Value: 1},
	{Key: "cartItems.image", Value: 1},
	{Key: "cartItems.name", Value: 1},
	{Key: "cartItems.price", Value: 1},
	{Key: "cartItems.menuId", Value: 1},
	{Key: "cartItems.sellerEmail", Value: 1},
}

// PlaceOrder retires the consumed cart entries and persists the order snapshot
// in one transaction: either the order exists and the entries are gone, or
// nothing changed.
func (s *Mongo) PlaceOrder(ctx context.Context, order *models.Order, cartIDs []string) (*mongo.InsertOneResult, error) {
	oids, err := objectIDs(cartIDs)
	if err != nil {
		return nil, err
	}
	res, err := s.withTxn(ctx, func(sc mongo.SessionContext) (any, error) {
		if _, err := s.col(colCarts).DeleteMany(sc, bson.M{"_id": bson.M{"$in": oids}}); err != nil {
			return nil, fmt.Errorf("failed to consume cart entries: %w", err)
		}
		inserted, err := s.col(colOrders).InsertOne(sc, order)
		if err != nil {
			return nil, fmt.Errorf("failed to insert order: %w", err)
		}
		return inserted, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*mongo.InsertOneResult), nil
}

func (s *Mongo) ListOrders(ctx context.Context, email string, asSeller bool) ([]models.OrderSummary, error) {
	query := bson.M{"email": email}
	if asSeller {
		query = bson.M{"sellerEmail": email}
	}
	cursor, err := s.col(colOrders).Find(ctx, query, options.Find().SetProjection(orderProjection))
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	var orders []models.OrderSummary
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

// AdvanceStatus moves an order one step along the transition table. The stored
// status is authoritative; a caller-supplied claim is only checked against it
// so a stale client cannot force a skipped step.
func (s *Mongo) AdvanceStatus(ctx context.Context, id string, claimed models.OrderStatus) (models.OrderStatus, error) {
	oid, err := objectID(id)
	if err != nil {
		return "", err
	}

	var order models.Order
	if err := s.col(colOrders).FindOne(ctx, bson.M{"_id": oid}).Decode(&order); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to load order: %w", err)
	}
	if claimed != "" && claimed != order.Status {
		return "", ErrStaleStatus
	}

	next, err := statemachine.Next(order.Status)
	if err != nil {
		return "", err
	}
	// Compare-and-set: the update only matches while the status is still the
	// one that was read, so a concurrent cancellation cannot be overwritten.
	res, err := s.col(colOrders).UpdateOne(ctx,
		advanceFilter(oid, order.Status),
		bson.M{"$set": bson.M{"status": next}},
	)
	if err != nil {
		return "", fmt.Errorf("failed to advance order status: %w", err)
	}
	if res.MatchedCount == 0 {
		return "", ErrStaleStatus
	}
	return next, nil
}

func advanceFilter(oid primitive.ObjectID, current models.OrderStatus) bson.M {
	return bson.M{"_id": oid, "status": current}
}

// CancelWithFeedback cancels the order and records the seller's cancellation
// feedback in one transaction. The order stays in the collection with status
// cancelled so history is preserved.
func (s *Mongo) CancelWithFeedback(ctx context.Context, id string, fb models.Feedback) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	_, err = s.withTxn(ctx, func(sc mongo.SessionContext) (any, error) {
		var order models.Order
		if err := s.col(colOrders).FindOne(sc, bson.M{"_id": oid}).Decode(&order); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to load order: %w", err)
		}
		if !statemachine.CanCancel(order.Status) {
			return nil, statemachine.ErrInvalidTransition
		}

		fb.Cancel = true
		if _, err := s.col(colFeedbacks).InsertOne(sc, fb); err != nil {
			return nil, fmt.Errorf("failed to record cancellation feedback: %w", err)
		}
		_, err := s.col(colOrders).UpdateOne(sc,
			bson.M{"_id": oid},
			bson.M{"$set": bson.M{"status": models.StatusCancelled}},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to cancel order: %w", err)
		}
		return nil, nil
	})
	return err
}
