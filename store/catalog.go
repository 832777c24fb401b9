package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tastytwist-api/models"
)

func (s *Mongo) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	cursor, err := s.col(colRestaurant).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	var restaurants []models.Restaurant
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, fmt.Errorf("failed to decode restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *Mongo) GetRestaurant(ctx context.Context, email string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.col(colRestaurant).FindOne(ctx, bson.M{"email": email}).Decode(&restaurant)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	return &restaurant, nil
}

// SubmitApplication stages the restaurant application and marks the applicant
// Pending in the same transaction.
func (s *Mongo) SubmitApplication(ctx context.Context, app models.RequestedRestaurant) (*mongo.InsertOneResult, error) {
	res, err := s.withTxn(ctx, func(sc mongo.SessionContext) (any, error) {
		inserted, err := s.col(colRequested).InsertOne(sc, app)
		if err != nil {
			return nil, fmt.Errorf("failed to stage application: %w", err)
		}
		_, err = s.col(colUsers).UpdateOne(sc,
			bson.M{"email": app.Email},
			bson.M{"$set": bson.M{"status": models.StatusPending}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to mark applicant pending: %w", err)
		}
		return inserted, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*mongo.InsertOneResult), nil
}

func (s *Mongo) UpdateRestaurant(ctx context.Context, id string, patch map[string]any) (*mongo.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := s.col(colRestaurant).UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": patch},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update restaurant: %w", err)
	}
	return res, nil
}

func (s *Mongo) ListMenu(ctx context.Context, email string, f MenuFilter) ([]models.MenuItem, error) {
	cursor, err := s.col(colMenu).Find(ctx, f.Query(email), options.Find().SetSort(f.Sort()))
	if err != nil {
		return nil, fmt.Errorf("failed to list menu: %w", err)
	}
	var items []models.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode menu items: %w", err)
	}
	return items, nil
}

func (s *Mongo) CreateMenuItem(ctx context.Context, item models.MenuItem) (*mongo.InsertOneResult, error) {
	res, err := s.col(colMenu).InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return res, nil
}

func (s *Mongo) EditMenuItem(ctx context.Context, id string, patch map[string]any) (*mongo.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := s.col(colMenu).UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": patch},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to edit menu item: %w", err)
	}
	return res, nil
}

func (s *Mongo) DeleteMenuItem(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := s.col(colMenu).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("failed to delete menu item: %w", err)
	}
	return res, nil
}
