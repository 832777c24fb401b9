package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tastytwist-api/models"
)

func (s *Mongo) AddSelection(ctx context.Context, entry models.SelectionEntry, dest Destination) (*mongo.InsertOneResult, error) {
	if dest == DestCart {
		// One cart entry per (buyer, menu item). Favorites are unrestricted.
		err := s.col(colCarts).FindOne(ctx, bson.M{
			"email":  entry.Email,
			"menuId": entry.MenuID,
		}).Err()
		switch {
		case err == nil:
			return nil, ErrDuplicateCartEntry
		case !errors.Is(err, mongo.ErrNoDocuments):
			return nil, fmt.Errorf("failed to check for duplicate cart entry: %w", err)
		}
	}

	res, err := s.selection(dest).InsertOne(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to add selection: %w", err)
	}
	return res, nil
}

func (s *Mongo) ListSelections(ctx context.Context, email string, dest Destination) ([]models.SelectionEntry, error) {
	cursor, err := s.selection(dest).Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to list selections: %w", err)
	}
	var entries []models.SelectionEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode selections: %w", err)
	}
	return entries, nil
}

// ListSelectedByIDs hydrates a checkout summary from the cart entries about to
// be consumed by an order.
func (s *Mongo) ListSelectedByIDs(ctx context.Context, ids []string) ([]models.SelectionEntry, error) {
	oids, err := objectIDs(ids)
	if err != nil {
		return nil, err
	}
	cursor, err := s.col(colCarts).Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("failed to select cart entries: %w", err)
	}
	var entries []models.SelectionEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode cart entries: %w", err)
	}
	return entries, nil
}

func (s *Mongo) UpdateCartCount(ctx context.Context, id string, count int) (*mongo.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := s.col(colCarts).UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"count": count}},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update cart count: %w", err)
	}
	return res, nil
}

// MoveSelection shifts one entry between the carts and favorites collections.
// Delete and insert run in one transaction so the entry cannot be lost between
// the two writes.
func (s *Mongo) MoveSelection(ctx context.Context, id string, from Destination, payload models.SelectionEntry) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	_, err = s.withTxn(ctx, func(sc mongo.SessionContext) (any, error) {
		res, err := s.selection(from).DeleteOne(sc, bson.M{"_id": oid})
		if err != nil {
			return nil, fmt.Errorf("failed to remove source entry: %w", err)
		}
		if res.DeletedCount == 0 {
			return nil, ErrNotFound
		}
		payload.ID = oid
		if _, err := s.selection(from.Opposite()).InsertOne(sc, payload); err != nil {
			return nil, fmt.Errorf("failed to insert moved entry: %w", err)
		}
		return nil, nil
	})
	return err
}

func (s *Mongo) DeleteSelection(ctx context.Context, id string, dest Destination) (*mongo.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := s.selection(dest).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("failed to delete selection: %w", err)
	}
	return res, nil
}
