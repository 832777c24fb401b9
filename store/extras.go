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
)

func (s *Mongo) GetAddress(ctx context.Context, email string) (*models.Address, error) {
	var addr models.Address
	err := s.col(colAddresses).FindOne(ctx, bson.M{"email": email}).Decode(&addr)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get address: %w", err)
	}
	return &addr, nil
}

func (s *Mongo) SaveAddress(ctx context.Context, addr models.Address) (*mongo.InsertOneResult, error) {
	res, err := s.col(colAddresses).InsertOne(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("failed to save address: %w", err)
	}
	return res, nil
}

func (s *Mongo) ReplaceAddress(ctx context.Context, email string, addr models.Address) (*mongo.UpdateResult, error) {
	addr.ID = primitive.NilObjectID
	res, err := s.col(colAddresses).ReplaceOne(ctx, bson.M{"email": email}, addr)
	if err != nil {
		return nil, fmt.Errorf("failed to replace address: %w", err)
	}
	return res, nil
}

func (s *Mongo) UpdateAddressEmail(ctx context.Context, email, newEmail string) (*mongo.UpdateResult, error) {
	res, err := s.col(colAddresses).UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"newEmail": newEmail}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update address email: %w", err)
	}
	return res, nil
}

func (s *Mongo) ListReviews(ctx context.Context) ([]map[string]any, error) {
	return s.listFreeform(ctx, colReviews)
}

func (s *Mongo) ListFAQs(ctx context.Context) ([]map[string]any, error) {
	return s.listFreeform(ctx, colFAQs)
}

// listFreeform reads a whole collection of schemaless documents.
func (s *Mongo) listFreeform(ctx context.Context, col string) ([]map[string]any, error) {
	cursor, err := s.col(col).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", col, err)
	}
	var docs []map[string]any
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", col, err)
	}
	return docs, nil
}

func (s *Mongo) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	cursor, err := s.col(colCoupons).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}
	var coupons []models.Coupon
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, fmt.Errorf("failed to decode coupons: %w", err)
	}
	return coupons, nil
}

func (s *Mongo) CreateCoupon(ctx context.Context, c models.Coupon) (*mongo.InsertOneResult, error) {
	res, err := s.col(colCoupons).InsertOne(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create coupon: %w", err)
	}
	return res, nil
}

func (s *Mongo) EditCoupon(ctx context.Context, id string, patch map[string]any) (*mongo.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := s.col(colCoupons).UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": patch},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to edit coupon: %w", err)
	}
	return res, nil
}
