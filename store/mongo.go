package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names, pinned by the production database layout.
const (
	colUsers      = "users"
	colRestaurant = "restaurants"
	colRequested  = "requested-restaurants"
	colMenu       = "foodMenu"
	colCarts      = "carts"
	colFavorites  = "favorites"
	colOrders     = "orders"
	colFeedbacks  = "feedbacks"
	colReviews    = "reviews"
	colFAQs       = "faqs"
	colCoupons    = "coupons"
	colAddresses  = "users-address"
)

// Mongo implements every store interface on top of one database handle.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongo(client *mongo.Client, database string) *Mongo {
	return &Mongo{
		client: client,
		db:     client.Database(database),
	}
}

func (s *Mongo) col(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func (s *Mongo) selection(dest Destination) *mongo.Collection {
	if dest == DestFavorite {
		return s.col(colFavorites)
	}
	return s.col(colCarts)
}

// withTxn runs fn inside a Mongo transaction so multi-collection workflows
// appear fully applied or not at all.
func (s *Mongo) withTxn(ctx context.Context, fn func(sc mongo.SessionContext) (any, error)) (any, error) {
	session, err := s.client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	res, err := session.WithTransaction(ctx, fn)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.Join(ErrBadID, err)
	}
	return oid, nil
}

func objectIDs(ids []string) ([]primitive.ObjectID, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := objectID(id)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}
	return oids, nil
}
