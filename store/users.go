package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tastytwist-api/models"
)

func (s *Mongo) GetRole(ctx context.Context, email string) (models.RoleInfo, error) {
	var user models.User
	err := s.col(colUsers).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Unknown email means no elevated role, not an error.
			return models.RoleInfo{}, nil
		}
		return models.RoleInfo{}, fmt.Errorf("failed to look up role: %w", err)
	}
	return models.RoleInfo{Role: user.Role, Status: user.Status, TimeStamp: user.TimeStamp}, nil
}

func (s *Mongo) UpsertUser(ctx context.Context, email string, patch models.User) (*mongo.UpdateResult, *models.User, error) {
	users := s.col(colUsers)
	query := bson.M{"email": email}
	opts := options.Update().SetUpsert(true)

	var existing models.User
	err := users.FindOne(ctx, query).Decode(&existing)
	switch {
	case err == nil:
		if patch.Status == models.StatusRequested {
			// A seller application only touches the status field so the
			// partial payload cannot clobber the stored profile.
			res, err := users.UpdateOne(ctx, query, bson.M{"$set": bson.M{"status": patch.Status}}, opts)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to update user status: %w", err)
			}
			return res, nil, nil
		}
		return nil, &existing, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		patch.Email = email
		patch.TimeStamp = time.Now().UnixMilli()
		res, err := users.UpdateOne(ctx, query, bson.M{"$set": patch}, opts)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to save user: %w", err)
		}
		return res, nil, nil
	default:
		return nil, nil, fmt.Errorf("failed to check existing user: %w", err)
	}
}

func (s *Mongo) SetStatus(ctx context.Context, email string, status models.UserStatus) (*mongo.UpdateResult, error) {
	res, err := s.col(colUsers).UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"status": status}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set user status: %w", err)
	}
	return res, nil
}

func (s *Mongo) PromoteToSeller(ctx context.Context, email string) error {
	_, err := s.withTxn(ctx, func(sc mongo.SessionContext) (any, error) {
		var app models.RequestedRestaurant
		if err := s.col(colRequested).FindOne(sc, bson.M{"email": email}).Decode(&app); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to load pending request: %w", err)
		}

		restaurant := models.Restaurant{
			Email:       app.Email,
			Name:        app.Name,
			Address:     app.Address,
			Phone:       app.Phone,
			Image:       app.Image,
			Description: app.Description,
			Extra:       app.Extra,
		}
		if _, err := s.col(colRestaurant).InsertOne(sc, restaurant); err != nil {
			return nil, fmt.Errorf("failed to create restaurant: %w", err)
		}
		if _, err := s.col(colRequested).DeleteOne(sc, bson.M{"_id": app.ID}); err != nil {
			return nil, fmt.Errorf("failed to delete pending request: %w", err)
		}
		_, err := s.col(colUsers).UpdateOne(sc,
			bson.M{"email": email},
			bson.M{"$set": bson.M{"role": models.RoleSeller}, "$unset": bson.M{"status": ""}},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to promote user: %w", err)
		}
		return nil, nil
	})
	return err
}

func (s *Mongo) RejectApplication(ctx context.Context, email string) error {
	_, err := s.withTxn(ctx, func(sc mongo.SessionContext) (any, error) {
		if _, err := s.col(colRequested).DeleteOne(sc, bson.M{"email": email}); err != nil {
			return nil, fmt.Errorf("failed to delete pending request: %w", err)
		}
		_, err := s.col(colUsers).UpdateOne(sc,
			bson.M{"email": email},
			bson.M{"$set": bson.M{"status": models.StatusCanceled}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to mark application canceled: %w", err)
		}
		return nil, nil
	})
	return err
}

func (s *Mongo) ListSellerRequests(ctx context.Context) ([]models.RequestedRestaurant, error) {
	cursor, err := s.col(colRequested).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list seller requests: %w", err)
	}
	var requests []models.RequestedRestaurant
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode seller requests: %w", err)
	}
	return requests, nil
}
