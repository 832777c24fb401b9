package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Address holds one delivery address per user, keyed by email.
type Address struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email    string             `json:"email" bson:"email"`
	NewEmail string             `json:"newEmail,omitempty" bson:"newEmail,omitempty"`
	Name     string             `json:"name,omitempty" bson:"name,omitempty"`
	Phone    string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Street   string             `json:"street,omitempty" bson:"street,omitempty"`
	City     string             `json:"city,omitempty" bson:"city,omitempty"`
	Zip      string             `json:"zip,omitempty" bson:"zip,omitempty"`
	Country  string             `json:"country,omitempty" bson:"country,omitempty"`
}

type Coupon struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Code     string             `json:"code" bson:"code"`
	Discount float64            `json:"discount" bson:"discount"`
	Details  string             `json:"details,omitempty" bson:"details,omitempty"`
	Expiry   string             `json:"expiry,omitempty" bson:"expiry,omitempty"`
}
