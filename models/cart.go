package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SelectionEntry is a user-scoped reference to a menu item. The same shape
// backs both the carts and favorites collections; only carts enforce the
// one-entry-per-(email, menuId) rule.
type SelectionEntry struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email       string             `json:"email" bson:"email"`
	MenuID      string             `json:"menuId" bson:"menuId"`
	SellerEmail string             `json:"sellerEmail" bson:"sellerEmail"`
	Name        string             `json:"name" bson:"name"`
	Price       float64            `json:"price" bson:"price"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Count       int                `json:"count" bson:"count"`
}
