package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Feedback is either a post-delivery review (rating + details) or a synthetic
// cancellation record (Cancel true, reason + photo). Never updated in place.
type Feedback struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email       string             `json:"email,omitempty" bson:"email,omitempty"`
	Name        string             `json:"name,omitempty" bson:"name,omitempty"`
	MenuID      string             `json:"menuId,omitempty" bson:"menuId,omitempty"`
	SellerEmail string             `json:"sellerEmail,omitempty" bson:"sellerEmail,omitempty"`
	Rating      float64            `json:"rating,omitempty" bson:"rating,omitempty"`
	Details     string             `json:"details,omitempty" bson:"details,omitempty"`
	Cancel      bool               `json:"cancel,omitempty" bson:"cancel,omitempty"`
	Reason      string             `json:"reason,omitempty" bson:"reason,omitempty"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
}

// SellerStats is the composite dashboard result for one seller. TotalRevenue is
// always present, zero when no order has been delivered.
type SellerStats struct {
	Delivered    int64   `json:"delivered"`
	Cancelled    int64   `json:"cancelled"`
	MenuItems    int64   `json:"menuItems"`
	Feedbacks    int64   `json:"feedbacks"`
	Users        int64   `json:"users"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// CategoryStat is one group of the per-category delivered-order breakdown.
// Categories with no matched deliveries are absent, not zero-valued.
type CategoryStat struct {
	Category string  `json:"category" bson:"_id"`
	Quantity int64   `json:"quantity" bson:"quantity"`
	Revenue  float64 `json:"revenue" bson:"revenue"`
}
