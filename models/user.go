package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// UserRole defines elevated roles in the system. A user with no role is a plain buyer.
type UserRole string

const (
	RoleSeller UserRole = "seller"
)

// UserStatus tracks the seller-application workflow.
type UserStatus string

const (
	StatusRequested UserStatus = "Requested"
	StatusPending   UserStatus = "Pending"
	StatusCanceled  UserStatus = "Canceled"
)

type User struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Name      string             `json:"name,omitempty" bson:"name,omitempty"`
	Photo     string             `json:"photo,omitempty" bson:"photo,omitempty"`
	Role      UserRole           `json:"role,omitempty" bson:"role,omitempty"`
	Status    UserStatus         `json:"status,omitempty" bson:"status,omitempty"`
	TimeStamp int64              `json:"timeStamp,omitempty" bson:"timeStamp,omitempty"`
}

// RoleInfo is the projection returned by the role lookup. All fields stay empty
// for an unknown email; absence is not an error.
type RoleInfo struct {
	Role      UserRole   `json:"role"`
	Status    UserStatus `json:"status"`
	TimeStamp int64      `json:"timeStamp"`
}
