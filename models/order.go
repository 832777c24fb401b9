package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// OrderLine is the immutable snapshot of one cart entry captured at placement time.
type OrderLine struct {
	Name        string  `json:"name" bson:"name"`
	Price       float64 `json:"price" bson:"price"`
	Count       int     `json:"count" bson:"count"`
	Image       string  `json:"image,omitempty" bson:"image,omitempty"`
	MenuID      string  `json:"menuId" bson:"menuId"`
	SellerEmail string  `json:"sellerEmail" bson:"sellerEmail"`
}

type Order struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email         string             `json:"email" bson:"email"`
	SellerEmail   string             `json:"sellerEmail" bson:"sellerEmail"`
	CartItems     []OrderLine        `json:"cartItems" bson:"cartItems"`
	Total         float64            `json:"total" bson:"total"`
	TransactionID string             `json:"transactionId" bson:"transactionId"`
	OrderID       string             `json:"orderId" bson:"orderId"`
	Date          time.Time          `json:"date" bson:"date"`
	EstimatedDate time.Time          `json:"estimatedDate" bson:"estimatedDate"`
	Status        OrderStatus        `json:"status" bson:"status"`
	IsFeedback    bool               `json:"isFeedback" bson:"isFeedback"`
}

// OrderSummary is the fixed projection returned by order listings. Line items
// carry only the fields a history view needs; full detail is never returned.
type OrderSummary struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id"`
	TransactionID string             `json:"transactionId" bson:"transactionId"`
	Total         float64            `json:"total" bson:"total"`
	OrderID       string             `json:"orderId" bson:"orderId"`
	Status        OrderStatus        `json:"status" bson:"status"`
	Date          time.Time          `json:"date" bson:"date"`
	EstimatedDate time.Time          `json:"estimatedDate" bson:"estimatedDate"`
	IsFeedback    bool               `json:"isFeedback" bson:"isFeedback"`
	CartItems     []OrderLine        `json:"cartItems" bson:"cartItems"`
}
