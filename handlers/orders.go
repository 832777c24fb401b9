package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tastytwist-api/models"
	"tastytwist-api/statemachine"
)

// estimatedDeliveryWindow is added to the placement date for the customer-facing ETA.
const estimatedDeliveryWindow = 3 * 24 * time.Hour

type PlaceOrderRequest struct {
	CartID        []string           `json:"cartId" binding:"required,min=1"`
	Email         string             `json:"email" binding:"required,email"`
	SellerEmail   string             `json:"sellerEmail" binding:"required,email"`
	CartItems     []models.OrderLine `json:"cartItems" binding:"required,min=1"`
	Total         float64            `json:"total" binding:"required,gt=0"`
	TransactionID string             `json:"transactionId" binding:"required"`
}

// PlaceOrder converts a cart selection into a persisted order. The referenced
// cart entries are consumed atomically with the insert.
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	order := &models.Order{
		Email:         req.Email,
		SellerEmail:   req.SellerEmail,
		CartItems:     req.CartItems,
		Total:         req.Total,
		TransactionID: req.TransactionID,
		OrderID:       uuid.NewString(),
		Date:          now,
		EstimatedDate: now.Add(estimatedDeliveryWindow),
		Status:        models.StatusProcessing,
	}

	res, err := h.Orders.PlaceOrder(c.Request.Context(), order, req.CartID)
	if err != nil {
		status, msg := storeErrStatus(err, "Failed to place order")
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"result":  res,
		"orderId": order.OrderID,
	})
}

// ListOrders returns the projected order history for a buyer or, with
// person=seller, the seller's incoming orders.
func (h *Handler) ListOrders(c *gin.Context) {
	asSeller := c.Query("person") == "seller"
	orders, err := h.Orders.ListOrders(c.Request.Context(), c.Param("email"), asSeller)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// AdvanceStatus moves an order one step along processing -> shipped ->
// delivered. The stored status is authoritative; the status query parameter is
// the caller's claim and is rejected when stale.
func (h *Handler) AdvanceStatus(c *gin.Context) {
	claimed := models.OrderStatus(c.Query("status"))
	next, err := h.Orders.AdvanceStatus(c.Request.Context(), c.Param("id"), claimed)
	if err != nil {
		if errors.Is(err, statemachine.ErrInvalidTransition) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		status, msg := storeErrStatus(err, "Failed to advance order status")
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": next})
}

// CancelOrder cancels an order on the seller's behalf and captures the
// cancellation reason as a feedback record. The order keeps its document with
// status cancelled.
func (h *Handler) CancelOrder(c *gin.Context) {
	fb := models.Feedback{
		Name:        c.Query("name"),
		Reason:      c.Query("reason"),
		Image:       c.Query("image"),
		MenuID:      c.Query("menuId"),
		SellerEmail: c.Query("sellerEmail"),
		Cancel:      true,
	}

	if err := h.Orders.CancelWithFeedback(c.Request.Context(), c.Param("id"), fb); err != nil {
		if errors.Is(err, statemachine.ErrInvalidTransition) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Order can no longer be cancelled"})
			return
		}
		status, msg := storeErrStatus(err, "Failed to cancel order")
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}
