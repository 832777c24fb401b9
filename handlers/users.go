package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tastytwist-api/models"
	"tastytwist-api/store"
)

// GetRole returns the role/status projection for an email. Unknown emails get
// empty fields, not an error; callers treat absence as "no elevated role".
func (h *Handler) GetRole(c *gin.Context) {
	info, err := h.Users.GetRole(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up role"})
		return
	}
	c.JSON(http.StatusOK, info)
}

// UpsertUser saves a new profile or applies a seller-application status patch.
// An existing profile with any other patch is returned unchanged.
func (h *Handler) UpsertUser(c *gin.Context) {
	var patch models.User
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, existing, err := h.Users.UpsertUser(c.Request.Context(), c.Param("email"), patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, existing)
		return
	}
	c.JSON(http.StatusOK, res)
}

// SetUserStatus is the seller-workflow admin switch: Approved promotes the
// applicant, Canceled rejects, anything else is stored as-is.
func (h *Handler) SetUserStatus(c *gin.Context) {
	email := c.Param("email")
	status := c.Query("status")

	ctx := c.Request.Context()
	switch status {
	case "Approved":
		if err := h.Users.PromoteToSeller(ctx, email); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "No pending request for this email"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve seller"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Seller approved", "email": email})
	case string(models.StatusCanceled):
		if err := h.Users.RejectApplication(ctx, email); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject application"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Application rejected", "email": email})
	default:
		res, err := h.Users.SetStatus(ctx, email, models.UserStatus(status))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set status"})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// ListSellerRequests returns all pending restaurant applications.
func (h *Handler) ListSellerRequests(c *gin.Context) {
	requests, err := h.Users.ListSellerRequests(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list seller requests"})
		return
	}
	c.JSON(http.StatusOK, requests)
}
