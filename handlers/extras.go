package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tastytwist-api/models"
	"tastytwist-api/store"
)

// ── Addresses ───────────────────────────────────────────────────────────────

// GetAddress returns the user's saved delivery address, null when none exists.
func (h *Handler) GetAddress(c *gin.Context) {
	addr, err := h.Extras.GetAddress(c.Request.Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get address"})
		return
	}
	c.JSON(http.StatusOK, addr)
}

// SaveAddress stores a new delivery address.
func (h *Handler) SaveAddress(c *gin.Context) {
	var addr models.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.Extras.SaveAddress(c.Request.Context(), addr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save address"})
		return
	}
	c.JSON(http.StatusCreated, res)
}

// ReplaceAddress swaps the user's address document wholesale.
func (h *Handler) ReplaceAddress(c *gin.Context) {
	var addr models.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.Extras.ReplaceAddress(c.Request.Context(), c.Param("email"), addr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to replace address"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpdateAddressEmail records a pending email change on the address record.
func (h *Handler) UpdateAddressEmail(c *gin.Context) {
	res, err := h.Extras.UpdateAddressEmail(c.Request.Context(), c.Param("email"), c.Query("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update address email"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// ── Static content ──────────────────────────────────────────────────────────

func (h *Handler) ListReviews(c *gin.Context) {
	reviews, err := h.Extras.ListReviews(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *Handler) ListFAQs(c *gin.Context) {
	faqs, err := h.Extras.ListFAQs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list FAQs"})
		return
	}
	c.JSON(http.StatusOK, faqs)
}

// ── Coupons ─────────────────────────────────────────────────────────────────

func (h *Handler) ListCoupons(c *gin.Context) {
	coupons, err := h.Extras.ListCoupons(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list coupons"})
		return
	}
	c.JSON(http.StatusOK, coupons)
}

func (h *Handler) CreateCoupon(c *gin.Context) {
	var coupon models.Coupon
	if err := c.ShouldBindJSON(&coupon); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.Extras.CreateCoupon(c.Request.Context(), coupon)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create coupon"})
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) EditCoupon(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.Extras.EditCoupon(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		status, msg := storeErrStatus(err, "Failed to edit coupon")
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, res)
}
