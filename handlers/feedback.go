package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tastytwist-api/models"
	"tastytwist-api/store"
)

// ListFeedback serves three mutually exclusive modes: by seller email, by menu
// item id, or a paginated unfiltered listing. The seller filter wins when both
// filters are given.
func (h *Handler) ListFeedback(c *gin.Context) {
	// Missing or negative values fall back to zero, which the driver treats
	// as no skip / no limit.
	page := max(0, parseInt64(c.Query("page")))
	size := max(0, parseInt64(c.Query("size")))
	filter := store.FeedbackFilter{
		SellerEmail: c.Query("email"),
		MenuID:      c.Query("id"),
		Page:        page,
		Size:        size,
	}

	feedbacks, err := h.Feedback.ListFeedback(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list feedback"})
		return
	}
	c.JSON(http.StatusOK, feedbacks)
}

func parseInt64(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

// RecordFeedback stores a buyer review and flags the source order as reviewed.
func (h *Handler) RecordFeedback(c *gin.Context) {
	var fb models.Feedback
	if err := c.ShouldBindJSON(&fb); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.Feedback.RecordFeedback(c.Request.Context(), c.Param("id"), fb)
	if err != nil {
		status, msg := storeErrStatus(err, "Failed to record feedback")
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusCreated, res)
}

// DeleteFeedback removes one feedback record.
func (h *Handler) DeleteFeedback(c *gin.Context) {
	res, err := h.Feedback.DeleteFeedback(c.Request.Context(), c.Param("id"))
	if err != nil {
		status, msg := storeErrStatus(err, "Failed to delete feedback")
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, res)
}

// SellerStats returns the composite seller dashboard counters.
func (h *Handler) SellerStats(c *gin.Context) {
	stats, err := h.Feedback.SellerStats(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute seller stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// OrderStatsByCategory returns the per-category delivered-order breakdown.
func (h *Handler) OrderStatsByCategory(c *gin.Context) {
	stats, err := h.Feedback.OrderStatsByCategory(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute order stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
