package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tastytwist-api/models"
	"tastytwist-api/store"
)

// AddSelection inserts a cart or favorite entry. A second cart entry for the
// same (buyer, menu item) pair is rejected with a conflict message.
func (h *Handler) AddSelection(c *gin.Context) {
	dest, err := store.ParseDestination(c.Query("items"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var entry models.SelectionEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.Selections.AddSelection(c.Request.Context(), entry, dest)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateCartEntry) {
			c.JSON(http.StatusConflict, gin.H{"message": store.ErrDuplicateCartEntry.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add selection"})
		return
	}
	c.JSON(http.StatusCreated, res)
}

// ListSelections returns the user's cart or favorite entries.
func (h *Handler) ListSelections(c *gin.Context) {
	dest, err := store.ParseDestination(c.Query("items"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entries, err := h.Selections.ListSelections(c.Request.Context(), c.Param("email"), dest)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list selections"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ListSelectedCarts hydrates the checkout summary from a comma-separated id list.
func (h *Handler) ListSelectedCarts(c *gin.Context) {
	ids := strings.Split(c.Param("ids"), ",")
	entries, err := h.Selections.ListSelectedByIDs(c.Request.Context(), ids)
	if err != nil {
		status, msg := storeErrStatus(err, "Failed to select cart entries")
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, entries)
}

type CartCountRequest struct {
	ItemCount int `json:"itemCount" binding:"required,min=1"`
}

// UpdateCartCount sets the quantity on one cart entry.
func (h *Handler) UpdateCartCount(c *gin.Context) {
	var req CartCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.Selections.UpdateCartCount(c.Request.Context(), c.Param("id"), req.ItemCount)
	if err != nil {
		status, msg := storeErrStatus(err, "Failed to update cart count")
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, res)
}

// MoveSelection shifts one entry between cart and favorites. The item query
// parameter names the source collection; the body is the record to insert on
// the other side.
func (h *Handler) MoveSelection(c *gin.Context) {
	from, err := store.ParseDestination(c.Query("item"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var payload models.SelectionEntry
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Selections.MoveSelection(c.Request.Context(), c.Param("id"), from, payload); err != nil {
		status, msg := storeErrStatus(err, "Failed to move selection")
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"moved": true, "from": from, "to": from.Opposite()})
}

// DeleteSelection removes one entry from the named collection.
func (h *Handler) DeleteSelection(c *gin.Context) {
	dest, err := store.ParseDestination(c.Query("items"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.Selections.DeleteSelection(c.Request.Context(), c.Param("id"), dest)
	if err != nil {
		status, msg := storeErrStatus(err, "Failed to delete selection")
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, res)
}
