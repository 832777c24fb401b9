package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tastytwist-api/models"
	"tastytwist-api/store"
)

// ── Restaurants ─────────────────────────────────────────────────────────────

// ListRestaurants returns all restaurants, or a single one when the email
// query parameter is present (null body when it matches nothing).
func (h *Handler) ListRestaurants(c *gin.Context) {
	ctx := c.Request.Context()
	if email := c.Query("email"); email != "" {
		restaurant, err := h.Catalog.GetRestaurant(ctx, email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusOK, nil)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get restaurant"})
			return
		}
		c.JSON(http.StatusOK, restaurant)
		return
	}

	restaurants, err := h.Catalog.ListRestaurants(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list restaurants"})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// SubmitRestaurantApplication stages a seller application and marks the
// applicant pending.
func (h *Handler) SubmitRestaurantApplication(c *gin.Context) {
	var app models.RequestedRestaurant
	if err := c.ShouldBindJSON(&app); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if email := c.Query("email"); email != "" {
		app.Email = email
	}

	res, err := h.Catalog.SubmitApplication(c.Request.Context(), app)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application"})
		return
	}
	c.JSON(http.StatusCreated, res)
}

// UpdateRestaurant applies a partial update by id.
func (h *Handler) UpdateRestaurant(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.Catalog.UpdateRestaurant(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		status, msg := storeErrStatus(err, "Failed to update restaurant")
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, res)
}

// ── Menu ────────────────────────────────────────────────────────────────────

// GetMenu returns the owner's menu, filtered and sorted. The "popular"
// category is a pseudo-category and applies no narrowing; a price range is
// used only when both bounds parse as numbers.
func (h *Handler) GetMenu(c *gin.Context) {
	filter := store.ParseMenuFilter(
		c.Query("category"),
		c.Query("order"),
		c.Query("minPrice"),
		c.Query("maxPrice"),
	)
	items, err := h.Catalog.ListMenu(c.Request.Context(), c.Param("email"), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list menu"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddMenuItem adds a new item to the seller's menu.
func (h *Handler) AddMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.Catalog.CreateMenuItem(c.Request.Context(), item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}
	c.JSON(http.StatusCreated, res)
}

// EditMenuItem applies a partial update to one menu item, upserting on a
// missing id.
func (h *Handler) EditMenuItem(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.Catalog.EditMenuItem(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		status, msg := storeErrStatus(err, "Failed to edit menu item")
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteMenuItem removes a menu item by id.
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	res, err := h.Catalog.DeleteMenuItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		status, msg := storeErrStatus(err, "Failed to delete menu item")
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, res)
}
