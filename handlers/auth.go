package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tastytwist-api/middleware"
)

type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// IssueToken signs a session JWT for the asserted email and stores it in an
// HTTP-only cross-site cookie. Identity itself is established by the frontend
// auth provider; this endpoint only mints the session.
func (h *Handler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := middleware.GenerateToken(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.TokenCookie, token, 24*60*60, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout clears the session cookie.
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
