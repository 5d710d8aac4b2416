package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"twitch_casino/internal/http/middleware"
)

// Account returns the caller's balance and active round summary. The
// account is created with the starting balance on first access.
func (h *Handler) Account(c *gin.Context) {
	view, err := h.Casino.Account(c.Request.Context(), playerID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ClaimDaily grants the daily bonus, with a streak bump for consecutive
// days.
func (h *Handler) ClaimDaily(c *gin.Context) {
	res, err := h.Casino.ClaimDaily(c.Request.Context(), playerID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DevTokenRequest represents the dev token request.
type DevTokenRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
}

// DevToken mints a bearer token for a player id. Only mounted when a JWT
// secret is configured; the production deployment issues tokens from the
// Twitch OAuth exchange instead.
func (h *Handler) DevToken(c *gin.Context) {
	var req DevTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	tok, err := middleware.IssueToken(req.PlayerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tok})
}
