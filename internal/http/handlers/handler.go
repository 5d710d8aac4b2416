package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"twitch_casino/internal/domain"
	"twitch_casino/internal/http/middleware"
	"twitch_casino/internal/service"
)

type Handler struct {
	Casino *service.Casino
}

func NewHandler(casino *service.Casino) *Handler {
	return &Handler{Casino: casino}
}

// respondErr maps domain errors to HTTP statuses. Anything unmapped is a
// 500 with a generic body.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidWager),
		errors.Is(err, domain.ErrInvalidParam):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInsufficientFunds):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNoActiveSession):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrSessionMismatch),
		errors.Is(err, domain.ErrAlreadyRevealed),
		errors.Is(err, domain.ErrDailyClaimed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func playerID(c *gin.Context) string {
	return middleware.PlayerID(c)
}
