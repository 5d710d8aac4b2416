package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"twitch_casino/internal/ws"
)

// Feed upgrades to the one-way round feed used by stream overlays.
func (h *Handler) Feed(hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ws.Serve(hub, c.Writer, c.Request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "upgrade failed"})
		}
	}
}
