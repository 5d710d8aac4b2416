package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"twitch_casino/internal/config"
	"twitch_casino/internal/http/handlers"
	"twitch_casino/internal/http/middleware"
	"twitch_casino/internal/service"
	"twitch_casino/internal/store"
	"twitch_casino/internal/ws"
)

// RegisterRoutes mounts the whole API surface on r.
func RegisterRoutes(r *gin.Engine, casino *service.Casino, st store.Store, hub *ws.Hub, cfg *config.Config, version string) {
	h := handlers.NewHandler(casino)
	healthHandler := handlers.NewHealthHandler(st, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	apiWindow := time.Duration(cfg.Rate.APIWindowSec) * time.Second
	gameWindow := time.Duration(cfg.Rate.GameWindowSec) * time.Second

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(cfg.Rate.APILimit, apiWindow))
	registerAPIRoutes(v1, h, cfg, gameWindow)

	// Overlay feed
	r.GET("/ws/feed", h.Feed(hub))
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, cfg *config.Config, gameWindow time.Duration) {
	auth := middleware.Identity()
	gameRL := middleware.GameRateLimit(cfg.Rate.GameLimit, gameWindow)

	if cfg.JWTSecret != "" {
		api.POST("/token", h.DevToken)
	}

	// Account
	api.GET("/account", auth, h.Account)
	api.POST("/account/daily", auth, h.ClaimDaily)

	// Instant games
	api.POST("/game/dice", auth, gameRL, h.Dice)
	api.GET("/game/dice/info", h.DiceInfo)
	api.POST("/game/highlow", auth, gameRL, h.HighLow)
	api.POST("/game/roulette", auth, gameRL, h.Roulette)
	api.GET("/game/roulette/info", h.RouletteInfo)
	api.POST("/game/plinko", auth, gameRL, h.Plinko)
	api.GET("/game/plinko/info", h.PlinkoInfo)
	api.POST("/game/cases", auth, gameRL, h.Cases)
	api.GET("/game/cases/info", h.CasesInfo)

	// Slots (paid spins and free-spin continuations share the endpoint)
	api.POST("/game/slots", auth, gameRL, h.Slots)
	api.GET("/game/slots/info", h.SlotsInfo)

	// Blackjack
	api.POST("/game/blackjack/deal", auth, gameRL, h.BlackjackDeal)
	api.POST("/game/blackjack/action", auth, gameRL, h.BlackjackAction)
	api.GET("/game/blackjack/state", auth, h.BlackjackState)

	// Mines
	api.POST("/game/mines/start", auth, gameRL, h.MinesStart)
	api.POST("/game/mines/reveal", auth, gameRL, h.MinesReveal)
	api.POST("/game/mines/cashout", auth, h.MinesCashout)
	api.GET("/game/mines/state", auth, h.MinesState)
	api.GET("/game/mines/info", h.MinesInfo)

	// Guess the number
	api.POST("/game/guess/start", auth, gameRL, h.GuessStart)
	api.POST("/game/guess", auth, gameRL, h.Guess)

	// Limits info endpoint
	api.GET("/game/limits", h.GameLimits)
}
