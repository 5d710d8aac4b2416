package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"twitch_casino/internal/config"
	"twitch_casino/internal/events"
	httpServer "twitch_casino/internal/http"
	"twitch_casino/internal/http/middleware"
	"twitch_casino/internal/logger"
	"twitch_casino/internal/service"
	"twitch_casino/internal/sim"
	"twitch_casino/internal/store"
	"twitch_casino/internal/ws"

	"twitch_casino/internal/game"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "casino",
		Short: "Community casino backend",
	}
	root.AddCommand(serveCmd(), simulateCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			logger.Init(cfg.Log.Level, cfg.Log.Format)
			return serve(cfg)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to yaml config")
	return cmd
}

func serve(cfg *config.Config) error {
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	middleware.InitJWT(cfg.JWTSecret)
	middleware.InitRedisRateLimiter(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	hub := ws.NewHub()
	pubs := []events.Publisher{ws.NewFeedPublisher(hub)}
	if cfg.NATS.URL != "" {
		np, err := events.NewNATSPublisher(cfg.NATS.URL, cfg.NATS.Subject)
		if err != nil {
			logger.Warn("nats unavailable, round events stay local", "err", err)
		} else {
			pubs = append(pubs, np)
		}
	}
	pub := events.Multi(pubs)
	defer pub.Close()

	casino := service.NewCasino(st, game.CryptoSource{}, service.Limits{
		MinBet: cfg.MinBet,
		MaxBet: cfg.MaxBet,
	}, pub)

	if cfg.Log.Format != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS for overlay pages and the web client
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Player-ID")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	httpServer.RegisterRoutes(r, casino, st, hub, cfg, version)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "addr", cfg.Addr, "store", cfg.Store.Backend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "err", err)
		return err
	}

	logger.Info("server exited")
	return nil
}

func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case config.BackendBadger:
		return store.NewBadgerStore(cfg.Store.BadgerPath, cfg.StartingCredits)
	case config.BackendPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return store.NewPostgresStore(ctx, cfg.Store.DatabaseURL, cfg.StartingCredits)
	default:
		return store.NewMemoryStore(cfg.StartingCredits), nil
	}
}

func simulateCmd() *cobra.Command {
	var (
		gameName string
		rounds   int
		workers  int
		seed     int64
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Monte-Carlo RTP check for the game math",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Init("info", "dev")

			names := sim.Games()
			if gameName != "all" {
				names = []string{gameName}
			}
			for _, name := range names {
				res, err := sim.Run(name, rounds, workers, seed, os.Stderr)
				if err != nil {
					return err
				}
				cmd.Println(res)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&gameName, "game", "g", "all", "game to simulate, or all")
	cmd.Flags().IntVarP(&rounds, "rounds", "n", 1_000_000, "rounds per game")
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "parallel workers")
	cmd.Flags().Int64Var(&seed, "seed", 1, "base RNG seed")
	return cmd
}
