package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	BackendMemory   = "memory"
	BackendBadger   = "badger"
	BackendPostgres = "postgres"
)

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json, text or dev
}

type StoreConfig struct {
	Backend     string `yaml:"backend"` // memory, badger or postgres
	BadgerPath  string `yaml:"badger_path"`
	DatabaseURL string `yaml:"database_url"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type NATSConfig struct {
	URL     string `yaml:"url"`
	Subject string `yaml:"subject"`
}

type RateConfig struct {
	// API limits count requests per window per client IP, game limits
	// count plays per window per player.
	APILimit      int `yaml:"api_limit"`
	APIWindowSec  int `yaml:"api_window_sec"`
	GameLimit     int `yaml:"game_limit"`
	GameWindowSec int `yaml:"game_window_sec"`
}

type Config struct {
	Addr            string      `yaml:"addr"`
	Log             LogConfig   `yaml:"log"`
	Store           StoreConfig `yaml:"store"`
	Redis           RedisConfig `yaml:"redis"`
	NATS            NATSConfig  `yaml:"nats"`
	JWTSecret       string      `yaml:"jwt_secret"`
	MinBet          int64       `yaml:"min_bet"`
	MaxBet          int64       `yaml:"max_bet"`
	StartingCredits int64       `yaml:"starting_credits"`
	Rate            RateConfig  `yaml:"rate"`
}

func defaults() *Config {
	return &Config{
		Addr: ":8080",
		Log:  LogConfig{Level: "info", Format: "text"},
		Store: StoreConfig{
			Backend:    BackendMemory,
			BadgerPath: "data/casino",
		},
		NATS:            NATSConfig{Subject: "casino.rounds"},
		MinBet:          1,
		MaxBet:          100000,
		StartingCredits: 1000,
		Rate: RateConfig{
			APILimit:      120,
			APIWindowSec:  60,
			GameLimit:     60,
			GameWindowSec: 60,
		},
	}
}

// Load builds the config from the optional yaml file at path, then applies
// environment overrides. A missing file is only an error when the path was
// given explicitly.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	overrideStr(&cfg.Addr, "CASINO_ADDR")
	overrideStr(&cfg.Log.Level, "LOG_LEVEL")
	overrideStr(&cfg.Log.Format, "LOG_FORMAT")
	overrideStr(&cfg.Store.Backend, "STORE_BACKEND")
	overrideStr(&cfg.Store.BadgerPath, "BADGER_PATH")
	overrideStr(&cfg.Store.DatabaseURL, "DATABASE_URL")
	overrideStr(&cfg.Redis.Addr, "REDIS_ADDR")
	overrideStr(&cfg.Redis.Password, "REDIS_PASSWORD")
	overrideInt(&cfg.Redis.DB, "REDIS_DB")
	overrideStr(&cfg.NATS.URL, "NATS_URL")
	overrideStr(&cfg.NATS.Subject, "NATS_SUBJECT")
	overrideStr(&cfg.JWTSecret, "JWT_SECRET")
	overrideInt64(&cfg.MinBet, "MIN_BET")
	overrideInt64(&cfg.MaxBet, "MAX_BET")
	overrideInt64(&cfg.StartingCredits, "STARTING_CREDITS")
	overrideInt(&cfg.Rate.APILimit, "API_RATE_LIMIT")
	overrideInt(&cfg.Rate.APIWindowSec, "API_RATE_WINDOW_SECONDS")
	overrideInt(&cfg.Rate.GameLimit, "GAME_RATE_LIMIT")
	overrideInt(&cfg.Rate.GameWindowSec, "GAME_RATE_WINDOW")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Backend {
	case BackendMemory:
	case BackendBadger:
		if c.Store.BadgerPath == "" {
			return fmt.Errorf("store.badger_path is required for the badger backend")
		}
	case BackendPostgres:
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("store.database_url is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	if c.MinBet <= 0 || c.MaxBet < c.MinBet {
		return fmt.Errorf("invalid bet limits: min=%d max=%d", c.MinBet, c.MaxBet)
	}
	if c.StartingCredits < 0 {
		return fmt.Errorf("starting_credits must not be negative")
	}
	return nil
}

func overrideStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func overrideInt64(dst *int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}
