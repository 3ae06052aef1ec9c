package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	JWTSecret    string

	// BaseCurrency is the business base currency stamped on ledger rows
	// whose source carries no currency of its own.
	BaseCurrency string

	// SyncInterval enables the periodic ledger sync when greater than
	// zero. SyncLookbackDays bounds the window each periodic run covers.
	SyncInterval     time.Duration
	SyncLookbackDays int

	// SyncRateLimit is a ulule/limiter formatted rate (e.g. "30-M") for
	// the sync endpoint.
	SyncRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("BASE_CURRENCY", "EUR")
	viper.SetDefault("SYNC_INTERVAL", "0")
	viper.SetDefault("SYNC_LOOKBACK_DAYS", 30)
	viper.SetDefault("SYNC_RATE_LIMIT", "30-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.BaseCurrency = viper.GetString("BASE_CURRENCY")
	if len(cfg.BaseCurrency) != 3 {
		log.Printf("Warning: Invalid BASE_CURRENCY ('%s'). Defaulting to EUR.\n", cfg.BaseCurrency)
		cfg.BaseCurrency = "EUR"
	}

	syncIntervalStr := viper.GetString("SYNC_INTERVAL")
	syncInterval, err := time.ParseDuration(syncIntervalStr)
	if err != nil {
		syncInterval = 0
		if syncIntervalStr != "" && syncIntervalStr != "0" {
			log.Printf("Warning: Invalid value for SYNC_INTERVAL ('%s'). Periodic sync disabled.\n", syncIntervalStr)
		}
	}
	cfg.SyncInterval = syncInterval

	cfg.SyncLookbackDays = viper.GetInt("SYNC_LOOKBACK_DAYS")
	if cfg.SyncLookbackDays <= 0 {
		cfg.SyncLookbackDays = 30
	}

	cfg.SyncRateLimit = viper.GetString("SYNC_RATE_LIMIT")

	return cfg, nil
}
