package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the environment-driven settings for the analytics API.
type Config struct {
	Port           int
	DatabaseURL    string
	FrontendURL    string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads configuration from environment variables, applying defaults for
// everything except DATABASE_URL.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", 8000)
	v.SetDefault("FRONTEND_URL", "http://localhost:5173")
	v.SetDefault("RATE_LIMIT_RPS", 5.0)
	v.SetDefault("RATE_LIMIT_BURST", 10)

	cfg := Config{
		Port:           v.GetInt("PORT"),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		FrontendURL:    v.GetString("FRONTEND_URL"),
		RateLimitRPS:   v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst: v.GetInt("RATE_LIMIT_BURST"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("environment variable DATABASE_URL not found")
	}
	return cfg, nil
}
