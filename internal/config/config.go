package config

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Config holds the environment-driven settings for the relay gateway and the
// wallet clients.
type Config struct {
	Stage          string
	Port           string
	RelayerURL     string
	RelayerTimeout time.Duration

	BridgeURL         string
	BridgePingTimeout time.Duration

	AllowedOrigins []string
}

// Load reads configuration from the environment. RELAYER_URL is the only
// required value; everything else has a working default.
func Load() (*Config, error) {
	cfg := &Config{
		Stage:             getEnv("STAGE", "dev"),
		Port:              getEnv("PORT", "8080"),
		RelayerURL:        os.Getenv("RELAYER_URL"),
		RelayerTimeout:    getDurationEnv("RELAYER_TIMEOUT", 30*time.Second),
		BridgeURL:         os.Getenv("WALLET_BRIDGE_URL"),
		BridgePingTimeout: getDurationEnv("WALLET_BRIDGE_PING_TIMEOUT", 750*time.Millisecond),
	}

	if cfg.RelayerURL == "" {
		return nil, errors.New("RELAYER_URL environment variable is required")
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
