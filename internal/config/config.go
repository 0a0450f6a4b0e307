// Package config provides environment-driven configuration for graphd.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Version is reported by /api/v1/health. Release builds override it with
// -ldflags "-X github.com/HenrikBaltazar/linked-list-graph/internal/config.Version=<tag>".
var Version = "dev"

// Config holds all application configuration values.
type Config struct {
	Port         string
	ListenHost   string
	CORSOrigins  []string
	LogLevel     string
	LogFormat    string
	WSMaxClients int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:       envOrDefault("PORT", "7420"),
		ListenHost: envOrDefault("LISTEN_HOST", "127.0.0.1"),
		LogLevel:   envOrDefault("LOG_LEVEL", "info"),
		LogFormat:  envOrDefault("LOG_FORMAT", "text"),
	}

	wsMax, err := strconv.Atoi(envOrDefault("WS_MAX_CLIENTS", "64"))
	if err != nil || wsMax < 1 || wsMax > 1000 {
		return nil, fmt.Errorf("WS_MAX_CLIENTS must be an integer between 1 and 1000")
	}
	cfg.WSMaxClients = wsMax

	origins := envOrDefault("CORS_ORIGINS", "tauri://localhost,http://localhost:1420")
	cfg.CORSOrigins = strings.Split(origins, ",")

	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
