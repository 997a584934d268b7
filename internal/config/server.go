package config

import (
	"strconv"
	"strings"
)

// ServerConfig holds settings for the fixture application
type ServerConfig struct {
	Port      string
	SeedUsers bool
}

// LoadServerConfig loads server configuration from environment variables
func LoadServerConfig(getenv func(string) string) ServerConfig {
	port := getenv("PORT")
	if port == "" {
		port = "8080" // Default to port 8080
	}

	// Seeding is on unless explicitly disabled
	seed := true
	if v := strings.TrimSpace(getenv("SEED_USERS")); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			seed = parsed
		}
	}

	return ServerConfig{
		Port:      port,
		SeedUsers: seed,
	}
}
