// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
	CORS    CORSConfig
	Media   MediaConfig
	Geo     GeoConfig
	BaseURL string
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// MediaConfig holds catalog and upload storage settings
type MediaConfig struct {
	// DataFile is the JSON catalog path
	DataFile string
	// BasePath is the public static root holding uploaded files
	BasePath string
}

// GeoConfig holds country-lookup settings
type GeoConfig struct {
	ProviderURL string
	Timeout     time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	godotenv.Load()

	cfg := &Config{}

	// Server configuration
	serverPortStr := os.Getenv("SERVER_PORT")
	if serverPortStr == "" {
		serverPortStr = "8080" // default port
	}
	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}
	cfg.Server.Port = serverPort

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // default level
	}
	cfg.Logging.Level = logLevel

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if corsOrigins == "" {
		// Default to allow all origins if not specified (for development)
		cfg.CORS.AllowedOrigins = []string{"*"}
	} else {
		// Parse comma-separated origins
		origins := strings.Split(corsOrigins, ",")
		cfg.CORS.AllowedOrigins = make([]string, 0, len(origins))
		for _, origin := range origins {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				cfg.CORS.AllowedOrigins = append(cfg.CORS.AllowedOrigins, origin)
			}
		}
		if len(cfg.CORS.AllowedOrigins) == 0 {
			cfg.CORS.AllowedOrigins = []string{"*"}
		}
	}

	// Catalog file and upload root
	cfg.Media.DataFile = os.Getenv("DATA_FILE")
	if cfg.Media.DataFile == "" {
		cfg.Media.DataFile = "data/mediaData.json"
	}

	cfg.Media.BasePath = os.Getenv("MEDIA_BASE_PATH")
	if cfg.Media.BasePath == "" {
		cfg.Media.BasePath = "public"
	}

	// Geo lookup provider
	cfg.Geo.ProviderURL = os.Getenv("GEO_PROVIDER_URL")
	if cfg.Geo.ProviderURL == "" {
		cfg.Geo.ProviderURL = "https://ipapi.co"
	}

	geoTimeoutStr := os.Getenv("GEO_TIMEOUT")
	if geoTimeoutStr == "" {
		geoTimeoutStr = "1s"
	}
	geoTimeout, err := time.ParseDuration(geoTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid GEO_TIMEOUT: %w", err)
	}
	cfg.Geo.Timeout = geoTimeout

	// Base URL for generated links
	cfg.BaseURL = os.Getenv("BASE_URL")
	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}

	return cfg, nil
}
