package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, token signing, the upstream CoinGecko client, and pagination.
//
// Example YAML/ENV equivalent:
//
//	SERVER_HOST=0.0.0.0
//	SERVER_PORT=8000
//	SECRET_KEY=dev-secret-key-change-in-production
//	ALGORITHM=HS256
//	ACCESS_TOKEN_EXPIRE_MINUTES=30
//	DEMO_USERNAME=demo
//	DEMO_PASSWORD=demo123
//	COINGECKO_API_BASE_URL=https://api.coingecko.com/api/v3
//	COINGECKO_API_KEY=
//	COINGECKO_API_TIMEOUT=30
//	DEFAULT_PAGE_SIZE=10
//	MAX_PAGE_SIZE=100
type Config struct {
	API        APIConfig        // API metadata (version, title, description)
	Server     ServerConfig     // HTTP server configuration
	Auth       AuthConfig       // JWT and credential settings
	CoinGecko  CoinGeckoConfig  // Upstream CoinGecko API settings
	Pagination PaginationConfig // Page size bounds for list endpoints
}

// APIConfig holds API metadata exposed by the health and docs endpoints.
type APIConfig struct {
	Version     string
	Title       string
	Description string
}

// ServerConfig holds HTTP server settings such as the host and port to listen on.
type ServerConfig struct {
	Host string
	Port string // The TCP port the HTTP server will listen on (e.g., "8000")
}

// AuthConfig holds token signing and demo credential settings.
//
// NOTE: SecretKey, DemoUsername and DemoPassword default to demo-only values;
// production deployments must supply real secrets through the environment.
type AuthConfig struct {
	SecretKey      string        // HMAC signing secret for JWTs
	Algorithm      string        // JWT signing algorithm (e.g., "HS256")
	AccessTokenTTL time.Duration // Lifetime of issued access tokens
	DemoUsername   string        // Statically configured username
	DemoPassword   string        // Statically configured password (hashed at startup)
}

// CoinGeckoConfig defines how the upstream CoinGecko API is reached.
//
// Fields:
//   - BaseURL: root URL of the CoinGecko REST API.
//   - APIKey: optional demo API key, sent as the x-cg-demo-api-key header.
//   - Timeout: per-call HTTP timeout.
type CoinGeckoConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// PaginationConfig bounds the page_num/per_page query parameters.
type PaginationConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

// Load reads configuration from a .env file and environment variables and
// returns a validated Config value.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// The returned Config is a plain value: it is constructed once at process
// start and passed explicitly into the components that need it, instead of
// being exposed as a mutable global.
//
// Returns:
//   - Config: the populated configuration.
//   - error: a validation error naming any missing required fields.
func Load() (Config, error) {
	// Default values
	viper.SetDefault("API_VERSION", "1.0.0")
	viper.SetDefault("API_TITLE", "Cryptocurrency Market API")
	viper.SetDefault("API_DESCRIPTION", "REST API for fetching cryptocurrency market updates")

	viper.SetDefault("SECRET_KEY", "dev-secret-key-change-in-production")
	viper.SetDefault("ALGORITHM", "HS256")
	viper.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 30)

	viper.SetDefault("DEMO_USERNAME", "demo")
	viper.SetDefault("DEMO_PASSWORD", "demo123")

	viper.SetDefault("COINGECKO_API_BASE_URL", "https://api.coingecko.com/api/v3")
	viper.SetDefault("COINGECKO_API_KEY", "")
	viper.SetDefault("COINGECKO_API_TIMEOUT", 30)

	viper.SetDefault("DEFAULT_PAGE_SIZE", 10)
	viper.SetDefault("MAX_PAGE_SIZE", 100)

	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", "8000")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	cfg := Config{
		API: APIConfig{
			Version:     viper.GetString("API_VERSION"),
			Title:       viper.GetString("API_TITLE"),
			Description: viper.GetString("API_DESCRIPTION"),
		},
		Server: ServerConfig{
			Host: viper.GetString("SERVER_HOST"),
			Port: viper.GetString("SERVER_PORT"),
		},
		Auth: AuthConfig{
			SecretKey:      viper.GetString("SECRET_KEY"),
			Algorithm:      viper.GetString("ALGORITHM"),
			AccessTokenTTL: time.Duration(viper.GetInt("ACCESS_TOKEN_EXPIRE_MINUTES")) * time.Minute,
			DemoUsername:   viper.GetString("DEMO_USERNAME"),
			DemoPassword:   viper.GetString("DEMO_PASSWORD"),
		},
		CoinGecko: CoinGeckoConfig{
			BaseURL: viper.GetString("COINGECKO_API_BASE_URL"),
			APIKey:  viper.GetString("COINGECKO_API_KEY"),
			Timeout: time.Duration(viper.GetInt("COINGECKO_API_TIMEOUT")) * time.Second,
		},
		Pagination: PaginationConfig{
			DefaultPageSize: viper.GetInt("DEFAULT_PAGE_SIZE"),
			MaxPageSize:     viper.GetInt("MAX_PAGE_SIZE"),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate ensures required variables are present and returns an error
// naming the missing ones.
//
// This avoids unexpected runtime failures due to incomplete configuration.
func (c Config) validate() error {
	var missing []string

	if c.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if c.Auth.SecretKey == "" {
		missing = append(missing, "SECRET_KEY")
	}
	if c.Auth.Algorithm == "" {
		missing = append(missing, "ALGORITHM")
	}
	if c.Auth.AccessTokenTTL <= 0 {
		missing = append(missing, "ACCESS_TOKEN_EXPIRE_MINUTES")
	}
	if c.Auth.DemoUsername == "" {
		missing = append(missing, "DEMO_USERNAME")
	}
	if c.Auth.DemoPassword == "" {
		missing = append(missing, "DEMO_PASSWORD")
	}
	if c.CoinGecko.BaseURL == "" {
		missing = append(missing, "COINGECKO_API_BASE_URL")
	}
	if c.CoinGecko.Timeout <= 0 {
		missing = append(missing, "COINGECKO_API_TIMEOUT")
	}
	if c.Pagination.DefaultPageSize < 1 {
		missing = append(missing, "DEFAULT_PAGE_SIZE")
	}
	if c.Pagination.MaxPageSize < 1 {
		missing = append(missing, "MAX_PAGE_SIZE")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missing)
	}
	return nil
}
