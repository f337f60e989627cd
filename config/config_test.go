package config

import (
	"os"
	"testing"
	"time"
)

// TestLoad_Defaults verifies that defaults are loaded when no environment is set.
func TestLoad_Defaults(t *testing.T) {
	// Clear relevant env vars to ensure defaults are used
	for _, k := range []string{
		"SERVER_HOST", "SERVER_PORT",
		"SECRET_KEY", "ALGORITHM", "ACCESS_TOKEN_EXPIRE_MINUTES",
		"DEMO_USERNAME", "DEMO_PASSWORD",
		"COINGECKO_API_BASE_URL", "COINGECKO_API_KEY", "COINGECKO_API_TIMEOUT",
		"DEFAULT_PAGE_SIZE", "MAX_PAGE_SIZE",
	} {
		_ = os.Unsetenv(k)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "8000" || cfg.Server.Host != "0.0.0.0" {
		t.Fatalf("unexpected server defaults: %+v", cfg.Server)
	}
	if cfg.Auth.Algorithm != "HS256" || cfg.Auth.AccessTokenTTL != 30*time.Minute {
		t.Fatalf("unexpected auth defaults: %+v", cfg.Auth)
	}
	if cfg.Auth.DemoUsername != "demo" || cfg.Auth.DemoPassword != "demo123" {
		t.Fatalf("unexpected demo credentials: %+v", cfg.Auth)
	}
	if cfg.CoinGecko.BaseURL != "https://api.coingecko.com/api/v3" || cfg.CoinGecko.Timeout != 30*time.Second {
		t.Fatalf("unexpected coingecko defaults: %+v", cfg.CoinGecko)
	}
	if cfg.Pagination.DefaultPageSize != 10 || cfg.Pagination.MaxPageSize != 100 {
		t.Fatalf("unexpected pagination defaults: %+v", cfg.Pagination)
	}
	if cfg.API.Version != "1.0.0" || cfg.API.Title != "Cryptocurrency Market API" {
		t.Fatalf("unexpected API metadata: %+v", cfg.API)
	}
}

// TestLoad_EnvOverrides verifies that environment variables take precedence over defaults.
func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")
	t.Setenv("COINGECKO_API_TIMEOUT", "2")
	t.Setenv("MAX_PAGE_SIZE", "50")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "9000" {
		t.Fatalf("SERVER_PORT override ignored: %q", cfg.Server.Port)
	}
	if cfg.Auth.SecretKey != "test-secret" {
		t.Fatalf("SECRET_KEY override ignored: %q", cfg.Auth.SecretKey)
	}
	if cfg.Auth.AccessTokenTTL != 5*time.Minute {
		t.Fatalf("TTL override ignored: %v", cfg.Auth.AccessTokenTTL)
	}
	if cfg.CoinGecko.Timeout != 2*time.Second {
		t.Fatalf("timeout override ignored: %v", cfg.CoinGecko.Timeout)
	}
	if cfg.Pagination.MaxPageSize != 50 {
		t.Fatalf("MAX_PAGE_SIZE override ignored: %d", cfg.Pagination.MaxPageSize)
	}
}

// TestValidate_Missing asserts that validation reports empty required fields.
func TestValidate_Missing(t *testing.T) {
	err := Config{}.validate()
	if err == nil {
		t.Fatalf("expected validation error for zero config")
	}
}
