package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coingate/config"
	"github.com/guttosm/coingate/internal/api"
	"github.com/guttosm/coingate/internal/auth"
	"github.com/guttosm/coingate/internal/coingecko"
	"github.com/guttosm/coingate/internal/service"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router.
//
// Responsibilities:
//   - Builds the credential store (hashing the configured password once).
//   - Builds the token service from the configured secret, algorithm and TTL.
//   - Builds the CoinGecko client and the aggregation service over it.
//   - Creates the HTTP handler layer and configures the Gin router.
//
// Every dependency is constructed here and passed explicitly; nothing is
// shared through globals, so the router is safe to build multiple times in
// tests with different configurations.
//
// Parameters:
//   - cfg (config.Config): The configuration loaded at process start.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - error: any initialization error that occurred.
func InitializeApp(cfg config.Config) (*gin.Engine, error) {
	credentials, err := auth.NewCredentialStore(cfg.Auth.DemoUsername, cfg.Auth.DemoPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize credential store: %w", err)
	}

	tokens, err := auth.NewTokenService(cfg.Auth.SecretKey, cfg.Auth.Algorithm, cfg.Auth.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	// Upstream client and the aggregation service over it
	client := coingecko.NewClient(cfg.CoinGecko.BaseURL, cfg.CoinGecko.APIKey, cfg.CoinGecko.Timeout)
	coinSvc := service.NewCoinService(client)

	// HTTP handler layer (business logic to HTTP mapping)
	authHandler := api.NewAuthHandler(credentials, tokens)
	coinsHandler := api.NewCoinsHandler(coinSvc, cfg.Pagination)
	healthHandler := api.NewHealthHandler(coinSvc, cfg.API)

	return api.NewRouter(authHandler, coinsHandler, healthHandler, tokens), nil
}
