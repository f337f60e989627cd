package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/coingate/internal/auth"
	"github.com/guttosm/coingate/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter creates a Gin engine with routes configured.
// It receives handler instances with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, CORS).
//   - Mounts Swagger docs (/swagger/*any) and redirects / to them.
//   - Registers the unauthenticated auth and health routes.
//   - Registers the bearer-protected /v1/coins routes behind RequireAuth.
//
// Parameters:
//   - authHandler (*AuthHandler): Login endpoint handler.
//   - coinsHandler (*CoinsHandler): Coin endpoint handlers.
//   - healthHandler (*HealthHandler): Health and version handlers.
//   - tokens (*auth.TokenService): Validator used by the auth middleware.
//
// Returns:
//   - *gin.Engine: Configured Gin router.
func NewRouter(authHandler *AuthHandler, coinsHandler *CoinsHandler, healthHandler *HealthHandler, tokens *auth.TokenService) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		cors.Default(), // allow all origins
	)

	// ─── Docs ─────────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, "/swagger/index.html")
	})

	// ─── Public routes ────────────────────────────
	router.POST("/auth/login", authHandler.Login)

	health := router.Group("/health")
	{
		health.GET("/", healthHandler.Health)
		health.GET("/version", healthHandler.Version)
	}

	// ─── Protected routes ─────────────────────────
	coins := router.Group("/v1/coins", middleware.RequireAuth(tokens))
	{
		coins.GET("/", coinsHandler.ListCoins)
		coins.GET("/categories", coinsHandler.ListCategories)
		coins.GET("/market", coinsHandler.GetMarketData)
	}

	return router
}
