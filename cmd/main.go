package main

//
//  @title           Cryptocurrency Market API
//  @version         1.0.0
//  @description     REST API gateway for fetching cryptocurrency market updates from CoinGecko.
//  @termsOfService  https://github.com/guttosm/coingate
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/coingate
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8000
//  @BasePath        /
//  @schemes         http
//
//  @securityDefinitions.apikey  BearerAuth
//  @in                          header
//  @name                        Authorization
//  @description                 Type "Bearer" followed by a space and the JWT token.
//
//  @tag.name        auth
//  @tag.description Login endpoint issuing JWT bearer tokens
//
//  @tag.name        coins
//  @tag.description Paginated coin, category and market data endpoints
//
//  @tag.name        health
//  @tag.description Liveness and version endpoints

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/coingate/config"
	_ "github.com/guttosm/coingate/docs" // swagger docs
	"github.com/guttosm/coingate/internal/app"
	"github.com/guttosm/coingate/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - addr (string): The host:port address where the server will listen.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, addr string) *http.Server {
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("addr", addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
func gracefulShutdown(ctx context.Context, server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the coingate application.
//
// Flags:
//   - --host: Bind address. Defaults to value from config (SERVER_HOST).
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	cfg, err := config.Load()
	if err != nil {
		logger.L().Fatal().Err(err).Msg("config load error")
	}

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	host := flag.String("host", cfg.Server.Host, "Bind address for the API server")
	port := flag.String("port", cfg.Server.Port, "Port for the API server")
	flag.Parse()

	router, err := app.InitializeApp(cfg)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("app init error")
	}

	server := startServer(router, *host+":"+*port)
	gracefulShutdown(ctx, server)
}
