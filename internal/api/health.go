package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coingate/config"
	"github.com/guttosm/coingate/internal/domain/dto"
	"github.com/guttosm/coingate/internal/service"
)

// HealthHandler provides the unauthenticated health and version endpoints.
//
// Responsibilities:
//   - /health/: service status plus the upstream liveness probe result.
//   - /health/version: API version and title.
type HealthHandler struct {
	svc service.CoinService
	api config.APIConfig
}

// NewHealthHandler constructs a HealthHandler.
//
// Parameters:
//   - svc (service.CoinService): Used for the upstream liveness probe.
//   - api (config.APIConfig): Version and title reported by the endpoints.
func NewHealthHandler(svc service.CoinService, api config.APIConfig) *HealthHandler {
	return &HealthHandler{svc: svc, api: api}
}

// Health handles GET /health/ requests.
//
// A failed upstream probe only degrades the coingecko_status field; the
// endpoint itself always answers 200.
//
// Health godoc
// @Summary      Health check
// @Description  Check the health status of the API and external services
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health/ [get]
func (h *HealthHandler) Health(c *gin.Context) {
	coingeckoStatus := "unhealthy"
	if h.svc.Ping(c.Request.Context()) {
		coingeckoStatus = "healthy"
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:          "healthy",
		Version:         h.api.Version,
		CoinGeckoStatus: coingeckoStatus,
	})
}

// Version handles GET /health/version requests.
//
// Version godoc
// @Summary      Get API version
// @Description  Get the current version of the API
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.VersionResponse
// @Router       /health/version [get]
func (h *HealthHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, dto.VersionResponse{
		Version: h.api.Version,
		Title:   h.api.Title,
	})
}
