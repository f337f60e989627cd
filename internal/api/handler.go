package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coingate/config"
	"github.com/guttosm/coingate/internal/coingecko"
	"github.com/guttosm/coingate/internal/domain/dto"
	"github.com/guttosm/coingate/internal/service"
)

// CoinsHandler provides HTTP handlers for the coin endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Invoke the aggregation service
//   - Translate service results into response DTOs
//   - Map upstream failures to gateway status codes (504/503)
type CoinsHandler struct {
	svc        service.CoinService
	pagination config.PaginationConfig
}

// NewCoinsHandler constructs a new CoinsHandler instance.
//
// Parameters:
//   - svc (service.CoinService): Aggregation service dependency.
//   - pagination (config.PaginationConfig): Bounds for page query parameters.
//
// Returns:
//   - *CoinsHandler: A handler ready to be registered with the router.
func NewCoinsHandler(svc service.CoinService, pagination config.PaginationConfig) *CoinsHandler {
	return &CoinsHandler{svc: svc, pagination: pagination}
}

// pageParams parses and validates page_num and per_page query parameters.
//
// Returns the parsed values, or writes a 422 response and returns false
// when a parameter is malformed or out of bounds.
func (h *CoinsHandler) pageParams(c *gin.Context) (page, perPage int, ok bool) {
	page = 1
	if s := c.Query("page_num"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse("page_num must be an integer >= 1", err))
			return 0, 0, false
		}
		page = v
	}

	perPage = h.pagination.DefaultPageSize
	if s := c.Query("per_page"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > h.pagination.MaxPageSize {
			c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(
				fmt.Sprintf("per_page must be an integer between 1 and %d", h.pagination.MaxPageSize), err))
			return 0, 0, false
		}
		perPage = v
	}

	return page, perPage, true
}

// upstreamError maps a Market Data Client failure to the gateway response:
// 504 for a timed-out upstream call, 503 for any other upstream failure.
func upstreamError(c *gin.Context, err error) {
	if errors.Is(err, coingecko.ErrTimeout) {
		c.JSON(http.StatusGatewayTimeout, dto.NewErrorResponse("CoinGecko API timeout", err))
		return
	}
	c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse("CoinGecko API error", err))
}

// ListCoins handles GET /v1/coins/ requests.
//
// ListCoins godoc
// @Summary      List all coins
// @Description  Get paginated list of all available coins with their IDs
// @Tags         coins
// @Produce      json
// @Security     BearerAuth
// @Param        page_num  query     int  false  "Page number (starts from 1)"  example(1)
// @Param        per_page  query     int  false  "Number of items per page"     example(10)
// @Success      200       {object}  dto.PaginatedResponse  "Success"
// @Failure      401       {object}  dto.ErrorResponse      "Invalid or expired token"
// @Failure      403       {object}  dto.ErrorResponse      "Missing credentials"
// @Failure      422       {object}  dto.ErrorResponse      "Invalid pagination parameters"
// @Failure      503       {object}  dto.ErrorResponse      "Upstream unavailable"
// @Failure      504       {object}  dto.ErrorResponse      "Upstream timeout"
// @Router       /v1/coins/ [get]
func (h *CoinsHandler) ListCoins(c *gin.Context) {
	page, perPage, ok := h.pageParams(c)
	if !ok {
		return
	}

	result, err := h.svc.Coins(c.Request.Context(), page, perPage)
	if err != nil {
		upstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(result))
}

// ListCategories handles GET /v1/coins/categories requests.
//
// ListCategories godoc
// @Summary      List coin categories
// @Description  Get paginated list of all coin categories
// @Tags         coins
// @Produce      json
// @Security     BearerAuth
// @Param        page_num  query     int  false  "Page number (starts from 1)"  example(1)
// @Param        per_page  query     int  false  "Number of items per page"     example(10)
// @Success      200       {object}  dto.PaginatedResponse  "Success"
// @Failure      401       {object}  dto.ErrorResponse      "Invalid or expired token"
// @Failure      403       {object}  dto.ErrorResponse      "Missing credentials"
// @Failure      422       {object}  dto.ErrorResponse      "Invalid pagination parameters"
// @Failure      503       {object}  dto.ErrorResponse      "Upstream unavailable"
// @Failure      504       {object}  dto.ErrorResponse      "Upstream timeout"
// @Router       /v1/coins/categories [get]
func (h *CoinsHandler) ListCategories(c *gin.Context) {
	page, perPage, ok := h.pageParams(c)
	if !ok {
		return
	}

	result, err := h.svc.Categories(c.Request.Context(), page, perPage)
	if err != nil {
		upstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(result))
}

// GetMarketData handles GET /v1/coins/market requests.
//
// The response total is the number of items on the current page: CoinGecko
// does not expose a true total for market queries.
//
// GetMarketData godoc
// @Summary      Get coins with market data
// @Description  Get coins with market data in INR and CAD. Filter by coin IDs or category.
// @Tags         coins
// @Produce      json
// @Security     BearerAuth
// @Param        coin_ids  query     string  false  "Comma-separated list of coin IDs"  example(bitcoin,ethereum)
// @Param        category  query     string  false  "Filter by category"                example(decentralized-finance-defi)
// @Param        page_num  query     int     false  "Page number (starts from 1)"       example(1)
// @Param        per_page  query     int     false  "Number of items per page"          example(10)
// @Success      200       {object}  dto.PaginatedResponse  "Success"
// @Failure      401       {object}  dto.ErrorResponse      "Invalid or expired token"
// @Failure      403       {object}  dto.ErrorResponse      "Missing credentials"
// @Failure      422       {object}  dto.ErrorResponse      "Invalid pagination parameters"
// @Failure      503       {object}  dto.ErrorResponse      "Upstream unavailable"
// @Failure      504       {object}  dto.ErrorResponse      "Upstream timeout"
// @Router       /v1/coins/market [get]
func (h *CoinsHandler) GetMarketData(c *gin.Context) {
	page, perPage, ok := h.pageParams(c)
	if !ok {
		return
	}

	var coinIDs []string
	if raw := c.Query("coin_ids"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				coinIDs = append(coinIDs, id)
			}
		}
	}
	category := c.Query("category")

	result, err := h.svc.MarketDetails(c.Request.Context(), coinIDs, category, page, perPage)
	if err != nil {
		upstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(result))
}
