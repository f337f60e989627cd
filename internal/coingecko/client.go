// Package coingecko is the outbound HTTP client for the CoinGecko REST API.
//
// It translates transport failures into the typed errors ErrTimeout and
// ErrUnavailable and performs no retries: a single failed call is surfaced
// immediately.
package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/guttosm/coingate/internal/domain/models"
)

// Market mirrors one record of the upstream /coins/markets response.
// Numeric fields are pointers because the upstream serializes missing
// market data as null.
type Market struct {
	ID                       string   `json:"id"`
	Symbol                   string   `json:"symbol"`
	Name                     string   `json:"name"`
	CurrentPrice             *float64 `json:"current_price"`
	MarketCap                *float64 `json:"market_cap"`
	TotalVolume              *float64 `json:"total_volume"`
	PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
	MarketCapRank            *int     `json:"market_cap_rank"`
}

// Client performs read-only calls against the CoinGecko API.
//
// A single http.Client with the configured timeout is shared by all calls;
// the timeout covers the whole request including body read.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient constructs a Client for the given base URL.
//
// Parameters:
//   - baseURL (string): Root URL of the CoinGecko REST API, without trailing slash.
//   - apiKey (string): Optional demo API key; sent as x-cg-demo-api-key when set.
//   - timeout (time.Duration): Per-call HTTP timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// get performs a GET against the given endpoint and decodes the JSON body
// into out.
//
// Failure mapping:
//   - deadline or timeout exceeded -> ErrTimeout
//   - any other transport error, non-2xx status, or undecodable body -> ErrUnavailable
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	u := c.baseURL + "/" + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if c.apiKey != "" {
		req.Header.Set("x-cg-demo-api-key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &urlErr) && urlErr.Timeout()) {
			return fmt.Errorf("%w: %s", ErrTimeout, endpoint)
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s returned status %d", ErrUnavailable, endpoint, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decoding %s response: %v", ErrUnavailable, endpoint, err)
		}
	}
	return nil
}

// Coins returns the full upstream coin list (id, symbol, name), unpaginated.
// Pagination happens downstream.
func (c *Client) Coins(ctx context.Context) ([]models.CoinSummary, error) {
	var coins []models.CoinSummary
	if err := c.get(ctx, "coins/list", nil, &coins); err != nil {
		return nil, err
	}
	return coins, nil
}

// Categories returns the full upstream category list, unpaginated.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.get(ctx, "coins/categories/list", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Markets queries /coins/markets for one currency.
//
// Filters and pagination are forwarded directly; ordering follows the
// upstream market-cap-descending default and is not re-sorted client-side.
//
// Parameters:
//   - currency (string): vs_currency value (e.g., "inr").
//   - category (string): Optional category filter; omitted when empty.
//   - ids (string): Optional comma-separated coin IDs; omitted when empty.
//   - page, perPage (int): Forwarded as-is to the upstream.
func (c *Client) Markets(ctx context.Context, currency, category, ids string, page, perPage int) ([]Market, error) {
	params := url.Values{}
	params.Set("vs_currency", currency)
	params.Set("order", "market_cap_desc")
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("page", strconv.Itoa(page))
	params.Set("sparkline", "false")
	if category != "" {
		params.Set("category", category)
	}
	if ids != "" {
		params.Set("ids", ids)
	}

	var markets []Market
	if err := c.get(ctx, "coins/markets", params, &markets); err != nil {
		return nil, err
	}
	return markets, nil
}

// Ping probes upstream liveness. Any failure (timeout, non-2xx, network
// error) maps to false; it never returns an error.
func (c *Client) Ping(ctx context.Context) bool {
	return c.get(ctx, "ping", nil, nil) == nil
}
