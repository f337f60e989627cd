package dto

// HealthResponse is the body of GET /health/.
//
// CoinGeckoStatus reflects the upstream liveness probe; a failed probe
// degrades this field but never fails the health response itself.
type HealthResponse struct {
	Status          string `json:"status" example:"healthy"`
	Version         string `json:"version" example:"1.0.0"`
	CoinGeckoStatus string `json:"coingecko_status" example:"healthy"`
}

// VersionResponse is the body of GET /health/version.
type VersionResponse struct {
	Version string `json:"version" example:"1.0.0"`
	Title   string `json:"title" example:"Cryptocurrency Market API"`
}
