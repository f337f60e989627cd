package models

// CoinSummary carries the identity fields of a coin as listed by the
// upstream provider: no market data, just enough to look one up.
type CoinSummary struct {
	ID     string `json:"id" example:"bitcoin"`
	Symbol string `json:"symbol" example:"btc"`
	Name   string `json:"name" example:"Bitcoin"`
}

// Category is a coin category as listed by the upstream provider.
type Category struct {
	CategoryID string `json:"category_id" example:"decentralized-finance-defi"`
	Name       string `json:"name" example:"Decentralized Finance (DeFi)"`
}

// CoinMarketDetail is a coin enriched with market data in both INR and CAD.
//
// It is built by merging two currency-scoped upstream responses on the coin
// ID. Identity fields always come from the INR response; CAD fields stay nil
// when the coin has no counterpart in the CAD response. Nil fields serialize
// as JSON null, matching the upstream convention for absent market data.
type CoinMarketDetail struct {
	ID                       string   `json:"id" example:"bitcoin"`
	Symbol                   string   `json:"symbol" example:"btc"`
	Name                     string   `json:"name" example:"Bitcoin"`
	CurrentPriceINR          *float64 `json:"current_price_inr"`
	CurrentPriceCAD          *float64 `json:"current_price_cad"`
	MarketCapINR             *float64 `json:"market_cap_inr"`
	MarketCapCAD             *float64 `json:"market_cap_cad"`
	TotalVolumeINR           *float64 `json:"total_volume_inr"`
	TotalVolumeCAD           *float64 `json:"total_volume_cad"`
	PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
	MarketCapRank            *int     `json:"market_cap_rank"`
}
