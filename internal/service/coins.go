package service

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/coingate/internal/coingecko"
	"github.com/guttosm/coingate/internal/domain/models"
)

// Currencies the market endpoint reports. The primary currency drives the
// merge: it defines the result set and the iteration order.
const (
	primaryCurrency   = "inr"
	secondaryCurrency = "cad"
)

// MarketData is the upstream surface the service consumes.
// *coingecko.Client satisfies it; tests substitute fakes.
type MarketData interface {
	Coins(ctx context.Context) ([]models.CoinSummary, error)
	Categories(ctx context.Context) ([]models.Category, error)
	Markets(ctx context.Context, currency, category, ids string, page, perPage int) ([]coingecko.Market, error)
	Ping(ctx context.Context) bool
}

var _ MarketData = (*coingecko.Client)(nil)

// CoinService defines the aggregation operations behind the coin endpoints.
type CoinService interface {
	Coins(ctx context.Context, page, perPage int) (models.Page[models.CoinSummary], error)
	Categories(ctx context.Context, page, perPage int) (models.Page[models.Category], error)
	MarketDetails(ctx context.Context, coinIDs []string, category string, page, perPage int) (models.Page[models.CoinMarketDetail], error)
	Ping(ctx context.Context) bool
}

type coinService struct {
	upstream MarketData
}

// NewCoinService constructs the CoinService over an upstream client.
func NewCoinService(upstream MarketData) CoinService {
	return &coinService{upstream: upstream}
}

// Coins fetches the full upstream coin list and paginates it in memory.
func (s *coinService) Coins(ctx context.Context, page, perPage int) (models.Page[models.CoinSummary], error) {
	coins, err := s.upstream.Coins(ctx)
	if err != nil {
		return models.Page[models.CoinSummary]{}, err
	}
	return Paginate(coins, page, perPage), nil
}

// Categories fetches the full upstream category list and paginates it in memory.
func (s *coinService) Categories(ctx context.Context, page, perPage int) (models.Page[models.Category], error) {
	categories, err := s.upstream.Categories(ctx)
	if err != nil {
		return models.Page[models.Category]{}, err
	}
	return Paginate(categories, page, perPage), nil
}

// MarketDetails merges two currency-scoped market queries into enriched records.
//
// Both queries carry identical filters and pagination and run concurrently.
// The primary (INR) result defines the result set and its order: records
// present only in the secondary (CAD) result are dropped, and a missing CAD
// counterpart leaves the CAD fields nil. Identity fields always come from
// the INR record.
//
// Page.Total is the number of merged items on this page, not an upstream
// total: the provider does not expose one.
func (s *coinService) MarketDetails(ctx context.Context, coinIDs []string, category string, page, perPage int) (models.Page[models.CoinMarketDetail], error) {
	ids := strings.Join(coinIDs, ",")

	var inr, cad []coingecko.Market
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		inr, err = s.upstream.Markets(gctx, primaryCurrency, category, ids, page, perPage)
		return err
	})
	g.Go(func() error {
		var err error
		cad, err = s.upstream.Markets(gctx, secondaryCurrency, category, ids, page, perPage)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.Page[models.CoinMarketDetail]{}, err
	}

	cadByID := make(map[string]coingecko.Market, len(cad))
	for _, m := range cad {
		cadByID[m.ID] = m
	}

	details := make([]models.CoinMarketDetail, 0, len(inr))
	for _, m := range inr {
		detail := models.CoinMarketDetail{
			ID:                       m.ID,
			Symbol:                   m.Symbol,
			Name:                     m.Name,
			CurrentPriceINR:          m.CurrentPrice,
			MarketCapINR:             m.MarketCap,
			TotalVolumeINR:           m.TotalVolume,
			PriceChangePercentage24h: m.PriceChangePercentage24h,
			MarketCapRank:            m.MarketCapRank,
		}
		if counterpart, ok := cadByID[m.ID]; ok {
			detail.CurrentPriceCAD = counterpart.CurrentPrice
			detail.MarketCapCAD = counterpart.MarketCap
			detail.TotalVolumeCAD = counterpart.TotalVolume
		}
		details = append(details, detail)
	}

	return models.Page[models.CoinMarketDetail]{
		Items:   details,
		Page:    page,
		PerPage: perPage,
		Total:   len(details),
	}, nil
}

// Ping forwards the upstream liveness probe.
func (s *coinService) Ping(ctx context.Context) bool {
	return s.upstream.Ping(ctx)
}
