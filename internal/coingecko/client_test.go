package coingecko

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_Coins(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"bitcoin","symbol":"btc","name":"Bitcoin"},{"id":"ethereum","symbol":"eth","name":"Ethereum"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	coins, err := c.Coins(context.Background())
	if err != nil {
		t.Fatalf("Coins: %v", err)
	}
	if gotPath != "/coins/list" {
		t.Fatalf("path=%q, want /coins/list", gotPath)
	}
	if len(coins) != 2 || coins[0].ID != "bitcoin" || coins[1].Symbol != "eth" {
		t.Fatalf("unexpected coins: %+v", coins)
	}
}

func TestClient_Categories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coins/categories/list" {
			t.Errorf("path=%q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"category_id":"defi","name":"DeFi"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	categories, err := c.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(categories) != 1 || categories[0].CategoryID != "defi" {
		t.Fatalf("unexpected categories: %+v", categories)
	}
}

func TestClient_Markets_ForwardsParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("vs_currency") != "inr" {
			t.Errorf("vs_currency=%q", q.Get("vs_currency"))
		}
		if q.Get("order") != "market_cap_desc" {
			t.Errorf("order=%q", q.Get("order"))
		}
		if q.Get("page") != "2" || q.Get("per_page") != "5" {
			t.Errorf("page=%q per_page=%q", q.Get("page"), q.Get("per_page"))
		}
		if q.Get("sparkline") != "false" {
			t.Errorf("sparkline=%q", q.Get("sparkline"))
		}
		if q.Get("category") != "defi" || q.Get("ids") != "bitcoin,ethereum" {
			t.Errorf("category=%q ids=%q", q.Get("category"), q.Get("ids"))
		}
		_, _ = w.Write([]byte(`[{"id":"bitcoin","symbol":"btc","name":"Bitcoin","current_price":5000000.5,"market_cap":1.0,"total_volume":2.0,"price_change_percentage_24h":-1.2,"market_cap_rank":1}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	markets, err := c.Markets(context.Background(), "inr", "defi", "bitcoin,ethereum", 2, 5)
	if err != nil {
		t.Fatalf("Markets: %v", err)
	}
	if len(markets) != 1 {
		t.Fatalf("len=%d, want 1", len(markets))
	}
	m := markets[0]
	if m.ID != "bitcoin" || m.CurrentPrice == nil || *m.CurrentPrice != 5000000.5 {
		t.Fatalf("unexpected market: %+v", m)
	}
	if m.MarketCapRank == nil || *m.MarketCapRank != 1 {
		t.Fatalf("rank not decoded: %+v", m)
	}
}

func TestClient_Markets_OmitsEmptyFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Has("category") || q.Has("ids") {
			t.Errorf("empty filters must be omitted, got %v", q)
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	if _, err := c.Markets(context.Background(), "cad", "", "", 1, 10); err != nil {
		t.Fatalf("Markets: %v", err)
	}
}

func TestClient_APIKeyHeader(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-cg-demo-api-key")
		_, _ = w.Write([]byte(`{"gecko_says":"(V3) To the Moon!"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "demo-key", time.Second)
	if ok := c.Ping(context.Background()); !ok {
		t.Fatalf("Ping returned false")
	}
	if gotKey != "demo-key" {
		t.Fatalf("x-cg-demo-api-key=%q, want 'demo-key'", gotKey)
	}
}

func TestClient_ErrorMapping(t *testing.T) {
	t.Run("non-2xx maps to ErrUnavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "", time.Second)
		_, err := c.Coins(context.Background())
		if !errors.Is(err, ErrUnavailable) {
			t.Fatalf("expected ErrUnavailable, got %v", err)
		}
	})

	t.Run("connection refused maps to ErrUnavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // refuse connections

		c := NewClient(srv.URL, "", time.Second)
		_, err := c.Coins(context.Background())
		if !errors.Is(err, ErrUnavailable) {
			t.Fatalf("expected ErrUnavailable, got %v", err)
		}
	})

	t.Run("slow upstream maps to ErrTimeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "", 20*time.Millisecond)
		_, err := c.Coins(context.Background())
		if !errors.Is(err, ErrTimeout) {
			t.Fatalf("expected ErrTimeout, got %v", err)
		}
	})

	t.Run("undecodable body maps to ErrUnavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "", time.Second)
		_, err := c.Categories(context.Background())
		if !errors.Is(err, ErrUnavailable) {
			t.Fatalf("expected ErrUnavailable, got %v", err)
		}
	})
}

func TestClient_Ping_FailureIsFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	if c.Ping(context.Background()) {
		t.Fatalf("Ping should be false on non-2xx")
	}
}
