package dto

import (
	"errors"
	"testing"
	"time"

	"github.com/guttosm/coingate/internal/domain/models"
)

func TestErrorResponse_Error(t *testing.T) {
	e := ErrorResponse{Message: "oops"}
	if e.Error() != "oops" {
		t.Fatalf("want 'oops' got %q", e.Error())
	}
	e2 := ErrorResponse{Message: "oops", ErrorDetails: "bad"}
	if e2.Error() != "oops: bad" {
		t.Fatalf("want 'oops: bad' got %q", e2.Error())
	}
}

func TestNewErrorResponse(t *testing.T) {
	// without inner error
	e := NewErrorResponse("msg", nil)
	if e.Message != "msg" || e.ErrorDetails != "" {
		t.Fatalf("unexpected %+v", e)
	}
	if e.Timestamp.IsZero() || time.Since(e.Timestamp) > time.Second {
		t.Fatalf("timestamp not set")
	}

	// with inner error
	err := errors.New("boom")
	e2 := NewErrorResponse("msg", err)
	if e2.ErrorDetails != "boom" || e2.Message != "msg" {
		t.Fatalf("unexpected %+v", e2)
	}
}

func TestNewPaginatedResponse(t *testing.T) {
	page := models.Page[models.CoinSummary]{
		Items:   []models.CoinSummary{{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin"}},
		Page:    2,
		PerPage: 1,
		Total:   5,
	}

	resp := NewPaginatedResponse(page)
	if resp.Page != 2 || resp.PerPage != 1 || resp.Total != 5 {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	items, ok := resp.Data.([]models.CoinSummary)
	if !ok || len(items) != 1 || items[0].ID != "bitcoin" {
		t.Fatalf("unexpected data: %+v", resp.Data)
	}
}
