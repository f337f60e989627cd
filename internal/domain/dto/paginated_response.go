package dto

import "github.com/guttosm/coingate/internal/domain/models"

// PaginatedResponse is the envelope returned by every list endpoint.
//
// Fields match the API contract and may differ from internal domain models.
// This ensures loose coupling between the API surface and business logic.
type PaginatedResponse struct {
	Data    any `json:"data"`                  // List of items for the current page
	Page    int `json:"page" example:"1"`      // Current page number (1-based)
	PerPage int `json:"per_page" example:"10"` // Items per page
	Total   int `json:"total" example:"25"`    // Total number of items
}

// NewPaginatedResponse shapes an internal page into the response envelope.
func NewPaginatedResponse[T any](p models.Page[T]) PaginatedResponse {
	return PaginatedResponse{
		Data:    p.Items,
		Page:    p.Page,
		PerPage: p.PerPage,
		Total:   p.Total,
	}
}
