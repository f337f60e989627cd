package service

import "github.com/guttosm/coingate/internal/domain/models"

// Paginate slices an in-memory collection into one page.
//
// start = (page-1)*perPage, end = start+perPage; both are clamped to the
// collection bounds, so an out-of-range page yields an empty item list
// rather than an error. Total is always the full collection length and the
// original order is preserved.
func Paginate[T any](items []T, page, perPage int) models.Page[T] {
	start := (page - 1) * perPage
	end := start + perPage

	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return models.Page[T]{
		Items:   items[start:end],
		Page:    page,
		PerPage: perPage,
		Total:   len(items),
	}
}
