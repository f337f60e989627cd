package models

// Page is one page of an ordered collection.
//
// Total is the size of the full collection for endpoints that paginate
// in-memory. The market endpoint sets Total to the number of items actually
// returned, because the upstream provider does not expose a true total.
type Page[T any] struct {
	Items   []T
	Page    int // 1-based page number
	PerPage int
	Total   int
}
