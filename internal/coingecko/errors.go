package coingecko

import "errors"

// Sentinel errors for upstream failures. The request pipeline maps them to
// distinct response codes (504 vs 503), so they must stay distinguishable.
var (
	// ErrTimeout reports a request that exceeded the configured timeout.
	ErrTimeout = errors.New("coingecko api timeout")

	// ErrUnavailable reports any other transport or non-success-status failure.
	ErrUnavailable = errors.New("coingecko api unavailable")
)
