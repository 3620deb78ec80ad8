// Package catalog provides a client for the supplier catalog HTTP API,
// abstracted behind interfaces for testability.
package catalog

import (
	"context"
	"errors"

	domain "github.com/donaldgifford/pricelist-monitor/pkg/types"
)

// ErrUnauthorized is returned when the catalog rejects the session token
// (HTTP 401 or 403) even after one re-authentication.
var ErrUnauthorized = errors.New("catalog rejected authorization")

// CatalogClient defines the catalog operations the monitor depends on.
type CatalogClient interface {
	FetchBrands(ctx context.Context) ([]domain.Brand, error)
	FetchPricelist(ctx context.Context, brandID int64) ([]domain.Product, error)
}

// TokenSource supplies session tokens and accepts rejection signals.
// credential.Manager satisfies it.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	Invalidate(token string)
}
