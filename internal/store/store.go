// Package store defines the datastore abstraction for pricelist-monitor.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/donaldgifford/pricelist-monitor/pkg/types"
)

// ErrNotFound is returned when a single-row lookup matches nothing.
var ErrNotFound = errors.New("not found")

// Store defines all data access operations for pricelist-monitor.
type Store interface {
	// Brands
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	ReplaceBrands(ctx context.Context, brands []domain.Brand) error

	// Snapshots
	ProductsByBrand(ctx context.Context, brandID int64) ([]domain.Product, error)
	ReplaceProducts(ctx context.Context, brandID int64, products []domain.Product) error
	CountProducts(ctx context.Context) (int, error)

	// Change log (staging area, cleared after dispatch)
	AppendChangeRecords(ctx context.Context, changes []domain.ChangeRecord) error
	ListChangeRecords(ctx context.Context) ([]domain.ChangeRecord, error)
	ClearChangeRecords(ctx context.Context) error

	// Subscribers
	ListSubscribers(ctx context.Context) ([]domain.Subscriber, error)
	UpsertSubscriber(ctx context.Context, s *domain.Subscriber) error

	// Tokens
	GetToken(ctx context.Context, serviceID string) (*domain.Credential, error)
	SaveToken(ctx context.Context, c *domain.Credential) error
	DeleteToken(ctx context.Context, serviceID string) error
	DeleteExpiredTokens(ctx context.Context, now time.Time) (int, error)

	// Cycle runs
	InsertCycleRun(ctx context.Context) (id string, err error)
	CompleteCycleRun(ctx context.Context, run *domain.CycleRun) error
	ListCycleRuns(ctx context.Context, limit int) ([]domain.CycleRun, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
