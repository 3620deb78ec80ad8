package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/pricelist-monitor/pkg/types"
)

const defaultPoolSize = 5

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
// Its methods are covered by the integration-tagged tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling. A
// non-positive poolSize falls back to the default.
func NewPostgresStore(ctx context.Context, connString string, poolSize int) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}
	cfg.MaxConns = int32(poolSize) //nolint:gosec // bounded by config

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// ListBrands returns every stored brand ordered by name.
func (s *PostgresStore) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	rows, err := s.pool.Query(ctx, queryListBrands)
	if err != nil {
		return nil, fmt.Errorf("querying brands: %w", err)
	}
	defer rows.Close()

	var brands []domain.Brand
	for rows.Next() {
		var b domain.Brand
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("scanning brand: %w", err)
		}
		brands = append(brands, b)
	}

	return brands, rows.Err()
}

// ReplaceBrands upserts brands and removes the ones no longer listed, in one
// transaction.
func (s *PostgresStore) ReplaceBrands(ctx context.Context, brands []domain.Brand) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		ids := make([]int64, 0, len(brands))
		b := &pgx.Batch{}
		for _, br := range brands {
			b.Queue(queryUpsertBrand, br.ID, br.Name)
			ids = append(ids, br.ID)
		}
		b.Queue(queryDeleteBrandsNotIn, ids)

		if err := tx.SendBatch(ctx, b).Close(); err != nil {
			return fmt.Errorf("replacing brands: %w", err)
		}
		return nil
	})
}

// ProductsByBrand returns the stored snapshot for one brand. An unknown brand
// yields an empty snapshot.
func (s *PostgresStore) ProductsByBrand(ctx context.Context, brandID int64) ([]domain.Product, error) {
	rows, err := s.pool.Query(ctx, queryProductsByBrand, brandID)
	if err != nil {
		return nil, fmt.Errorf("querying products for brand %d: %w", brandID, err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID, &p.BrandID, &p.Subcategory, &p.AttributeGroup,
			&p.TotalQuantity, &p.Price, &p.CountryCode,
		); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// ReplaceProducts swaps the stored snapshot for brandID with products. The
// delete and the copy share one transaction so readers never see a partial
// snapshot.
func (s *PostgresStore) ReplaceProducts(
	ctx context.Context,
	brandID int64,
	products []domain.Product,
) error {
	rows := snapshotRows(brandID, products)

	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, queryDeleteProductsByBrand, brandID); err != nil {
			return fmt.Errorf("deleting snapshot for brand %d: %w", brandID, err)
		}
		if len(rows) == 0 {
			return nil
		}
		if _, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{"products"},
			productColumns,
			pgx.CopyFromRows(rows),
		); err != nil {
			return fmt.Errorf("copying snapshot for brand %d: %w", brandID, err)
		}
		return nil
	})
}

// snapshotRows converts products into CopyFrom rows, keyed to brandID. A
// product listed twice keeps its first position and its last values.
func snapshotRows(brandID int64, products []domain.Product) [][]any {
	index := make(map[int64]int, len(products))
	rows := make([][]any, 0, len(products))
	for _, p := range products {
		row := []any{
			p.ID, brandID, p.Subcategory, p.AttributeGroup,
			p.TotalQuantity, p.Price, p.CountryCode,
		}
		if i, ok := index[p.ID]; ok {
			rows[i] = row
			continue
		}
		index[p.ID] = len(rows)
		rows = append(rows, row)
	}
	return rows
}

// CountProducts returns the number of stored products across all brands.
func (s *PostgresStore) CountProducts(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, queryCountProducts).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting products: %w", err)
	}
	return count, nil
}

// AppendChangeRecords stages changes for dispatch. Records without an ID get
// one assigned.
func (s *PostgresStore) AppendChangeRecords(ctx context.Context, changes []domain.ChangeRecord) error {
	if len(changes) == 0 {
		return nil
	}

	b := &pgx.Batch{}
	for i := range changes {
		c := &changes[i]
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = time.Now()
		}
		b.Queue(queryInsertChangeRecord, pgx.NamedArgs{
			"id":           c.ID,
			"id_product":   c.ProductID,
			"id_brand":     c.BrandID,
			"change_type":  string(c.ChangeType),
			"old_value":    c.OldValue,
			"new_value":    c.NewValue,
			"old_price":    c.OldPrice,
			"new_price":    c.NewPrice,
			"old_quantity": c.OldQuantity,
			"new_quantity": c.NewQuantity,
			"product_name": c.ProductName,
			"brand_name":   c.BrandName,
			"country_abbr": c.CountryCode,
			"created_at":   c.CreatedAt,
		})
	}

	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if err := tx.SendBatch(ctx, b).Close(); err != nil {
			return fmt.Errorf("inserting change records: %w", err)
		}
		return nil
	})
}

// ListChangeRecords returns the staged changes in insertion order.
func (s *PostgresStore) ListChangeRecords(ctx context.Context) ([]domain.ChangeRecord, error) {
	rows, err := s.pool.Query(ctx, queryListChangeRecords)
	if err != nil {
		return nil, fmt.Errorf("querying change records: %w", err)
	}
	defer rows.Close()

	var changes []domain.ChangeRecord
	for rows.Next() {
		var c domain.ChangeRecord
		if err := rows.Scan(
			&c.ID, &c.ProductID, &c.BrandID, &c.ChangeType,
			&c.OldValue, &c.NewValue, &c.OldPrice, &c.NewPrice,
			&c.OldQuantity, &c.NewQuantity,
			&c.ProductName, &c.BrandName, &c.CountryCode, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning change record: %w", err)
		}
		changes = append(changes, c)
	}

	return changes, rows.Err()
}

// ClearChangeRecords empties the staging area.
func (s *PostgresStore) ClearChangeRecords(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, queryClearChangeRecords); err != nil {
		return fmt.Errorf("clearing change records: %w", err)
	}
	return nil
}

// ListSubscribers returns every subscriber ordered by user ID.
func (s *PostgresStore) ListSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	rows, err := s.pool.Query(ctx, queryListSubscribers)
	if err != nil {
		return nil, fmt.Errorf("querying subscribers: %w", err)
	}
	defer rows.Close()

	var subs []domain.Subscriber
	for rows.Next() {
		var sub domain.Subscriber
		if err := rows.Scan(&sub.UserID, &sub.ReceiveApple, &sub.ReceiveOther); err != nil {
			return nil, fmt.Errorf("scanning subscriber: %w", err)
		}
		subs = append(subs, sub)
	}

	return subs, rows.Err()
}

// UpsertSubscriber creates or updates a subscriber's preferences.
func (s *PostgresStore) UpsertSubscriber(ctx context.Context, sub *domain.Subscriber) error {
	if _, err := s.pool.Exec(ctx, queryUpsertSubscriber,
		sub.UserID, sub.ReceiveApple, sub.ReceiveOther,
	); err != nil {
		return fmt.Errorf("upserting subscriber %d: %w", sub.UserID, err)
	}
	return nil
}

// GetToken returns the persisted credential for serviceID, or ErrNotFound.
func (s *PostgresStore) GetToken(ctx context.Context, serviceID string) (*domain.Credential, error) {
	var c domain.Credential
	err := s.pool.QueryRow(ctx, queryGetToken, serviceID).Scan(
		&c.ServiceID, &c.Token, &c.ExpiresAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting token for %s: %w", serviceID, err)
	}
	return &c, nil
}

// SaveToken persists c, replacing any previous token for the same service.
func (s *PostgresStore) SaveToken(ctx context.Context, c *domain.Credential) error {
	if _, err := s.pool.Exec(ctx, querySaveToken, c.ServiceID, c.Token, c.ExpiresAt); err != nil {
		return fmt.Errorf("saving token for %s: %w", c.ServiceID, err)
	}
	return nil
}

// DeleteToken removes the persisted token for serviceID. Deleting a missing
// token is not an error.
func (s *PostgresStore) DeleteToken(ctx context.Context, serviceID string) error {
	if _, err := s.pool.Exec(ctx, queryDeleteToken, serviceID); err != nil {
		return fmt.Errorf("deleting token for %s: %w", serviceID, err)
	}
	return nil
}

// DeleteExpiredTokens removes every token that expired before now and
// returns how many were removed.
func (s *PostgresStore) DeleteExpiredTokens(ctx context.Context, now time.Time) (int, error) {
	tag, err := s.pool.Exec(ctx, queryDeleteExpiredTokens, now)
	if err != nil {
		return 0, fmt.Errorf("deleting expired tokens: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// InsertCycleRun records the start of a cycle and returns its UUID.
func (s *PostgresStore) InsertCycleRun(ctx context.Context) (string, error) {
	id := uuid.NewString()
	if _, err := s.pool.Exec(ctx, queryInsertCycleRun, id); err != nil {
		return "", fmt.Errorf("inserting cycle run: %w", err)
	}
	return id, nil
}

// CompleteCycleRun stores the outcome of a finished cycle.
func (s *PostgresStore) CompleteCycleRun(ctx context.Context, run *domain.CycleRun) error {
	_, err := s.pool.Exec(ctx, queryCompleteCycleRun,
		run.ID, run.Status, run.BrandsTotal, run.BrandsFailed, run.Changes, run.ErrorText,
	)
	if err != nil {
		return fmt.Errorf("completing cycle run: %w", err)
	}
	return nil
}

// ListCycleRuns returns the most recent cycle runs, newest first.
func (s *PostgresStore) ListCycleRuns(ctx context.Context, limit int) ([]domain.CycleRun, error) {
	rows, err := s.pool.Query(ctx, queryListCycleRuns, limit)
	if err != nil {
		return nil, fmt.Errorf("querying cycle runs: %w", err)
	}
	defer rows.Close()

	return scanCycleRuns(rows)
}

// scanCycleRuns scans rows from a cycle_runs query into a slice.
func scanCycleRuns(rows pgx.Rows) ([]domain.CycleRun, error) {
	var runs []domain.CycleRun
	for rows.Next() {
		var r domain.CycleRun
		if err := rows.Scan(
			&r.ID, &r.StartedAt, &r.CompletedAt, &r.Status,
			&r.BrandsTotal, &r.BrandsFailed, &r.Changes, &r.ErrorText,
		); err != nil {
			return nil, fmt.Errorf("scanning cycle run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
