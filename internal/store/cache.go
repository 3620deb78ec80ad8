package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/donaldgifford/pricelist-monitor/internal/metrics"
	domain "github.com/donaldgifford/pricelist-monitor/pkg/types"
)

const (
	brandsCacheKey  = "plm:brands"
	defaultBrandTTL = 10 * time.Minute
)

// BrandCache is a read-through Redis cache in front of the brand table. Redis
// failures fall back to the underlying store; the cache never makes a read
// fail that the store alone would have served.
type BrandCache struct {
	Store

	rdb redis.Cmdable
	ttl time.Duration
	log *slog.Logger
}

// NewBrandCache wraps s so that ListBrands is served from rdb for ttl.
func NewBrandCache(s Store, rdb redis.Cmdable, ttl time.Duration, log *slog.Logger) *BrandCache {
	if ttl <= 0 {
		ttl = defaultBrandTTL
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &BrandCache{Store: s, rdb: rdb, ttl: ttl, log: log}
}

// ListBrands returns the cached brand list, loading it from the store on a
// miss.
func (c *BrandCache) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	val, err := c.rdb.Get(ctx, brandsCacheKey).Bytes()
	switch {
	case err == nil:
		var brands []domain.Brand
		if jerr := json.Unmarshal(val, &brands); jerr == nil {
			metrics.BrandCacheRequestsTotal.WithLabelValues("hit").Inc()
			return brands, nil
		}
		c.log.Warn("discarding undecodable brand cache entry")
		metrics.BrandCacheRequestsTotal.WithLabelValues("error").Inc()
	case errors.Is(err, redis.Nil):
		metrics.BrandCacheRequestsTotal.WithLabelValues("miss").Inc()
	default:
		c.log.Warn("brand cache read failed", "error", err)
		metrics.BrandCacheRequestsTotal.WithLabelValues("error").Inc()
	}

	brands, err := c.Store.ListBrands(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(brands)
	if err != nil {
		return nil, fmt.Errorf("encoding brands: %w", err)
	}
	if err := c.rdb.Set(ctx, brandsCacheKey, data, c.ttl).Err(); err != nil {
		c.log.Warn("brand cache write failed", "error", err)
	}

	return brands, nil
}

// ReplaceBrands writes through to the store and drops the cached list.
func (c *BrandCache) ReplaceBrands(ctx context.Context, brands []domain.Brand) error {
	if err := c.Store.ReplaceBrands(ctx, brands); err != nil {
		return err
	}
	if err := c.rdb.Del(ctx, brandsCacheKey).Err(); err != nil {
		c.log.Warn("brand cache invalidation failed", "error", err)
	}
	return nil
}
