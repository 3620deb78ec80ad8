package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/pricelist-monitor/internal/catalog"
	"github.com/donaldgifford/pricelist-monitor/internal/metrics"
	"github.com/donaldgifford/pricelist-monitor/internal/notify"
	"github.com/donaldgifford/pricelist-monitor/internal/store"
	domain "github.com/donaldgifford/pricelist-monitor/pkg/types"
)

const (
	tracerName = "github.com/donaldgifford/pricelist-monitor/internal/engine"

	defaultBrandDelay     = 200 * time.Millisecond
	defaultMessageDelay   = 500 * time.Millisecond
	defaultBootstrapDelay = time.Second
	defaultFetchTimeout   = 15 * time.Second
)

// TokenProvider yields a valid catalog session token.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// CycleResult summarizes one poll-diff-notify cycle.
type CycleResult struct {
	ID           string
	BrandsTotal  int
	BrandsFailed int
	Changes      int
	Messages     int
	// DeliveryErr joins every failed send; delivery failures never abort the
	// cycle.
	DeliveryErr error
}

// Engine runs the poll-diff-notify cycle.
type Engine struct {
	store    store.Store
	catalog  catalog.CatalogClient
	tokens   TokenProvider
	notifier notify.Notifier
	log      *slog.Logger
	tracer   trace.Tracer
	now      func() time.Time

	brandDelay     time.Duration
	messageDelay   time.Duration
	bootstrapDelay time.Duration
	fetchTimeout   time.Duration
	maxLength      int
	batchOpts      []notify.BatchOption

	running atomic.Bool
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	c catalog.CatalogClient,
	tp TokenProvider,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:          s,
		catalog:        c,
		tokens:         tp,
		notifier:       n,
		log:            slog.Default(),
		tracer:         otel.Tracer(tracerName),
		now:            time.Now,
		brandDelay:     defaultBrandDelay,
		messageDelay:   defaultMessageDelay,
		bootstrapDelay: defaultBootstrapDelay,
		fetchTimeout:   defaultFetchTimeout,
		maxLength:      notify.DefaultMaxLength,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithClock overrides the time source stamped on change records.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// WithBrandDelay sets the pause between brand fetches.
func WithBrandDelay(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.brandDelay = d
	}
}

// WithMessageDelay sets the pause between notification sends.
func WithMessageDelay(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.messageDelay = d
	}
}

// WithBootstrapDelay sets the pause between brands during the initial load.
func WithBootstrapDelay(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.bootstrapDelay = d
	}
}

// WithFetchTimeout bounds each pricelist fetch.
func WithFetchTimeout(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.fetchTimeout = d
		}
	}
}

// WithMessageFormat sets the maximum message length and the batch options
// used to render notifications.
func WithMessageFormat(maxLength int, opts ...notify.BatchOption) EngineOption {
	return func(e *Engine) {
		e.maxLength = maxLength
		e.batchOpts = opts
	}
}

// WithTracer sets the tracer used for cycle spans.
func WithTracer(t trace.Tracer) EngineOption {
	return func(e *Engine) {
		e.tracer = t
	}
}

// RunCycle polls every stored brand, records the differences against the
// previous snapshots and notifies subscribers. Only one cycle runs at a
// time; a concurrent call returns ErrCycleInProgress.
func (eng *Engine) RunCycle(ctx context.Context) (*CycleResult, error) {
	if !eng.running.CompareAndSwap(false, true) {
		metrics.CyclesSkippedTotal.Inc()
		return nil, ErrCycleInProgress
	}
	defer eng.running.Store(false)

	start := time.Now()
	ctx, span := eng.tracer.Start(ctx, "engine.RunCycle")
	defer span.End()

	res := &CycleResult{}
	recorded := true
	id, err := eng.store.InsertCycleRun(ctx)
	if err != nil {
		eng.log.Warn("recording cycle start failed", "error", err)
		id = uuid.NewString()
		recorded = false
	}
	res.ID = id
	span.SetAttributes(attribute.String("cycle.id", id))

	log := eng.log.With("cycle_id", id)
	log.Info("cycle starting")

	err = eng.runCycle(ctx, log, res)

	metrics.CycleDuration.Observe(time.Since(start).Seconds())
	status := domain.CycleSucceeded
	if err != nil {
		status = domain.CycleFailed
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("cycle failed", "error", err)
	} else {
		metrics.LastSuccessfulCycleTimestamp.SetToCurrentTime()
		log.Info("cycle complete",
			"brands", res.BrandsTotal,
			"brands_failed", res.BrandsFailed,
			"changes", res.Changes,
			"messages", res.Messages,
		)
	}
	metrics.CyclesTotal.WithLabelValues(status).Inc()

	if recorded {
		eng.completeRun(ctx, res, status, err)
	}

	return res, err
}

func (eng *Engine) runCycle(ctx context.Context, log *slog.Logger, res *CycleResult) error {
	if _, err := eng.tokens.Token(ctx); err != nil {
		return fmt.Errorf("acquiring catalog token: %w", err)
	}

	brands, err := eng.store.ListBrands(ctx)
	if err != nil {
		return fmt.Errorf("%w: listing brands: %w", ErrPersistence, err)
	}
	res.BrandsTotal = len(brands)
	if len(brands) == 0 {
		log.Warn("no brands stored, nothing to poll")
		return nil
	}

	var changes, fetched int
	for i := range brands {
		if i > 0 {
			if err := sleep(ctx, eng.brandDelay); err != nil {
				return err
			}
		}

		b := brands[i]
		brandChanges, n, err := eng.processBrand(ctx, b)
		if err != nil {
			if errors.Is(err, ErrPersistence) {
				return err
			}
			res.BrandsFailed++
			metrics.BrandFetchErrorsTotal.Inc()
			log.Error("brand skipped", "brand", b.Name, "brand_id", b.ID, "error", err)
			continue
		}

		fetched += n
		changes += len(brandChanges)
		for j := range brandChanges {
			metrics.ChangesDetectedTotal.WithLabelValues(string(brandChanges[j].ChangeType)).Inc()
		}
		if len(brandChanges) > 0 {
			log.Info("changes detected", "brand", b.Name, "brand_id", b.ID, "changes", len(brandChanges))
		}
	}

	metrics.ProductsFetched.Set(float64(fetched))
	res.Changes = changes

	return eng.dispatch(ctx, log, res)
}

// processBrand fetches one brand's pricelist, diffs it against the stored
// snapshot, stages the changes and replaces the snapshot. Changes are staged
// before the snapshot moves on, so a cycle that aborts later still leaves
// them for the next dispatch. A panic is reported as a fetch failure for
// this brand only.
func (eng *Engine) processBrand(
	ctx context.Context,
	b domain.Brand,
) (changes []domain.ChangeRecord, fetched int, err error) {
	defer func() {
		if r := recover(); r != nil {
			changes, fetched = nil, 0
			err = fmt.Errorf("%w: brand %d panicked: %v", ErrFetch, b.ID, r)
		}
	}()

	ctx, span := eng.tracer.Start(ctx, "engine.processBrand", trace.WithAttributes(
		attribute.Int64("brand.id", b.ID),
		attribute.String("brand.name", b.Name),
	))
	defer span.End()

	fetchCtx, cancel := context.WithTimeout(ctx, eng.fetchTimeout)
	products, err := eng.catalog.FetchPricelist(fetchCtx, b.ID)
	cancel()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return nil, 0, fmt.Errorf("%w: brand %d: %w", ErrFetch, b.ID, err)
	}

	old, err := eng.store.ProductsByBrand(ctx, b.ID)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: loading snapshot for brand %d: %w", ErrPersistence, b.ID, err)
	}

	changes = Diff(old, products, b, eng.now())

	if len(changes) > 0 {
		if err := eng.store.AppendChangeRecords(ctx, changes); err != nil {
			return nil, 0, fmt.Errorf("%w: staging changes for brand %d: %w", ErrPersistence, b.ID, err)
		}
	}

	if err := eng.store.ReplaceProducts(ctx, b.ID, products); err != nil {
		return nil, 0, fmt.Errorf("%w: replacing snapshot for brand %d: %w", ErrPersistence, b.ID, err)
	}

	span.SetAttributes(
		attribute.Int("products", len(products)),
		attribute.Int("changes", len(changes)),
	)
	return changes, len(products), nil
}

// dispatch delivers every staged change to its subscribers and clears the
// staging table. Records left by an earlier cycle that never cleared are
// delivered as well.
func (eng *Engine) dispatch(ctx context.Context, log *slog.Logger, res *CycleResult) error {
	staged, err := eng.store.ListChangeRecords(ctx)
	if err != nil {
		return fmt.Errorf("%w: reading staged changes: %w", ErrPersistence, err)
	}
	if len(staged) == 0 {
		log.Info("no changes detected")
		return nil
	}
	if leftover := len(staged) - res.Changes; leftover > 0 {
		log.Info("delivering changes staged by an earlier cycle", "changes", leftover)
	}

	subs, err := eng.store.ListSubscribers(ctx)
	if err != nil {
		return fmt.Errorf("%w: listing subscribers: %w", ErrPersistence, err)
	}

	routed := Route(staged, subs)
	if len(routed) == 0 {
		log.Info("no subscriber selected these changes", "subscribers", len(subs))
	}

	var (
		deliveryErrs []error
		attempts     int
	)
	for _, s := range subs {
		selected, ok := routed[s.UserID]
		if !ok {
			continue
		}
		delete(routed, s.UserID)

		messages := notify.Batch(selected, eng.maxLength, eng.batchOpts...)
		for i, msg := range messages {
			if attempts > 0 {
				if err := sleep(ctx, eng.messageDelay); err != nil {
					res.DeliveryErr = errors.Join(deliveryErrs...)
					return err
				}
			}
			attempts++

			if err := eng.notifier.Send(ctx, s.UserID, msg); err != nil {
				metrics.NotificationFailuresTotal.Inc()
				log.Error("notification failed",
					"user_id", s.UserID,
					"message", i+1,
					"messages", len(messages),
					"error", err,
				)
				deliveryErrs = append(deliveryErrs, fmt.Errorf(
					"%w: user %d message %d/%d: %w", ErrDelivery, s.UserID, i+1, len(messages), err,
				))
				continue
			}
			metrics.NotificationsSentTotal.Inc()
			res.Messages++
		}
	}
	res.DeliveryErr = errors.Join(deliveryErrs...)

	if err := eng.store.ClearChangeRecords(ctx); err != nil {
		return fmt.Errorf("%w: clearing staged changes: %w", ErrPersistence, err)
	}

	return nil
}

func (eng *Engine) completeRun(ctx context.Context, res *CycleResult, status string, cycleErr error) {
	run := &domain.CycleRun{
		ID:           res.ID,
		Status:       status,
		BrandsTotal:  res.BrandsTotal,
		BrandsFailed: res.BrandsFailed,
		Changes:      res.Changes,
	}
	if cycleErr != nil {
		run.ErrorText = cycleErr.Error()
	}

	if err := eng.store.CompleteCycleRun(context.WithoutCancel(ctx), run); err != nil {
		eng.log.Warn("recording cycle completion failed", "cycle_id", res.ID, "error", err)
	}
}

// SyncBrands refreshes the stored brand list from the catalog. An empty
// catalog answer leaves the stored list untouched.
func (eng *Engine) SyncBrands(ctx context.Context) ([]domain.Brand, error) {
	ctx, span := eng.tracer.Start(ctx, "engine.SyncBrands")
	defer span.End()

	fetchCtx, cancel := context.WithTimeout(ctx, eng.fetchTimeout)
	brands, err := eng.catalog.FetchBrands(fetchCtx)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("%w: brands: %w", ErrFetch, err)
	}
	if len(brands) == 0 {
		return nil, fmt.Errorf("%w: catalog returned no brands", ErrFetch)
	}

	if err := eng.store.ReplaceBrands(ctx, brands); err != nil {
		return nil, fmt.Errorf("%w: storing brands: %w", ErrPersistence, err)
	}

	eng.log.Info("brands synced", "brands", len(brands))
	return brands, nil
}

// Bootstrap performs the initial load when no products are stored yet: it
// syncs brands and stores every brand's pricelist without notifying anyone.
// It reports whether a load took place.
func (eng *Engine) Bootstrap(ctx context.Context) (bool, error) {
	n, err := eng.store.CountProducts(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: counting products: %w", ErrPersistence, err)
	}
	if n > 0 {
		eng.log.Debug("snapshot present, skipping initial load", "products", n)
		return false, nil
	}

	eng.log.Info("no snapshot stored, running initial load")

	brands, err := eng.SyncBrands(ctx)
	if err != nil {
		return false, err
	}

	var loaded, failed int
	for i, b := range brands {
		if i > 0 {
			if err := sleep(ctx, eng.bootstrapDelay); err != nil {
				return true, err
			}
		}

		fetchCtx, cancel := context.WithTimeout(ctx, eng.fetchTimeout)
		products, err := eng.catalog.FetchPricelist(fetchCtx, b.ID)
		cancel()
		if err != nil {
			failed++
			eng.log.Error("initial load skipped brand", "brand", b.Name, "brand_id", b.ID, "error", err)
			continue
		}

		if err := eng.store.ReplaceProducts(ctx, b.ID, products); err != nil {
			return true, fmt.Errorf("%w: storing snapshot for brand %d: %w", ErrPersistence, b.ID, err)
		}
		loaded += len(products)
	}

	eng.log.Info("initial load complete", "brands", len(brands), "brands_failed", failed, "products", loaded)
	return true, nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
