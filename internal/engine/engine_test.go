package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	catalogMocks "github.com/donaldgifford/pricelist-monitor/internal/catalog/mocks"
	"github.com/donaldgifford/pricelist-monitor/internal/credential"
	engineMocks "github.com/donaldgifford/pricelist-monitor/internal/engine/mocks"
	"github.com/donaldgifford/pricelist-monitor/internal/metrics"
	"github.com/donaldgifford/pricelist-monitor/internal/notify"
	notifyMocks "github.com/donaldgifford/pricelist-monitor/internal/notify/mocks"
	storeMocks "github.com/donaldgifford/pricelist-monitor/internal/store/mocks"
	domain "github.com/donaldgifford/pricelist-monitor/pkg/types"
)

// quietLogger returns a logger that discards output for tests.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	store    *storeMocks.MockStore
	catalog  *catalogMocks.MockCatalogClient
	tokens   *engineMocks.MockTokenProvider
	notifier *notifyMocks.MockNotifier
	eng      *Engine
}

func newFixture(t *testing.T, opts ...EngineOption) *fixture {
	t.Helper()

	f := &fixture{
		store:    storeMocks.NewMockStore(t),
		catalog:  catalogMocks.NewMockCatalogClient(t),
		tokens:   engineMocks.NewMockTokenProvider(t),
		notifier: notifyMocks.NewMockNotifier(t),
	}

	clock := func() time.Time { return testNow }
	base := []EngineOption{
		WithLogger(quietLogger()),
		WithClock(clock),
		WithBrandDelay(0),
		WithMessageDelay(0),
		WithBootstrapDelay(0),
		WithMessageFormat(0, notify.WithBatchClock(clock)),
	}
	f.eng = NewEngine(f.store, f.catalog, f.tokens, f.notifier, append(base, opts...)...)

	return f
}

// expectRun sets up the cycle run bookkeeping and returns a pointer that
// receives the completed run.
func (f *fixture) expectRun(id string) *domain.CycleRun {
	var completed domain.CycleRun
	f.store.EXPECT().InsertCycleRun(mock.Anything).Return(id, nil).Once()
	f.store.EXPECT().CompleteCycleRun(mock.Anything, mock.Anything).
		Run(func(_ context.Context, run *domain.CycleRun) { completed = *run }).
		Return(nil).Once()
	return &completed
}

// stageInMemory makes AppendChangeRecords/ListChangeRecords behave like a
// staging table.
func (f *fixture) stageInMemory() *[]domain.ChangeRecord {
	var staged []domain.ChangeRecord
	f.store.EXPECT().AppendChangeRecords(mock.Anything, mock.Anything).
		Run(func(_ context.Context, changes []domain.ChangeRecord) {
			staged = append(staged, changes...)
		}).
		Return(nil).Maybe()
	f.store.EXPECT().ListChangeRecords(mock.Anything).
		RunAndReturn(func(context.Context) ([]domain.ChangeRecord, error) {
			return staged, nil
		}).Maybe()
	return &staged
}

func TestNewEngine_Defaults(t *testing.T) {
	t.Parallel()

	eng := NewEngine(
		storeMocks.NewMockStore(t),
		catalogMocks.NewMockCatalogClient(t),
		engineMocks.NewMockTokenProvider(t),
		notifyMocks.NewMockNotifier(t),
	)

	assert.Equal(t, defaultBrandDelay, eng.brandDelay)
	assert.Equal(t, defaultMessageDelay, eng.messageDelay)
	assert.Equal(t, defaultBootstrapDelay, eng.bootstrapDelay)
	assert.Equal(t, defaultFetchTimeout, eng.fetchTimeout)
	assert.Equal(t, notify.DefaultMaxLength, eng.maxLength)
	assert.NotNil(t, eng.log)
	assert.NotNil(t, eng.tracer)
}

func TestRunCycle_PriceIncreaseAndNewProduct(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	run := f.expectRun("run-1")
	staged := f.stageInMemory()

	brand := domain.Brand{ID: 1, Name: "Apple"}
	old := []domain.Product{{ID: 1, BrandID: 1, AttributeGroup: "iPhone 15", TotalQuantity: "5", Price: 100}}
	current := []domain.Product{
		{ID: 1, BrandID: 1, AttributeGroup: "iPhone 15", TotalQuantity: "5", Price: 120},
		{ID: 2, BrandID: 1, AttributeGroup: "iPad Air", TotalQuantity: "3", Price: 50},
	}

	f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	f.store.EXPECT().ListBrands(mock.Anything).Return([]domain.Brand{brand}, nil).Once()
	f.catalog.EXPECT().FetchPricelist(mock.Anything, int64(1)).Return(current, nil).Once()
	f.store.EXPECT().ProductsByBrand(mock.Anything, int64(1)).Return(old, nil).Once()
	f.store.EXPECT().ReplaceProducts(mock.Anything, int64(1), current).Return(nil).Once()
	f.store.EXPECT().ListSubscribers(mock.Anything).Return([]domain.Subscriber{
		{UserID: 42, ReceiveApple: true},
		{UserID: 43, ReceiveOther: true},
	}, nil).Once()
	f.notifier.EXPECT().Send(mock.Anything, int64(42), mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "• Apple - iPhone 15\n  100 RUB → 120 RUB") &&
			strings.Contains(text, "• Apple - iPad Air\n  50 RUB (3 pcs)") &&
			strings.Contains(text, "Total: 2 changes")
	})).Return(nil).Once()
	f.store.EXPECT().ClearChangeRecords(mock.Anything).Return(nil).Once()

	res, err := f.eng.RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "run-1", res.ID)
	assert.Equal(t, 1, res.BrandsTotal)
	assert.Zero(t, res.BrandsFailed)
	assert.Equal(t, 2, res.Changes)
	assert.Equal(t, 1, res.Messages)
	require.NoError(t, res.DeliveryErr)

	require.Len(t, *staged, 2)
	first, second := (*staged)[0], (*staged)[1]
	assert.Equal(t, domain.ChangePriceIncrease, first.ChangeType)
	assert.Equal(t, int64(1), first.ProductID)
	assert.Equal(t, "100", *first.OldValue)
	assert.Equal(t, "120", *first.NewValue)
	assert.Equal(t, domain.ChangeProductAdded, second.ChangeType)
	assert.Equal(t, int64(2), second.ProductID)
	assert.Equal(t, int64(50), *second.NewPrice)

	assert.Equal(t, domain.CycleRun{
		ID:          "run-1",
		Status:      domain.CycleSucceeded,
		BrandsTotal: 1,
		Changes:     2,
	}, *run)
}

func TestRunCycle_FetchFailureIsIsolated(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	run := f.expectRun("run-2")

	same := []domain.Product{{ID: 9, BrandID: 2, AttributeGroup: "Galaxy", TotalQuantity: "1", Price: 10}}

	f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	f.store.EXPECT().ListBrands(mock.Anything).Return([]domain.Brand{
		{ID: 1, Name: "Apple"},
		{ID: 2, Name: "Samsung"},
	}, nil).Once()
	f.catalog.EXPECT().FetchPricelist(mock.Anything, int64(1)).Return(nil, errors.New("timeout")).Once()
	f.catalog.EXPECT().FetchPricelist(mock.Anything, int64(2)).Return(same, nil).Once()
	f.store.EXPECT().ProductsByBrand(mock.Anything, int64(2)).Return(same, nil).Once()
	f.store.EXPECT().ReplaceProducts(mock.Anything, int64(2), same).Return(nil).Once()
	f.store.EXPECT().ListChangeRecords(mock.Anything).Return(nil, nil).Once()

	before := ptestutil.ToFloat64(metrics.BrandFetchErrorsTotal)

	res, err := f.eng.RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, res.BrandsTotal)
	assert.Equal(t, 1, res.BrandsFailed)
	assert.Zero(t, res.Changes)
	assert.GreaterOrEqual(t, ptestutil.ToFloat64(metrics.BrandFetchErrorsTotal)-before, float64(1))
	assert.Equal(t, domain.CycleSucceeded, run.Status)
	assert.Equal(t, 1, run.BrandsFailed)
}

func TestRunCycle_PanicIsBrandFailure(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.expectRun("run-3")

	f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	f.store.EXPECT().ListBrands(mock.Anything).Return([]domain.Brand{{ID: 1}, {ID: 2}}, nil).Once()
	f.catalog.EXPECT().FetchPricelist(mock.Anything, int64(1)).
		RunAndReturn(func(context.Context, int64) ([]domain.Product, error) {
			panic("malformed payload")
		}).Once()
	f.catalog.EXPECT().FetchPricelist(mock.Anything, int64(2)).Return(nil, nil).Once()
	f.store.EXPECT().ProductsByBrand(mock.Anything, int64(2)).Return(nil, nil).Once()
	f.store.EXPECT().ReplaceProducts(mock.Anything, int64(2), mock.Anything).Return(nil).Once()
	f.store.EXPECT().ListChangeRecords(mock.Anything).Return(nil, nil).Once()

	res, err := f.eng.RunCycle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.BrandsFailed)
}

func TestRunCycle_PersistenceFailureAborts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(f *fixture)
	}{
		{
			name: "list brands",
			setup: func(f *fixture) {
				f.store.EXPECT().ListBrands(mock.Anything).Return(nil, errors.New("db down")).Once()
			},
		},
		{
			name: "load snapshot",
			setup: func(f *fixture) {
				f.store.EXPECT().ListBrands(mock.Anything).Return([]domain.Brand{{ID: 1}, {ID: 2}}, nil).Once()
				f.catalog.EXPECT().FetchPricelist(mock.Anything, int64(1)).Return(nil, nil).Once()
				f.store.EXPECT().ProductsByBrand(mock.Anything, int64(1)).Return(nil, errors.New("db down")).Once()
			},
		},
		{
			name: "replace snapshot",
			setup: func(f *fixture) {
				f.store.EXPECT().ListBrands(mock.Anything).Return([]domain.Brand{{ID: 1}, {ID: 2}}, nil).Once()
				f.catalog.EXPECT().FetchPricelist(mock.Anything, int64(1)).Return(nil, nil).Once()
				f.store.EXPECT().ProductsByBrand(mock.Anything, int64(1)).Return(nil, nil).Once()
				f.store.EXPECT().ReplaceProducts(mock.Anything, int64(1), mock.Anything).
					Return(errors.New("db down")).Once()
			},
		},
		{
			name: "read staged changes",
			setup: func(f *fixture) {
				f.store.EXPECT().ListBrands(mock.Anything).Return([]domain.Brand{{ID: 1}}, nil).Once()
				f.catalog.EXPECT().FetchPricelist(mock.Anything, int64(1)).Return(nil, nil).Once()
				f.store.EXPECT().ProductsByBrand(mock.Anything, int64(1)).Return(nil, nil).Once()
				f.store.EXPECT().ReplaceProducts(mock.Anything, int64(1), mock.Anything).Return(nil).Once()
				f.store.EXPECT().ListChangeRecords(mock.Anything).Return(nil, errors.New("db down")).Once()
			},
		},
		{
			name: "stage changes",
			setup: func(f *fixture) {
				f.store.EXPECT().ListBrands(mock.Anything).Return([]domain.Brand{{ID: 1}}, nil).Once()
				f.catalog.EXPECT().FetchPricelist(mock.Anything, int64(1)).
					Return([]domain.Product{{ID: 1, Price: 1}}, nil).Once()
				f.store.EXPECT().ProductsByBrand(mock.Anything, int64(1)).Return(nil, nil).Once()
				f.store.EXPECT().AppendChangeRecords(mock.Anything, mock.Anything).
					Return(errors.New("db down")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			run := f.expectRun("run-4")
			f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
			tt.setup(f)

			_, err := f.eng.RunCycle(context.Background())

			require.ErrorIs(t, err, ErrPersistence)
			assert.Equal(t, domain.CycleFailed, run.Status)
			assert.Contains(t, run.ErrorText, "db down")
		})
	}
}

func TestRunCycle_AuthFailureAborts(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	run := f.expectRun("run-5")

	f.tokens.EXPECT().Token(mock.Anything).
		Return("", fmt.Errorf("%w: login refused", credential.ErrAuth)).Once()

	res, err := f.eng.RunCycle(context.Background())

	require.ErrorIs(t, err, credential.ErrAuth)
	assert.Zero(t, res.BrandsTotal)
	assert.Equal(t, domain.CycleFailed, run.Status)
}

func TestRunCycle_DeliveryFailureIsIsolated(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.expectRun("run-6")
	f.stageInMemory()

	f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	f.store.EXPECT().ListBrands(mock.Anything).Return([]domain.Brand{{ID: 3, Name: "Samsung"}}, nil).Once()
	f.catalog.EXPECT().FetchPricelist(mock.Anything, int64(3)).
		Return([]domain.Product{{ID: 1, BrandID: 3, AttributeGroup: "Galaxy", TotalQuantity: "1", Price: 10}}, nil).Once()
	f.store.EXPECT().ProductsByBrand(mock.Anything, int64(3)).Return(nil, nil).Once()
	f.store.EXPECT().ReplaceProducts(mock.Anything, int64(3), mock.Anything).Return(nil).Once()
	f.store.EXPECT().ListSubscribers(mock.Anything).Return([]domain.Subscriber{
		{UserID: 1, ReceiveOther: true},
		{UserID: 2, ReceiveOther: true},
		{UserID: 3, ReceiveApple: true},
	}, nil).Once()
	f.notifier.EXPECT().Send(mock.Anything, int64(1), mock.Anything).Return(errors.New("chat not found")).Once()
	f.notifier.EXPECT().Send(mock.Anything, int64(2), mock.Anything).Return(nil).Once()
	f.store.EXPECT().ClearChangeRecords(mock.Anything).Return(nil).Once()

	res, err := f.eng.RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, res.Messages)
	require.ErrorIs(t, res.DeliveryErr, ErrDelivery)
	assert.Contains(t, res.DeliveryErr.Error(), "user 1")
}

func TestRunCycle_RedeliversStaleStagedChanges(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.expectRun("run-7")
	staged := f.stageInMemory()
	*staged = append(*staged, rec(99, "Apple", "iMac 24"))

	f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	f.store.EXPECT().ListBrands(mock.Anything).Return([]domain.Brand{{ID: 1, Name: "Apple"}}, nil).Once()
	f.catalog.EXPECT().FetchPricelist(mock.Anything, int64(1)).
		Return([]domain.Product{{ID: 1, AttributeGroup: "iPhone 15", TotalQuantity: "1", Price: 10}}, nil).Once()
	f.store.EXPECT().ProductsByBrand(mock.Anything, int64(1)).Return(nil, nil).Once()
	f.store.EXPECT().ReplaceProducts(mock.Anything, int64(1), mock.Anything).Return(nil).Once()
	f.store.EXPECT().ListSubscribers(mock.Anything).
		Return([]domain.Subscriber{{UserID: 5, ReceiveApple: true}}, nil).Once()
	f.notifier.EXPECT().Send(mock.Anything, int64(5), mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "iMac 24") && strings.Contains(text, "iPhone 15")
	})).Return(nil).Once()
	f.store.EXPECT().ClearChangeRecords(mock.Anything).Return(nil).Once()

	res, err := f.eng.RunCycle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Changes, "only freshly detected changes are counted")
}

func TestRunCycle_DeliversLeftoversWithoutFreshChanges(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.expectRun("run-7b")
	staged := f.stageInMemory()
	*staged = append(*staged, rec(7, "Xiaomi", "Redmi Note 13"))

	unchanged := []domain.Product{{ID: 1, BrandID: 3, AttributeGroup: "Redmi Note 13", TotalQuantity: "4", Price: 90}}

	f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	f.store.EXPECT().ListBrands(mock.Anything).Return([]domain.Brand{{ID: 3, Name: "Xiaomi"}}, nil).Once()
	f.catalog.EXPECT().FetchPricelist(mock.Anything, int64(3)).Return(unchanged, nil).Once()
	f.store.EXPECT().ProductsByBrand(mock.Anything, int64(3)).Return(unchanged, nil).Once()
	f.store.EXPECT().ReplaceProducts(mock.Anything, int64(3), unchanged).Return(nil).Once()
	f.store.EXPECT().ListSubscribers(mock.Anything).
		Return([]domain.Subscriber{{UserID: 8, ReceiveOther: true}}, nil).Once()
	f.notifier.EXPECT().Send(mock.Anything, int64(8), mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "Redmi Note 13")
	})).Return(nil).Once()
	f.store.EXPECT().ClearChangeRecords(mock.Anything).Return(nil).Once()

	res, err := f.eng.RunCycle(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res.Changes)
	assert.Equal(t, 1, res.Messages)
}

func TestRunCycle_AbortKeepsEarlierBrandChangesStaged(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	run := f.expectRun("run-7c")

	var calls []string
	var staged []domain.ChangeRecord
	f.store.EXPECT().AppendChangeRecords(mock.Anything, mock.Anything).
		Run(func(_ context.Context, changes []domain.ChangeRecord) {
			calls = append(calls, "stage")
			staged = append(staged, changes...)
		}).
		Return(nil).Once()

	current := []domain.Product{{ID: 11, BrandID: 1, AttributeGroup: "AirPods Pro 2", TotalQuantity: "6", Price: 240}}

	f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	f.store.EXPECT().ListBrands(mock.Anything).Return([]domain.Brand{
		{ID: 1, Name: "Apple"},
		{ID: 2, Name: "Samsung"},
	}, nil).Once()
	f.catalog.EXPECT().FetchPricelist(mock.Anything, int64(1)).Return(current, nil).Once()
	f.store.EXPECT().ProductsByBrand(mock.Anything, int64(1)).Return(nil, nil).Once()
	f.store.EXPECT().ReplaceProducts(mock.Anything, int64(1), current).
		Run(func(context.Context, int64, []domain.Product) { calls = append(calls, "replace") }).
		Return(nil).Once()
	f.catalog.EXPECT().FetchPricelist(mock.Anything, int64(2)).Return(nil, nil).Once()
	f.store.EXPECT().ProductsByBrand(mock.Anything, int64(2)).Return(nil, errors.New("db down")).Once()

	_, err := f.eng.RunCycle(context.Background())

	require.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, domain.CycleFailed, run.Status)
	assert.Equal(t, []string{"stage", "replace"}, calls, "changes are staged before the snapshot moves on")
	require.Len(t, staged, 1)
	assert.Equal(t, domain.ChangeProductAdded, staged[0].ChangeType)
	assert.Equal(t, int64(11), staged[0].ProductID)
	assert.Equal(t, int64(1), staged[0].BrandID)
}

func TestRunCycle_NoSubscribersStillClears(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.expectRun("run-8")
	f.stageInMemory()

	f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	f.store.EXPECT().ListBrands(mock.Anything).Return([]domain.Brand{{ID: 1}}, nil).Once()
	f.catalog.EXPECT().FetchPricelist(mock.Anything, int64(1)).Return(nil, nil).Once()
	f.store.EXPECT().ProductsByBrand(mock.Anything, int64(1)).
		Return([]domain.Product{{ID: 1, Price: 5}}, nil).Once()
	f.store.EXPECT().ReplaceProducts(mock.Anything, int64(1), mock.Anything).Return(nil).Once()
	f.store.EXPECT().ListSubscribers(mock.Anything).Return(nil, nil).Once()
	f.store.EXPECT().ClearChangeRecords(mock.Anything).Return(nil).Once()

	res, err := f.eng.RunCycle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Changes)
	assert.Zero(t, res.Messages)
}

func TestRunCycle_NoBrandsAndUnrecordedRun(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	f.store.EXPECT().InsertCycleRun(mock.Anything).Return("", errors.New("db down")).Once()
	f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	f.store.EXPECT().ListBrands(mock.Anything).Return(nil, nil).Once()

	res, err := f.eng.RunCycle(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID, "a local cycle id is generated")
	assert.Zero(t, res.BrandsTotal)
}

func TestRunCycle_CancellationStopsBetweenBrands(t *testing.T) {
	t.Parallel()

	f := newFixture(t, WithBrandDelay(time.Hour))
	run := f.expectRun("run-9")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	f.store.EXPECT().ListBrands(mock.Anything).Return([]domain.Brand{{ID: 1}, {ID: 2}}, nil).Once()
	f.catalog.EXPECT().FetchPricelist(mock.Anything, int64(1)).
		RunAndReturn(func(context.Context, int64) ([]domain.Product, error) {
			cancel()
			return nil, nil
		}).Once()
	f.store.EXPECT().ProductsByBrand(mock.Anything, int64(1)).Return(nil, nil).Once()
	f.store.EXPECT().ReplaceProducts(mock.Anything, int64(1), mock.Anything).Return(nil).Once()

	_, err := f.eng.RunCycle(ctx)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, domain.CycleFailed, run.Status)
}

func TestRunCycle_RejectsOverlap(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.expectRun("run-10")

	started := make(chan struct{})
	release := make(chan struct{})
	f.tokens.EXPECT().Token(mock.Anything).
		RunAndReturn(func(context.Context) (string, error) {
			close(started)
			<-release
			return "", credential.ErrAuth
		}).Once()

	done := make(chan error, 1)
	go func() {
		_, err := f.eng.RunCycle(context.Background())
		done <- err
	}()
	<-started

	before := ptestutil.ToFloat64(metrics.CyclesSkippedTotal)
	res, err := f.eng.RunCycle(context.Background())
	require.ErrorIs(t, err, ErrCycleInProgress)
	assert.Nil(t, res)
	assert.GreaterOrEqual(t, ptestutil.ToFloat64(metrics.CyclesSkippedTotal)-before, float64(1))

	close(release)
	require.ErrorIs(t, <-done, credential.ErrAuth)
}

func TestSyncBrands(t *testing.T) {
	t.Parallel()

	t.Run("stores fetched brands", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		brands := []domain.Brand{{ID: 1, Name: "Apple"}, {ID: 2, Name: "Samsung"}}
		f.catalog.EXPECT().FetchBrands(mock.Anything).Return(brands, nil).Once()
		f.store.EXPECT().ReplaceBrands(mock.Anything, brands).Return(nil).Once()

		got, err := f.eng.SyncBrands(context.Background())
		require.NoError(t, err)
		assert.Equal(t, brands, got)
	})

	t.Run("empty answer keeps stored list", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.catalog.EXPECT().FetchBrands(mock.Anything).Return(nil, nil).Once()

		_, err := f.eng.SyncBrands(context.Background())
		require.ErrorIs(t, err, ErrFetch)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.catalog.EXPECT().FetchBrands(mock.Anything).Return([]domain.Brand{{ID: 1}}, nil).Once()
		f.store.EXPECT().ReplaceBrands(mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

		_, err := f.eng.SyncBrands(context.Background())
		require.ErrorIs(t, err, ErrPersistence)
	})
}

func TestBootstrap(t *testing.T) {
	t.Parallel()

	t.Run("skips when a snapshot exists", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.store.EXPECT().CountProducts(mock.Anything).Return(12, nil).Once()

		loaded, err := f.eng.Bootstrap(context.Background())
		require.NoError(t, err)
		assert.False(t, loaded)
	})

	t.Run("loads every brand without notifying", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		brands := []domain.Brand{{ID: 1, Name: "Apple"}, {ID: 2, Name: "Samsung"}, {ID: 3, Name: "Xiaomi"}}
		products := []domain.Product{{ID: 5, Price: 10}}

		f.store.EXPECT().CountProducts(mock.Anything).Return(0, nil).Once()
		f.catalog.EXPECT().FetchBrands(mock.Anything).Return(brands, nil).Once()
		f.store.EXPECT().ReplaceBrands(mock.Anything, brands).Return(nil).Once()
		f.catalog.EXPECT().FetchPricelist(mock.Anything, int64(1)).Return(products, nil).Once()
		f.catalog.EXPECT().FetchPricelist(mock.Anything, int64(2)).Return(nil, errors.New("timeout")).Once()
		f.catalog.EXPECT().FetchPricelist(mock.Anything, int64(3)).Return(products, nil).Once()
		f.store.EXPECT().ReplaceProducts(mock.Anything, int64(1), products).Return(nil).Once()
		f.store.EXPECT().ReplaceProducts(mock.Anything, int64(3), products).Return(nil).Once()

		loaded, err := f.eng.Bootstrap(context.Background())
		require.NoError(t, err)
		assert.True(t, loaded)
	})

	t.Run("count failure", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.store.EXPECT().CountProducts(mock.Anything).Return(0, errors.New("db down")).Once()

		_, err := f.eng.Bootstrap(context.Background())
		require.ErrorIs(t, err, ErrPersistence)
	})
}

func TestSleep(t *testing.T) {
	t.Parallel()

	require.NoError(t, sleep(context.Background(), 0))
	require.NoError(t, sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, sleep(ctx, time.Hour), context.Canceled)
	require.ErrorIs(t, sleep(ctx, 0), context.Canceled)
}
