package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/pricelist-monitor/internal/metrics"
)

// CycleRunner runs one poll-diff-notify cycle.
type CycleRunner interface {
	RunCycle(ctx context.Context) (*CycleResult, error)
}

// Scheduler triggers cycles on a fixed interval. A trigger that fires while
// the previous cycle is still running is dropped.
type Scheduler struct {
	cron       *cron.Cron
	job        cron.Job
	entryID    cron.EntryID
	runner     CycleRunner
	log        *slog.Logger
	runOnStart bool

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithRunOnStart controls whether Start triggers a cycle immediately.
func WithRunOnStart(v bool) SchedulerOption {
	return func(s *Scheduler) {
		s.runOnStart = v
	}
}

// NewScheduler creates a Scheduler running r every interval.
func NewScheduler(
	r CycleRunner,
	interval time.Duration,
	log *slog.Logger,
	opts ...SchedulerOption,
) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("invalid cycle interval %s", interval)
	}

	s := &Scheduler{
		runner:     r,
		log:        log,
		runOnStart: true,
		ctx:        context.Background(),
		cancel:     func() {},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.job = cron.NewChain(cron.SkipIfStillRunning(cronLogger{log: log})).
		Then(cron.FuncJob(s.runCycle))
	s.cron = cron.New()

	id, err := s.cron.AddJob("@every "+interval.String(), s.job)
	if err != nil {
		return nil, fmt.Errorf("registering cycle job: %w", err)
	}
	s.entryID = id

	return s, nil
}

// Start begins running cycles. Cycles receive a context derived from ctx
// that is canceled by Stop.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	s.log.Info("scheduler started", "run_on_start", s.runOnStart)
	s.cron.Start()

	if s.runOnStart {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.job.Run()
		}()
	}
}

// Stop cancels any running cycle and stops the schedule. The returned
// context is done once running cycles have returned.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")

	s.mu.Lock()
	s.cancel()
	s.mu.Unlock()

	cronDone := s.cron.Stop()
	ctx, done := context.WithCancel(context.Background())
	go func() {
		<-cronDone.Done()
		s.wg.Wait()
		done()
	}()
	return ctx
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// Next returns the time of the next scheduled cycle, zero before Start.
func (s *Scheduler) Next() time.Time {
	return s.cron.Entry(s.entryID).Next
}

func (s *Scheduler) runCycle() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	if ctx.Err() != nil {
		return
	}

	res, err := s.runner.RunCycle(ctx)
	switch {
	case errors.Is(err, ErrCycleInProgress):
		s.log.Debug("cycle trigger skipped, engine busy")
	case err != nil:
		s.log.Error("scheduled cycle failed", "error", err)
	case res != nil && res.DeliveryErr != nil:
		s.log.Warn("scheduled cycle completed with delivery failures",
			"cycle_id", res.ID,
			"error", res.DeliveryErr,
		)
	}
}

// cronLogger adapts slog to cron's logger and counts dropped triggers.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	if msg == "skip" {
		metrics.CyclesSkippedTotal.Inc()
		l.log.Warn("cycle trigger skipped, previous cycle still running")
		return
	}
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append(keysAndValues, "error", err)...)
}
