// Package credential keeps the catalog session token valid across polls and
// process restarts. The token is cached in memory, persisted through a
// TokenStore, and refreshed with at most one login in flight.
package credential

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/donaldgifford/pricelist-monitor/internal/metrics"
	"github.com/donaldgifford/pricelist-monitor/internal/store"
	"github.com/donaldgifford/pricelist-monitor/pkg/logger"
	domain "github.com/donaldgifford/pricelist-monitor/pkg/types"
)

const (
	defaultTTL          = 24 * time.Hour
	defaultLoginTimeout = 15 * time.Second
	refreshKey          = "login"
)

var (
	// ErrAuth wraps every failure to obtain a valid token.
	ErrAuth = errors.New("authentication failed")
	// ErrMissingToken is returned when the issuer answers without a token.
	ErrMissingToken = errors.New("login response carried no token")
)

// LoginResult is the outcome of one login exchange. A zero ExpiresAt means
// the issuer did not declare an expiry.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

// Authenticator performs the login exchange against the external service.
type Authenticator interface {
	Login(ctx context.Context) (*LoginResult, error)
}

// TokenStore persists the credential between restarts. GetToken returns
// store.ErrNotFound when nothing is stored.
type TokenStore interface {
	GetToken(ctx context.Context, serviceID string) (*domain.Credential, error)
	SaveToken(ctx context.Context, c *domain.Credential) error
	DeleteToken(ctx context.Context, serviceID string) error
}

// Status describes the cached token without exposing it.
type Status struct {
	HasToken  bool
	Valid     bool
	ExpiresAt time.Time
	TimeLeft  time.Duration
}

// Manager owns the single credential for one external service.
type Manager struct {
	serviceID    string
	auth         Authenticator
	store        TokenStore
	ttl          time.Duration
	loginTimeout time.Duration
	now          func() time.Time
	log          *slog.Logger

	group singleflight.Group

	mu       sync.Mutex
	cred     domain.Credential
	rejected string // last token refused by the service; never re-adopted
}

// Option configures the Manager.
type Option func(*Manager)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// WithTTL sets the lifetime given to tokens whose issuer declares none.
func WithTTL(d time.Duration) Option {
	return func(m *Manager) {
		m.ttl = d
	}
}

// WithLoginTimeout bounds a single login exchange.
func WithLoginTimeout(d time.Duration) Option {
	return func(m *Manager) {
		m.loginTimeout = d
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		m.log = l
	}
}

// NewManager creates a Manager for serviceID.
func NewManager(serviceID string, auth Authenticator, ts TokenStore, opts ...Option) *Manager {
	m := &Manager{
		serviceID:    serviceID,
		auth:         auth,
		store:        ts,
		ttl:          defaultTTL,
		loginTimeout: defaultLoginTimeout,
		now:          time.Now,
		log:          logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Token returns a valid token: the cached one, else the persisted one, else
// a fresh login. Concurrent callers that miss the cache share one refresh.
func (m *Manager) Token(ctx context.Context) (string, error) {
	if tok, ok := m.cached(); ok {
		return tok, nil
	}

	// The shared refresh must not die with whichever caller started it.
	flightCtx := context.WithoutCancel(ctx)
	ch := m.group.DoChan(refreshKey, func() (any, error) {
		return m.refresh(flightCtx)
	})

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", ErrAuth, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

// Invalidate drops token after the service rejected it. The next Token call
// re-authenticates. A rejection of an already replaced token is ignored.
func (m *Manager) Invalidate(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if token == "" || m.cred.Token != token {
		return
	}

	m.log.Warn("token rejected by service, forcing re-authentication",
		"service", m.serviceID,
	)
	metrics.TokenInvalidationsTotal.Inc()
	m.rejected = token
	m.cred = domain.Credential{}
}

// Load warms the in-memory cache from the store. A missing or expired
// persisted token is not an error.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.loadPersistedLocked(ctx)
	return err
}

// Status reports the state of the cached token.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	st := Status{
		HasToken:  m.cred.Token != "",
		Valid:     m.cred.Valid(now),
		ExpiresAt: m.cred.ExpiresAt,
	}
	if st.Valid {
		st.TimeLeft = m.cred.ExpiresAt.Sub(now)
	}
	return st
}

func (m *Manager) cached() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cred.Valid(m.now()) {
		return m.cred.Token, true
	}
	return "", false
}

// refresh runs inside the single flight. The mutex guards the cache and the
// store read only; it is released for the login exchange so Status and
// Invalidate never wait on the network.
func (m *Manager) refresh(ctx context.Context) (string, error) {
	m.mu.Lock()
	// A refresh that finished just before this one started may have
	// already filled the cache.
	if m.cred.Valid(m.now()) {
		tok := m.cred.Token
		m.mu.Unlock()
		return tok, nil
	}
	tok, err := m.loadPersistedLocked(ctx)
	m.mu.Unlock()

	if err != nil {
		m.log.Warn("loading persisted token failed, logging in", "error", err)
	}
	if tok != "" {
		return tok, nil
	}

	return m.login(ctx)
}

// loadPersistedLocked adopts a valid persisted token and returns it. Expired
// or rejected persisted tokens are deleted. Returns "" when none is usable.
func (m *Manager) loadPersistedLocked(ctx context.Context) (string, error) {
	c, err := m.store.GetToken(ctx, m.serviceID)
	if errors.Is(err, store.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading persisted token: %w", err)
	}

	if c.Valid(m.now()) && c.Token != m.rejected {
		m.cred = *c
		m.log.Info("token loaded from store",
			"service", m.serviceID,
			"expires_at", c.ExpiresAt,
		)
		return c.Token, nil
	}

	m.log.Info("persisted token unusable, deleting", "service", m.serviceID)
	if err := m.store.DeleteToken(ctx, m.serviceID); err != nil {
		return "", fmt.Errorf("deleting stale token: %w", err)
	}
	return "", nil
}

func (m *Manager) login(ctx context.Context) (string, error) {
	lctx, cancel := context.WithTimeout(ctx, m.loginTimeout)
	defer cancel()

	m.log.Info("logging in", "service", m.serviceID)

	res, err := m.auth.Login(lctx)
	if err == nil && (res == nil || res.Token == "") {
		err = ErrMissingToken
	}
	if err != nil {
		metrics.AuthLoginsTotal.WithLabelValues("failure").Inc()
		return "", fmt.Errorf("%w: %w", ErrAuth, err)
	}
	metrics.AuthLoginsTotal.WithLabelValues("success").Inc()

	now := m.now()
	saved := domain.Credential{
		ServiceID: m.serviceID,
		Token:     res.Token,
		ExpiresAt: m.expiryFor(res, now),
	}

	m.mu.Lock()
	m.cred = saved
	m.rejected = ""
	m.mu.Unlock()

	m.log.Info("login succeeded",
		"service", m.serviceID,
		"expires_at", saved.ExpiresAt,
	)

	// The token is usable even when it cannot be persisted; the next
	// restart just logs in again.
	if err := m.store.SaveToken(ctx, &saved); err != nil {
		m.log.Error("persisting token failed", "service", m.serviceID, "error", err)
	}

	return res.Token, nil
}

// expiryFor prefers the issuer's declared expiry: the login response first,
// then the token's own exp claim, then the fixed TTL.
func (m *Manager) expiryFor(res *LoginResult, now time.Time) time.Time {
	if res.ExpiresAt.After(now) {
		return res.ExpiresAt
	}
	if exp, ok := jwtExpiry(res.Token); ok && exp.After(now) {
		return exp
	}
	return now.Add(m.ttl)
}
