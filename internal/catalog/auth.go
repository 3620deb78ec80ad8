package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/donaldgifford/pricelist-monitor/internal/credential"
	"github.com/donaldgifford/pricelist-monitor/internal/metrics"
)

const loginPath = "/app-api/v1/auth/login"

// Authenticator performs the catalog login exchange. It implements
// credential.Authenticator; caching and persistence live in the
// credential manager.
type Authenticator struct {
	login     string
	password  string
	appAccess string
	baseURL   string
	userAgent string
	client    *http.Client
	nowFunc   func() time.Time // for testing
}

// AuthOption configures the Authenticator.
type AuthOption func(*Authenticator)

// WithLoginURL overrides the default catalog base URL for logins.
func WithLoginURL(u string) AuthOption {
	return func(a *Authenticator) {
		a.baseURL = strings.TrimRight(u, "/")
	}
}

// WithAppAccess sets the X-APP-ACCESS key the catalog requires on login.
func WithAppAccess(key string) AuthOption {
	return func(a *Authenticator) {
		a.appAccess = key
	}
}

// WithAuthHTTPClient overrides the default HTTP client.
func WithAuthHTTPClient(c *http.Client) AuthOption {
	return func(a *Authenticator) {
		a.client = c
	}
}

// WithAuthUserAgent sets the User-Agent header sent on login.
func WithAuthUserAgent(ua string) AuthOption {
	return func(a *Authenticator) {
		a.userAgent = ua
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) AuthOption {
	return func(a *Authenticator) {
		a.nowFunc = f
	}
}

// NewAuthenticator creates an Authenticator for the given account.
func NewAuthenticator(login, password string, opts ...AuthOption) *Authenticator {
	a := &Authenticator{
		login:     login,
		password:  password,
		baseURL:   defaultBaseURL,
		userAgent: defaultUserAgent,
		client:    &http.Client{Timeout: 15 * time.Second},
		nowFunc:   time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Login exchanges the account credentials for a session token. A response
// without a token yields credential.ErrMissingToken.
func (a *Authenticator) Login(ctx context.Context) (*credential.LoginResult, error) {
	params := url.Values{}
	params.Set("login", a.login)
	params.Set("password", a.password)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		a.baseURL+loginPath+"?"+params.Encode(),
		http.NoBody,
	)
	if err != nil {
		return nil, fmt.Errorf("creating login request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", a.userAgent)
	if a.appAccess != "" {
		req.Header.Set("X-APP-ACCESS", a.appAccess)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		metrics.CatalogRequestsTotal.WithLabelValues("login", "error").Inc()
		return nil, fmt.Errorf("executing login request: %w", err)
	}
	defer resp.Body.Close()

	metrics.CatalogRequestsTotal.WithLabelValues("login", strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading login response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf(
			"login request failed (status %d): %s",
			resp.StatusCode,
			truncate(body, maxErrorBody),
		)
	}

	var lr loginResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return nil, fmt.Errorf("parsing login response: %w", err)
	}
	if lr.Token == "" {
		return nil, credential.ErrMissingToken
	}

	res := &credential.LoginResult{Token: lr.Token}
	if lr.ExpiresIn > 0 {
		res.ExpiresAt = a.nowFunc().Add(time.Duration(lr.ExpiresIn) * time.Second)
	}

	return res, nil
}
