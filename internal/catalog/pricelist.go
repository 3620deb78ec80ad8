package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/donaldgifford/pricelist-monitor/internal/metrics"
	domain "github.com/donaldgifford/pricelist-monitor/pkg/types"
)

const (
	defaultBaseURL   = "https://fimex.ae"
	defaultUserAgent = "pricelist-monitor/1.0"

	brandsPath    = "/app-api/v1/brands"
	pricelistPath = "/app-api/v1/pricelist"

	// maxErrorBody caps how much of a failed response ends up in an error.
	maxErrorBody = 512
)

// Client implements CatalogClient over HTTP. Every request carries a Bearer
// token from the TokenSource; a rejected token is invalidated and the
// request retried exactly once.
type Client struct {
	tokens      TokenSource
	baseURL     string
	userAgent   string
	client      *http.Client
	rateLimiter *RateLimiter
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL overrides the default catalog base URL.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.client = hc
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithRateLimiter injects a rate limiter. When set, every request goes
// through Wait() first, retries included.
func WithRateLimiter(r *RateLimiter) ClientOption {
	return func(c *Client) {
		c.rateLimiter = r
	}
}

// NewClient creates a new catalog API client.
func NewClient(tokens TokenSource, opts ...ClientOption) *Client {
	c := &Client{
		tokens:    tokens,
		baseURL:   defaultBaseURL,
		userAgent: defaultUserAgent,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchBrands returns the full brand list.
func (c *Client) FetchBrands(ctx context.Context) ([]domain.Brand, error) {
	body, err := c.getAuthorized(ctx, "brands", brandsPath, nil)
	if err != nil {
		return nil, err
	}

	items, err := decodeList[brandDTO](body)
	if err != nil {
		return nil, fmt.Errorf("parsing brands response: %w", err)
	}

	return toBrands(items), nil
}

// FetchPricelist returns the current pricelist for one brand.
func (c *Client) FetchPricelist(ctx context.Context, brandID int64) ([]domain.Product, error) {
	params := url.Values{}
	params.Set("id_brand", strconv.FormatInt(brandID, 10))

	body, err := c.getAuthorized(ctx, "pricelist", pricelistPath, params)
	if err != nil {
		return nil, err
	}

	items, err := decodeList[productDTO](body)
	if err != nil {
		return nil, fmt.Errorf("parsing pricelist response for brand %d: %w", brandID, err)
	}

	return toProducts(brandID, items), nil
}

// getAuthorized performs a GET with the current token. On 401/403 the token
// is invalidated and the request repeated once with a fresh one.
func (c *Client) getAuthorized(
	ctx context.Context,
	endpoint, path string,
	params url.Values,
) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	body, token, err := c.get(ctx, endpoint, u)
	if !errors.Is(err, ErrUnauthorized) {
		return body, err
	}

	c.tokens.Invalidate(token)

	body, _, err = c.get(ctx, endpoint, u)
	return body, err
}

// get performs one authorized GET and returns the body along with the token
// it was sent with.
func (c *Client) get(ctx context.Context, endpoint, u string) ([]byte, string, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, "", fmt.Errorf("rate limit: %w", err)
		}
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("getting auth token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, token, fmt.Errorf("creating HTTP request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.CatalogRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, token, fmt.Errorf("executing %s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	metrics.CatalogRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, token, fmt.Errorf("reading response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, token, fmt.Errorf("%w (status %d)", ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, token, fmt.Errorf(
			"catalog API error (status %d): %s",
			resp.StatusCode,
			truncate(body, maxErrorBody),
		)
	}

	return body, token, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
