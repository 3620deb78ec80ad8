// Package main implements a mock catalog API server for local development.
// It serves brands and pricelists from a JSON fixture and issues signed
// session tokens, so the monitor can run end to end without a supplier
// account. With -drift, prices and stock move between requests so cycles
// actually report changes.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type fixture struct {
	Brands   []brand   `json:"brands"`
	Products []product `json:"products"`
}

type brand struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type product struct {
	ID          int64           `json:"id_product"`
	BrandID     int64           `json:"id_brand"`
	Subcategory string          `json:"subcategory"`
	CharsGroup  string          `json:"chars_group"`
	TotalQty    json.RawMessage `json:"total_qty"`
	Price       json.RawMessage `json:"price"`
	CountryAbbr string          `json:"country_abbr"`
}

type options struct {
	drift         float64
	tokenTTL      time.Duration
	declareExpiry bool
	rejectEvery   int
	secret        []byte
	rand          *rand.Rand
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixturePath := flag.String("fixture", "tools/mock-catalog/testdata/catalog.json", "path to catalog fixture")
	drift := flag.Float64("drift", 0, "probability per product per request of a price or stock change")
	tokenTTL := flag.Duration("token-ttl", time.Hour, "lifetime of issued tokens")
	declareExpiry := flag.Bool("declare-expiry", true, "send expires_in with the login response")
	rejectEvery := flag.Int("reject-every", 0, "answer every Nth authorized request with 401 (0 = never)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fx, err := loadFixture(*fixturePath)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixturePath, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "brands", len(fx.Brands), "products", len(fx.Products))

	srv := newServer(fx, options{
		drift:         *drift,
		tokenTTL:      *tokenTTL,
		declareExpiry: *declareExpiry,
		rejectEvery:   *rejectEvery,
		secret:        []byte("mock-catalog-" + strconv.Itoa(os.Getpid())),
		rand:          rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)), //nolint:gosec // test data only
	}, logger)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock catalog server", "addr", addr, "drift", *drift)

	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, srv.routes()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := httpSrv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &fx, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

// server holds the mutable catalog. Drift is applied in place so that
// consecutive cycles see a consistent history.
type server struct {
	opts options
	log  *slog.Logger

	mu       sync.Mutex
	brands   []brand
	products []product
	requests int
}

func newServer(fx *fixture, opts options, log *slog.Logger) *server {
	if opts.rand == nil {
		opts.rand = rand.New(rand.NewPCG(1, 2)) //nolint:gosec // test data only
	}
	if opts.tokenTTL <= 0 {
		opts.tokenTTL = time.Hour
	}
	return &server{
		opts:     opts,
		log:      log,
		brands:   fx.Brands,
		products: fx.Products,
	}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /app-api/v1/auth/login", s.login)
	mux.HandleFunc("GET /app-api/v1/brands", s.authorized(s.listBrands))
	mux.HandleFunc("GET /app-api/v1/pricelist", s.authorized(s.pricelist))
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func (s *server) login(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("login") == "" || q.Get("password") == "" {
		s.log.Warn("login without credentials")
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid credentials"})
		return
	}

	exp := time.Now().Add(s.opts.tokenTTL)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   q.Get("login"),
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}).SignedString(s.opts.secret)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": err.Error()})
		return
	}

	resp := map[string]any{"token": token}
	if s.opts.declareExpiry {
		resp["expires_in"] = int64(s.opts.tokenTTL / time.Second)
	}
	writeJSON(w, http.StatusOK, resp)
	s.log.Info("issued mock token", "login", q.Get("login"), "expires_at", exp)
}

// authorized checks the Bearer token signature and expiry, and optionally
// rejects every Nth request to exercise re-authentication.
func (s *server) authorized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "missing token"})
			return
		}

		_, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
			return s.opts.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid token"})
			return
		}

		s.mu.Lock()
		s.requests++
		n := s.requests
		s.mu.Unlock()
		if s.opts.rejectEvery > 0 && n%s.opts.rejectEvery == 0 {
			s.log.Info("rejecting valid token on purpose", "request", n)
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "session expired"})
			return
		}

		next(w, r)
	}
}

// listBrands answers with the wrapped list form.
func (s *server) listBrands(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"data": s.brands})
}

// pricelist answers with a bare array, after applying drift.
func (s *server) pricelist(w http.ResponseWriter, r *http.Request) {
	brandID, err := strconv.ParseInt(r.URL.Query().Get("id_brand"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "id_brand must be an integer"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := []product{}
	for i := range s.products {
		p := &s.products[i]
		if p.BrandID != brandID {
			continue
		}
		s.drift(p)
		out = append(out, *p)
	}

	writeJSON(w, http.StatusOK, out)
	s.log.Info("pricelist", "brand_id", brandID, "products", len(out))
}

// drift moves price by up to 5% or stock by up to 3 units, with the
// configured probability.
func (s *server) drift(p *product) {
	if s.opts.drift <= 0 || s.opts.rand.Float64() >= s.opts.drift {
		return
	}

	if s.opts.rand.IntN(2) == 0 {
		price := number(p.Price)
		delta := max(1, price*int64(s.opts.rand.IntN(5)+1)/100)
		if s.opts.rand.IntN(2) == 0 && price > delta {
			delta = -delta
		}
		p.Price = json.RawMessage(strconv.FormatInt(price+delta, 10))
		return
	}

	qty := number(p.TotalQty) + int64(s.opts.rand.IntN(7)-3)
	p.TotalQty = json.RawMessage(strconv.FormatInt(max(0, qty), 10))
}

// number reads a JSON number or numeric string. Anything else is zero.
func number(raw json.RawMessage) int64 {
	s := strings.Trim(string(raw), `"`)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
