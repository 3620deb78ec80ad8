package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/pricelist-monitor/internal/api/handlers"
	"github.com/donaldgifford/pricelist-monitor/internal/store/mocks"
)

func call(t *testing.T, path string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, path, http.NoBody), rec)
	require.NoError(t, h(c))
	return rec
}

func TestHealthz_NeverTouchesDatabase(t *testing.T) {
	t.Parallel()

	// No Ping expectation: a call would fail the mock.
	h := handlers.NewHealthHandler(mocks.NewMockStore(t))

	rec := call(t, "/healthz", h.Healthz)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReadyz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "snapshot database reachable",
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready"}`,
		},
		{
			name:       "snapshot database down",
			pingErr:    errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable"}`,
		},
		{
			name:       "ping timed out",
			pingErr:    context.DeadlineExceeded,
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			st := mocks.NewMockStore(t)
			st.EXPECT().Ping(mock.Anything).Return(tt.pingErr).Once()

			rec := call(t, "/readyz", handlers.NewHealthHandler(st).Readyz)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "5432", "driver errors stay out of the response")
		})
	}
}
