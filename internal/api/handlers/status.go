package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/pricelist-monitor/internal/credential"
	domain "github.com/donaldgifford/pricelist-monitor/pkg/types"
)

const (
	defaultRunLimit = 10
	maxRunLimit     = 100
)

// TokenStatuser exposes the cached catalog credential state.
type TokenStatuser interface {
	Status() credential.Status
}

// RunLister lists recent cycle runs.
type RunLister interface {
	ListCycleRuns(ctx context.Context, limit int) ([]domain.CycleRun, error)
}

// StatusHandler reports the credential state and the latest cycles.
type StatusHandler struct {
	tokens TokenStatuser
	runs   RunLister
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(tokens TokenStatuser, runs RunLister) *StatusHandler {
	return &StatusHandler{tokens: tokens, runs: runs}
}

// TokenStatus is the JSON view of credential.Status. The token itself is
// never exposed.
type TokenStatus struct {
	HasToken  bool       `json:"has_token"`
	Valid     bool       `json:"valid"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	TimeLeft  string     `json:"time_left,omitempty"`
}

// StatusResponse is the body of GET /status.
type StatusResponse struct {
	Token  TokenStatus       `json:"token"`
	Cycles []domain.CycleRun `json:"cycles"`
}

// Status returns the token state and the most recent cycle runs. The
// optional limit query parameter caps the number of runs.
func (h *StatusHandler) Status(c echo.Context) error {
	limit := defaultRunLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "limit must be a positive integer",
			})
		}
		limit = min(n, maxRunLimit)
	}

	runs, err := h.runs.ListCycleRuns(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing cycle runs failed",
		})
	}
	if runs == nil {
		runs = []domain.CycleRun{}
	}

	return c.JSON(http.StatusOK, StatusResponse{
		Token:  tokenStatus(h.tokens.Status()),
		Cycles: runs,
	})
}

func tokenStatus(s credential.Status) TokenStatus {
	out := TokenStatus{HasToken: s.HasToken, Valid: s.Valid}
	if s.HasToken {
		exp := s.ExpiresAt
		out.ExpiresAt = &exp
		out.TimeLeft = s.TimeLeft.Round(time.Second).String()
	}
	return out
}
