// Package middleware provides Echo middleware for the operations server.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/pricelist-monitor/internal/metrics"
)

// probes maps probe paths to their ProbeUp label. Probe and scrape traffic
// is kept out of the request histogram.
var probes = map[string]string{
	"/healthz": "liveness",
	"/readyz":  "readiness",
}

const metricsPath = "/metrics"

// Metrics returns Echo middleware that records request duration and status
// by route. Probes only update the ProbeUp gauge.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := routePath(c)

			if path == metricsPath {
				return next(c)
			}

			if probe, ok := probes[path]; ok {
				err := next(c)
				up := 0.0
				if isSuccess(c.Response().Status) {
					up = 1
				}
				metrics.ProbeUp.WithLabelValues(probe).Set(up)
				return err
			}

			start := time.Now()
			err := next(c)

			labels := []string{c.Request().Method, path, strconv.Itoa(c.Response().Status)}
			metrics.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.WithLabelValues(labels...).Inc()

			return err
		}
	}
}

// routePath prefers the registered route so path parameters do not explode
// label cardinality.
func routePath(c echo.Context) string {
	if p := c.Path(); p != "" {
		return p
	}
	return c.Request().URL.Path
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
