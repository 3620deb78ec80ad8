package main

import "errors"

// KnownMetrics is the set of metric names exported by pricelist-monitor
// plus recording rule names referenced in dashboards and alerts. Histogram
// series are listed by base name; the validator strips _bucket, _sum and
// _count.
var KnownMetrics = map[string]bool{
	// Operations server.
	"plm_http_request_duration_seconds": true,
	"plm_http_requests_total":           true,
	"plm_probe_up":                      true,

	// Cycles.
	"plm_cycle_duration_seconds":          true,
	"plm_cycles_total":                    true,
	"plm_cycles_skipped_total":            true,
	"plm_last_successful_cycle_timestamp": true,

	// Catalog.
	"plm_catalog_requests_total":     true,
	"plm_brand_fetch_errors_total":   true,
	"plm_products_fetched":           true,
	"plm_brand_cache_requests_total": true,

	// Change detection and delivery.
	"plm_changes_detected_total":        true,
	"plm_notifications_sent_total":      true,
	"plm_notification_failures_total":   true,
	"plm_notification_duration_seconds": true,

	// Credentials.
	"plm_auth_logins_total":         true,
	"plm_token_invalidations_total": true,

	// Recording rules.
	"plm:http_requests:rate5m":         true,
	"plm:http_errors:rate5m":           true,
	"plm:cycles_failed:rate30m":        true,
	"plm:brand_fetch_errors:rate5m":    true,
	"plm:changes_detected:increase1h":  true,
	"plm:notification_failures:rate5m": true,
	"plm:catalog_errors:rate5m":        true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
