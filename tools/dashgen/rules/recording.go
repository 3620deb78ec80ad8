package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return newPrometheusRule("plm-recording-rules", RuleGroup{
		Name: "plm-recording",
		Rules: []Rule{
			{
				Record: "plm:http_requests:rate5m",
				Expr:   `sum(rate(plm_http_requests_total[5m]))`,
			},
			{
				Record: "plm:http_errors:rate5m",
				Expr:   `sum(rate(plm_http_requests_total{status=~"5.."}[5m]))`,
			},
			{
				Record: "plm:cycles_failed:rate30m",
				Expr:   `sum(rate(plm_cycles_total{status="failed"}[30m]))`,
			},
			{
				Record: "plm:brand_fetch_errors:rate5m",
				Expr:   `rate(plm_brand_fetch_errors_total[5m])`,
			},
			{
				Record: "plm:changes_detected:increase1h",
				Expr:   `sum by (change_type) (increase(plm_changes_detected_total[1h]))`,
			},
			{
				Record: "plm:notification_failures:rate5m",
				Expr:   `rate(plm_notification_failures_total[5m])`,
			},
			{
				Record: "plm:catalog_errors:rate5m",
				Expr:   `sum(rate(plm_catalog_requests_total{status!~"2.."}[5m]))`,
			},
		},
	})
}
