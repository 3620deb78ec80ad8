package rules

const (
	severityWarning  = "warning"
	severityCritical = "critical"
)

func alert(name, expr, forDur, severity, summary, description string) Rule {
	return Rule{
		Alert:  name,
		Expr:   expr,
		For:    forDur,
		Labels: map[string]string{"severity": severity},
		Annotations: map[string]string{
			"summary":     summary,
			"description": description,
		},
	}
}

// AlertRules returns a PrometheusRule CR containing alert rules for
// pricelist-monitor operational monitoring.
func AlertRules() PrometheusRule {
	return newPrometheusRule("plm-alerts", RuleGroup{
		Name: "plm-alerts",
		Rules: []Rule{
			alert("PlmDown", `absent(up{job="pricelist-monitor"})`, "2m", severityCritical,
				"Pricelist monitor is down",
				"The pricelist-monitor job has been absent for more than 2 minutes."),
			alert("PlmReadinessDown", `plm_probe_up{probe="readiness"} == 0`, "2m", severityCritical,
				"Pricelist monitor cannot reach its database",
				"The readiness probe has been failing for more than 2 minutes."),
			alert("PlmCyclesStalled", `time() - plm_last_successful_cycle_timestamp > 900`, "5m", severityCritical,
				"No successful cycle in 15 minutes",
				"Subscribers are not being told about pricelist changes. Check the catalog credential and the database."),
			alert("PlmCyclesFailing", `plm:cycles_failed:rate30m > 0`, "30m", severityWarning,
				"Cycles are aborting",
				"At least one cycle per half hour aborted on authentication or persistence for 30 minutes."),
			alert("PlmCyclesSkipped", `increase(plm_cycles_skipped_total[30m]) > 3`, "0m", severityWarning,
				"Cycles are overrunning the poll interval",
				"More than 3 triggers in 30 minutes were dropped because the previous cycle was still running."),
			alert("PlmBrandFetchErrors", `plm:brand_fetch_errors:rate5m > 0`, "15m", severityWarning,
				"Brand pricelists are failing to load",
				"Some brands have been skipped for 15 minutes; their changes are delayed until the fetch recovers."),
			alert("PlmLoginFailures", `increase(plm_auth_logins_total{result="failure"}[15m]) > 2`, "0m", severityCritical,
				"Catalog login is failing",
				"More than 2 catalog logins failed in 15 minutes. The account credentials may have changed."),
			alert("PlmNotificationFailures", `increase(plm_notification_failures_total[5m]) > 0`, "1m", severityWarning,
				"Notification delivery failures detected",
				"One or more Telegram messages failed to send."),
		},
	})
}
