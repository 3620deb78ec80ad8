package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

func probeStat(title, probe string) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description("Last " + probe + " probe result (1 = passing, 0 = failing)").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(Sel("plm_probe_up", `probe="`+probe+`"`), "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}

// HealthzStat returns a stat panel showing the liveness probe.
func HealthzStat() *stat.PanelBuilder {
	return probeStat("Healthz", "liveness")
}

// ReadyzStat returns a stat panel showing the readiness probe, which
// follows database reachability.
func ReadyzStat() *stat.PanelBuilder {
	return probeStat("Readyz", "readiness")
}

// LastCycle returns a stat panel showing time since the last cycle that
// completed without aborting.
func LastCycle() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Last Successful Cycle").
		Description("Time since the last cycle that completed without aborting").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`time() - `+Sel("plm_last_successful_cycle_timestamp"), "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(CycleStaleAfter/3, CycleStaleAfter)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// UptimeStat returns a stat panel showing process uptime.
func UptimeStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Uptime").
		Description("Time since process start").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`time() - `+Sel("process_start_time_seconds"), "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeNone)
}
