package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CycleOutcomes returns a timeseries panel showing completed cycles per hour
// split by outcome.
func CycleOutcomes() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Cycles / hour").
		Description("Completed cycles per hour by outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum by (status) (increase(`+Sel("plm_cycles_total")+`[1h]))`,
			"{{status}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("last", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// CycleDuration returns a timeseries panel showing the p95 cycle duration.
// A p95 close to the interval means triggers are about to be skipped.
func CycleDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Cycle Duration (p95)").
		Description("95th percentile duration of a full poll, diff and notify cycle").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(P95("plm_cycle_duration_seconds"), "p95", "A")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SkippedCycles returns a stat panel showing triggers dropped because a
// cycle was still running.
func SkippedCycles() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Skipped Triggers (24h)").
		Description("Scheduled triggers dropped because the previous cycle was still running").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`increase(`+Sel("plm_cycles_skipped_total")+`[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
