package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/gauge"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CatalogRequests returns a timeseries panel showing catalog API calls per
// second by endpoint and status.
func CatalogRequests() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Catalog Requests").
		Description("Catalog API requests per second by endpoint and HTTP status").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum by (endpoint, status) (rate(`+Sel("plm_catalog_requests_total")+`[5m]))`,
			"{{endpoint}} {{status}}", "A",
		)).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// BrandFetchErrors returns a timeseries panel showing skipped brands per
// minute.
func BrandFetchErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Brand Fetch Errors / min").
		Description("Brands skipped because their pricelist could not be fetched").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`plm:brand_fetch_errors:rate5m * 60`, "errors/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ProductsFetched returns a stat panel showing the catalog size seen by the
// last cycle. A sudden drop usually means brands failed to load.
func ProductsFetched() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Products Fetched").
		Description("Products fetched across all brands in the last cycle").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(Sel("plm_products_fetched"), "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}

// AuthLogins returns a stat panel showing login exchanges in the last day
// by result.
func AuthLogins() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Logins (24h)").
		Description("Catalog login exchanges in the last 24 hours by result").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`sum by (result) (increase(`+Sel("plm_auth_logins_total")+`[24h]))`,
			"{{result}}", "A",
		)).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		GraphMode(common.BigValueGraphModeNone)
}

// TokenInvalidations returns a stat panel showing tokens the catalog
// rejected in the last day.
func TokenInvalidations() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Rejected Tokens (24h)").
		Description("Tokens dropped after the catalog answered 401 or 403").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`increase(`+Sel("plm_token_invalidations_total")+`[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(2, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// BrandCacheHitRatio returns a gauge panel showing the share of brand list
// reads served by Redis.
func BrandCacheHitRatio() *gauge.PanelBuilder {
	hits := `sum(rate(` + Sel("plm_brand_cache_requests_total", `result="hit"`) + `[1h]))`
	all := `sum(rate(` + Sel("plm_brand_cache_requests_total") + `[1h]))`
	return gauge.NewPanelBuilder().
		Title("Brand Cache Hit %").
		Description("Share of brand list reads served from Redis over the last hour").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(hits+" / "+all+" * 100", "", "A")).
		Unit("percent").
		Min(0).
		Max(100).
		Thresholds(ThresholdsRedGreen(50)).
		ColorScheme(ColorSchemeThresholds())
}
