// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/pricelist-monitor/tools/dashgen/panels"
)

// BuildOverview constructs the pricelist monitor dashboard with all metric
// rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Pricelist Monitor").
		Uid("plm-overview").
		Tags([]string{"plm", "pricelist-monitor"}).
		Refresh("1m").
		Time("now-24h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.LastCycle()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("Cycles").
		WithPanel(panels.CycleOutcomes()).
		WithPanel(panels.CycleDuration()).
		WithPanel(panels.SkippedCycles()))

	b.WithRow(dashboard.NewRowBuilder("Catalog").
		WithPanel(panels.CatalogRequests()).
		WithPanel(panels.BrandFetchErrors()).
		WithPanel(panels.ProductsFetched()).
		WithPanel(panels.AuthLogins()).
		WithPanel(panels.TokenInvalidations()).
		WithPanel(panels.BrandCacheHitRatio()))

	b.WithRow(dashboard.NewRowBuilder("Changes & Notifications").
		WithPanel(panels.ChangesByType()).
		WithPanel(panels.NotificationsSent()).
		WithPanel(panels.NotificationLatency()).
		WithPanel(panels.NotificationFailures()))

	b.WithRow(dashboard.NewRowBuilder("Operations Server").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
