// Package validate checks generated dashboards and rules: every query must
// parse as PromQL and reference only metrics the service exports.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/pricelist-monitor/tools/dashgen/rules"
)

// histogramSuffixes are the series suffixes a histogram exports beside its
// base name.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Result collects problems. Errors make the artifact unusable; warnings
// point at queries that work but are likely wrong.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Dashboard validates every panel target in dash, including panels nested
// in rows. Raw metric selectors must carry a job matcher so the dashboard
// does not mix in other services.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var r Result
	for _, p := range dash.Panels {
		switch {
		case p.RowPanel != nil:
			for _, inner := range p.RowPanel.Panels {
				r.panel(inner, known)
			}
		case p.Panel != nil:
			r.panel(*p.Panel, known)
		}
	}
	return r
}

// Rules validates the expressions of every rule in cr. Recording rule
// outputs must themselves be known so dashboards can reference them.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var r Result
	for _, g := range cr.Spec.Groups {
		for _, rule := range g.Rules {
			name := rule.Record
			if name == "" {
				name = rule.Alert
			}
			where := g.Name + "/" + name

			if rule.Record != "" && !known[rule.Record] {
				r.errorf("%s: recording rule output is not in the known metric set", where)
			}
			r.expr(where, rule.Expr, known, false)
		}
	}
	return r
}

func (r *Result) panel(p dashboard.Panel, known map[string]bool) {
	title := "(untitled)"
	if p.Title != nil {
		title = *p.Title
	}
	if len(p.Targets) == 0 {
		r.errorf("panel %q has no targets", title)
	}

	for i, target := range p.Targets {
		where := fmt.Sprintf("panel %q target %d", title, i)

		expr, err := targetExpr(target)
		if err != nil {
			r.errorf("%s: %v", where, err)
			continue
		}
		r.expr(where, expr, known, true)
	}
}

// targetExpr reads the PromQL expression from a query target. Targets are
// datasource variants, so the expression is read from the JSON form.
func targetExpr(target any) (string, error) {
	data, err := json.Marshal(target)
	if err != nil {
		return "", fmt.Errorf("encoding target: %w", err)
	}

	var q struct {
		Expr string `json:"expr"`
	}
	if err := json.Unmarshal(data, &q); err != nil {
		return "", fmt.Errorf("decoding target: %w", err)
	}
	if strings.TrimSpace(q.Expr) == "" {
		return "", fmt.Errorf("empty expression")
	}
	return q.Expr, nil
}

func (r *Result) expr(where, expr string, known map[string]bool, requireJob bool) {
	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		r.errorf("%s: invalid PromQL %q: %v", where, expr, err)
		return
	}

	parser.Inspect(parsed, func(node parser.Node, _ []parser.Node) error {
		vs, ok := node.(*parser.VectorSelector)
		if !ok {
			return nil
		}
		if vs.Name == "" {
			r.warnf("%s: selector without a metric name in %q", where, expr)
			return nil
		}
		if !known[baseName(vs.Name, known)] {
			r.errorf("%s: unknown metric %q", where, vs.Name)
		}
		if requireJob && !strings.Contains(vs.Name, ":") && !hasMatcher(vs, "job") {
			r.warnf("%s: %s is not scoped to a job", where, vs.Name)
		}
		return nil
	})
}

// baseName maps histogram series back to the histogram's name.
func baseName(name string, known map[string]bool) string {
	if known[name] {
		return name
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return base
		}
	}
	return name
}

func hasMatcher(vs *parser.VectorSelector, label string) bool {
	for _, m := range vs.LabelMatchers {
		if m.Name == label {
			return true
		}
	}
	return false
}
