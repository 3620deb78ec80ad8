package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	domain "github.com/donaldgifford/pricelist-monitor/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printBrandTable(brands []domain.Brand) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\n")
	for _, b := range brands {
		tw.writef("%d\t%s\n", b.ID, b.Name)
	}
	return tw.finish()
}

func printSubscriberTable(subs []domain.Subscriber) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("USER\tAPPLE\tOTHER\n")
	for _, s := range subs {
		tw.writef("%d\t%v\t%v\n", s.UserID, s.ReceiveApple, s.ReceiveOther)
	}
	return tw.finish()
}

func printCycleRunTable(runs []domain.CycleRun) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tSTARTED\tDURATION\tSTATUS\tBRANDS\tFAILED\tCHANGES\tERROR\n")
	for i := range runs {
		r := &runs[i]
		dur := "-"
		if r.CompletedAt != nil {
			dur = r.CompletedAt.Sub(r.StartedAt).Round(time.Millisecond).String()
		}
		tw.writef("%s\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			r.ID,
			r.StartedAt.Format(time.DateTime),
			dur,
			r.Status,
			r.BrandsTotal,
			r.BrandsFailed,
			r.Changes,
			r.ErrorText,
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
