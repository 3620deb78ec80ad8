package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/pricelist-monitor/internal/store"
)

func historyCmd() *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	c := &cobra.Command{
		Use:   "history",
		Short: "Show recent detection cycles",
		Example: `  pricelist-monitor history
  pricelist-monitor history --limit 50 --json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return withStore(func(ctx context.Context, s *store.PostgresStore) error {
				runs, err := s.ListCycleRuns(ctx, limit)
				if err != nil {
					return fmt.Errorf("listing cycle runs: %w", err)
				}
				if asJSON {
					return outputJSON(runs)
				}
				if len(runs) == 0 {
					fmt.Println("No cycle runs found.")
					return nil
				}
				return printCycleRunTable(runs)
			})
		},
	}

	c.Flags().IntVar(&limit, "limit", 20, "number of runs to show")
	c.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return c
}
