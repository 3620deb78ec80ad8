package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func runOnceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run-once",
		Short: "Run a single detection cycle and exit",
		Example: `  pricelist-monitor run-once
  pricelist-monitor run-once --log-level debug`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.tokens.Load(ctx); err != nil {
				log.Debug("no stored token", "error", err)
			}

			res, err := a.engine.RunCycle(ctx)
			if err != nil {
				return fmt.Errorf("running cycle: %w", err)
			}

			tw := newTabWriter(os.Stdout)
			tw.writef("Cycle:\t%s\n", res.ID)
			tw.writef("Brands:\t%d (%d failed)\n", res.BrandsTotal, res.BrandsFailed)
			tw.writef("Changes:\t%d\n", res.Changes)
			tw.writef("Messages:\t%d\n", res.Messages)
			if res.DeliveryErr != nil {
				tw.writef("Delivery errors:\t%v\n", res.DeliveryErr)
			}
			return tw.finish()
		},
	}
}
