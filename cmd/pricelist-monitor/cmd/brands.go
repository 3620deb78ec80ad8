package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func syncBrandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync-brands",
		Short: "Refresh the stored brand list from the catalog",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()

			a, err := newApp(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.tokens.Load(ctx); err != nil {
				log.Debug("no stored token", "error", err)
			}

			brands, err := a.engine.SyncBrands(ctx)
			if err != nil {
				return fmt.Errorf("syncing brands: %w", err)
			}
			return printBrandTable(brands)
		},
	}
}
