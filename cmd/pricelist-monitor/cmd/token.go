package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	var refresh bool

	c := &cobra.Command{
		Use:   "token",
		Short: "Show the stored catalog credential state",
		Long: "token prints whether a catalog session token is stored, whether it is\n" +
			"still valid and when it expires. The token itself is never printed.",
		Example: `  pricelist-monitor token
  pricelist-monitor token --refresh`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			a, err := newApp(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.tokens.Load(ctx); err != nil {
				log.Debug("no stored token", "error", err)
			}
			if refresh {
				if _, err := a.tokens.Token(ctx); err != nil {
					return fmt.Errorf("obtaining token: %w", err)
				}
			}

			st := a.tokens.Status()
			tw := newTabWriter(os.Stdout)
			tw.writef("Service:\t%s\n", cfg.Catalog.ServiceID)
			tw.writef("Stored:\t%v\n", st.HasToken)
			tw.writef("Valid:\t%v\n", st.Valid)
			if st.HasToken {
				tw.writef("Expires:\t%s\n", st.ExpiresAt.Format(time.RFC3339))
				tw.writef("Time left:\t%s\n", st.TimeLeft.Round(time.Second))
			}
			return tw.finish()
		},
	}

	c.Flags().BoolVar(&refresh, "refresh", false, "log in if no valid token is stored")
	return c
}
