package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/pricelist-monitor/internal/store"
	domain "github.com/donaldgifford/pricelist-monitor/pkg/types"
)

func subscriberCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "subscriber",
		Short: "Manage notification subscribers",
	}
	root.AddCommand(subscriberSetCmd(), subscriberListCmd())
	return root
}

func subscriberSetCmd() *cobra.Command {
	var sub domain.Subscriber

	c := &cobra.Command{
		Use:   "set",
		Short: "Create or update a subscriber's category selection",
		Example: `  pricelist-monitor subscriber set --user 123456789
  pricelist-monitor subscriber set --user 123456789 --apple=false`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if sub.UserID == 0 {
				return fmt.Errorf("--user is required")
			}
			return withStore(func(ctx context.Context, s *store.PostgresStore) error {
				if err := s.UpsertSubscriber(ctx, &sub); err != nil {
					return fmt.Errorf("saving subscriber: %w", err)
				}
				fmt.Printf("Subscriber %d: apple=%v other=%v\n", sub.UserID, sub.ReceiveApple, sub.ReceiveOther)
				return nil
			})
		},
	}

	c.Flags().Int64Var(&sub.UserID, "user", 0, "Telegram user ID")
	c.Flags().BoolVar(&sub.ReceiveApple, "apple", true, "receive Apple changes")
	c.Flags().BoolVar(&sub.ReceiveOther, "other", true, "receive changes for all other brands")
	return c
}

func subscriberListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List subscribers",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withStore(func(ctx context.Context, s *store.PostgresStore) error {
				subs, err := s.ListSubscribers(ctx)
				if err != nil {
					return fmt.Errorf("listing subscribers: %w", err)
				}
				if len(subs) == 0 {
					fmt.Println("No subscribers found.")
					return nil
				}
				return printSubscriberTable(subs)
			})
		},
	}
}

// withStore runs fn against the database alone, for commands that never
// reach the catalog.
func withStore(fn func(ctx context.Context, s *store.PostgresStore) error) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pg, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), cfg.Database.PoolSize)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pg.Close()

	return fn(ctx, pg)
}
