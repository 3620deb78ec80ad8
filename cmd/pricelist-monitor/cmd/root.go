// Package cmd implements the CLI commands for pricelist-monitor.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/donaldgifford/pricelist-monitor/internal/config"
	"github.com/donaldgifford/pricelist-monitor/pkg/logger"
)

const (
	keyConfig   = "config"
	keyLogLevel = "log_level"
	keyEnvFile  = "env_file"
)

var rootCmd = &cobra.Command{
	Use:   "pricelist-monitor",
	Short: "Watch a supplier pricelist and notify subscribers of changes",
	Long: "pricelist-monitor polls a supplier catalog on a fixed interval, diffs every\n" +
		"brand's pricelist against the last snapshot, and sends the price, stock\n" +
		"and assortment changes to Telegram subscribers.",
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initEnv)

	rootCmd.PersistentFlags().String("config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().String("log-level", "", "override logging.level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("env-file", ".env", "dotenv file loaded before the config")

	cobra.CheckErr(viper.BindPFlag(keyConfig, rootCmd.PersistentFlags().Lookup("config")))
	cobra.CheckErr(viper.BindPFlag(keyLogLevel, rootCmd.PersistentFlags().Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag(keyEnvFile, rootCmd.PersistentFlags().Lookup("env-file")))

	rootCmd.AddCommand(
		serveCmd(),
		migrateCmd(),
		runOnceCmd(),
		syncBrandsCmd(),
		tokenCmd(),
		subscriberCmd(),
		historyCmd(),
		versionCmd(),
	)
}

// initEnv loads the dotenv file into the process environment, so that both
// PLM_* overrides and ${VAR} references in the config file can use it.
// Variables already set in the environment win.
func initEnv() {
	viper.SetEnvPrefix("PLM")
	viper.AutomaticEnv()

	path := viper.GetString(keyEnvFile)
	if path == "" {
		return
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "Ignoring env file:", err)
	}
}

// loadConfig reads the config file and builds the logger, honoring the
// --log-level override.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(viper.GetString(keyConfig))
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if lvl := viper.GetString(keyLogLevel); lvl != "" {
		cfg.Logging.Level = lvl
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)
	return cfg, log, nil
}

// Root returns the root cobra command.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
