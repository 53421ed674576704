package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	flagConfig    string
	flagEnvPrefix string
	flagSeparator string
	flagLogLevel  string
)

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "strata",
	Short:   "Inspect layered configuration resolution",
	Long: `Strata resolves configuration from files (with $include expansion),
environment variables and command line overrides into one merged tree.

This tool renders the tree an application would see, which makes it easy to
answer "where did this value come from" questions per deployment.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "configuration file path")
	rootCmd.PersistentFlags().StringVar(&flagEnvPrefix, "env-prefix", "", "environment variable prefix for overrides")
	rootCmd.PersistentFlags().StringVar(&flagSeparator, "separator", "__", "environment variable segment separator")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level: debug, info, warn, error")
}

func setupLogging() error {
	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(flagLogLevel)); err != nil {
		return err
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level})))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
