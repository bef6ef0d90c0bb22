// Package main provides the swu CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/swapunits/swapunits/internal/config"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		// This ensures Cobra errors (like missing required flags) are visible
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "swu",
	Short: "Unit conversion and date arithmetic CLI",
	Long: `swu converts between units of measurement, does calendar arithmetic
and builds the static SwapUnits converter site.

Core features:
  - Length, temperature, area, volume, weight, time, speed, pressure
    and energy conversion
  - Regional Indian land units
  - Durations, date shifts and business-day counts
  - Static site generation with a searchable page index

All commands output JSON by default; pass --human for text.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// mustLoadConfig loads the global configuration, exits on error.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// mustLogger builds the logger for long-running commands, exits on error.
func mustLogger(cfg *config.Config) *zap.Logger {
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		exitWithError(ExitConfigError, "creating logger: %v", err)
	}
	return logger
}
