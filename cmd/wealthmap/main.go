// Package main is the entry point for the wealthmap CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wealthmap/wealthmap/internal/config"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wealthmap",
		Short: "Property ingestion and owner wealth estimation server",
		Long:  `Wealthmap ingests property records from the ATTOM data service, links them to owners, and estimates each owner's net worth from their real-estate portfolio.`,
	}

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(ingestCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from .env file and environment variables.
func loadConfig(envFile string) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
