package main

import (
	"log/slog"

	"github.com/wealthmap/wealthmap"
	"github.com/wealthmap/wealthmap/domain/wealth"
	"github.com/wealthmap/wealthmap/internal/config"
)

// clientOptions translates the loaded configuration into wealthmap client
// options. Shared by the serve and ingest commands.
func clientOptions(cfg config.AppConfig, logger *slog.Logger) []wealthmap.Option {
	opts := []wealthmap.Option{
		wealthmap.WithDatabaseURL(cfg.DBURL()),
		wealthmap.WithLogger(logger),
	}

	if key := cfg.AttomAPIKey(); key != "" {
		opts = append(opts, wealthmap.WithAttom(key))
	}
	if base := cfg.AttomBaseURL(); base != "" {
		opts = append(opts, wealthmap.WithAttomBaseURL(base))
	}
	if size := cfg.ProviderPageSize(); size > 0 {
		opts = append(opts, wealthmap.WithProviderPageSize(size))
	}
	if delay := cfg.IngestDelay(); delay > 0 {
		opts = append(opts, wealthmap.WithIngestDelay(delay))
	}
	if factor := cfg.NonRealEstateFactor(); factor > 0 {
		opts = append(opts, wealthmap.WithNonRealEstateFactor(factor))
	}

	var engineOpts []wealth.EngineOption
	if zips := cfg.LuxuryZips(); len(zips) > 0 {
		engineOpts = append(engineOpts, wealth.WithLuxuryZips(zips))
	}
	if states := cfg.LuxuryStates(); len(states) > 0 {
		engineOpts = append(engineOpts, wealth.WithLuxuryStates(states))
	}
	if len(engineOpts) > 0 {
		opts = append(opts, wealthmap.WithEngineOptions(engineOpts...))
	}

	return opts
}
