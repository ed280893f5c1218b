package wealthmap

import (
	"log/slog"
	"time"

	"github.com/wealthmap/wealthmap/application/service"
	"github.com/wealthmap/wealthmap/domain/wealth"
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	dbURL               string
	attomAPIKey         string
	attomBaseURL        string
	providerPageSize    int
	provider            service.Provider
	ingestDelay         time.Duration
	nonRealEstateFactor float64
	engineOptions       []wealth.EngineOption
	logger              *slog.Logger
}

func newClientConfig() *clientConfig {
	return &clientConfig{
		ingestDelay:         time.Second,
		nonRealEstateFactor: service.DefaultNonRealEstateFactor,
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithSQLite configures SQLite as the database.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.dbURL = "sqlite:///" + path
	}
}

// WithPostgres configures PostgreSQL as the database.
func WithPostgres(dsn string) Option {
	return func(c *clientConfig) {
		c.dbURL = dsn
	}
}

// WithDatabaseURL configures the database from a connection URL.
func WithDatabaseURL(url string) Option {
	return func(c *clientConfig) {
		c.dbURL = url
	}
}

// WithAttom configures the ATTOM provider API key.
func WithAttom(apiKey string) Option {
	return func(c *clientConfig) {
		c.attomAPIKey = apiKey
	}
}

// WithAttomBaseURL overrides the ATTOM API base URL.
func WithAttomBaseURL(base string) Option {
	return func(c *clientConfig) {
		c.attomBaseURL = base
	}
}

// WithProviderPageSize sets the provider paging fetch page size.
func WithProviderPageSize(n int) Option {
	return func(c *clientConfig) {
		c.providerPageSize = n
	}
}

// WithProvider injects a custom data provider, replacing the ATTOM client.
func WithProvider(p service.Provider) Option {
	return func(c *clientConfig) {
		c.provider = p
	}
}

// WithIngestDelay sets the fixed pause between ingested records.
func WithIngestDelay(d time.Duration) Option {
	return func(c *clientConfig) {
		c.ingestDelay = d
	}
}

// WithNonRealEstateFactor sets the multiplier approximating
// non-real-estate assets.
func WithNonRealEstateFactor(f float64) Option {
	return func(c *clientConfig) {
		c.nonRealEstateFactor = f
	}
}

// WithEngineOptions passes options through to the wealth rule engine
// (clock, luxury allow-list overrides).
func WithEngineOptions(opts ...wealth.EngineOption) Option {
	return func(c *clientConfig) {
		c.engineOptions = append(c.engineOptions, opts...)
	}
}

// WithLogger sets the client logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
