// Package config provides application configuration.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// Host is the server host to bind to.
	// Env: HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// Port is the server port to listen on.
	// Env: PORT (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// DataDir is the data directory path.
	// Env: DATA_DIR
	// Default: ~/.wealthmap
	DataDir string `envconfig:"DATA_DIR"`

	// DBURL is the database connection URL.
	// Env: DB_URL
	// Default: sqlite:///{data_dir}/wealthmap.db
	DBURL string `envconfig:"DB_URL"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// CORSOrigins is a comma-separated list of allowed CORS origins.
	// Env: CORS_ORIGINS
	CORSOrigins string `envconfig:"CORS_ORIGINS"`

	// AttomAPIKey authenticates against the ATTOM property API.
	// Env: ATTOM_API_KEY
	AttomAPIKey string `envconfig:"ATTOM_API_KEY"`

	// AttomBaseURL overrides the ATTOM API base URL.
	// Env: ATTOM_BASE_URL
	AttomBaseURL string `envconfig:"ATTOM_BASE_URL"`

	// ProviderPageSize is the paging fetch page size.
	// Env: PROVIDER_PAGE_SIZE (default: 100)
	ProviderPageSize int `envconfig:"PROVIDER_PAGE_SIZE" default:"100"`

	// IngestDelaySeconds is the fixed pause between records during area
	// ingestion, respecting provider rate limits.
	// Env: INGEST_DELAY_SECONDS (default: 1.0)
	IngestDelaySeconds float64 `envconfig:"INGEST_DELAY_SECONDS" default:"1"`

	// NonRealEstateFactor approximates non-real-estate assets as a
	// multiple of real-estate wealth.
	// Env: NON_REAL_ESTATE_FACTOR (default: 2.0)
	NonRealEstateFactor float64 `envconfig:"NON_REAL_ESTATE_FACTOR" default:"2"`

	// LuxuryZips overrides the luxury zip code allow-list
	// (comma-separated).
	// Env: LUXURY_ZIPS
	LuxuryZips string `envconfig:"LUXURY_ZIPS"`

	// LuxuryStates overrides the luxury state allow-list
	// (comma-separated).
	// Env: LUXURY_STATES
	LuxuryStates string `envconfig:"LUXURY_STATES"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("process environment: %w", err)
	}
	return cfg, nil
}

// ToAppConfig converts the environment config into an AppConfig with
// defaults resolved.
func (e EnvConfig) ToAppConfig() AppConfig {
	return AppConfig{
		host:                e.Host,
		port:                e.Port,
		dataDir:             e.DataDir,
		dbURL:               e.DBURL,
		logLevel:            e.LogLevel,
		logFormat:           LogFormat(strings.ToLower(e.LogFormat)),
		corsOrigins:         splitList(e.CORSOrigins),
		attomAPIKey:         e.AttomAPIKey,
		attomBaseURL:        e.AttomBaseURL,
		providerPageSize:    e.ProviderPageSize,
		ingestDelay:         time.Duration(e.IngestDelaySeconds * float64(time.Second)),
		nonRealEstateFactor: e.NonRealEstateFactor,
		luxuryZips:          splitList(e.LuxuryZips),
		luxuryStates:        splitList(e.LuxuryStates),
	}
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
