package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Default configuration values.
const (
	DefaultHost     = "0.0.0.0"
	DefaultPort     = 8080
	DefaultLogLevel = "INFO"
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// AppConfig is the resolved application configuration.
type AppConfig struct {
	host                string
	port                int
	dataDir             string
	dbURL               string
	logLevel            string
	logFormat           LogFormat
	corsOrigins         []string
	attomAPIKey         string
	attomBaseURL        string
	providerPageSize    int
	ingestDelay         time.Duration
	nonRealEstateFactor float64
	luxuryZips          []string
	luxuryStates        []string
}

// Host returns the server host.
func (c AppConfig) Host() string {
	if c.host == "" {
		return DefaultHost
	}
	return c.host
}

// Port returns the server port.
func (c AppConfig) Port() int {
	if c.port == 0 {
		return DefaultPort
	}
	return c.port
}

// Addr returns the host:port address for the HTTP server.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host(), c.Port())
}

// DataDir returns the data directory, defaulting to ~/.wealthmap.
func (c AppConfig) DataDir() string {
	if c.dataDir != "" {
		return c.dataDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wealthmap"
	}
	return filepath.Join(home, ".wealthmap")
}

// DBURL returns the database connection URL, defaulting to a SQLite file
// in the data directory.
func (c AppConfig) DBURL() string {
	if c.dbURL != "" {
		return c.dbURL
	}
	return "sqlite:///" + filepath.Join(c.DataDir(), "wealthmap.db")
}

// LogLevel returns the log verbosity level.
func (c AppConfig) LogLevel() string {
	if c.logLevel == "" {
		return DefaultLogLevel
	}
	return c.logLevel
}

// LogFormat returns the log output format.
func (c AppConfig) LogFormat() LogFormat {
	if c.logFormat == "" {
		return LogFormatPretty
	}
	return c.logFormat
}

// CORSOrigins returns the allowed CORS origins for the read API.
func (c AppConfig) CORSOrigins() []string {
	return c.corsOrigins
}

// AttomAPIKey returns the provider API key.
func (c AppConfig) AttomAPIKey() string {
	return c.attomAPIKey
}

// AttomBaseURL returns the provider base URL override, or empty for the
// provider default.
func (c AppConfig) AttomBaseURL() string {
	return c.attomBaseURL
}

// ProviderPageSize returns the paging fetch page size.
func (c AppConfig) ProviderPageSize() int {
	return c.providerPageSize
}

// IngestDelay returns the fixed pause between ingested records.
func (c AppConfig) IngestDelay() time.Duration {
	return c.ingestDelay
}

// NonRealEstateFactor returns the non-real-estate wealth multiplier.
func (c AppConfig) NonRealEstateFactor() float64 {
	return c.nonRealEstateFactor
}

// LuxuryZips returns the luxury zip allow-list override, or nil for the
// built-in default.
func (c AppConfig) LuxuryZips() []string {
	return c.luxuryZips
}

// LuxuryStates returns the luxury state allow-list override, or nil for the
// built-in default.
func (c AppConfig) LuxuryStates() []string {
	return c.luxuryStates
}

// WithAddr returns a copy with the host and port overridden where non-zero.
// Command line flags use this to take precedence over environment values.
func (c AppConfig) WithAddr(host string, port int) AppConfig {
	if host != "" {
		c.host = host
	}
	if port != 0 {
		c.port = port
	}
	return c
}

// EnsureDataDir creates the data directory if it does not exist.
func (c AppConfig) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir(), 0o755)
}
