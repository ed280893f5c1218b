// Package wealthmap provides a library for ingesting third-party real-estate
// records and estimating owner net worth from their property portfolio.
//
// Records flow from the data provider through the ingestion pipeline into a
// deduplicated relational model of properties, owners, and ownership links;
// a weighted rule engine then derives an estimated net worth and a confidence
// tier per owner.
//
// Basic usage:
//
//	client, err := wealthmap.New(
//	    wealthmap.WithSQLite(".wealthmap/data.db"),
//	    wealthmap.WithAttom(os.Getenv("ATTOM_API_KEY")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Ingest every commercial property in a postal code
//	err = client.Ingestion.IngestArea(ctx, "82009", "COMMERCIAL (NEC)")
//
//	// Query owners by estimated net worth
//	owners, err := client.Owners.Find(ctx, owner.Filter{MinNetWorth: 5_000_000})
package wealthmap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wealthmap/wealthmap/application/service"
	"github.com/wealthmap/wealthmap/domain/wealth"
	"github.com/wealthmap/wealthmap/infrastructure/persistence"
	"github.com/wealthmap/wealthmap/infrastructure/provider"
	"github.com/wealthmap/wealthmap/internal/database"
)

// ErrNoDatabase indicates the Client was constructed without a database.
var ErrNoDatabase = errors.New("no database configured: use WithSQLite, WithPostgres, or WithDatabaseURL")

// Client is the main entry point for the wealthmap library.
//
// Access resources via struct fields:
//
//	client.Ingestion.ProcessRecord(ctx, externalID, typeHint)
//	client.Wealth.ComputeOwnerWealth(ctx, ownerID, 1)
//	client.Owners.Find(ctx, owner.Filter{Name: "SMITH"})
type Client struct {
	Ingestion  *service.Ingestion
	Wealth     *service.Wealth
	Owners     *service.Owners
	Properties *service.Properties

	db     database.Database
	logger *slog.Logger
}

// New creates a new Client with the given options.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.dbURL == "" {
		return nil, ErrNoDatabase
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx := context.Background()
	db, err := database.NewDatabase(ctx, cfg.dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := persistence.AutoMigrate(db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("auto migrate: %w", err), errClose)
	}

	ownerStore := persistence.NewOwnerStore(db)
	propertyStore := persistence.NewPropertyStore(db)
	linkStore := persistence.NewLinkStore(db)

	engine := wealth.NewEngine(cfg.engineOptions...)
	wealthSvc := service.NewWealth(ownerStore, propertyStore, engine, cfg.nonRealEstateFactor, nil, logger)

	prov := cfg.provider
	if prov == nil {
		attomOpts := []provider.AttomOption{provider.WithLogger(logger)}
		if cfg.attomBaseURL != "" {
			attomOpts = append(attomOpts, provider.WithBaseURL(cfg.attomBaseURL))
		}
		if cfg.providerPageSize > 0 {
			attomOpts = append(attomOpts, provider.WithPageSize(cfg.providerPageSize))
		}
		prov = provider.NewAttomClient(cfg.attomAPIKey, attomOpts...)
	}

	return &Client{
		Ingestion:  service.NewIngestion(prov, ownerStore, propertyStore, linkStore, wealthSvc, cfg.ingestDelay, logger),
		Wealth:     wealthSvc,
		Owners:     service.NewOwners(ownerStore, propertyStore, logger),
		Properties: service.NewProperties(propertyStore, ownerStore, logger),
		db:         db,
		logger:     logger,
	}, nil
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// Database returns the underlying database handle.
func (c *Client) Database() database.Database {
	return c.db
}

// Close releases the database connection.
func (c *Client) Close() error {
	return c.db.Close()
}
