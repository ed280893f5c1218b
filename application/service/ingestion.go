// Package service provides the application services that orchestrate
// ingestion, wealth estimation, and read-side queries.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wealthmap/wealthmap/domain/owner"
	"github.com/wealthmap/wealthmap/domain/property"
)

// Provider fetches raw records from the external real-estate data provider.
// Absent means "treat as not found", never an error, so a missing record
// degrades to skipping it rather than aborting a batch.
type Provider interface {
	// PropertiesByArea returns summaries of every property in a postal
	// code matching the property-type filter, following provider paging.
	PropertiesByArea(ctx context.Context, postalCode, propertyType string) ([]property.Summary, error)

	// OwnerDetail returns the ownership record for an external record id.
	OwnerDetail(ctx context.Context, externalID int64) (owner.Detail, bool, error)

	// FinancialDetail returns the financial/physical record for an
	// external record id.
	FinancialDetail(ctx context.Context, externalID int64) (property.Record, bool, error)
}

// Ingestion runs the fetch → normalize → upsert → link pipeline for provider
// records, one record fully processed before the next begins.
type Ingestion struct {
	provider    Provider
	owners      owner.Store
	properties  property.Store
	links       property.LinkStore
	wealth      *Wealth
	recordDelay time.Duration
	logger      *slog.Logger
}

// NewIngestion creates an Ingestion service. recordDelay is the fixed pause
// between records during area ingestion, respecting provider rate limits.
func NewIngestion(
	provider Provider,
	owners owner.Store,
	properties property.Store,
	links property.LinkStore,
	wealth *Wealth,
	recordDelay time.Duration,
	logger *slog.Logger,
) *Ingestion {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingestion{
		provider:    provider,
		owners:      owners,
		properties:  properties,
		links:       links,
		wealth:      wealth,
		recordDelay: recordDelay,
		logger:      logger,
	}
}

// ProcessRecord ingests one external record id: it upserts the property,
// resolves and links every named owner, and recomputes wealth for each owner
// touched. The returned slice holds the distinct touched owner ids.
//
// Every failure inside the record is caught and logged here — a bad record
// never aborts a multi-record batch.
func (s *Ingestion) ProcessRecord(ctx context.Context, externalID int64, propertyTypeHint string) []string {
	ownerIDs, err := s.processRecord(ctx, externalID, propertyTypeHint)
	if err != nil {
		s.logger.Error("record processing failed",
			"external_id", externalID,
			"error", err,
		)
		return nil
	}
	return ownerIDs
}

func (s *Ingestion) processRecord(ctx context.Context, externalID int64, propertyTypeHint string) ([]string, error) {
	detail, ok, err := s.provider.OwnerDetail(ctx, externalID)
	if err != nil {
		return nil, fmt.Errorf("fetch owner detail: %w", err)
	}
	if !ok {
		s.logger.Info("skipping record: no owner data", "external_id", externalID)
		return nil, nil
	}

	rec, ok, err := s.provider.FinancialDetail(ctx, externalID)
	if err != nil {
		return nil, fmt.Errorf("fetch financial detail: %w", err)
	}
	if !ok {
		s.logger.Info("skipping record: no financial data", "external_id", externalID)
		return nil, nil
	}

	rec.ExternalID = externalID
	if propertyTypeHint != "" {
		rec.PropertyType = propertyTypeHint
	}

	prop, err := s.properties.Upsert(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("upsert property: %w", err)
	}

	// An owner cannot be identity-resolved without the shared mailing
	// address, so the whole record's owner handling is skipped without it.
	mailing := owner.NormalizeAddress(detail.MailingAddress)
	if mailing == "" {
		s.logger.Info("skipping record: missing mailing address", "external_id", externalID)
		return nil, nil
	}

	var touched []string
	seen := map[string]struct{}{}
	for _, slot := range detail.NamedSlots() {
		own, err := s.owners.GetOrCreate(ctx, slot.FullName, mailing)
		if err != nil {
			return nil, fmt.Errorf("upsert owner %q: %w", slot.FullName, err)
		}
		if err := s.links.Link(ctx, own.ID(), prop.ID()); err != nil {
			return nil, fmt.Errorf("link owner %s: %w", own.ID(), err)
		}
		if _, dup := seen[own.ID()]; !dup {
			seen[own.ID()] = struct{}{}
			touched = append(touched, own.ID())
		}
	}

	for _, id := range touched {
		if _, err := s.wealth.ComputeOwnerWealth(ctx, id, 1); err != nil {
			return nil, fmt.Errorf("recompute wealth for owner %s: %w", id, err)
		}
	}

	return touched, nil
}

// IngestArea fetches every property summary for a postal code and property
// type and processes each record serially with the configured inter-record
// delay. Individual record failures are logged and skipped; only provider
// listing failures and context cancellation abort the run.
func (s *Ingestion) IngestArea(ctx context.Context, postalCode, propertyType string) error {
	summaries, err := s.provider.PropertiesByArea(ctx, postalCode, propertyType)
	if err != nil {
		return fmt.Errorf("list properties for %s: %w", postalCode, err)
	}

	s.logger.Info("ingesting area",
		"postal_code", postalCode,
		"property_type", propertyType,
		"records", len(summaries),
	)

	for i, summary := range summaries {
		if summary.ExternalID == 0 {
			continue
		}

		ownerIDs := s.ProcessRecord(ctx, summary.ExternalID, propertyType)
		s.logger.Info("record processed",
			"external_id", summary.ExternalID,
			"position", fmt.Sprintf("%d/%d", i+1, len(summaries)),
			"owners", len(ownerIDs),
		)

		if s.recordDelay > 0 && i < len(summaries)-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.recordDelay):
			}
		}
	}

	return nil
}
