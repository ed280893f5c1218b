package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wealthmap/wealthmap/domain/owner"
	"github.com/wealthmap/wealthmap/domain/property"
	"github.com/wealthmap/wealthmap/domain/wealth"
	"github.com/wealthmap/wealthmap/internal/database"
)

// DefaultNonRealEstateFactor approximates non-real-estate assets as a
// multiple of real-estate wealth.
const DefaultNonRealEstateFactor = 2.0

// Wealth recomputes owner net-worth estimates from their property portfolio.
type Wealth struct {
	owners     owner.Store
	properties property.Store
	engine     *wealth.Engine
	factor     float64
	now        func() time.Time
	logger     *slog.Logger
}

// NewWealth creates a Wealth service. The non-real-estate factor is an
// explicit parameter so recomputation stays deterministic and reproducible;
// pass DefaultNonRealEstateFactor unless configured otherwise. A nil clock
// uses time.Now.
func NewWealth(
	owners owner.Store,
	properties property.Store,
	engine *wealth.Engine,
	factor float64,
	now func() time.Time,
	logger *slog.Logger,
) *Wealth {
	if factor <= 0 {
		factor = DefaultNonRealEstateFactor
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Wealth{
		owners:     owners,
		properties: properties,
		engine:     engine,
		factor:     factor,
		now:        now,
		logger:     logger,
	}
}

// ComputeOwnerWealth recomputes and persists the owner's estimated net worth.
//
// The base value is the sum of each portfolio property's estimated valuation
// (no cross-property dedup — a shared property counts fully for every
// co-owner). The rule engine's combined multiplier and the non-real-estate
// factor are applied on top; divisor apportions a shared record's value
// across co-owners when the caller knows the owner count (pass 1 otherwise).
//
// An unknown owner id yields (nil, nil), not an error.
func (s *Wealth) ComputeOwnerWealth(ctx context.Context, ownerID string, divisor float64) (*wealth.Estimate, error) {
	if divisor <= 0 {
		divisor = 1
	}

	own, err := s.owners.Get(ctx, ownerID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load owner: %w", err)
	}

	portfolio, err := s.properties.ByOwner(ctx, own.ID())
	if err != nil {
		return nil, fmt.Errorf("load portfolio: %w", err)
	}

	var base float64
	for _, p := range portfolio {
		base += p.EstimatedValue()
	}

	eval := s.engine.Evaluate(portfolio)
	realEstate := base * eval.Multiplier
	netWorth := realEstate * s.factor / divisor
	confidence := wealth.ConfidenceForRuleCount(len(eval.Triggered))

	if err := s.owners.UpdateWealth(ctx, own.ID(), netWorth, confidence, s.now()); err != nil {
		return nil, fmt.Errorf("persist estimate: %w", err)
	}

	s.logger.Debug("owner wealth recomputed",
		"owner_id", own.ID(),
		"portfolio_size", len(portfolio),
		"base_value", base,
		"multiplier", eval.Multiplier,
		"confidence", confidence,
	)

	return &wealth.Estimate{
		OwnerID:           own.ID(),
		EstimatedNetWorth: netWorth,
		Confidence:        confidence,
		BaseValue:         base,
		Multiplier:        eval.Multiplier,
		RulesTriggered:    eval.Triggered,
	}, nil
}
