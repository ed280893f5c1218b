package wealth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthmap/wealthmap/domain/owner"
	"github.com/wealthmap/wealthmap/domain/property"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestEvaluateEmptyPortfolio(t *testing.T) {
	engine := NewEngine()

	eval := engine.Evaluate(nil)

	assert.InDelta(t, 1.0, eval.Multiplier, 1e-9)
	assert.Empty(t, eval.Triggered)
}

func TestEvaluateMultipliesTriggeredWeights(t *testing.T) {
	engine := NewEngine(
		WithClock(fixedClock(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))),
		// Pin the allow-lists so only the intended rules fire.
		WithLuxuryZips([]string{"99999"}),
		WithLuxuryStates([]string{"ZZ"}),
	)

	// Two expensive properties, one of them commercial: HighAverageAVMRule,
	// HasCommercialPropertyRule, and nothing else.
	p := portfolio(
		property.Record{State: "OH", PropertyType: "SFR", AVMValue: 2_000_000},
		property.Record{State: "OH", PropertyType: "COMMERCIAL", AVMValue: 1_500_000},
	)

	eval := engine.Evaluate(p)

	assert.ElementsMatch(t, []string{"HighAverageAVMRule", "HasCommercialPropertyRule"}, eval.Triggered)
	assert.InDelta(t, 1.20*1.30, eval.Multiplier, 1e-9)
}

func TestEvaluateDefaultRuleSetScenario(t *testing.T) {
	engine := NewEngine(WithClock(fixedClock(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))))

	p := portfolio(
		property.Record{
			State:        "CA",
			ZipCode:      "90210",
			PropertyType: "SFR",
			AVMValue:     3_000_000,
			AVMScore:     95,
			Size:         5_200,
			TaxAmount:    32_000,
			SaleDate:     "2025-03-10",
			YearBuilt:    1938,
		},
		property.Record{State: "NY", PropertyType: "CONDO", AVMValue: 1_800_000},
		property.Record{State: "CA", PropertyType: "COMMERCIAL"},
	)

	eval := engine.Evaluate(p)

	// Every default rule fires on this portfolio.
	require.Len(t, engine.Rules(), 11)
	assert.Len(t, eval.Triggered, 11)
	expected := 1.15 * 1.20 * 1.25 * 1.30 * 1.10 * 1.25 * 1.35 * 1.20 * 1.15 * 1.10 * 1.15
	assert.InDelta(t, expected, eval.Multiplier, 1e-9)
}

func TestEvaluateLuxuryPairPortfolio(t *testing.T) {
	engine := NewEngine(WithClock(fixedClock(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))))

	// Two high-value Beverly Hills properties, one commercial. CA is on the
	// default luxury-state list, so four rules fire and the confidence tier
	// for the pair is high rather than medium.
	p := portfolio(
		property.Record{State: "CA", ZipCode: "90210", PropertyType: "SFR", AVMValue: 2_000_000},
		property.Record{State: "CA", ZipCode: "90210", PropertyType: "COMMERCIAL", AVMValue: 2_200_000},
	)

	eval := engine.Evaluate(p)

	assert.ElementsMatch(t, []string{
		"HighAverageAVMRule",
		"HasCommercialPropertyRule",
		"LuxuryZipRule",
		"LuxuryStateRule",
	}, eval.Triggered)
	assert.InDelta(t, 1.20*1.30*1.35*1.15, eval.Multiplier, 1e-9)
	assert.Equal(t, owner.ConfidenceHigh, ConfidenceForRuleCount(len(eval.Triggered)))
}

func TestEvaluateOrderIndependent(t *testing.T) {
	recs := []property.Record{
		{State: "CA", AVMValue: 2_000_000},
		{State: "NY", PropertyType: "COMMERCIAL"},
	}

	forward := NewEngine().Evaluate(portfolio(recs[0], recs[1]))
	reversed := NewEngine().Evaluate(portfolio(recs[1], recs[0]))

	assert.InDelta(t, forward.Multiplier, reversed.Multiplier, 1e-9)
	assert.ElementsMatch(t, forward.Triggered, reversed.Triggered)
}

func TestNewEngineWithRules(t *testing.T) {
	engine := NewEngineWithRules([]Rule{LargeHomeRule{}})

	eval := engine.Evaluate(portfolio(property.Record{Size: 6_000}))

	assert.Equal(t, []string{"LargeHomeRule"}, eval.Triggered)
	assert.InDelta(t, 1.20, eval.Multiplier, 1e-9)
}

func TestConfidenceForRuleCount(t *testing.T) {
	tests := []struct {
		count    int
		expected owner.ConfidenceTier
	}{
		{count: 0, expected: owner.ConfidenceLow},
		{count: 1, expected: owner.ConfidenceLow},
		{count: 2, expected: owner.ConfidenceMedium},
		{count: 3, expected: owner.ConfidenceMedium},
		{count: 4, expected: owner.ConfidenceHigh},
		{count: 11, expected: owner.ConfidenceHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ConfidenceForRuleCount(tt.count), "count=%d", tt.count)
	}
}
