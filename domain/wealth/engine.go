package wealth

import (
	"time"

	"github.com/wealthmap/wealthmap/domain/property"
)

// EngineOption configures an Engine.
type EngineOption func(*engineConfig)

type engineConfig struct {
	now         func() time.Time
	luxuryZips  []string
	luxuryState []string
}

// WithClock sets the clock used by time-sensitive rules. Tests inject a
// fixed clock to pin RecentTransactionRule behavior.
func WithClock(now func() time.Time) EngineOption {
	return func(c *engineConfig) { c.now = now }
}

// WithLuxuryZips overrides the luxury zip code allow-list.
func WithLuxuryZips(zips []string) EngineOption {
	return func(c *engineConfig) { c.luxuryZips = zips }
}

// WithLuxuryStates overrides the luxury state allow-list.
func WithLuxuryStates(states []string) EngineOption {
	return func(c *engineConfig) { c.luxuryState = states }
}

// Engine evaluates a fixed rule set against a portfolio snapshot. The rule
// list is fixed at construction; evaluation iterates it once and multiplies
// the weights of the rules that apply.
type Engine struct {
	rules []Rule
}

// NewEngine creates an Engine with the full default rule set.
func NewEngine(opts ...EngineOption) *Engine {
	cfg := engineConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{rules: []Rule{
		MinPropertiesRule{},
		HighAverageAVMRule{},
		MultiStateOwnershipRule{},
		HasCommercialPropertyRule{},
		NewRecentTransactionRule(cfg.now),
		HighPropertyTaxRule{},
		NewLuxuryZipRule(cfg.luxuryZips),
		LargeHomeRule{},
		OlderLuxuryHomeRule{},
		HighConfidenceAVMRule{},
		NewLuxuryStateRule(cfg.luxuryState),
	}}
}

// NewEngineWithRules creates an Engine over an explicit rule list.
func NewEngineWithRules(rules []Rule) *Engine {
	return &Engine{rules: rules}
}

// Rules returns the engine's rule list.
func (e *Engine) Rules() []Rule {
	return e.rules
}

// Evaluate runs every rule against the portfolio and returns the combined
// multiplier and the names of the triggered rules. An empty portfolio
// triggers nothing and yields a multiplier of exactly 1.0.
func (e *Engine) Evaluate(portfolio []property.Property) Evaluation {
	eval := Evaluation{Multiplier: 1.0}
	for _, rule := range e.rules {
		if rule.Applies(portfolio) {
			eval.Multiplier *= rule.Weight()
			eval.Triggered = append(eval.Triggered, rule.Name())
		}
	}
	return eval
}
