// Package wealth provides the portfolio scoring rules and wealth estimation
// types.
//
// A rule is a pure predicate-plus-weight pair evaluated against an owner's
// full current property portfolio. Rules are independent and their weights
// multiply, so evaluation order never affects the result.
package wealth

import (
	"github.com/wealthmap/wealthmap/domain/owner"
	"github.com/wealthmap/wealthmap/domain/property"
)

// Rule scores one aspect of a property portfolio. Applies must be a pure
// function of the portfolio snapshot.
type Rule interface {
	// Name identifies the rule in estimation results.
	Name() string

	// Applies reports whether the portfolio triggers the rule.
	Applies(portfolio []property.Property) bool

	// Weight is the multiplicative contribution when the rule triggers.
	Weight() float64
}

// Evaluation is the outcome of running a rule set over a portfolio.
type Evaluation struct {
	// Multiplier is the product of the weights of all triggered rules,
	// starting from 1.0.
	Multiplier float64

	// Triggered lists the names of the rules that applied.
	Triggered []string
}

// Estimate is the observable result of one wealth recomputation.
type Estimate struct {
	OwnerID           string
	EstimatedNetWorth float64
	Confidence        owner.ConfidenceTier
	BaseValue         float64
	Multiplier        float64
	RulesTriggered    []string
}

// ConfidenceForRuleCount derives the confidence tier from how many rules
// triggered: at least four is high, at least two is medium, otherwise low.
func ConfidenceForRuleCount(n int) owner.ConfidenceTier {
	switch {
	case n >= 4:
		return owner.ConfidenceHigh
	case n >= 2:
		return owner.ConfidenceMedium
	default:
		return owner.ConfidenceLow
	}
}
