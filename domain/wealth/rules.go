package wealth

import (
	"strings"
	"time"

	"github.com/wealthmap/wealthmap/domain/property"
)

// Rule thresholds.
const (
	minPortfolioSize    = 3
	highAverageAVM      = 1_000_000
	recentSaleWindow    = 365 * 24 * time.Hour
	highPropertyTax     = 15_000
	largeHomeSize       = 4_000
	olderLuxuryYear     = 1950
	highConfidenceScore = 90
)

// DefaultLuxuryZips is the fixed luxury zip code allow-list.
var DefaultLuxuryZips = []string{
	"90210", // Beverly Hills
	"94027", // Atherton
	"33109", // Fisher Island
	"81611", // Aspen
	"10007", // Tribeca
	"10013",
	"06830", // Greenwich
	"02199", // Back Bay
	"98039", // Medina
	"89413", // Glenbrook
}

// DefaultLuxuryStates is the fixed luxury state allow-list.
var DefaultLuxuryStates = []string{"CA", "NY", "CT", "FL", "MA", "WA"}

// MinPropertiesRule triggers when the portfolio holds at least three
// properties.
type MinPropertiesRule struct{}

// Name identifies the rule.
func (MinPropertiesRule) Name() string { return "MinPropertiesRule" }

// Applies reports whether the portfolio triggers the rule.
func (MinPropertiesRule) Applies(portfolio []property.Property) bool {
	return len(portfolio) >= minPortfolioSize
}

// Weight is the rule's multiplier contribution.
func (MinPropertiesRule) Weight() float64 { return 1.15 }

// HighAverageAVMRule triggers when the mean of the non-zero AVM values
// exceeds one million.
type HighAverageAVMRule struct{}

// Name identifies the rule.
func (HighAverageAVMRule) Name() string { return "HighAverageAVMRule" }

// Applies reports whether the portfolio triggers the rule.
func (HighAverageAVMRule) Applies(portfolio []property.Property) bool {
	var sum float64
	var n int
	for _, p := range portfolio {
		if v := p.AVM().Value; v > 0 {
			sum += v
			n++
		}
	}
	return n > 0 && sum/float64(n) > highAverageAVM
}

// Weight is the rule's multiplier contribution.
func (HighAverageAVMRule) Weight() float64 { return 1.20 }

// MultiStateOwnershipRule triggers when the portfolio spans more than one
// state.
type MultiStateOwnershipRule struct{}

// Name identifies the rule.
func (MultiStateOwnershipRule) Name() string { return "MultiStateOwnershipRule" }

// Applies reports whether the portfolio triggers the rule.
func (MultiStateOwnershipRule) Applies(portfolio []property.Property) bool {
	states := map[string]struct{}{}
	for _, p := range portfolio {
		if s := p.Address().State; s != "" {
			states[s] = struct{}{}
		}
	}
	return len(states) > 1
}

// Weight is the rule's multiplier contribution.
func (MultiStateOwnershipRule) Weight() float64 { return 1.25 }

// HasCommercialPropertyRule triggers when any property type contains
// "COMMERCIAL" (case-insensitive).
type HasCommercialPropertyRule struct{}

// Name identifies the rule.
func (HasCommercialPropertyRule) Name() string { return "HasCommercialPropertyRule" }

// Applies reports whether the portfolio triggers the rule.
func (HasCommercialPropertyRule) Applies(portfolio []property.Property) bool {
	for _, p := range portfolio {
		if strings.Contains(strings.ToUpper(p.Type()), "COMMERCIAL") {
			return true
		}
	}
	return false
}

// Weight is the rule's multiplier contribution.
func (HasCommercialPropertyRule) Weight() float64 { return 1.30 }

// RecentTransactionRule triggers when any parseable sale date falls within
// 365 days of evaluation time. Unparseable dates are skipped.
type RecentTransactionRule struct {
	now func() time.Time
}

// NewRecentTransactionRule creates a RecentTransactionRule with an injectable
// clock. A nil clock uses time.Now.
func NewRecentTransactionRule(now func() time.Time) RecentTransactionRule {
	if now == nil {
		now = time.Now
	}
	return RecentTransactionRule{now: now}
}

// Name identifies the rule.
func (RecentTransactionRule) Name() string { return "RecentTransactionRule" }

// Applies reports whether the portfolio triggers the rule.
func (r RecentTransactionRule) Applies(portfolio []property.Property) bool {
	today := r.now()
	for _, p := range portfolio {
		date := p.Sale().Date
		if date == "" {
			continue
		}
		sold, err := time.Parse(property.CalendarDateLayout, date)
		if err != nil {
			continue
		}
		if today.Sub(sold) < recentSaleWindow {
			return true
		}
	}
	return false
}

// Weight is the rule's multiplier contribution.
func (RecentTransactionRule) Weight() float64 { return 1.10 }

// HighPropertyTaxRule triggers when any tax amount exceeds 15,000.
type HighPropertyTaxRule struct{}

// Name identifies the rule.
func (HighPropertyTaxRule) Name() string { return "HighPropertyTaxRule" }

// Applies reports whether the portfolio triggers the rule.
func (HighPropertyTaxRule) Applies(portfolio []property.Property) bool {
	for _, p := range portfolio {
		if p.Assessment().TaxAmount > highPropertyTax {
			return true
		}
	}
	return false
}

// Weight is the rule's multiplier contribution.
func (HighPropertyTaxRule) Weight() float64 { return 1.25 }

// LuxuryZipRule triggers when any zip code is in the luxury allow-list.
type LuxuryZipRule struct {
	zips map[string]struct{}
}

// NewLuxuryZipRule creates a LuxuryZipRule over the given allow-list. An
// empty list uses DefaultLuxuryZips.
func NewLuxuryZipRule(zips []string) LuxuryZipRule {
	if len(zips) == 0 {
		zips = DefaultLuxuryZips
	}
	set := make(map[string]struct{}, len(zips))
	for _, z := range zips {
		set[z] = struct{}{}
	}
	return LuxuryZipRule{zips: set}
}

// Name identifies the rule.
func (LuxuryZipRule) Name() string { return "LuxuryZipRule" }

// Applies reports whether the portfolio triggers the rule.
func (r LuxuryZipRule) Applies(portfolio []property.Property) bool {
	for _, p := range portfolio {
		if _, ok := r.zips[p.Address().Zip]; ok {
			return true
		}
	}
	return false
}

// Weight is the rule's multiplier contribution.
func (LuxuryZipRule) Weight() float64 { return 1.35 }

// LargeHomeRule triggers when any property's size exceeds 4,000.
type LargeHomeRule struct{}

// Name identifies the rule.
func (LargeHomeRule) Name() string { return "LargeHomeRule" }

// Applies reports whether the portfolio triggers the rule.
func (LargeHomeRule) Applies(portfolio []property.Property) bool {
	for _, p := range portfolio {
		if p.Size() > largeHomeSize {
			return true
		}
	}
	return false
}

// Weight is the rule's multiplier contribution.
func (LargeHomeRule) Weight() float64 { return 1.20 }

// OlderLuxuryHomeRule triggers when any property was built before 1950.
type OlderLuxuryHomeRule struct{}

// Name identifies the rule.
func (OlderLuxuryHomeRule) Name() string { return "OlderLuxuryHomeRule" }

// Applies reports whether the portfolio triggers the rule.
func (OlderLuxuryHomeRule) Applies(portfolio []property.Property) bool {
	for _, p := range portfolio {
		if y := p.YearBuilt(); y > 0 && y < olderLuxuryYear {
			return true
		}
	}
	return false
}

// Weight is the rule's multiplier contribution.
func (OlderLuxuryHomeRule) Weight() float64 { return 1.15 }

// HighConfidenceAVMRule triggers when any AVM confidence score is at least 90.
type HighConfidenceAVMRule struct{}

// Name identifies the rule.
func (HighConfidenceAVMRule) Name() string { return "HighConfidenceAVMRule" }

// Applies reports whether the portfolio triggers the rule.
func (HighConfidenceAVMRule) Applies(portfolio []property.Property) bool {
	for _, p := range portfolio {
		if p.AVM().Score >= highConfidenceScore {
			return true
		}
	}
	return false
}

// Weight is the rule's multiplier contribution.
func (HighConfidenceAVMRule) Weight() float64 { return 1.10 }

// LuxuryStateRule triggers when any state is in the luxury allow-list.
type LuxuryStateRule struct {
	states map[string]struct{}
}

// NewLuxuryStateRule creates a LuxuryStateRule over the given allow-list. An
// empty list uses DefaultLuxuryStates.
func NewLuxuryStateRule(states []string) LuxuryStateRule {
	if len(states) == 0 {
		states = DefaultLuxuryStates
	}
	set := make(map[string]struct{}, len(states))
	for _, s := range states {
		set[strings.ToUpper(s)] = struct{}{}
	}
	return LuxuryStateRule{states: set}
}

// Name identifies the rule.
func (LuxuryStateRule) Name() string { return "LuxuryStateRule" }

// Applies reports whether the portfolio triggers the rule.
func (r LuxuryStateRule) Applies(portfolio []property.Property) bool {
	for _, p := range portfolio {
		if _, ok := r.states[strings.ToUpper(p.Address().State)]; ok {
			return true
		}
	}
	return false
}

// Weight is the rule's multiplier contribution.
func (LuxuryStateRule) Weight() float64 { return 1.15 }
