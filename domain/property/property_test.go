package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimatedValue(t *testing.T) {
	tests := []struct {
		name     string
		rec      Record
		expected float64
	}{
		{
			name:     "no signals",
			rec:      Record{},
			expected: 0,
		},
		{
			name:     "avm wins",
			rec:      Record{AVMValue: 500_000, MarketTotalValue: 400_000, SaleAmount: 300_000, AssessedTotalValue: 200_000},
			expected: 500_000,
		},
		{
			name:     "market total wins",
			rec:      Record{AVMValue: 100_000, MarketTotalValue: 750_000, SaleAmount: 300_000},
			expected: 750_000,
		},
		{
			name:     "sale amount wins",
			rec:      Record{SaleAmount: 1_200_000, AssessedTotalValue: 900_000},
			expected: 1_200_000,
		},
		{
			name:     "assessed total is the only signal",
			rec:      Record{AssessedTotalValue: 200_000},
			expected: 200_000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProperty(1001, tt.rec)
			assert.InDelta(t, tt.expected, p.EstimatedValue(), 1e-9)
		})
	}
}

func TestNewProperty(t *testing.T) {
	rec := Record{
		SiteAddress:  "1 Main St, Springfield, CA 90210",
		City:         "Springfield",
		State:        "CA",
		ZipCode:      "90210",
		PropertyType: "SFR",
		YearBuilt:    1987,
		Size:         2400,
		SaleAmount:   450_000,
		SaleDate:     "2024-03-01",
		AVMValue:     480_000,
		AVMScore:     92,
	}

	p := NewProperty(42, rec)

	require.NotEmpty(t, p.ID())
	assert.Equal(t, int64(42), p.ExternalID())
	assert.Equal(t, "CA", p.Address().State)
	assert.Equal(t, "90210", p.Address().Zip)
	assert.Equal(t, "SFR", p.Type())
	assert.Equal(t, 1987, p.YearBuilt())
	assert.InDelta(t, 450_000, p.Sale().Amount, 1e-9)
	assert.InDelta(t, 92, p.AVM().Score, 1e-9)
}

func TestWithRecordOverwritesMutableFields(t *testing.T) {
	p := NewProperty(7, Record{City: "Old Town", AVMValue: 100_000, YearBuilt: 1950})
	id := p.ID()

	updated := p.WithRecord(Record{City: "New Town", AVMValue: 250_000})

	assert.Equal(t, id, updated.ID())
	assert.Equal(t, int64(7), updated.ExternalID())
	assert.Equal(t, "New Town", updated.Address().City)
	assert.InDelta(t, 250_000, updated.AVM().Value, 1e-9)
	// Zero-valued record fields clear stale data rather than merging.
	assert.Equal(t, 0, updated.YearBuilt())
}

func TestAVMLastUpdatedParsing(t *testing.T) {
	valid := NewProperty(1, Record{AVMLastUpdated: "2025-06-15"})
	require.NotNil(t, valid.AVM().LastUpdated)
	assert.Equal(t, "2025-06-15", valid.AVM().LastUpdated.Format(CalendarDateLayout))

	for _, raw := range []string{"", "yesterday", "06/15/2025"} {
		p := NewProperty(1, Record{AVMLastUpdated: raw})
		assert.Nil(t, p.AVM().LastUpdated, "raw=%q", raw)
	}
}
