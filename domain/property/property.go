// Package property provides the property domain model.
package property

import (
	"time"

	"github.com/google/uuid"
)

// Address holds a property's structured address fields.
type Address struct {
	SiteAddress string
	Line1       string
	Line2       string
	City        string
	State       string
	Zip         string
}

// Coordinates holds a property's geolocation.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Sale holds the most recent sale facts for a property. Date is the
// provider's calendar string ("2006-01-02"); it is kept verbatim and only
// parsed at rule-evaluation time.
type Sale struct {
	Amount float64
	Date   string
	Type   string
}

// Valuation holds the provider's automated valuation model (AVM) facts.
// LastUpdated is nil when the provider's date string failed to parse.
type Valuation struct {
	Value       float64
	Low         float64
	High        float64
	Score       float64
	LastUpdated *time.Time
}

// Assessment holds tax-assessment facts.
type Assessment struct {
	AssessedTotal float64
	MarketTotal   float64
	TaxAmount     float64
	TaxYear       int
}

// Property represents a physical property identified by the data provider's
// immutable external record id. Re-ingestion overwrites every mutable field
// with the latest fetched values — last-write-wins, no merge.
type Property struct {
	id           string
	externalID   int64
	address      Address
	coordinates  Coordinates
	propertyType string
	yearBuilt    int
	size         float64
	sale         Sale
	avm          Valuation
	assessment   Assessment
	createdAt    time.Time
}

// NewProperty creates a Property with a freshly generated id for the given
// external record id, populated from the record.
func NewProperty(externalID int64, rec Record) Property {
	p := Property{
		id:         uuid.NewString(),
		externalID: externalID,
	}
	return p.WithRecord(rec)
}

// ReconstructProperty creates a Property from persisted state (used by stores).
func ReconstructProperty(
	id string,
	externalID int64,
	address Address,
	coordinates Coordinates,
	propertyType string,
	yearBuilt int,
	size float64,
	sale Sale,
	avm Valuation,
	assessment Assessment,
	createdAt time.Time,
) Property {
	return Property{
		id:           id,
		externalID:   externalID,
		address:      address,
		coordinates:  coordinates,
		propertyType: propertyType,
		yearBuilt:    yearBuilt,
		size:         size,
		sale:         sale,
		avm:          avm,
		assessment:   assessment,
		createdAt:    createdAt,
	}
}

// WithRecord returns a copy of the property with every mutable field
// overwritten from the record. The id and external record id are never
// touched.
func (p Property) WithRecord(rec Record) Property {
	p.address = Address{
		SiteAddress: rec.SiteAddress,
		Line1:       rec.AddressLine1,
		Line2:       rec.AddressLine2,
		City:        rec.City,
		State:       rec.State,
		Zip:         rec.ZipCode,
	}
	p.coordinates = Coordinates{Latitude: rec.Latitude, Longitude: rec.Longitude}
	p.propertyType = rec.PropertyType
	p.yearBuilt = rec.YearBuilt
	p.size = rec.Size
	p.sale = Sale{Amount: rec.SaleAmount, Date: rec.SaleDate, Type: rec.SaleType}
	p.avm = Valuation{
		Value:       rec.AVMValue,
		Low:         rec.AVMLow,
		High:        rec.AVMHigh,
		Score:       rec.AVMScore,
		LastUpdated: parseCalendarDate(rec.AVMLastUpdated),
	}
	p.assessment = Assessment{
		AssessedTotal: rec.AssessedTotalValue,
		MarketTotal:   rec.MarketTotalValue,
		TaxAmount:     rec.TaxAmount,
		TaxYear:       rec.TaxYear,
	}
	return p
}

// ID returns the property id.
func (p Property) ID() string { return p.id }

// ExternalID returns the data provider's immutable record id.
func (p Property) ExternalID() int64 { return p.externalID }

// Address returns the structured address fields.
func (p Property) Address() Address { return p.address }

// Coordinates returns the geolocation.
func (p Property) Coordinates() Coordinates { return p.coordinates }

// Type returns the property-type classification.
func (p Property) Type() string { return p.propertyType }

// YearBuilt returns the construction year, or 0 when unknown.
func (p Property) YearBuilt() int { return p.yearBuilt }

// Size returns the living/building area.
func (p Property) Size() float64 { return p.size }

// Sale returns the most recent sale facts.
func (p Property) Sale() Sale { return p.sale }

// AVM returns the automated valuation facts.
func (p Property) AVM() Valuation { return p.avm }

// Assessment returns the tax-assessment facts.
func (p Property) Assessment() Assessment { return p.assessment }

// CreatedAt returns when the property row was created.
func (p Property) CreatedAt() time.Time { return p.createdAt }

// EstimatedValue returns the property's estimated valuation: the maximum of
// its four independently-sourced monetary signals. Any one source may be
// stale or missing (zero) while another is authoritative, so the signals are
// never averaged or summed.
func (p Property) EstimatedValue() float64 {
	v := p.avm.Value
	if p.assessment.MarketTotal > v {
		v = p.assessment.MarketTotal
	}
	if p.sale.Amount > v {
		v = p.sale.Amount
	}
	if p.assessment.AssessedTotal > v {
		v = p.assessment.AssessedTotal
	}
	return v
}

// CalendarDateLayout is the provider's calendar string format.
const CalendarDateLayout = "2006-01-02"

// parseCalendarDate parses a provider date string. Malformed dates yield nil
// rather than an error; the field is simply left unset.
func parseCalendarDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(CalendarDateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
