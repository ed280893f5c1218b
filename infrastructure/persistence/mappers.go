package persistence

import (
	"time"

	"github.com/wealthmap/wealthmap/domain/owner"
	"github.com/wealthmap/wealthmap/domain/property"
)

// OwnerMapper maps between domain Owner and persistence OwnerModel.
type OwnerMapper struct{}

// ToDomain converts an OwnerModel to a domain Owner.
func (m OwnerMapper) ToDomain(e OwnerModel) owner.Owner {
	var confidence owner.ConfidenceTier
	if e.ConfidenceLevel != nil {
		confidence = owner.ConfidenceTier(*e.ConfidenceLevel)
	}

	var lastUpdated time.Time
	if e.LastUpdated != nil {
		lastUpdated = *e.LastUpdated
	}

	return owner.ReconstructOwner(
		e.ID,
		e.FullName,
		e.MailingAddress,
		e.Type,
		e.EstimatedNetWorth,
		confidence,
		e.CreatedAt,
		lastUpdated,
	)
}

// ToModel converts a domain Owner to an OwnerModel.
func (m OwnerMapper) ToModel(o owner.Owner) OwnerModel {
	var confidence *string
	if c := o.Confidence(); c != "" {
		s := string(c)
		confidence = &s
	}

	var lastUpdated *time.Time
	if !o.LastUpdated().IsZero() {
		t := o.LastUpdated()
		lastUpdated = &t
	}

	return OwnerModel{
		ID:                o.ID(),
		FullName:          o.FullName(),
		MailingAddress:    o.MailingAddress(),
		Type:              o.Type(),
		EstimatedNetWorth: o.EstimatedNetWorth(),
		ConfidenceLevel:   confidence,
		CreatedAt:         o.CreatedAt(),
		LastUpdated:       lastUpdated,
	}
}

// PropertyMapper maps between domain Property and persistence PropertyModel.
type PropertyMapper struct{}

// ToDomain converts a PropertyModel to a domain Property.
func (m PropertyMapper) ToDomain(e PropertyModel) property.Property {
	return property.ReconstructProperty(
		e.ID,
		e.ExternalID,
		property.Address{
			SiteAddress: e.SiteAddress,
			Line1:       e.AddressLine1,
			Line2:       e.AddressLine2,
			City:        e.City,
			State:       e.State,
			Zip:         e.ZipCode,
		},
		property.Coordinates{Latitude: e.Latitude, Longitude: e.Longitude},
		e.PropertyType,
		e.YearBuilt,
		e.Size,
		property.Sale{Amount: e.SaleAmount, Date: e.SaleDate, Type: e.SaleType},
		property.Valuation{
			Value:       e.AVMValue,
			Low:         e.AVMLow,
			High:        e.AVMHigh,
			Score:       e.AVMScore,
			LastUpdated: e.AVMLastUpdated,
		},
		property.Assessment{
			AssessedTotal: e.AssessedTotalValue,
			MarketTotal:   e.MarketTotalValue,
			TaxAmount:     e.TaxAmount,
			TaxYear:       e.TaxYear,
		},
		e.CreatedAt,
	)
}

// ToModel converts a domain Property to a PropertyModel.
func (m PropertyMapper) ToModel(p property.Property) PropertyModel {
	addr := p.Address()
	coords := p.Coordinates()
	sale := p.Sale()
	avm := p.AVM()
	assessment := p.Assessment()

	return PropertyModel{
		ID:         p.ID(),
		ExternalID: p.ExternalID(),

		SiteAddress:  addr.SiteAddress,
		AddressLine1: addr.Line1,
		AddressLine2: addr.Line2,
		City:         addr.City,
		State:        addr.State,
		ZipCode:      addr.Zip,
		Latitude:     coords.Latitude,
		Longitude:    coords.Longitude,

		PropertyType: p.Type(),
		YearBuilt:    p.YearBuilt(),
		Size:         p.Size(),

		SaleAmount: sale.Amount,
		SaleDate:   sale.Date,
		SaleType:   sale.Type,

		AVMValue:       avm.Value,
		AVMLow:         avm.Low,
		AVMHigh:        avm.High,
		AVMScore:       avm.Score,
		AVMLastUpdated: avm.LastUpdated,

		AssessedTotalValue: assessment.AssessedTotal,
		MarketTotalValue:   assessment.MarketTotal,
		TaxAmount:          assessment.TaxAmount,
		TaxYear:            assessment.TaxYear,

		CreatedAt: p.CreatedAt(),
	}
}
