// Package dto defines the JSON shapes of the v1 read API.
package dto

import "time"

// Coordinates is a property's geolocation.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// OwnerSummary is the owner projection embedded in property responses.
type OwnerSummary struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	EstimatedNetWorth *float64 `json:"estimated_net_worth"`
	ConfidenceLevel   string   `json:"confidence_level,omitempty"`
}

// PropertySummary is one item in the property listing.
type PropertySummary struct {
	ID          string         `json:"id"`
	Address     string         `json:"address"`
	City        string         `json:"city"`
	State       string         `json:"state"`
	ZipCode     string         `json:"zip_code"`
	Value       float64        `json:"value"`
	Size        float64        `json:"size"`
	Coordinates Coordinates    `json:"coordinates"`
	Owners      []OwnerSummary `json:"owners"`
}

// PropertyDetail is the full property projection.
type PropertyDetail struct {
	ID             string  `json:"id"`
	ExternalID     int64   `json:"external_id"`
	SiteAddress    string  `json:"site_address"`
	AddressLine1   string  `json:"address_line1"`
	AddressLine2   string  `json:"address_line2"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	ZipCode        string  `json:"zip_code"`
	PropertyType   string  `json:"property_type"`
	YearBuilt      int     `json:"year_built"`
	Size           float64 `json:"size"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	EstimatedValue float64 `json:"estimated_value"`

	SaleAmount float64 `json:"sale_amount"`
	SaleDate   string  `json:"sale_date"`
	SaleType   string  `json:"sale_type"`

	AVMValue       float64    `json:"avm_value"`
	AVMLow         float64    `json:"avm_low"`
	AVMHigh        float64    `json:"avm_high"`
	AVMScore       float64    `json:"avm_score"`
	AVMLastUpdated *time.Time `json:"avm_last_updated"`

	AssessedTotalValue float64 `json:"assessed_total_value"`
	MarketTotalValue   float64 `json:"market_total_value"`
	TaxAmount          float64 `json:"tax_amount"`
	TaxYear            int     `json:"tax_year"`

	CreatedAt time.Time `json:"created_at"`
}

// PropertyDetailResponse wraps a property detail with its owners.
type PropertyDetailResponse struct {
	Property PropertyDetail `json:"property"`
	Owners   []OwnerDetail  `json:"owners"`
}

// OwnerDetail is the full owner projection.
type OwnerDetail struct {
	ID                string     `json:"id"`
	FullName          string     `json:"full_name"`
	MailingAddress    string     `json:"mailing_address"`
	Type              string     `json:"type"`
	EstimatedNetWorth *float64   `json:"estimated_net_worth"`
	ConfidenceLevel   string     `json:"confidence_level,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	LastUpdated       *time.Time `json:"last_updated"`
}

// OwnerDetailResponse wraps an owner detail with its portfolio.
type OwnerDetailResponse struct {
	Owner      OwnerDetail       `json:"owner"`
	Properties []PropertySummary `json:"properties"`
}
