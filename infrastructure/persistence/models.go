package persistence

import "time"

// OwnerModel represents an owner in the database. The normalized
// (full_name, mailing_address) pair carries a composite unique index — it is
// the owner's natural key.
type OwnerModel struct {
	ID                string     `gorm:"column:id;primaryKey;size:36"`
	FullName          string     `gorm:"column:full_name;not null;uniqueIndex:uq_owner;size:512"`
	MailingAddress    string     `gorm:"column:mailing_address;not null;uniqueIndex:uq_owner;size:1024"`
	Type              string     `gorm:"column:type;size:64;default:individual"`
	EstimatedNetWorth *float64   `gorm:"column:estimated_net_worth"`
	ConfidenceLevel   *string    `gorm:"column:confidence_level;size:16"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	LastUpdated       *time.Time `gorm:"column:last_updated"`
}

// TableName returns the table name.
func (OwnerModel) TableName() string {
	return "owners"
}

// PropertyModel represents a property in the database, keyed internally by a
// generated id and externally by the provider's immutable record id.
type PropertyModel struct {
	ID         string `gorm:"column:id;primaryKey;size:36"`
	ExternalID int64  `gorm:"column:external_id;uniqueIndex;not null"`

	SiteAddress  string  `gorm:"column:site_address;size:1024"`
	AddressLine1 string  `gorm:"column:address_line1;size:512"`
	AddressLine2 string  `gorm:"column:address_line2;size:512"`
	City         string  `gorm:"column:city;size:255"`
	State        string  `gorm:"column:state;index;size:64"`
	ZipCode      string  `gorm:"column:zip_code;index;size:16"`
	Latitude     float64 `gorm:"column:latitude"`
	Longitude    float64 `gorm:"column:longitude"`

	PropertyType string  `gorm:"column:property_type;index;size:255"`
	YearBuilt    int     `gorm:"column:year_built"`
	Size         float64 `gorm:"column:size"`

	SaleAmount float64 `gorm:"column:sale_amount"`
	SaleDate   string  `gorm:"column:sale_date;size:32"`
	SaleType   string  `gorm:"column:sale_type;size:64"`

	AVMValue       float64    `gorm:"column:avm_value"`
	AVMLow         float64    `gorm:"column:avm_low"`
	AVMHigh        float64    `gorm:"column:avm_high"`
	AVMScore       float64    `gorm:"column:avm_score"`
	AVMLastUpdated *time.Time `gorm:"column:avm_last_updated"`

	AssessedTotalValue float64 `gorm:"column:assessed_total_value"`
	MarketTotalValue   float64 `gorm:"column:market_total_value"`
	TaxAmount          float64 `gorm:"column:tax_amount"`
	TaxYear            int     `gorm:"column:tax_year"`

	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName returns the table name.
func (PropertyModel) TableName() string {
	return "properties"
}

// OwnershipLinkModel associates owners with properties. The composite
// primary key makes link insertion naturally idempotent under the
// check-then-insert discipline.
type OwnershipLinkModel struct {
	OwnerID    string `gorm:"column:owner_id;primaryKey;size:36"`
	PropertyID string `gorm:"column:property_id;primaryKey;size:36"`
}

// TableName returns the table name.
func (OwnershipLinkModel) TableName() string {
	return "ownership_links"
}
