package property

// Record is the provider's financial/physical detail for one property as
// consumed by the upsert store. Field names mirror the persisted columns;
// zero values mean the provider omitted the fact.
type Record struct {
	ExternalID int64

	SiteAddress  string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	ZipCode      string
	Latitude     float64
	Longitude    float64

	PropertyType string
	YearBuilt    int
	Size         float64

	SaleAmount float64
	SaleDate   string
	SaleType   string

	AVMValue       float64
	AVMLow         float64
	AVMHigh        float64
	AVMScore       float64
	AVMLastUpdated string

	AssessedTotalValue float64
	MarketTotalValue   float64
	TaxAmount          float64
	TaxYear            int
}

// Summary identifies one property in a provider area listing.
type Summary struct {
	ExternalID int64
}
