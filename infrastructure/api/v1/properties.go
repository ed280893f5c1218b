package v1

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wealthmap/wealthmap/application/service"
	"github.com/wealthmap/wealthmap/domain/owner"
	"github.com/wealthmap/wealthmap/domain/property"
	"github.com/wealthmap/wealthmap/infrastructure/api/middleware"
	"github.com/wealthmap/wealthmap/infrastructure/api/v1/dto"
)

// PropertiesRouter handles property API endpoints.
type PropertiesRouter struct {
	properties *service.Properties
	logger     *slog.Logger
}

// NewPropertiesRouter creates a new PropertiesRouter.
func NewPropertiesRouter(properties *service.Properties, logger *slog.Logger) *PropertiesRouter {
	if logger == nil {
		logger = slog.Default()
	}
	return &PropertiesRouter{properties: properties, logger: logger}
}

// Routes returns the chi router for property endpoints.
func (rt *PropertiesRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", rt.List)
	router.Get("/{id}", rt.Get)

	return router
}

// PropertyListResponse is the property listing envelope.
type PropertyListResponse struct {
	Data []dto.PropertySummary `json:"data"`
	Meta Meta                  `json:"meta"`
}

// List handles GET /api/v1/properties.
func (rt *PropertiesRouter) List(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	pagination := ParsePagination(req)

	filter := property.Filter{
		State:  req.URL.Query().Get("state"),
		Limit:  pagination.Limit(),
		Offset: pagination.Offset(),
	}

	listings, err := rt.properties.Find(ctx, filter)
	if err != nil {
		middleware.WriteError(w, req, err, rt.logger)
		return
	}

	total, err := rt.properties.Count(ctx, property.Filter{State: filter.State})
	if err != nil {
		middleware.WriteError(w, req, err, rt.logger)
		return
	}

	data := make([]dto.PropertySummary, 0, len(listings))
	for _, listing := range listings {
		data = append(data, propertySummaryDTO(listing.Property, listing.Owners))
	}

	middleware.WriteJSON(w, http.StatusOK, PropertyListResponse{
		Data: data,
		Meta: NewMeta(pagination, total),
	})
}

// Get handles GET /api/v1/properties/{id}.
func (rt *PropertiesRouter) Get(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	id := chi.URLParam(req, "id")

	listing, err := rt.properties.Get(ctx, id)
	if err != nil {
		middleware.WriteError(w, req, err, rt.logger)
		return
	}

	owners := make([]dto.OwnerDetail, 0, len(listing.Owners))
	for _, o := range listing.Owners {
		owners = append(owners, ownerDetailDTO(o))
	}

	middleware.WriteJSON(w, http.StatusOK, dto.PropertyDetailResponse{
		Property: propertyDetailDTO(listing.Property),
		Owners:   owners,
	})
}

func propertySummaryDTO(p property.Property, owners []owner.Owner) dto.PropertySummary {
	addr := p.Address()
	coords := p.Coordinates()

	ownerDTOs := make([]dto.OwnerSummary, 0, len(owners))
	for _, o := range owners {
		ownerDTOs = append(ownerDTOs, dto.OwnerSummary{
			ID:                o.ID(),
			Name:              o.FullName(),
			EstimatedNetWorth: o.EstimatedNetWorth(),
			ConfidenceLevel:   string(o.Confidence()),
		})
	}

	return dto.PropertySummary{
		ID:          p.ID(),
		Address:     addr.SiteAddress,
		City:        addr.City,
		State:       addr.State,
		ZipCode:     addr.Zip,
		Value:       p.EstimatedValue(),
		Size:        p.Size(),
		Coordinates: dto.Coordinates{Lat: coords.Latitude, Lng: coords.Longitude},
		Owners:      ownerDTOs,
	}
}

func propertyDetailDTO(p property.Property) dto.PropertyDetail {
	addr := p.Address()
	coords := p.Coordinates()
	sale := p.Sale()
	avm := p.AVM()
	assessment := p.Assessment()

	return dto.PropertyDetail{
		ID:             p.ID(),
		ExternalID:     p.ExternalID(),
		SiteAddress:    addr.SiteAddress,
		AddressLine1:   addr.Line1,
		AddressLine2:   addr.Line2,
		City:           addr.City,
		State:          addr.State,
		ZipCode:        addr.Zip,
		PropertyType:   p.Type(),
		YearBuilt:      p.YearBuilt(),
		Size:           p.Size(),
		Latitude:       coords.Latitude,
		Longitude:      coords.Longitude,
		EstimatedValue: p.EstimatedValue(),

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
