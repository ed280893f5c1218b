package v1

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/wealthmap/wealthmap/application/service"
	"github.com/wealthmap/wealthmap/domain/owner"
	"github.com/wealthmap/wealthmap/infrastructure/api/middleware"
	"github.com/wealthmap/wealthmap/infrastructure/api/v1/dto"
)

// OwnersRouter handles owner API endpoints.
type OwnersRouter struct {
	owners *service.Owners
	logger *slog.Logger
}

// NewOwnersRouter creates a new OwnersRouter.
func NewOwnersRouter(owners *service.Owners, logger *slog.Logger) *OwnersRouter {
	if logger == nil {
		logger = slog.Default()
	}
	return &OwnersRouter{owners: owners, logger: logger}
}

// Routes returns the chi router for owner endpoints.
func (rt *OwnersRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", rt.List)
	router.Get("/{id}", rt.Get)

	return router
}

// OwnerListResponse is the owner listing envelope.
type OwnerListResponse struct {
	Data []dto.OwnerDetail `json:"data"`
	Meta Meta              `json:"meta"`
}

// List handles GET /api/v1/owners. Supported filters: name (case-insensitive
// substring), address (substring), min_net_worth.
func (rt *OwnersRouter) List(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	pagination := ParsePagination(req)
	query := req.URL.Query()

	filter := owner.Filter{
		Name:    query.Get("name"),
		Address: query.Get("address"),
		Limit:   pagination.Limit(),
		Offset:  pagination.Offset(),
	}
	if raw := query.Get("min_net_worth"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			filter.MinNetWorth = v
		}
	}

	owners, err := rt.owners.Find(ctx, filter)
	if err != nil {
		middleware.WriteError(w, req, err, rt.logger)
		return
	}

	countFilter := filter
	countFilter.Limit = 0
	countFilter.Offset = 0
	total, err := rt.owners.Count(ctx, countFilter)
	if err != nil {
		middleware.WriteError(w, req, err, rt.logger)
		return
	}

	data := make([]dto.OwnerDetail, 0, len(owners))
	for _, o := range owners {
		data = append(data, ownerDetailDTO(o))
	}

	middleware.WriteJSON(w, http.StatusOK, OwnerListResponse{
		Data: data,
		Meta: NewMeta(pagination, total),
	})
}

// Get handles GET /api/v1/owners/{id}.
func (rt *OwnersRouter) Get(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	id := chi.URLParam(req, "id")

	portfolio, err := rt.owners.Get(ctx, id)
	if err != nil {
		middleware.WriteError(w, req, err, rt.logger)
		return
	}

	properties := make([]dto.PropertySummary, 0, len(portfolio.Properties))
	for _, p := range portfolio.Properties {
		properties = append(properties, propertySummaryDTO(p, nil))
	}

	middleware.WriteJSON(w, http.StatusOK, dto.OwnerDetailResponse{
		Owner:      ownerDetailDTO(portfolio.Owner),
		Properties: properties,
	})
}

func ownerDetailDTO(o owner.Owner) dto.OwnerDetail {
	var lastUpdated *time.Time
	if !o.LastUpdated().IsZero() {
		t := o.LastUpdated()
		lastUpdated = &t
	}

	return dto.OwnerDetail{
		ID:                o.ID(),
		FullName:          o.FullName(),
		MailingAddress:    o.MailingAddress(),
		Type:              o.Type(),
		EstimatedNetWorth: o.EstimatedNetWorth(),
		ConfidenceLevel:   string(o.Confidence()),
		CreatedAt:         o.CreatedAt(),
		LastUpdated:       lastUpdated,
	}
}
