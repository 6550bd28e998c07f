package adaptor

import (
	"net/http"

	"venue-booking/internal/dto/request"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type VenueHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewVenueHandler(service usecase.CatalogService, log *zap.Logger) *VenueHandler {
	return &VenueHandler{
		service: service,
		log:     log.With(zap.String("handler", "venue")),
	}
}

// ListVenues handles GET /api/venues (public)
func (h *VenueHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	venues, err := h.service.ListVenues(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list venues")
		return
	}

	utils.ResponseSuccess(w, "success", venues)
}

// GetVenue handles GET /api/venues/{id} (public)
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "id")
	if venueID == "" {
		utils.ResponseBadRequest(w, "Venue ID is required", nil)
		return
	}

	venue, err := h.service.GetVenueResponse(r.Context(), venueID)
	if err != nil {
		handleServiceError(w, h.log, err, "get venue")
		return
	}

	utils.ResponseSuccess(w, "success", venue)
}

// ListTables handles GET /api/tables (public)
func (h *VenueHandler) ListTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.service.ListTables(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list tables")
		return
	}

	utils.ResponseSuccess(w, "success", tables)
}
