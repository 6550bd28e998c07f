package adaptor

import (
	"encoding/json"
	"net/http"

	"venue-booking/internal/dto/request"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TableBookingHandler struct {
	service usecase.TableBookingService
	log     *zap.Logger
}

func NewTableBookingHandler(service usecase.TableBookingService, log *zap.Logger) *TableBookingHandler {
	return &TableBookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "table_booking")),
	}
}

// CreateTableBooking handles POST /api/table-bookings (protected)
func (h *TableBookingHandler) CreateTableBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateTableBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create table booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetUserTableBookings handles GET /api/table-bookings (protected)
func (h *TableBookingHandler) GetUserTableBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.service.ListByUser(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "get user table bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetTableBooking handles GET /api/table-bookings/{id} (protected, owner or staff)
func (h *TableBookingHandler) GetTableBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Table booking ID is required", nil)
		return
	}

	booking, err := h.service.Get(r.Context(), userID, role, bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get table booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CancelTableBooking handles POST /api/table-bookings/{id}/cancel (protected, owner or staff)
func (h *TableBookingHandler) CancelTableBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Table booking ID is required", nil)
		return
	}

	booking, err := h.service.Cancel(r.Context(), userID, role, bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "cancel table booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ConfirmTableBooking handles POST /api/table-bookings/{id}/confirm (staff only)
func (h *TableBookingHandler) ConfirmTableBooking(w http.ResponseWriter, r *http.Request) {
	role, _ := utils.GetRoleFromContext(r.Context())

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Table booking ID is required", nil)
		return
	}

	booking, err := h.service.Confirm(r.Context(), role, bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "confirm table booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}
