package adaptor

import (
	"errors"
	"net/http"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Venue        *VenueHandler
	Booking      *BookingHandler
	TableBooking *TableBookingHandler
	Payment      *PaymentHandler
}

func NewHandler(service *usecase.Service, webhookSecret string, log *zap.Logger) *Handler {
	return &Handler{
		Venue:        NewVenueHandler(service.Catalog, log),
		Booking:      NewBookingHandler(service.Booking, log),
		TableBooking: NewTableBookingHandler(service.TableBooking, log),
		Payment:      NewPaymentHandler(service.Payment, webhookSecret, log),
	}
}

// handleServiceError maps domain errors to HTTP statuses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, entity.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, entity.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, entity.ErrConflict),
		errors.Is(err, entity.ErrInvalidTransition),
		errors.Is(err, entity.ErrPastEvent),
		errors.Is(err, entity.ErrAdvanceUnpaid):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
