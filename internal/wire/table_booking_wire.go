package wire

import (
	"venue-booking/internal/adaptor"
	"venue-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTableBooking(r chi.Router, tableBookingHandler *adaptor.TableBookingHandler, log *zap.Logger) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity(log))

		// POST /api/table-bookings - Reserve a table slot
		r.Post("/api/table-bookings", tableBookingHandler.CreateTableBooking)

		// GET /api/table-bookings - View own table bookings
		r.Get("/api/table-bookings", tableBookingHandler.GetUserTableBookings)

		// GET /api/table-bookings/{id} - View table booking (owner or staff)
		r.Get("/api/table-bookings/{id}", tableBookingHandler.GetTableBooking)

		// POST /api/table-bookings/{id}/cancel - Cancel table booking
		r.Post("/api/table-bookings/{id}/cancel", tableBookingHandler.CancelTableBooking)

		// POST /api/table-bookings/{id}/confirm - Confirm pending table booking (staff)
		r.With(middleware.Staff(log)).
			Post("/api/table-bookings/{id}/confirm", tableBookingHandler.ConfirmTableBooking)
	})
}
