package wire

import (
	"venue-booking/internal/adaptor"
	"venue-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, log *zap.Logger) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity(log))

		// POST /api/bookings - Create new venue booking
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/bookings - View own booking history
		r.Get("/api/bookings", bookingHandler.GetUserBookings)

		// GET /api/bookings/{id} - View booking details (owner or staff)
		r.Get("/api/bookings/{id}", bookingHandler.GetBooking)

		// GET /api/bookings/reference/{reference} - Look up by booking reference
		r.Get("/api/bookings/reference/{reference}", bookingHandler.GetBookingByReference)

		// POST /api/bookings/{id}/cancel - Cancel booking (owner or staff)
		r.Post("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)
	})

	// ==================== STAFF ROUTES ====================
	r.Route("/api/staff/bookings", func(r chi.Router) {
		r.Use(middleware.Identity(log))
		r.Use(middleware.Staff(log))

		// POST /api/staff/bookings/{id}/approve - Approve pending booking
		r.Post("/{id}/approve", bookingHandler.ApproveBooking)

		// POST /api/staff/bookings/{id}/reject - Reject pending booking
		r.Post("/{id}/reject", bookingHandler.RejectBooking)

		// POST /api/staff/bookings/{id}/complete - Complete past approved booking
		r.Post("/{id}/complete", bookingHandler.CompleteBooking)
	})
}
