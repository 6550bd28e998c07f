package wire

import (
	"venue-booking/internal/adaptor"
	"venue-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler, log *zap.Logger) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity(log))

		// POST /api/payments - Record a payment attempt
		r.Post("/api/payments", paymentHandler.RecordPayment)

		// GET /api/bookings/{id}/payments - List payments for a booking
		r.Get("/api/bookings/{id}/payments", paymentHandler.ListBookingPayments)
	})

	// ==================== PUBLIC ROUTES ====================
	// POST /api/payments/webhook - Gateway callback, verified by signature
	r.Post("/api/payments/webhook", paymentHandler.GatewayWebhook)
}
