package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"venue-booking/internal/dto/request"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	rzputils "github.com/razorpay/razorpay-go/utils"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	service       usecase.PaymentService
	webhookSecret string
	log           *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, webhookSecret string, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service:       service,
		webhookSecret: webhookSecret,
		log:           log.With(zap.String("handler", "payment")),
	}
}

// RecordPayment handles POST /api/payments (protected)
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	var req request.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	payment, err := h.service.RecordAttempt(r.Context(), userID, role, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "record payment")
		return
	}

	utils.ResponseCreated(w, "success", payment)
}

// ListBookingPayments handles GET /api/bookings/{id}/payments (protected, owner or staff)
func (h *PaymentHandler) ListBookingPayments(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	payments, err := h.service.ListByBooking(r.Context(), userID, role, bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "list booking payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}

// GatewayWebhook handles POST /api/payments/webhook (public, signature verified).
// The gateway delivers at-least-once; the service deduplicates by transaction id.
func (h *PaymentHandler) GatewayWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if h.webhookSecret != "" {
		signature := r.Header.Get("X-Razorpay-Signature")
		if !rzputils.VerifyWebhookSignature(string(body), signature, h.webhookSecret) {
			h.log.Warn("Webhook signature verification failed",
				zap.String("remote_addr", r.RemoteAddr))
			utils.ResponseUnauthorized(w, "Invalid webhook signature")
			return
		}
	}

	var req request.GatewayWebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	payment, err := h.service.ApplyGatewayResult(r.Context(), &req, body)
	if err != nil {
		handleServiceError(w, h.log, err, "apply gateway result")
		return
	}

	utils.ResponseSuccess(w, "success", payment)
}
