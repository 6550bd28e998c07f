package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

type PaymentResponse struct {
	ID            string               `json:"id"`
	BookingID     string               `json:"booking_id,omitempty"`
	Amount        float64              `json:"amount"`
	Method        entity.PaymentMethod `json:"method"`
	Status        entity.PaymentStatus `json:"status"`
	TransactionID *string              `json:"transaction_id,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:            payment.ID.String(),
		Amount:        payment.Amount,
		Method:        payment.Method,
		Status:        payment.Status,
		TransactionID: payment.TransactionID,
		CreatedAt:     payment.CreatedAt,
		UpdatedAt:     payment.UpdatedAt,
	}
	if payment.BookingID != nil {
		resp.BookingID = payment.BookingID.String()
	}
	return resp
}
