package entity

import (
	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	PaymentMethodRazorpay PaymentMethod = "razorpay"
	PaymentMethodStripe   PaymentMethod = "stripe"
	PaymentMethodPaypal   PaymentMethod = "paypal"
	PaymentMethodUPI      PaymentMethod = "upi"
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
)

// Payment records one payment attempt and its gateway outcome. TransactionID
// is the gateway correlation id and is unique when set; webhook replays for
// the same transaction id must apply at most once.
type Payment struct {
	Base
	UserID          uuid.UUID     `db:"user_id"`
	BookingID       *uuid.UUID    `db:"booking_id"`
	Amount          float64       `db:"amount"`
	Method          PaymentMethod `db:"method"`
	Status          PaymentStatus `db:"status"`
	TransactionID   *string       `db:"transaction_id"`
	GatewayResponse []byte        `db:"gateway_response"`
}

// CanApplyOutcome validates a gateway outcome against the payment lifecycle:
// pending/processing may complete or fail, completed may be refunded.
func (p *Payment) CanApplyOutcome(to PaymentStatus) error {
	switch p.Status {
	case PaymentStatusPending, PaymentStatusProcessing:
		if to == PaymentStatusCompleted || to == PaymentStatusFailed || to == PaymentStatusProcessing {
			return nil
		}
	case PaymentStatusCompleted:
		if to == PaymentStatusRefunded {
			return nil
		}
	}
	return ErrInvalidTransition
}
