package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentCanApplyOutcome(t *testing.T) {
	tests := []struct {
		name    string
		status  PaymentStatus
		to      PaymentStatus
		allowed bool
	}{
		{"pending completes", PaymentStatusPending, PaymentStatusCompleted, true},
		{"pending fails", PaymentStatusPending, PaymentStatusFailed, true},
		{"pending starts processing", PaymentStatusPending, PaymentStatusProcessing, true},
		{"processing completes", PaymentStatusProcessing, PaymentStatusCompleted, true},
		{"processing fails", PaymentStatusProcessing, PaymentStatusFailed, true},
		{"completed refunds", PaymentStatusCompleted, PaymentStatusRefunded, true},
		{"pending cannot refund", PaymentStatusPending, PaymentStatusRefunded, false},
		{"completed cannot fail", PaymentStatusCompleted, PaymentStatusFailed, false},
		{"completed cannot re-complete", PaymentStatusCompleted, PaymentStatusCompleted, false},
		{"failed is terminal", PaymentStatusFailed, PaymentStatusCompleted, false},
		{"refunded is terminal", PaymentStatusRefunded, PaymentStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment := &Payment{Status: tt.status}
			err := payment.CanApplyOutcome(tt.to)

			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}
