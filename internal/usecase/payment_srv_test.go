package usecase

import (
	"context"
	"testing"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAttempt(t *testing.T) {
	venue := testVenue(100, 1000)
	repo := newTestRepository(map[uuid.UUID]*entity.Venue{venue.ID: venue}, nil)
	svc := newTestService(repo)
	ctx := context.Background()
	userID := uuid.New()

	booking, err := svc.Booking.Create(ctx, userID, createRequest(venue.ID, "10:00", "12:00"))
	require.NoError(t, err)

	t.Run("creates pending payment with transaction id", func(t *testing.T) {
		payment, err := svc.Payment.RecordAttempt(ctx, userID, entity.RoleCustomer, &request.RecordPaymentRequest{
			BookingID: booking.ID,
			Amount:    500,
			Method:    "upi",
		})
		require.NoError(t, err)

		assert.Equal(t, entity.PaymentStatusPending, payment.Status)
		assert.Equal(t, entity.PaymentMethodUPI, payment.Method)
		require.NotNil(t, payment.TransactionID)
		assert.NotEmpty(t, *payment.TransactionID)
	})

	t.Run("rejects unknown booking", func(t *testing.T) {
		_, err := svc.Payment.RecordAttempt(ctx, userID, entity.RoleCustomer, &request.RecordPaymentRequest{
			BookingID: uuid.New().String(),
			Amount:    500,
			Method:    "upi",
		})
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("rejects other users", func(t *testing.T) {
		_, err := svc.Payment.RecordAttempt(ctx, uuid.New(), entity.RoleCustomer, &request.RecordPaymentRequest{
			BookingID: booking.ID,
			Amount:    500,
			Method:    "upi",
		})
		assert.ErrorIs(t, err, entity.ErrForbidden)
	})

	t.Run("rejects terminal booking", func(t *testing.T) {
		cancelled, err := svc.Booking.Create(ctx, userID, createRequest(venue.ID, "14:00", "16:00"))
		require.NoError(t, err)
		_, err = svc.Booking.Cancel(ctx, userID, entity.RoleCustomer, cancelled.ID)
		require.NoError(t, err)

		_, err = svc.Payment.RecordAttempt(ctx, userID, entity.RoleCustomer, &request.RecordPaymentRequest{
			BookingID: cancelled.ID,
			Amount:    500,
			Method:    "upi",
		})
		assert.ErrorIs(t, err, entity.ErrInvalidTransition)
	})
}

func TestApplyGatewayResult(t *testing.T) {
	venue := testVenue(100, 1000)
	repo := newTestRepository(map[uuid.UUID]*entity.Venue{venue.ID: venue}, nil)
	svc := newTestService(repo)
	ctx := context.Background()
	userID := uuid.New()

	booking, err := svc.Booking.Create(ctx, userID, createRequest(venue.ID, "10:00", "12:00"))
	require.NoError(t, err)

	payment, err := svc.Payment.RecordAttempt(ctx, userID, entity.RoleCustomer, &request.RecordPaymentRequest{
		BookingID: booking.ID,
		Amount:    500,
		Method:    "razorpay",
	})
	require.NoError(t, err)
	txnID := *payment.TransactionID

	t.Run("unknown transaction", func(t *testing.T) {
		_, err := svc.Payment.ApplyGatewayResult(ctx, &request.GatewayWebhookRequest{
			TransactionID: "TXN-UNKNOWN",
			Status:        "completed",
		}, nil)
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("completes pending payment", func(t *testing.T) {
		applied, err := svc.Payment.ApplyGatewayResult(ctx, &request.GatewayWebhookRequest{
			TransactionID: txnID,
			Status:        "completed",
		}, []byte(`{"event":"payment.captured"}`))
		require.NoError(t, err)
		assert.Equal(t, entity.PaymentStatusCompleted, applied.Status)
	})

	t.Run("replay acknowledged without effect", func(t *testing.T) {
		applied, err := svc.Payment.ApplyGatewayResult(ctx, &request.GatewayWebhookRequest{
			TransactionID: txnID,
			Status:        "completed",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, entity.PaymentStatusCompleted, applied.Status)

		// The completed sum counts the payment exactly once
		sum, err := repo.Payment.SumCompletedByBookingID(ctx, uuid.MustParse(booking.ID))
		require.NoError(t, err)
		assert.Equal(t, 500.0, sum)
	})

	t.Run("completed payment cannot fail", func(t *testing.T) {
		_, err := svc.Payment.ApplyGatewayResult(ctx, &request.GatewayWebhookRequest{
			TransactionID: txnID,
			Status:        "failed",
		}, nil)
		assert.ErrorIs(t, err, entity.ErrInvalidTransition)
	})

	t.Run("completed payment refunds", func(t *testing.T) {
		refunded, err := svc.Payment.ApplyGatewayResult(ctx, &request.GatewayWebhookRequest{
			TransactionID: txnID,
			Status:        "refunded",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, entity.PaymentStatusRefunded, refunded.Status)
	})
}

func TestListByBooking(t *testing.T) {
	venue := testVenue(100, 1000)
	repo := newTestRepository(map[uuid.UUID]*entity.Venue{venue.ID: venue}, nil)
	svc := newTestService(repo)
	ctx := context.Background()
	userID := uuid.New()

	booking, err := svc.Booking.Create(ctx, userID, createRequest(venue.ID, "10:00", "12:00"))
	require.NoError(t, err)

	payCompleted(t, svc, userID, booking.ID, 250)
	payCompleted(t, svc, userID, booking.ID, 250)

	payments, err := svc.Payment.ListByBooking(ctx, userID, entity.RoleCustomer, booking.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 2)

	_, err = svc.Payment.ListByBooking(ctx, uuid.New(), entity.RoleCustomer, booking.ID)
	assert.ErrorIs(t, err, entity.ErrForbidden)
}
