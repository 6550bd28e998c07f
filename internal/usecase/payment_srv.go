package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	// RecordAttempt registers a payment attempt against a booking and hands
	// back the gateway correlation id the caller will pay under.
	RecordAttempt(ctx context.Context, userID uuid.UUID, role string, req *request.RecordPaymentRequest) (*response.PaymentResponse, error)

	ListByBooking(ctx context.Context, actorID uuid.UUID, role, bookingID string) ([]response.PaymentResponse, error)

	// ApplyGatewayResult applies a webhook outcome exactly once per
	// transaction id. Replays of an already-applied outcome are acknowledged
	// without effect.
	ApplyGatewayResult(ctx context.Context, req *request.GatewayWebhookRequest, rawBody []byte) (*response.PaymentResponse, error)
}

type paymentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPaymentService(repo *repository.Repository, log *zap.Logger) PaymentService {
	return &paymentService{
		repo: repo,
		log:  log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) RecordAttempt(ctx context.Context, userID uuid.UUID, role string, req *request.RecordPaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), entity.ErrValidation)
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID %s: %w", req.BookingID, entity.ErrValidation)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", req.BookingID, entity.ErrNotFound)
	}
	if booking.UserID != userID && role != entity.RoleStaff {
		return nil, fmt.Errorf("booking %s belongs to another user: %w", req.BookingID, entity.ErrForbidden)
	}
	if booking.Status.Terminal() {
		return nil, fmt.Errorf("booking %s is %s: %w", req.BookingID, string(booking.Status), entity.ErrInvalidTransition)
	}

	now := time.Now()
	transactionID := utils.GenerateReference("TXN")

	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:        userID,
		BookingID:     &bookingID,
		Amount:        req.Amount,
		Method:        entity.PaymentMethod(req.Method),
		Status:        entity.PaymentStatusPending,
		TransactionID: &transactionID,
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.log.Info("Payment attempt recorded",
		zap.String("transaction_id", transactionID),
		zap.String("booking_id", req.BookingID),
		zap.Float64("amount", req.Amount),
	)

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) ListByBooking(ctx context.Context, actorID uuid.UUID, role, bookingID string) ([]response.PaymentResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID %s: %w", bookingID, entity.ErrValidation)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, entity.ErrNotFound)
	}
	if booking.UserID != actorID && role != entity.RoleStaff {
		return nil, fmt.Errorf("booking %s belongs to another user: %w", bookingID, entity.ErrForbidden)
	}

	payments, err := s.repo.Payment.FindByBookingID(ctx, id)
	if err != nil {
		return nil, err
	}

	paymentResponses := make([]response.PaymentResponse, len(payments))
	for i, payment := range payments {
		paymentResponses[i] = response.PaymentToResponse(payment)
	}

	return paymentResponses, nil
}

func (s *paymentService) ApplyGatewayResult(ctx context.Context, req *request.GatewayWebhookRequest, rawBody []byte) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), entity.ErrValidation)
	}

	target := entity.PaymentStatus(req.Status)
	from, err := outcomeSources(target)
	if err != nil {
		return nil, err
	}

	gatewayResponse := rawBody
	if len(gatewayResponse) == 0 {
		gatewayResponse, _ = json.Marshal(req)
	}

	rows, err := s.repo.Payment.ApplyOutcome(ctx, req.TransactionID, from, target, gatewayResponse)
	if err != nil {
		return nil, err
	}

	payment, err := s.repo.Payment.FindByTransactionID(ctx, req.TransactionID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, fmt.Errorf("transaction %s: %w", req.TransactionID, entity.ErrNotFound)
	}

	if rows == 0 {
		if payment.Status == target {
			// At-least-once delivery: the outcome already landed, acknowledge
			// the replay without touching anything.
			s.log.Info("Webhook replay ignored",
				zap.String("transaction_id", req.TransactionID),
				zap.String("status", string(target)),
			)
			resp := response.PaymentToResponse(payment)
			return &resp, nil
		}
		return nil, fmt.Errorf("transaction %s is %s, cannot apply %s: %w",
			req.TransactionID, string(payment.Status), string(target), entity.ErrInvalidTransition)
	}

	s.log.Info("Payment outcome applied",
		zap.String("transaction_id", req.TransactionID),
		zap.String("status", string(target)),
	)

	if target == entity.PaymentStatusCompleted && payment.BookingID != nil {
		s.logAdvanceCoverage(ctx, *payment.BookingID)
	}

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

// outcomeSources maps a webhook outcome to the statuses it may move out of.
func outcomeSources(to entity.PaymentStatus) ([]entity.PaymentStatus, error) {
	switch to {
	case entity.PaymentStatusProcessing:
		return []entity.PaymentStatus{entity.PaymentStatusPending}, nil
	case entity.PaymentStatusCompleted, entity.PaymentStatusFailed:
		return []entity.PaymentStatus{entity.PaymentStatusPending, entity.PaymentStatusProcessing}, nil
	case entity.PaymentStatusRefunded:
		return []entity.PaymentStatus{entity.PaymentStatusCompleted}, nil
	default:
		return nil, fmt.Errorf("unsupported outcome %s: %w", string(to), entity.ErrValidation)
	}
}

// logAdvanceCoverage notes when a completed payment covers the advance, so
// staff reviewing pending bookings can see approval is unblocked. Approval
// itself stays a staff decision.
func (s *paymentService) logAdvanceCoverage(ctx context.Context, bookingID uuid.UUID) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil || booking == nil {
		return
	}
	if booking.Status != entity.BookingStatusPending || booking.AdvancePayment <= 0 {
		return
	}

	paid, err := s.repo.Payment.SumCompletedByBookingID(ctx, bookingID)
	if err != nil {
		return
	}
	if paid >= booking.AdvancePayment {
		s.log.Info("Advance payment covered, booking awaits approval",
			zap.String("reference", booking.Reference),
			zap.Float64("paid", paid),
			zap.Float64("advance", booking.AdvancePayment),
		)
	}
}
