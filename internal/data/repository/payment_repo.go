package repository

import (
	"context"
	"errors"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error)
	SumCompletedByBookingID(ctx context.Context, bookingID uuid.UUID) (float64, error)

	// ApplyOutcome flips the payment status by gateway transaction id, only
	// out of the given current statuses. It returns the number of rows
	// changed; zero means the outcome was already applied or does not fit
	// the payment's current state.
	ApplyOutcome(ctx context.Context, transactionID string, from []entity.PaymentStatus, to entity.PaymentStatus, gatewayResponse []byte) (int64, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

const paymentColumns = `id, user_id, booking_id, amount, method, status, transaction_id, gateway_response, created_at, updated_at`

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var payment entity.Payment
	err := row.Scan(
		&payment.ID,
		&payment.UserID,
		&payment.BookingID,
		&payment.Amount,
		&payment.Method,
		&payment.Status,
		&payment.TransactionID,
		&payment.GatewayResponse,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, user_id, booking_id, amount, method, status, transaction_id, gateway_response, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.UserID,
		payment.BookingID,
		payment.Amount,
		payment.Method,
		payment.Status,
		payment.TransactionID,
		payment.GatewayResponse,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("payment_id", payment.ID.String()),
			zap.String("user_id", payment.UserID.String()),
		)
		return fmt.Errorf("create payment %s: %w", payment.ID.String(), err)
	}

	return nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	payment, err := scanPayment(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by ID",
			zap.Error(err),
			zap.String("payment_id", id.String()),
		)
		return nil, fmt.Errorf("find payment by ID %s: %w", id.String(), err)
	}

	return payment, nil
}

func (r *paymentRepository) FindByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE transaction_id = $1`

	payment, err := scanPayment(r.db.QueryRow(ctx, query, transactionID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by transaction ID",
			zap.Error(err),
			zap.String("transaction_id", transactionID),
		)
		return nil, fmt.Errorf("find payment by transaction ID %s: %w", transactionID, err)
	}

	return payment, nil
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE booking_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find payments by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find payments by booking ID %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, payment)
	}

	return payments, nil
}

func (r *paymentRepository) SumCompletedByBookingID(ctx context.Context, bookingID uuid.UUID) (float64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE booking_id = $1 AND status = 'completed'`

	var sum float64
	err := r.db.QueryRow(ctx, query, bookingID).Scan(&sum)
	if err != nil {
		r.log.Error("Failed to sum completed payments",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return 0, fmt.Errorf("sum completed payments for booking %s: %w", bookingID.String(), err)
	}

	return sum, nil
}

func (r *paymentRepository) ApplyOutcome(ctx context.Context, transactionID string, from []entity.PaymentStatus, to entity.PaymentStatus, gatewayResponse []byte) (int64, error) {
	query := `
		UPDATE payments
		SET status = $2, gateway_response = $3, updated_at = NOW()
		WHERE transaction_id = $1 AND status = ANY($4)
	`

	statuses := make([]string, len(from))
	for i, s := range from {
		statuses[i] = string(s)
	}

	result, err := r.db.Exec(ctx, query, transactionID, to, gatewayResponse, statuses)
	if err != nil {
		r.log.Error("Failed to apply payment outcome",
			zap.Error(err),
			zap.String("transaction_id", transactionID),
			zap.String("status", string(to)),
		)
		return 0, fmt.Errorf("apply outcome %s for transaction %s: %w", string(to), transactionID, err)
	}

	return result.RowsAffected(), nil
}
