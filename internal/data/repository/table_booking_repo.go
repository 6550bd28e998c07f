package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TableBookingRepository interface {
	Create(ctx context.Context, booking *entity.TableBooking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TableBooking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.TableBooking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// UpdateStatus flips status only when the row still holds the expected
	// current status.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.TableBookingStatus) error

	// ExistsForSlot reports a non-cancelled booking of the table for the
	// same date and time slot.
	ExistsForSlot(ctx context.Context, tableNumber int, bookingDate, bookingTime time.Time) (bool, error)
}

type tableBookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTableBookingRepository(db database.PgxIface, log *zap.Logger) TableBookingRepository {
	return &tableBookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "table_booking")),
	}
}

const tableBookingColumns = `id, reference, user_id, table_number, booking_date, booking_time, guest_count, special_requests, status, created_at, updated_at`

func scanTableBooking(row pgx.Row) (*entity.TableBooking, error) {
	var booking entity.TableBooking
	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.UserID,
		&booking.TableNumber,
		&booking.BookingDate,
		&booking.BookingTime,
		&booking.GuestCount,
		&booking.SpecialRequests,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *tableBookingRepository) Create(ctx context.Context, booking *entity.TableBooking) error {
	query := `
		INSERT INTO table_bookings (id, reference, user_id, table_number, booking_date, booking_time, guest_count, special_requests, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Reference,
		booking.UserID,
		booking.TableNumber,
		booking.BookingDate,
		booking.BookingTime,
		booking.GuestCount,
		booking.SpecialRequests,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create table booking",
			zap.Error(err),
			zap.String("reference", booking.Reference),
			zap.Int("table_number", booking.TableNumber),
		)
		return fmt.Errorf("create table booking %s: %w", booking.Reference, err)
	}

	return nil
}

func (r *tableBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TableBooking, error) {
	query := `SELECT ` + tableBookingColumns + ` FROM table_bookings WHERE id = $1`

	booking, err := scanTableBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find table booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find table booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *tableBookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.TableBooking, error) {
	query := `
		SELECT ` + tableBookingColumns + `
		FROM table_bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find table bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find table bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.TableBooking
	for rows.Next() {
		booking, err := scanTableBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan table booking row", zap.Error(err))
			return nil, fmt.Errorf("scan table booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *tableBookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM table_bookings WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count table bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count table bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *tableBookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.TableBookingStatus) error {
	query := `UPDATE table_bookings SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2`

	result, err := r.db.Exec(ctx, query, id, from, to)
	if err != nil {
		r.log.Error("Failed to update table booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(to)),
		)
		return fmt.Errorf("update table booking %s status to %s: %w", id.String(), string(to), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("table booking %s is no longer %s: %w", id.String(), string(from), entity.ErrInvalidTransition)
	}

	return nil
}

func (r *tableBookingRepository) ExistsForSlot(ctx context.Context, tableNumber int, bookingDate, bookingTime time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM table_bookings
			WHERE table_number = $1
			  AND booking_date = $2
			  AND booking_time = $3
			  AND status <> 'cancelled'
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, tableNumber, bookingDate, bookingTime).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check table slot",
			zap.Error(err),
			zap.Int("table_number", tableNumber),
			zap.Time("booking_date", bookingDate),
		)
		return false, fmt.Errorf("check slot for table %d: %w", tableNumber, err)
	}

	return exists, nil
}
