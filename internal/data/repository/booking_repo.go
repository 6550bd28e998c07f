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

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByReference(ctx context.Context, reference string) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// UpdateStatus flips status only when the row still holds the expected
	// current status; a concurrent change surfaces as ErrInvalidTransition.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus) error

	// ExistsOverlapping reports a half-open interval overlap with any
	// non-cancelled, non-rejected booking of the venue on the date.
	ExistsOverlapping(ctx context.Context, venueID uuid.UUID, eventDate, startTime, endTime time.Time) (bool, error)

	// Approve re-validates availability inside a transaction that locks the
	// venue row, so two staff approving overlapping pending bookings cannot
	// both succeed.
	Approve(ctx context.Context, id uuid.UUID) error

	FindApprovedBefore(ctx context.Context, date time.Time) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, reference, user_id, contact_email, venue_id, event_type, event_date, start_time, end_time, guest_count, total_amount, advance_payment, special_requirements, status, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.UserID,
		&booking.ContactEmail,
		&booking.VenueID,
		&booking.EventType,
		&booking.EventDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.GuestCount,
		&booking.TotalAmount,
		&booking.AdvancePayment,
		&booking.SpecialRequirements,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, reference, user_id, contact_email, venue_id, event_type, event_date, start_time, end_time, guest_count, total_amount, advance_payment, special_requirements, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Reference,
		booking.UserID,
		booking.ContactEmail,
		booking.VenueID,
		booking.EventType,
		booking.EventDate,
		booking.StartTime,
		booking.EndTime,
		booking.GuestCount,
		booking.TotalAmount,
		booking.AdvancePayment,
		booking.SpecialRequirements,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("reference", booking.Reference),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.Reference, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE reference = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, reference))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by reference",
			zap.Error(err),
			zap.String("reference", reference),
		)
		return nil, fmt.Errorf("find booking by reference %s: %w", reference, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2`

	result, err := r.db.Exec(ctx, query, id, from, to)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(to)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", id.String(), string(to), err)
	}

	if result.RowsAffected() == 0 {
		// Row is gone or its status moved under us; either way the
		// requested transition no longer applies.
		return fmt.Errorf("booking %s is no longer %s: %w", id.String(), string(from), entity.ErrInvalidTransition)
	}

	return nil
}

func (r *bookingRepository) ExistsOverlapping(ctx context.Context, venueID uuid.UUID, eventDate, startTime, endTime time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE venue_id = $1
			  AND event_date = $2
			  AND status NOT IN ('cancelled', 'rejected')
			  AND start_time < $4
			  AND end_time > $3
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, venueID, eventDate, startTime, endTime).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check overlapping bookings",
			zap.Error(err),
			zap.String("venue_id", venueID.String()),
			zap.Time("event_date", eventDate),
		)
		return false, fmt.Errorf("check overlapping bookings for venue %s: %w", venueID.String(), err)
	}

	return exists, nil
}

func (r *bookingRepository) Approve(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin approve transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var (
		venueID            uuid.UUID
		eventDate          time.Time
		startTime, endTime time.Time
		status             entity.BookingStatus
	)
	err = tx.QueryRow(ctx, `
		SELECT venue_id, event_date, start_time, end_time, status
		FROM bookings
		WHERE id = $1
		FOR UPDATE
	`, id).Scan(&venueID, &eventDate, &startTime, &endTime, &status)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("booking %s: %w", id.String(), entity.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("lock booking %s: %w", id.String(), err)
	}

	if status != entity.BookingStatusPending {
		return fmt.Errorf("booking %s is %s: %w", id.String(), string(status), entity.ErrInvalidTransition)
	}

	// Serialize approvals per venue. Locking the venue row covers the case
	// where neither conflicting booking is approved yet, which row locks on
	// bookings alone would miss.
	if _, err := tx.Exec(ctx, `SELECT id FROM venues WHERE id = $1 FOR UPDATE`, venueID); err != nil {
		return fmt.Errorf("lock venue %s: %w", venueID.String(), err)
	}

	var conflict bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE venue_id = $1
			  AND event_date = $2
			  AND id <> $3
			  AND status = 'approved'
			  AND start_time < $5
			  AND end_time > $4
		)
	`, venueID, eventDate, id, startTime, endTime).Scan(&conflict)
	if err != nil {
		return fmt.Errorf("re-check availability for booking %s: %w", id.String(), err)
	}

	if conflict {
		return fmt.Errorf("approved booking overlaps booking %s: %w", id.String(), entity.ErrConflict)
	}

	if _, err := tx.Exec(ctx, `
		UPDATE bookings SET status = 'approved', updated_at = NOW() WHERE id = $1
	`, id); err != nil {
		return fmt.Errorf("approve booking %s: %w", id.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit approve for booking %s: %w", id.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindApprovedBefore(ctx context.Context, date time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status = 'approved' AND event_date < $1
		ORDER BY event_date
	`

	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		r.log.Error("Failed to find approved bookings before date",
			zap.Error(err),
			zap.Time("date", date),
		)
		return nil, fmt.Errorf("find approved bookings before %s: %w", date.Format("2006-01-02"), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}
