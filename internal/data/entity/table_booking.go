package entity

import (
	"time"

	"github.com/google/uuid"
)

type TableBookingStatus string

const (
	TableBookingStatusPending   TableBookingStatus = "pending"
	TableBookingStatusConfirmed TableBookingStatus = "confirmed"
	TableBookingStatusCancelled TableBookingStatus = "cancelled"
)

// Terminal reports whether no further transition is permitted.
func (s TableBookingStatus) Terminal() bool {
	return s == TableBookingStatusCancelled
}

// TableBooking reserves a table for a single time slot on a date. The
// status vocabulary is deliberately narrower than the venue booking one;
// the two lifecycles are not unified.
type TableBooking struct {
	Base
	Reference       string             `db:"reference"`
	UserID          uuid.UUID          `db:"user_id"`
	TableNumber     int                `db:"table_number"`
	BookingDate     time.Time          `db:"booking_date"`
	BookingTime     time.Time          `db:"booking_time"`
	GuestCount      int                `db:"guest_count"`
	SpecialRequests string             `db:"special_requests"`
	Status          TableBookingStatus `db:"status"`
}

// IsPastBooking reports whether the booking date is strictly before the date of now.
func (b *TableBooking) IsPastBooking(now time.Time) bool {
	return dateOf(b.BookingDate).Before(dateOf(now))
}

// CanTransition validates a status change for the given actor role.
func (b *TableBooking) CanTransition(to TableBookingStatus, role string, now time.Time) error {
	switch {
	case b.Status == TableBookingStatusPending && to == TableBookingStatusConfirmed:
		if role != RoleStaff {
			return ErrForbidden
		}
	case (b.Status == TableBookingStatusPending || b.Status == TableBookingStatusConfirmed) && to == TableBookingStatusCancelled:
		if b.IsPastBooking(now) {
			return ErrPastEvent
		}
	default:
		return ErrInvalidTransition
	}

	return nil
}
