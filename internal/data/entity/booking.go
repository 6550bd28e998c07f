package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Terminal reports whether no further transition is permitted.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusRejected || s == BookingStatusCancelled || s == BookingStatusCompleted
}

type EventType string

const (
	EventTypeWedding   EventType = "wedding"
	EventTypeBirthday  EventType = "birthday"
	EventTypeCorporate EventType = "corporate"
	EventTypeReception EventType = "reception"
	EventTypeOther     EventType = "other"
)

// Booking is a venue booking. EventDate holds the calendar date; StartTime
// and EndTime hold times of day on the zero date. The [StartTime, EndTime)
// window is half-open: a booking ending exactly when another starts does
// not overlap it.
type Booking struct {
	Base
	Reference           string        `db:"reference"`
	UserID              uuid.UUID     `db:"user_id"`
	ContactEmail        string        `db:"contact_email"`
	VenueID             uuid.UUID     `db:"venue_id"`
	EventType           EventType     `db:"event_type"`
	EventDate           time.Time     `db:"event_date"`
	StartTime           time.Time     `db:"start_time"`
	EndTime             time.Time     `db:"end_time"`
	GuestCount          int           `db:"guest_count"`
	TotalAmount         float64       `db:"total_amount"`
	AdvancePayment      float64       `db:"advance_payment"`
	SpecialRequirements string        `db:"special_requirements"`
	Status              BookingStatus `db:"status"`
}

// IsPastEvent reports whether the event date is strictly before the date of now.
func (b *Booking) IsPastEvent(now time.Time) bool {
	return dateOf(b.EventDate).Before(dateOf(now))
}

// IsToday reports whether the event date equals the date of now.
func (b *Booking) IsToday(now time.Time) bool {
	return dateOf(b.EventDate).Equal(dateOf(now))
}

// CanTransition validates a status change against the lifecycle rules for
// the given actor role. It does not mutate the booking; repositories apply
// the change with a status-guarded update.
func (b *Booking) CanTransition(to BookingStatus, role string, now time.Time) error {
	switch {
	case b.Status == BookingStatusPending && to == BookingStatusApproved:
		if role != RoleStaff {
			return ErrForbidden
		}
	case b.Status == BookingStatusPending && to == BookingStatusRejected:
		if role != RoleStaff {
			return ErrForbidden
		}
	case (b.Status == BookingStatusPending || b.Status == BookingStatusApproved) && to == BookingStatusCancelled:
		if b.IsPastEvent(now) {
			return ErrPastEvent
		}
	case b.Status == BookingStatusApproved && to == BookingStatusCompleted:
		if role != RoleStaff {
			return ErrForbidden
		}
		if !b.IsPastEvent(now) {
			return ErrInvalidTransition
		}
	default:
		return ErrInvalidTransition
	}

	return nil
}

// Overlaps reports whether two half-open [start, end) windows intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Actor roles. The booking core trusts the upstream identity provider for
// these; owner checks are done against Booking.UserID separately.
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
)

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
