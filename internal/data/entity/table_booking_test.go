package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func tableBookingWith(status TableBookingStatus, bookingDate time.Time) *TableBooking {
	return &TableBooking{
		Status:      status,
		BookingDate: bookingDate,
	}
}

func TestTableBookingCanTransition(t *testing.T) {
	future := now.AddDate(0, 0, 3)
	past := now.AddDate(0, 0, -3)

	tests := []struct {
		name        string
		status      TableBookingStatus
		bookingDate time.Time
		to          TableBookingStatus
		role        string
		wantErr     error
	}{
		{"staff confirms pending", TableBookingStatusPending, future, TableBookingStatusConfirmed, RoleStaff, nil},
		{"customer cannot confirm", TableBookingStatusPending, future, TableBookingStatusConfirmed, RoleCustomer, ErrForbidden},
		{"customer cancels pending", TableBookingStatusPending, future, TableBookingStatusCancelled, RoleCustomer, nil},
		{"customer cancels confirmed", TableBookingStatusConfirmed, future, TableBookingStatusCancelled, RoleCustomer, nil},
		{"no cancel after date", TableBookingStatusConfirmed, past, TableBookingStatusCancelled, RoleCustomer, ErrPastEvent},
		{"cancelled is terminal", TableBookingStatusCancelled, future, TableBookingStatusConfirmed, RoleStaff, ErrInvalidTransition},
		{"no confirming confirmed", TableBookingStatusConfirmed, future, TableBookingStatusConfirmed, RoleStaff, ErrInvalidTransition},
		{"no moving to pending", TableBookingStatusConfirmed, future, TableBookingStatusPending, RoleStaff, ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := tableBookingWith(tt.status, tt.bookingDate)
			err := booking.CanTransition(tt.to, tt.role, now)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestTableMaxGuests(t *testing.T) {
	small := &Table{TableNumber: 1, Capacity: 4}
	assert.Equal(t, 4, small.MaxGuests())

	exact := &Table{TableNumber: 2, Capacity: 10}
	assert.Equal(t, 10, exact.MaxGuests())

	// Party size never exceeds the house limit even on big tables
	large := &Table{TableNumber: 3, Capacity: 16}
	assert.Equal(t, TableBookingMaxGuests, large.MaxGuests())
}
