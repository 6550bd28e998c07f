package usecase

import (
	"context"
	"testing"
	"time"

	"venue-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletePastEvents(t *testing.T) {
	venue := testVenue(100, 1000)
	repo := newTestRepository(map[uuid.UUID]*entity.Venue{venue.ID: venue}, nil)
	svc := newTestService(repo)
	ctx := context.Background()

	seed := func(reference string, eventDate time.Time, status entity.BookingStatus) *entity.Booking {
		booking := &entity.Booking{
			Base:      entity.Base{ID: uuid.New()},
			Reference: reference,
			UserID:    uuid.New(),
			VenueID:   venue.ID,
			EventType: entity.EventTypeOther,
			EventDate: eventDate,
			Status:    status,
		}
		require.NoError(t, repo.Booking.Create(ctx, booking))
		return booking
	}

	pastApproved := seed("VB-PAST-APPROVED", time.Now().AddDate(0, 0, -3), entity.BookingStatusApproved)
	pastPending := seed("VB-PAST-PENDING", time.Now().AddDate(0, 0, -3), entity.BookingStatusPending)
	futureApproved := seed("VB-FUTURE-APPROVED", time.Now().AddDate(0, 0, 3), entity.BookingStatusApproved)
	todayApproved := seed("VB-TODAY-APPROVED", time.Now(), entity.BookingStatusApproved)

	count, err := svc.Sweep.CompletePastEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	status := func(id uuid.UUID) entity.BookingStatus {
		booking, err := repo.Booking.FindByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, booking)
		return booking.Status
	}

	assert.Equal(t, entity.BookingStatusCompleted, status(pastApproved.ID))
	assert.Equal(t, entity.BookingStatusPending, status(pastPending.ID))
	assert.Equal(t, entity.BookingStatusApproved, status(futureApproved.ID))
	assert.Equal(t, entity.BookingStatusApproved, status(todayApproved.ID))

	// A second sweep finds nothing left to do
	count, err = svc.Sweep.CompletePastEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
