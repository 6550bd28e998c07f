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

func TestGetVenueResponse(t *testing.T) {
	active := testVenue(100, 1000)
	inactive := testVenue(50, 0)
	inactive.IsActive = false

	repo := newTestRepository(map[uuid.UUID]*entity.Venue{
		active.ID:   active,
		inactive.ID: inactive,
	}, nil)
	svc := newTestService(repo)
	ctx := context.Background()

	venue, err := svc.Catalog.GetVenueResponse(ctx, active.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Grand Hall", venue.Name)

	_, err = svc.Catalog.GetVenueResponse(ctx, inactive.ID.String())
	assert.ErrorIs(t, err, entity.ErrNotFound)

	_, err = svc.Catalog.GetVenueResponse(ctx, uuid.New().String())
	assert.ErrorIs(t, err, entity.ErrNotFound)

	_, err = svc.Catalog.GetVenueResponse(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestListVenues(t *testing.T) {
	active := testVenue(100, 1000)
	inactive := testVenue(50, 0)
	inactive.IsActive = false

	repo := newTestRepository(map[uuid.UUID]*entity.Venue{
		active.ID:   active,
		inactive.ID: inactive,
	}, nil)
	svc := newTestService(repo)

	venues, err := svc.Catalog.ListVenues(context.Background(), &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)

	assert.Len(t, venues.Data, 1)
	assert.Equal(t, int64(1), venues.Pagination.Total)
}

func TestListTables(t *testing.T) {
	repo := newTestRepository(nil, testTables())
	svc := newTestService(repo)

	tables, err := svc.Catalog.ListTables(context.Background())
	require.NoError(t, err)

	// Inactive tables stay out of the listing
	assert.Len(t, tables, 2)
	for _, table := range tables {
		assert.NotEqual(t, 13, table.TableNumber)
	}
}
