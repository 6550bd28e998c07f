package repository

import (
	"venue-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Venue        VenueRepository
	Table        TableRepository
	Booking      BookingRepository
	TableBooking TableBookingRepository
	Payment      PaymentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Venue:        NewVenueRepository(db, log),
		Table:        NewTableRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		TableBooking: NewTableBookingRepository(db, log),
		Payment:      NewPaymentRepository(db, log),
	}
}
