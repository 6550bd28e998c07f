package usecase

import (
	"venue-booking/internal/data/cache"
	"venue-booking/internal/data/repository"
	"venue-booking/pkg/mailer"

	"go.uber.org/zap"
)

type Service struct {
	Catalog      CatalogService
	Booking      BookingService
	TableBooking TableBookingService
	Payment      PaymentService
	Sweep        SweepService
}

func NewService(repo *repository.Repository, catalogCache cache.CatalogCache, mail mailer.Sender, log *zap.Logger) *Service {
	catalog := NewCatalogService(repo, catalogCache, log)

	return &Service{
		Catalog:      catalog,
		Booking:      NewBookingService(repo, catalog, mail, log),
		TableBooking: NewTableBookingService(repo, catalog, log),
		Payment:      NewPaymentService(repo, log),
		Sweep:        NewSweepService(repo, log),
	}
}
