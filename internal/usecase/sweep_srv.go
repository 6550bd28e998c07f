package usecase

import (
	"context"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"

	"go.uber.org/zap"
)

// SweepService moves approved bookings whose event date has passed to
// completed. It runs on a schedule; staff can still complete individual
// bookings by hand in between runs.
type SweepService interface {
	CompletePastEvents(ctx context.Context) (int, error)
}

type sweepService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSweepService(repo *repository.Repository, log *zap.Logger) SweepService {
	return &sweepService{
		repo: repo,
		log:  log.With(zap.String("service", "sweep")),
	}
}

func (s *sweepService) CompletePastEvents(ctx context.Context) (int, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	bookings, err := s.repo.Booking.FindApprovedBefore(ctx, today)
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, booking := range bookings {
		err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusApproved, entity.BookingStatusCompleted)
		if err != nil {
			// A staff member may have moved the booking since the query;
			// skip it and keep sweeping.
			s.log.Warn("Skipped booking during sweep",
				zap.Error(err),
				zap.String("reference", booking.Reference),
			)
			continue
		}
		completed++
	}

	if completed > 0 {
		s.log.Info("Completed past events", zap.Int("count", completed))
	}

	return completed, nil
}
