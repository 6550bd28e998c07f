package usecase

import (
	"context"
	"fmt"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/pkg/mailer"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// advanceShare is the fraction of the total collected up front.
const advanceShare = 0.25

type BookingService interface {
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	Get(ctx context.Context, actorID uuid.UUID, role, bookingID string) (*response.BookingResponse, error)
	GetByReference(ctx context.Context, actorID uuid.UUID, role, reference string) (*response.BookingResponse, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)

	Cancel(ctx context.Context, actorID uuid.UUID, role, bookingID string) (*response.BookingResponse, error)
	Approve(ctx context.Context, role, bookingID string) (*response.BookingResponse, error)
	Reject(ctx context.Context, role, bookingID string) (*response.BookingResponse, error)
	Complete(ctx context.Context, role, bookingID string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo    *repository.Repository
	catalog CatalogService
	mail    mailer.Sender
	log     *zap.Logger
}

func NewBookingService(repo *repository.Repository, catalog CatalogService, mail mailer.Sender, log *zap.Logger) BookingService {
	return &bookingService{
		repo:    repo,
		catalog: catalog,
		mail:    mail,
		log:     log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), entity.ErrValidation)
	}

	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID %s: %w", req.VenueID, entity.ErrValidation)
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return nil, fmt.Errorf("invalid event date %s: %w", req.EventDate, entity.ErrValidation)
	}
	startTime, err := time.Parse("15:04", req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %s: %w", req.StartTime, entity.ErrValidation)
	}
	endTime, err := time.Parse("15:04", req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end time %s: %w", req.EndTime, entity.ErrValidation)
	}

	if !startTime.Before(endTime) {
		return nil, fmt.Errorf("start time must be before end time: %w", entity.ErrValidation)
	}

	now := time.Now()
	if eventDate.Before(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)) {
		return nil, fmt.Errorf("event date %s: %w", req.EventDate, entity.ErrPastEvent)
	}

	venue, err := s.catalog.GetVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if !venue.IsActive {
		return nil, fmt.Errorf("venue %s inactive: %w", venueID.String(), entity.ErrNotFound)
	}

	if req.GuestCount > venue.Capacity {
		return nil, fmt.Errorf("guest count %d exceeds venue capacity %d: %w", req.GuestCount, venue.Capacity, entity.ErrValidation)
	}

	taken, err := s.repo.Booking.ExistsOverlapping(ctx, venueID, eventDate, startTime, endTime)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("venue %s already booked for the requested window: %w", venueID.String(), entity.ErrConflict)
	}

	total := venue.PricePerDay
	if venue.PricePerHour > 0 {
		total = endTime.Sub(startTime).Hours() * venue.PricePerHour
	}

	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Reference:           utils.GenerateReference("VB"),
		UserID:              userID,
		ContactEmail:        req.ContactEmail,
		VenueID:             venueID,
		EventType:           entity.EventType(req.EventType),
		EventDate:           eventDate,
		StartTime:           startTime,
		EndTime:             endTime,
		GuestCount:          req.GuestCount,
		TotalAmount:         total,
		AdvancePayment:      total * advanceShare,
		SpecialRequirements: req.SpecialRequirements,
		Status:              entity.BookingStatusPending,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("reference", booking.Reference),
		zap.String("venue_id", venueID.String()),
		zap.String("user_id", userID.String()),
	)

	resp := response.BookingToResponse(booking, venue.Name)
	return &resp, nil
}

func (s *bookingService) Get(ctx context.Context, actorID uuid.UUID, role, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.UserID != actorID && role != entity.RoleStaff {
		return nil, fmt.Errorf("booking %s belongs to another user: %w", bookingID, entity.ErrForbidden)
	}

	resp := s.toResponse(ctx, booking)

	payments, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	for _, payment := range payments {
		resp.Payments = append(resp.Payments, response.PaymentToResponse(payment))
	}

	return &resp, nil
}

func (s *bookingService) GetByReference(ctx context.Context, actorID uuid.UUID, role, reference string) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", reference, entity.ErrNotFound)
	}

	if booking.UserID != actorID && role != entity.RoleStaff {
		return nil, fmt.Errorf("booking %s belongs to another user: %w", reference, entity.ErrForbidden)
	}

	resp := s.toResponse(ctx, booking)
	return &resp, nil
}

func (s *bookingService) ListByUser(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = s.toResponse(ctx, booking)
	}

	return response.NewPaginatedResponse(bookingResponses, page.Page, page.PerPage, total), nil
}

func (s *bookingService) Cancel(ctx context.Context, actorID uuid.UUID, role, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.UserID != actorID && role != entity.RoleStaff {
		return nil, fmt.Errorf("booking %s belongs to another user: %w", bookingID, entity.ErrForbidden)
	}

	if err := booking.CanTransition(entity.BookingStatusCancelled, role, time.Now()); err != nil {
		return nil, fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, booking.Status, entity.BookingStatusCancelled); err != nil {
		return nil, err
	}
	booking.Status = entity.BookingStatusCancelled

	s.log.Info("Booking cancelled",
		zap.String("reference", booking.Reference),
		zap.String("actor_id", actorID.String()),
	)

	resp := s.toResponse(ctx, booking)
	return &resp, nil
}

func (s *bookingService) Approve(ctx context.Context, role, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := booking.CanTransition(entity.BookingStatusApproved, role, time.Now()); err != nil {
		return nil, fmt.Errorf("approve booking %s: %w", bookingID, err)
	}

	if booking.AdvancePayment > 0 {
		paid, err := s.repo.Payment.SumCompletedByBookingID(ctx, booking.ID)
		if err != nil {
			return nil, err
		}
		if paid < booking.AdvancePayment {
			return nil, fmt.Errorf("booking %s paid %.2f of %.2f advance: %w",
				bookingID, paid, booking.AdvancePayment, entity.ErrAdvanceUnpaid)
		}
	}

	if err := s.repo.Booking.Approve(ctx, booking.ID); err != nil {
		return nil, err
	}
	booking.Status = entity.BookingStatusApproved

	s.log.Info("Booking approved", zap.String("reference", booking.Reference))
	s.notify(booking, "Booking approved",
		fmt.Sprintf("Your booking %s has been approved for %s.", booking.Reference, booking.EventDate.Format("2006-01-02")))

	resp := s.toResponse(ctx, booking)
	return &resp, nil
}

func (s *bookingService) Reject(ctx context.Context, role, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := booking.CanTransition(entity.BookingStatusRejected, role, time.Now()); err != nil {
		return nil, fmt.Errorf("reject booking %s: %w", bookingID, err)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusPending, entity.BookingStatusRejected); err != nil {
		return nil, err
	}
	booking.Status = entity.BookingStatusRejected

	s.log.Info("Booking rejected", zap.String("reference", booking.Reference))
	s.notify(booking, "Booking rejected",
		fmt.Sprintf("Unfortunately your booking %s could not be accommodated.", booking.Reference))

	resp := s.toResponse(ctx, booking)
	return &resp, nil
}

func (s *bookingService) Complete(ctx context.Context, role, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := booking.CanTransition(entity.BookingStatusCompleted, role, time.Now()); err != nil {
		return nil, fmt.Errorf("complete booking %s: %w", bookingID, err)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusApproved, entity.BookingStatusCompleted); err != nil {
		return nil, err
	}
	booking.Status = entity.BookingStatusCompleted

	s.log.Info("Booking completed", zap.String("reference", booking.Reference))

	resp := s.toResponse(ctx, booking)
	return &resp, nil
}

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID %s: %w", bookingID, entity.ErrValidation)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, entity.ErrNotFound)
	}

	return booking, nil
}

// toResponse resolves the venue name best-effort; list endpoints must not
// fail on a stale catalog entry.
func (s *bookingService) toResponse(ctx context.Context, booking *entity.Booking) response.BookingResponse {
	var venueName string
	if venue, err := s.catalog.GetVenue(ctx, booking.VenueID); err == nil {
		venueName = venue.Name
	}
	return response.BookingToResponse(booking, venueName)
}

// notify delivers mail off the request path. Failures are logged by the
// mailer and never affect the booking outcome.
func (s *bookingService) notify(booking *entity.Booking, subject, body string) {
	if booking.ContactEmail == "" {
		return
	}
	go func() {
		_ = s.mail.Send(booking.ContactEmail, subject, body)
	}()
}
