package usecase

import (
	"context"
	"fmt"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TableBookingService interface {
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateTableBookingRequest) (*response.TableBookingResponse, error)
	Get(ctx context.Context, actorID uuid.UUID, role, bookingID string) (*response.TableBookingResponse, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.TableBookingResponse], error)

	Confirm(ctx context.Context, role, bookingID string) (*response.TableBookingResponse, error)
	Cancel(ctx context.Context, actorID uuid.UUID, role, bookingID string) (*response.TableBookingResponse, error)
}

type tableBookingService struct {
	repo    *repository.Repository
	catalog CatalogService
	log     *zap.Logger
}

func NewTableBookingService(repo *repository.Repository, catalog CatalogService, log *zap.Logger) TableBookingService {
	return &tableBookingService{
		repo:    repo,
		catalog: catalog,
		log:     log.With(zap.String("service", "table_booking")),
	}
}

func (s *tableBookingService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateTableBookingRequest) (*response.TableBookingResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), entity.ErrValidation)
	}

	bookingDate, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("invalid booking date %s: %w", req.BookingDate, entity.ErrValidation)
	}
	bookingTime, err := time.Parse("15:04", req.BookingTime)
	if err != nil {
		return nil, fmt.Errorf("invalid booking time %s: %w", req.BookingTime, entity.ErrValidation)
	}

	now := time.Now()
	if bookingDate.Before(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)) {
		return nil, fmt.Errorf("booking date %s: %w", req.BookingDate, entity.ErrPastEvent)
	}

	table, err := s.catalog.GetTableByNumber(ctx, req.TableNumber)
	if err != nil {
		return nil, err
	}
	if !table.IsActive {
		return nil, fmt.Errorf("table %d inactive: %w", req.TableNumber, entity.ErrNotFound)
	}

	if req.GuestCount > table.MaxGuests() {
		return nil, fmt.Errorf("guest count %d exceeds table limit %d: %w", req.GuestCount, table.MaxGuests(), entity.ErrValidation)
	}

	taken, err := s.repo.TableBooking.ExistsForSlot(ctx, req.TableNumber, bookingDate, bookingTime)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("table %d already booked for the requested slot: %w", req.TableNumber, entity.ErrConflict)
	}

	booking := &entity.TableBooking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Reference:       utils.GenerateReference("TB"),
		UserID:          userID,
		TableNumber:     req.TableNumber,
		BookingDate:     bookingDate,
		BookingTime:     bookingTime,
		GuestCount:      req.GuestCount,
		SpecialRequests: req.SpecialRequests,
		Status:          entity.TableBookingStatusPending,
	}

	if err := s.repo.TableBooking.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.log.Info("Table booking created",
		zap.String("reference", booking.Reference),
		zap.Int("table_number", booking.TableNumber),
		zap.String("user_id", userID.String()),
	)

	resp := response.TableBookingToResponse(booking)
	return &resp, nil
}

func (s *tableBookingService) Get(ctx context.Context, actorID uuid.UUID, role, bookingID string) (*response.TableBookingResponse, error) {
	booking, err := s.findTableBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.UserID != actorID && role != entity.RoleStaff {
		return nil, fmt.Errorf("table booking %s belongs to another user: %w", bookingID, entity.ErrForbidden)
	}

	resp := response.TableBookingToResponse(booking)
	return &resp, nil
}

func (s *tableBookingService) ListByUser(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.TableBookingResponse], error) {
	bookings, err := s.repo.TableBooking.FindByUserID(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.TableBooking.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	bookingResponses := make([]response.TableBookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.TableBookingToResponse(booking)
	}

	return response.NewPaginatedResponse(bookingResponses, page.Page, page.PerPage, total), nil
}

func (s *tableBookingService) Confirm(ctx context.Context, role, bookingID string) (*response.TableBookingResponse, error) {
	booking, err := s.findTableBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := booking.CanTransition(entity.TableBookingStatusConfirmed, role, time.Now()); err != nil {
		return nil, fmt.Errorf("confirm table booking %s: %w", bookingID, err)
	}

	if err := s.repo.TableBooking.UpdateStatus(ctx, booking.ID, entity.TableBookingStatusPending, entity.TableBookingStatusConfirmed); err != nil {
		return nil, err
	}
	booking.Status = entity.TableBookingStatusConfirmed

	s.log.Info("Table booking confirmed", zap.String("reference", booking.Reference))

	resp := response.TableBookingToResponse(booking)
	return &resp, nil
}

func (s *tableBookingService) Cancel(ctx context.Context, actorID uuid.UUID, role, bookingID string) (*response.TableBookingResponse, error) {
	booking, err := s.findTableBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.UserID != actorID && role != entity.RoleStaff {
		return nil, fmt.Errorf("table booking %s belongs to another user: %w", bookingID, entity.ErrForbidden)
	}

	if err := booking.CanTransition(entity.TableBookingStatusCancelled, role, time.Now()); err != nil {
		return nil, fmt.Errorf("cancel table booking %s: %w", bookingID, err)
	}

	if err := s.repo.TableBooking.UpdateStatus(ctx, booking.ID, booking.Status, entity.TableBookingStatusCancelled); err != nil {
		return nil, err
	}
	booking.Status = entity.TableBookingStatusCancelled

	s.log.Info("Table booking cancelled",
		zap.String("reference", booking.Reference),
		zap.String("actor_id", actorID.String()),
	)

	resp := response.TableBookingToResponse(booking)
	return &resp, nil
}

func (s *tableBookingService) findTableBooking(ctx context.Context, bookingID string) (*entity.TableBooking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid table booking ID %s: %w", bookingID, entity.ErrValidation)
	}

	booking, err := s.repo.TableBooking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("table booking %s: %w", bookingID, entity.ErrNotFound)
	}

	return booking, nil
}
