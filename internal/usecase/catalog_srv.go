package usecase

import (
	"context"
	"fmt"

	"venue-booking/internal/data/cache"
	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService reads the venue/table catalog. The booking core treats the
// catalog as an external collaborator and never mutates it.
type CatalogService interface {
	GetVenue(ctx context.Context, venueID uuid.UUID) (*entity.Venue, error)
	GetTableByNumber(ctx context.Context, tableNumber int) (*entity.Table, error)

	ListVenues(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.VenueResponse], error)
	GetVenueResponse(ctx context.Context, venueID string) (*response.VenueResponse, error)
	ListTables(ctx context.Context) ([]response.TableResponse, error)
}

type catalogService struct {
	repo  *repository.Repository
	cache cache.CatalogCache // optional, may be nil
	log   *zap.Logger
}

func NewCatalogService(repo *repository.Repository, catalogCache cache.CatalogCache, log *zap.Logger) CatalogService {
	return &catalogService{
		repo:  repo,
		cache: catalogCache,
		log:   log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) GetVenue(ctx context.Context, venueID uuid.UUID) (*entity.Venue, error) {
	if s.cache != nil {
		venue, err := s.cache.GetVenue(ctx, venueID)
		if err != nil {
			// Cache trouble is not fatal; fall through to the database.
			s.log.Warn("Venue cache read failed", zap.Error(err), zap.String("venue_id", venueID.String()))
		} else if venue != nil {
			return venue, nil
		}
	}

	venue, err := s.repo.Venue.FindByID(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}
	if venue == nil {
		return nil, fmt.Errorf("venue %s: %w", venueID.String(), entity.ErrNotFound)
	}

	if s.cache != nil {
		if err := s.cache.SetVenue(ctx, venue); err != nil {
			s.log.Warn("Venue cache write failed", zap.Error(err), zap.String("venue_id", venueID.String()))
		}
	}

	return venue, nil
}

func (s *catalogService) GetTableByNumber(ctx context.Context, tableNumber int) (*entity.Table, error) {
	if s.cache != nil {
		table, err := s.cache.GetTable(ctx, tableNumber)
		if err != nil {
			s.log.Warn("Table cache read failed", zap.Error(err), zap.Int("table_number", tableNumber))
		} else if table != nil {
			return table, nil
		}
	}

	table, err := s.repo.Table.FindByNumber(ctx, tableNumber)
	if err != nil {
		return nil, fmt.Errorf("get table: %w", err)
	}
	if table == nil {
		return nil, fmt.Errorf("table %d: %w", tableNumber, entity.ErrNotFound)
	}

	if s.cache != nil {
		if err := s.cache.SetTable(ctx, table); err != nil {
			s.log.Warn("Table cache write failed", zap.Error(err), zap.Int("table_number", tableNumber))
		}
	}

	return table, nil
}

func (s *catalogService) ListVenues(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.VenueResponse], error) {
	venues, err := s.repo.Venue.FindAllActive(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list venues", zap.Error(err))
		return nil, fmt.Errorf("list venues: %w", err)
	}

	total, err := s.repo.Venue.CountActive(ctx)
	if err != nil {
		s.log.Error("Failed to count venues", zap.Error(err))
		return nil, fmt.Errorf("count venues: %w", err)
	}

	venueResponses := make([]response.VenueResponse, len(venues))
	for i, venue := range venues {
		venueResponses[i] = response.VenueToResponse(venue)
	}

	return response.NewPaginatedResponse(venueResponses, req.Page, req.PerPage, total), nil
}

func (s *catalogService) GetVenueResponse(ctx context.Context, venueID string) (*response.VenueResponse, error) {
	id, err := uuid.Parse(venueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID %s: %w", venueID, entity.ErrValidation)
	}

	venue, err := s.GetVenue(ctx, id)
	if err != nil {
		return nil, err
	}
	if !venue.IsActive {
		return nil, fmt.Errorf("venue %s inactive: %w", venueID, entity.ErrNotFound)
	}

	resp := response.VenueToResponse(venue)
	return &resp, nil
}

func (s *catalogService) ListTables(ctx context.Context) ([]response.TableResponse, error) {
	tables, err := s.repo.Table.FindAllActive(ctx)
	if err != nil {
		s.log.Error("Failed to list tables", zap.Error(err))
		return nil, fmt.Errorf("list tables: %w", err)
	}

	tableResponses := make([]response.TableResponse, len(tables))
	for i, table := range tables {
		tableResponses[i] = response.TableToResponse(table)
	}

	return tableResponses, nil
}
