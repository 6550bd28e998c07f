package repository

import (
	"context"
	"errors"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// VenueRepository reads catalog data. The booking core never writes venues.
type VenueRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Venue, error)
	FindAllActive(ctx context.Context, limit, offset int) ([]*entity.Venue, error)
	CountActive(ctx context.Context) (int64, error)
}

type venueRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVenueRepository(db database.PgxIface, log *zap.Logger) VenueRepository {
	return &venueRepository{
		db:  db,
		log: log.With(zap.String("repository", "venue")),
	}
}

const venueColumns = `id, name, slug, venue_type, description, capacity, price_per_day, price_per_hour, is_active, is_featured, created_at, updated_at`

func scanVenue(row pgx.Row) (*entity.Venue, error) {
	var venue entity.Venue
	err := row.Scan(
		&venue.ID,
		&venue.Name,
		&venue.Slug,
		&venue.VenueType,
		&venue.Description,
		&venue.Capacity,
		&venue.PricePerDay,
		&venue.PricePerHour,
		&venue.IsActive,
		&venue.IsFeatured,
		&venue.CreatedAt,
		&venue.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`

	venue, err := scanVenue(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find venue by ID",
			zap.Error(err),
			zap.String("venue_id", id.String()),
		)
		return nil, fmt.Errorf("find venue by ID %s: %w", id.String(), err)
	}

	return venue, nil
}

func (r *venueRepository) FindBySlug(ctx context.Context, slug string) (*entity.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE slug = $1`

	venue, err := scanVenue(r.db.QueryRow(ctx, query, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find venue by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find venue by slug %s: %w", slug, err)
	}

	return venue, nil
}

func (r *venueRepository) FindAllActive(ctx context.Context, limit, offset int) ([]*entity.Venue, error) {
	query := `
		SELECT ` + venueColumns + `
		FROM venues
		WHERE is_active = true
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find active venues",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find active venues: %w", err)
	}
	defer rows.Close()

	var venues []*entity.Venue
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			r.log.Error("Failed to scan venue row", zap.Error(err))
			return nil, fmt.Errorf("scan venue row: %w", err)
		}
		venues = append(venues, venue)
	}

	return venues, nil
}

func (r *venueRepository) CountActive(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM venues WHERE is_active = true`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count active venues", zap.Error(err))
		return 0, fmt.Errorf("count active venues: %w", err)
	}

	return count, nil
}
