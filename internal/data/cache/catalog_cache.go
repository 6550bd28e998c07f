package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"venue-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CatalogCache is a read-through cache over catalog lookups. The catalog is
// read-only from the booking core, so stale entries only outlive catalog
// edits by the TTL.
type CatalogCache interface {
	GetVenue(ctx context.Context, id uuid.UUID) (*entity.Venue, error)
	SetVenue(ctx context.Context, venue *entity.Venue) error
	GetTable(ctx context.Context, tableNumber int) (*entity.Table, error)
	SetTable(ctx context.Context, table *entity.Table) error
}

type catalogCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewCatalogCache(client *redis.Client, ttl time.Duration, log *zap.Logger) CatalogCache {
	return &catalogCache{
		client: client,
		ttl:    ttl,
		log:    log.With(zap.String("cache", "catalog")),
	}
}

func venueKey(id uuid.UUID) string {
	return "catalog:venue:" + id.String()
}

func tableKey(tableNumber int) string {
	return fmt.Sprintf("catalog:table:%d", tableNumber)
}

func (c *catalogCache) GetVenue(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	data, err := c.client.Get(ctx, venueKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get venue %s: %w", id.String(), err)
	}

	var venue entity.Venue
	if err := json.Unmarshal(data, &venue); err != nil {
		// Treat a corrupt entry as a miss and drop it.
		c.log.Warn("Dropping corrupt venue cache entry",
			zap.Error(err),
			zap.String("venue_id", id.String()),
		)
		c.client.Del(ctx, venueKey(id))
		return nil, nil
	}

	return &venue, nil
}

func (c *catalogCache) SetVenue(ctx context.Context, venue *entity.Venue) error {
	data, err := json.Marshal(venue)
	if err != nil {
		return fmt.Errorf("marshal venue %s: %w", venue.ID.String(), err)
	}

	if err := c.client.Set(ctx, venueKey(venue.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set venue %s: %w", venue.ID.String(), err)
	}

	return nil
}

func (c *catalogCache) GetTable(ctx context.Context, tableNumber int) (*entity.Table, error) {
	data, err := c.client.Get(ctx, tableKey(tableNumber)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get table %d: %w", tableNumber, err)
	}

	var table entity.Table
	if err := json.Unmarshal(data, &table); err != nil {
		c.log.Warn("Dropping corrupt table cache entry",
			zap.Error(err),
			zap.Int("table_number", tableNumber),
		)
		c.client.Del(ctx, tableKey(tableNumber))
		return nil, nil
	}

	return &table, nil
}

func (c *catalogCache) SetTable(ctx context.Context, table *entity.Table) error {
	data, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("marshal table %d: %w", table.TableNumber, err)
	}

	if err := c.client.Set(ctx, tableKey(table.TableNumber), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set table %d: %w", table.TableNumber, err)
	}

	return nil
}
