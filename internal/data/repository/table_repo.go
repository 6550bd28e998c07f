package repository

import (
	"context"
	"errors"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// TableRepository reads restaurant tables from the catalog.
type TableRepository interface {
	FindByNumber(ctx context.Context, tableNumber int) (*entity.Table, error)
	FindAllActive(ctx context.Context) ([]*entity.Table, error)
}

type tableRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTableRepository(db database.PgxIface, log *zap.Logger) TableRepository {
	return &tableRepository{
		db:  db,
		log: log.With(zap.String("repository", "table")),
	}
}

func (r *tableRepository) FindByNumber(ctx context.Context, tableNumber int) (*entity.Table, error) {
	query := `
		SELECT id, table_number, capacity, is_active, created_at
		FROM tables
		WHERE table_number = $1
	`

	var table entity.Table
	err := r.db.QueryRow(ctx, query, tableNumber).Scan(
		&table.ID,
		&table.TableNumber,
		&table.Capacity,
		&table.IsActive,
		&table.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find table by number",
			zap.Error(err),
			zap.Int("table_number", tableNumber),
		)
		return nil, fmt.Errorf("find table by number %d: %w", tableNumber, err)
	}

	return &table, nil
}

func (r *tableRepository) FindAllActive(ctx context.Context) ([]*entity.Table, error) {
	query := `
		SELECT id, table_number, capacity, is_active, created_at
		FROM tables
		WHERE is_active = true
		ORDER BY table_number
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find active tables", zap.Error(err))
		return nil, fmt.Errorf("find active tables: %w", err)
	}
	defer rows.Close()

	var tables []*entity.Table
	for rows.Next() {
		var table entity.Table
		err := rows.Scan(
			&table.ID,
			&table.TableNumber,
			&table.Capacity,
			&table.IsActive,
			&table.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan table row", zap.Error(err))
			return nil, fmt.Errorf("scan table row: %w", err)
		}
		tables = append(tables, &table)
	}

	return tables, nil
}
