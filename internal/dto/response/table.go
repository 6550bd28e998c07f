package response

import (
	"venue-booking/internal/data/entity"
)

type TableResponse struct {
	ID          string `json:"id"`
	TableNumber int    `json:"table_number"`
	Capacity    int    `json:"capacity"`
	MaxGuests   int    `json:"max_guests"`
}

func TableToResponse(table *entity.Table) TableResponse {
	return TableResponse{
		ID:          table.ID.String(),
		TableNumber: table.TableNumber,
		Capacity:    table.Capacity,
		MaxGuests:   table.MaxGuests(),
	}
}
