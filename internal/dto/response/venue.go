package response

import (
	"venue-booking/internal/data/entity"
)

type VenueResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Slug         string           `json:"slug"`
	VenueType    entity.VenueType `json:"venue_type"`
	Description  string           `json:"description"`
	Capacity     int              `json:"capacity"`
	PricePerDay  float64          `json:"price_per_day"`
	PricePerHour float64          `json:"price_per_hour,omitempty"`
	IsFeatured   bool             `json:"is_featured"`
}

func VenueToResponse(venue *entity.Venue) VenueResponse {
	return VenueResponse{
		ID:           venue.ID.String(),
		Name:         venue.Name,
		Slug:         venue.Slug,
		VenueType:    venue.VenueType,
		Description:  venue.Description,
		Capacity:     venue.Capacity,
		PricePerDay:  venue.PricePerDay,
		PricePerHour: venue.PricePerHour,
		IsFeatured:   venue.IsFeatured,
	}
}
