package entity

type VenueType string

const (
	VenueTypeMarriageHall   VenueType = "marriage_hall"
	VenueTypeGardenLawn     VenueType = "garden_lawn"
	VenueTypeConferenceRoom VenueType = "conference_room"
	VenueTypeOutdoorSpace   VenueType = "outdoor_space"
)

// Venue is catalog data. The booking core reads it and never writes it.
type Venue struct {
	Base
	Name         string    `db:"name"`
	Slug         string    `db:"slug"`
	VenueType    VenueType `db:"venue_type"`
	Description  string    `db:"description"`
	Capacity     int       `db:"capacity"`
	PricePerDay  float64   `db:"price_per_day"`
	PricePerHour float64   `db:"price_per_hour"`
	IsActive     bool      `db:"is_active"`
	IsFeatured   bool      `db:"is_featured"`
}
