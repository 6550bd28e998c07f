package request

type CreateBookingRequest struct {
	VenueID             string `json:"venue_id" validate:"required,uuid4"`
	ContactEmail        string `json:"contact_email" validate:"required,email"`
	EventType           string `json:"event_type" validate:"required,oneof=wedding birthday corporate reception other"`
	EventDate           string `json:"event_date" validate:"required,datetime=2006-01-02"`
	StartTime           string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime             string `json:"end_time" validate:"required,datetime=15:04"`
	GuestCount          int    `json:"guest_count" validate:"required,min=1"`
	SpecialRequirements string `json:"special_requirements" validate:"omitempty,max=2000"`
}
