package request

type CreateTableBookingRequest struct {
	TableNumber     int    `json:"table_number" validate:"required,min=1"`
	BookingDate     string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	BookingTime     string `json:"booking_time" validate:"required,datetime=15:04"`
	GuestCount      int    `json:"guest_count" validate:"required,min=1,max=10"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=2000"`
}
