package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

type BookingResponse struct {
	ID                  string               `json:"id"`
	Reference           string               `json:"reference"`
	UserID              string               `json:"user_id"`
	VenueID             string               `json:"venue_id"`
	VenueName           string               `json:"venue_name,omitempty"`
	EventType           entity.EventType     `json:"event_type"`
	EventDate           string               `json:"event_date"`
	StartTime           string               `json:"start_time"`
	EndTime             string               `json:"end_time"`
	GuestCount          int                  `json:"guest_count"`
	TotalAmount         float64              `json:"total_amount"`
	AdvancePayment      float64              `json:"advance_payment"`
	SpecialRequirements string               `json:"special_requirements,omitempty"`
	Status              entity.BookingStatus `json:"status"`
	Payments            []PaymentResponse    `json:"payments,omitempty"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

func BookingToResponse(booking *entity.Booking, venueName string) BookingResponse {
	return BookingResponse{
		ID:                  booking.ID.String(),
		Reference:           booking.Reference,
		UserID:              booking.UserID.String(),
		VenueID:             booking.VenueID.String(),
		VenueName:           venueName,
		EventType:           booking.EventType,
		EventDate:           booking.EventDate.Format("2006-01-02"),
		StartTime:           booking.StartTime.Format("15:04"),
		EndTime:             booking.EndTime.Format("15:04"),
		GuestCount:          booking.GuestCount,
		TotalAmount:         booking.TotalAmount,
		AdvancePayment:      booking.AdvancePayment,
		SpecialRequirements: booking.SpecialRequirements,
		Status:              booking.Status,
		CreatedAt:           booking.CreatedAt,
		UpdatedAt:           booking.UpdatedAt,
	}
}
