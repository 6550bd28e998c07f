package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

type TableBookingResponse struct {
	ID              string                    `json:"id"`
	Reference       string                    `json:"reference"`
	UserID          string                    `json:"user_id"`
	TableNumber     int                       `json:"table_number"`
	BookingDate     string                    `json:"booking_date"`
	BookingTime     string                    `json:"booking_time"`
	GuestCount      int                       `json:"guest_count"`
	SpecialRequests string                    `json:"special_requests,omitempty"`
	Status          entity.TableBookingStatus `json:"status"`
	CreatedAt       time.Time                 `json:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
}

func TableBookingToResponse(booking *entity.TableBooking) TableBookingResponse {
	return TableBookingResponse{
		ID:              booking.ID.String(),
		Reference:       booking.Reference,
		UserID:          booking.UserID.String(),
		TableNumber:     booking.TableNumber,
		BookingDate:     booking.BookingDate.Format("2006-01-02"),
		BookingTime:     booking.BookingTime.Format("15:04"),
		GuestCount:      booking.GuestCount,
		SpecialRequests: booking.SpecialRequests,
		Status:          booking.Status,
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}
