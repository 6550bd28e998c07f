package wire

import (
	"venue-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireVenue(r chi.Router, venueHandler *adaptor.VenueHandler) {
	// Catalog reads are public
	r.Get("/api/venues", venueHandler.ListVenues)
	r.Get("/api/venues/{id}", venueHandler.GetVenue)
	r.Get("/api/tables", venueHandler.ListTables)
}
