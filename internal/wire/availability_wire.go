package wire

import (
	"hostel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAvailability(r chi.Router, availabilityHandler *adaptor.AvailabilityHandler) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/availability?checkIn=&checkOut=&type= - Per-bed availability
	r.Get("/api/availability", availabilityHandler.SearchAvailability)

	// GET /api/stats?type=&roomId= - Occupancy dashboard numbers
	r.Get("/api/stats", availabilityHandler.GetStatistics)
}
