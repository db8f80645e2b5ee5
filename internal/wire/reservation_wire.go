package wire

import (
	"hostel-booking/internal/adaptor"
	"hostel-booking/internal/data/repository"
	"hostel-booking/pkg/middleware"
	"hostel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	hookHandler *adaptor.HookHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/hooks/reservations - Booking widget intake (public)
	r.Post("/api/hooks/reservations", hookHandler.CreateReservation)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/reservations - Create reservation (staff)
		r.Post("/api/reservations", reservationHandler.CreateReservation)

		// GET /api/reservations - List reservations, newest first
		r.Get("/api/reservations", reservationHandler.GetReservations)

		// GET /api/reservations/{id} - Reservation details
		r.Get("/api/reservations/{id}", reservationHandler.GetReservationByID)

		// PUT /api/reservations/{id} - Update dates, bed, status or guest contact
		r.Put("/api/reservations/{id}", reservationHandler.UpdateReservation)

		// DELETE /api/reservations/{id} - Remove reservation
		r.Delete("/api/reservations/{id}", reservationHandler.DeleteReservation)
	})
}
