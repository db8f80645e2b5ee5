package wire

import (
	"hostel-booking/internal/adaptor"
	"hostel-booking/internal/data/repository"
	"hostel-booking/pkg/middleware"
	"hostel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/rooms - List rooms with their beds
	r.Get("/api/rooms", roomHandler.GetRooms)

	// GET /api/rooms/{id} - Room details with beds
	r.Get("/api/rooms/{id}", roomHandler.GetRoomByID)

	// GET /api/beds - Flat bed inventory
	r.Get("/api/beds", roomHandler.GetBeds)

	// ==================== ADMIN ROUTES ====================
	// Inventory management routes
	r.Route("/api/admin/rooms", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		// POST /api/admin/rooms - Create room (admin)
		r.Post("/", roomHandler.CreateRoom)

		// PUT /api/admin/rooms/{id} - Update room (admin)
		r.Put("/{id}", roomHandler.UpdateRoom)

		// DELETE /api/admin/rooms/{id} - Delete room (admin)
		r.Delete("/{id}", roomHandler.DeleteRoom)
	})
}
