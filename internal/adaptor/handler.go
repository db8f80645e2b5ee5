package adaptor

import (
	"hostel-booking/internal/usecase"

	"go.uber.org/zap"
)

// Handler groups every HTTP handler in the app
type Handler struct {
	Auth         *AuthHandler
	Room         *RoomHandler
	Availability *AvailabilityHandler
	Reservation  *ReservationHandler
	Hook         *HookHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		Room:         NewRoomHandler(service.Room, log),
		Availability: NewAvailabilityHandler(service.Availability, log),
		Reservation:  NewReservationHandler(service.Reservation, log),
		Hook:         NewHookHandler(service.Reservation, log),
	}
}
