package usecase

import (
	"hostel-booking/internal/data/repository"
	"hostel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Room         RoomService
	Availability AvailabilityService
	Reservation  ReservationService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:         NewAuthService(repo, config, log),
		Room:         NewRoomService(repo, config, log),
		Availability: NewAvailabilityService(repo, log),
		Reservation:  NewReservationService(repo, log),
	}
}
