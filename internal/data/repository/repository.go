package repository

import (
	"hostel-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	Room        RoomRepository
	Bed         BedRepository
	Guest       GuestRepository
	Reservation ReservationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Room:        NewRoomRepository(db, log),
		Bed:         NewBedRepository(db, log),
		Guest:       NewGuestRepository(db, log),
		Reservation: NewReservationRepository(db, log),
	}
}
