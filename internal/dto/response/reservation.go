package response

import (
	"time"

	"hostel-booking/internal/data/entity"
)

type GuestResponse struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	IDNumber string `json:"idNumber"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Age      *int   `json:"age"`
	Country  string `json:"country"`
}

type BedInfoResponse struct {
	BedID     string `json:"bedId"`
	BedNumber int    `json:"bedNumber"`
	BedType   string `json:"bedType"`
	RoomID    string `json:"roomId"`
	RoomName  string `json:"roomName,omitempty"`
}

// ReservationResponse is the denormalized view joining guest and bed/room
// data, matching what calendar and booking clients consume.
type ReservationResponse struct {
	ID        string           `json:"id"`
	BedID     string           `json:"bedId"`
	CheckIn   string           `json:"checkIn"`
	CheckOut  string           `json:"checkOut"`
	Status    string           `json:"status"`
	Notes     *string          `json:"notes,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	Guest     GuestResponse    `json:"guest"`
	BedInfo   *BedInfoResponse `json:"bedInfo,omitempty"`
}

// Helper converters

func GuestToResponse(guest *entity.Guest) GuestResponse {
	return GuestResponse{
		Name:     guest.Name,
		LastName: guest.LastName,
		IDNumber: guest.IDNumber,
		Phone:    guest.Phone,
		Email:    guest.Email,
		Age:      guest.Age,
		Country:  guest.Country,
	}
}

func ReservationToResponse(reservation *entity.Reservation, guest *entity.Guest, bed *entity.Bed, room *entity.Room) *ReservationResponse {
	resp := &ReservationResponse{
		ID:        reservation.ID.String(),
		BedID:     reservation.BedID.String(),
		CheckIn:   reservation.CheckIn.Format("2006-01-02"),
		CheckOut:  reservation.CheckOut.Format("2006-01-02"),
		Status:    string(reservation.Status),
		Notes:     reservation.Notes,
		CreatedAt: reservation.CreatedAt,
	}

	if guest != nil {
		resp.Guest = GuestToResponse(guest)
	}

	if bed != nil {
		info := &BedInfoResponse{
			BedID:     bed.ID.String(),
			BedNumber: bed.Number,
			BedType:   string(bed.Type),
			RoomID:    bed.RoomID.String(),
		}
		if room != nil {
			info.RoomName = room.Name
		}
		resp.BedInfo = info
	}

	return resp
}
