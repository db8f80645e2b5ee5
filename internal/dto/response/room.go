package response

import (
	"time"

	"hostel-booking/internal/data/entity"
)

type RoomResponse struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Type      string        `json:"type"`
	Capacity  int           `json:"capacity"`
	Beds      []BedResponse `json:"beds,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type BedResponse struct {
	ID     string `json:"id"`
	RoomID string `json:"roomId"`
	Number int    `json:"number"`
	Type   string `json:"type"`
}

// Helper converters

func RoomToResponse(room *entity.Room, beds []*entity.Bed) *RoomResponse {
	resp := &RoomResponse{
		ID:        room.ID.String(),
		Name:      room.Name,
		Type:      string(room.Type),
		Capacity:  room.Capacity,
		CreatedAt: room.CreatedAt,
		UpdatedAt: room.UpdatedAt,
	}
	for _, bed := range beds {
		resp.Beds = append(resp.Beds, BedToResponse(bed))
	}
	return resp
}

func BedToResponse(bed *entity.Bed) BedResponse {
	return BedResponse{
		ID:     bed.ID.String(),
		RoomID: bed.RoomID.String(),
		Number: bed.Number,
		Type:   string(bed.Type),
	}
}
