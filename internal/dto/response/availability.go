package response

// ConflictResponse is a compact view of a reservation blocking a bed,
// shown to operators in the availability search.
type ConflictResponse struct {
	ReservationID string `json:"reservationId"`
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`
	GuestName     string `json:"guestName,omitempty"`
}

type BedAvailabilityResponse struct {
	Bed         BedResponse        `json:"bed"`
	IsAvailable bool               `json:"isAvailable"`
	Conflicts   []ConflictResponse `json:"conflicts,omitempty"`
}

type RoomAvailabilityResponse struct {
	RoomID   string                    `json:"roomId"`
	RoomName string                    `json:"roomName"`
	RoomType string                    `json:"roomType"`
	Beds     []BedAvailabilityResponse `json:"beds"`
}

type AvailabilityResponse struct {
	CheckIn       string                     `json:"checkIn"`
	CheckOut      string                     `json:"checkOut"`
	TotalBeds     int                        `json:"totalBeds"`
	AvailableBeds int                        `json:"availableBeds"`
	Rooms         []RoomAvailabilityResponse `json:"rooms"`
}
