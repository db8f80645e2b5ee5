package entity

type RoomType string

const (
	RoomTypePension    RoomType = "pension"
	RoomTypeHostelDorm RoomType = "hostel_dorm"
)

// Room is seeded once and rarely mutated. Capacity equals the number of
// beds the room owns.
type Room struct {
	Base
	Name     string   `db:"name"`
	Type     RoomType `db:"type"`
	Capacity int      `db:"capacity"`
}
