package entity

import "github.com/google/uuid"

type BedType string

const (
	BedTypeSingle     BedType = "single"
	BedTypeDouble     BedType = "double"
	BedTypeBunkTop    BedType = "bunk_top"
	BedTypeBunkBottom BedType = "bunk_bottom"
)

// Bed is immutable inventory. Number is unique within the owning room.
// Reservations reference beds by ID and are queried on demand.
type Bed struct {
	Base
	RoomID uuid.UUID `db:"room_id"`
	Number int       `db:"number"`
	Type   BedType   `db:"type"`
}
