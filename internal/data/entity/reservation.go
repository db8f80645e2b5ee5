package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// Reservation occupies one bed for the half-open interval
// [CheckIn, CheckOut). Equal boundaries do not conflict: a bed vacated
// on day D can be handed to a guest checking in on day D.
type Reservation struct {
	Base
	BedID    uuid.UUID         `db:"bed_id"`
	GuestID  uuid.UUID         `db:"guest_id"`
	CheckIn  time.Time         `db:"check_in"`
	CheckOut time.Time         `db:"check_out"`
	Status   ReservationStatus `db:"status"`
	Notes    *string           `db:"notes"`
}
