package usecase

import (
	"time"

	"hostel-booking/internal/data/entity"

	"github.com/google/uuid"
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share at least one day. Equal boundaries do not overlap:
// a checkout on day D leaves the bed free for a check-in on day D.
// Degenerate inputs (end <= start) must be rejected before calling this.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// OccupiedBedIDs collects the beds held by a confirmed reservation that
// overlaps [checkIn, checkOut).
func OccupiedBedIDs(reservations []*entity.Reservation, checkIn, checkOut time.Time) map[uuid.UUID]struct{} {
	occupied := make(map[uuid.UUID]struct{})
	for _, reservation := range reservations {
		if reservation.Status != entity.ReservationStatusConfirmed {
			continue
		}
		if Overlaps(checkIn, checkOut, reservation.CheckIn, reservation.CheckOut) {
			occupied[reservation.BedID] = struct{}{}
		}
	}
	return occupied
}

// FindAvailableBed returns the first bed in listing order that has no
// overlapping confirmed reservation. First-fit, no weighting: the second
// result is false when every bed is occupied, which callers surface as a
// no-availability condition rather than an error.
func FindAvailableBed(beds []*entity.Bed, reservations []*entity.Reservation, checkIn, checkOut time.Time) (*entity.Bed, bool) {
	occupied := OccupiedBedIDs(reservations, checkIn, checkOut)
	for _, bed := range beds {
		if _, taken := occupied[bed.ID]; !taken {
			return bed, true
		}
	}
	return nil, false
}

// BedStatus classifies one bed for a requested range. Conflicts holds every
// confirmed reservation blocking the bed, not just the first, so operators
// can see exactly what is in the way.
type BedStatus struct {
	Bed       *entity.Bed
	Available bool
	Conflicts []*entity.Reservation
}

// ClassifyBeds evaluates every bed against the full reservation list.
func ClassifyBeds(beds []*entity.Bed, reservations []*entity.Reservation, checkIn, checkOut time.Time) []BedStatus {
	statuses := make([]BedStatus, 0, len(beds))
	for _, bed := range beds {
		status := BedStatus{Bed: bed, Available: true}
		for _, reservation := range reservations {
			if reservation.BedID != bed.ID || reservation.Status != entity.ReservationStatusConfirmed {
				continue
			}
			if Overlaps(checkIn, checkOut, reservation.CheckIn, reservation.CheckOut) {
				status.Available = false
				status.Conflicts = append(status.Conflicts, reservation)
			}
		}
		statuses = append(statuses, status)
	}
	return statuses
}
