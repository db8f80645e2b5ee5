package usecase

import (
	"testing"
	"time"

	"hostel-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func confirmedReservation(bedID uuid.UUID, checkIn, checkOut string) *entity.Reservation {
	return &entity.Reservation{
		Base:     entity.Base{ID: uuid.New()},
		BedID:    bedID,
		GuestID:  uuid.New(),
		CheckIn:  date(checkIn),
		CheckOut: date(checkOut),
		Status:   entity.ReservationStatusConfirmed,
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart string
		aEnd   string
		bStart string
		bEnd   string
		want   bool
	}{
		{"checkout day equals check-in day", "2025-01-01", "2025-01-05", "2025-01-05", "2025-01-08", false},
		{"one shared night", "2025-01-01", "2025-01-05", "2025-01-04", "2025-01-08", true},
		{"identical ranges", "2025-01-01", "2025-01-05", "2025-01-01", "2025-01-05", true},
		{"fully contained", "2025-01-01", "2025-01-10", "2025-01-03", "2025-01-05", true},
		{"disjoint", "2025-01-01", "2025-01-03", "2025-01-10", "2025-01-12", false},
		{"touching the other way", "2025-01-05", "2025-01-08", "2025-01-01", "2025-01-05", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(date(tt.aStart), date(tt.aEnd), date(tt.bStart), date(tt.bEnd))
			assert.Equal(t, tt.want, got)

			// The predicate is symmetric
			swapped := Overlaps(date(tt.bStart), date(tt.bEnd), date(tt.aStart), date(tt.aEnd))
			assert.Equal(t, got, swapped)
		})
	}
}

func TestOccupiedBedIDs(t *testing.T) {
	bed1 := uuid.New()
	bed2 := uuid.New()
	bed3 := uuid.New()

	cancelled := confirmedReservation(bed3, "2025-01-02", "2025-01-04")
	cancelled.Status = entity.ReservationStatusCancelled

	reservations := []*entity.Reservation{
		confirmedReservation(bed1, "2025-01-02", "2025-01-04"),
		confirmedReservation(bed2, "2025-01-05", "2025-01-08"),
		cancelled,
	}

	occupied := OccupiedBedIDs(reservations, date("2025-01-01"), date("2025-01-05"))

	assert.Contains(t, occupied, bed1)
	assert.NotContains(t, occupied, bed2, "reservation starting on checkout day does not block")
	assert.NotContains(t, occupied, bed3, "cancelled reservations never block")
}

func TestFindAvailableBed_FirstFit(t *testing.T) {
	roomID := uuid.New()
	b1 := &entity.Bed{Base: entity.Base{ID: uuid.New()}, RoomID: roomID, Number: 1, Type: entity.BedTypeSingle}
	b2 := &entity.Bed{Base: entity.Base{ID: uuid.New()}, RoomID: roomID, Number: 2, Type: entity.BedTypeSingle}
	b3 := &entity.Bed{Base: entity.Base{ID: uuid.New()}, RoomID: roomID, Number: 3, Type: entity.BedTypeSingle}
	beds := []*entity.Bed{b1, b2, b3}

	t.Run("empty house picks the first bed", func(t *testing.T) {
		bed, ok := FindAvailableBed(beds, nil, date("2025-01-01"), date("2025-01-05"))
		assert.True(t, ok)
		assert.Equal(t, b1.ID, bed.ID)
	})

	t.Run("skips occupied beds in order", func(t *testing.T) {
		reservations := []*entity.Reservation{
			confirmedReservation(b1.ID, "2025-01-01", "2025-01-05"),
		}
		bed, ok := FindAvailableBed(beds, reservations, date("2025-01-03"), date("2025-01-06"))
		assert.True(t, ok)
		assert.Equal(t, b2.ID, bed.ID)
	})

	t.Run("bed freed by a boundary touch is picked again", func(t *testing.T) {
		reservations := []*entity.Reservation{
			confirmedReservation(b1.ID, "2025-01-01", "2025-01-05"),
		}
		bed, ok := FindAvailableBed(beds, reservations, date("2025-01-05"), date("2025-01-08"))
		assert.True(t, ok)
		assert.Equal(t, b1.ID, bed.ID)
	})

	t.Run("full house yields no bed", func(t *testing.T) {
		reservations := []*entity.Reservation{
			confirmedReservation(b1.ID, "2025-01-01", "2025-01-05"),
			confirmedReservation(b2.ID, "2025-01-02", "2025-01-06"),
			confirmedReservation(b3.ID, "2025-01-03", "2025-01-07"),
		}
		bed, ok := FindAvailableBed(beds, reservations, date("2025-01-03"), date("2025-01-05"))
		assert.False(t, ok)
		assert.Nil(t, bed)
	})
}

func TestClassifyBeds(t *testing.T) {
	roomID := uuid.New()
	b1 := &entity.Bed{Base: entity.Base{ID: uuid.New()}, RoomID: roomID, Number: 1, Type: entity.BedTypeBunkBottom}
	b2 := &entity.Bed{Base: entity.Base{ID: uuid.New()}, RoomID: roomID, Number: 2, Type: entity.BedTypeBunkTop}

	first := confirmedReservation(b1.ID, "2025-01-01", "2025-01-03")
	second := confirmedReservation(b1.ID, "2025-01-03", "2025-01-06")

	statuses := ClassifyBeds([]*entity.Bed{b1, b2}, []*entity.Reservation{first, second}, date("2025-01-02"), date("2025-01-05"))

	assert.Len(t, statuses, 2)

	assert.False(t, statuses[0].Available)
	assert.Len(t, statuses[0].Conflicts, 2, "every blocking reservation is listed")

	assert.True(t, statuses[1].Available)
	assert.Empty(t, statuses[1].Conflicts)
}
