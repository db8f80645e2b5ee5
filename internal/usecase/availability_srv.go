package usecase

import (
	"context"
	"fmt"
	"math"

	"hostel-booking/internal/data/entity"
	"hostel-booking/internal/data/repository"
	"hostel-booking/internal/dto/request"
	"hostel-booking/internal/dto/response"
	"hostel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AvailabilityService interface {
	// SearchAvailability classifies every bed in the (optionally filtered)
	// room set for a date range, listing the conflicting reservations on
	// occupied beds.
	SearchAvailability(ctx context.Context, req *request.AvailabilitySearchRequest) (*response.AvailabilityResponse, error)
	// GetStatistics reports the occupancy dashboard numbers for today.
	GetStatistics(ctx context.Context, roomType, roomID string) (*response.StatsResponse, error)
}

type availabilityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAvailabilityService(repo *repository.Repository, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo: repo,
		log:  log.With(zap.String("service", "availability")),
	}
}

func (s *availabilityService) SearchAvailability(ctx context.Context, req *request.AvailabilitySearchRequest) (*response.AvailabilityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Availability search validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	checkIn, checkOut, err := parseStayDates(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	rooms, beds, err := s.loadInventory(ctx, req.Type, "")
	if err != nil {
		return nil, err
	}

	// Occupancy is always read fresh from the store
	overlapping, err := s.repo.Reservation.FindOverlappingConfirmed(ctx, checkIn, checkOut)
	if err != nil {
		s.log.Error("Failed to load overlapping reservations", zap.Error(err))
		return nil, fmt.Errorf("check availability: %w", err)
	}

	guestNames := s.guestNamesFor(ctx, overlapping)

	result := &response.AvailabilityResponse{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
	}

	bedsByRoom := make(map[uuid.UUID][]*entity.Bed)
	for _, bed := range beds {
		bedsByRoom[bed.RoomID] = append(bedsByRoom[bed.RoomID], bed)
	}

	for _, room := range rooms {
		roomResult := response.RoomAvailabilityResponse{
			RoomID:   room.ID.String(),
			RoomName: room.Name,
			RoomType: string(room.Type),
		}

		for _, status := range ClassifyBeds(bedsByRoom[room.ID], overlapping, checkIn, checkOut) {
			bedResult := response.BedAvailabilityResponse{
				Bed:         response.BedToResponse(status.Bed),
				IsAvailable: status.Available,
			}
			for _, conflict := range status.Conflicts {
				bedResult.Conflicts = append(bedResult.Conflicts, response.ConflictResponse{
					ReservationID: conflict.ID.String(),
					CheckIn:       utils.FormatDate(conflict.CheckIn),
					CheckOut:      utils.FormatDate(conflict.CheckOut),
					GuestName:     guestNames[conflict.GuestID],
				})
			}

			result.TotalBeds++
			if status.Available {
				result.AvailableBeds++
			}
			roomResult.Beds = append(roomResult.Beds, bedResult)
		}

		result.Rooms = append(result.Rooms, roomResult)
	}

	s.log.Info("Availability search",
		zap.String("check_in", req.CheckIn),
		zap.String("check_out", req.CheckOut),
		zap.String("type", req.Type),
		zap.Int("total_beds", result.TotalBeds),
		zap.Int("available_beds", result.AvailableBeds),
	)

	return result, nil
}

func (s *availabilityService) GetStatistics(ctx context.Context, roomType, roomID string) (*response.StatsResponse, error) {
	rooms, beds, err := s.loadInventory(ctx, roomType, roomID)
	if err != nil {
		return nil, err
	}

	// Guests currently in house: confirmed reservations covering today
	today := utils.Today()
	active, err := s.repo.Reservation.FindOverlappingConfirmed(ctx, today, today.AddDate(0, 0, 1))
	if err != nil {
		s.log.Error("Failed to load active reservations", zap.Error(err))
		return nil, fmt.Errorf("load active reservations: %w", err)
	}

	bedSet := make(map[uuid.UUID]struct{}, len(beds))
	for _, bed := range beds {
		bedSet[bed.ID] = struct{}{}
	}

	stats := &response.StatsResponse{
		TotalRooms: len(rooms),
		TotalBeds:  len(beds),
	}

	for _, reservation := range active {
		if _, ok := bedSet[reservation.BedID]; ok {
			stats.TotalGuests++
		}
	}

	if stats.TotalBeds > 0 {
		stats.OccupancyRate = int(math.Round(float64(stats.TotalGuests) / float64(stats.TotalBeds) * 100))
	}

	return stats, nil
}

// loadInventory returns the rooms matching the filters and the beds they
// own, both in stable listing order.
func (s *availabilityService) loadInventory(ctx context.Context, roomType, roomID string) ([]*entity.Room, []*entity.Bed, error) {
	allRooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load rooms", zap.Error(err))
		return nil, nil, fmt.Errorf("load rooms: %w", err)
	}

	var filterID uuid.UUID
	if roomID != "" {
		filterID, err = uuid.Parse(roomID)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
		}
	}

	var rooms []*entity.Room
	roomSet := make(map[uuid.UUID]struct{})
	for _, room := range allRooms {
		if roomType != "" && string(room.Type) != roomType {
			continue
		}
		if roomID != "" && room.ID != filterID {
			continue
		}
		rooms = append(rooms, room)
		roomSet[room.ID] = struct{}{}
	}

	allBeds, err := s.repo.Bed.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load beds", zap.Error(err))
		return nil, nil, fmt.Errorf("load beds: %w", err)
	}

	var beds []*entity.Bed
	for _, bed := range allBeds {
		if _, ok := roomSet[bed.RoomID]; ok {
			beds = append(beds, bed)
		}
	}

	return rooms, beds, nil
}

// guestNamesFor resolves display names for the guests on a reservation set.
func (s *availabilityService) guestNamesFor(ctx context.Context, reservations []*entity.Reservation) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string)
	for _, reservation := range reservations {
		if _, done := names[reservation.GuestID]; done {
			continue
		}
		guest, _ := s.repo.Guest.FindByID(ctx, reservation.GuestID)
		if guest != nil {
			names[reservation.GuestID] = guest.Name + " " + guest.LastName
		}
	}
	return names
}
