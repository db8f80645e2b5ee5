package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hostel-booking/internal/data/entity"
	"hostel-booking/internal/data/repository"
	"hostel-booking/internal/dto/request"
	"hostel-booking/internal/dto/response"
	"hostel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReservationService interface {
	// CreateReservation runs the full admission: validate, resolve a free
	// bed (unless the caller pinned one), upsert the guest, write the
	// confirmed reservation.
	CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	GetReservations(ctx context.Context) ([]*response.ReservationResponse, error)
	GetReservationByID(ctx context.Context, reservationID string) (*response.ReservationResponse, error)
	UpdateReservation(ctx context.Context, reservationID string, req *request.UpdateReservationRequest) (*response.ReservationResponse, error)
	DeleteReservation(ctx context.Context, reservationID string) error
}

type reservationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReservationService(repo *repository.Repository, log *zap.Logger) ReservationService {
	return &reservationService{
		repo: repo,
		log:  log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	// Validate before touching the store
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	checkIn, checkOut, err := parseStayDates(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	// Resolve the bed: pinned by the caller, or first-fit over free beds
	var bed *entity.Bed
	if req.BedID != nil {
		bedID, err := uuid.Parse(*req.BedID)
		if err != nil {
			return nil, fmt.Errorf("invalid bed ID format %s: %w", *req.BedID, err)
		}
		bed, err = s.repo.Bed.FindByID(ctx, bedID)
		if err != nil {
			return nil, fmt.Errorf("check bed: %w", err)
		}
		if bed == nil {
			return nil, fmt.Errorf("bed %s not found", bedID.String())
		}
	} else {
		beds, err := s.repo.Bed.FindAll(ctx)
		if err != nil {
			s.log.Error("Failed to load bed inventory", zap.Error(err))
			return nil, fmt.Errorf("load beds: %w", err)
		}

		overlapping, err := s.repo.Reservation.FindOverlappingConfirmed(ctx, checkIn, checkOut)
		if err != nil {
			s.log.Error("Failed to load overlapping reservations", zap.Error(err))
			return nil, fmt.Errorf("check availability: %w", err)
		}

		var ok bool
		bed, ok = FindAvailableBed(beds, overlapping, checkIn, checkOut)
		if !ok {
			s.log.Info("No beds available",
				zap.String("check_in", req.CheckIn),
				zap.String("check_out", req.CheckOut),
			)
			return nil, ErrNoBedsAvailable
		}
	}

	// Find-or-create the guest by document number
	now := time.Now()
	guest := &entity.Guest{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     req.Name,
		LastName: req.LastName,
		IDNumber: req.IDNumber,
		Phone:    req.Phone,
		Email:    req.Email,
		Age:      req.Age,
		Country:  req.Country,
	}

	guestID, err := s.repo.Guest.Upsert(ctx, guest)
	if err != nil {
		s.log.Error("Failed to upsert guest",
			zap.Error(err),
			zap.String("id_number", req.IDNumber),
		)
		return nil, fmt.Errorf("upsert guest: %w", err)
	}

	// Write the confirmed reservation under the overlap guard
	reservation := &entity.Reservation{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BedID:    bed.ID,
		GuestID:  guestID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Status:   entity.ReservationStatusConfirmed,
		Notes:    req.Notes,
	}

	if err := s.repo.Reservation.CreateConfirmed(ctx, reservation); err != nil {
		if errors.Is(err, repository.ErrBedTaken) {
			s.log.Warn("Admission lost availability race",
				zap.String("bed_id", bed.ID.String()),
				zap.String("check_in", req.CheckIn),
				zap.String("check_out", req.CheckOut),
			)
			return nil, ErrBedConflict
		}
		s.log.Error("Failed to create reservation", zap.Error(err))
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("bed_id", bed.ID.String()),
		zap.String("guest_id", guestID.String()),
		zap.String("check_in", req.CheckIn),
		zap.String("check_out", req.CheckOut),
	)

	return s.buildReservationResponse(ctx, reservation), nil
}

func (s *reservationService) GetReservations(ctx context.Context) ([]*response.ReservationResponse, error) {
	reservations, err := s.repo.Reservation.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get reservations", zap.Error(err))
		return nil, fmt.Errorf("get reservations: %w", err)
	}

	responses := make([]*response.ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		responses[i] = s.buildReservationResponse(ctx, reservation)
	}

	return responses, nil
}

func (s *reservationService) GetReservationByID(ctx context.Context, reservationID string) (*response.ReservationResponse, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("invalid reservation ID format %s: %w", reservationID, err)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil || reservation == nil {
		return nil, fmt.Errorf("reservation %s not found", reservationID)
	}

	return s.buildReservationResponse(ctx, reservation), nil
}

func (s *reservationService) UpdateReservation(ctx context.Context, reservationID string, req *request.UpdateReservationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("invalid reservation ID format %s: %w", reservationID, err)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil || reservation == nil {
		return nil, fmt.Errorf("reservation %s not found", reservationID)
	}

	// Apply changes on top of the current row
	if req.BedID != nil {
		bedID, err := uuid.Parse(*req.BedID)
		if err != nil {
			return nil, fmt.Errorf("invalid bed ID format %s: %w", *req.BedID, err)
		}
		bed, err := s.repo.Bed.FindByID(ctx, bedID)
		if err != nil {
			return nil, fmt.Errorf("check bed: %w", err)
		}
		if bed == nil {
			return nil, fmt.Errorf("bed %s not found", bedID.String())
		}
		reservation.BedID = bedID
	}
	if req.CheckIn != nil {
		checkIn, err := utils.ParseDate(*req.CheckIn)
		if err != nil {
			return nil, fmt.Errorf("validation failed: %s", err.Error())
		}
		reservation.CheckIn = checkIn
	}
	if req.CheckOut != nil {
		checkOut, err := utils.ParseDate(*req.CheckOut)
		if err != nil {
			return nil, fmt.Errorf("validation failed: %s", err.Error())
		}
		reservation.CheckOut = checkOut
	}
	if !reservation.CheckOut.After(reservation.CheckIn) {
		return nil, fmt.Errorf("validation failed: checkOut must be after checkIn")
	}
	if req.Status != nil {
		reservation.Status = entity.ReservationStatus(*req.Status)
	}
	if req.Notes != nil {
		reservation.Notes = req.Notes
	}
	reservation.UpdatedAt = time.Now()

	// Write guest contact changes through to the guest row
	if req.Guest != nil {
		if err := s.updateGuestContact(ctx, reservation.GuestID, req.Guest); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Reservation.UpdateGuarded(ctx, reservation); err != nil {
		if errors.Is(err, repository.ErrBedTaken) {
			s.log.Warn("Update lost availability race",
				zap.String("reservation_id", reservationID),
				zap.String("bed_id", reservation.BedID.String()),
			)
			return nil, ErrBedConflict
		}
		s.log.Error("Failed to update reservation",
			zap.Error(err),
			zap.String("reservation_id", reservationID),
		)
		return nil, fmt.Errorf("update reservation: %w", err)
	}

	s.log.Info("Reservation updated",
		zap.String("reservation_id", reservationID),
		zap.String("bed_id", reservation.BedID.String()),
		zap.String("status", string(reservation.Status)),
	)

	return s.buildReservationResponse(ctx, reservation), nil
}

func (s *reservationService) DeleteReservation(ctx context.Context, reservationID string) error {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return fmt.Errorf("invalid reservation ID format %s: %w", reservationID, err)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil || reservation == nil {
		return fmt.Errorf("reservation %s not found", reservationID)
	}

	// Hard delete: the bed becomes available again for the whole range
	if err := s.repo.Reservation.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete reservation",
			zap.Error(err),
			zap.String("reservation_id", reservationID),
		)
		return fmt.Errorf("delete reservation %s: %w", reservationID, err)
	}

	return nil
}

// ==================== HELPER METHODS ====================

func (s *reservationService) updateGuestContact(ctx context.Context, guestID uuid.UUID, update *request.GuestContactUpdate) error {
	guest, err := s.repo.Guest.FindByID(ctx, guestID)
	if err != nil || guest == nil {
		return fmt.Errorf("guest %s not found", guestID.String())
	}

	if update.Name != nil {
		guest.Name = *update.Name
	}
	if update.LastName != nil {
		guest.LastName = *update.LastName
	}
	if update.Phone != nil {
		guest.Phone = *update.Phone
	}
	if update.Email != nil {
		guest.Email = *update.Email
	}
	if update.Age != nil {
		guest.Age = update.Age
	}
	if update.Country != nil {
		guest.Country = *update.Country
	}
	guest.UpdatedAt = time.Now()

	if err := s.repo.Guest.Update(ctx, guest); err != nil {
		s.log.Error("Failed to update guest contact",
			zap.Error(err),
			zap.String("guest_id", guestID.String()),
		)
		return fmt.Errorf("update guest: %w", err)
	}

	return nil
}

// buildReservationResponse denormalizes the reservation with guest and
// bed/room data. Lookup failures degrade to an empty section rather than
// failing the whole operation, but never silently.
func (s *reservationService) buildReservationResponse(ctx context.Context, reservation *entity.Reservation) *response.ReservationResponse {
	guest, err := s.repo.Guest.FindByID(ctx, reservation.GuestID)
	if err != nil {
		s.log.Warn("Failed to load guest for reservation view",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
			zap.String("guest_id", reservation.GuestID.String()),
		)
	}

	var room *entity.Room
	bed, err := s.repo.Bed.FindByID(ctx, reservation.BedID)
	if err != nil {
		s.log.Warn("Failed to load bed for reservation view",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
			zap.String("bed_id", reservation.BedID.String()),
		)
	}
	if bed != nil {
		room, err = s.repo.Room.FindByID(ctx, bed.RoomID)
		if err != nil {
			s.log.Warn("Failed to load room for reservation view",
				zap.Error(err),
				zap.String("reservation_id", reservation.ID.String()),
				zap.String("room_id", bed.RoomID.String()),
			)
		}
	}

	return response.ReservationToResponse(reservation, guest, bed, room)
}

// parseStayDates parses and orders the admission date range. checkOut equal
// to checkIn is a zero-night stay and is rejected.
func parseStayDates(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	checkIn, err := utils.ParseDate(checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("validation failed: %s", err.Error())
	}
	checkOut, err := utils.ParseDate(checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("validation failed: %s", err.Error())
	}
	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, fmt.Errorf("validation failed: checkOut must be after checkIn")
	}
	return checkIn, checkOut, nil
}
