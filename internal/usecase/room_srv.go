package usecase

import (
	"context"
	"fmt"
	"time"

	"hostel-booking/internal/data/entity"
	"hostel-booking/internal/data/repository"
	"hostel-booking/internal/dto/request"
	"hostel-booking/internal/dto/response"
	"hostel-booking/pkg/utils"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const roomsCacheKey = "rooms_with_beds"

type RoomService interface {
	GetRooms(ctx context.Context) ([]*response.RoomResponse, error)
	GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error)
	GetBeds(ctx context.Context) ([]response.BedResponse, error)

	// Admin inventory management
	CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, roomID string, req *request.RoomUpdateRequest) (*response.RoomResponse, error)
	DeleteRoom(ctx context.Context, roomID string) error
}

type roomService struct {
	repo *repository.Repository
	// Rooms and beds are seeded once and rarely change, so the composed
	// listing is cached briefly. Reservation occupancy is NEVER cached:
	// availability always reads the store.
	cache *gocache.Cache
	log   *zap.Logger
}

func NewRoomService(repo *repository.Repository, config *utils.Config, log *zap.Logger) RoomService {
	ttl := time.Duration(config.Cache.InventoryTTLMinutes) * time.Minute
	return &roomService{
		repo:  repo,
		cache: gocache.New(ttl, 2*ttl),
		log:   log.With(zap.String("service", "room")),
	}
}

func (s *roomService) GetRooms(ctx context.Context) ([]*response.RoomResponse, error) {
	if cached, found := s.cache.Get(roomsCacheKey); found {
		return cached.([]*response.RoomResponse), nil
	}

	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get rooms", zap.Error(err))
		return nil, fmt.Errorf("get rooms: %w", err)
	}

	beds, err := s.repo.Bed.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get beds", zap.Error(err))
		return nil, fmt.Errorf("get beds: %w", err)
	}

	bedsByRoom := make(map[uuid.UUID][]*entity.Bed)
	for _, bed := range beds {
		bedsByRoom[bed.RoomID] = append(bedsByRoom[bed.RoomID], bed)
	}

	responses := make([]*response.RoomResponse, len(rooms))
	for i, room := range rooms {
		responses[i] = response.RoomToResponse(room, bedsByRoom[room.ID])
	}

	s.cache.SetDefault(roomsCacheKey, responses)

	return responses, nil
}

func (s *roomService) GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil || room == nil {
		return nil, fmt.Errorf("room %s not found", roomID)
	}

	beds, err := s.repo.Bed.FindByRoomID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get room beds", zap.Error(err), zap.String("room_id", roomID))
		return nil, fmt.Errorf("get room beds: %w", err)
	}

	return response.RoomToResponse(room, beds), nil
}

func (s *roomService) GetBeds(ctx context.Context) ([]response.BedResponse, error) {
	beds, err := s.repo.Bed.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get beds", zap.Error(err))
		return nil, fmt.Errorf("get beds: %w", err)
	}

	responses := make([]response.BedResponse, len(beds))
	for i, bed := range beds {
		responses[i] = response.BedToResponse(bed)
	}

	return responses, nil
}

// ==================== ADMIN METHODS ====================

func (s *roomService) CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     req.Name,
		Type:     entity.RoomType(req.Type),
		Capacity: req.Capacity,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		s.log.Error("Failed to create room", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.cache.Delete(roomsCacheKey)

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("name", room.Name),
		zap.String("type", string(room.Type)),
	)

	return response.RoomToResponse(room, nil), nil
}

func (s *roomService) UpdateRoom(ctx context.Context, roomID string, req *request.RoomUpdateRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil || room == nil {
		return nil, fmt.Errorf("room %s not found", roomID)
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.Type != nil {
		room.Type = entity.RoomType(*req.Type)
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	room.UpdatedAt = time.Now()

	if err := s.repo.Room.Update(ctx, room); err != nil {
		s.log.Error("Failed to update room", zap.Error(err), zap.String("room_id", roomID))
		return nil, fmt.Errorf("update room: %w", err)
	}

	s.cache.Delete(roomsCacheKey)

	beds, err := s.repo.Bed.FindByRoomID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room beds: %w", err)
	}

	return response.RoomToResponse(room, beds), nil
}

func (s *roomService) DeleteRoom(ctx context.Context, roomID string) error {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	if err := s.repo.Room.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete room", zap.Error(err), zap.String("room_id", roomID))
		return fmt.Errorf("delete room %s: %w", roomID, err)
	}

	s.cache.Delete(roomsCacheKey)

	return nil
}
