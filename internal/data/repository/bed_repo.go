package repository

import (
	"context"
	"fmt"

	"hostel-booking/internal/data/entity"
	"hostel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BedRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Bed, error)
	// FindAll returns beds in stable listing order (room, then number).
	// The bed resolver's first-fit depends on this ordering.
	FindAll(ctx context.Context) ([]*entity.Bed, error)
	FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Bed, error)
}

type bedRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBedRepository(db database.PgxIface, log *zap.Logger) BedRepository {
	return &bedRepository{
		db:  db,
		log: log.With(zap.String("repository", "bed")),
	}
}

func (r *bedRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bed, error) {
	query := `
		SELECT id, room_id, number, type, created_at, updated_at
		FROM beds
		WHERE id = $1
	`

	var bed entity.Bed
	err := r.db.QueryRow(ctx, query, id).Scan(
		&bed.ID,
		&bed.RoomID,
		&bed.Number,
		&bed.Type,
		&bed.CreatedAt,
		&bed.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find bed by ID",
			zap.Error(err),
			zap.String("bed_id", id.String()),
		)
		return nil, fmt.Errorf("find bed by ID %s: %w", id.String(), err)
	}

	return &bed, nil
}

func (r *bedRepository) FindAll(ctx context.Context) ([]*entity.Bed, error) {
	query := `
		SELECT id, room_id, number, type, created_at, updated_at
		FROM beds
		ORDER BY room_id, number
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find beds", zap.Error(err))
		return nil, fmt.Errorf("find all beds: %w", err)
	}
	defer rows.Close()

	return scanBeds(rows, r.log)
}

func (r *bedRepository) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Bed, error) {
	query := `
		SELECT id, room_id, number, type, created_at, updated_at
		FROM beds
		WHERE room_id = $1
		ORDER BY number
	`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to find beds by room ID",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return nil, fmt.Errorf("find beds by room ID %s: %w", roomID.String(), err)
	}
	defer rows.Close()

	return scanBeds(rows, r.log)
}

func scanBeds(rows pgx.Rows, log *zap.Logger) ([]*entity.Bed, error) {
	var beds []*entity.Bed
	for rows.Next() {
		var bed entity.Bed
		err := rows.Scan(
			&bed.ID,
			&bed.RoomID,
			&bed.Number,
			&bed.Type,
			&bed.CreatedAt,
			&bed.UpdatedAt,
		)
		if err != nil {
			log.Error("Failed to scan bed row", zap.Error(err))
			return nil, fmt.Errorf("scan bed row: %w", err)
		}
		beds = append(beds, &bed)
	}
	return beds, nil
}
