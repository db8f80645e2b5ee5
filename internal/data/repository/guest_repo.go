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

type GuestRepository interface {
	// Upsert finds a guest by document number and updates the contact
	// fields, or inserts a new row. A single statement, so there is no
	// read-then-write window for duplicate guests.
	Upsert(ctx context.Context, guest *entity.Guest) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error)
	FindByIDNumber(ctx context.Context, idNumber string) (*entity.Guest, error)
	Update(ctx context.Context, guest *entity.Guest) error
}

type guestRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGuestRepository(db database.PgxIface, log *zap.Logger) GuestRepository {
	return &guestRepository{
		db:  db,
		log: log.With(zap.String("repository", "guest")),
	}
}

func (r *guestRepository) Upsert(ctx context.Context, guest *entity.Guest) (uuid.UUID, error) {
	query := `
		INSERT INTO guests (id, name, last_name, id_number, phone, email, age, country, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		ON CONFLICT (id_number) DO UPDATE
		SET name = EXCLUDED.name,
		    last_name = EXCLUDED.last_name,
		    phone = EXCLUDED.phone,
		    email = EXCLUDED.email,
		    age = EXCLUDED.age,
		    country = EXCLUDED.country,
		    updated_at = EXCLUDED.updated_at
		RETURNING id
	`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		guest.ID,
		guest.Name,
		guest.LastName,
		guest.IDNumber,
		guest.Phone,
		guest.Email,
		guest.Age,
		guest.Country,
		guest.CreatedAt,
	).Scan(&id)

	if err != nil {
		r.log.Error("Failed to upsert guest",
			zap.Error(err),
			zap.String("id_number", guest.IDNumber),
		)
		return uuid.Nil, fmt.Errorf("upsert guest %s: %w", guest.IDNumber, err)
	}

	return id, nil
}

func (r *guestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	query := `
		SELECT id, name, last_name, id_number, phone, email, age, country, created_at, updated_at
		FROM guests
		WHERE id = $1
	`

	var guest entity.Guest
	err := r.db.QueryRow(ctx, query, id).Scan(
		&guest.ID,
		&guest.Name,
		&guest.LastName,
		&guest.IDNumber,
		&guest.Phone,
		&guest.Email,
		&guest.Age,
		&guest.Country,
		&guest.CreatedAt,
		&guest.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find guest by ID",
			zap.Error(err),
			zap.String("guest_id", id.String()),
		)
		return nil, fmt.Errorf("find guest by ID %s: %w", id.String(), err)
	}

	return &guest, nil
}

func (r *guestRepository) FindByIDNumber(ctx context.Context, idNumber string) (*entity.Guest, error) {
	query := `
		SELECT id, name, last_name, id_number, phone, email, age, country, created_at, updated_at
		FROM guests
		WHERE id_number = $1
	`

	var guest entity.Guest
	err := r.db.QueryRow(ctx, query, idNumber).Scan(
		&guest.ID,
		&guest.Name,
		&guest.LastName,
		&guest.IDNumber,
		&guest.Phone,
		&guest.Email,
		&guest.Age,
		&guest.Country,
		&guest.CreatedAt,
		&guest.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find guest by ID number",
			zap.Error(err),
			zap.String("id_number", idNumber),
		)
		return nil, fmt.Errorf("find guest by ID number %s: %w", idNumber, err)
	}

	return &guest, nil
}

func (r *guestRepository) Update(ctx context.Context, guest *entity.Guest) error {
	query := `
		UPDATE guests
		SET name = $2, last_name = $3, id_number = $4, phone = $5,
		    email = $6, age = $7, country = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		guest.ID,
		guest.Name,
		guest.LastName,
		guest.IDNumber,
		guest.Phone,
		guest.Email,
		guest.Age,
		guest.Country,
		guest.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update guest",
			zap.Error(err),
			zap.String("guest_id", guest.ID.String()),
		)
		return fmt.Errorf("update guest %s: %w", guest.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("guest %s not found", guest.ID.String())
	}

	return nil
}
