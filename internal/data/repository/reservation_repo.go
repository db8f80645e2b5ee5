package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hostel-booking/internal/data/entity"
	"hostel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type ReservationRepository interface {
	// CreateConfirmed inserts a confirmed reservation only if no other
	// confirmed reservation holds the bed for an overlapping range.
	// Returns ErrBedTaken when the guard fails. Admission must go through
	// this, never a plain insert, or two concurrent requests can double-book
	// a bed.
	CreateConfirmed(ctx context.Context, reservation *entity.Reservation) error
	// UpdateGuarded rewrites bed, dates, status and notes under the same
	// overlap guard (the reservation itself excluded from the check).
	UpdateGuarded(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindAll(ctx context.Context) ([]*entity.Reservation, error)
	// FindOverlappingConfirmed returns confirmed reservations whose
	// [check_in, check_out) intersects [checkIn, checkOut).
	FindOverlappingConfirmed(ctx context.Context, checkIn, checkOut time.Time) ([]*entity.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

// bedLockQuery serializes concurrent admissions per bed within the
// transaction. The exclusion constraint on reservations is the backstop
// if two writers somehow race past it.
const bedLockQuery = `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`

func (r *reservationRepository) CreateConfirmed(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, bed_id, guest_id, check_in, check_out, status, notes, created_at, updated_at)
		SELECT $1, $2, $3, $4, $5, 'confirmed', $6, $7, $7
		WHERE NOT EXISTS (
			SELECT 1 FROM reservations
			WHERE bed_id = $2
			  AND status = 'confirmed'
			  AND check_in < $5
			  AND $4 < check_out
		)
	`

	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin admission transaction", zap.Error(err))
		return fmt.Errorf("begin admission transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, bedLockQuery, reservation.BedID.String()); err != nil {
		r.log.Error("Failed to acquire bed lock",
			zap.Error(err),
			zap.String("bed_id", reservation.BedID.String()),
		)
		return fmt.Errorf("lock bed %s: %w", reservation.BedID.String(), err)
	}

	result, err := tx.Exec(ctx, query,
		reservation.ID,
		reservation.BedID,
		reservation.GuestID,
		reservation.CheckIn,
		reservation.CheckOut,
		reservation.Notes,
		reservation.CreatedAt,
	)

	if err != nil {
		if isOverlapViolation(err) {
			return ErrBedTaken
		}
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("bed_id", reservation.BedID.String()),
			zap.String("guest_id", reservation.GuestID.String()),
		)
		return fmt.Errorf("create reservation for bed %s: %w", reservation.BedID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrBedTaken
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit admission transaction", zap.Error(err))
		return fmt.Errorf("commit admission transaction: %w", err)
	}

	return nil
}

func (r *reservationRepository) UpdateGuarded(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		UPDATE reservations
		SET bed_id = $2, check_in = $3, check_out = $4,
		    status = $5::reservation_status, notes = $6, updated_at = $7
		WHERE id = $1
		  AND ($5::text <> 'confirmed' OR NOT EXISTS (
			SELECT 1 FROM reservations other
			WHERE other.bed_id = $2
			  AND other.status = 'confirmed'
			  AND other.id <> $1
			  AND other.check_in < $4
			  AND $3 < other.check_out
		  ))
	`

	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin update transaction", zap.Error(err))
		return fmt.Errorf("begin update transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, bedLockQuery, reservation.BedID.String()); err != nil {
		r.log.Error("Failed to acquire bed lock",
			zap.Error(err),
			zap.String("bed_id", reservation.BedID.String()),
		)
		return fmt.Errorf("lock bed %s: %w", reservation.BedID.String(), err)
	}

	result, err := tx.Exec(ctx, query,
		reservation.ID,
		reservation.BedID,
		reservation.CheckIn,
		reservation.CheckOut,
		string(reservation.Status),
		reservation.Notes,
		reservation.UpdatedAt,
	)

	if err != nil {
		if isOverlapViolation(err) {
			return ErrBedTaken
		}
		r.log.Error("Failed to update reservation",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
		)
		return fmt.Errorf("update reservation %s: %w", reservation.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		// Distinguish a missing row from a lost availability race.
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM reservations WHERE id = $1)`,
			reservation.ID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check reservation %s: %w", reservation.ID.String(), err)
		}
		if exists {
			return ErrBedTaken
		}
		return fmt.Errorf("reservation %s not found", reservation.ID.String())
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit update transaction", zap.Error(err))
		return fmt.Errorf("commit update transaction: %w", err)
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `
		SELECT id, bed_id, guest_id, check_in, check_out, status, notes, created_at, updated_at
		FROM reservations
		WHERE id = $1
	`

	var reservation entity.Reservation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&reservation.ID,
		&reservation.BedID,
		&reservation.GuestID,
		&reservation.CheckIn,
		&reservation.CheckOut,
		&reservation.Status,
		&reservation.Notes,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return &reservation, nil
}

func (r *reservationRepository) FindAll(ctx context.Context) ([]*entity.Reservation, error) {
	query := `
		SELECT id, bed_id, guest_id, check_in, check_out, status, notes, created_at, updated_at
		FROM reservations
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find reservations", zap.Error(err))
		return nil, fmt.Errorf("find all reservations: %w", err)
	}
	defer rows.Close()

	return scanReservations(rows, r.log)
}

func (r *reservationRepository) FindOverlappingConfirmed(ctx context.Context, checkIn, checkOut time.Time) ([]*entity.Reservation, error) {
	query := `
		SELECT id, bed_id, guest_id, check_in, check_out, status, notes, created_at, updated_at
		FROM reservations
		WHERE status = 'confirmed'
		  AND check_in < $2
		  AND $1 < check_out
		ORDER BY check_in
	`

	rows, err := r.db.Query(ctx, query, checkIn, checkOut)
	if err != nil {
		r.log.Error("Failed to find overlapping reservations",
			zap.Error(err),
			zap.Time("check_in", checkIn),
			zap.Time("check_out", checkOut),
		)
		return nil, fmt.Errorf("find overlapping reservations: %w", err)
	}
	defer rows.Close()

	return scanReservations(rows, r.log)
}

func (r *reservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reservations WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete reservation",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return fmt.Errorf("delete reservation %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", id.String())
	}

	r.log.Info("Reservation deleted", zap.String("reservation_id", id.String()))
	return nil
}

func scanReservations(rows pgx.Rows, log *zap.Logger) ([]*entity.Reservation, error) {
	var reservations []*entity.Reservation
	for rows.Next() {
		var reservation entity.Reservation
		err := rows.Scan(
			&reservation.ID,
			&reservation.BedID,
			&reservation.GuestID,
			&reservation.CheckIn,
			&reservation.CheckOut,
			&reservation.Status,
			&reservation.Notes,
			&reservation.CreatedAt,
			&reservation.UpdatedAt,
		)
		if err != nil {
			log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, &reservation)
	}
	return reservations, nil
}

// isOverlapViolation reports whether the error is the exclusion constraint
// (or the reservation unique index) rejecting an overlapping write.
func isOverlapViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23P01" || pgErr.Code == "23505"
}
