package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"itinero-server/internal/domain"
	"itinero-server/internal/repo"
)

// tripRepo is the SQLite implementation of repo.TripRepo.
// The itinerary is stored as a JSON column and replaced wholesale on update,
// mirroring the shallow-merge contract of the memory store.
type tripRepo struct {
	db *sql.DB
}

var _ repo.TripRepo = (*tripRepo)(nil)

const tripCols = `id, user_id, name, start_date, end_date, destination, travelers, itinerary, created_at`

func (r *tripRepo) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	itin, err := marshalItinerary(t.Itinerary)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	t.CreatedAt = time.Now().UTC()

	const q = `
		INSERT INTO trips (user_id, name, start_date, end_date, destination, travelers, itinerary, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, q,
		nullableInt(t.UserID), t.Name, t.StartDate, t.EndDate, t.Destination, t.Travelers, itin, t.CreatedAt)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: last id: %w", err)
	}
	t.ID = int(id)
	return t, nil
}

func (r *tripRepo) GetByID(ctx context.Context, id int) (domain.Trip, error) {
	const q = `SELECT ` + tripCols + ` FROM trips WHERE id = ?`

	t, err := scanTrip(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return t, nil
}

func (r *tripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	const q = `SELECT ` + tripCols + ` FROM trips ORDER BY id`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	var out []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}
	return out, nil
}

// Update performs the shallow merge inside one transaction: read, apply,
// write. The transaction is the atomic unit required to preserve the memory
// store's single-map-write semantics on a durable backend.
func (r *tripRepo) Update(ctx context.Context, id int, u domain.TripUpdate) (domain.Trip, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: begin: %w", err)
	}
	defer tx.Rollback()

	const sel = `SELECT ` + tripCols + ` FROM trips WHERE id = ?`
	t, err := scanTrip(tx.QueryRowContext(ctx, sel, id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}

	t = u.Apply(t)
	itin, err := marshalItinerary(t.Itinerary)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}

	const upd = `
		UPDATE trips
		SET user_id = ?, name = ?, start_date = ?, end_date = ?, destination = ?, travelers = ?, itinerary = ?
		WHERE id = ?`

	if _, err := tx.ExecContext(ctx, upd,
		nullableInt(t.UserID), t.Name, t.StartDate, t.EndDate, t.Destination, t.Travelers, itin, id); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: commit: %w", err)
	}
	return t, nil
}

func (r *tripRepo) Delete(ctx context.Context, id int) error {
	const q = `DELETE FROM trips WHERE id = ?`

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t      domain.Trip
		userID sql.NullInt64
		itin   string
	)
	err := s.Scan(&t.ID, &userID, &t.Name, &t.StartDate, &t.EndDate, &t.Destination, &t.Travelers, &itin, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}
	if userID.Valid {
		uid := int(userID.Int64)
		t.UserID = &uid
	}
	if err := json.Unmarshal([]byte(itin), &t.Itinerary); err != nil {
		return domain.Trip{}, fmt.Errorf("unmarshal itinerary: %w", err)
	}
	return t, nil
}

func marshalItinerary(days []domain.DayPlan) (string, error) {
	if days == nil {
		days = []domain.DayPlan{}
	}
	b, err := json.Marshal(days)
	if err != nil {
		return "", fmt.Errorf("marshal itinerary: %w", err)
	}
	return string(b), nil
}

// nullableInt maps a *int to the driver-level NULL representation.
func nullableInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
