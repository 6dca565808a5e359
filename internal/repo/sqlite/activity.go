package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"itinero-server/internal/domain"
	"itinero-server/internal/repo"
)

// activityRepo is the SQLite implementation of repo.ActivityRepo.
type activityRepo struct {
	db *sql.DB
}

var _ repo.ActivityRepo = (*activityRepo)(nil)

const activityCols = `id, destination_id, name, description, duration, category, image_url, icon, icon_bg, icon_color`

func (r *activityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	const q = `
		INSERT INTO activities (destination_id, name, description, duration, category, image_url, icon, icon_bg, icon_color)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, q,
		a.DestinationID, a.Name, a.Description, a.Duration, a.Category, a.ImageURL, a.Icon, a.IconBg, a.IconColor)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: last id: %w", err)
	}
	a.ID = int(id)
	return a, nil
}

func (r *activityRepo) GetByID(ctx context.Context, id int) (domain.Activity, error) {
	const q = `SELECT ` + activityCols + ` FROM activities WHERE id = ?`

	a, err := scanActivity(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByID: %w", err)
	}
	return a, nil
}

func (r *activityRepo) List(ctx context.Context) ([]domain.Activity, error) {
	const q = `SELECT ` + activityCols + ` FROM activities ORDER BY id`
	return r.queryActivities(ctx, "List", q)
}

func (r *activityRepo) ListByDestination(ctx context.Context, destinationID int) ([]domain.Activity, error) {
	const q = `SELECT ` + activityCols + ` FROM activities WHERE destination_id = ? ORDER BY id`
	return r.queryActivities(ctx, "ListByDestination", q, destinationID)
}

func (r *activityRepo) queryActivities(ctx context.Context, op, q string, args ...any) ([]domain.Activity, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.%s: %w", op, err)
	}
	defer rows.Close()

	var out []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.%s: scan: %w", op, err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.%s: rows: %w", op, err)
	}
	return out, nil
}

func scanActivity(s scanner) (domain.Activity, error) {
	var a domain.Activity
	err := s.Scan(&a.ID, &a.DestinationID, &a.Name, &a.Description, &a.Duration, &a.Category, &a.ImageURL, &a.Icon, &a.IconBg, &a.IconColor)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, err
	}
	return a, nil
}
