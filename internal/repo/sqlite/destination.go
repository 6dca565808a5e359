package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"itinero-server/internal/domain"
	"itinero-server/internal/repo"
)

// destinationRepo is the SQLite implementation of repo.DestinationRepo.
type destinationRepo struct {
	db *sql.DB
}

var _ repo.DestinationRepo = (*destinationRepo)(nil)

const destinationCols = `id, name, country, description, image_url, rating, tags, price_per_person, type`

func (r *destinationRepo) Create(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	tags, err := json.Marshal(d.Tags)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Create: marshal tags: %w", err)
	}

	const q = `
		INSERT INTO destinations (name, country, description, image_url, rating, tags, price_per_person, type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, q,
		d.Name, d.Country, d.Description, d.ImageURL, d.Rating, string(tags), d.PricePerPerson, d.Type)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Create: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Create: last id: %w", err)
	}
	d.ID = int(id)
	return d, nil
}

func (r *destinationRepo) GetByID(ctx context.Context, id int) (domain.Destination, error) {
	const q = `SELECT ` + destinationCols + ` FROM destinations WHERE id = ?`

	d, err := scanDestination(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Destination{}, domain.ErrNotFound
		}
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.GetByID: %w", err)
	}
	return d, nil
}

func (r *destinationRepo) List(ctx context.Context) ([]domain.Destination, error) {
	const q = `SELECT ` + destinationCols + ` FROM destinations ORDER BY id`
	return r.queryDestinations(ctx, "List", q)
}

// Search matches name, country, or any tag, case-insensitively.
// Tags are stored as a JSON array, so the tag match uses LIKE on the raw
// JSON text — substring semantics are identical to the in-memory scan.
func (r *destinationRepo) Search(ctx context.Context, query string) ([]domain.Destination, error) {
	const q = `
		SELECT ` + destinationCols + `
		FROM destinations
		WHERE lower(name) LIKE ? OR lower(country) LIKE ? OR lower(tags) LIKE ?
		ORDER BY id`

	pattern := "%" + strings.ToLower(query) + "%"
	return r.queryDestinations(ctx, "Search", q, pattern, pattern, pattern)
}

func (r *destinationRepo) queryDestinations(ctx context.Context, op, q string, args ...any) ([]domain.Destination, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.%s: %w", op, err)
	}
	defer rows.Close()

	var out []domain.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DestinationRepo.%s: scan: %w", op, err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.%s: rows: %w", op, err)
	}
	return out, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDestination(s scanner) (domain.Destination, error) {
	var (
		d    domain.Destination
		tags string
	)
	err := s.Scan(&d.ID, &d.Name, &d.Country, &d.Description, &d.ImageURL, &d.Rating, &tags, &d.PricePerPerson, &d.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Destination{}, domain.ErrNotFound
		}
		return domain.Destination{}, err
	}
	if err := json.Unmarshal([]byte(tags), &d.Tags); err != nil {
		return domain.Destination{}, fmt.Errorf("unmarshal tags: %w", err)
	}
	return d, nil
}
