package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"itinero-server/internal/domain"
	"itinero-server/internal/repo"
)

// userRepo is the SQLite implementation of repo.UserRepo.
type userRepo struct {
	db *sql.DB
}

var _ repo.UserRepo = (*userRepo)(nil)

func (r *userRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	const q = `INSERT INTO users (username, password) VALUES (?, ?)`

	res, err := r.db.ExecContext(ctx, q, u.Username, u.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Create: last id: %w", err)
	}
	u.ID = int(id)
	return u, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int) (domain.User, error) {
	const q = `SELECT id, username, password FROM users WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id), "GetByID")
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	const q = `SELECT id, username, password FROM users WHERE username = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, q, username), "GetByUsername")
}

func (r *userRepo) scanOne(row *sql.Row, op string) (domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, fmt.Errorf("repo.UserRepo.%s: %w", op, err)
	}
	return u, nil
}
