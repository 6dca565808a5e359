// Package sqlite implements the repo interfaces on an embedded SQLite
// database, for deployments that want trips to survive a restart. The pure-Go
// modernc.org/sqlite driver keeps the binary cgo-free.
//
// Each repo call is a single statement or a single transaction, so the
// memory store's "no partial write" behavior is preserved. AUTOINCREMENT
// primary keys preserve the never-reuse-ids rule after deletes.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"itinero-server/internal/repo"
	"itinero-server/migrations"
)

// Store wraps the database handle shared by the per-entity repos.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at path and runs any
// pending embedded migrations. Use ":memory:" for an ephemeral database.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.Open: %w", err)
	}
	// The driver is not safe for concurrent writers on one connection set
	// beyond SQLite's own locking; a single connection serializes writes.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.Open: ping: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.Open: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Repos returns the store wrapped in the repo.Store bundle used for wiring.
func (s *Store) Repos() repo.Store {
	return repo.Store{
		Destinations: &destinationRepo{db: s.db},
		Activities:   &activityRepo{db: s.db},
		Trips:        &tripRepo{db: s.db},
		Users:        &userRepo{db: s.db},
	}
}

// migrate applies the embedded goose migrations.
func migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}
