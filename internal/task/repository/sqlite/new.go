package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gbot/internal/task/repository"
	"gbot/pkg/log"

	_ "modernc.org/sqlite"
)

type implRepository struct {
	db  *sql.DB
	loc *time.Location
	l   log.Logger
}

// Open opens the SQLite database at path, creating its parent directory,
// and checks the connection.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps writes serialized on the one file.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// New creates a SQLite-backed Repository and makes sure its table exists.
// Persisted instants are read in loc.
func New(ctx context.Context, db *sql.DB, loc *time.Location, l log.Logger) (repository.Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("task/repository/sqlite: db is required")
	}
	if loc == nil {
		loc = time.Local
	}

	r := &implRepository{db: db, loc: loc, l: l}
	if err := r.migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return r, nil
}

func (r *implRepository) migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			position INTEGER PRIMARY KEY,
			kind TEXT NOT NULL,
			done INTEGER NOT NULL DEFAULT 0,
			description TEXT NOT NULL,
			due TEXT,
			start_at TEXT,
			end_at TEXT
		);
	`)
	return err
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}
