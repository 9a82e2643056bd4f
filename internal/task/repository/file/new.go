package file

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gbot/internal/task/repository"
	"gbot/pkg/log"
)

type implRepository struct {
	path string
	loc  *time.Location
	l    log.Logger
}

// New creates a Repository backed by the flat text file at path, creating
// its parent directory if needed. Persisted instants are read in loc.
func New(path string, loc *time.Location, l log.Logger) (repository.Repository, error) {
	if path == "" {
		return nil, fmt.Errorf("task/repository/file: path is required")
	}
	if loc == nil {
		loc = time.Local
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("task/repository/file: create directory %s: %w", dir, err)
		}
	}

	return &implRepository{path: path, loc: loc, l: l}, nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/file.%s", method)
}
