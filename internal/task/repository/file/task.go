package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gbot/internal/model"
	"gbot/internal/task/repository"
)

// Load reads every record in the file. A missing file is an empty list.
// Lines may be of any length. Blank lines are ignored and corrupted lines
// are skipped with a warning.
func (r *implRepository) Load(ctx context.Context) ([]model.Task, error) {
	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		r.l.Infof(ctx, "%s: %s not found, starting with an empty list", r.dsn("Load"), r.path)
		return []model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Load"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}
	defer f.Close()

	tasks := make([]model.Task, 0)
	reader := bufio.NewReader(f)
	lineNo := 0
	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			r.l.Errorf(ctx, "%s: %v", r.dsn("Load"), readErr)
			return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, readErr)
		}
		if raw == "" && readErr != nil {
			break
		}

		lineNo++
		line := strings.TrimRight(raw, "\r\n")
		if strings.TrimSpace(line) != "" {
			t, err := repository.DecodeRecord(line, r.loc)
			if err != nil {
				r.l.Warnf(ctx, "%s: skipping line %d: %v", r.dsn("Load"), lineNo, err)
			} else {
				tasks = append(tasks, t)
			}
		}

		if readErr != nil {
			break
		}
	}

	r.l.Debugf(ctx, "%s: loaded %d tasks from %s", r.dsn("Load"), len(tasks), r.path)
	return tasks, nil
}

// Save overwrites the file with tasks, one record per line. The content is
// written to a temporary file in the same directory and renamed into place.
func (r *implRepository) Save(ctx context.Context, tasks []model.Task) error {
	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Save"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	tmpName := tmp.Name()

	if err := writeRecords(tmp, tasks); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		r.l.Errorf(ctx, "%s: %v", r.dsn("Save"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		r.l.Errorf(ctx, "%s: %v", r.dsn("Save"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		r.l.Errorf(ctx, "%s: %v", r.dsn("Save"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}

	r.l.Debugf(ctx, "%s: saved %d tasks to %s", r.dsn("Save"), len(tasks), r.path)
	return nil
}

func writeRecords(f *os.File, tasks []model.Task) error {
	w := bufio.NewWriter(f)
	for _, t := range tasks {
		if _, err := w.WriteString(repository.EncodeRecord(t) + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
