package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"gbot/internal/model"
	"gbot/internal/task/repository"
)

// Load returns every stored task ordered by position. Rows that cannot be
// decoded are skipped with a warning.
func (r *implRepository) Load(ctx context.Context) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			position,
			kind,
			done,
			description,
			due,
			start_at,
			end_at
		FROM tasks
		ORDER BY position ASC`,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Load"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		var (
			position        int
			row             taskRow
			due, start, end sql.NullString
		)
		if err := rows.Scan(&position, &row.kind, &row.done, &row.description, &due, &start, &end); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("Load"), err)
			return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
		}
		row.due, row.start, row.end = due.String, start.String, end.String

		t, err := row.toTask(r.loc)
		if err != nil {
			r.l.Warnf(ctx, "%s: skipping row %d: %v", r.dsn("Load"), position, err)
			continue
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Load"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}

	return tasks, nil
}

// Save replaces all stored rows with tasks inside one transaction.
func (r *implRepository) Save(ctx context.Context, tasks []model.Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s: begin: %v", r.dsn("Save"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		r.l.Errorf(ctx, "%s: clear: %v", r.dsn("Save"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tasks (position, kind, done, description, due, start_at, end_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: prepare: %v", r.dsn("Save"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	defer stmt.Close()

	for i, t := range tasks {
		row := fromTask(t)
		if _, err := stmt.ExecContext(ctx, i+1, row.kind, row.done, row.description,
			nullable(row.due), nullable(row.start), nullable(row.end)); err != nil {
			r.l.Errorf(ctx, "%s: insert %d: %v", r.dsn("Save"), i+1, err)
			return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s: commit: %v", r.dsn("Save"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
