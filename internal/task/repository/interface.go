package repository

import (
	"context"

	"gbot/internal/model"
)

// Repository persists the whole task list. Save is a full overwrite and Load
// returns tasks in list order.
type Repository interface {
	Load(ctx context.Context) ([]model.Task, error)
	Save(ctx context.Context, tasks []model.Task) error
}
