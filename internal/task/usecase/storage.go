package usecase

import (
	"context"
	"fmt"

	"gbot/internal/task"
)

// Load replaces the list with the persisted tasks. On failure the list is
// left empty so the session can continue.
func (uc *implUseCase) Load(ctx context.Context) (task.LoadOutput, error) {
	tasks, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "Load: %v", err)
		uc.list.Replace(nil)
		return task.LoadOutput{}, fmt.Errorf("%w: %w", task.ErrPersistence, err)
	}

	uc.list.Replace(tasks)
	uc.l.Infof(ctx, "Load: %d tasks", uc.list.Len())
	return task.LoadOutput{Count: uc.list.Len()}, nil
}

// Save writes the whole list to the repository.
func (uc *implUseCase) Save(ctx context.Context) error {
	if err := uc.repo.Save(ctx, uc.list.Tasks()); err != nil {
		uc.l.Errorf(ctx, "Save: %v", err)
		return fmt.Errorf("%w: %w", task.ErrPersistence, err)
	}
	return nil
}

// Count returns the number of tasks in the list.
func (uc *implUseCase) Count() int {
	return uc.list.Len()
}
