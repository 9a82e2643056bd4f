package usecase

import (
	"context"

	"gbot/internal/task"
	"gbot/internal/task/command"
)

func (uc *implUseCase) Mark(ctx context.Context, args string) (task.MarkOutput, error) {
	index, err := command.ParseIndex(args)
	if err != nil {
		return task.MarkOutput{}, err
	}
	t, err := uc.list.Mark(index)
	if err != nil {
		return task.MarkOutput{}, err
	}
	uc.l.Infof(ctx, "Mark: index=%d", index)
	return task.MarkOutput{Index: index, Task: t}, nil
}

func (uc *implUseCase) Unmark(ctx context.Context, args string) (task.MarkOutput, error) {
	index, err := command.ParseIndex(args)
	if err != nil {
		return task.MarkOutput{}, err
	}
	t, err := uc.list.Unmark(index)
	if err != nil {
		return task.MarkOutput{}, err
	}
	uc.l.Infof(ctx, "Unmark: index=%d", index)
	return task.MarkOutput{Index: index, Task: t}, nil
}

// Delete removes a task; later tasks move down by one.
func (uc *implUseCase) Delete(ctx context.Context, args string) (task.DeleteOutput, error) {
	index, err := command.ParseIndex(args)
	if err != nil {
		return task.DeleteOutput{}, err
	}
	t, err := uc.list.Delete(index)
	if err != nil {
		return task.DeleteOutput{}, err
	}
	uc.l.Infof(ctx, "Delete: index=%d, total=%d", index, uc.list.Len())
	return task.DeleteOutput{Task: t, Total: uc.list.Len()}, nil
}
