package usecase

import (
	"context"

	"gbot/internal/model"
	"gbot/internal/task"
	"gbot/internal/task/command"
)

func (uc *implUseCase) AddTodo(ctx context.Context, args string) (task.AddOutput, error) {
	t, err := command.ParseTodo(args)
	if err != nil {
		return task.AddOutput{}, err
	}
	return uc.add(ctx, t)
}

func (uc *implUseCase) AddDeadline(ctx context.Context, args string) (task.AddOutput, error) {
	t, err := command.ParseDeadline(args, uc.resolver)
	if err != nil {
		return task.AddOutput{}, err
	}
	return uc.add(ctx, t)
}

func (uc *implUseCase) AddEvent(ctx context.Context, args string) (task.AddOutput, error) {
	t, err := command.ParseEvent(args, uc.resolver)
	if err != nil {
		return task.AddOutput{}, err
	}
	return uc.add(ctx, t)
}

func (uc *implUseCase) add(ctx context.Context, t model.Task) (task.AddOutput, error) {
	if err := uc.list.Add(t); err != nil {
		return task.AddOutput{}, err
	}
	uc.l.Infof(ctx, "Add: %s %q, total=%d", t.Kind, t.Description, uc.list.Len())
	return task.AddOutput{Task: t, Total: uc.list.Len()}, nil
}
