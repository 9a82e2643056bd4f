package usecase

import (
	"gbot/internal/task"
	"gbot/internal/task/command"
	"gbot/internal/task/repository"
	"gbot/internal/task/tasklist"
	pkgLog "gbot/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	resolver command.DateResolver
	list     *tasklist.TaskList
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase instance with an empty list. Call Load to
// populate it from repo.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	resolver command.DateResolver,
) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		resolver: resolver,
		list:     tasklist.New(),
	}
}
