package usecase

import (
	"context"
	"strings"

	"gbot/internal/task"
	"gbot/internal/task/command"
)

func (uc *implUseCase) List(ctx context.Context) task.ListOutput {
	return task.ListOutput{Tasks: uc.list.Tasks()}
}

// FindByDate lists tasks that fall on the given calendar day.
func (uc *implUseCase) FindByDate(ctx context.Context, args string) (task.FindByDateOutput, error) {
	date, err := command.ParseDate(args, uc.resolver)
	if err != nil {
		return task.FindByDateOutput{}, err
	}
	found := uc.list.FindByDate(date)
	uc.l.Debugf(ctx, "FindByDate: %s matched %d", date.Format("2006-01-02"), len(found))
	return task.FindByDateOutput{Date: date, Tasks: found}, nil
}

// FindByKeyword lists tasks whose description contains the trimmed keyword.
// An empty keyword matches every task.
func (uc *implUseCase) FindByKeyword(ctx context.Context, args string) task.FindByKeywordOutput {
	keyword := strings.TrimSpace(args)
	found := uc.list.FindByKeyword(keyword)
	uc.l.Debugf(ctx, "FindByKeyword: %q matched %d", keyword, len(found))
	return task.FindByKeywordOutput{Keyword: keyword, Tasks: found}
}
