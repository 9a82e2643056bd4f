package sqlite

import (
	"fmt"
	"time"

	"gbot/internal/model"
	"gbot/internal/task/repository"
)

// taskRow is the column form of a task. Instants are stored as text in
// repository.TimeLayout; unused ones are empty.
type taskRow struct {
	kind        string
	done        bool
	description string
	due         string
	start       string
	end         string
}

func fromTask(t model.Task) taskRow {
	row := taskRow{kind: t.Kind.String(), done: t.Done, description: t.Description}
	switch t.Kind {
	case model.KindDeadline:
		row.due = t.Due.Format(repository.TimeLayout)
	case model.KindEvent:
		row.start = t.Start.Format(repository.TimeLayout)
		row.end = t.End.Format(repository.TimeLayout)
	}
	return row
}

func (row taskRow) toTask(loc *time.Location) (model.Task, error) {
	var t model.Task
	switch row.kind {
	case model.KindTodo.String():
		t = model.NewTodo(row.description)
	case model.KindDeadline.String():
		due, err := repository.ParseInstant(row.due, loc)
		if err != nil {
			return model.Task{}, fmt.Errorf("%w: due %q", repository.ErrCorruptedRecord, row.due)
		}
		t = model.NewDeadline(row.description, due)
	case model.KindEvent.String():
		start, err := repository.ParseInstant(row.start, loc)
		if err != nil {
			return model.Task{}, fmt.Errorf("%w: start %q", repository.ErrCorruptedRecord, row.start)
		}
		end, err := repository.ParseInstant(row.end, loc)
		if err != nil {
			return model.Task{}, fmt.Errorf("%w: end %q", repository.ErrCorruptedRecord, row.end)
		}
		t = model.NewEvent(row.description, start, end)
	default:
		return model.Task{}, fmt.Errorf("%w: kind %q", repository.ErrCorruptedRecord, row.kind)
	}
	t.Done = row.done
	return t, nil
}
