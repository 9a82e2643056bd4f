package task

import (
	"time"

	"gbot/internal/model"
)

// LoadOutput is the result of loading persisted tasks.
type LoadOutput struct {
	Count int
}

// AddOutput is the result of adding a task.
type AddOutput struct {
	Task  model.Task
	Total int // list size after the add
}

// ListOutput holds every task in display order.
type ListOutput struct {
	Tasks []model.Task
}

// MarkOutput is the task after its done flag changed.
type MarkOutput struct {
	Index int
	Task  model.Task
}

// DeleteOutput is the removed task and the remaining count.
type DeleteOutput struct {
	Task  model.Task
	Total int
}

// FindByDateOutput holds tasks that fall on Date, in list order.
type FindByDateOutput struct {
	Date  time.Time
	Tasks []model.Task
}

// FindByKeywordOutput holds tasks whose description contains Keyword.
type FindByKeywordOutput struct {
	Keyword string
	Tasks   []model.Task
}
