package tasklist

import (
	"strings"
	"time"

	"gbot/internal/model"
	"gbot/internal/task"
)

// TaskList is the ordered, in-memory collection of tasks. Indices seen by
// callers are 1-based. It owns its slice: tasks go in and come out by value.
type TaskList struct {
	tasks []model.Task
}

// New returns an empty list.
func New() *TaskList {
	return &TaskList{tasks: make([]model.Task, 0)}
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Tasks returns a copy of the tasks in list order.
func (l *TaskList) Tasks() []model.Task {
	out := make([]model.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Replace discards the current contents and adopts a copy of tasks.
func (l *TaskList) Replace(tasks []model.Task) {
	l.tasks = make([]model.Task, len(tasks))
	copy(l.tasks, tasks)
}

// Add appends t to the end of the list.
func (l *TaskList) Add(t model.Task) error {
	if strings.TrimSpace(t.Description) == "" {
		return task.ErrEmptyDescription
	}
	l.tasks = append(l.tasks, t)
	return nil
}

// Get returns the task at index.
func (l *TaskList) Get(index int) (model.Task, error) {
	i, err := l.position(index)
	if err != nil {
		return model.Task{}, err
	}
	return l.tasks[i], nil
}

// Mark sets the done flag of the task at index and returns it.
func (l *TaskList) Mark(index int) (model.Task, error) {
	return l.setDone(index, true)
}

// Unmark clears the done flag of the task at index and returns it.
func (l *TaskList) Unmark(index int) (model.Task, error) {
	return l.setDone(index, false)
}

// Delete removes the task at index. Tasks after it move down by one.
func (l *TaskList) Delete(index int) (model.Task, error) {
	i, err := l.position(index)
	if err != nil {
		return model.Task{}, err
	}
	removed := l.tasks[i]
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return removed, nil
}

// FindByDate returns the tasks that fall on the calendar day of date, in
// list order. Only the year, month and day of each instant are compared.
func (l *TaskList) FindByDate(date time.Time) []model.Task {
	target := dayOf(date)
	out := make([]model.Task, 0)
	for _, t := range l.tasks {
		if occursOn(t, target) {
			out = append(out, t)
		}
	}
	return out
}

// FindByKeyword returns the tasks whose description contains keyword,
// case-sensitively, in list order.
func (l *TaskList) FindByKeyword(keyword string) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range l.tasks {
		if strings.Contains(t.Description, keyword) {
			out = append(out, t)
		}
	}
	return out
}

func (l *TaskList) setDone(index int, done bool) (model.Task, error) {
	i, err := l.position(index)
	if err != nil {
		return model.Task{}, err
	}
	l.tasks[i].Done = done
	return l.tasks[i], nil
}

func (l *TaskList) position(index int) (int, error) {
	if index < 1 || index > len(l.tasks) {
		return 0, &task.IndexError{Index: index, Size: len(l.tasks)}
	}
	return index - 1, nil
}

// day is a calendar date stripped of time and zone.
type day struct {
	year  int
	month time.Month
	day   int
}

func dayOf(t time.Time) day {
	y, m, d := t.Date()
	return day{year: y, month: m, day: d}
}

func (d day) before(o day) bool {
	if d.year != o.year {
		return d.year < o.year
	}
	if d.month != o.month {
		return d.month < o.month
	}
	return d.day < o.day
}

func occursOn(t model.Task, target day) bool {
	switch t.Kind {
	case model.KindDeadline:
		return dayOf(t.Due) == target
	case model.KindEvent:
		start, end := dayOf(t.Start), dayOf(t.End)
		if target == start || target == end {
			return true
		}
		return start.before(target) && target.before(end)
	default:
		return false
	}
}
