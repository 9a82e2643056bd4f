package model

import "time"

// Kind is the closed set of task variants.
type Kind int

const (
	KindTodo Kind = iota
	KindDeadline
	KindEvent
)

func (k Kind) String() string {
	switch k {
	case KindTodo:
		return "todo"
	case KindDeadline:
		return "deadline"
	case KindEvent:
		return "event"
	default:
		return "unknown"
	}
}

// Task is a unit of tracked work. Which time fields are meaningful depends
// on Kind: Due for deadlines, Start and End for events, none for todos.
type Task struct {
	Kind        Kind
	Description string
	Done        bool
	Due         time.Time
	Start       time.Time
	End         time.Time
}

func NewTodo(description string) Task {
	return Task{Kind: KindTodo, Description: description}
}

func NewDeadline(description string, due time.Time) Task {
	return Task{Kind: KindDeadline, Description: description, Due: due}
}

// NewEvent does not check that end is not before start; the parser does.
func NewEvent(description string, start, end time.Time) Task {
	return Task{Kind: KindEvent, Description: description, Start: start, End: end}
}
