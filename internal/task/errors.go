package task

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the task package.
var (
	ErrEmptyInput       = errors.New("command is empty")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrEmptyDescription = errors.New("task description cannot be empty")
	ErrEmptyFields      = errors.New("required fields cannot be empty")
	ErrMissingSeparator = errors.New("missing separator")
	ErrInvalidDateTime  = errors.New("invalid date/time format")
	ErrDateFormat       = errors.New("invalid date format")
	ErrRangeOrder       = errors.New("end date/time cannot be before start date/time")
	ErrEmptyIndex       = errors.New("index cannot be empty")
	ErrNotANumber       = errors.New("index must be a whole number")
	ErrEmptyDate        = errors.New("date cannot be empty")
	ErrIndexOutOfRange  = errors.New("task index out of range")
	ErrPersistence      = errors.New("failed to persist tasks")
)

// InputError carries the piece of user input that caused Err, for display.
type InputError struct {
	Err   error
	Input string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Input)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// IndexError reports an index outside [1, Size].
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: %d (have %d)", ErrIndexOutOfRange, e.Index, e.Size)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
