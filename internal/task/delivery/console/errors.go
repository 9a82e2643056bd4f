package console

import (
	"errors"
	"fmt"
	"strings"

	"gbot/internal/task"
	"gbot/internal/task/command"
)

var (
	todoFormat = []string{
		"Input todo in format: todo <task>",
		"Example: todo borrow book",
	}
	deadlineFormat = []string{
		"Input deadline in below format:",
		"deadline <task> /by <date> [time]",
		"Examples:",
		"deadline return book /by 2019-12-02",
		"deadline submit report /by 2/12/2019 1800",
		"deadline meeting /by 15/10/2019 2:30PM",
	}
	eventFormat = []string{
		"Input event in the below format:",
		"event <event name> /from <start date-time> /to <end date-time>",
		"Examples:",
		"event project meeting /from 2019-10-15 1400 /to 2019-10-15 1600",
		"event conference /from 15/10/2019 2:00PM /to 17/10/2019 5:00PM",
	}
	dateFormats = []string{
		"Supported formats: yyyy-MM-dd, dd/MM/yyyy, MM/dd/yyyy",
		"Time formats: HHmm, HH:mm, h:mma, ha (optional)",
	}
	findDateFormat = []string{
		"Supported formats: yyyy-MM-dd, dd/MM/yyyy, MM/dd/yyyy",
		"Example: find-date 2019-12-02",
	}
)

// guidance turns an error from the command of kind into the lines shown to
// the user. The first line states the problem; the rest explain the fix.
// total is the current list size, used for index hints.
func guidance(err error, kind command.Kind, total int) []string {
	var input *task.InputError
	errors.As(err, &input)

	switch {
	case errors.Is(err, task.ErrEmptyInput):
		return []string{"Please type a command.", validCommands()}

	case errors.Is(err, task.ErrUnknownCommand):
		head := "Invalid command"
		if input != nil {
			head += ": " + input.Input
		}
		return []string{head, validCommands()}

	case errors.Is(err, task.ErrEmptyDescription):
		return append([]string{"Task description cannot be empty!"}, todoFormat...)

	case errors.Is(err, task.ErrEmptyFields):
		if kind == command.KindEvent {
			return append([]string{"Event description and dates cannot be empty!"}, eventFormat...)
		}
		return append([]string{"Task description and deadline cannot be empty!"}, deadlineFormat...)

	case errors.Is(err, task.ErrMissingSeparator):
		head := "Missing separator"
		if input != nil {
			head = fmt.Sprintf("Missing %q in the command.", input.Input)
		}
		return append([]string{head}, formatFor(kind)...)

	case errors.Is(err, task.ErrInvalidDateTime):
		head := "Invalid date/time format"
		if input != nil {
			head += ": " + input.Input
		}
		return append([]string{head}, dateFormats...)

	case errors.Is(err, task.ErrRangeOrder):
		return append([]string{"End date/time cannot be before start date/time!"}, eventFormat...)

	case errors.Is(err, task.ErrEmptyIndex):
		return []string{"Please give the number of a task.", fmt.Sprintf("Example: %s 1", kind.Keyword())}

	case errors.Is(err, task.ErrNotANumber):
		return []string{"Invalid number format for task index.", "Enter a whole number please"}

	case errors.Is(err, task.ErrIndexOutOfRange):
		if total == 0 {
			return []string{"Invalid index!", "There are no tasks in your list!"}
		}
		return []string{"Invalid index!", fmt.Sprintf("Please enter a number from 1 to %d", total)}

	case errors.Is(err, task.ErrEmptyDate):
		return append([]string{"Please give a date to search for."}, findDateFormat...)

	case errors.Is(err, task.ErrDateFormat):
		head := "Invalid date format"
		if input != nil {
			head += ": " + input.Input
		}
		return append([]string{head}, findDateFormat...)

	case errors.Is(err, task.ErrPersistence):
		return []string{"Could not save your tasks.", err.Error()}

	default:
		return []string{"Error: " + err.Error()}
	}
}

func formatFor(kind command.Kind) []string {
	switch kind {
	case command.KindEvent:
		return eventFormat
	case command.KindDeadline:
		return deadlineFormat
	default:
		return nil
	}
}

func validCommands() string {
	return "Valid commands: " + strings.Join(command.Keywords(), ", ")
}
