package command

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"gbot/internal/model"
	"gbot/internal/task"
)

const (
	SeparatorBy   = " /by "
	SeparatorFrom = " /from "
	SeparatorTo   = " /to "
)

// ParseLine splits raw input into a keyword and argument text and maps the
// keyword, case-insensitively, to a command kind.
func ParseLine(raw string) (Command, error) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return Command{}, task.ErrEmptyInput
	}

	keyword, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		keyword, rest = line[:i], line[i:]
	}

	kind, ok := byKeyword[strings.ToLower(keyword)]
	if !ok {
		return Command{}, &task.InputError{Err: task.ErrUnknownCommand, Input: keyword}
	}

	return Command{Kind: kind, Arguments: strings.TrimSpace(rest)}, nil
}

// ParseTodo builds a todo from its description.
func ParseTodo(args string) (model.Task, error) {
	desc := strings.TrimSpace(args)
	if desc == "" {
		return model.Task{}, task.ErrEmptyDescription
	}
	return model.NewTodo(desc), nil
}

// ParseDeadline parses "<description> /by <date-or-datetime>".
func ParseDeadline(args string, r DateResolver) (model.Task, error) {
	desc, when, found := strings.Cut(args, SeparatorBy)
	if !found {
		return model.Task{}, &task.InputError{Err: task.ErrMissingSeparator, Input: strings.TrimSpace(SeparatorBy)}
	}

	desc, when = strings.TrimSpace(desc), strings.TrimSpace(when)
	if desc == "" || when == "" {
		return model.Task{}, task.ErrEmptyFields
	}

	due, err := r.ResolveDateTime(when)
	if err != nil {
		return model.Task{}, &task.InputError{Err: task.ErrInvalidDateTime, Input: when}
	}

	return model.NewDeadline(desc, due), nil
}

// ParseEvent parses "<description> /from <start> /to <end>". The range is
// checked only after both ends resolve.
func ParseEvent(args string, r DateResolver) (model.Task, error) {
	if !strings.Contains(args, SeparatorFrom) {
		return model.Task{}, &task.InputError{Err: task.ErrMissingSeparator, Input: strings.TrimSpace(SeparatorFrom)}
	}
	if !strings.Contains(args, SeparatorTo) {
		return model.Task{}, &task.InputError{Err: task.ErrMissingSeparator, Input: strings.TrimSpace(SeparatorTo)}
	}

	desc, span, _ := strings.Cut(args, SeparatorFrom)
	from, to, found := strings.Cut(span, SeparatorTo)
	if !found {
		// "/from /to" shares one space, leaving the start empty.
		if fields := strings.Fields(span); len(fields) > 0 && fields[0] == strings.TrimSpace(SeparatorTo) {
			return model.Task{}, task.ErrEmptyFields
		}
		// "/to" only appears before "/from".
		return model.Task{}, &task.InputError{Err: task.ErrMissingSeparator, Input: strings.TrimSpace(SeparatorTo)}
	}

	desc, from, to = strings.TrimSpace(desc), strings.TrimSpace(from), strings.TrimSpace(to)
	if desc == "" || from == "" || to == "" {
		return model.Task{}, task.ErrEmptyFields
	}

	start, err := r.ResolveDateTime(from)
	if err != nil {
		return model.Task{}, &task.InputError{Err: task.ErrInvalidDateTime, Input: from}
	}
	end, err := r.ResolveDateTime(to)
	if err != nil {
		return model.Task{}, &task.InputError{Err: task.ErrInvalidDateTime, Input: to}
	}

	if end.Before(start) {
		return model.Task{}, task.ErrRangeOrder
	}

	return model.NewEvent(desc, start, end), nil
}

// ParseIndex parses a 1-based task index. Range checking is left to the list.
func ParseIndex(args string) (int, error) {
	text := strings.TrimSpace(args)
	if text == "" {
		return 0, task.ErrEmptyIndex
	}

	index, err := strconv.Atoi(text)
	if err != nil {
		return 0, &task.InputError{Err: task.ErrNotANumber, Input: text}
	}
	return index, nil
}

// ParseDate parses the argument of find-date.
func ParseDate(args string, r DateResolver) (time.Time, error) {
	text := strings.TrimSpace(args)
	if text == "" {
		return time.Time{}, task.ErrEmptyDate
	}

	d, err := r.ResolveDate(text)
	if err != nil {
		return time.Time{}, &task.InputError{Err: task.ErrDateFormat, Input: text}
	}
	return d, nil
}
