package repository

import (
	"fmt"
	"strings"
	"time"

	"gbot/internal/model"
)

const (
	// TimeLayout is the local ISO-8601 form used for persisted instants.
	TimeLayout = "2006-01-02T15:04:05"

	fieldSeparator = " | "

	codeTodo     = "T"
	codeDeadline = "D"
	codeEvent    = "E"
)

// readLayouts are tried in order when decoding; seconds may be absent in
// files written by older versions.
var readLayouts = []string{
	TimeLayout,
	"2006-01-02T15:04",
}

// EncodeRecord renders t as one persisted line, without a trailing newline.
func EncodeRecord(t model.Task) string {
	done := "0"
	if t.Done {
		done = "1"
	}

	switch t.Kind {
	case model.KindDeadline:
		return strings.Join([]string{codeDeadline, done, t.Description, t.Due.Format(TimeLayout)}, fieldSeparator)
	case model.KindEvent:
		return strings.Join([]string{codeEvent, done, t.Description, t.Start.Format(TimeLayout), t.End.Format(TimeLayout)}, fieldSeparator)
	default:
		return strings.Join([]string{codeTodo, done, t.Description}, fieldSeparator)
	}
}

// DecodeRecord parses one persisted line. Instants are read in loc. Any line
// that does not match a known shape yields ErrCorruptedRecord.
func DecodeRecord(line string, loc *time.Location) (model.Task, error) {
	parts := strings.Split(line, fieldSeparator)
	if len(parts) < 3 {
		return model.Task{}, corrupted(line)
	}

	code := strings.TrimSpace(parts[0])
	desc := strings.TrimSpace(parts[2])

	var done bool
	switch strings.TrimSpace(parts[1]) {
	case "0":
	case "1":
		done = true
	default:
		return model.Task{}, corrupted(line)
	}

	var t model.Task
	switch code {
	case codeTodo:
		if len(parts) != 3 {
			return model.Task{}, corrupted(line)
		}
		t = model.NewTodo(desc)

	case codeDeadline:
		if len(parts) != 4 {
			return model.Task{}, corrupted(line)
		}
		due, err := ParseInstant(parts[3], loc)
		if err != nil {
			return model.Task{}, corrupted(line)
		}
		t = model.NewDeadline(desc, due)

	case codeEvent:
		if len(parts) != 5 {
			return model.Task{}, corrupted(line)
		}
		start, err := ParseInstant(parts[3], loc)
		if err != nil {
			return model.Task{}, corrupted(line)
		}
		end, err := ParseInstant(parts[4], loc)
		if err != nil {
			return model.Task{}, corrupted(line)
		}
		t = model.NewEvent(desc, start, end)

	default:
		return model.Task{}, corrupted(line)
	}

	t.Done = done
	return t, nil
}

// ParseInstant reads a persisted instant in loc.
func ParseInstant(text string, loc *time.Location) (time.Time, error) {
	text = strings.TrimSpace(text)
	var lastErr error
	for _, layout := range readLayouts {
		t, err := time.ParseInLocation(layout, text, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func corrupted(line string) error {
	return fmt.Errorf("%w: %q", ErrCorruptedRecord, line)
}
