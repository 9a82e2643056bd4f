package command_test

import (
	"errors"
	"testing"
	"time"

	"gbot/internal/model"
	"gbot/internal/task"
	"gbot/internal/task/command"
	"gbot/pkg/datemath"
)

func newResolver(t *testing.T) *datemath.Resolver {
	t.Helper()
	r, err := datemath.NewResolver("UTC")
	if err != nil {
		t.Fatalf("failed to create resolver: %v", err)
	}
	return r
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantKind command.Kind
		wantArgs string
		wantErr  error
	}{
		{name: "Empty", raw: "", wantErr: task.ErrEmptyInput},
		{name: "Blank", raw: "   ", wantErr: task.ErrEmptyInput},
		{name: "Todo", raw: "todo borrow book", wantKind: command.KindTodo, wantArgs: "borrow book"},
		{name: "Upper case keyword", raw: "TODO read", wantKind: command.KindTodo, wantArgs: "read"},
		{name: "No arguments", raw: "list", wantKind: command.KindList, wantArgs: ""},
		{name: "Tab separated", raw: "mark\t 2", wantKind: command.KindMark, wantArgs: "2"},
		{name: "Whitespace run", raw: "  find    book  ", wantKind: command.KindFind, wantArgs: "book"},
		{name: "Find date", raw: "find-date 2019-12-02", wantKind: command.KindFindDate, wantArgs: "2019-12-02"},
		{name: "Deadline keeps separators", raw: "deadline return book /by 2019-12-02", wantKind: command.KindDeadline, wantArgs: "return book /by 2019-12-02"},
		{name: "Bye", raw: "Bye", wantKind: command.KindBye},
		{name: "Unknown", raw: "blah blah", wantErr: task.ErrUnknownCommand},
		{name: "Prefix of keyword", raw: "tod x", wantErr: task.ErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := command.ParseLine(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseLine(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLine(%q) unexpected error: %v", tt.raw, err)
			}
			if got.Kind != tt.wantKind || got.Arguments != tt.wantArgs {
				t.Errorf("ParseLine(%q) = %+v, want kind %v args %q", tt.raw, got, tt.wantKind, tt.wantArgs)
			}
		})
	}
}

func TestParseLineUnknownCarriesKeyword(t *testing.T) {
	_, err := command.ParseLine("Blah something")
	var ie *task.InputError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *task.InputError, got %T", err)
	}
	if ie.Input != "Blah" {
		t.Errorf("Input = %q, want %q", ie.Input, "Blah")
	}
}

func TestKindKeywordAndExit(t *testing.T) {
	if got := command.KindFindDate.Keyword(); got != "find-date" {
		t.Errorf("KindFindDate.Keyword() = %q", got)
	}
	if len(command.Keywords()) != 10 {
		t.Errorf("Keywords() = %v, want 10 entries", command.Keywords())
	}
	if !(command.Command{Kind: command.KindBye}).IsExit() {
		t.Errorf("bye should exit")
	}
	if (command.Command{Kind: command.KindList}).IsExit() {
		t.Errorf("list should not exit")
	}
}

func TestParseTodo(t *testing.T) {
	got, err := command.ParseTodo(" borrow book ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != model.KindTodo || got.Description != "borrow book" || got.Done {
		t.Errorf("ParseTodo() = %+v", got)
	}

	if _, err := command.ParseTodo("  "); !errors.Is(err, task.ErrEmptyDescription) {
		t.Errorf("expected ErrEmptyDescription, got %v", err)
	}
}

func TestParseDeadline(t *testing.T) {
	r := newResolver(t)

	tests := []struct {
		name      string
		args      string
		wantDesc  string
		wantDue   time.Time
		wantErr   error
		wantInput string
	}{
		{name: "Date only", args: "return book /by 2019-12-02", wantDesc: "return book", wantDue: at(2019, 12, 2, 23, 59)},
		{name: "Date and time", args: "submit report /by 2/12/2019 1800", wantDesc: "submit report", wantDue: at(2019, 12, 2, 18, 0)},
		{name: "Meridiem", args: "meeting /by 15/10/2019 2:30PM", wantDesc: "meeting", wantDue: at(2019, 10, 15, 14, 30)},
		{name: "Splits on first separator", args: "a /by b /by 2019-12-02", wantErr: task.ErrInvalidDateTime, wantInput: "b /by 2019-12-02"},
		{name: "Missing separator", args: "return book 2019-12-02", wantErr: task.ErrMissingSeparator},
		{name: "Separator without spaces", args: "return book/by 2019-12-02", wantErr: task.ErrMissingSeparator},
		{name: "Trailing empty date", args: "report /by ", wantErr: task.ErrEmptyFields},
		{name: "Blank description", args: "  /by 2019-12-02", wantErr: task.ErrEmptyFields},
		{name: "Bad date", args: "report /by someday", wantErr: task.ErrInvalidDateTime, wantInput: "someday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := command.ParseDeadline(tt.args, r)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseDeadline(%q) error = %v, want %v", tt.args, err, tt.wantErr)
				}
				if tt.wantInput != "" {
					var ie *task.InputError
					if !errors.As(err, &ie) || ie.Input != tt.wantInput {
						t.Errorf("expected offending input %q, got %v", tt.wantInput, err)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDeadline(%q) unexpected error: %v", tt.args, err)
			}
			if got.Kind != model.KindDeadline || got.Description != tt.wantDesc || !got.Due.Equal(tt.wantDue) {
				t.Errorf("ParseDeadline(%q) = %+v", tt.args, got)
			}
		})
	}
}

func TestParseEvent(t *testing.T) {
	r := newResolver(t)

	tests := []struct {
		name      string
		args      string
		wantStart time.Time
		wantEnd   time.Time
		wantErr   error
		wantInput string
	}{
		{
			name:      "Same day",
			args:      "project meeting /from 2019-10-15 1400 /to 2019-10-15 1600",
			wantStart: at(2019, 10, 15, 14, 0),
			wantEnd:   at(2019, 10, 15, 16, 0),
		},
		{
			name:      "Across days",
			args:      "conference /from 15/10/2019 2:00PM /to 17/10/2019 5:00PM",
			wantStart: at(2019, 10, 15, 14, 0),
			wantEnd:   at(2019, 10, 17, 17, 0),
		},
		{
			name:      "Equal ends",
			args:      "blip /from 2019-10-15 1400 /to 2019-10-15 1400",
			wantStart: at(2019, 10, 15, 14, 0),
			wantEnd:   at(2019, 10, 15, 14, 0),
		},
		{name: "End before start", args: "trip /from 2019-10-15 1400 /to 2019-10-15 1200", wantErr: task.ErrRangeOrder},
		{name: "Missing from", args: "trip /to 2019-10-15", wantErr: task.ErrMissingSeparator},
		{name: "Missing to", args: "trip /from 2019-10-15", wantErr: task.ErrMissingSeparator},
		{name: "To before from", args: "trip /to 2019-10-16 /from 2019-10-15", wantErr: task.ErrMissingSeparator},
		{name: "Empty start", args: "trip /from  /to 2019-10-15", wantErr: task.ErrEmptyFields},
		{name: "Empty start with shared space", args: "trip /from /to 2019-10-16", wantErr: task.ErrEmptyFields},
		{name: "Start word beginning with to", args: "trip /from /tomorrow", wantErr: task.ErrMissingSeparator},
		{name: "Blank description", args: " /from 2019-10-15 /to 2019-10-16", wantErr: task.ErrEmptyFields},
		{name: "Bad start", args: "trip /from soon /to 2019-10-15", wantErr: task.ErrInvalidDateTime, wantInput: "soon"},
		{name: "Bad end", args: "trip /from 2019-10-15 /to later", wantErr: task.ErrInvalidDateTime, wantInput: "later"},
		{name: "Bad end wins over order", args: "trip /from 2019-10-15 /to 2019-10-14 99", wantErr: task.ErrInvalidDateTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := command.ParseEvent(tt.args, r)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseEvent(%q) error = %v, want %v", tt.args, err, tt.wantErr)
				}
				if tt.wantInput != "" {
					var ie *task.InputError
					if !errors.As(err, &ie) || ie.Input != tt.wantInput {
						t.Errorf("expected offending input %q, got %v", tt.wantInput, err)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEvent(%q) unexpected error: %v", tt.args, err)
			}
			if got.Kind != model.KindEvent || !got.Start.Equal(tt.wantStart) || !got.End.Equal(tt.wantEnd) {
				t.Errorf("ParseEvent(%q) = %+v", tt.args, got)
			}
		})
	}
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		name    string
		args    string
		want    int
		wantErr error
	}{
		{name: "Plain", args: "3", want: 3},
		{name: "Padded", args: "  12 ", want: 12},
		{name: "Negative parses", args: "-1", want: -1},
		{name: "Empty", args: " ", wantErr: task.ErrEmptyIndex},
		{name: "Word", args: "two", wantErr: task.ErrNotANumber},
		{name: "Decimal", args: "1.5", wantErr: task.ErrNotANumber},
		{name: "Overflow", args: "99999999999999999999", wantErr: task.ErrNotANumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := command.ParseIndex(tt.args)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseIndex(%q) error = %v, want %v", tt.args, err, tt.wantErr)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseIndex(%q) = %d, %v; want %d", tt.args, got, err, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	r := newResolver(t)

	got, err := command.ParseDate(" 28/08/2025 ", r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := at(2025, 8, 28, 0, 0); !got.Equal(want) {
		t.Errorf("ParseDate() = %v, want %v", got, want)
	}

	if _, err := command.ParseDate("", r); !errors.Is(err, task.ErrEmptyDate) {
		t.Errorf("expected ErrEmptyDate, got %v", err)
	}

	_, err = command.ParseDate("2025-08-28 1800", r)
	var ie *task.InputError
	if !errors.Is(err, task.ErrDateFormat) || !errors.As(err, &ie) || ie.Input != "2025-08-28 1800" {
		t.Errorf("expected ErrDateFormat carrying the literal, got %v", err)
	}
}
