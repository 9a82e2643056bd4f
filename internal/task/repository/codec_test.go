package repository_test

import (
	"errors"
	"testing"
	"time"

	"gbot/internal/model"
	"gbot/internal/task/repository"
)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestEncodeRecord(t *testing.T) {
	done := model.NewTodo("borrow book")
	done.Done = true

	tests := []struct {
		name string
		task model.Task
		want string
	}{
		{name: "Todo", task: model.NewTodo("read"), want: "T | 0 | read"},
		{name: "Done todo", task: done, want: "T | 1 | borrow book"},
		{name: "Deadline", task: model.NewDeadline("return book", at(2019, 12, 2, 18, 0)), want: "D | 0 | return book | 2019-12-02T18:00:00"},
		{
			name: "Event",
			task: model.NewEvent("meeting", at(2019, 10, 15, 14, 0), at(2019, 10, 15, 16, 0)),
			want: "E | 0 | meeting | 2019-10-15T14:00:00 | 2019-10-15T16:00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := repository.EncodeRecord(tt.task); got != tt.want {
				t.Errorf("EncodeRecord() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeadlineRecordRoundTrip(t *testing.T) {
	d := model.NewDeadline("return book", at(2019, 12, 2, 18, 0))
	d.Done = true

	got, err := repository.DecodeRecord(repository.EncodeRecord(d), time.UTC)
	if err != nil {
		t.Fatalf("DecodeRecord failed: %v", err)
	}
	if got.Kind != d.Kind || got.Description != d.Description || got.Done != d.Done || !got.Due.Equal(d.Due) {
		t.Errorf("round trip = %+v, want %+v", got, d)
	}
}

func TestDecodeRecord(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantKind  model.Kind
		wantDesc  string
		wantDone  bool
		wantStart time.Time
		wantEnd   time.Time
	}{
		{name: "Todo", line: "T | 1 | borrow book", wantKind: model.KindTodo, wantDesc: "borrow book", wantDone: true},
		{name: "Deadline without seconds", line: "D | 0 | return book | 2019-12-02T18:00", wantKind: model.KindDeadline, wantDesc: "return book", wantStart: at(2019, 12, 2, 18, 0)},
		{name: "Deadline with fraction", line: "D | 0 | x | 2019-12-02T18:00:00.5", wantKind: model.KindDeadline, wantDesc: "x", wantStart: time.Date(2019, 12, 2, 18, 0, 0, 500000000, time.UTC)},
		{name: "Event", line: "E | 0 | trip | 2019-10-15T14:00:00 | 2019-10-17T17:00:00", wantKind: model.KindEvent, wantDesc: "trip", wantStart: at(2019, 10, 15, 14, 0), wantEnd: at(2019, 10, 17, 17, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repository.DecodeRecord(tt.line, time.UTC)
			if err != nil {
				t.Fatalf("DecodeRecord(%q) failed: %v", tt.line, err)
			}
			if got.Kind != tt.wantKind || got.Description != tt.wantDesc || got.Done != tt.wantDone {
				t.Errorf("DecodeRecord(%q) = %+v", tt.line, got)
			}
			switch got.Kind {
			case model.KindDeadline:
				if !got.Due.Equal(tt.wantStart) {
					t.Errorf("Due = %v, want %v", got.Due, tt.wantStart)
				}
			case model.KindEvent:
				if !got.Start.Equal(tt.wantStart) || !got.End.Equal(tt.wantEnd) {
					t.Errorf("Start/End = %v/%v, want %v/%v", got.Start, got.End, tt.wantStart, tt.wantEnd)
				}
			}
		})
	}
}

func TestDecodeRecordCorrupted(t *testing.T) {
	lines := []string{
		"",
		"garbage",
		"T | 0",
		"T | 0 | a | extra",
		"D | 0 | no date",
		"D | 0 | bad | tomorrow",
		"E | 0 | half | 2019-10-15T14:00:00",
		"E | 0 | bad end | 2019-10-15T14:00:00 | soon",
		"X | 0 | what",
		"T | x | foo",
		"T |  | foo",
		"D | yes | report | 2019-12-02T18:00:00",
		"E | 2 | trip | 2019-10-15T14:00:00 | 2019-10-15T16:00:00",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			if _, err := repository.DecodeRecord(line, time.UTC); !errors.Is(err, repository.ErrCorruptedRecord) {
				t.Errorf("DecodeRecord(%q) error = %v, want ErrCorruptedRecord", line, err)
			}
		})
	}
}
