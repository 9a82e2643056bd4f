package tasklist_test

import (
	"errors"
	"testing"
	"time"

	"gbot/internal/model"
	"gbot/internal/task"
	"gbot/internal/task/tasklist"
)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func seeded(t *testing.T, tasks ...model.Task) *tasklist.TaskList {
	t.Helper()
	l := tasklist.New()
	for _, tk := range tasks {
		if err := l.Add(tk); err != nil {
			t.Fatalf("Add(%+v) failed: %v", tk, err)
		}
	}
	return l
}

func descriptions(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Description)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAddRejectsBlankDescription(t *testing.T) {
	l := tasklist.New()
	if err := l.Add(model.NewTodo("  ")); !errors.Is(err, task.ErrEmptyDescription) {
		t.Fatalf("expected ErrEmptyDescription, got %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestDeleteShiftsLaterTasksDown(t *testing.T) {
	l := seeded(t, model.NewTodo("a"), model.NewTodo("b"), model.NewTodo("c"), model.NewTodo("d"))

	third, _ := l.Get(3)
	fourth, _ := l.Get(4)

	removed, err := l.Delete(2)
	if err != nil {
		t.Fatalf("Delete(2) failed: %v", err)
	}
	if removed.Description != "b" {
		t.Errorf("removed %q, want %q", removed.Description, "b")
	}
	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}

	got2, _ := l.Get(2)
	got3, _ := l.Get(3)
	if got2 != third || got3 != fourth {
		t.Errorf("after delete got %q,%q; want %q,%q", got2.Description, got3.Description, third.Description, fourth.Description)
	}
	first, _ := l.Get(1)
	if first.Description != "a" {
		t.Errorf("task before the deleted index moved: %q", first.Description)
	}
}

func TestMarkUnmarkRoundTrip(t *testing.T) {
	l := seeded(t, model.NewTodo("a"), model.NewDeadline("b", at(2019, 12, 2, 18, 0)))
	before, _ := l.Get(2)

	marked, err := l.Mark(2)
	if err != nil || !marked.Done {
		t.Fatalf("Mark(2) = %+v, %v", marked, err)
	}
	if again, _ := l.Mark(2); !again.Done {
		t.Errorf("Mark should be idempotent")
	}

	unmarked, err := l.Unmark(2)
	if err != nil {
		t.Fatalf("Unmark(2) failed: %v", err)
	}
	if unmarked != before {
		t.Errorf("round trip changed task: %+v != %+v", unmarked, before)
	}
	if again, _ := l.Unmark(2); again.Done {
		t.Errorf("Unmark should be idempotent")
	}
}

func TestIndexOutOfRange(t *testing.T) {
	l := seeded(t, model.NewTodo("a"), model.NewTodo("b"))

	tests := []struct {
		name  string
		index int
		op    func(int) (model.Task, error)
	}{
		{name: "Get zero", index: 0, op: l.Get},
		{name: "Mark past end", index: 3, op: l.Mark},
		{name: "Unmark negative", index: -1, op: l.Unmark},
		{name: "Delete past end", index: 5, op: l.Delete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.op(tt.index)
			if !errors.Is(err, task.ErrIndexOutOfRange) {
				t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
			}
			var ie *task.IndexError
			if !errors.As(err, &ie) || ie.Index != tt.index || ie.Size != 2 {
				t.Errorf("unexpected IndexError: %+v", ie)
			}
		})
	}

	if l.Len() != 2 {
		t.Errorf("failed operations changed the list: Len() = %d", l.Len())
	}
}

func TestFindByDate(t *testing.T) {
	l := seeded(t,
		model.NewTodo("read"),
		model.NewDeadline("D", at(2025, 8, 28, 18, 0)),
		model.NewEvent("E", at(2025, 8, 27, 9, 0), at(2025, 8, 29, 17, 0)),
		model.NewEvent("later", at(2025, 8, 30, 9, 0), at(2025, 8, 30, 10, 0)),
	)

	tests := []struct {
		name string
		date time.Time
		want []string
	}{
		{name: "Deadline day inside event", date: at(2025, 8, 28, 0, 0), want: []string{"D", "E"}},
		{name: "Event start day", date: at(2025, 8, 27, 0, 0), want: []string{"E"}},
		{name: "Event end day", date: at(2025, 8, 29, 0, 0), want: []string{"E"}},
		{name: "Single day event", date: at(2025, 8, 30, 0, 0), want: []string{"later"}},
		{name: "Nothing", date: at(2025, 9, 1, 0, 0), want: []string{}},
		{name: "Time of day ignored", date: at(2025, 8, 28, 23, 59), want: []string{"D", "E"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.FindByDate(tt.date)
			if got == nil {
				t.Fatalf("FindByDate returned nil")
			}
			if !equal(descriptions(got), tt.want) {
				t.Errorf("FindByDate(%v) = %v, want %v", tt.date, descriptions(got), tt.want)
			}
		})
	}
}

func TestFindByDateAcrossYears(t *testing.T) {
	l := seeded(t, model.NewEvent("holiday", at(2024, 12, 30, 9, 0), at(2025, 1, 2, 9, 0)))

	if got := l.FindByDate(at(2024, 12, 31, 0, 0)); len(got) != 1 {
		t.Errorf("expected the event to span new year, got %v", descriptions(got))
	}
	if got := l.FindByDate(at(2025, 1, 3, 0, 0)); len(got) != 0 {
		t.Errorf("expected no match after the event, got %v", descriptions(got))
	}
}

func TestFindByKeyword(t *testing.T) {
	l := seeded(t, model.NewTodo("read book"), model.NewTodo("return Book"), model.NewTodo("buy milk"))

	tests := []struct {
		name    string
		keyword string
		want    []string
	}{
		{name: "Case sensitive", keyword: "book", want: []string{"read book"}},
		{name: "Substring", keyword: "re", want: []string{"read book", "return Book"}},
		{name: "No match", keyword: "xyz", want: []string{}},
		{name: "Empty matches all", keyword: "", want: []string{"read book", "return Book", "buy milk"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.FindByKeyword(tt.keyword)
			if got == nil || !equal(descriptions(got), tt.want) {
				t.Errorf("FindByKeyword(%q) = %v, want %v", tt.keyword, descriptions(got), tt.want)
			}
		})
	}
}

func TestTasksAndReplaceCopy(t *testing.T) {
	l := seeded(t, model.NewTodo("a"))

	out := l.Tasks()
	out[0].Description = "changed"
	if got, _ := l.Get(1); got.Description != "a" {
		t.Errorf("Tasks() leaked internal storage")
	}

	in := []model.Task{model.NewTodo("x"), model.NewTodo("y")}
	l.Replace(in)
	in[0].Description = "changed"
	if got, _ := l.Get(1); got.Description != "x" || l.Len() != 2 {
		t.Errorf("Replace() kept a reference to the caller's slice")
	}
}
