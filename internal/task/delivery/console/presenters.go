package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gbot/internal/model"
	"gbot/internal/task"
)

// DisplayLayout renders deadline and event instants, e.g. "Dec 02 2019, 6:00PM".
const DisplayLayout = "Jan 02 2006, 3:04PM"

const dateHeaderLayout = "Jan 02 2006"

type styles struct {
	divider lipgloss.Style
	title   lipgloss.Style
	done    lipgloss.Style
	err     lipgloss.Style
	hint    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		divider: r.NewStyle().Foreground(lipgloss.Color("241")),
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("170")),
		done:    r.NewStyle().Foreground(lipgloss.Color("10")),
		err:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		hint:    r.NewStyle().Foreground(lipgloss.Color("243")),
	}
}

// FormatTask renders t the way it appears in listings, without an index:
// "[T][X] read", "[D][ ] return book (by: Dec 02 2019, 6:00PM)".
func FormatTask(t model.Task) string {
	check := " "
	if t.Done {
		check = "X"
	}

	switch t.Kind {
	case model.KindDeadline:
		return fmt.Sprintf("[D][%s] %s (by: %s)", check, t.Description, t.Due.Format(DisplayLayout))
	case model.KindEvent:
		return fmt.Sprintf("[E][%s] %s (from: %s to: %s)", check, t.Description,
			t.Start.Format(DisplayLayout), t.End.Format(DisplayLayout))
	default:
		return fmt.Sprintf("[T][%s] %s", check, t.Description)
	}
}

func (h *handler) renderTask(t model.Task) string {
	if t.Done {
		return h.styles.done.Render(FormatTask(t))
	}
	return FormatTask(t)
}

// block writes lines between two dividers.
func (h *handler) block(lines ...string) {
	divider := h.styles.divider.Render(strings.Repeat("_", h.cfg.DividerWidth))
	fmt.Fprintln(h.out, divider)
	for _, line := range lines {
		fmt.Fprintln(h.out, line)
	}
	fmt.Fprintln(h.out, divider)
}

func (h *handler) numbered(tasks []model.Task) []string {
	lines := make([]string, 0, len(tasks))
	for i, t := range tasks {
		lines = append(lines, fmt.Sprintf("%d.%s", i+1, h.renderTask(t)))
	}
	return lines
}

func (h *handler) showWelcome() {
	h.block(
		h.styles.title.Render("Hello! I'm "+h.cfg.Name),
		h.cfg.Tagline,
		"What can I do for you?",
	)
	fmt.Fprintln(h.out)
}

func (h *handler) showGoodbye() {
	h.block("Bye. Hope to see you again soon!")
}

func (h *handler) showLoaded(count int) {
	fmt.Fprintln(h.out, h.styles.hint.Render(fmt.Sprintf("Loaded %d tasks from storage", count)))
}

func (h *handler) showLoadingError(err error) {
	fmt.Fprintln(h.out, h.styles.err.Render("Error loading tasks from storage. Starting with empty task list."))
	fmt.Fprintln(h.out, h.styles.hint.Render(err.Error()))
}

func (h *handler) showError(lines []string) {
	if len(lines) == 0 {
		return
	}
	out := make([]string, 0, len(lines))
	out = append(out, h.styles.err.Render(lines[0]))
	for _, line := range lines[1:] {
		out = append(out, h.styles.hint.Render(line))
	}
	h.block(out...)
}

func (h *handler) showTaskAdded(out task.AddOutput) {
	h.block(
		"Got it. I've added this task:",
		"  "+h.renderTask(out.Task),
		fmt.Sprintf("Now you have %d tasks in the list.", out.Total),
	)
}

func (h *handler) showTaskList(out task.ListOutput) {
	if len(out.Tasks) == 0 {
		h.block("Your list is empty.")
		return
	}
	h.block(append([]string{"Here are the tasks in your list:"}, h.numbered(out.Tasks)...)...)
}

func (h *handler) showTaskMarked(out task.MarkOutput) {
	h.block("Nice! I've marked this task as done:", "  "+h.renderTask(out.Task))
}

func (h *handler) showTaskUnmarked(out task.MarkOutput) {
	h.block("Ok, I've marked this task as not done yet:", "  "+h.renderTask(out.Task))
}

func (h *handler) showTaskDeleted(out task.DeleteOutput) {
	h.block(
		"Noted. I've removed this task:",
		"  "+h.renderTask(out.Task),
		fmt.Sprintf("Now you have %d tasks in the list.", out.Total),
	)
}

func (h *handler) showTasksOnDate(out task.FindByDateOutput) {
	header := fmt.Sprintf("Tasks on %s:", out.Date.Format(dateHeaderLayout))
	if len(out.Tasks) == 0 {
		h.block(header, "No tasks found on this date.")
		return
	}
	h.block(append([]string{header}, h.numbered(out.Tasks)...)...)
}

func (h *handler) showTasksWithKeyword(out task.FindByKeywordOutput) {
	if len(out.Tasks) == 0 {
		h.block(fmt.Sprintf("No tasks match %q.", out.Keyword))
		return
	}
	h.block(append([]string{"Here are the matching tasks in your list:"}, h.numbered(out.Tasks)...)...)
}
