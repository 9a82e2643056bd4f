package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"

	"gbot/internal/task"
	"gbot/internal/task/command"
	pkgLog "gbot/pkg/log"
)

func (h *handler) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	h.showWelcome()

	out, err := h.uc.Load(ctx)
	if err != nil {
		h.showLoadingError(err)
	} else {
		h.showLoaded(out.Count)
	}

	lines, readErr := h.readLines(ctx)
	for {
		select {
		case <-ctx.Done():
			h.l.Infof(ctx, "console: session cancelled")
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					h.l.Errorf(ctx, "console: read input: %v", err)
					return err
				}
				h.l.Infof(ctx, "console: end of input")
				return nil
			}
			if exit := h.handleLine(ctx, line); exit {
				return nil
			}
		}
	}
}

// readLines feeds input lines of any length to the returned channel until
// the input ends or ctx is done. The error channel receives the read error,
// if any, once the line channel is closed.
func (h *handler) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(errc)
		defer close(lines)

		reader := bufio.NewReader(h.in)
		for {
			raw, err := reader.ReadString('\n')
			if raw != "" {
				select {
				case lines <- strings.TrimRight(raw, "\r\n"):
				case <-ctx.Done():
					return
				}
			}
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				errc <- err
				return
			}
		}
	}()

	return lines, errc
}

// handleLine runs one command and reports whether the session should end.
func (h *handler) handleLine(ctx context.Context, line string) bool {
	ctx = pkgLog.WithTraceID(ctx, uuid.NewString())

	cmd, err := command.ParseLine(line)
	if err != nil {
		h.l.Debugf(ctx, "console: parse %q: %v", line, err)
		h.showError(guidance(err, command.KindList, h.uc.Count()))
		return false
	}

	if cmd.IsExit() {
		h.showGoodbye()
		return true
	}

	h.l.Debugf(ctx, "console: %s %q", cmd.Kind, cmd.Arguments)
	h.execute(ctx, cmd)

	if err := h.uc.Save(ctx); err != nil {
		h.showError(guidance(err, cmd.Kind, h.uc.Count()))
	}
	return false
}

// execute applies cmd through the use case and renders the result.
func (h *handler) execute(ctx context.Context, cmd command.Command) {
	var err error

	switch cmd.Kind {
	case command.KindTodo:
		var out task.AddOutput
		if out, err = h.uc.AddTodo(ctx, cmd.Arguments); err == nil {
			h.showTaskAdded(out)
		}
	case command.KindDeadline:
		var out task.AddOutput
		if out, err = h.uc.AddDeadline(ctx, cmd.Arguments); err == nil {
			h.showTaskAdded(out)
		}
	case command.KindEvent:
		var out task.AddOutput
		if out, err = h.uc.AddEvent(ctx, cmd.Arguments); err == nil {
			h.showTaskAdded(out)
		}
	case command.KindList:
		h.showTaskList(h.uc.List(ctx))
	case command.KindMark:
		var out task.MarkOutput
		if out, err = h.uc.Mark(ctx, cmd.Arguments); err == nil {
			h.showTaskMarked(out)
		}
	case command.KindUnmark:
		var out task.MarkOutput
		if out, err = h.uc.Unmark(ctx, cmd.Arguments); err == nil {
			h.showTaskUnmarked(out)
		}
	case command.KindDelete:
		var out task.DeleteOutput
		if out, err = h.uc.Delete(ctx, cmd.Arguments); err == nil {
			h.showTaskDeleted(out)
		}
	case command.KindFindDate:
		var out task.FindByDateOutput
		if out, err = h.uc.FindByDate(ctx, cmd.Arguments); err == nil {
			h.showTasksOnDate(out)
		}
	case command.KindFind:
		h.showTasksWithKeyword(h.uc.FindByKeyword(ctx, cmd.Arguments))
	case command.KindBye:
		// handled by the caller
	}

	if err != nil {
		h.l.Debugf(ctx, "console: %s rejected: %v", cmd.Kind, err)
		h.showError(guidance(err, cmd.Kind, h.uc.Count()))
	}
}
