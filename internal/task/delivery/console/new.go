package console

import (
	"context"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"gbot/internal/task"
	pkgLog "gbot/pkg/log"
)

// Config holds the display settings of a session. It is read once in New.
type Config struct {
	Name         string
	Tagline      string
	DividerWidth int
	ColorEnabled bool
}

// Handler is the interface for the console delivery handler.
type Handler interface {
	// Run drives one session until bye, end of input or ctx cancellation.
	Run(ctx context.Context) error
}

type handler struct {
	l      pkgLog.Logger
	uc     task.UseCase
	in     io.Reader
	out    io.Writer
	cfg    Config
	styles styles
}

// New creates a console handler that reads commands from in and writes
// replies to out.
func New(l pkgLog.Logger, uc task.UseCase, in io.Reader, out io.Writer, cfg Config) Handler {
	if cfg.DividerWidth <= 0 {
		cfg.DividerWidth = 60
	}

	r := lipgloss.NewRenderer(out)
	if !cfg.ColorEnabled {
		r.SetColorProfile(termenv.Ascii)
	}

	return &handler{
		l:      l,
		uc:     uc,
		in:     in,
		out:    out,
		cfg:    cfg,
		styles: newStyles(r),
	}
}
