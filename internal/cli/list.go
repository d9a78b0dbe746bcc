package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/reps/internal/presentation/tui"
)

// List prints the configured registry in priority order.
func List(opts Options, w io.Writer, logger *slog.Logger) error {
	eng, err := createEngine(opts.Config, logger, nil)
	if err != nil {
		return err
	}

	md := tui.RegistryMarkdown(eng.Registry(), opts.Config.DefaultRep)
	render, err := tui.NewRenderer(colorEnabled(opts.Config.Color, w), 0)
	if err != nil {
		return fmt.Errorf("error creating markdown renderer: %w", err)
	}
	out, err := render(md)
	if err != nil {
		// Raw markdown is still readable.
		logger.Warn("Markdown rendering failed", "error", err)
		out = md
	}
	_, err = io.WriteString(w, out)
	return err
}
