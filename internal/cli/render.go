package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/reps/internal/input"
)

// readValues decodes every value found in paths, or in stdin when paths is empty.
func readValues(opts Options, stdin io.Reader) ([]any, error) {
	format, err := input.ParseFormat(opts.Format)
	if err != nil {
		return nil, err
	}

	if len(opts.Paths) == 0 {
		return input.Decode(stdin, format)
	}

	var all []any
	for _, path := range opts.Paths {
		values, err := readFile(path, format)
		if err != nil {
			return nil, err
		}
		all = append(all, values...)
	}
	return all, nil
}

func readFile(path string, format input.Format) ([]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if format == input.FormatAuto {
		format = input.FormatFor(path)
	}
	values, err := input.Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}

// Render writes one rendered line per input value.
func Render(opts Options, stdin io.Reader, w io.Writer, logger *slog.Logger) error {
	values, err := readValues(opts, stdin)
	if err != nil {
		return err
	}
	props, err := opts.Props(w)
	if err != nil {
		return err
	}
	eng, err := createEngine(opts.Config, logger, nil)
	if err != nil {
		return err
	}

	for _, v := range values {
		fmt.Fprintln(w, eng.Render(v, props))
	}
	return nil
}

// Resolve writes, per input value, the selected rep and the effective type.
// Fallbacks and probe faults are appended to the line.
func Resolve(opts Options, stdin io.Reader, w io.Writer, logger *slog.Logger) error {
	values, err := readValues(opts, stdin)
	if err != nil {
		return err
	}
	props, err := opts.Props(w)
	if err != nil {
		return err
	}
	eng, err := createEngine(opts.Config, logger, nil)
	if err != nil {
		return err
	}

	for _, v := range values {
		res := eng.Inspect(v, props.Default, props.NoGrip)
		line := []string{res.Descriptor.Name(), res.Type}
		if res.Fallback {
			line = append(line, "fallback")
		}
		for _, f := range res.Faults {
			line = append(line, "fault="+f.Rep)
		}
		fmt.Fprintln(w, strings.Join(line, "\t"))
	}
	return nil
}
