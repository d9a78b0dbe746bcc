package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/reps"
	"github.com/aretw0/reps/internal/config"
	"github.com/aretw0/reps/pkg/registry"
	"github.com/aretw0/reps/pkg/rep"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Options contains the resolved configuration for a CLI command:
// the config file with command line flags applied on top.
type Options struct {
	Config config.Config
	Paths  []string
	Format string
}

// Props builds the presentation props for output written to w.
func (o Options) Props(w io.Writer) (rep.Props, error) {
	def, ok := reps.Reps.Lookup(o.Config.DefaultRep)
	if !ok {
		return rep.Props{}, fmt.Errorf("%w: default rep %q", registry.ErrUnknownRep, o.Config.DefaultRep)
	}

	p := rep.Props{
		Default:   def,
		NoGrip:    o.Config.NoGrip,
		Mode:      rep.ParseMode(o.Config.Mode),
		MaxLength: o.Config.MaxLength,
	}
	if colorEnabled(o.Config.Color, w) {
		p.Styled = true
		p.Profile = termenv.EnvColorProfile()
		if o.Config.Color == config.ColorAlways && p.Profile == termenv.Ascii {
			p.Profile = termenv.ANSI256
		}
	}
	return p, nil
}

// colorEnabled decides whether output to w gets ANSI colours.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
