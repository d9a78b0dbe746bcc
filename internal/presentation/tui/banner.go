package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the startup banner, coloured according to profile.
func PrintBanner(w io.Writer, profile termenv.Profile, version string) {
	lines := []struct {
		text  string
		color string
	}{
		{` _ __ ___ _ __  ___ `, "#818cf8"},
		{`| '__/ _ \ '_ \/ __|`, "#a78bfa"},
		{`| | |  __/ |_) \__ \`, "#c084fc"},
		{`|_|  \___| .__/|___/`, "#e879f9"},
		{`         |_|        `, "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, profile.String(l.text).Foreground(profile.Color(l.color)))
	}
	fmt.Fprintf(w, "%s\n\n", profile.String("v"+version).Faint())
}
