// Package rep defines the capability contract every renderer satisfies.
package rep

import (
	"fmt"

	"github.com/muesli/termenv"
)

// Mode controls how much detail a renderer emits.
type Mode string

const (
	ModeTiny  Mode = "tiny"
	ModeShort Mode = "short"
	ModeLong  Mode = "long"
)

// ParseMode maps a user supplied name to a Mode, defaulting to ModeShort.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeTiny, ModeLong:
		return Mode(s)
	default:
		return ModeShort
	}
}

// RenderFunc produces the text for the value held in Props.Object.
type RenderFunc func(Props) string

// Descriptor is a renderer candidate.
//
// Supports is the probe. It must be side-effect free. A probe that panics is
// treated as a non-match by the dispatcher.
type Descriptor interface {
	Name() string
	Supports(v any, effectiveType string, noGrip bool) bool
	Render(Props) string
}

// Props is the presentation options bundle handed to a renderer.
type Props struct {
	// Object is the value being rendered.
	Object any
	// Default is used when no registered renderer accepts Object.
	Default Descriptor
	// NoGrip disables shape-hint classification and grip-only renderers.
	NoGrip bool
	Mode   Mode
	// MaxLength crops rendered strings when positive.
	MaxLength int
	// Title, when set, replaces the class name in object summaries.
	Title string

	Styled  bool
	Profile termenv.Profile

	// Nested renders a child value. Containers use it for their items.
	Nested func(v any, p Props) string
}

// Child returns the props used to render items nested in the current value.
func (p Props) Child() Props {
	c := p
	c.Object = nil
	c.Title = ""
	c.Mode = ModeTiny
	return c
}

// RenderChild renders v through Nested. Without Nested it falls back to fmt.
func (p Props) RenderChild(v any) string {
	if p.Nested == nil {
		return fmt.Sprint(v)
	}
	return p.Nested(v, p.Child())
}

// Func adapts plain functions to a Descriptor.
type Func struct {
	ID    string
	Probe func(v any, effectiveType string, noGrip bool) bool
	Draw  RenderFunc
}

func (f Func) Name() string { return f.ID }

func (f Func) Supports(v any, effectiveType string, noGrip bool) bool {
	if f.Probe == nil {
		return false
	}
	return f.Probe(v, effectiveType, noGrip)
}

func (f Func) Render(p Props) string {
	if f.Draw == nil {
		return ""
	}
	return f.Draw(p)
}
