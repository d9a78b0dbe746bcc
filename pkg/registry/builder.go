package registry

import (
	"fmt"

	"github.com/aretw0/reps/pkg/rep"
)

type placement int

const (
	placeLast placement = iota
	placeFirst
	placeBefore
	placeAfter
)

// Position says where Register inserts a descriptor.
type Position struct {
	place  placement
	anchor string
}

// Last appends after every registered descriptor. It is the zero Position.
func Last() Position { return Position{place: placeLast} }

// First inserts ahead of every registered descriptor.
func First() Position { return Position{place: placeFirst} }

// Before inserts immediately ahead of the named descriptor.
func Before(name string) Position { return Position{place: placeBefore, anchor: name} }

// After inserts immediately behind the named descriptor.
func After(name string) Position { return Position{place: placeAfter, anchor: name} }

func (p Position) String() string {
	switch p.place {
	case placeFirst:
		return "first"
	case placeBefore:
		return "before " + p.anchor
	case placeAfter:
		return "after " + p.anchor
	default:
		return "last"
	}
}

// Builder assembles a Registry. It is not safe for concurrent use.
type Builder struct {
	reps []rep.Descriptor
}

// NewBuilder creates a builder seeded with the contents of base, which may be nil.
func NewBuilder(base *Registry) *Builder {
	return &Builder{reps: base.All()}
}

// Register inserts d at pos. Names must be unique across the builder.
func (b *Builder) Register(d rep.Descriptor, pos Position) error {
	if d == nil {
		return ErrNilDescriptor
	}
	if b.indexOf(d.Name()) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateName, d.Name())
	}

	at := len(b.reps)
	switch pos.place {
	case placeFirst:
		at = 0
	case placeBefore, placeAfter:
		i := b.indexOf(pos.anchor)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrUnknownAnchor, pos.anchor)
		}
		at = i
		if pos.place == placeAfter {
			at = i + 1
		}
	}

	b.reps = append(b.reps, nil)
	copy(b.reps[at+1:], b.reps[at:])
	b.reps[at] = d
	return nil
}

// Remove drops the named descriptor.
func (b *Builder) Remove(name string) error {
	i := b.indexOf(name)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownRep, name)
	}
	b.reps = append(b.reps[:i], b.reps[i+1:]...)
	return nil
}

// Build returns an immutable snapshot of the builder's contents.
func (b *Builder) Build() (*Registry, error) {
	return New(b.reps...)
}

func (b *Builder) indexOf(name string) int {
	for i, d := range b.reps {
		if d.Name() == name {
			return i
		}
	}
	return -1
}
