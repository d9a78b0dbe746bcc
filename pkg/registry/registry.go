package registry

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/aretw0/reps/pkg/rep"
)

var (
	// ErrDuplicateName is returned when two descriptors share a name.
	ErrDuplicateName = errors.New("rep already registered")
	// ErrUnknownAnchor is returned when a Before/After anchor is not registered.
	ErrUnknownAnchor = errors.New("anchor rep not registered")
	// ErrNilDescriptor is returned when registering a nil descriptor.
	ErrNilDescriptor = errors.New("nil rep descriptor")
	// ErrUnknownRep is returned when removing a rep that is not registered.
	ErrUnknownRep = errors.New("rep not registered")
)

// Registry is an immutable, ordered sequence of rep descriptors.
// Order is priority: earlier descriptors win.
type Registry struct {
	reps  []rep.Descriptor
	index map[string]int
}

// New creates a registry holding descs in the given order.
func New(descs ...rep.Descriptor) (*Registry, error) {
	r := &Registry{
		reps:  make([]rep.Descriptor, 0, len(descs)),
		index: make(map[string]int, len(descs)),
	}
	for _, d := range descs {
		if d == nil {
			return nil, ErrNilDescriptor
		}
		name := d.Name()
		if _, ok := r.index[name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}
		r.index[name] = len(r.reps)
		r.reps = append(r.reps, d)
	}
	return r, nil
}

// MustNew is like New but panics on error. It is meant for package-level
// registries built from static lists.
func MustNew(descs ...rep.Descriptor) *Registry {
	r, err := New(descs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of descriptors. A nil registry is empty.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.reps)
}

// At returns the descriptor at position i.
func (r *Registry) At(i int) rep.Descriptor {
	return r.reps[i]
}

// All returns a copy of the descriptors in priority order.
func (r *Registry) All() []rep.Descriptor {
	if r == nil {
		return nil
	}
	out := make([]rep.Descriptor, len(r.reps))
	copy(out, r.reps)
	return out
}

// Names returns descriptor names in priority order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, len(r.reps))
	for i, d := range r.reps {
		names[i] = d.Name()
	}
	return names
}

// Lookup finds a descriptor by name.
func (r *Registry) Lookup(name string) (rep.Descriptor, bool) {
	if r == nil {
		return nil, false
	}
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.reps[i], true
}

// Live holds the current registry snapshot for processes that register reps
// at runtime. Readers never block and always see a complete snapshot.
type Live struct {
	mu      sync.Mutex // serializes writers
	current atomic.Pointer[Registry]
}

// NewLive creates a Live holder starting at r. A nil r starts empty.
func NewLive(r *Registry) *Live {
	if r == nil {
		r = MustNew()
	}
	l := &Live{}
	l.current.Store(r)
	return l
}

// Snapshot returns the registry in effect right now.
func (l *Live) Snapshot() *Registry {
	return l.current.Load()
}

// Swap publishes r and returns the previous snapshot.
func (l *Live) Swap(r *Registry) *Registry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current.Swap(r)
}

// Update applies fn to a builder seeded with the current snapshot and
// publishes the result. Nothing is published when fn or Build fails.
func (l *Live) Update(fn func(*Builder) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	b := NewBuilder(l.current.Load())
	if err := fn(b); err != nil {
		return err
	}
	next, err := b.Build()
	if err != nil {
		return err
	}
	l.current.Store(next)
	return nil
}
