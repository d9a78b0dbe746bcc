package reps

import (
	"io"
	"log/slog"
	"sync"

	"github.com/aretw0/reps/internal/dispatch"
	"github.com/aretw0/reps/pkg/builtin"
	"github.com/aretw0/reps/pkg/observability"
	"github.com/aretw0/reps/pkg/registry"
	"github.com/aretw0/reps/pkg/rep"
)

// Resolution is the outcome of one dispatch: the winning descriptor, the
// effective type it was matched on and any probe faults seen on the way.
type Resolution = dispatch.Resolution

// ProbeFault describes a probe that panicked during a scan.
type ProbeFault = dispatch.ProbeFault

// Reps exposes every built-in rep by name, the Obj fallback included, for
// callers that want to invoke a specific rep directly.
var Reps = registry.MustNew(append(builtin.Default(), builtin.Obj)...)

// Engine selects and invokes reps. Its registry snapshot is shared and
// read-only, so an Engine is safe for concurrent use.
type Engine struct {
	live       *registry.Live
	dispatcher *dispatch.Dispatcher
	logger     *slog.Logger
	hooks      observability.Hooks
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithRegistry sets the ordered reps the engine scans.
func WithRegistry(r *registry.Registry) Option {
	return func(e *Engine) {
		e.live = registry.NewLive(r)
	}
}

// WithLiveRegistry shares a Live registry, so runtime registrations made
// elsewhere are picked up by the next dispatch.
func WithLiveRegistry(l *registry.Live) Option {
	return func(e *Engine) {
		e.live = l
	}
}

// WithLogger sets the diagnostic sink for probe faults.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithHooks registers observability hooks. Repeated calls are merged.
func WithHooks(hooks observability.Hooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithMetrics feeds m from every dispatch.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(m.Hooks())
	}
}

// New creates an Engine. By default it scans builtin.Registry and discards
// diagnostics.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.live == nil {
		e.live = registry.NewLive(builtin.Registry())
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	e.dispatcher = dispatch.New(
		dispatch.WithLogger(e.logger),
		dispatch.WithHooks(e.hooks),
	)
	return e
}

// Registry returns the snapshot the next dispatch will scan.
func (e *Engine) Registry() *registry.Registry {
	return e.live.Snapshot()
}

// Register inserts d at pos. Dispatches already in progress keep scanning
// the snapshot they started with.
func (e *Engine) Register(d rep.Descriptor, pos registry.Position) error {
	return e.live.Update(func(b *registry.Builder) error {
		return b.Register(d, pos)
	})
}

// Inspect classifies v and scans the registry, reporting the full outcome.
// A nil def falls back to builtin.Obj.
func (e *Engine) Inspect(v any, def rep.Descriptor, noGrip bool) Resolution {
	if def == nil {
		def = builtin.Obj
	}
	return e.dispatcher.Resolve(e.live.Snapshot(), v, def, noGrip)
}

// Resolve returns the render function of the rep selected for v.
func (e *Engine) Resolve(v any, def rep.Descriptor, noGrip bool) rep.RenderFunc {
	return e.Inspect(v, def, noGrip).Descriptor.Render
}

// Render selects the rep for v using p.Default and p.NoGrip and returns its
// output unchanged. Nothing is cached between calls.
func (e *Engine) Render(v any, p rep.Props) string {
	if p.Default == nil {
		p.Default = builtin.Obj
	}
	render := e.Resolve(v, p.Default, p.NoGrip)
	p.Object = v
	if p.Nested == nil {
		p.Nested = e.Render
	}
	return render(p)
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the process-wide engine used by the package-level
// functions. It scans builtin.Registry and reports probe faults to
// slog.Default.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = New(WithLogger(slog.Default()))
	})
	return defaultEngine
}

// Render renders v with the default engine.
func Render(v any, p rep.Props) string {
	return Default().Render(v, p)
}

// Resolve returns the render function the default engine selects for v.
func Resolve(v any, def rep.Descriptor, noGrip bool) rep.RenderFunc {
	return Default().Resolve(v, def, noGrip)
}
