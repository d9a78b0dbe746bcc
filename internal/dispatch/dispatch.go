package dispatch

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/reps/pkg/classify"
	"github.com/aretw0/reps/pkg/observability"
	"github.com/aretw0/reps/pkg/registry"
	"github.com/aretw0/reps/pkg/rep"
)

// ProbeFault records a probe that panicked while a value was being classified.
type ProbeFault struct {
	Rep   string
	Type  string
	Cause any
}

func (f *ProbeFault) Error() string {
	return fmt.Sprintf("probe %s panicked on type %q: %v", f.Rep, f.Type, f.Cause)
}

// Unwrap exposes the panic value when it was an error.
func (f *ProbeFault) Unwrap() error {
	if err, ok := f.Cause.(error); ok {
		return err
	}
	return nil
}

// Resolution is the outcome of one scan.
type Resolution struct {
	Descriptor rep.Descriptor
	Type       string
	Fallback   bool
	Faults     []*ProbeFault
}

// Dispatcher selects renderers. It holds no per-call state and is safe for
// concurrent use as long as its hooks are.
type Dispatcher struct {
	logger *slog.Logger
	hooks  observability.Hooks
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the diagnostic sink for probe faults.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks observability.Hooks) Option {
	return func(d *Dispatcher) {
		d.hooks = hooks
	}
}

// New creates a Dispatcher. Without WithLogger faults are discarded.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// outcome is the result of a single guarded probe.
type outcome struct {
	accepted bool
	fault    *ProbeFault
}

// Resolve scans reg in order and returns the first descriptor whose probe
// accepts v, or def when none does. Probe panics never escape.
func (d *Dispatcher) Resolve(reg *registry.Registry, v any, def rep.Descriptor, noGrip bool) Resolution {
	res := Resolution{Type: classify.Classify(v, !noGrip)}

	for i := 0; i < reg.Len(); i++ {
		desc := reg.At(i)
		out := probe(desc, v, res.Type, noGrip)
		if out.fault != nil {
			res.Faults = append(res.Faults, out.fault)
			d.reportFault(out.fault)
			continue
		}
		if out.accepted {
			res.Descriptor = desc
			break
		}
	}

	if res.Descriptor == nil {
		res.Descriptor = def
		res.Fallback = true
		d.logger.Debug("No rep accepted value, using default", "type", res.Type, "default", nameOf(def))
	}

	if d.hooks.OnResolve != nil {
		d.callHook("OnResolve", func() {
			d.hooks.OnResolve(&observability.ResolveEvent{
				Rep:      nameOf(res.Descriptor),
				Type:     res.Type,
				Fallback: res.Fallback,
				Faults:   len(res.Faults),
			})
		})
	}
	return res
}

func probe(desc rep.Descriptor, v any, typ string, noGrip bool) (out outcome) {
	name := "<unnamed>"
	defer func() {
		if r := recover(); r != nil {
			out = outcome{fault: &ProbeFault{Rep: name, Type: typ, Cause: r}}
		}
	}()
	name = desc.Name()
	return outcome{accepted: desc.Supports(v, typ, noGrip)}
}

func (d *Dispatcher) reportFault(f *ProbeFault) {
	d.logger.Warn("Rep probe failed", "rep", f.Rep, "type", f.Type, "error", f)
	if d.hooks.OnProbeFault != nil {
		d.callHook("OnProbeFault", func() {
			d.hooks.OnProbeFault(&observability.FaultEvent{Rep: f.Rep, Type: f.Type, Error: f})
		})
	}
}

// callHook runs a user hook. A panicking hook is logged and otherwise ignored.
func (d *Dispatcher) callHook(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Warn("Dispatch hook panicked", "hook", name, "error", fmt.Errorf("%v", r))
		}
	}()
	fn()
}

func nameOf(d rep.Descriptor) string {
	if d == nil {
		return ""
	}
	return d.Name()
}
