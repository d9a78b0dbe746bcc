package observability

// ResolveEvent describes one completed dispatch.
type ResolveEvent struct {
	Rep      string `json:"rep"`
	Type     string `json:"type"`
	Fallback bool   `json:"fallback"`
	Faults   int    `json:"faults"`
}

// FaultEvent describes a probe that panicked during a scan.
type FaultEvent struct {
	Rep   string `json:"rep"`
	Type  string `json:"type"`
	Error error  `json:"-"`
}

// Hooks are optional callbacks invoked synchronously by the dispatcher.
type Hooks struct {
	OnResolve    func(*ResolveEvent)
	OnProbeFault func(*FaultEvent)
}

// Merge returns hooks that call h first and then other.
func (h Hooks) Merge(other Hooks) Hooks {
	return Hooks{
		OnResolve:    chain(h.OnResolve, other.OnResolve),
		OnProbeFault: chain(h.OnProbeFault, other.OnProbeFault),
	}
}

func chain[E any](a, b func(*E)) func(*E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(e *E) {
		a(e)
		b(e)
	}
}
