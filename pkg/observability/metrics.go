package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the Prometheus collectors exported by the dispatcher.
type Metrics struct {
	Resolutions *prometheus.CounterVec
	Fallbacks   prometheus.Counter
	ProbeFaults *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered, which is handy in tests.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reps_resolutions_total",
				Help: "Total number of dispatches, by winning rep",
			},
			[]string{"rep"},
		),
		Fallbacks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "reps_fallbacks_total",
				Help: "Dispatches where no registered rep accepted the value",
			},
		),
		ProbeFaults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reps_probe_faults_total",
				Help: "Probes that panicked during a scan, by rep",
			},
			[]string{"rep"},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Resolutions, m.Fallbacks, m.ProbeFaults} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns hooks that feed m.
func (m *Metrics) Hooks() Hooks {
	return Hooks{
		OnResolve: func(e *ResolveEvent) {
			m.Resolutions.WithLabelValues(e.Rep).Inc()
			if e.Fallback {
				m.Fallbacks.Inc()
			}
		},
		OnProbeFault: func(e *FaultEvent) {
			m.ProbeFaults.WithLabelValues(e.Rep).Inc()
		},
	}
}
