package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/reps"
	"github.com/aretw0/reps/internal/config"
	"github.com/aretw0/reps/pkg/builtin"
	"github.com/aretw0/reps/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
)

// createEngine initializes an engine with the built-in reps minus the ones
// the configuration disables. Metrics are registered with promReg when it is
// not nil.
func createEngine(cfg config.Config, logger *slog.Logger, promReg prometheus.Registerer) (*reps.Engine, error) {
	reg, err := builtin.Without(cfg.Disable...)
	if err != nil {
		return nil, fmt.Errorf("error building registry: %w", err)
	}

	engineOpts := []reps.Option{
		reps.WithRegistry(reg),
		reps.WithLogger(logger),
	}

	if promReg != nil {
		metrics, err := observability.NewMetrics(promReg)
		if err != nil {
			return nil, fmt.Errorf("error registering metrics: %w", err)
		}
		engineOpts = append(engineOpts, reps.WithMetrics(metrics))
	}

	return reps.New(engineOpts...), nil
}
