package cli

import (
	"testing"

	"github.com/aretw0/reps/internal/config"
	"github.com/aretw0/reps/internal/logging"
	"github.com/aretw0/reps/pkg/registry"
	"github.com/aretw0/reps/pkg/rep"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEngine(t *testing.T) {
	t.Run("Stock registry", func(t *testing.T) {
		eng, err := createEngine(config.Defaults(), logging.NewNop(), nil)
		require.NoError(t, err)
		assert.Equal(t, 27, eng.Registry().Len())
	})

	t.Run("Disabled reps are removed", func(t *testing.T) {
		cfg := config.Defaults()
		cfg.Disable = []string{"RegExp"}
		eng, err := createEngine(cfg, logging.NewNop(), nil)
		require.NoError(t, err)

		_, ok := eng.Registry().Lookup("RegExp")
		assert.False(t, ok)
		v := map[string]any{"actor": "o", "class": "RegExp", "displayString": "/a/"}
		assert.Equal(t, "Grip", eng.Inspect(v, nil, false).Descriptor.Name())
	})

	t.Run("Unknown disabled rep", func(t *testing.T) {
		cfg := config.Defaults()
		cfg.Disable = []string{"Nope"}
		_, err := createEngine(cfg, logging.NewNop(), nil)
		assert.ErrorIs(t, err, registry.ErrUnknownRep)
	})

	t.Run("Metrics registration", func(t *testing.T) {
		promReg := prometheus.NewRegistry()
		eng, err := createEngine(config.Defaults(), logging.NewNop(), promReg)
		require.NoError(t, err)
		eng.Render("x", rep.Props{})

		families, err := promReg.Gather()
		require.NoError(t, err)
		assert.NotEmpty(t, families)

		_, err = createEngine(config.Defaults(), logging.NewNop(), promReg)
		assert.ErrorContains(t, err, "error registering metrics")
	})
}
