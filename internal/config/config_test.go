package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "reps.yaml", `
log_level: debug
mode: long
no_grip: true
color: never
disable: [RegExp, Grip]
serve:
  addr: 127.0.0.1:9000
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "long", cfg.Mode)
	assert.True(t, cfg.NoGrip)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, []string{"RegExp", "Grip"}, cfg.Disable)
	assert.Equal(t, "127.0.0.1:9000", cfg.Serve.Addr)
	assert.Equal(t, "Object", cfg.DefaultRep, "unset fields keep their defaults")
	assert.Equal(t, 120, cfg.MaxLength)
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "reps.json", `{"mode": "tiny", "max_length": 10}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tiny", cfg.Mode)
	assert.Equal(t, 10, cfg.MaxLength)
	assert.Equal(t, ColorAuto, cfg.Color)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeFile(t, "reps.yaml", "mode: [unterminated"))
	assert.ErrorContains(t, err, "failed to parse reps.yaml")

	_, err = Load(writeFile(t, "reps.json", "{"))
	assert.ErrorContains(t, err, "failed to parse reps.json")

	_, err = Load(writeFile(t, "reps.yaml", "color: sometimes"))
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestValidate(t *testing.T) {
	for _, c := range []string{ColorAuto, ColorAlways, ColorNever} {
		cfg := Defaults()
		cfg.Color = c
		assert.NoError(t, cfg.Validate())
	}
	cfg := Defaults()
	cfg.Color = ""
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidColor)
}
