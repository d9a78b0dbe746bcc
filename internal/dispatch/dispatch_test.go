package dispatch

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/aretw0/reps/pkg/grip"
	"github.com/aretw0/reps/pkg/observability"
	"github.com/aretw0/reps/pkg/registry"
	"github.com/aretw0/reps/pkg/rep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDescriptor is a testify mock for rep.Descriptor.
type MockDescriptor struct {
	mock.Mock
	name string
}

func (m *MockDescriptor) Name() string { return m.name }

func (m *MockDescriptor) Supports(v any, typ string, noGrip bool) bool {
	args := m.Called(v, typ, noGrip)
	return args.Bool(0)
}

func (m *MockDescriptor) Render(p rep.Props) string {
	args := m.Called(p)
	return args.String(0)
}

func accepting(name string) rep.Func {
	return rep.Func{
		ID:    name,
		Probe: func(any, string, bool) bool { return true },
		Draw:  func(rep.Props) string { return name },
	}
}

func rejecting(name string) rep.Func {
	return rep.Func{
		ID:    name,
		Probe: func(any, string, bool) bool { return false },
		Draw:  func(rep.Props) string { return name },
	}
}

func panicking(name string, cause any) rep.Func {
	return rep.Func{
		ID:    name,
		Probe: func(any, string, bool) bool { panic(cause) },
		Draw:  func(rep.Props) string { return name },
	}
}

var fallback = rejecting("Fallback")

func TestResolvePriority(t *testing.T) {
	reg := registry.MustNew(rejecting("Skip"), accepting("First"), accepting("Second"))
	res := New().Resolve(reg, 1, fallback, false)

	require.NotNil(t, res.Descriptor)
	assert.Equal(t, "First", res.Descriptor.Name())
	assert.Equal(t, "First", res.Descriptor.Render(rep.Props{}))
	assert.False(t, res.Fallback)
	assert.Empty(t, res.Faults)
}

func TestResolveStopsAtFirstMatch(t *testing.T) {
	first := &MockDescriptor{name: "First"}
	later := &MockDescriptor{name: "Later"}
	first.On("Supports", "v", "string", false).Return(true).Once()

	reg := registry.MustNew(first, later)
	res := New().Resolve(reg, "v", fallback, false)

	assert.Equal(t, "First", res.Descriptor.Name())
	first.AssertExpectations(t)
	later.AssertNotCalled(t, "Supports", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolvePassesTypeAndFlag(t *testing.T) {
	d := &MockDescriptor{name: "Probe"}
	v := map[string]any{"type": "custom"}
	d.On("Supports", v, "object", true).Return(false).Once()

	res := New().Resolve(registry.MustNew(d), v, fallback, true)

	d.AssertExpectations(t)
	assert.Equal(t, "object", res.Type)
	assert.True(t, res.Fallback)
}

func TestResolveFaultIsolation(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	var faults []*observability.FaultEvent
	hooks := observability.Hooks{
		OnProbeFault: func(e *observability.FaultEvent) { faults = append(faults, e) },
	}

	cause := errors.New("probe exploded")
	reg := registry.MustNew(panicking("Broken", cause), panicking("AlsoBroken", "bad state"), accepting("Good"))

	var res Resolution
	assert.NotPanics(t, func() {
		res = New(WithLogger(logger), WithHooks(hooks)).Resolve(reg, 1, fallback, false)
	})

	assert.Equal(t, "Good", res.Descriptor.Name())
	require.Len(t, res.Faults, 2)
	assert.Equal(t, "Broken", res.Faults[0].Rep)
	assert.ErrorIs(t, res.Faults[0], cause)
	assert.Equal(t, "AlsoBroken", res.Faults[1].Rep)
	assert.Contains(t, res.Faults[1].Error(), "bad state")

	require.Len(t, faults, 2)
	assert.Equal(t, "number", faults[0].Type)
	assert.Contains(t, buf.String(), "Rep probe failed")
	assert.Contains(t, buf.String(), "rep=Broken")
}

func TestResolveAllProbesFault(t *testing.T) {
	reg := registry.MustNew(panicking("A", "x"), panicking("B", "y"))
	res := New().Resolve(reg, "value", fallback, false)

	assert.Equal(t, "Fallback", res.Descriptor.Name())
	assert.True(t, res.Fallback)
	assert.Len(t, res.Faults, 2)
	assert.Equal(t, "Fallback", res.Descriptor.Render(rep.Props{}))
}

func TestResolveFallback(t *testing.T) {
	res := New().Resolve(registry.MustNew(rejecting("A"), rejecting("B")), 1, fallback, false)
	assert.True(t, res.Fallback)
	assert.Equal(t, "Fallback", res.Descriptor.Name())

	res = New().Resolve(nil, 1, fallback, false)
	assert.True(t, res.Fallback, "empty registry always falls back")
}

func TestResolveIsDeterministic(t *testing.T) {
	reg := registry.MustNew(rejecting("A"), accepting("B"), accepting("C"))
	d := New()
	for i := 0; i < 20; i++ {
		assert.Equal(t, "B", d.Resolve(reg, i, fallback, false).Descriptor.Name())
	}
}

func TestResolveGripPrecedence(t *testing.T) {
	v := map[string]any{"actor": "obj1", "class": "Error", "type": "custom"}
	d := New()
	assert.Equal(t, "Error", d.Resolve(nil, v, fallback, false).Type)
	assert.Equal(t, "Error", d.Resolve(nil, v, fallback, true).Type)
}

func TestResolveSpecificGripBeforeCatchAll(t *testing.T) {
	regexp := rep.Func{
		ID:    "RegExp",
		Probe: func(v any, typ string, noGrip bool) bool { return !noGrip && typ == "RegExp" },
		Draw:  func(rep.Props) string { return "regexp" },
	}
	catchAll := rep.Func{
		ID:    "Grip",
		Probe: func(v any, typ string, noGrip bool) bool { return !noGrip && grip.IsGrip(v) },
		Draw:  func(rep.Props) string { return "grip" },
	}
	v := map[string]any{"actor": "obj1", "class": "RegExp", "source": "a.*"}

	res := New().Resolve(registry.MustNew(regexp, catchAll), v, fallback, false)
	assert.Equal(t, "RegExp", res.Type)
	assert.Equal(t, "regexp", res.Descriptor.Render(rep.Props{Object: v}))

	res = New().Resolve(registry.MustNew(regexp, catchAll), v, fallback, true)
	assert.True(t, res.Fallback, "grip reps honour noGrip")
}

func TestResolveHooks(t *testing.T) {
	var events []*observability.ResolveEvent
	d := New(WithHooks(observability.Hooks{
		OnResolve: func(e *observability.ResolveEvent) { events = append(events, e) },
	}))

	d.Resolve(registry.MustNew(panicking("Bad", "x"), accepting("Good")), 1, fallback, false)
	d.Resolve(registry.MustNew(rejecting("A")), 1, fallback, false)

	require.Len(t, events, 2)
	assert.Equal(t, observability.ResolveEvent{Rep: "Good", Type: "number", Faults: 1}, *events[0])
	assert.Equal(t, observability.ResolveEvent{Rep: "Fallback", Type: "number", Fallback: true}, *events[1])
}

func TestResolveSurvivesPanickingHooks(t *testing.T) {
	var buf bytes.Buffer
	d := New(
		WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		WithHooks(observability.Hooks{
			OnResolve:    func(*observability.ResolveEvent) { panic("resolve hook") },
			OnProbeFault: func(*observability.FaultEvent) { panic("fault hook") },
		}),
	)
	reg := registry.MustNew(panicking("Bad", "x"), accepting("Good"))

	var res Resolution
	require.NotPanics(t, func() {
		res = d.Resolve(reg, 1, fallback, false)
	})
	assert.Equal(t, "Good", res.Descriptor.Name())
	assert.Len(t, res.Faults, 1)
	assert.Contains(t, buf.String(), "hook=OnResolve")
	assert.Contains(t, buf.String(), "hook=OnProbeFault")
}
