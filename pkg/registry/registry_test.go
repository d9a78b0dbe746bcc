package registry_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/aretw0/reps/pkg/registry"
	"github.com/aretw0/reps/pkg/rep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stub(name string) rep.Descriptor {
	return rep.Func{ID: name}
}

func TestNew(t *testing.T) {
	reg, err := registry.New(stub("A"), stub("B"), stub("C"))
	require.NoError(t, err)

	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, []string{"A", "B", "C"}, reg.Names())
	assert.Equal(t, "B", reg.At(1).Name())

	d, ok := reg.Lookup("C")
	require.True(t, ok)
	assert.Equal(t, "C", d.Name())

	_, ok = reg.Lookup("missing")
	assert.False(t, ok)
}

func TestNewRejectsInvalidInput(t *testing.T) {
	_, err := registry.New(stub("A"), stub("A"))
	assert.ErrorIs(t, err, registry.ErrDuplicateName)

	_, err = registry.New(stub("A"), nil)
	assert.ErrorIs(t, err, registry.ErrNilDescriptor)

	assert.Panics(t, func() { registry.MustNew(stub("A"), stub("A")) })
}

func TestAllReturnsCopy(t *testing.T) {
	reg := registry.MustNew(stub("A"), stub("B"))
	all := reg.All()
	all[0] = stub("Z")
	assert.Equal(t, []string{"A", "B"}, reg.Names())
}

func TestNilRegistryIsEmpty(t *testing.T) {
	var reg *registry.Registry
	assert.Equal(t, 0, reg.Len())
	assert.Nil(t, reg.Names())
	_, ok := reg.Lookup("A")
	assert.False(t, ok)
}

func TestBuilderPositions(t *testing.T) {
	base := registry.MustNew(stub("A"), stub("B"), stub("C"))

	tests := []struct {
		name string
		pos  registry.Position
		want []string
	}{
		{"Last", registry.Last(), []string{"A", "B", "C", "X"}},
		{"Zero value is last", registry.Position{}, []string{"A", "B", "C", "X"}},
		{"First", registry.First(), []string{"X", "A", "B", "C"}},
		{"Before", registry.Before("B"), []string{"A", "X", "B", "C"}},
		{"After", registry.After("B"), []string{"A", "B", "X", "C"}},
		{"After last", registry.After("C"), []string{"A", "B", "C", "X"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := registry.NewBuilder(base)
			require.NoError(t, b.Register(stub("X"), tt.pos))
			reg, err := b.Build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, reg.Names())
		})
	}

	assert.Equal(t, []string{"A", "B", "C"}, base.Names(), "base snapshot must not change")
}

func TestBuilderConflicts(t *testing.T) {
	b := registry.NewBuilder(registry.MustNew(stub("A")))

	err := b.Register(stub("A"), registry.Last())
	assert.ErrorIs(t, err, registry.ErrDuplicateName)

	err = b.Register(stub("X"), registry.Before("missing"))
	assert.ErrorIs(t, err, registry.ErrUnknownAnchor)

	err = b.Register(nil, registry.First())
	assert.ErrorIs(t, err, registry.ErrNilDescriptor)

	err = b.Remove("missing")
	assert.ErrorIs(t, err, registry.ErrUnknownRep)

	require.NoError(t, b.Remove("A"))
	reg, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 0, reg.Len())
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "first", registry.First().String())
	assert.Equal(t, "last", registry.Last().String())
	assert.Equal(t, "before Grip", registry.Before("Grip").String())
	assert.Equal(t, "after Grip", registry.After("Grip").String())
}

func TestLive(t *testing.T) {
	l := registry.NewLive(registry.MustNew(stub("A")))
	before := l.Snapshot()

	require.NoError(t, l.Update(func(b *registry.Builder) error {
		return b.Register(stub("B"), registry.First())
	}))

	assert.Equal(t, []string{"A"}, before.Names(), "old snapshot stays intact")
	assert.Equal(t, []string{"B", "A"}, l.Snapshot().Names())

	failed := errors.New("boom")
	err := l.Update(func(b *registry.Builder) error {
		_ = b.Register(stub("C"), registry.Last())
		return failed
	})
	assert.ErrorIs(t, err, failed)
	assert.Equal(t, []string{"B", "A"}, l.Snapshot().Names(), "failed update publishes nothing")

	prev := l.Swap(registry.MustNew(stub("Z")))
	assert.Equal(t, []string{"B", "A"}, prev.Names())
	assert.Equal(t, []string{"Z"}, l.Snapshot().Names())

	assert.Equal(t, 0, registry.NewLive(nil).Snapshot().Len())
}

func TestLiveConcurrentUpdates(t *testing.T) {
	l := registry.NewLive(nil)
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}

	var wg sync.WaitGroup
	for _, n := range names {
		n := n
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, l.Update(func(b *registry.Builder) error {
				return b.Register(stub(n), registry.Last())
			}))
		}()
		go func() {
			defer wg.Done()
			snap := l.Snapshot()
			for i := 0; i < snap.Len(); i++ {
				_ = snap.At(i).Name()
			}
		}()
	}
	wg.Wait()

	assert.ElementsMatch(t, names, l.Snapshot().Names())
}
