// Package builtin provides the stock reps and their priority order.
//
// The order of Default is significant: specific remote-object reps come
// before the generic Grip catch-all, which comes before the primitive reps.
package builtin

import (
	"github.com/aretw0/reps/pkg/registry"
	"github.com/aretw0/reps/pkg/rep"
)

// Default returns the stock reps in priority order. Obj is not included.
func Default() []rep.Descriptor {
	return []rep.Descriptor{
		RegExp,
		StyleSheet,
		Event,
		DateTime,
		CommentNode,
		ElementNode,
		TextNode,
		Attribute,
		LongString,
		Func,
		Promise,
		Array,
		Document,
		Window,
		ObjectWithText,
		ObjectWithURL,
		ErrorRep,
		GripArray,
		GripMap,
		Grip,
		Undefined,
		Null,
		String,
		Number,
		Symbol,
		Infinity,
		NaN,
	}
}

// Registry returns a registry holding Default.
func Registry() *registry.Registry {
	return registry.MustNew(Default()...)
}

// Without returns a registry holding Default minus the named reps.
func Without(names ...string) (*registry.Registry, error) {
	b := registry.NewBuilder(Registry())
	for _, n := range names {
		if err := b.Remove(n); err != nil {
			return nil, err
		}
	}
	return b.Build()
}
