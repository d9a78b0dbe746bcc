// Package value holds the Go-side forms of runtime values that have no native
// Go representation: undefined, symbols, boxed strings and shape hints.
package value

// undefinedValue is the type of Undefined.
type undefinedValue struct{}

func (undefinedValue) String() string { return "undefined" }

// Undefined is the absent value. It is distinct from nil, which stands for null.
var Undefined = undefinedValue{}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefinedValue)
	return ok
}

// Symbol is a unique, optionally described, symbol value.
type Symbol struct {
	Description string
}

// Boxed is implemented by object-form strings.
type Boxed interface {
	BoxedString() string
}

// StringObject is a string wrapped in an object.
type StringObject struct {
	Value string
}

func (s StringObject) BoxedString() string { return s.Value }

// Typed is implemented by structured values carrying an explicit shape hint.
type Typed interface {
	ShapeType() string
}
