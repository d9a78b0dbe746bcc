// Package classify computes the effective type label used to match a value
// against renderer probes.
package classify

import (
	"encoding/json"
	"reflect"

	"github.com/aretw0/reps/pkg/grip"
	"github.com/aretw0/reps/pkg/value"
)

// Native type labels.
const (
	TypeUndefined = "undefined"
	TypeObject    = "object"
	TypeBoolean   = "boolean"
	TypeNumber    = "number"
	TypeString    = "string"
	TypeSymbol    = "symbol"
	TypeFunction  = "function"
)

// Classify returns the effective type of v.
//
// Boxed strings are "string". Otherwise an object exposing a shape hint takes
// that hint when allowGripTyping is set, and anything else gets its native
// type. A well-formed grip always ends up as its class: that override runs
// last and is not gated by allowGripTyping. Callers that need to ignore grips
// entirely must check the noGrip flag in their probes.
func Classify(v any, allowGripTyping bool) string {
	typ := NativeType(v)
	if b, ok := v.(value.Boxed); ok && b != nil {
		typ = TypeString
	} else if typ == TypeObject && allowGripTyping {
		if hint := ShapeHint(v); hint != "" {
			typ = hint
		}
	}

	if g, ok := grip.Detect(v); ok {
		typ = g.Class
	}
	return typ
}

// ShapeHint returns the explicit type hint carried by v, or "".
func ShapeHint(v any) (hint string) {
	defer func() {
		if recover() != nil {
			hint = ""
		}
	}()

	switch t := v.(type) {
	case map[string]any:
		s, _ := t["type"].(string)
		return s
	case grip.Grip:
		return t.Type
	case *grip.Grip:
		if t != nil {
			return t.Type
		}
	case value.Typed:
		return t.ShapeType()
	}
	return ""
}

// NativeType names the runtime type of v the way a dynamically typed host
// would report it. nil is null and therefore "object". Native sequences stay
// "object"; renderers that care recognize them by kind.
func NativeType(v any) string {
	switch v.(type) {
	case nil:
		return TypeObject
	case json.Number:
		return TypeNumber
	case value.Symbol, *value.Symbol:
		return TypeSymbol
	}
	if value.IsUndefined(v) {
		return TypeUndefined
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool:
		return TypeBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return TypeNumber
	case reflect.String:
		return TypeString
	case reflect.Func:
		return TypeFunction
	default:
		return TypeObject
	}
}

// IsSequence reports whether v is a native Go slice or array.
func IsSequence(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}
