package builtin

import (
	"fmt"
	"reflect"

	"github.com/aretw0/reps/pkg/classify"
	"github.com/aretw0/reps/pkg/rep"
	"github.com/aretw0/reps/pkg/value"
)

// Undefined renders the undefined value, native or shipped as {type: "undefined"}.
var Undefined = rep.Func{
	ID: "Undefined",
	Probe: func(v any, typ string, noGrip bool) bool {
		return typ == classify.TypeUndefined || classify.ShapeHint(v) == classify.TypeUndefined
	},
	Draw: func(p rep.Props) string {
		return paint(p, classNull, "undefined")
	},
}

// Null renders nil and {type: "null"}. Like Undefined it reads the hint
// directly, so it matches with NoGrip set as well.
var Null = rep.Func{
	ID: "Null",
	Probe: func(v any, typ string, noGrip bool) bool {
		return v == nil || typ == "null" || classify.ShapeHint(v) == "null"
	},
	Draw: func(p rep.Props) string {
		return paint(p, classNull, "null")
	},
}

// String renders primitive and boxed strings.
var String = rep.Func{
	ID: "String",
	Probe: func(v any, typ string, noGrip bool) bool {
		return typ == classify.TypeString
	},
	Draw: func(p rep.Props) string {
		s := stringValue(p.Object)
		return paint(p, classString, quote(crop(s, p.MaxLength)))
	},
}

func stringValue(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case value.Boxed:
		return s.BoxedString()
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return rv.String()
	}
	return fmt.Sprint(v)
}

// Number renders numbers, booleans and negative zero.
var Number = rep.Func{
	ID: "Number",
	Probe: func(v any, typ string, noGrip bool) bool {
		return typ == classify.TypeNumber || typ == classify.TypeBoolean || typ == "-0"
	},
	Draw: func(p rep.Props) string {
		if classify.ShapeHint(p.Object) == "-0" {
			return paint(p, classNumber, "-0")
		}
		return paint(p, classNumber, formatNumber(p.Object))
	},
}

// Symbol renders symbols, native or shipped as {type: "symbol", name: ...}.
var Symbol = rep.Func{
	ID: "Symbol",
	Probe: func(v any, typ string, noGrip bool) bool {
		return typ == classify.TypeSymbol
	},
	Draw: func(p rep.Props) string {
		var desc string
		switch s := p.Object.(type) {
		case value.Symbol:
			desc = s.Description
		case *value.Symbol:
			if s != nil {
				desc = s.Description
			}
		default:
			desc = gripOf(s).Name
		}
		return paint(p, classSymbol, fmt.Sprintf("Symbol(%s)", desc))
	},
}

// Infinity renders {type: "Infinity"} and {type: "-Infinity"}.
var Infinity = rep.Func{
	ID: "Infinity",
	Probe: func(v any, typ string, noGrip bool) bool {
		return typ == "Infinity" || typ == "-Infinity"
	},
	Draw: func(p rep.Props) string {
		return paint(p, classNumber, classify.ShapeHint(p.Object))
	},
}

// NaN renders {type: "NaN"}.
var NaN = rep.Func{
	ID: "NaN",
	Probe: func(v any, typ string, noGrip bool) bool {
		return typ == "NaN"
	},
	Draw: func(p rep.Props) string {
		return paint(p, classNumber, "NaN")
	},
}
