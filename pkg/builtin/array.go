package builtin

import (
	"reflect"

	"github.com/aretw0/reps/pkg/classify"
	"github.com/aretw0/reps/pkg/rep"
)

// Array renders native Go slices and arrays.
var Array = rep.Func{
	ID: "Array",
	Probe: func(v any, typ string, noGrip bool) bool {
		return classify.IsSequence(v)
	},
	Draw: drawArray,
}

func drawArray(p rep.Props) string {
	rv := reflect.ValueOf(p.Object)
	n := rv.Len()
	if p.Mode == rep.ModeTiny {
		if n == 0 {
			return "[]"
		}
		return "[" + ellipsis + "]"
	}

	limit := min(n, maxItems(p.Mode))
	items := make([]string, 0, limit)
	for i := 0; i < limit; i++ {
		items = append(items, p.RenderChild(rv.Index(i).Interface()))
	}
	return joinItems("[", "]", items, n)
}
