package builtin

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/aretw0/reps/pkg/classify"
	"github.com/aretw0/reps/pkg/rep"
)

// Obj is the generic fallback. It is not part of the default list; dispatch
// hands it the values no registered rep accepts.
var Obj = rep.Func{
	ID: "Object",
	Probe: func(v any, typ string, noGrip bool) bool {
		return typ == classify.TypeObject
	},
	Draw: drawObject,
}

func drawObject(p rep.Props) string {
	rv := reflect.ValueOf(p.Object)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return paint(p, classNull, "null")
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return paint(p, classNull, "null")
	}

	title := paint(p, classTitle, titleOf(p, objectTitle(rv)))
	if p.Mode == rep.ModeTiny {
		return title
	}

	var (
		items []string
		total int
		limit = maxItems(p.Mode)
	)
	switch rv.Kind() {
	case reflect.Map:
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		total = len(keys)
		for _, k := range keys[:min(total, limit)] {
			items = append(items, fmt.Sprintf("%v: %s", k.Interface(), p.RenderChild(rv.MapIndex(k).Interface())))
		}
	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			total++
			if len(items) < limit {
				items = append(items, fmt.Sprintf("%s: %s", f.Name, p.RenderChild(rv.Field(i).Interface())))
			}
		}
	default:
		return title + " " + fmt.Sprint(rv.Interface())
	}
	return title + " " + joinItems("{", "}", items, total)
}

func objectTitle(rv reflect.Value) string {
	if rv.Kind() == reflect.Struct && rv.Type().Name() != "" {
		return rv.Type().Name()
	}
	return "Object"
}
