package builtin

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/aretw0/reps/pkg/grip"
	"github.com/aretw0/reps/pkg/rep"
)

const ellipsis = "…"

// Item caps per mode for containers.
const (
	shortItems = 3
	longItems  = 100
)

func maxItems(m rep.Mode) int {
	if m == rep.ModeLong {
		return longItems
	}
	return shortItems
}

// crop shortens s to max runes by cutting out its middle.
func crop(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	if max < 3 {
		return string(r[:max])
	}
	half := (max - 1) / 2
	return string(r[:half]) + ellipsis + string(r[len(r)-(max-1-half):])
}

func quote(s string) string {
	return strconv.Quote(s)
}

// gripOf decodes whatever grip fields the rendered object carries.
func gripOf(v any) grip.Grip {
	g, _ := grip.Decode(v)
	return g
}

func previewOf(v any) *grip.Preview {
	return gripOf(v).Preview
}

// previewKind is a probe helper; it is empty for values without a preview.
func previewKind(v any) string {
	if p := previewOf(v); p != nil {
		return p.Kind
	}
	return ""
}

func titleOf(p rep.Props, fallback string) string {
	if p.Title != "" {
		return p.Title
	}
	return fallback
}

// formatNumber renders numeric and boolean values the way a script console does.
func formatNumber(v any) string {
	switch n := v.(type) {
	case json.Number:
		return n.String()
	case float64:
		return formatFloat(n)
	case float32:
		return formatFloat(float64(n))
	case bool:
		return strconv.FormatBool(n)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return formatFloat(rv.Float())
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	}
	return fmt.Sprint(v)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0 && math.Signbit(f):
		return "-0"
	case math.Abs(f) < 1e21:
		return strconv.FormatFloat(f, 'f', -1, 64)
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

// joinItems renders a bracketed list, eliding items past the mode's cap.
func joinItems(open, close string, items []string, total int) string {
	if total == 0 {
		return open + close
	}
	body := strings.Join(items, ", ")
	if more := total - len(items); more > 0 {
		body += fmt.Sprintf(", %s %d more", ellipsis, more)
	}
	return open + " " + body + " " + close
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// propertyValue unwraps a property descriptor shipped in a grip preview.
func propertyValue(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	val, hasValue := m["value"]
	if !hasValue {
		if getter, ok := m["get"]; ok {
			return getter
		}
		return v
	}
	for _, k := range []string{"enumerable", "writable", "configurable"} {
		if _, ok := m[k]; ok {
			return val
		}
	}
	return v
}

// toFloat converts numeric payload values such as a preview timestamp.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
