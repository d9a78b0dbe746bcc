package builtin

import (
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/aretw0/reps/pkg/classify"
	"github.com/aretw0/reps/pkg/rep"
)

// RegExp renders regular expression grips using their display string.
var RegExp = rep.Func{
	ID: "RegExp",
	Probe: func(v any, typ string, noGrip bool) bool {
		return !noGrip && typ == "RegExp"
	},
	Draw: func(p rep.Props) string {
		g := gripOf(p.Object)
		s := g.DisplayString
		if s == "" {
			src, _ := g.Payload["source"].(string)
			flags, _ := g.Payload["flags"].(string)
			s = "/" + src + "/" + flags
		}
		return paint(p, classRegExp, s)
	},
}

// DateTime renders Date grips from their preview timestamp.
var DateTime = rep.Func{
	ID: "DateTime",
	Probe: func(v any, typ string, noGrip bool) bool {
		return !noGrip && typ == "Date" && previewOf(v) != nil
	},
	Draw: func(p rep.Props) string {
		g := gripOf(p.Object)
		title := paint(p, classTitle, titleOf(p, g.Class))
		ms, ok := toFloat(g.Preview.Timestamp)
		if !ok {
			return title + " " + paint(p, classDate, "Invalid Date")
		}
		ts := time.UnixMilli(int64(ms)).UTC().Format("2006-01-02T15:04:05.000Z")
		return title + " " + paint(p, classDate, ts)
	},
}

// LongString renders long string handles from their initial segment.
var LongString = rep.Func{
	ID: "LongString",
	Probe: func(v any, typ string, noGrip bool) bool {
		return !noGrip && typ == "longString"
	},
	Draw: func(p rep.Props) string {
		g := gripOf(p.Object)
		s := g.Initial
		if p.MaxLength > 0 {
			s = crop(s, p.MaxLength)
		}
		if g.Length > len([]rune(g.Initial)) {
			s += ellipsis
		}
		return paint(p, classString, quote(s))
	},
}

// Func renders native Go functions and Function grips.
var Func = rep.Func{
	ID: "Function",
	Probe: func(v any, typ string, noGrip bool) bool {
		return typ == classify.TypeFunction || (!noGrip && typ == "Function")
	},
	Draw: func(p rep.Props) string {
		return paint(p, classTitle, "function") + " " + functionName(p.Object) + "()"
	},
}

func functionName(v any) string {
	if classify.NativeType(v) == classify.TypeFunction {
		rv := reflect.ValueOf(v)
		if rv.IsNil() {
			return "anonymous"
		}
		fn := runtime.FuncForPC(rv.Pointer())
		if fn == nil {
			return "anonymous"
		}
		name := fn.Name()
		if i := strings.LastIndex(name, "."); i >= 0 {
			name = name[i+1:]
		}
		return name
	}

	g := gripOf(v)
	for _, n := range []string{g.DisplayName, g.Name} {
		if n != "" {
			return n
		}
	}
	return "anonymous"
}

// Promise renders Promise grips with their settlement state.
var Promise = rep.Func{
	ID: "Promise",
	Probe: func(v any, typ string, noGrip bool) bool {
		return !noGrip && typ == "Promise"
	},
	Draw: func(p rep.Props) string {
		g := gripOf(p.Object)
		title := paint(p, classTitle, titleOf(p, g.Class))
		if p.Mode == rep.ModeTiny || g.PromiseState == nil {
			return title
		}
		st := g.PromiseState
		switch st.State {
		case "fulfilled":
			return title + " { <fulfilled>: " + p.RenderChild(st.Value) + " }"
		case "rejected":
			return title + " { <rejected>: " + p.RenderChild(st.Reason) + " }"
		default:
			return title + " { <" + st.State + "> }"
		}
	},
}

// ObjectWithText renders grips whose preview carries a text summary.
var ObjectWithText = rep.Func{
	ID: "ObjectWithText",
	Probe: func(v any, typ string, noGrip bool) bool {
		return !noGrip && previewKind(v) == "ObjectWithText"
	},
	Draw: func(p rep.Props) string {
		g := gripOf(p.Object)
		return paint(p, classTitle, titleOf(p, g.Class)) + " " + paint(p, classString, quote(g.Preview.Text))
	},
}

// ObjectWithURL renders grips whose preview carries a URL.
var ObjectWithURL = rep.Func{
	ID: "ObjectWithURL",
	Probe: func(v any, typ string, noGrip bool) bool {
		return !noGrip && previewKind(v) == "ObjectWithURL"
	},
	Draw: func(p rep.Props) string {
		g := gripOf(p.Object)
		return paint(p, classTitle, titleOf(p, g.Class)) + " " + paint(p, classURL, g.Preview.URL)
	},
}

// ErrorRep renders Error grips.
var ErrorRep = rep.Func{
	ID: "Error",
	Probe: func(v any, typ string, noGrip bool) bool {
		return !noGrip && (typ == "Error" || previewKind(v) == "Error")
	},
	Draw: func(p rep.Props) string {
		g := gripOf(p.Object)
		name := g.Class
		var msg, stack string
		if g.Preview != nil {
			if g.Preview.Name != "" {
				name = g.Preview.Name
			}
			msg, stack = g.Preview.Message, g.Preview.Stack
		}
		name = titleOf(p, name)
		if p.Mode == rep.ModeTiny {
			return paint(p, classError, name)
		}
		s := paint(p, classError, name+": "+msg)
		if p.Mode == rep.ModeLong && stack != "" {
			s += "\nStack trace:\n" + stack
		}
		return s
	},
}
