package builtin

import (
	"fmt"

	"github.com/aretw0/reps/pkg/grip"
	"github.com/aretw0/reps/pkg/rep"
)

// Grip is the catch-all for remote objects no more specific rep claimed.
var Grip = rep.Func{
	ID: "Grip",
	Probe: func(v any, typ string, noGrip bool) bool {
		return !noGrip && grip.IsGrip(v)
	},
	Draw: func(p rep.Props) string {
		g := gripOf(p.Object)
		title := paint(p, classTitle, titleOf(p, g.Class))
		if p.Mode == rep.ModeTiny {
			return title
		}

		var props map[string]any
		if g.Preview != nil {
			props = g.Preview.OwnProperties
		}
		total := max(g.OwnPropertyLength, len(props))
		keys := sortedKeys(props)
		keys = keys[:min(len(keys), maxItems(p.Mode))]
		items := make([]string, 0, len(keys))
		for _, k := range keys {
			items = append(items, k+": "+p.RenderChild(propertyValue(props[k])))
		}
		if len(items) == 0 && total > 0 {
			return title + " { " + ellipsis + " }"
		}
		return title + " " + joinItems("{", "}", items, total)
	},
}

// GripArray renders remote array-like objects.
var GripArray = rep.Func{
	ID: "GripArray",
	Probe: func(v any, typ string, noGrip bool) bool {
		return !noGrip && previewKind(v) == "ArrayLike"
	},
	Draw: func(p rep.Props) string {
		g := gripOf(p.Object)
		title := titleOf(p, g.Class)
		n := g.Preview.Length
		if p.Mode == rep.ModeTiny {
			return paint(p, classTitle, fmt.Sprintf("%s(%d)", title, n))
		}
		items := g.Preview.Items
		items = items[:min(len(items), maxItems(p.Mode))]
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, p.RenderChild(it))
		}
		return paint(p, classTitle, title) + " " + joinItems("[", "]", out, max(n, len(out)))
	},
}

// GripMap renders remote Map and WeakMap objects.
var GripMap = rep.Func{
	ID: "GripMap",
	Probe: func(v any, typ string, noGrip bool) bool {
		return !noGrip && previewKind(v) == "MapLike"
	},
	Draw: func(p rep.Props) string {
		g := gripOf(p.Object)
		title := titleOf(p, g.Class)
		n := g.Preview.Length
		if p.Mode == rep.ModeTiny {
			return paint(p, classTitle, fmt.Sprintf("%s(%d)", title, n))
		}
		entries := g.Preview.Entries
		entries = entries[:min(len(entries), maxItems(p.Mode))]
		out := make([]string, 0, len(entries))
		for _, e := range entries {
			if len(e) != 2 {
				continue
			}
			out = append(out, p.RenderChild(e[0])+" → "+p.RenderChild(e[1]))
		}
		return paint(p, classTitle, title) + " " + joinItems("{", "}", out, max(n, len(out)))
	},
}
