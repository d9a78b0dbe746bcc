package builtin

import (
	"fmt"
	"strings"

	"github.com/aretw0/reps/pkg/rep"
)

// DOM node types carried in previews.
const (
	elementNode = 1
	textNode    = 3
	commentNode = 8
)

func nodeType(v any) int {
	if p := previewOf(v); p != nil {
		return p.NodeType
	}
	return 0
}

// StyleSheet renders CSSStyleSheet grips.
var StyleSheet = rep.Func{
	ID: "StyleSheet",
	Probe: func(v any, typ string, noGrip bool) bool {
		return !noGrip && typ == "CSSStyleSheet"
	},
	Draw: func(p rep.Props) string {
		g := gripOf(p.Object)
		title := paint(p, classTitle, titleOf(p, "StyleSheet"))
		if p.Mode == rep.ModeTiny {
			return title
		}
		url := g.URL
		if g.Preview != nil && g.Preview.URL != "" {
			url = g.Preview.URL
		}
		return title + " " + paint(p, classURL, url)
	},
}

// Event renders DOM event grips.
var Event = rep.Func{
	ID: "Event",
	Probe: func(v any, typ string, noGrip bool) bool {
		return !noGrip && previewKind(v) == "DOMEvent"
	},
	Draw: func(p rep.Props) string {
		g := gripOf(p.Object)
		title := paint(p, classTitle, titleOf(p, g.Class))
		s := title + " " + g.Preview.Type
		if p.Mode == rep.ModeTiny || g.Preview.Target == nil {
			return s
		}
		return s + " target: " + p.RenderChild(g.Preview.Target)
	},
}

// CommentNode renders DOM comment nodes.
var CommentNode = rep.Func{
	ID: "CommentNode",
	Probe: func(v any, typ string, noGrip bool) bool {
		return !noGrip && nodeType(v) == commentNode
	},
	Draw: func(p rep.Props) string {
		text := previewOf(p.Object).TextContent
		if p.Mode != rep.ModeLong {
			text = crop(text, 50)
		}
		return paint(p, classNode, "<!-- "+text+" -->")
	},
}

// ElementNode renders DOM elements.
var ElementNode = rep.Func{
	ID: "ElementNode",
	Probe: func(v any, typ string, noGrip bool) bool {
		return !noGrip && nodeType(v) == elementNode
	},
	Draw: func(p rep.Props) string {
		pv := previewOf(p.Object)
		name := strings.ToLower(pv.NodeName)
		attrs := pv.Attributes

		if p.Mode == rep.ModeTiny {
			s := name
			if id, _ := attrs["id"].(string); id != "" {
				s += "#" + id
			}
			if cls, _ := attrs["class"].(string); cls != "" {
				s += "." + strings.Join(strings.Fields(cls), ".")
			}
			return paint(p, classNode, s)
		}

		var b strings.Builder
		b.WriteString(paint(p, classNode, "<"+name))
		for _, k := range sortedKeys(attrs) {
			b.WriteString(" " + paint(p, classAttribute, k) + "=" + quote(fmt.Sprint(attrs[k])))
		}
		b.WriteString(paint(p, classNode, ">"))
		return b.String()
	},
}

// TextNode renders DOM text nodes.
var TextNode = rep.Func{
	ID: "TextNode",
	Probe: func(v any, typ string, noGrip bool) bool {
		return !noGrip && nodeType(v) == textNode
	},
	Draw: func(p rep.Props) string {
		title := paint(p, classTitle, titleOf(p, "#text"))
		if p.Mode == rep.ModeTiny {
			return title
		}
		text := previewOf(p.Object).TextContent
		return title + " " + paint(p, classString, quote(crop(text, p.MaxLength)))
	},
}

// Attribute renders DOM Attr grips as name="value".
var Attribute = rep.Func{
	ID: "Attribute",
	Probe: func(v any, typ string, noGrip bool) bool {
		return !noGrip && typ == "Attr" && previewOf(v) != nil
	},
	Draw: func(p rep.Props) string {
		pv := previewOf(p.Object)
		return paint(p, classAttribute, pv.NodeName) + "=" + paint(p, classString, quote(fmt.Sprint(pv.Value)))
	},
}

// Document renders HTMLDocument grips.
var Document = rep.Func{
	ID: "Document",
	Probe: func(v any, typ string, noGrip bool) bool {
		return !noGrip && typ == "HTMLDocument"
	},
	Draw: func(p rep.Props) string {
		g := gripOf(p.Object)
		title := paint(p, classTitle, titleOf(p, g.Class))
		if p.Mode == rep.ModeTiny || g.Preview == nil {
			return title
		}
		return title + " " + paint(p, classURL, g.Preview.Location)
	},
}

// Window renders Window grips.
var Window = rep.Func{
	ID: "Window",
	Probe: func(v any, typ string, noGrip bool) bool {
		return !noGrip && typ == "Window"
	},
	Draw: func(p rep.Props) string {
		g := gripOf(p.Object)
		title := paint(p, classTitle, titleOf(p, g.Class))
		if p.Mode == rep.ModeTiny || g.Preview == nil {
			return title
		}
		return title + " " + paint(p, classURL, g.Preview.URL)
	},
}
