package builtin

import (
	"github.com/aretw0/reps/pkg/rep"
)

// Style classes applied to rendered fragments.
const (
	classString    = "string"
	classNumber    = "number"
	classNull      = "null"
	classSymbol    = "symbol"
	classTitle     = "title"
	classNode      = "node"
	classAttribute = "attribute"
	classError     = "error"
	classDate      = "date"
	classRegExp    = "regexp"
	classURL       = "url"
)

var palette = map[string]string{
	classString:    "#dd00a9",
	classNumber:    "#1c00cf",
	classNull:      "#737373",
	classSymbol:    "#6a6a6a",
	classTitle:     "#0074e8",
	classNode:      "#0074e8",
	classAttribute: "#dd00a9",
	classError:     "#ed2655",
	classDate:      "#058b00",
	classRegExp:    "#dd00a9",
	classURL:       "#737373",
}

// paint colours s for its class when the props ask for styled output.
func paint(p rep.Props, class, s string) string {
	if !p.Styled {
		return s
	}
	hex, ok := palette[class]
	if !ok {
		return s
	}
	return p.Profile.String(s).Foreground(p.Profile.Color(hex)).String()
}
