// Package grip recognizes grips: structured handles describing objects that
// live in another process. Recognition is structural. Any value exposing a
// non-empty actor and a non-empty class is a grip, whatever its Go type.
package grip

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// ErrNotStructured is returned by Decode for values that cannot carry grip fields.
var ErrNotStructured = errors.New("value is not a structured grip candidate")

// Grip is the decoded form of a remote object handle.
type Grip struct {
	Actor             string        `json:"actor" mapstructure:"actor"`
	Class             string        `json:"class,omitempty" mapstructure:"class"`
	Type              string        `json:"type,omitempty" mapstructure:"type"`
	DisplayString     string        `json:"displayString,omitempty" mapstructure:"displayString"`
	OwnPropertyLength int           `json:"ownPropertyLength,omitempty" mapstructure:"ownPropertyLength"`
	Name              string        `json:"name,omitempty" mapstructure:"name"`
	DisplayName       string        `json:"displayName,omitempty" mapstructure:"displayName"`
	URL               string        `json:"url,omitempty" mapstructure:"url"`
	Initial           string        `json:"initial,omitempty" mapstructure:"initial"`
	Length            int           `json:"length,omitempty" mapstructure:"length"`
	PromiseState      *PromiseState `json:"promiseState,omitempty" mapstructure:"promiseState"`
	Preview           *Preview      `json:"preview,omitempty" mapstructure:"preview"`

	// Payload keeps every field dispatch does not look at.
	Payload map[string]any `json:"-" mapstructure:",remain"`
}

// PromiseState describes the settlement of a remote promise.
type PromiseState struct {
	State  string `json:"state" mapstructure:"state"`
	Value  any    `json:"value,omitempty" mapstructure:"value"`
	Reason any    `json:"reason,omitempty" mapstructure:"reason"`
}

// Preview is the server-computed summary shipped along with a grip.
type Preview struct {
	Kind          string         `json:"kind,omitempty" mapstructure:"kind"`
	Type          string         `json:"type,omitempty" mapstructure:"type"`
	NodeType      int            `json:"nodeType,omitempty" mapstructure:"nodeType"`
	NodeName      string         `json:"nodeName,omitempty" mapstructure:"nodeName"`
	Length        int            `json:"length,omitempty" mapstructure:"length"`
	Items         []any          `json:"items,omitempty" mapstructure:"items"`
	Entries       [][]any        `json:"entries,omitempty" mapstructure:"entries"`
	OwnProperties map[string]any `json:"ownProperties,omitempty" mapstructure:"ownProperties"`
	Attributes    map[string]any `json:"attributes,omitempty" mapstructure:"attributes"`
	Timestamp     any            `json:"timestamp,omitempty" mapstructure:"timestamp"`
	URL           string         `json:"url,omitempty" mapstructure:"url"`
	Text          string         `json:"text,omitempty" mapstructure:"text"`
	TextContent   string         `json:"textContent,omitempty" mapstructure:"textContent"`
	Location      string         `json:"location,omitempty" mapstructure:"location"`
	Name          string         `json:"name,omitempty" mapstructure:"name"`
	Message       string         `json:"message,omitempty" mapstructure:"message"`
	Stack         string         `json:"stack,omitempty" mapstructure:"stack"`
	Value         any            `json:"value,omitempty" mapstructure:"value"`
	Target        any            `json:"target,omitempty" mapstructure:"target"`
}

// Handle is implemented by Go types that stand for a remote object.
type Handle interface {
	RemoteGrip() Grip
}

// Valid reports whether g carries the fields dispatch needs.
func (g Grip) Valid() bool {
	return g.Actor != "" && g.Class != ""
}

// Detect returns the decoded grip and true when v is a well-formed grip.
// Malformed candidates, such as a handle missing its class, report false.
func Detect(v any) (Grip, bool) {
	g, err := Decode(v)
	if err != nil || !g.Valid() {
		return Grip{}, false
	}
	return g, true
}

// IsGrip reports whether v is a well-formed grip.
func IsGrip(v any) bool {
	_, ok := Detect(v)
	return ok
}

// Decode extracts grip fields from v without requiring them to be complete.
// Renderers use it to read payload from handles that are not grips, such as
// long strings, which carry an actor but no class.
func Decode(v any) (g Grip, err error) {
	defer func() {
		if r := recover(); r != nil {
			g, err = Grip{}, fmt.Errorf("grip decode: %v", r)
		}
	}()

	switch t := v.(type) {
	case nil:
		return Grip{}, ErrNotStructured
	case Grip:
		return t, nil
	case *Grip:
		if t == nil {
			return Grip{}, ErrNotStructured
		}
		return *t, nil
	case Handle:
		return t.RemoteGrip(), nil
	case map[string]any:
		return decodeMap(t)
	default:
		return Grip{}, ErrNotStructured
	}
}

// decodeMap reads the discriminators straight from m and decodes the rest as
// best it can. A payload field of the wrong type is left at its zero value;
// it never hides the grip.
func decodeMap(m map[string]any) (Grip, error) {
	if m == nil {
		return Grip{}, ErrNotStructured
	}
	var g Grip
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &g,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Grip{}, err
	}
	// Partial results are kept: mapstructure decodes every field it can.
	_ = dec.Decode(m)

	g.Actor, _ = m["actor"].(string)
	g.Class, _ = m["class"].(string)
	g.Type, _ = m["type"].(string)
	return g, nil
}
