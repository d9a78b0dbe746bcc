// Package dispatch picks the renderer for a value by scanning a registry in
// priority order. The first accepting probe wins; a probe that panics is
// logged and skipped.
package dispatch
