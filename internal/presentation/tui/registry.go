package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/reps/pkg/registry"
)

// RegistryMarkdown lists the reps of reg in priority order as a markdown table.
func RegistryMarkdown(reg *registry.Registry, fallback string) string {
	var b strings.Builder
	b.WriteString("# Reps\n\n")
	b.WriteString("| Priority | Rep |\n")
	b.WriteString("|---:|---|\n")
	for i, name := range reg.Names() {
		fmt.Fprintf(&b, "| %d | %s |\n", i+1, name)
	}
	if fallback != "" {
		fmt.Fprintf(&b, "\nValues no rep accepts are rendered by **%s**.\n", fallback)
	}
	return b.String()
}
