// Package blueprint maps technology choices to their implementation footprint:
// environment variables, packages, files and checklist constraints.
package blueprint

import "strings"

// Blueprint describes what choosing one option brings into a project.
type Blueprint struct {
	Title         string
	Description   string
	EnvVars       []string
	Packages      []string
	RequiredFiles []string
	Constraints   []string
	SchemaSnippet string
}

// Lookup returns the blueprint registered for (field, value).
func Lookup(field, value string) (Blueprint, bool) {
	byValue, ok := registry[field]
	if !ok {
		return Blueprint{}, false
	}
	bp, ok := byValue[value]
	return bp, ok
}

// Fields returns the question ids that have at least one blueprint.
func Fields() []string {
	fields := make([]string, 0, len(registry))
	for f := range registry {
		fields = append(fields, f)
	}
	return fields
}

func schema(s string) string {
	return strings.TrimSpace(s)
}
