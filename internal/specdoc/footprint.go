package specdoc

import (
	"slices"

	"github.com/jywlabs/specgen/internal/blueprint"
	"github.com/jywlabs/specgen/internal/catalog"
)

// Footprint aggregates the blueprints selected by an answer set.
// Constraints keep duplicates; the other lists are deduplicated. Every list
// keeps first-appearance order.
type Footprint struct {
	Constraints   []string
	EnvVars       []string
	Packages      []string
	RequiredFiles []string
	Schemas       []string
}

// Empty reports whether no blueprint matched.
func (f Footprint) Empty() bool {
	return len(f.Constraints) == 0 && len(f.EnvVars) == 0 && len(f.Packages) == 0 &&
		len(f.RequiredFiles) == 0 && len(f.Schemas) == 0
}

// Collect looks up a blueprint for every non-empty answer (every element of
// a list answer) and aggregates what it finds. Answers without a blueprint
// are skipped.
func Collect(answers catalog.Answers) Footprint {
	var f Footprint
	seen := map[string]map[string]bool{
		"env":  {},
		"pkg":  {},
		"file": {},
	}
	add := func(kind string, dst *[]string, items []string) {
		for _, it := range items {
			if seen[kind][it] {
				continue
			}
			seen[kind][it] = true
			*dst = append(*dst, it)
		}
	}

	for _, id := range answerOrder(answers) {
		v := answers.Get(id)
		if v.IsEmpty() {
			continue
		}

		var values []string
		switch v.Kind() {
		case catalog.KindText:
			values = []string{v.Str()}
		case catalog.KindList:
			values = v.Items()
		default:
			continue
		}

		for _, value := range values {
			bp, ok := blueprint.Lookup(id, value)
			if !ok {
				continue
			}
			f.Constraints = append(f.Constraints, bp.Constraints...)
			add("env", &f.EnvVars, bp.EnvVars)
			add("pkg", &f.Packages, bp.Packages)
			add("file", &f.RequiredFiles, bp.RequiredFiles)
			if bp.SchemaSnippet != "" {
				f.Schemas = append(f.Schemas, bp.SchemaSnippet)
			}
		}
	}
	return f
}

// answerOrder lists answer ids in catalog order, then any ids the catalog
// does not know, sorted.
func answerOrder(answers catalog.Answers) []string {
	order := make([]string, 0, len(answers))
	known := make(map[string]bool, len(answers))
	for _, q := range catalog.Default() {
		if _, ok := answers[q.ID]; ok {
			order = append(order, q.ID)
			known[q.ID] = true
		}
	}

	var rest []string
	for id := range answers {
		if !known[id] {
			rest = append(rest, id)
		}
	}
	slices.Sort(rest)
	return append(order, rest...)
}
