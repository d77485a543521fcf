// Package visibility decides which catalog questions apply to an answer set.
package visibility

import "github.com/jywlabs/specgen/internal/catalog"

// IsVisible reports whether q applies given the current answers.
//
// Rules, in order:
//   - no condition: visible
//   - unknown operator: visible (fail open)
//   - referenced answer unset: hidden
//   - contains: list membership or text containment, anything else hidden
//   - equals: strict value equality
//   - not_equals: negated equals
func IsVisible(q catalog.Question, answers catalog.Answers) bool {
	cond := q.Condition
	if cond == nil {
		return true
	}

	switch cond.Operator {
	case catalog.OpContains, catalog.OpEquals, catalog.OpNotEquals:
	default:
		return true
	}

	ref := answers.Get(cond.Field)
	if !ref.IsSet() {
		return false
	}

	switch cond.Operator {
	case catalog.OpContains:
		if cond.Value.Kind() != catalog.KindText {
			return false
		}
		return ref.Contains(cond.Value.Str())
	case catalog.OpEquals:
		return ref.Equal(cond.Value)
	default:
		return !ref.Equal(cond.Value)
	}
}

// Filter returns the questions of cat visible under answers, in catalog order.
func Filter(cat catalog.Catalog, answers catalog.Answers) catalog.Catalog {
	visible := make(catalog.Catalog, 0, len(cat))
	for _, q := range cat {
		if IsVisible(q, answers) {
			visible = append(visible, q)
		}
	}
	return visible
}
