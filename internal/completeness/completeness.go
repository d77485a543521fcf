// Package completeness scores how much of a questionnaire is satisfied.
package completeness

import (
	"math"

	"github.com/jywlabs/specgen/internal/catalog"
	"github.com/jywlabs/specgen/internal/visibility"
)

// Satisfied reports whether q counts as done: it is optional or its answer
// is non-empty.
func Satisfied(q catalog.Question, answers catalog.Answers) bool {
	return q.Optional || !answers.Get(q.ID).IsEmpty()
}

// Calculate returns the percentage of visible questions that are satisfied,
// rounded to the nearest integer. An empty answer set or one with no
// visible questions scores 0, even when the catalog has optional questions.
func Calculate(cat catalog.Catalog, answers catalog.Answers) int {
	if len(answers) == 0 {
		return 0
	}

	visible := visibility.Filter(cat, answers)
	if len(visible) == 0 {
		return 0
	}

	satisfied := 0
	for _, q := range visible {
		if Satisfied(q, answers) {
			satisfied++
		}
	}

	pct := int(math.Round(100 * float64(satisfied) / float64(len(visible))))
	return min(pct, 100)
}

// SectionProgress is the sidebar line for one section.
type SectionProgress struct {
	Section  string
	Total    int // visible questions
	Answered int // satisfied visible questions
}

// Complete reports whether every visible question in the section is satisfied.
func (p SectionProgress) Complete() bool {
	return p.Total > 0 && p.Answered == p.Total
}

// BySection groups visible questions by section in catalog order.
// Sections with no visible question are omitted.
func BySection(cat catalog.Catalog, answers catalog.Answers) []SectionProgress {
	var out []SectionProgress
	index := make(map[string]int)

	for _, q := range visibility.Filter(cat, answers) {
		i, ok := index[q.Section]
		if !ok {
			i = len(out)
			index[q.Section] = i
			out = append(out, SectionProgress{Section: q.Section})
		}
		out[i].Total++
		if Satisfied(q, answers) {
			out[i].Answered++
		}
	}
	return out
}
