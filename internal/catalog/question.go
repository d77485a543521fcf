// Package catalog holds the questionnaire definitions and the answer value
// types shared by every stage of spec generation.
package catalog

import (
	"fmt"
	"regexp"
	"slices"
)

// QuestionType is the input shape of a question.
type QuestionType string

const (
	TypeText        QuestionType = "text"
	TypeTextarea    QuestionType = "textarea"
	TypeSelect      QuestionType = "select"
	TypeMultiselect QuestionType = "multiselect"
	TypeBoolean     QuestionType = "boolean"
)

// Operator compares a referenced answer against a condition value.
type Operator string

const (
	OpEquals    Operator = "equals"
	OpNotEquals Operator = "not_equals"
	OpContains  Operator = "contains"
)

// Condition gates a question on another question's answer.
type Condition struct {
	Field    string   `json:"field"`
	Operator Operator `json:"operator"`
	Value    Value    `json:"value"`
}

// Question is one entry of the catalog.
type Question struct {
	ID          string       `json:"id"`
	Section     string       `json:"section"`
	Label       string       `json:"label"`
	Description string       `json:"description,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
	Type        QuestionType `json:"type"`
	Options     []string     `json:"options,omitempty"`
	Optional    bool         `json:"optional,omitempty"`
	Default     Value        `json:"default,omitempty"`
	Validation  string       `json:"validation,omitempty"` // regex, text types only
	Condition   *Condition   `json:"condition,omitempty"`
}

// Required reports whether the question blocks advancing while empty.
func (q Question) Required() bool { return !q.Optional }

// HasDefault reports whether the question carries a non-empty default.
func (q Question) HasDefault() bool { return !q.Default.IsEmpty() }

// IsTextual reports whether the question takes free text.
func (q Question) IsTextual() bool {
	return q.Type == TypeText || q.Type == TypeTextarea
}

// Kind returns the value variant the question accepts.
func (q Question) Kind() Kind {
	switch q.Type {
	case TypeMultiselect:
		return KindList
	case TypeBoolean:
		return KindBool
	default:
		return KindText
	}
}

// CheckValue verifies that v has the variant declared by the question.
// Unset values are always accepted.
func (q Question) CheckValue(v Value) error {
	if !v.IsSet() {
		return nil
	}
	if v.Kind() != q.Kind() {
		return fmt.Errorf("question %q expects a %s answer, got %s", q.ID, q.Kind(), v.Kind())
	}
	return nil
}

// Catalog is an ordered list of questions.
type Catalog []Question

// Lookup returns the question with the given id.
func (c Catalog) Lookup(id string) (Question, bool) {
	for _, q := range c {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Validate checks the structural invariants of the catalog.
func (c Catalog) Validate() error {
	seen := make(map[string]bool, len(c))
	for _, q := range c {
		if q.ID == "" {
			return fmt.Errorf("question with label %q has no id", q.Label)
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
	}

	for _, q := range c {
		if !slices.Contains(Sections, q.Section) {
			return fmt.Errorf("question %q: unknown section %q", q.ID, q.Section)
		}
		if (q.Type == TypeSelect || q.Type == TypeMultiselect) && len(q.Options) == 0 {
			return fmt.Errorf("question %q: %s requires options", q.ID, q.Type)
		}
		if q.Validation != "" {
			if !q.IsTextual() {
				return fmt.Errorf("question %q: validation pattern on non-text type %s", q.ID, q.Type)
			}
			if _, err := regexp.Compile(q.Validation); err != nil {
				return fmt.Errorf("question %q: invalid validation pattern: %w", q.ID, err)
			}
		}
		if err := q.CheckValue(q.Default); err != nil {
			return fmt.Errorf("default: %w", err)
		}
		if cond := q.Condition; cond != nil {
			if cond.Field == q.ID {
				return fmt.Errorf("question %q: condition references itself", q.ID)
			}
			if !seen[cond.Field] {
				return fmt.Errorf("question %q: condition references unknown field %q", q.ID, cond.Field)
			}
		}
	}
	return nil
}
