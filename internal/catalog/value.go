package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNone Kind = iota // Unset / null
	KindText             // text, textarea and select answers
	KindList             // multiselect answers
	KindBool             // boolean answers
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindList:
		return "list"
	case KindBool:
		return "bool"
	default:
		return "none"
	}
}

// Value is a single answer. The zero Value is unset.
type Value struct {
	kind Kind
	text string
	list []string
	flag bool
}

// Text returns a text value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// List returns a list value. The items are copied.
func List(items ...string) Value {
	return Value{kind: KindList, list: append([]string{}, items...)}
}

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsSet reports whether v holds any variant.
func (v Value) IsSet() bool { return v.kind != KindNone }

// Str returns the text of a text value and "" otherwise.
func (v Value) Str() string {
	if v.kind != KindText {
		return ""
	}
	return v.text
}

// Items returns a copy of the list of a list value and nil otherwise.
func (v Value) Items() []string {
	if v.kind != KindList {
		return nil
	}
	return append([]string{}, v.list...)
}

// Flag returns the boolean and whether v is a boolean value.
func (v Value) Flag() (bool, bool) {
	return v.flag, v.kind == KindBool
}

// IsEmpty reports whether v counts as unanswered: blank text after trimming,
// an empty list, or unset. A boolean false is an answer.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindText:
		return strings.TrimSpace(v.text) == ""
	case KindList:
		return len(v.list) == 0
	case KindBool:
		return false
	default:
		return true
	}
}

// Equal reports strict equality: same variant and same content.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindText:
		return v.text == o.text
	case KindList:
		return slices.Equal(v.list, o.list)
	case KindBool:
		return v.flag == o.flag
	default:
		return true
	}
}

// Contains reports list membership for list values and substring
// containment for text values. Every other variant contains nothing.
func (v Value) Contains(s string) bool {
	switch v.kind {
	case KindList:
		return slices.Contains(v.list, s)
	case KindText:
		return strings.Contains(v.text, s)
	default:
		return false
	}
}

// Display renders v for a document line. Lists are comma separated.
func (v Value) Display() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindList:
		return strings.Join(v.list, ", ")
	case KindBool:
		if v.flag {
			return "Yes"
		}
		return "No"
	default:
		return ""
	}
}

func (v Value) String() string {
	return fmt.Sprintf("%s(%s)", v.kind, v.Display())
}

// MarshalJSON encodes v as a JSON string, array, bool or null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return json.Marshal(v.text)
	case KindList:
		return json.Marshal(v.list)
	case KindBool:
		return json.Marshal(v.flag)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a JSON string, string array, bool or null.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = Value{}
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Text(s)
	case '[':
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("list answer must contain only strings: %w", err)
		}
		*v = List(items...)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = Bool(b)
	default:
		return fmt.Errorf("unsupported answer value: %s", string(data))
	}
	return nil
}

// Answers maps question ids to values. Treat it as immutable: use With and
// Without to derive updated sets.
type Answers map[string]Value

// Get returns the value for id, or the unset Value.
func (a Answers) Get(id string) Value {
	if a == nil {
		return Value{}
	}
	return a[id]
}

// Clone returns a shallow copy. Values are immutable so this is a full copy.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// With returns a copy of a with id set to v.
func (a Answers) With(id string, v Value) Answers {
	out := a.Clone()
	out[id] = v
	return out
}

// Without returns a copy of a with id removed.
func (a Answers) Without(id string) Answers {
	out := a.Clone()
	delete(out, id)
	return out
}

// Equal reports whether both sets hold equal values for the same ids.
func (a Answers) Equal(b Answers) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		w, ok := b[k]
		if !ok || !v.Equal(w) {
			return false
		}
	}
	return true
}
