package catalog

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDefaultCatalogValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cat     Catalog
		wantErr string
	}{
		{
			name: "duplicate id",
			cat: Catalog{
				{ID: "a", Section: SectionIdentity, Type: TypeText},
				{ID: "a", Section: SectionIdentity, Type: TypeText},
			},
			wantErr: "duplicate question id",
		},
		{
			name:    "unknown section",
			cat:     Catalog{{ID: "a", Section: "Nowhere", Type: TypeText}},
			wantErr: "unknown section",
		},
		{
			name:    "select without options",
			cat:     Catalog{{ID: "a", Section: SectionScope, Type: TypeSelect}},
			wantErr: "requires options",
		},
		{
			name:    "bad pattern",
			cat:     Catalog{{ID: "a", Section: SectionScope, Type: TypeText, Validation: "("}},
			wantErr: "invalid validation pattern",
		},
		{
			name:    "pattern on select",
			cat:     Catalog{{ID: "a", Section: SectionScope, Type: TypeSelect, Options: []string{"x"}, Validation: "x"}},
			wantErr: "non-text type",
		},
		{
			name:    "default of wrong kind",
			cat:     Catalog{{ID: "a", Section: SectionScope, Type: TypeMultiselect, Options: []string{"x"}, Default: Text("x")}},
			wantErr: "expects a list answer",
		},
		{
			name: "condition on unknown field",
			cat: Catalog{
				{ID: "a", Section: SectionScope, Type: TypeText, Condition: &Condition{Field: "ghost", Operator: OpEquals, Value: Text("x")}},
			},
			wantErr: "unknown field",
		},
		{
			name: "condition on itself",
			cat: Catalog{
				{ID: "a", Section: SectionScope, Type: TypeText, Condition: &Condition{Field: "a", Operator: OpEquals, Value: Text("x")}},
			},
			wantErr: "references itself",
		},
		{
			name: "condition referencing a later question is allowed",
			cat: Catalog{
				{ID: "a", Section: SectionScope, Type: TypeText, Condition: &Condition{Field: "b", Operator: OpEquals, Value: Text("x")}},
				{ID: "b", Section: SectionScope, Type: TypeText},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cat.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestSectionMappingFieldsExist(t *testing.T) {
	cat := Default()
	ids := []string{
		"objective", "problemStatement", "targetAudience",
		"projectStage", "platforms",
		"designIntent", "visualRiskTolerance", "themeMode", "primaryColor", "secondaryColor",
		"headlineFont", "bodyFont", "iconSet", "componentSystem", "layoutRequirement",
		"userFlow", "secondaryFeatures",
		"feFramework", "stylingEngine", "stateManagement",
		"beRuntime", "apiStyle", "authStrategy",
		"dbEngine", "multiTenancy", "dataRetention",
		"cicd", "compliance",
	}
	for _, id := range ids {
		if _, ok := cat.Lookup(id); !ok {
			t.Errorf("catalog is missing %q", id)
		}
	}
}

func TestCheckValue(t *testing.T) {
	q := Question{ID: "platforms", Type: TypeMultiselect}
	if err := q.CheckValue(List("Web")); err != nil {
		t.Errorf("CheckValue(list) error: %v", err)
	}
	if err := q.CheckValue(Value{}); err != nil {
		t.Errorf("CheckValue(unset) error: %v", err)
	}
	if err := q.CheckValue(Text("Web")); err == nil {
		t.Error("CheckValue(text) on multiselect should fail")
	}
	b := Question{ID: "rt", Type: TypeBoolean}
	if err := b.CheckValue(Bool(false)); err != nil {
		t.Errorf("CheckValue(bool) error: %v", err)
	}
}

func TestValueIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"unset", Value{}, true},
		{"empty text", Text(""), true},
		{"whitespace text", Text("   "), true},
		{"text", Text("MVP"), false},
		{"empty list", List(), true},
		{"list", List("Web"), false},
		{"false", Bool(false), false},
		{"true", Bool(true), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValueEqualAndContains(t *testing.T) {
	if !Text("a").Equal(Text("a")) {
		t.Error("equal texts should be equal")
	}
	if Text("true").Equal(Bool(true)) {
		t.Error("text and bool must not be equal")
	}
	if !List("a", "b").Equal(List("a", "b")) {
		t.Error("equal lists should be equal")
	}
	if List("a", "b").Equal(List("b", "a")) {
		t.Error("list order matters")
	}
	if !(Value{}).Equal(Value{}) {
		t.Error("unset values should be equal")
	}

	if !List("Web", "Android").Contains("Android") {
		t.Error("list should contain member")
	}
	if List("Web").Contains("Android") {
		t.Error("list should not contain non-member")
	}
	if !Text("Web and Android").Contains("Android") {
		t.Error("text should contain substring")
	}
	if Bool(true).Contains("true") {
		t.Error("bool contains nothing")
	}
	if (Value{}).Contains("") {
		t.Error("unset contains nothing")
	}
}

func TestAnswersJSON(t *testing.T) {
	in := Answers{
		"projectName":   Text("Axistrack"),
		"platforms":     List("Web (Desktop)", "Native iOS"),
		"compliance":    List(),
		"realtimeNeeds": Bool(false),
		"timeline":      {},
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out Answers
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !in.Equal(out) {
		t.Errorf("round trip mismatch: got %v, want %v", out, in)
	}

	var bad Answers
	if err := json.Unmarshal([]byte(`{"a": 12}`), &bad); err == nil {
		t.Error("numeric answers should be rejected")
	}
	if err := json.Unmarshal([]byte(`{"a": [1]}`), &bad); err == nil {
		t.Error("non-string list items should be rejected")
	}
}

func TestAnswersWithIsCopy(t *testing.T) {
	a := Answers{"x": Text("1")}
	b := a.With("y", Text("2"))
	if _, ok := a["y"]; ok {
		t.Error("With mutated the receiver")
	}
	if b.Get("y").Str() != "2" {
		t.Errorf("With did not set value: %v", b)
	}
	c := b.Without("x")
	if _, ok := b["x"]; !ok {
		t.Error("Without mutated the receiver")
	}
	if c.Get("x").IsSet() {
		t.Error("Without did not remove value")
	}
}

func TestApplyTechOverride(t *testing.T) {
	stack := DefaultTechStack()
	if stack.Get("auth").Str() != "Clerk" {
		t.Fatalf("default auth = %q, want Clerk", stack.Get("auth").Str())
	}

	got, err := ApplyTechOverride(stack, "auth=Supabase Auth")
	if err != nil {
		t.Fatalf("ApplyTechOverride: %v", err)
	}
	if got.Get("auth").Str() != "Supabase Auth" {
		t.Errorf("auth = %q, want Supabase Auth", got.Get("auth").Str())
	}

	got, err = ApplyTechOverride(stack, "mobile=Flutter, PWA")
	if err != nil {
		t.Fatalf("ApplyTechOverride multiselect: %v", err)
	}
	if !got.Get("mobile").Equal(List("Flutter", "PWA")) {
		t.Errorf("mobile = %v, want [Flutter PWA]", got.Get("mobile"))
	}

	for _, bad := range []string{"auth", "nope=x", "auth=Okta", "mobile=Flutter,Palm"} {
		if _, err := ApplyTechOverride(stack, bad); err == nil {
			t.Errorf("ApplyTechOverride(%q) should fail", bad)
		}
	}
}
