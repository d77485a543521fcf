package checklist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sample = `## 8.4 Checklist

- [ ] Protect routes using Clerk Middleware matcher.
- [x] Use Prisma migrations
  for every schema change.
- [X] Store secrets in .env
Not an item
- [ ] Verify Stripe webhooks.
`

func TestParse(t *testing.T) {
	items, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := []Item{
		{Text: "Protect routes using Clerk Middleware matcher.", Line: 3},
		{Text: "Use Prisma migrations\nfor every schema change.", Line: 4, Done: true},
		{Text: "Store secrets in .env", Line: 6, Done: true},
		{Text: "Verify Stripe webhooks.", Line: 8},
	}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d: %+v", len(items), len(want), items)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("item %d = %+v, want %+v", i, items[i], want[i])
		}
	}

	finished, total := Progress(items)
	if finished != 2 || total != 4 {
		t.Errorf("Progress() = %d/%d, want 2/4", finished, total)
	}
}

func TestMarkDoneContent(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		lineNumber int
		want       string
		errContain string
	}{
		{
			name:       "marks pending item",
			input:      "# T\n- [ ] one\n- [ ] two\n",
			lineNumber: 3,
			want:       "# T\n- [ ] one\n- [x] two\n",
		},
		{
			name:       "preserves utf-8",
			input:      "- [ ] café ✓\n",
			lineNumber: 1,
			want:       "- [x] café ✓\n",
		},
		{
			name:       "not a pending item",
			input:      "- [x] done\n",
			lineNumber: 1,
			errContain: "not a pending item",
		},
		{
			name:       "line out of range",
			input:      "- [ ] one\n",
			lineNumber: 5,
			errContain: "exceeds file length",
		},
		{
			name:       "zero line",
			input:      "- [ ] one\n",
			lineNumber: 0,
			errContain: "invalid line number",
		},
		{
			name:       "empty",
			input:      "",
			lineNumber: 1,
			errContain: "file is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarkDoneContent(strings.NewReader(tt.input), tt.lineNumber)
			if tt.errContain != "" {
				if err == nil || !strings.Contains(err.Error(), tt.errContain) {
					t.Fatalf("error = %v, want containing %q", err, tt.errContain)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestMarkDone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.md")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}

	item, err := MarkDone(path, 4)
	if err != nil {
		t.Fatalf("MarkDone() error: %v", err)
	}
	if !item.Done || item.Text != "Verify Stripe webhooks." {
		t.Errorf("MarkDone() = %+v", item)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "- [x] Verify Stripe webhooks.") {
		t.Errorf("file not updated:\n%s", data)
	}

	// Already done items are left alone.
	if _, err := MarkDone(path, 2); err != nil {
		t.Errorf("MarkDone() on finished item: %v", err)
	}
	if _, err := MarkDone(path, 9); err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Errorf("MarkDone() out of range error = %v", err)
	}
}
