package display

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jywlabs/specgen/internal/catalog"
	"github.com/jywlabs/specgen/internal/completeness"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string { return ansiRegex.ReplaceAllString(s, "") }

func mustLookup(t *testing.T, id string) catalog.Question {
	t.Helper()
	q, ok := catalog.Default().Lookup(id)
	if !ok {
		t.Fatalf("question %q not in catalog", id)
	}
	return q
}

func TestRenderQuestion_Select(t *testing.T) {
	q := mustLookup(t, "themeMode")
	got := plain(RenderQuestion(q, 3, 12, catalog.Text("Dark only"), 80))

	for _, want := range []string{"3/12", "Theme Mode", " 1) Light only", "✓  2) Dark only", "Current: Dark only"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderQuestion() missing %q\nGot:\n%s", want, got)
		}
	}
	if strings.Contains(got, "✓  1)") {
		t.Errorf("unselected option marked:\n%s", got)
	}
}

func TestRenderQuestion_MultiselectShowsDefault(t *testing.T) {
	q := mustLookup(t, "platforms")
	got := plain(RenderQuestion(q, 1, 1, catalog.Value{}, 80))

	for _, want := range []string{"Target Platforms", "separated by commas", "Default: Web (Desktop)"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderQuestion() missing %q\nGot:\n%s", want, got)
		}
	}
}

func TestRenderQuestion_TextPlaceholder(t *testing.T) {
	q := mustLookup(t, "projectName")
	got := plain(RenderQuestion(q, 1, 40, catalog.Value{}, 80))
	if !strings.Contains(got, "e.g., Axistrack") {
		t.Errorf("RenderQuestion() missing placeholder\nGot:\n%s", got)
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		percent    int
		wantFilled int
	}{
		{0, 0},
		{50, 10},
		{100, 20},
		{150, 20},
		{-5, 0},
	}

	for _, tt := range tests {
		got := plain(ProgressBar(tt.percent))
		if n := strings.Count(got, barFilled); n != tt.wantFilled {
			t.Errorf("ProgressBar(%d) filled = %d, want %d", tt.percent, n, tt.wantFilled)
		}
		if n := strings.Count(got, barFilled) + strings.Count(got, barEmpty); n != barWidth {
			t.Errorf("ProgressBar(%d) width = %d, want %d", tt.percent, n, barWidth)
		}
	}
}

func TestShowSidebar(t *testing.T) {
	var buf bytes.Buffer
	d := NewDisplay(&buf)
	d.ShowSidebar([]completeness.SectionProgress{
		{Section: catalog.SectionIdentity, Total: 3, Answered: 3},
		{Section: catalog.SectionScope, Total: 2, Answered: 1},
		{Section: catalog.SectionDesign, Total: 4, Answered: 0},
	}, catalog.SectionScope)

	lines := strings.Split(strings.TrimSpace(plain(buf.String())), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	wants := []string{"● Identity & Context 3/3", "▶ Scope & Strategy 1/2", "○ UI/UX & Design System 0/4"}
	for i, want := range wants {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, want containing %q", i, lines[i], want)
		}
	}
}

func TestNoticesAndBoxes(t *testing.T) {
	var buf bytes.Buffer
	d := NewDisplay(&buf)
	d.ShowNotice("autosave failed: disk full")
	d.ShowValidation(errors.New("Project Name is required"))
	d.ShowSuccess("Saved", "id: spec-1")
	d.ShowError("boom")

	got := plain(buf.String())
	for _, want := range []string{"[--] autosave failed: disk full", "[!!] Project Name is required", "[ok] Saved", "id: spec-1", "[!!] Error", "boom"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\nGot:\n%s", want, got)
		}
	}
}

func TestSpinnerStartStop(t *testing.T) {
	var buf safeBuffer
	d := NewDisplay(&buf)
	d.StartSpinner("generating spec")
	d.StartSpinner("ignored while running")
	time.Sleep(300 * time.Millisecond)
	d.StopSpinner()
	d.StopSpinner()

	got := plain(buf.String())
	if !strings.Contains(got, "generating spec") {
		t.Errorf("spinner output missing message:\n%q", got)
	}
	if strings.Contains(got, "ignored while running") {
		t.Errorf("second StartSpinner should be ignored:\n%q", got)
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{1040 * time.Millisecond, " 1.04s"},
		{10 * time.Second, " 10.0s"},
		{100 * time.Second, "  100s"},
	}
	for _, tt := range tests {
		if got := formatElapsed(tt.d); got != tt.want {
			t.Errorf("formatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

// safeBuffer is a bytes.Buffer guarded for the spinner goroutine.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
