package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jywlabs/specgen/internal/catalog"
	"github.com/jywlabs/specgen/internal/store"
)

type fakeModel struct {
	text    string
	err     error
	calls   int
	system  string
	prompts []string
}

func (f *fakeModel) Name() string { return "fake" }

func (f *fakeModel) Generate(_ context.Context, system, prompt string) (string, error) {
	f.calls++
	f.system = system
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

type saved struct {
	id, name string
	content  store.Content
}

type fakeSaver struct {
	saves []saved
	err   error
}

func (f *fakeSaver) Save(_ context.Context, id, name string, content store.Content) error {
	if f.err != nil {
		return f.err
	}
	f.saves = append(f.saves, saved{id: id, name: name, content: content})
	return nil
}

func newTestService(m Model, s Saver) *Service {
	svc := NewService(m, s, nil)
	svc.newID = func() string { return "gen-1" }
	return svc
}

func TestGenerate_SavesNewDocument(t *testing.T) {
	model := &fakeModel{text: "# Streaks\n\nA habit tracker."}
	saver := &fakeSaver{}
	svc := newTestService(model, saver)

	stack := catalog.DefaultTechStack().With("payments", catalog.Text("Stripe"))
	res, err := svc.Generate(context.Background(), Request{Prompt: "habit tracker", TechStack: stack, AppName: "Streaks"})
	require.NoError(t, err)

	assert.Equal(t, "gen-1", res.ID)
	assert.Equal(t, "Streaks", res.Name)
	assert.Equal(t, "# Streaks\n\nA habit tracker.", res.Markdown)

	require.Len(t, saver.saves, 1)
	got := saver.saves[0]
	assert.Equal(t, "gen-1", got.id)
	assert.Equal(t, "Streaks", got.name)
	assert.Equal(t, "habit tracker", got.content.Prompt)
	assert.Equal(t, "Streaks", got.content.AppName)
	assert.True(t, got.content.TechStack.Equal(stack))
	assert.True(t, got.content.Generated())

	assert.Equal(t, 1, model.calls)
	assert.Contains(t, model.prompts[0], "- Payment Gateway: Stripe")
	assert.NotEmpty(t, model.system)
}

func TestGenerate_DefaultNameAndStack(t *testing.T) {
	saver := &fakeSaver{}
	svc := newTestService(&fakeModel{text: "# Doc"}, saver)

	res, err := svc.Generate(context.Background(), Request{Prompt: "invoice OCR", AppName: "  "})
	require.NoError(t, err)
	assert.Equal(t, DefaultName, res.Name)

	require.Len(t, saver.saves, 1)
	assert.Equal(t, DefaultName, saver.saves[0].name)
	assert.Empty(t, saver.saves[0].content.AppName)
	assert.True(t, saver.saves[0].content.TechStack.Equal(catalog.DefaultTechStack()))
}

func TestGenerate_EmptyPrompt(t *testing.T) {
	model := &fakeModel{text: "# Doc"}
	saver := &fakeSaver{}
	svc := newTestService(model, saver)

	for _, p := range []string{"", "   ", "\n\t"} {
		_, err := svc.Generate(context.Background(), Request{Prompt: p})
		assert.ErrorIs(t, err, ErrEmptyPrompt)
	}
	assert.Zero(t, model.calls)
	assert.Empty(t, saver.saves)
}

func TestGenerate_TokenLimitCreatesNoRecord(t *testing.T) {
	model := &fakeModel{err: ErrTokenLimit}
	saver := &fakeSaver{}
	svc := newTestService(model, saver)

	res, err := svc.Generate(context.Background(), Request{Prompt: "an enormous ERP suite"})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrTokenLimit)
	assert.Equal(t, 1, model.calls, "generation must not be retried")
	assert.Empty(t, saver.saves)
}

func TestGenerate_ModelFailure(t *testing.T) {
	model := &fakeModel{err: errors.New("503 unavailable")}
	saver := &fakeSaver{}
	svc := newTestService(model, saver)

	_, err := svc.Generate(context.Background(), Request{Prompt: "x"})
	require.Error(t, err)
	assert.Equal(t, 1, model.calls)
	assert.Empty(t, saver.saves)
}

func TestGenerate_SaveFailure(t *testing.T) {
	svc := newTestService(&fakeModel{text: "# Doc"}, &fakeSaver{err: errors.New("disk full")})

	_, err := svc.Generate(context.Background(), Request{Prompt: "x"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to save generated spec"))
}

func TestGenerate_StripsOuterFence(t *testing.T) {
	saver := &fakeSaver{}
	svc := newTestService(&fakeModel{text: "```markdown\n# Doc\n\n```bash\nnpm i\n```\n```"}, saver)

	res, err := svc.Generate(context.Background(), Request{Prompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, "# Doc\n\n```bash\nnpm i\n```", res.Markdown)
	assert.Equal(t, res.Markdown, saver.saves[0].content.Markdown)
}

func TestGenerate_EmptyDocument(t *testing.T) {
	saver := &fakeSaver{}
	svc := newTestService(&fakeModel{text: "```\n```"}, saver)

	_, err := svc.Generate(context.Background(), Request{Prompt: "x"})
	require.Error(t, err)
	assert.Empty(t, saver.saves)
}

func TestStripOuterFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "# Doc\nbody", "# Doc\nbody"},
		{"markdown fence", "```markdown\n# Doc\n```", "# Doc"},
		{"md fence", "```md\n# Doc\n```", "# Doc"},
		{"bare fence", "```\n# Doc\n```", "# Doc"},
		{"other language kept", "```bash\nnpm i\n```", "```bash\nnpm i\n```"},
		{"inner fence kept", "# Doc\n```bash\nnpm i\n```", "# Doc\n```bash\nnpm i\n```"},
		{"surrounding whitespace", "\n\n```markdown\n# Doc\n```\n\n", "# Doc"},
		{"single line", "```", "```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripOuterFence(tt.input); got != tt.want {
				t.Errorf("stripOuterFence() = %q, want %q", got, tt.want)
			}
		})
	}
}

type stubModel struct{ name string }

func (s stubModel) Name() string { return s.name }
func (s stubModel) Generate(context.Context, string, string) (string, error) {
	return "", nil
}

func TestNewModel(t *testing.T) {
	RegisterModel("Stub", func(ModelConfig) (Model, error) { return stubModel{name: "stub"}, nil })
	t.Cleanup(func() { delete(modelConstructors, "stub") })

	m, err := NewModel("STUB", ModelConfig{})
	require.NoError(t, err)
	assert.Equal(t, "stub", m.Name())
	assert.Contains(t, Available(), "stub")

	_, err = NewModel("nope", ModelConfig{})
	assert.ErrorContains(t, err, "unknown provider: nope")
}
