// Package questionnaire drives one editing session over the question catalog:
// the visible sequence, the cursor, validation, and incremental saves.
package questionnaire

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/jywlabs/specgen/internal/autosave"
	"github.com/jywlabs/specgen/internal/catalog"
	"github.com/jywlabs/specgen/internal/completeness"
	"github.com/jywlabs/specgen/internal/visibility"
)

// Options configures a Session.
type Options struct {
	// SaveDelay is the debounce window for edits. Zero uses autosave.DefaultDelay.
	SaveDelay time.Duration
	// OnSaveError receives save failures. Failures never block navigation.
	OnSaveError func(error)
}

// Step is the outcome of a successful Advance.
type Step struct {
	Done    bool  // no visible question remains after the one just answered
	SaveErr error // the immediate save failed; the answers are still kept
}

// Session owns the in-memory answer set for one draft. It is not safe for
// concurrent use; the autosave timer only ever sees immutable snapshots.
type Session struct {
	cat      catalog.Catalog
	answers  catalog.Answers
	cursor   int
	saver    *autosave.Saver
	notify   func(error)
	patterns map[string]*regexp.Regexp
}

// NewSession opens a session over cat starting from initial answers.
// save persists a full answer set and is called both debounced and on Advance.
func NewSession(cat catalog.Catalog, initial catalog.Answers, save autosave.SaveFunc, opts Options) (*Session, error) {
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid question catalog: %w", err)
	}

	patterns := make(map[string]*regexp.Regexp)
	for _, q := range cat {
		if q.Validation != "" {
			patterns[q.ID] = regexp.MustCompile(q.Validation)
		}
	}

	notify := opts.OnSaveError
	if notify == nil {
		notify = func(error) {}
	}

	answers := initial.Clone()
	for id, v := range answers {
		if !v.IsSet() {
			delete(answers, id)
		}
	}

	return &Session{
		cat:      cat,
		answers:  answers,
		saver:    autosave.New(opts.SaveDelay, save, notify),
		notify:   notify,
		patterns: patterns,
	}, nil
}

// Visible returns the questions that currently apply, in catalog order.
func (s *Session) Visible() catalog.Catalog {
	return visibility.Filter(s.cat, s.answers)
}

// Current returns the question under the cursor. A cursor left past the end
// by a shrinking visible set is clamped to the last question. ok is false
// only when nothing is visible.
func (s *Session) Current() (q catalog.Question, ok bool) {
	visible := s.Visible()
	if len(visible) == 0 {
		return catalog.Question{}, false
	}
	s.cursor = clamp(s.cursor, len(visible))
	return visible[s.cursor], true
}

// Position returns the 1-based index of the current question and the number
// of visible questions.
func (s *Session) Position() (current, total int) {
	visible := s.Visible()
	if len(visible) == 0 {
		return 0, 0
	}
	return clamp(s.cursor, len(visible)) + 1, len(visible)
}

// Answers returns a copy of the current answer set.
func (s *Session) Answers() catalog.Answers {
	return s.answers.Clone()
}

// Set records an answer and schedules a debounced save. Setting the unset
// Value clears the answer. The value kind must match the question type.
func (s *Session) Set(id string, v catalog.Value) error {
	q, ok := s.cat.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, id)
	}
	if err := q.CheckValue(v); err != nil {
		return err
	}

	if v.IsSet() {
		s.answers = s.answers.With(id, v)
	} else {
		s.answers = s.answers.Without(id)
	}
	s.saver.Schedule(s.answers)
	return nil
}

// Check validates q against the current answers. A question with an empty
// answer is checked against its default.
func (s *Session) Check(q catalog.Question) error {
	v := s.effective(q)

	if v.IsEmpty() {
		if q.Required() {
			return &ValidationError{QuestionID: q.ID, Label: q.Label, Err: ErrAnswerRequired}
		}
		return nil
	}

	if re, ok := s.patterns[q.ID]; ok && v.Kind() == catalog.KindText && !re.MatchString(v.Str()) {
		return &ValidationError{QuestionID: q.ID, Label: q.Label, Err: ErrInvalidFormat}
	}
	return nil
}

// CanAdvance reports whether Advance would accept the current question.
func (s *Session) CanAdvance() bool {
	q, ok := s.Current()
	if !ok {
		return false
	}
	return s.Check(q) == nil
}

// Advance accepts the current question, fills in its default if the answer
// is empty, saves immediately, and moves to the next visible question.
// A validation failure leaves the session unchanged. A save failure is
// reported in Step.SaveErr and through OnSaveError, and does not block.
func (s *Session) Advance(ctx context.Context) (Step, error) {
	q, ok := s.Current()
	if !ok {
		return Step{Done: true}, nil
	}
	if err := s.Check(q); err != nil {
		return Step{}, err
	}

	if s.answers.Get(q.ID).IsEmpty() && q.HasDefault() {
		s.answers = s.answers.With(q.ID, q.Default)
	}

	var step Step
	if err := s.saver.Flush(ctx, s.answers); err != nil {
		step.SaveErr = err
		s.notify(err)
	}

	// Answering q may have shown or hidden later questions.
	visible := s.Visible()
	next := indexOf(visible, q.ID) + 1
	if next >= len(visible) {
		step.Done = true
		s.cursor = len(visible) - 1
		return step, nil
	}
	s.cursor = next
	return step, nil
}

// Retreat moves to the previous visible question. It reports false at the
// first question. Answers are not touched.
func (s *Session) Retreat() bool {
	visible := s.Visible()
	if len(visible) == 0 {
		return false
	}
	s.cursor = clamp(s.cursor, len(visible))
	if s.cursor == 0 {
		return false
	}
	s.cursor--
	return true
}

// SeekFirstIncomplete moves the cursor to the first visible question that
// is not satisfied and reports whether one exists. With every question
// satisfied the cursor goes to the first question.
func (s *Session) SeekFirstIncomplete() bool {
	for i, q := range s.Visible() {
		if !completeness.Satisfied(q, s.answers) {
			s.cursor = i
			return true
		}
	}
	s.cursor = 0
	return false
}

// Completeness returns the completion percentage of the current answers.
func (s *Session) Completeness() int {
	return completeness.Calculate(s.cat, s.answers)
}

// Sections returns per-section progress for the sidebar.
func (s *Session) Sections() []completeness.SectionProgress {
	return completeness.BySection(s.cat, s.answers)
}

// Close writes any pending debounced save and stops the session.
func (s *Session) Close(ctx context.Context) error {
	return s.saver.Close(ctx)
}

// Discard drops any pending save and stops the session without writing.
func (s *Session) Discard() {
	s.saver.Cancel()
	_ = s.saver.Close(context.Background())
}

func (s *Session) effective(q catalog.Question) catalog.Value {
	v := s.answers.Get(q.ID)
	if v.IsEmpty() && q.HasDefault() {
		return q.Default
	}
	return v
}

func indexOf(cat catalog.Catalog, id string) int {
	for i, q := range cat {
		if q.ID == id {
			return i
		}
	}
	return -1
}

func clamp(i, n int) int {
	if i >= n {
		return n - 1
	}
	if i < 0 {
		return 0
	}
	return i
}
