package interview

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/jywlabs/specgen/internal/catalog"
	"github.com/jywlabs/specgen/internal/display"
	"github.com/jywlabs/specgen/internal/questionnaire"
)

// Commands recognized at any prompt.
const (
	CmdBack   = ":back"
	CmdQuit   = ":quit"
	CmdDelete = ":delete"
)

// Outcome is how an interview ended.
type Outcome int

const (
	Finished Outcome = iota // the last visible question was accepted
	Quit                    // the user stopped early or input ended
	Deleted                 // the user asked to throw the draft away
)

// Runner drives a questionnaire session from line input.
type Runner struct {
	in      *bufio.Reader
	display *display.Display
	session *questionnaire.Session
}

// New creates a runner reading answers from in.
func New(in io.Reader, d *display.Display, s *questionnaire.Session) *Runner {
	return &Runner{
		in:      bufio.NewReader(in),
		display: d,
		session: s,
	}
}

// Run asks visible questions in order until the last one is accepted or
// the user quits. An empty answer keeps the stored value (or the default).
func (r *Runner) Run(ctx context.Context) (Outcome, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Quit, err
		}

		q, ok := r.session.Current()
		if !ok {
			return Finished, nil
		}

		pos, total := r.session.Position()
		r.display.ShowSidebar(r.session.Sections(), q.Section)
		r.display.ShowProgress(r.session.Completeness())
		r.display.ShowQuestion(q, pos, total, r.session.Answers().Get(q.ID))

		raw, eof := r.read(q.Type == catalog.TypeTextarea)
		switch strings.TrimSpace(raw) {
		case CmdQuit:
			return Quit, nil
		case CmdDelete:
			return Deleted, nil
		case CmdBack:
			if !r.session.Retreat() {
				r.display.ShowNotice("already at the first question")
			}
			continue
		}
		if eof && strings.TrimSpace(raw) == "" {
			return Quit, nil
		}

		if strings.TrimSpace(raw) != "" {
			v, err := ParseAnswer(q, raw)
			if err != nil {
				r.display.ShowValidation(err)
				continue
			}
			if err := r.session.Set(q.ID, v); err != nil {
				r.display.ShowValidation(err)
				continue
			}
		}

		step, err := r.session.Advance(ctx)
		if err != nil {
			var verr *questionnaire.ValidationError
			if errors.As(err, &verr) {
				r.display.ShowValidation(verr)
				continue
			}
			return Quit, err
		}
		if step.SaveErr != nil {
			r.display.ShowNotice("could not save draft: " + step.SaveErr.Error())
		}
		if step.Done {
			return Finished, nil
		}
		if eof {
			return Quit, nil
		}
	}
}

// read returns one line, or for multiline input every line up to the first
// blank one. eof reports that input is exhausted.
func (r *Runner) read(multiline bool) (string, bool) {
	line, err := r.in.ReadString('\n')
	if err != nil || !multiline || isCommand(line) || strings.TrimSpace(line) == "" {
		return strings.TrimRight(line, "\r\n"), err != nil
	}

	lines := []string{strings.TrimRight(line, "\r\n")}
	for {
		next, err := r.in.ReadString('\n')
		next = strings.TrimRight(next, "\r\n")
		if strings.TrimSpace(next) == "" {
			return strings.Join(lines, "\n"), err != nil
		}
		lines = append(lines, next)
		if err != nil {
			return strings.Join(lines, "\n"), true
		}
	}
}

func isCommand(line string) bool {
	switch strings.TrimSpace(line) {
	case CmdBack, CmdQuit, CmdDelete:
		return true
	}
	return false
}
