package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jywlabs/specgen/internal/catalog"
	"github.com/jywlabs/specgen/internal/display"
	"github.com/jywlabs/specgen/internal/interview"
	"github.com/jywlabs/specgen/internal/output"
	"github.com/jywlabs/specgen/internal/questionnaire"
	"github.com/jywlabs/specgen/internal/store"
)

// untitledName names drafts with neither a given name nor a project name.
const untitledName = "Untitled Spec"

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Start a new spec draft",
	Long: `Start a new spec draft and answer the questionnaire.

Questions appear one at a time, grouped into sections. Follow-up questions
only appear when an earlier answer makes them relevant. Answers are saved as
you go, so you can stop at any point and resume with 'specgen edit <id>'.

At each prompt:
  <enter>     keep the current answer (or the default)
  -           clear the current answer
  :back       go to the previous question
  :quit       save and stop
  :delete     discard the draft and delete it

Example:
  specgen new "Axistrack"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	ctx := cmd.Context()
	a, err := openApp(ctx, dirFlag, verboseFlag)
	if err != nil {
		return err
	}
	defer a.Close()

	id := newDraftID(time.Now())
	a.log.Info("starting draft", zap.String("id", id))
	return runInterviewFn(ctx, a, draft{id: id, name: name}, os.Stdin, cmd.OutOrStdout())
}

// newDraftID returns an id of the form spec-<unix-ms>.
func newDraftID(now time.Time) string {
	return fmt.Sprintf("spec-%d", now.UnixMilli())
}

// draft identifies the document an interview writes to.
type draft struct {
	id      string
	name    string // fixed display name; empty follows the project name
	answers catalog.Answers
	resume  bool
}

// displayName picks the document name for the current answers.
func (d draft) displayName(answers catalog.Answers) string {
	if name := strings.TrimSpace(d.name); name != "" {
		return name
	}
	if name := strings.TrimSpace(answers.Get("projectName").Str()); name != "" {
		return name
	}
	return untitledName
}

// runInterviewFn runs the questionnaire for one draft, saving to the store
// as answers change.
func runInterviewFn(ctx context.Context, a *app, d draft, in io.Reader, out io.Writer) error {
	save := func(ctx context.Context, answers catalog.Answers) error {
		return a.docs.Save(ctx, d.id, d.displayName(answers), store.Content{Answers: answers})
	}

	session, err := questionnaire.NewSession(catalog.Default(), d.answers, save, questionnaire.Options{
		SaveDelay: a.cfg.Autosave.Delay,
		OnSaveError: func(err error) {
			a.log.Warn("autosave failed", zap.String("id", d.id), zap.Error(err))
		},
	})
	if err != nil {
		return err
	}

	disp := display.NewDisplay(out)
	title := "New spec"
	if d.resume {
		title = "Editing " + d.displayName(d.answers)
		session.SeekFirstIncomplete()
	}
	disp.ShowHeader(title, fmt.Sprintf("id: %s   (:back to go back, :quit to stop, :delete to discard)", d.id))

	outcome, runErr := interview.New(in, disp, session).Run(ctx)

	if runErr == nil && outcome == interview.Deleted {
		// Drop pending saves first so the row is not written back after removal.
		session.Discard()
		if a.docs.Find(ctx, d.id) != nil {
			if err := a.docs.Remove(ctx, d.id); err != nil {
				return fmt.Errorf("failed to delete %s: %w", d.id, err)
			}
		}
		output.New(out).Deleted(d.id)
		return nil
	}

	// Write whatever is still pending even if ctx was canceled.
	closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := session.Close(closeCtx); err != nil {
		disp.ShowNotice("could not save draft: " + err.Error())
	}
	if runErr != nil {
		return runErr
	}

	percent := session.Completeness()
	switch outcome {
	case interview.Finished:
		disp.ShowSuccess("Questionnaire complete",
			fmt.Sprintf("Completeness: %d%%", percent),
			fmt.Sprintf("Preview: specgen show %s", d.id),
			fmt.Sprintf("Export:  specgen export %s", d.id))
	default:
		if len(session.Answers()) == 0 {
			fmt.Fprintln(out, "Nothing saved.")
			return nil
		}
		fmt.Fprintf(out, "Draft saved (%d%% complete). Resume with: specgen edit %s\n", percent, d.id)
	}
	return nil
}
