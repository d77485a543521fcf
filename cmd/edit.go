package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Resume a saved draft",
	Long: `Reopen a saved draft and continue the questionnaire from the first
question that still needs an answer. Use :back to revisit earlier answers.

Use 'specgen list' to see draft ids.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	id := args[0]
	ctx := cmd.Context()

	a, err := openApp(ctx, dirFlag, verboseFlag)
	if err != nil {
		return err
	}
	defer a.Close()

	doc := a.docs.Find(ctx, id)
	if doc == nil {
		return fmt.Errorf("spec %q not found - run 'specgen list' to see saved specs", id)
	}
	if doc.Content.Generated() {
		return fmt.Errorf("spec %q was generated by AI and has no questionnaire to edit", id)
	}

	// Names derived from the project name keep following it.
	name := doc.Name
	if name == untitledName || name == doc.Content.Answers.Get("projectName").Str() {
		name = ""
	}

	return runInterviewFn(ctx, a, draft{
		id:      doc.ID,
		name:    name,
		answers: doc.Content.Answers,
		resume:  true,
	}, os.Stdin, cmd.OutOrStdout())
}
