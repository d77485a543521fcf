package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jywlabs/specgen/internal/catalog"
)

var questionsJSONFlag bool

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Show the question catalog",
	Long: `Show every question in the catalog, grouped by section, with its type,
options, default and the condition under which it appears.

Use --json for machine-readable output.`,
	Args: cobra.NoArgs,
	RunE: runQuestions,
}

func init() {
	questionsCmd.Flags().BoolVar(&questionsJSONFlag, "json", false, "Output as JSON")
	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(cmd *cobra.Command, args []string) error {
	return runQuestionsFn(catalog.Default(), questionsJSONFlag, cmd.OutOrStdout())
}

func runQuestionsFn(cat catalog.Catalog, asJSON bool, out io.Writer) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(cat)
	}

	for _, section := range catalog.Sections {
		var lines []string
		for _, q := range cat {
			if q.Section != section {
				continue
			}
			lines = append(lines, describeQuestion(q)...)
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(out, "%s\n", section)
		for _, line := range lines {
			fmt.Fprintf(out, "  %s\n", line)
		}
		fmt.Fprintln(out)
	}
	return nil
}

func describeQuestion(q catalog.Question) []string {
	head := fmt.Sprintf("%s (%s) %s", q.ID, q.Type, q.Label)
	if q.Optional {
		head += " [optional]"
	}
	lines := []string{head}
	if len(q.Options) > 0 {
		lines = append(lines, "    options: "+strings.Join(q.Options, " | "))
	}
	if q.HasDefault() {
		lines = append(lines, "    default: "+q.Default.Display())
	}
	if c := q.Condition; c != nil {
		lines = append(lines, fmt.Sprintf("    shown when: %s %s %s", c.Field, c.Operator, c.Value.Display()))
	}
	return lines
}
