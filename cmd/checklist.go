package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jywlabs/specgen/internal/checklist"
	"github.com/jywlabs/specgen/internal/display"
)

var checklistDoneFlag int

var checklistCmd = &cobra.Command{
	Use:   "checklist <file>",
	Short: "Track the checklist of an exported spec",
	Long: `List the checkbox items of an exported spec file and how many are done.

Use --done to check off an item by its number:
  specgen checklist spec-1773057600000-spec.md
  specgen checklist spec-1773057600000-spec.md --done 3`,
	Args: cobra.ExactArgs(1),
	RunE: runChecklist,
}

func init() {
	checklistCmd.Flags().IntVar(&checklistDoneFlag, "done", 0, "Mark item N as done")
	rootCmd.AddCommand(checklistCmd)
}

func runChecklist(cmd *cobra.Command, args []string) error {
	return runChecklistFn(args[0], checklistDoneFlag, cmd.OutOrStdout())
}

func runChecklistFn(path string, doneN int, out io.Writer) error {
	if doneN != 0 {
		item, err := checklist.MarkDone(path, doneN)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ %d. %s\n\n", doneN, firstLine(item.Text))
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	items, err := checklist.Parse(f)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(items) == 0 {
		fmt.Fprintln(out, "No checklist items found.")
		return nil
	}

	for i, it := range items {
		mark := " "
		if it.Done {
			mark = "x"
		}
		fmt.Fprintf(out, "%3d. [%s] %s\n", i+1, mark, firstLine(it.Text))
	}

	finished, total := checklist.Progress(items)
	percent := finished * 100 / total
	fmt.Fprintf(out, "\n%s %d/%d done\n", display.ProgressBar(percent), finished, total)
	return nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
