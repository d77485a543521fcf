package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/jywlabs/specgen/internal/display"
	"github.com/jywlabs/specgen/internal/specdoc"
	"github.com/jywlabs/specgen/internal/store"
)

var showRawFlag bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Preview a spec",
	Long: `Preview a spec as markdown.

AI-generated specs show the generated document. Drafts are assembled from
their answers. On a terminal the markdown is rendered; use --raw for the
plain text.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showRawFlag, "raw", false, "Print markdown without rendering")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, dirFlag, verboseFlag)
	if err != nil {
		return err
	}
	defer a.Close()

	render := !showRawFlag && display.IsTerminal()
	return runShowFn(ctx, a.docs, args[0], render, time.Now(), cmd.OutOrStdout())
}

func runShowFn(ctx context.Context, docs *store.Gateway, id string, render bool, now time.Time, out io.Writer) error {
	markdown, err := documentMarkdown(ctx, docs, id, now)
	if err != nil {
		return err
	}

	if render {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(min(display.GetTerminalWidth(), 100)),
		)
		if err == nil {
			if rendered, err := r.Render(markdown); err == nil {
				markdown = rendered
			}
		}
	}

	if !strings.HasSuffix(markdown, "\n") {
		markdown += "\n"
	}
	_, err = io.WriteString(out, markdown)
	return err
}

// documentMarkdown returns the preview text for a stored spec.
func documentMarkdown(ctx context.Context, docs *store.Gateway, id string, now time.Time) (string, error) {
	doc := docs.Find(ctx, id)
	if doc == nil {
		return "", fmt.Errorf("spec %q not found - run 'specgen list' to see saved specs", id)
	}
	return specdoc.Preview(doc.Content.Markdown, doc.Content.Answers, now), nil
}
