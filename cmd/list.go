package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/jywlabs/specgen/internal/catalog"
	"github.com/jywlabs/specgen/internal/completeness"
	"github.com/jywlabs/specgen/internal/output"
	"github.com/jywlabs/specgen/internal/store"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved specs with completeness",
	Long: `List every saved spec, newest first, with its kind (draft or ai),
completeness, creation date and name.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, dirFlag, verboseFlag)
	if err != nil {
		return err
	}
	defer a.Close()

	return runListFn(ctx, a.docs, cmd.OutOrStdout())
}

func runListFn(ctx context.Context, docs *store.Gateway, out io.Writer) error {
	p := output.New(out)
	all := docs.All(ctx)

	p.DocumentCount(len(all))
	if len(all) == 0 {
		return nil
	}
	for _, doc := range all {
		p.DocumentLine(doc.ID, documentKind(doc), documentCompleteness(doc), doc.CreatedAt, doc.Name)
	}
	p.Summary(len(all))
	return nil
}

func documentKind(doc store.Document) string {
	if doc.Content.Generated() {
		return "ai"
	}
	return "draft"
}

// documentCompleteness scores drafts against the catalog; generated
// documents are complete by construction.
func documentCompleteness(doc store.Document) int {
	if doc.Content.Generated() {
		return 100
	}
	return completeness.Calculate(catalog.Default(), doc.Content.Answers)
}
