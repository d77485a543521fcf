package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/jywlabs/specgen/internal/output"
	"github.com/jywlabs/specgen/internal/store"
)

var (
	exportOutFlag  string
	exportCopyFlag bool
)

// clipboardWriteAll is swapped in tests.
var clipboardWriteAll = clipboard.WriteAll

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Write a spec to a markdown file",
	Long: `Write a spec to <id>-spec.md.

The file holds the same markdown 'specgen show --raw' prints. Use --copy to
also put it on the system clipboard.

Examples:
  specgen export spec-1760000000000
  specgen export spec-1760000000000 --out docs/ --copy`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutFlag, "out", "o", ".", "Directory to write the file to")
	exportCmd.Flags().BoolVarP(&exportCopyFlag, "copy", "c", false, "Also copy the markdown to the clipboard")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, dirFlag, verboseFlag)
	if err != nil {
		return err
	}
	defer a.Close()

	return runExportFn(ctx, a.docs, args[0], exportOutFlag, exportCopyFlag, time.Now(), cmd.OutOrStdout())
}

// exportFileName is the download name for a spec.
func exportFileName(id string) string {
	return id + "-spec.md"
}

func runExportFn(ctx context.Context, docs *store.Gateway, id, outDir string, copyText bool, now time.Time, out io.Writer) error {
	markdown, err := documentMarkdown(ctx, docs, id, now)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(outDir, exportFileName(id))
	if err := os.WriteFile(path, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	p := output.New(out)
	p.Exported(path)

	if copyText {
		if err := clipboardWriteAll(markdown); err != nil {
			// The file is written; a missing clipboard is not fatal.
			p.Failure(fmt.Sprintf("could not copy to clipboard: %v", err))
			return nil
		}
		p.Copied()
	}
	return nil
}
