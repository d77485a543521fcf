package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jywlabs/specgen/internal/output"
	"github.com/jywlabs/specgen/internal/store"
)

var deleteYesFlag bool

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a spec",
	Long: `Delete a saved spec. You are asked to confirm unless --yes is given.

This cannot be undone.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYesFlag, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, dirFlag, verboseFlag)
	if err != nil {
		return err
	}
	defer a.Close()

	return runDeleteFn(ctx, a.docs, args[0], deleteYesFlag, os.Stdin, cmd.OutOrStdout())
}

func runDeleteFn(ctx context.Context, docs *store.Gateway, id string, yes bool, in io.Reader, out io.Writer) error {
	doc := docs.Find(ctx, id)
	if doc == nil {
		return fmt.Errorf("spec %q not found - run 'specgen list' to see saved specs", id)
	}

	if !yes && !confirm(in, out, fmt.Sprintf("Delete %q (%s)? [y/N]: ", doc.Name, doc.ID)) {
		fmt.Fprintln(out, "Aborted.")
		return nil
	}

	if err := docs.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to delete %s: %w", id, err)
	}
	output.New(out).Deleted(id)
	return nil
}

// confirm asks a yes/no question; anything but y or yes is no.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	line, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
