package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jywlabs/specgen/internal/template"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize .specgen/ directory",
	Long: `Initialize the .specgen/ directory in the project.

Creates:
  .specgen/
    config.yaml    # Storage, autosave, generation and logging settings
    .gitignore     # Keeps the local database and logs out of git

Specs are stored in .specgen/specs.db unless config.yaml selects a
libsql or postgres store. Put secrets such as GEMINI_API_KEY in .env.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	return runInitFn(dirFlag, cmd.OutOrStdout())
}

func runInitFn(dir string, out io.Writer) error {
	configDir := filepath.Join(dir, template.SpecgenDir)

	// Check if already initialized
	if _, err := os.Stat(configDir); err == nil {
		return fmt.Errorf("%s/ already exists", template.SpecgenDir)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	// Create default files from templates
	for filename, content := range template.DefaultFiles() {
		filePath := filepath.Join(configDir, filename)
		if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", filename, err)
		}
	}

	fmt.Fprintln(out, "Initialized .specgen/")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Created:")
	fmt.Fprintln(out, "  .specgen/config.yaml   - Storage, autosave and generation settings")
	fmt.Fprintln(out, "  .specgen/.gitignore    - Ignores the local database and logs")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Run: specgen new \"My App\"")
	fmt.Fprintln(out, "  2. Or:  specgen generate \"an idea\" (needs GEMINI_API_KEY)")

	return nil
}
