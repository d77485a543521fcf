package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	dirFlag     string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "specgen",
	Short: "specgen - Turn a product questionnaire into a technical spec",
	Long: `specgen walks you through a short product questionnaire and turns the
answers into a markdown technical specification: design system, architecture,
data model and an implementation checklist with the packages and environment
variables your stack needs.

Workflow:
  specgen init                    Create .specgen/ with a default config
  specgen new "My App"            Answer the questionnaire
  specgen show <id>               Preview the assembled spec
  specgen export <id>             Write <id>-spec.md
  specgen checklist <file>        Track the implementation checklist

Commands:
  init        Initialize .specgen/ directory
  new         Start a new spec draft
  edit        Resume a saved draft
  list        List saved specs with completeness
  show        Preview a spec
  export      Write a spec to a markdown file
  delete      Delete a spec
  generate    Generate a spec with AI from a freeform idea
  checklist   Track the checklist of an exported spec
  questions   Show the question catalog
  config      Show current configuration
  version     Show version info

Quick Start:
  1. specgen init
  2. specgen new
  3. specgen export <id> --copy`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", ".", "Project directory containing .specgen/")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Debug logging, mirrored to stderr")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
