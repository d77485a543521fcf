package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jywlabs/specgen/internal/config"
	"github.com/jywlabs/specgen/internal/template"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Long: `Show the effective specgen configuration.

Settings come from .specgen/config.yaml when present, otherwise defaults,
with secrets taken from the environment or .env. Secrets are masked.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	return runConfigFn(dirFlag, cmd.OutOrStdout())
}

func runConfigFn(dir string, out io.Writer) error {
	configPath := filepath.Join(dir, template.SpecgenDir, template.ConfigFile)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Fprintf(out, "No %s found (using defaults)\n", filepath.Join(template.SpecgenDir, template.ConfigFile))
		fmt.Fprintln(out, "Run 'specgen init' to create a configuration file.")
	} else {
		fmt.Fprintf(out, "Current configuration (%s):\n", configPath)
	}
	fmt.Fprintln(out)

	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "  storage:")
	fmt.Fprintf(out, "    driver: %s\n", cfg.Storage.Driver)
	switch cfg.Storage.Driver {
	case "sqlite":
		fmt.Fprintf(out, "    path: %s\n", cfg.Storage.Path)
	default:
		fmt.Fprintf(out, "    url: %s\n", mask(cfg.Storage.URL))
		fmt.Fprintf(out, "    authToken: %s\n", mask(cfg.Storage.AuthToken))
	}
	fmt.Fprintln(out, "  autosave:")
	fmt.Fprintf(out, "    delay: %s\n", cfg.Autosave.Delay)
	fmt.Fprintln(out, "  generation:")
	fmt.Fprintf(out, "    provider: %s\n", cfg.Generation.Provider)
	if cfg.Generation.Model != "" {
		fmt.Fprintf(out, "    model: %s\n", cfg.Generation.Model)
	}
	fmt.Fprintf(out, "    maxOutputTokens: %d\n", cfg.Generation.MaxOutputTokens)
	fmt.Fprintf(out, "    timeout: %s\n", cfg.Generation.Timeout)
	fmt.Fprintf(out, "    apiKey: %s\n", mask(cfg.Generation.APIKey))
	fmt.Fprintln(out, "  logging:")
	fmt.Fprintf(out, "    level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "    file: %s\n", cfg.Logging.File)
	return nil
}

// mask hides all but the last four characters of a secret.
func mask(s string) string {
	switch {
	case s == "":
		return "(not set)"
	case len(s) <= 4:
		return "****"
	default:
		return "****" + s[len(s)-4:]
	}
}
