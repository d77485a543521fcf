package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jywlabs/specgen/internal/catalog"
	"github.com/jywlabs/specgen/internal/display"
	"github.com/jywlabs/specgen/internal/generator"
	_ "github.com/jywlabs/specgen/internal/generator/claude"
	_ "github.com/jywlabs/specgen/internal/generator/gemini"
)

var (
	generateNameFlag     string
	generateStackFlag    []string
	generateProviderFlag string
)

var generateCmd = &cobra.Command{
	Use:   "generate [idea]",
	Short: "Generate a spec with AI from a freeform idea",
	Long: `Generate a technical spec from a freeform description of your app.

The idea is sent with your tech stack to the configured model (Gemini by
default, or the local Claude CLI). The result is saved as a new spec.

If no idea is given, your $EDITOR opens so you can write it.

Tech stack defaults can be overridden with --stack key=value. Multi-value
options take a comma separated list. Keys:
  auth, database, backend, ui, mobile, payments, notifications, storage, vibe

Examples:
  specgen generate "A habit tracker for remote teams" --name Streaks
  specgen generate --stack payments=Stripe --stack mobile="Flutter,PWA"
  specgen generate "Invoice OCR" --provider claude`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateNameFlag, "name", "n", "", "App name (also the spec name)")
	generateCmd.Flags().StringArrayVarP(&generateStackFlag, "stack", "s", nil, "Override a tech stack option (key=value)")
	generateCmd.Flags().StringVarP(&generateProviderFlag, "provider", "p", "", "Model provider (gemini, claude)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Resolve the stack before any I/O so bad overrides fail fast.
	stack, err := resolveStack(generateStackFlag)
	if err != nil {
		return err
	}

	var idea string
	if len(args) > 0 {
		idea = args[0]
	} else {
		idea, err = openEditorForInput(cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}
	if strings.TrimSpace(idea) == "" {
		return generator.ErrEmptyPrompt
	}

	a, err := openApp(ctx, dirFlag, verboseFlag)
	if err != nil {
		return err
	}
	defer a.Close()

	provider := a.cfg.Generation.Provider
	if generateProviderFlag != "" {
		provider = generateProviderFlag
	}
	model, err := generator.NewModel(provider, a.cfg.ModelConfig())
	if err != nil {
		return err
	}

	svc := generator.NewService(model, a.docs, a.log.Named("generator"))
	return runGenerateFn(ctx, svc, generator.Request{
		Prompt:    idea,
		TechStack: stack,
		AppName:   generateNameFlag,
	}, model.Name(), cmd.OutOrStdout())
}

// resolveStack applies key=value overrides to the default tech stack.
func resolveStack(overrides []string) (catalog.Answers, error) {
	stack := catalog.DefaultTechStack()
	for _, o := range overrides {
		var err error
		if stack, err = catalog.ApplyTechOverride(stack, o); err != nil {
			return nil, err
		}
	}
	return stack, nil
}

func runGenerateFn(ctx context.Context, svc *generator.Service, req generator.Request, provider string, out io.Writer) error {
	disp := display.NewDisplay(out)
	disp.ShowHeader("Generating spec", "provider: "+provider)

	disp.StartSpinner("writing spec...")
	res, err := svc.Generate(ctx, req)
	disp.StopSpinner()

	if err != nil {
		if errors.Is(err, generator.ErrTokenLimit) {
			disp.ShowError("The spec was cut off at the output token limit and was not saved.\nShorten the idea or pick a smaller stack and try again.")
		} else {
			disp.ShowError(err.Error())
		}
		return err
	}

	disp.ShowSuccess("Spec generated",
		fmt.Sprintf("Name: %s", res.Name),
		fmt.Sprintf("ID:   %s", res.ID),
		fmt.Sprintf("Took %s", res.Duration.Round(100*time.Millisecond)),
		fmt.Sprintf("Preview: specgen show %s", res.ID))
	return nil
}

// openEditorForInput opens $EDITOR on a template and returns what was
// written, with comment lines removed.
func openEditorForInput(out io.Writer) (string, error) {
	tmpfile, err := os.CreateTemp("", "specgen-idea-*.md")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpfile.Name())

	template := `<!-- Describe your app idea below. Save and quit when done. -->
<!-- Who is it for, what problem does it solve, what are the core features? -->
<!-- Lines starting with <!-- will be ignored. -->

`
	if _, err := tmpfile.WriteString(template); err != nil {
		return "", fmt.Errorf("failed to write template: %w", err)
	}
	tmpfile.Close()

	editor := findEditor()
	if editor == "" {
		return "", fmt.Errorf("no editor found - set $EDITOR or pass the idea as an argument")
	}

	fmt.Fprintf(out, "Opening %s... (save and quit when done)\n", editor)
	editorCmd := exec.Command(editor, tmpfile.Name())
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return "", fmt.Errorf("editor failed: %w", err)
	}

	content, err := os.ReadFile(tmpfile.Name())
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return stripCommentLines(string(content)), nil
}

func findEditor() string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if editor := os.Getenv(env); editor != "" {
			return editor
		}
	}
	for _, e := range []string{"nvim", "nano", "vim", "vi"} {
		if _, err := exec.LookPath(e); err == nil {
			return e
		}
	}
	return ""
}

// stripCommentLines drops whole-line HTML comments and trims the result.
func stripCommentLines(s string) string {
	var filtered []string
	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "<!--") && strings.HasSuffix(trimmed, "-->") {
			continue
		}
		filtered = append(filtered, line)
	}
	return strings.TrimSpace(strings.Join(filtered, "\n"))
}
