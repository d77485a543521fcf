package claude

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/jywlabs/specgen/internal/generator"
)

func init() {
	generator.RegisterModel("claude", func(cfg generator.ModelConfig) (generator.Model, error) {
		return New(cfg), nil
	})
}

// claudeResponse represents the JSON response from Claude CLI.
type claudeResponse struct {
	Type       string `json:"type"`
	Subtype    string `json:"subtype"`
	IsError    bool   `json:"is_error"`
	Result     string `json:"result"`
	StopReason string `json:"stop_reason"`
}

// Model generates documents with the locally installed Claude CLI.
type Model struct {
	Timeout time.Duration
	model   string
	command string
}

// New creates a Claude CLI model.
func New(cfg generator.ModelConfig) *Model {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = generator.DefaultTimeout
	}
	return &Model{
		Timeout: timeout,
		model:   cfg.Model,
		command: "claude",
	}
}

// Name returns the provider identifier.
func (m *Model) Name() string {
	return "claude"
}

// BuildArgs returns the CLI arguments for one generation.
func (m *Model) BuildArgs(system, prompt string) []string {
	args := []string{"-p", "--output-format", "json"}
	if m.model != "" {
		args = append(args, "--model", m.model)
	}
	if system != "" {
		args = append(args, "--append-system-prompt", system)
	}
	return append(args, prompt)
}

// Generate runs the CLI and returns its result text.
func (m *Model) Generate(ctx context.Context, system, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, m.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, m.command, m.BuildArgs(system, prompt)...)
	cmd.Stdin = nil

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("execution timed out after %s", m.Timeout)
		}
		if stderr.Len() > 0 {
			return "", fmt.Errorf("command failed: %w: %s", err, strings.TrimSpace(stderr.String()))
		}
		// The CLI exits non-zero on error results but still prints JSON.
		if stdout.Len() > 0 {
			if _, perr := parseResponse(stdout.Bytes()); perr != nil {
				return "", perr
			}
		}
		return "", fmt.Errorf("command failed: %w", err)
	}

	return parseResponse(stdout.Bytes())
}

// parseResponse parses the JSON response from Claude CLI.
func parseResponse(data []byte) (string, error) {
	var resp claudeResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.StopReason == "max_tokens" || resp.Subtype == "error_max_tokens" {
		return "", generator.ErrTokenLimit
	}

	if resp.Subtype == "success" && !resp.IsError {
		return resp.Result, nil
	}

	errMsg := resp.Subtype
	if resp.Result != "" {
		errMsg = resp.Result
	}
	if errMsg == "" {
		errMsg = "empty response"
	}
	return "", fmt.Errorf("claude execution failed: %s", errMsg)
}
