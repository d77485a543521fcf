package claude

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/jywlabs/specgen/internal/generator"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantOut  string
		wantErr  bool
		tokenCap bool
	}{
		{
			name:    "successful response",
			input:   `{"type":"result","subtype":"success","is_error":false,"result":"# Spec"}`,
			wantOut: "# Spec",
		},
		{
			name:    "error subtype",
			input:   `{"type":"result","subtype":"error_max_budget_usd","is_error":false,"result":""}`,
			wantErr: true,
		},
		{
			name:    "is_error true",
			input:   `{"type":"result","subtype":"success","is_error":true,"result":"Something went wrong"}`,
			wantErr: true,
		},
		{
			name:     "stop reason max tokens",
			input:    `{"type":"result","subtype":"success","is_error":false,"result":"# Sp","stop_reason":"max_tokens"}`,
			wantErr:  true,
			tokenCap: true,
		},
		{
			name:    "invalid json",
			input:   `not valid json`,
			wantErr: true,
		},
		{
			name:    "empty response",
			input:   `{}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseResponse([]byte(tt.input))

			if got != tt.wantOut {
				t.Errorf("output = %q, want %q", got, tt.wantOut)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if errors.Is(err, generator.ErrTokenLimit) != tt.tokenCap {
				t.Errorf("errors.Is(err, ErrTokenLimit) = %v, want %v", !tt.tokenCap, tt.tokenCap)
			}
		})
	}
}

func TestBuildArgs(t *testing.T) {
	m := New(generator.ModelConfig{Model: "sonnet"})
	got := m.BuildArgs("be brief", "write it")
	want := []string{"-p", "--output-format", "json", "--model", "sonnet", "--append-system-prompt", "be brief", "write it"}
	if !slices.Equal(got, want) {
		t.Errorf("BuildArgs() = %q, want %q", got, want)
	}

	bare := New(generator.ModelConfig{}).BuildArgs("", "p")
	if !slices.Equal(bare, []string{"-p", "--output-format", "json", "p"}) {
		t.Errorf("BuildArgs() without options = %q", bare)
	}
}

func TestNewDefaultTimeout(t *testing.T) {
	m := New(generator.ModelConfig{})
	if m.Timeout != generator.DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", m.Timeout, generator.DefaultTimeout)
	}
}

func TestGenerate_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := &Model{Timeout: time.Millisecond, command: "claude"}
	if _, err := m.Generate(ctx, "", "test prompt"); err == nil {
		t.Error("expected error for canceled context")
	}
}
