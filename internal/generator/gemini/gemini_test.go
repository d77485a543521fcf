package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"google.golang.org/genai"

	"github.com/jywlabs/specgen/internal/generator"
)

func candidate(reason genai.FinishReason, text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			FinishReason: reason,
			Content:      genai.NewContentFromText(text, genai.RoleModel),
		}},
	}
}

func TestResponseText(t *testing.T) {
	tests := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		want    string
		wantErr error
		errLike string
	}{
		{
			name: "stop",
			resp: candidate(genai.FinishReasonStop, "# Spec\n"),
			want: "# Spec",
		},
		{
			name:    "max tokens",
			resp:    candidate(genai.FinishReasonMaxTokens, "# Sp"),
			wantErr: generator.ErrTokenLimit,
		},
		{
			name:    "safety",
			resp:    candidate(genai.FinishReasonSafety, ""),
			errLike: "blocked",
		},
		{
			name:    "no candidates",
			resp:    &genai.GenerateContentResponse{},
			errLike: "no candidates",
		},
		{
			name:    "nil response",
			resp:    nil,
			errLike: "no candidates",
		},
		{
			name:    "empty text",
			resp:    candidate(genai.FinishReasonStop, "   "),
			errLike: "empty response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := responseText(tt.resp)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
			case tt.errLike != "":
				if err == nil || !strings.Contains(err.Error(), tt.errLike) {
					t.Fatalf("err = %v, want containing %q", err, tt.errLike)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("got %q, want %q", got, tt.want)
				}
			}
		})
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), generator.ModelConfig{})
	if err == nil || !strings.Contains(err.Error(), "API key") {
		t.Fatalf("err = %v, want API key error", err)
	}
}

func TestRegistered(t *testing.T) {
	found := false
	for _, name := range generator.Available() {
		if name == "gemini" {
			found = true
		}
	}
	if !found {
		t.Errorf("Available() = %v, want gemini registered", generator.Available())
	}
}

func TestNewDefaults(t *testing.T) {
	m, err := New(context.Background(), generator.ModelConfig{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if m.Timeout != generator.DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", m.Timeout, generator.DefaultTimeout)
	}
	if m.model != DefaultModel {
		t.Errorf("model = %q, want %q", m.model, DefaultModel)
	}
	if m.maxTokens != generator.DefaultMaxOutputTokens {
		t.Errorf("maxTokens = %d, want %d", m.maxTokens, generator.DefaultMaxOutputTokens)
	}
}

func TestNewKeepsConfiguredTimeout(t *testing.T) {
	m, err := New(context.Background(), generator.ModelConfig{APIKey: "test-key", Timeout: 30 * time.Second})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if m.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", m.Timeout)
	}
}

func TestNewRejectsOversizedTokenCap(t *testing.T) {
	_, err := New(context.Background(), generator.ModelConfig{APIKey: "test-key", MaxOutputTokens: 1 << 20})
	if err == nil || !strings.Contains(err.Error(), "exceeds") {
		t.Fatalf("err = %v, want exceeds error", err)
	}
}
