package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/jywlabs/specgen/internal/generator"
)

// DefaultModel is used when the config leaves the model blank.
const DefaultModel = "gemini-2.5-flash"

func init() {
	generator.RegisterModel("gemini", func(cfg generator.ModelConfig) (generator.Model, error) {
		return New(context.Background(), cfg)
	})
}

// Model generates documents through the Gemini API.
type Model struct {
	Timeout time.Duration

	client    *genai.Client
	model     string
	maxTokens int32
}

// New creates a Gemini model. An API key is required.
func New(ctx context.Context, cfg generator.ModelConfig) (*Model, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required (set GEMINI_API_KEY)")
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxOutputTokens
	if maxTokens <= 0 {
		maxTokens = generator.DefaultMaxOutputTokens
	}
	if maxTokens > generator.MaxOutputTokensLimit {
		return nil, fmt.Errorf("maxOutputTokens %d exceeds %d", maxTokens, generator.MaxOutputTokensLimit)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = generator.DefaultTimeout
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Model{
		Timeout:   timeout,
		client:    client,
		model:     model,
		maxTokens: int32(maxTokens),
	}, nil
}

// Name returns the provider identifier.
func (m *Model) Name() string {
	return "gemini"
}

// Generate sends one request and returns the text of the first candidate.
func (m *Model) Generate(ctx context.Context, system, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: m.maxTokens,
	}
	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	ctx, cancel := context.WithTimeout(ctx, m.Timeout)
	defer cancel()

	resp, err := m.client.Models.GenerateContent(ctx, m.model, genai.Text(prompt), config)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("gemini request timed out after %s", m.Timeout)
		}
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	return responseText(resp)
}

// responseText extracts the document, mapping a truncated answer to
// generator.ErrTokenLimit.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	switch resp.Candidates[0].FinishReason {
	case genai.FinishReasonMaxTokens:
		return "", generator.ErrTokenLimit
	case genai.FinishReasonSafety, genai.FinishReasonProhibitedContent, genai.FinishReasonBlocklist:
		return "", fmt.Errorf("gemini blocked the response (%s)", resp.Candidates[0].FinishReason)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return text, nil
}
