package generator

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

var (
	// ErrEmptyPrompt is returned when the idea description is blank.
	ErrEmptyPrompt = errors.New("prompt is required")
	// ErrTokenLimit is returned when the model stopped at its output limit.
	ErrTokenLimit = errors.New("response exceeded the output token limit; shorten the idea or choose a smaller stack")
)

// DefaultTimeout bounds a single generation call.
const DefaultTimeout = 5 * time.Minute

// DefaultMaxOutputTokens caps the generated document.
const DefaultMaxOutputTokens = 8192

// MaxOutputTokensLimit is the largest output cap a provider request accepts.
const MaxOutputTokensLimit = 65536

// ModelConfig carries the settings a provider needs to build a Model.
type ModelConfig struct {
	Model           string
	APIKey          string
	MaxOutputTokens int
	Timeout         time.Duration
}

// Model produces a markdown document from a system instruction and prompt.
type Model interface {
	// Name returns the provider identifier (e.g., "gemini", "claude")
	Name() string

	// Generate returns the model's text. It returns ErrTokenLimit when the
	// output was truncated at the token cap.
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// modelConstructors maps provider names to their constructors.
// Providers register themselves via RegisterModel.
var modelConstructors = make(map[string]func(ModelConfig) (Model, error))

// RegisterModel registers a provider constructor by name.
func RegisterModel(name string, constructor func(ModelConfig) (Model, error)) {
	modelConstructors[strings.ToLower(name)] = constructor
}

// NewModel creates a model by provider name.
func NewModel(name string, cfg ModelConfig) (Model, error) {
	constructor, ok := modelConstructors[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s (supported: %s)", name, strings.Join(Available(), ", "))
	}
	return constructor(cfg)
}

// Available returns the registered provider names, sorted.
func Available() []string {
	names := make([]string, 0, len(modelConstructors))
	for name := range modelConstructors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
