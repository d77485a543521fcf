package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jywlabs/specgen/internal/catalog"
	"github.com/jywlabs/specgen/internal/prompt"
	"github.com/jywlabs/specgen/internal/store"
)

// DefaultName names generated documents saved without an app name.
const DefaultName = "AI Generated Spec"

// Request describes one generation.
type Request struct {
	Prompt    string
	TechStack catalog.Answers
	AppName   string
}

// Result is a saved generation.
type Result struct {
	ID       string
	Name     string
	Markdown string
	Duration time.Duration
}

// Saver persists generated documents. *store.Gateway satisfies it.
type Saver interface {
	Save(ctx context.Context, id, name string, content store.Content) error
}

// Service runs a model and records what it produced.
type Service struct {
	model Model
	saver Saver
	log   *zap.Logger
	newID func() string
}

// NewService wires a model to a saver.
func NewService(model Model, saver Saver, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		model: model,
		saver: saver,
		log:   log,
		newID: uuid.NewString,
	}
}

// Generate asks the model for a spec and saves it as a new document.
// Nothing is saved when the model fails; there is no retry.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	stack := req.TechStack
	if stack == nil {
		stack = catalog.DefaultTechStack()
	}

	start := time.Now()
	s.log.Info("generating spec", zap.String("provider", s.model.Name()), zap.String("appName", req.AppName))

	text, err := s.model.Generate(ctx, prompt.System, prompt.Build(req.Prompt, stack, req.AppName))
	if err != nil {
		s.log.Error("generation failed", zap.String("provider", s.model.Name()), zap.Error(err))
		return nil, err
	}

	markdown := stripOuterFence(text)
	if markdown == "" {
		return nil, fmt.Errorf("model returned an empty document")
	}

	name := strings.TrimSpace(req.AppName)
	if name == "" {
		name = DefaultName
	}

	id := s.newID()
	content := store.Content{
		Markdown:  markdown,
		Prompt:    req.Prompt,
		TechStack: stack.Clone(),
		AppName:   strings.TrimSpace(req.AppName),
	}
	if err := s.saver.Save(ctx, id, name, content); err != nil {
		return nil, fmt.Errorf("failed to save generated spec: %w", err)
	}

	duration := time.Since(start)
	s.log.Info("generated spec", zap.String("id", id), zap.Duration("duration", duration), zap.Int("bytes", len(markdown)))

	return &Result{ID: id, Name: name, Markdown: markdown, Duration: duration}, nil
}
