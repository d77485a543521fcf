package store

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Gateway is the view of a Store the CLI uses. Failures are logged here;
// reads degrade to empty results instead of returning errors.
type Gateway struct {
	store Store
	log   *zap.Logger
}

// NewGateway wraps s.
func NewGateway(s Store, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{store: s, log: log}
}

// Save creates or updates a document.
func (g *Gateway) Save(ctx context.Context, id, name string, content Content) error {
	if err := g.store.Upsert(ctx, id, name, content); err != nil {
		g.log.Error("failed to save document", zap.String("id", id), zap.Error(err))
		return err
	}
	g.log.Debug("saved document", zap.String("id", id))
	return nil
}

// All returns every document newest first, or nothing if the read fails.
func (g *Gateway) All(ctx context.Context) []Document {
	docs, err := g.store.List(ctx)
	if err != nil {
		g.log.Error("failed to list documents", zap.Error(err))
		return []Document{}
	}
	if docs == nil {
		return []Document{}
	}
	return docs
}

// Find returns the document or nil when it is missing or unreadable.
func (g *Gateway) Find(ctx context.Context, id string) *Document {
	doc, err := g.store.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			g.log.Error("failed to read document", zap.String("id", id), zap.Error(err))
		}
		return nil
	}
	return doc
}

// Remove deletes a document.
func (g *Gateway) Remove(ctx context.Context, id string) error {
	if err := g.store.Delete(ctx, id); err != nil {
		g.log.Error("failed to delete document", zap.String("id", id), zap.Error(err))
		return err
	}
	g.log.Debug("deleted document", zap.String("id", id))
	return nil
}

// Close closes the underlying store.
func (g *Gateway) Close() error { return g.store.Close() }
