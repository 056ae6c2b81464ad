package matching

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// EmbedEngine is the subset of the Ollama client used for scoring.
type EmbedEngine interface {
	IsRunning(ctx context.Context) bool
	HasModel(ctx context.Context, name string) bool
	Embed(ctx context.Context, model string, text string) ([]float32, error)
}

// Embedder generates embedding vectors through a local inference engine.
type Embedder struct {
	engine EmbedEngine
	model  string

	probeOnce sync.Once
	available bool
}

// NewEmbedder creates an Embedder using the given engine and model name.
func NewEmbedder(engine EmbedEngine, model string) *Embedder {
	return &Embedder{engine: engine, model: model}
}

// Available reports whether the embedding model can serve requests. The
// probe runs once and the result is latched for the process lifetime, so
// an engine started after the first request is picked up on restart only.
func (e *Embedder) Available(ctx context.Context) bool {
	e.probeOnce.Do(func() {
		e.available = e.engine.IsRunning(ctx) && e.engine.HasModel(ctx, e.model)
	})
	return e.available
}

// Embed returns the embedding vector for a single text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vec, err := e.engine.Embed(ctx, e.model, text)
	if err != nil {
		return nil, fmt.Errorf("embedding text: %w", err)
	}
	return vec, nil
}

// EmbedBatch returns embedding vectors for multiple texts concurrently.
// Returns nil (not error) for empty/nil input.
func (e *Embedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	results := make([][]float32, len(texts))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(4) // Bound concurrency to avoid overwhelming the engine.

	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			vec, err := e.engine.Embed(gCtx, e.model, text)
			if err != nil {
				return fmt.Errorf("embedding text %d: %w", i, err)
			}
			results[i] = vec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
