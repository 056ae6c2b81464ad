package guide

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

// TextGenerator produces a completion for a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator calls the Gemini API. The client is created lazily on
// first use so that a missing API key degrades to template guides instead
// of failing startup.
type GeminiGenerator struct {
	apiKey string
	model  string

	initOnce sync.Once
	client   *genai.Client
	initErr  error
}

// NewGeminiGenerator creates a generator for the given model. The API key
// may be empty; every generation then fails and callers fall back.
func NewGeminiGenerator(apiKey, model string) *GeminiGenerator {
	return &GeminiGenerator{apiKey: apiKey, model: model}
}

func (g *GeminiGenerator) init(ctx context.Context) {
	g.initOnce.Do(func() {
		if g.apiKey == "" {
			g.initErr = errors.New("gemini api key not configured")
			return
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  g.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			g.initErr = fmt.Errorf("create genai client: %w", err)
			return
		}
		g.client = client
	})
}

// GenerateText sends the prompt to Gemini and returns the joined textual
// parts of the first response.
func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	g.init(ctx)
	if g.initErr != nil {
		return "", g.initErr
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("empty response from model")
	}
	return output, nil
}
