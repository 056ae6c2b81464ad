package guide

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Generator produces contribution guides, preferring the language model
// and falling back to templates when it is unavailable or misbehaves.
type Generator struct {
	llm TextGenerator
}

// NewGenerator creates a Generator. llm may be nil, in which case every
// guide comes from the template.
func NewGenerator(llm TextGenerator) *Generator {
	return &Generator{llm: llm}
}

// Generate builds a guide for the repository, optionally scoped to one
// issue. It never fails: any model or parse error falls back to the
// deterministic template.
func (g *Generator) Generate(ctx context.Context, repo Repository, issue *Issue, skills []SkillRef) Guide {
	if g.llm != nil {
		guide, err := g.generateLLM(ctx, repo, issue, skills)
		if err == nil {
			// Model output only covers the analysis sections. The links are
			// always ours so they stay well-formed.
			guide.Resources = guideResources(repo.FullName, issue)
			return guide
		}
		slog.Warn("model guide generation failed, using template", "repo", repo.FullName, "error", err)
	}
	return templateGuide(repo, issue)
}

func (g *Generator) generateLLM(ctx context.Context, repo Repository, issue *Issue, skills []SkillRef) (Guide, error) {
	raw, err := g.llm.GenerateText(ctx, buildPrompt(repo, issue, skills))
	if err != nil {
		return Guide{}, err
	}

	var guide Guide
	if err := json.Unmarshal([]byte(cleanJSON(raw)), &guide); err != nil {
		return Guide{}, fmt.Errorf("parsing model response: %w", err)
	}
	return guide, nil
}

// guideResources returns the two links attached to model-generated guides.
func guideResources(fullName string, issue *Issue) []Resource {
	readme := Resource{
		Title: "Repository README",
		URL:   fmt.Sprintf("https://github.com/%s#readme", fullName),
	}
	if issue != nil {
		return []Resource{
			{
				Title: fmt.Sprintf("View Issue #%d", issue.Number),
				URL:   fmt.Sprintf("https://github.com/%s/issues/%d", fullName, issue.Number),
			},
			readme,
		}
	}
	return []Resource{
		readme,
		{
			Title: "Good First Issues",
			URL:   fmt.Sprintf("https://github.com/%s/issues?q=is%%3Aissue+is%%3Aopen+label%%3A%%22good+first+issue%%22", fullName),
		},
	}
}
