package matching

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/gitcompass/engine/internal/github"
)

const (
	maxRecommendations = 10
	languageBonus      = 10
)

// RepoSearcher finds candidate repositories for a set of skills.
type RepoSearcher interface {
	Search(ctx context.Context, skills []string) ([]github.Repo, error)
}

// Vectorizer scores semantic similarity between skill and repository text.
type Vectorizer interface {
	Available(ctx context.Context) bool
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Ranker turns a skill profile into scored repository recommendations.
// It prefers semantic scoring and degrades to keyword matching when the
// embedding engine is not available.
type Ranker struct {
	searcher RepoSearcher
	vec      Vectorizer
}

// NewRanker creates a Ranker. vec may be nil, in which case every request
// takes the keyword path.
func NewRanker(searcher RepoSearcher, vec Vectorizer) *Ranker {
	return &Ranker{searcher: searcher, vec: vec}
}

// Recommend returns up to ten repositories scored against the given skills,
// highest score first. An empty skill list yields no recommendations; a
// failed or empty search yields the fixed fallback set.
func (r *Ranker) Recommend(ctx context.Context, skills []string) []Candidate {
	if len(skills) == 0 {
		return nil
	}

	repos, err := r.searcher.Search(ctx, skills)
	if err != nil {
		slog.Warn("repository search failed, serving fallback recommendations", "error", err)
		repos = nil
	}
	if len(repos) == 0 {
		return mockCandidates(skills)
	}

	var recs []Candidate
	scored := false
	if r.vec != nil && r.vec.Available(ctx) {
		recs, err = r.rankSemantic(ctx, repos, skills)
		if err != nil {
			slog.Warn("semantic scoring failed, using keyword matching", "error", err)
		} else {
			scored = true
		}
	}
	if !scored {
		recs = r.rankKeyword(repos, skills)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// rankSemantic scores each repository by cosine similarity between the
// joined skill text and the repository text, boosted when the primary
// language matches one of the skills.
func (r *Ranker) rankSemantic(ctx context.Context, repos []github.Repo, skills []string) ([]Candidate, error) {
	skillVec, err := r.vec.Embed(ctx, strings.Join(skills, " "))
	if err != nil {
		return nil, err
	}

	texts := make([]string, len(repos))
	for i, repo := range repos {
		texts[i] = repoText(repo)
	}
	repoVecs, err := r.vec.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, err
	}

	skillNorm := norm(skillVec)
	var recs []Candidate
	for i, repo := range repos {
		cand, ok := newCandidate(repo, skills)
		if !ok {
			continue
		}

		score := int(math.Round(float64(cosine(skillVec, repoVecs[i], skillNorm)) * 100))
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		if cand.Language != "" && hasSkillFold(skills, cand.Language) {
			score = min(score+languageBonus, 100)
		}

		cand.MatchScore = score
		recs = append(recs, cand)
	}
	return recs, nil
}

// rankKeyword scores repositories by counting skill mentions in their text,
// with a rank-based ceiling so earlier search results stay ahead on ties.
func (r *Ranker) rankKeyword(repos []github.Repo, skills []string) []Candidate {
	var recs []Candidate
	for i, repo := range repos {
		cand, ok := newCandidate(repo, skills)
		if !ok {
			continue
		}

		text := strings.ToLower(repoText(repo))
		matched := 0
		for _, s := range skills {
			if s != "" && strings.Contains(text, strings.ToLower(s)) {
				matched++
			}
		}
		cand.MatchScore = min(95-i*3, 50+matched*10)
		recs = append(recs, cand)
	}
	return recs
}

func hasSkillFold(skills []string, lang string) bool {
	for _, s := range skills {
		if s != "" && strings.EqualFold(s, lang) {
			return true
		}
	}
	return false
}
