package matching

import (
	"fmt"
	"strings"

	"github.com/gitcompass/engine/internal/github"
)

const (
	maxTopics          = 5
	maxGoodFirstIssues = 50
)

// CandidateOwner identifies the account behind a recommended repository.
type CandidateOwner struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatarUrl"`
}

// Candidate is a repository recommendation scored against a skill profile.
type Candidate struct {
	ID              int64          `json:"id"`
	Name            string         `json:"name"`
	FullName        string         `json:"fullName"`
	Description     string         `json:"description"`
	Stars           int            `json:"stars"`
	Forks           int            `json:"forks"`
	Language        string         `json:"language"`
	Topics          []string       `json:"topics"`
	MatchScore      int            `json:"matchScore"`
	MatchReason     string         `json:"matchReason"`
	GoodFirstIssues int            `json:"goodFirstIssues"`
	Difficulty      string         `json:"difficulty"`
	Owner           CandidateOwner `json:"owner"`
}

// newCandidate converts a search result into a Candidate, leaving MatchScore
// for the ranker to fill. Results missing any required field are dropped.
func newCandidate(repo github.Repo, skills []string) (Candidate, bool) {
	if repo.ID == nil || repo.Name == nil || repo.FullName == nil ||
		repo.StargazersCount == nil || repo.ForksCount == nil ||
		repo.Owner.Login == nil || repo.Owner.AvatarURL == nil {
		return Candidate{}, false
	}

	topics := repo.Topics
	if len(topics) > maxTopics {
		topics = topics[:maxTopics]
	}

	return Candidate{
		ID:              *repo.ID,
		Name:            *repo.Name,
		FullName:        *repo.FullName,
		Description:     repo.Description,
		Stars:           *repo.StargazersCount,
		Forks:           *repo.ForksCount,
		Language:        repo.Language,
		Topics:          topics,
		MatchReason:     matchReason(skills, repo),
		GoodFirstIssues: min(repo.OpenIssuesCount, maxGoodFirstIssues),
		Difficulty:      classifyDifficulty(*repo.StargazersCount, *repo.ForksCount),
		Owner: CandidateOwner{
			Login:     *repo.Owner.Login,
			AvatarURL: *repo.Owner.AvatarURL,
		},
	}, true
}

// repoText joins the searchable text fields of a repository.
func repoText(repo github.Repo) string {
	var parts []string
	if repo.Name != nil && *repo.Name != "" {
		parts = append(parts, *repo.Name)
	}
	if repo.Description != "" {
		parts = append(parts, repo.Description)
	}
	if repo.Language != "" {
		parts = append(parts, repo.Language)
	}
	if len(repo.Topics) > 0 {
		parts = append(parts, strings.Join(repo.Topics, " "))
	}
	return strings.Join(parts, " ")
}

// matchReason explains a recommendation in terms of the user's skills.
func matchReason(skills []string, repo github.Repo) string {
	text := strings.ToLower(repoText(repo))
	var matched []string
	for _, s := range skills {
		if s != "" && strings.Contains(text, strings.ToLower(s)) {
			matched = append(matched, s)
		}
	}

	switch {
	case len(matched) == 1:
		return fmt.Sprintf("Matches your %s skills", matched[0])
	case len(matched) >= 2:
		return fmt.Sprintf("Matches your %s skills", strings.Join(matched[:2], ", "))
	}

	if repo.Language != "" {
		return fmt.Sprintf("Uses %s which aligns with your profile", repo.Language)
	}
	return "Good match based on your skill profile"
}

// classifyDifficulty estimates how hard a project is to break into based on
// its popularity. Very large projects tend to have steeper on-ramps.
func classifyDifficulty(stars, forks int) string {
	switch {
	case stars > 50000 || forks > 10000:
		return "Hard"
	case stars > 10000 || forks > 2000:
		return "Medium"
	default:
		return "Easy"
	}
}
