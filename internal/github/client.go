package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// maxQuerySkills caps how many skills feed the search query.
	maxQuerySkills = 5
	// perPage is deliberately larger than the final result size so that
	// enough candidates survive the owner filter.
	perPage = 50
	// minResults is the floor below which excluded repositories are
	// backfilled to keep recommendations useful.
	minResults = 10

	userAgent = "gitcompass-engine"
)

// Owner is the repository owner as returned by the search API. Login and
// AvatarURL are pointers so a missing field is distinguishable from an
// empty one; the ranker drops candidates lacking them.
type Owner struct {
	Login     *string `json:"login"`
	AvatarURL *string `json:"avatar_url"`
	Type      string  `json:"type"`
}

// Repo is a raw repository record from the search API. Required fields are
// pointers for the same reason as in Owner.
type Repo struct {
	ID              *int64   `json:"id"`
	Name            *string  `json:"name"`
	FullName        *string  `json:"full_name"`
	Description     string   `json:"description"`
	StargazersCount *int     `json:"stargazers_count"`
	ForksCount      *int     `json:"forks_count"`
	Language        string   `json:"language"`
	Topics          []string `json:"topics"`
	OpenIssuesCount int      `json:"open_issues_count"`
	Owner           Owner    `json:"owner"`
}

// Client queries the GitHub repository search API.
type Client struct {
	baseURL    string
	token      string
	denylist   Denylist
	httpClient *http.Client
}

// NewClient creates a Client for the given API base URL. token may be empty
// (unauthenticated requests with a lower rate limit). A nil denylist
// disables the large-organization filter.
func NewClient(baseURL, token string, denylist Denylist) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		denylist:   denylist,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type searchResponse struct {
	Items []Repo `json:"items"`
}

// Search returns up to 50 repositories matching any of the given skills,
// each with at least one open good-first-issue, sorted by stars descending
// upstream. Repositories owned by denylisted organizations or exotic owner
// types are filtered out; if fewer than 10 remain, excluded entries are
// backfilled in their original ranking order.
//
// An empty skill list yields (nil, nil). API or network failures return an
// error; the caller substitutes mock data, so no retry happens here.
func (c *Client) Search(ctx context.Context, skillList []string) ([]Repo, error) {
	head := skillList
	if len(head) > maxQuerySkills {
		head = head[:maxQuerySkills]
	}
	var valid []string
	for _, s := range head {
		if s != "" {
			valid = append(valid, s)
		}
	}
	if len(valid) == 0 {
		return nil, nil
	}

	query := strings.Join(valid, " OR ") + " good-first-issues:>0"
	searchURL := fmt.Sprintf("%s/search/repositories?q=%s&sort=stars&order=desc&per_page=%d",
		c.baseURL, url.QueryEscape(query), perPage)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating search request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching repositories: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("search: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	slog.Debug("github search complete", "query", query, "items", len(result.Items))
	return c.filterOwners(result.Items), nil
}

// filterOwners prefers individually-owned repositories over those of large
// organizations, backfilling excluded entries when the filter is too strict.
func (c *Client) filterOwners(items []Repo) []Repo {
	var kept, excluded []Repo
	for _, repo := range items {
		if c.isIndividual(repo) {
			kept = append(kept, repo)
		} else {
			excluded = append(excluded, repo)
		}
	}

	for _, repo := range excluded {
		if len(kept) >= minResults {
			break
		}
		kept = append(kept, repo)
	}
	return kept
}

func (c *Client) isIndividual(repo Repo) bool {
	login := ""
	if repo.Owner.Login != nil {
		login = *repo.Owner.Login
	}
	if c.denylist.Contains(login) {
		return false
	}
	switch repo.Owner.Type {
	case "User", "Organization":
		return true
	default:
		return false
	}
}
