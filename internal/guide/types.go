package guide

// Repository describes the project a guide is generated for.
type Repository struct {
	Name        string   `json:"name"`
	FullName    string   `json:"fullName"`
	Description string   `json:"description"`
	Language    string   `json:"language"`
	Stars       int      `json:"stars"`
	Topics      []string `json:"topics"`
}

// Issue narrows a guide to one specific issue in the repository.
type Issue struct {
	Number     int      `json:"number"`
	Title      string   `json:"title"`
	Labels     []string `json:"labels"`
	Difficulty string   `json:"difficulty"`
	Comments   int      `json:"comments"`
}

// SkillRef names one of the requesting user's skills.
type SkillRef struct {
	Name string `json:"name"`
}

// IssueAnalysis estimates the effort behind a specific issue.
type IssueAnalysis struct {
	Difficulty    string   `json:"difficulty"`
	EstimatedTime string   `json:"estimatedTime"`
	Labels        []string `json:"labels,omitempty"`
	SkillsNeeded  []string `json:"skillsNeeded"`
}

// RecommendedIssue points a newcomer at where to start when no issue
// was requested.
type RecommendedIssue struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// Resource is a link worth reading before contributing.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Guide is a personalized contribution guide. IssueAnalysis is set for
// issue-specific guides, RecommendedIssue for repository-level ones.
type Guide struct {
	Summary          string            `json:"summary"`
	IssueAnalysis    *IssueAnalysis    `json:"issueAnalysis,omitempty"`
	GettingStarted   []string          `json:"gettingStarted"`
	RecommendedIssue *RecommendedIssue `json:"recommendedIssue,omitempty"`
	CodeConventions  []string          `json:"codeConventions"`
	Tips             []string          `json:"tips"`
	Resources        []Resource        `json:"resources"`
}

// Preview is a compact view of a guide for logs and summaries.
type Preview struct {
	StepsCount int      `json:"stepsCount"`
	Steps      []string `json:"steps"`
}

// Preview returns the step count and the first three steps of the guide.
func (g Guide) Preview() Preview {
	steps := g.GettingStarted
	if len(steps) > 3 {
		steps = steps[:3]
	}
	return Preview{StepsCount: len(g.GettingStarted), Steps: steps}
}
