package guide

import (
	"fmt"
	"slices"
	"strconv"
)

// templateGuide builds a deterministic guide when the language model is
// unavailable or returned something unparseable.
func templateGuide(repo Repository, issue *Issue) Guide {
	repoName := repo.Name
	if repoName == "" {
		repoName = "this project"
	}
	fullName := repo.FullName
	if fullName == "" {
		fullName = "the repository"
	}
	description := repo.Description
	if description == "" {
		description = "an open-source project"
	}
	language := repo.Language
	if language == "" {
		language = "various languages"
	}

	if issue != nil {
		return issueTemplate(repoName, fullName, repo.Language, language, issue)
	}
	return genericTemplate(repoName, fullName, description, language, repo.Stars)
}

func issueTemplate(repoName, fullName, rawLanguage, language string, issue *Issue) Guide {
	difficulty := issue.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}

	var estimate string
	switch difficulty {
	case "easy":
		estimate = "1-3 hours"
	case "medium":
		estimate = "3-8 hours"
	default:
		estimate = "1-3 days"
	}

	opportunity := "an opportunity to contribute"
	if slices.Contains(issue.Labels, "good first issue") {
		opportunity = "a great first contribution opportunity"
	}

	var skillsNeeded []string
	if rawLanguage != "" {
		skillsNeeded = []string{rawLanguage}
	}

	n := issue.Number
	return Guide{
		Summary: fmt.Sprintf("Issue #%d: %q is %s to %s. This %s difficulty issue has clear requirements and is actively maintained.",
			n, issue.Title, opportunity, fullName, difficulty),
		IssueAnalysis: &IssueAnalysis{
			Difficulty:    difficulty,
			EstimatedTime: estimate,
			Labels:        issue.Labels,
			SkillsNeeded:  skillsNeeded,
		},
		GettingStarted: []string{
			"Fork the repository to your GitHub account",
			fmt.Sprintf("Clone your fork: `git clone https://github.com/YOUR_USERNAME/%s.git`", repoName),
			fmt.Sprintf("Navigate to the project: `cd %s`", repoName),
			"Read the README.md for setup instructions",
			"Install dependencies as specified in the documentation",
			fmt.Sprintf("Create a new branch: `git checkout -b fix/issue-%d`", n),
			fmt.Sprintf("Read issue #%d thoroughly, including all comments", n),
			"Understand the codebase structure before making changes",
			"Make your changes addressing the specific issue requirements",
			"Test your changes locally",
			fmt.Sprintf("Commit with a clear message: `git commit -m 'Fix #%d: Brief description'`", n),
			fmt.Sprintf("Push to your fork: `git push origin fix/issue-%d`", n),
			fmt.Sprintf("Open a Pull Request referencing #%d", n),
		},
		CodeConventions: []string{
			"Follow the existing code style in the project",
			fmt.Sprintf("Use the project's preferred %s conventions", language),
			"Write meaningful commit messages referencing the issue",
			"Add tests for new features when applicable",
			"Update documentation if you change functionality",
			"Keep changes focused on the specific issue",
		},
		Tips: []string{
			fmt.Sprintf("Comment on issue #%d to let maintainers know you're working on it", n),
			"Check if someone is already assigned or working on this issue",
			"Ask questions in issue comments if requirements are unclear",
			fmt.Sprintf("Reference #%d in your PR title and description", n),
			"Be patient with maintainers - they are often volunteers",
			"Request review from maintainers when your PR is ready",
		},
		Resources: []Resource{
			{Title: fmt.Sprintf("View Issue #%d", n), URL: fmt.Sprintf("https://github.com/%s/issues/%d", fullName, n)},
			{Title: "Repository README", URL: fmt.Sprintf("https://github.com/%s#readme", fullName)},
			{Title: "GitHub Pull Request Guide", URL: "https://docs.github.com/en/pull-requests"},
		},
	}
}

func genericTemplate(repoName, fullName, description, language string, stars int) Guide {
	return Guide{
		Summary: fmt.Sprintf("%s is %s. With %s stars, it's a well-maintained project with an active community that welcomes new contributors.",
			fullName, description, formatStars(stars)),
		GettingStarted: []string{
			"Fork the repository to your GitHub account",
			fmt.Sprintf("Clone your fork: `git clone https://github.com/YOUR_USERNAME/%s.git`", repoName),
			fmt.Sprintf("Navigate to the project: `cd %s`", repoName),
			"Read the README.md for setup instructions",
			"Install dependencies as specified in the documentation",
			"Create a new branch: `git checkout -b feature/your-feature-name`",
			"Make your changes following the project's coding standards",
			"Commit with a clear message: `git commit -m 'Add: brief description'`",
			"Push to your fork: `git push origin feature/your-feature-name`",
			"Open a Pull Request on the original repository",
		},
		RecommendedIssue: &RecommendedIssue{
			Title:  "Look for issues labeled 'good first issue' or 'help wanted'",
			Reason: "These issues are specifically marked by maintainers as suitable for newcomers. They typically have clear requirements and often include helpful context or mentorship from experienced contributors.",
		},
		CodeConventions: []string{
			"Follow the existing code style in the project",
			fmt.Sprintf("Use the project's preferred %s conventions", language),
			"Write meaningful commit messages",
			"Add tests for new features when applicable",
			"Update documentation if you change functionality",
			"Keep changes focused and atomic",
		},
		Tips: []string{
			"Start by reading CONTRIBUTING.md if it exists",
			"Check if someone is already working on an issue before starting",
			"Ask questions in issue comments if requirements are unclear",
			"Start with documentation or test improvements if code changes seem daunting",
			"Be patient with maintainers - they are often volunteers",
			"Join the project's community channels (Discord, Slack) if available",
			"Celebrate your merged PRs, no matter how small!",
		},
		Resources: []Resource{
			{Title: "Repository README", URL: fmt.Sprintf("https://github.com/%s#readme", fullName)},
			{Title: "Good First Issues", URL: fmt.Sprintf("https://github.com/%s/issues?q=is%%3Aissue+is%%3Aopen+label%%3A%%22good+first+issue%%22", fullName)},
			{Title: "GitHub Pull Request Guide", URL: "https://docs.github.com/en/pull-requests"},
			{Title: "Open Source Guide", URL: "https://opensource.guide/how-to-contribute/"},
		},
	}
}

// formatStars renders a star count as 1.2K or 3.4M above the respective
// thresholds.
func formatStars(stars int) string {
	switch {
	case stars >= 1000000:
		return fmt.Sprintf("%.1fM", float64(stars)/1000000)
	case stars >= 1000:
		return fmt.Sprintf("%.1fK", float64(stars)/1000)
	default:
		return strconv.Itoa(stars)
	}
}
