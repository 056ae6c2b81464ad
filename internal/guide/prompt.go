package guide

import (
	"fmt"
	"strings"
)

const maxPromptSkills = 10

// buildPrompt assembles the mentoring prompt sent to the language model.
// The response schema is spelled out inline because the parsed guide is
// served to clients as-is.
func buildPrompt(repo Repository, issue *Issue, skills []SkillRef) string {
	names := make([]string, 0, maxPromptSkills)
	for _, s := range skills {
		if len(names) == maxPromptSkills {
			break
		}
		if s.Name != "" {
			names = append(names, s.Name)
		}
	}
	skillsText := strings.Join(names, ", ")
	if skillsText == "" {
		skillsText = "Not specified"
	}

	fullName := repo.FullName
	if fullName == "" {
		fullName = "Unknown"
	}
	description := repo.Description
	if description == "" {
		description = "No description"
	}
	language := repo.Language
	if language == "" {
		language = "Unknown"
	}
	topics := repo.Topics
	if len(topics) > 5 {
		topics = topics[:5]
	}

	var issueContext string
	if issue != nil {
		labels := strings.Join(issue.Labels, ", ")
		if labels == "" {
			labels = "None"
		}
		difficulty := issue.Difficulty
		if difficulty == "" {
			difficulty = "Unknown"
		}
		issueContext = fmt.Sprintf(`
Specific Issue to Contribute:
- Issue Number: #%d
- Issue Title: %s
- Labels: %s
- Difficulty: %s
- Comments: %d comments
`, issue.Number, issue.Title, labels, difficulty, issue.Comments)
	}

	return fmt.Sprintf(`You are a helpful open-source contribution mentor. Generate a personalized contribution guide for a developer who wants to contribute to a specific issue.

Repository: %s
Description: %s
Language: %s
Stars: %d
Topics: %s
%s
Developer's Skills: %s

Please provide a JSON response with the following structure:
{
    "summary": "A 2-3 sentence overview of this specific issue and why it's a good contribution opportunity",
    "issueAnalysis": {
        "difficulty": "easy/medium/hard",
        "estimatedTime": "estimated time to complete",
        "skillsNeeded": ["skill1", "skill2"]
    },
    "gettingStarted": ["Step 1 specific to this issue", "Step 2", ...],
    "codeConventions": ["Convention 1", "Convention 2", ...],
    "tips": ["Tip 1 specific to this issue", "Tip 2", ...]
}

Make the guide SPECIFIC to this issue. Reference the issue number and title. Provide actionable steps. Respond ONLY with valid JSON, no markdown formatting.`,
		fullName, description, language, repo.Stars, strings.Join(topics, ", "), issueContext, skillsText)
}

// cleanJSON strips markdown code fences some models wrap around JSON.
func cleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")

	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}
