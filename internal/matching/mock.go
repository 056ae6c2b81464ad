package matching

import "fmt"

// mockCandidates serves fixed recommendations from individually-maintained
// projects when the search API is unreachable or rate limited.
func mockCandidates(skills []string) []Candidate {
	first := "JavaScript"
	if len(skills) > 0 {
		first = skills[0]
	}

	return []Candidate{
		{
			ID:              1,
			Name:            "30-seconds-of-code",
			FullName:        "Chalarangelo/30-seconds-of-code",
			Description:     "Short code snippets for all your development needs",
			Stars:           120000,
			Forks:           12000,
			Language:        "JavaScript",
			Topics:          []string{"javascript", "snippets", "learning"},
			MatchScore:      95,
			MatchReason:     fmt.Sprintf("Matches your %s skills", first),
			GoodFirstIssues: 15,
			Difficulty:      "Easy",
			Owner: CandidateOwner{
				Login:     "Chalarangelo",
				AvatarURL: "https://github.com/Chalarangelo.png",
			},
		},
		{
			ID:              2,
			Name:            "free-programming-books",
			FullName:        "EbookFoundation/free-programming-books",
			Description:     "Freely available programming books",
			Stars:           310000,
			Forks:           58000,
			Language:        "Markdown",
			Topics:          []string{"books", "education", "programming"},
			MatchScore:      88,
			MatchReason:     "Great for documentation contributions",
			GoodFirstIssues: 30,
			Difficulty:      "Easy",
			Owner: CandidateOwner{
				Login:     "EbookFoundation",
				AvatarURL: "https://github.com/EbookFoundation.png",
			},
		},
		{
			ID:              3,
			Name:            "developer-roadmap",
			FullName:        "kamranahmedse/developer-roadmap",
			Description:     "Interactive roadmaps, guides and educational content",
			Stars:           270000,
			Forks:           36000,
			Language:        "TypeScript",
			Topics:          []string{"roadmap", "learning", "developer"},
			MatchScore:      85,
			MatchReason:     "Perfect for learning and contributing guides",
			GoodFirstIssues: 20,
			Difficulty:      "Easy",
			Owner: CandidateOwner{
				Login:     "kamranahmedse",
				AvatarURL: "https://github.com/kamranahmedse.png",
			},
		},
	}
}
