package skills

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Skill is a normalized technical-competency token extracted from text.
type Skill struct {
	Name       string `json:"name"`
	Confidence int    `json:"confidence"`
	Category   string `json:"category"`
}

const (
	maxSkills      = 20
	baseConfidence = 70
	maxConfidence  = 95
	// boostedCap limits confidence after the context boost.
	boostedCap = 98
	// contextWindow is the character radius around a context word within
	// which a skill token counts as context-supported.
	contextWindow = 100
)

// contextWords signal that a nearby skill mention is a genuine competency
// claim rather than an incidental reference.
var contextWords = []string{
	"experience", "proficient", "expert", "skilled", "worked with", "developed",
}

var tokenPatterns = compilePatterns()

func compilePatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(dictionary))
	for i, e := range dictionary {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(e.token) + `\b`)
	}
	return patterns
}

// Extract scans text for dictionary skills and returns up to 20 of them
// ordered by descending confidence. Confidence grows with mention frequency
// and gets a small boost when the token appears near a context word. When
// several raw tokens normalize to the same display name (nodejs/node.js),
// the highest-confidence variant wins.
func Extract(text string) []Skill {
	lower := strings.ToLower(text)

	found := make(map[string]Skill)
	var order []string

	for i, e := range dictionary {
		matches := tokenPatterns[i].FindAllStringIndex(lower, -1)
		if len(matches) == 0 {
			continue
		}

		confidence := baseConfidence + 5*len(matches)
		if confidence > maxConfidence {
			confidence = maxConfidence
		}
		if inContext(lower, e.token) {
			confidence += 5
			if confidence > boostedCap {
				confidence = boostedCap
			}
		}

		name := displayName(e.token)
		if prev, ok := found[name]; ok {
			if prev.Confidence >= confidence {
				continue
			}
		} else {
			order = append(order, name)
		}
		found[name] = Skill{Name: name, Confidence: confidence, Category: e.category}
	}

	result := make([]Skill, 0, len(order))
	for _, name := range order {
		result = append(result, found[name])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Confidence > result[j].Confidence
	})

	if len(result) > maxSkills {
		result = result[:maxSkills]
	}
	return result
}

// inContext reports whether token occurs within the context window around
// the first occurrence of any context word.
func inContext(lower, token string) bool {
	for _, word := range contextWords {
		idx := strings.Index(lower, word)
		if idx < 0 {
			continue
		}
		start := idx - contextWindow
		if start < 0 {
			start = 0
		}
		end := idx + contextWindow
		if end > len(lower) {
			end = len(lower)
		}
		if strings.Contains(lower[start:end], token) {
			return true
		}
	}
	return false
}

// displayName normalizes a dictionary token for presentation: special cases
// first, then title case for multi-letter tokens, upper case for the rest.
func displayName(token string) string {
	if name, ok := specialNames[token]; ok {
		return name
	}
	if len(token) > 2 {
		return titleCase(token)
	}
	return strings.ToUpper(token)
}

// titleCase upper-cases every letter that follows a non-letter, so
// "spring boot" becomes "Spring Boot" and "scikit-learn" "Scikit-Learn".
func titleCase(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				sb.WriteRune(unicode.ToLower(r))
			} else {
				sb.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			sb.WriteRune(r)
			prevLetter = false
		}
	}
	return sb.String()
}

// DefaultSkills is the fixed fallback set returned when no text could be
// extracted from an uploaded document.
func DefaultSkills() []Skill {
	return []Skill{
		{Name: "JavaScript", Confidence: 90, Category: CategoryLanguage},
		{Name: "Python", Confidence: 85, Category: CategoryLanguage},
		{Name: "React", Confidence: 88, Category: CategoryFrontend},
		{Name: "Node.js", Confidence: 82, Category: CategoryBackend},
		{Name: "MongoDB", Confidence: 75, Category: CategoryDatabase},
	}
}
