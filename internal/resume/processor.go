package resume

import (
	"github.com/gitcompass/engine/internal/skills"
)

// maxRawText bounds the raw text echoed back to the caller.
const maxRawText = 5000

// fallbackMessage replaces the raw text when extraction produced nothing.
const fallbackMessage = "Unable to extract text from file. Using default skills."

// Result is the outcome of processing an uploaded resume. Fallback is true
// when no text could be extracted and the default skill set was substituted;
// the HTTP payload does not carry it, but callers can log or branch on it.
type Result struct {
	Skills   []skills.Skill
	RawText  string
	Fallback bool
}

// Process extracts text from the uploaded file and runs skill extraction
// over it. Empty or whitespace-only text triggers the fallback path.
func Process(content []byte, filename string) Result {
	raw := ExtractText(content, filename)

	if isBlank(raw) {
		return Result{
			Skills:   skills.DefaultSkills(),
			RawText:  fallbackMessage,
			Fallback: true,
		}
	}

	extracted := skills.Extract(raw)
	if len(raw) > maxRawText {
		raw = raw[:maxRawText]
	}
	return Result{
		Skills:  extracted,
		RawText: raw,
	}
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
