package resume

import (
	"strings"
	"testing"
)

func TestProcess_PlainText(t *testing.T) {
	content := []byte("Senior engineer with 5 years experience with Python and React")
	res := Process(content, "resume.txt")

	if res.Fallback {
		t.Fatal("Fallback = true for readable text")
	}
	if !strings.Contains(res.RawText, "Python") {
		t.Errorf("RawText = %q, want original text echoed", res.RawText)
	}

	names := make(map[string]bool)
	for _, s := range res.Skills {
		names[s.Name] = true
	}
	if !names["Python"] || !names["React"] {
		t.Errorf("skills = %v, want Python and React", res.Skills)
	}
}

func TestProcess_EmptyContent(t *testing.T) {
	res := Process(nil, "resume.doc")

	if !res.Fallback {
		t.Fatal("Fallback = false for empty content")
	}
	if len(res.Skills) != 5 {
		t.Errorf("got %d fallback skills, want 5", len(res.Skills))
	}
	if res.RawText != fallbackMessage {
		t.Errorf("RawText = %q, want fallback message", res.RawText)
	}
}

func TestProcess_WhitespaceOnly(t *testing.T) {
	res := Process([]byte(" \n\t  \r\n"), "resume.txt")
	if !res.Fallback {
		t.Error("Fallback = false for whitespace-only content")
	}
}

func TestProcess_CorruptPDF(t *testing.T) {
	// Not a real PDF; extraction fails and the fallback set is substituted.
	res := Process([]byte("definitely not a pdf"), "resume.pdf")
	if !res.Fallback {
		t.Error("Fallback = false for unreadable pdf")
	}
}

func TestProcess_TruncatesRawText(t *testing.T) {
	long := strings.Repeat("python ", 2000) // ~14000 chars
	res := Process([]byte(long), "resume.txt")

	if len(res.RawText) > maxRawText {
		t.Errorf("RawText length = %d, want <= %d", len(res.RawText), maxRawText)
	}
	// Skills are still extracted from the full document.
	if len(res.Skills) == 0 {
		t.Error("no skills extracted from long document")
	}
}

func TestExtractText_UnknownExtensionDecodesAsText(t *testing.T) {
	got := ExtractText([]byte("plain resume text"), "resume")
	if got != "plain resume text" {
		t.Errorf("ExtractText = %q, want passthrough", got)
	}
}
