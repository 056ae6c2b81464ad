package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gitcompass/engine/internal/resume"
	"github.com/gitcompass/engine/internal/skills"
)

const maxUploadSize = 10 << 20 // 10MB

var allowedResumeTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

type extractSkillsResponse struct {
	Skills  []skills.Skill `json:"skills"`
	RawText string         `json:"rawText"`
}

// handleExtractSkills accepts a resume upload as multipart form data under
// the "file" field and returns the extracted skill profile.
func handleExtractSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		defer r.Body.Close()

		file, header, err := r.FormFile("file")
		if err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "no file provided")
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if _, ok := allowedResumeTypes[contentType]; !ok {
			httpError(w, http.StatusBadRequest, "invalid_request_error",
				"Invalid file type. Only PDF and DOC/DOCX are allowed.")
			return
		}

		content, err := io.ReadAll(file)
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "reading upload: %v", err)
			return
		}

		result := resume.Process(content, header.Filename)
		if result.Skills == nil {
			result.Skills = []skills.Skill{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(extractSkillsResponse{
			Skills:  result.Skills,
			RawText: result.RawText,
		})
	}
}
