package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/gitcompass/engine/internal/guide"
	"github.com/gitcompass/engine/internal/storage"
)

type guideRequest struct {
	Repository guide.Repository `json:"repository"`
	Issue      *guide.Issue     `json:"issue"`
	UserSkills []guide.SkillRef `json:"userSkills"`
	UserID     string           `json:"userId"`
}

type guideResponse struct {
	Guide guide.Guide `json:"guide"`
}

func handleGenerateGuide(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req guideRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}
		if req.Repository.FullName == "" && req.Repository.Name == "" {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "repository is required")
			return
		}

		g := deps.Guides.Generate(r.Context(), req.Repository, req.Issue, req.UserSkills)

		preview := g.Preview()
		slog.Debug("guide generated",
			"repo", req.Repository.FullName,
			"steps", preview.StepsCount,
		)
		recordGuide(deps.History, req, g)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(guideResponse{Guide: g})
	}
}

func recordGuide(history HistoryStore, req guideRequest, g guide.Guide) {
	if history == nil {
		return
	}
	query := req.Repository.FullName
	if req.Issue != nil && req.Issue.Number != 0 {
		query = fmt.Sprintf("%s#%d", query, req.Issue.Number)
	}
	event := storage.Event{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Kind:      storage.KindGuide,
		Query:     query,
		TopResult: g.Summary,
	}
	if err := history.SaveEvent(event); err != nil {
		slog.Warn("failed to record guide event", "error", err)
	}
}
