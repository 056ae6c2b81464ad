package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/gitcompass/engine/internal/matching"
	"github.com/gitcompass/engine/internal/storage"
)

type recommendRequest struct {
	Skills []string `json:"skills"`
	UserID string   `json:"userId"`
}

type recommendResponse struct {
	Recommendations []matching.Candidate `json:"recommendations"`
}

func handleRecommend(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req recommendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}

		recs := deps.Ranker.Recommend(r.Context(), req.Skills)
		if recs == nil {
			recs = []matching.Candidate{}
		}

		recordRecommendation(deps.History, req, recs)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(recommendResponse{Recommendations: recs})
	}
}

func recordRecommendation(history HistoryStore, req recommendRequest, recs []matching.Candidate) {
	if history == nil || len(recs) == 0 {
		return
	}
	event := storage.Event{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Kind:      storage.KindRecommend,
		Query:     strings.Join(req.Skills, ", "),
		TopResult: recs[0].FullName,
	}
	if err := history.SaveEvent(event); err != nil {
		slog.Warn("failed to record recommendation event", "error", err)
	}
}
