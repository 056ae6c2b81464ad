package api

import (
	"encoding/json"
	"net/http"
	"time"
)

type historyEvent struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Kind      string    `json:"kind"`
	Query     string    `json:"query"`
	TopResult string    `json:"topResult"`
	CreatedAt time.Time `json:"createdAt"`
}

type historyResponse struct {
	Events []historyEvent `json:"events"`
}

// handleHistory lists recent recommendation and guide requests, optionally
// narrowed to one user via the userId query parameter.
func handleHistory(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := historyResponse{Events: []historyEvent{}}

		if deps.History != nil {
			userID := r.URL.Query().Get("userId")
			limit := parseIntParam(r, "limit", 20, 100)

			events, err := deps.History.ListEvents(userID, limit)
			if err != nil {
				httpError(w, http.StatusInternalServerError, "api_error", "failed to list history: %v", err)
				return
			}
			for _, e := range events {
				resp.Events = append(resp.Events, historyEvent{
					ID:        e.ID,
					UserID:    e.UserID,
					Kind:      e.Kind,
					Query:     e.Query,
					TopResult: e.TopResult,
					CreatedAt: e.CreatedAt,
				})
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}
