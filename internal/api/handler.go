package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gitcompass/engine/internal/guide"
	"github.com/gitcompass/engine/internal/matching"
	"github.com/gitcompass/engine/internal/storage"
)

const maxRequestBodySize = 1 << 20 // 1MB

// Recommender scores repositories against a skill profile.
type Recommender interface {
	Recommend(ctx context.Context, skills []string) []matching.Candidate
}

// GuideGenerator builds contribution guides.
type GuideGenerator interface {
	Generate(ctx context.Context, repo guide.Repository, issue *guide.Issue, skills []guide.SkillRef) guide.Guide
}

// HistoryStore records and lists request events.
type HistoryStore interface {
	SaveEvent(e storage.Event) error
	ListEvents(userID string, limit int) ([]storage.Event, error)
}

type Deps struct {
	Version        string
	Ranker         Recommender
	Guides         GuideGenerator
	History        HistoryStore // optional; if nil, history endpoints return empty
	AllowedOrigins []string
}

// NewHandler returns the HTTP handler serving the engine API.
func NewHandler(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(corsMiddleware(deps.AllowedOrigins))

	r.Get("/health", handleHealth(deps.Version))
	r.Route("/api", func(r chi.Router) {
		r.Post("/extract-skills", handleExtractSkills())
		r.Post("/recommend", handleRecommend(deps))
		r.Post("/generate-guide", handleGenerateGuide(deps))
		r.Get("/history", handleHistory(deps))
	})

	return r
}

func handleHealth(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "ok",
			"service": "GitCompass Engine",
			"version": version,
		})
	}
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	msg := fmt.Sprintf(format, args...)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    errType,
		},
	})
}

func parseIntParam(r *http.Request, key string, defaultVal, maxVal int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return defaultVal
	}
	if maxVal > 0 && v > maxVal {
		return maxVal
	}
	return v
}
