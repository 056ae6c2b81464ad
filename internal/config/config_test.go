package config

import (
	"testing"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

// TestDefaults verifies all default values are applied on an empty environment.
func TestDefaults(t *testing.T) {
	cfg, err := loadFromEnv(envMap(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.GitHub.BaseURL != "https://api.github.com" {
		t.Errorf("GitHub.BaseURL = %q, want %q", cfg.GitHub.BaseURL, "https://api.github.com")
	}
	if cfg.GitHub.Token != "" {
		t.Errorf("GitHub.Token = %q, want empty", cfg.GitHub.Token)
	}
	if cfg.Ollama.BaseURL != "http://localhost:11434" {
		t.Errorf("Ollama.BaseURL = %q, want %q", cfg.Ollama.BaseURL, "http://localhost:11434")
	}
	if cfg.Ollama.EmbedModel != "nomic-embed-text" {
		t.Errorf("Ollama.EmbedModel = %q, want %q", cfg.Ollama.EmbedModel, "nomic-embed-text")
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Gemini.Model = %q, want %q", cfg.Gemini.Model, "gemini-2.5-flash")
	}
	if len(cfg.Server.AllowedOrigins) != 2 {
		t.Errorf("Server.AllowedOrigins = %v, want 2 entries", cfg.Server.AllowedOrigins)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
}

// TestEnvOverride verifies that environment variables override defaults.
func TestEnvOverride(t *testing.T) {
	cfg, err := loadFromEnv(envMap(map[string]string{
		"PORT":                    "9100",
		"GITHUB_TOKEN":            "ghp_test",
		"GEMINI_API_KEY":          "gm_test",
		"COMPASS_GITHUB_BASE_URL": "http://127.0.0.1:9999/",
		"COMPASS_EMBED_MODEL":     "all-minilm",
		"COMPASS_ALLOWED_ORIGINS": "http://a.test, http://b.test",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("Server.Port = %d, want 9100", cfg.Server.Port)
	}
	if cfg.GitHub.Token != "ghp_test" {
		t.Errorf("GitHub.Token = %q, want %q", cfg.GitHub.Token, "ghp_test")
	}
	if cfg.Gemini.APIKey != "gm_test" {
		t.Errorf("Gemini.APIKey = %q, want %q", cfg.Gemini.APIKey, "gm_test")
	}
	if cfg.GitHub.BaseURL != "http://127.0.0.1:9999" {
		t.Errorf("GitHub.BaseURL = %q, want trailing slash trimmed", cfg.GitHub.BaseURL)
	}
	if cfg.Ollama.EmbedModel != "all-minilm" {
		t.Errorf("Ollama.EmbedModel = %q, want %q", cfg.Ollama.EmbedModel, "all-minilm")
	}
	want := []string{"http://a.test", "http://b.test"}
	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[0] != want[0] || cfg.Server.AllowedOrigins[1] != want[1] {
		t.Errorf("Server.AllowedOrigins = %v, want %v", cfg.Server.AllowedOrigins, want)
	}
}

// TestInvalidPort verifies a malformed PORT is reported as an error.
func TestInvalidPort(t *testing.T) {
	_, err := loadFromEnv(envMap(map[string]string{"PORT": "not-a-number"}))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
