package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	GitHub  GitHubConfig
	Ollama  OllamaConfig
	Gemini  GeminiConfig
	Storage StorageConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

type GitHubConfig struct {
	BaseURL string
	Token   string
	// DenylistFile optionally overrides the embedded owner denylist.
	DenylistFile string
}

type OllamaConfig struct {
	BaseURL    string
	EmbedModel string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type StorageConfig struct {
	DataDir string
}

type LogConfig struct {
	Level string
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port: 8000,
			AllowedOrigins: []string{
				"http://localhost:5000",
				"http://localhost:5173",
			},
		},
		GitHub: GitHubConfig{
			BaseURL: "https://api.github.com",
		},
		Ollama: OllamaConfig{
			BaseURL:    "http://localhost:11434",
			EmbedModel: "nomic-embed-text",
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.5-flash",
		},
		Storage: StorageConfig{
			DataDir: defaultDataDir(),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func defaultDataDir() string {
	dir := os.Getenv("XDG_DATA_HOME")
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".local", "share")
		} else {
			return "gitcompass-data"
		}
	}
	return filepath.Join(dir, "gitcompass")
}

// Load reads configuration from the process environment, applying defaults
// for anything unset. A .env file in the working directory is honored if
// present. Missing GitHub or Gemini credentials are not an error: the
// affected components degrade to their fallback paths.
func Load() (Config, error) {
	_ = godotenv.Load()
	return loadFromEnv(os.Getenv)
}

func loadFromEnv(getenv func(string) string) (Config, error) {
	cfg := defaults()

	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	if v := getenv("GITHUB_TOKEN"); v != "" {
		cfg.GitHub.Token = v
	}
	if v := getenv("GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := getenv("COMPASS_GITHUB_BASE_URL"); v != "" {
		cfg.GitHub.BaseURL = strings.TrimRight(v, "/")
	}
	if v := getenv("COMPASS_DENYLIST_FILE"); v != "" {
		cfg.GitHub.DenylistFile = v
	}
	if v := getenv("COMPASS_OLLAMA_BASE_URL"); v != "" {
		cfg.Ollama.BaseURL = v
	}
	if v := getenv("COMPASS_EMBED_MODEL"); v != "" {
		cfg.Ollama.EmbedModel = v
	}
	if v := getenv("COMPASS_GEMINI_MODEL"); v != "" {
		cfg.Gemini.Model = v
	}
	if v := getenv("COMPASS_DATA_DIR"); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := getenv("COMPASS_ALLOWED_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.Server.AllowedOrigins = origins
	}
	if v := getenv("COMPASS_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	return cfg, nil
}
