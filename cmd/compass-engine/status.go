package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/gitcompass/engine/internal/config"
	"github.com/gitcompass/engine/internal/ollama"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show engine status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showStatus(cmd)
	},
}

func showStatus(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		// Still show partial status even if config fails.
		printError("config error: %v", err)
		return nil
	}

	client := &http.Client{Timeout: 2 * time.Second}

	resp, err := client.Get(fmt.Sprintf("http://127.0.0.1:%d/health", cfg.Server.Port))
	if err != nil {
		printStatus("Server", "stopped")
	} else {
		resp.Body.Close()
		if resp.StatusCode == http.StatusOK {
			printStatus("Server", "running on port %d", cfg.Server.Port)
		} else {
			printStatus("Server", "error (HTTP %d)", resp.StatusCode)
		}
	}

	ollamaClient := ollama.New(cfg.Ollama.BaseURL)
	if ollamaClient.IsRunning(cmd.Context()) {
		printStatus("Ollama", "running at %s", cfg.Ollama.BaseURL)
	} else {
		printStatus("Ollama", "not running (keyword matching only)")
	}
	printStatus("Embed model", "%s", cfg.Ollama.EmbedModel)

	if cfg.GitHub.Token != "" {
		printStatus("GitHub", "authenticated")
	} else {
		printStatus("GitHub", "unauthenticated (low rate limit)")
	}
	if cfg.Gemini.APIKey != "" {
		printStatus("Gemini", "configured (%s)", cfg.Gemini.Model)
	} else {
		printStatus("Gemini", "not configured (template guides)")
	}

	printStatus("Data dir", "%s", cfg.Storage.DataDir)
	return nil
}
