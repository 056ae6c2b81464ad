package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gitcompass/engine/internal/api"
	"github.com/gitcompass/engine/internal/config"
	"github.com/gitcompass/engine/internal/github"
	"github.com/gitcompass/engine/internal/guide"
	"github.com/gitcompass/engine/internal/matching"
	"github.com/gitcompass/engine/internal/ollama"
	"github.com/gitcompass/engine/internal/storage"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the engine server (foreground)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func runServer() error {
	fmt.Fprintf(os.Stderr, "compass-engine version %s\n", version)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize structured logging.
	logLevel := slog.LevelInfo
	if strings.EqualFold(cfg.Log.Level, "debug") {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Probe the local embedding engine. A missing engine is not fatal;
	// ranking degrades to keyword matching.
	ollamaClient := ollama.New(cfg.Ollama.BaseURL)
	embeddingsUp := ollama.CheckReady(ctx, ollamaClient, cfg.Ollama.EmbedModel, os.Stderr)

	// Open storage.
	store, err := storage.Open(cfg.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: closing storage: %v\n", err)
		}
	}()

	// Wire the recommendation pipeline.
	denylist := github.DefaultDenylist()
	if cfg.GitHub.DenylistFile != "" {
		denylist, err = github.LoadDenylist(cfg.GitHub.DenylistFile)
		if err != nil {
			return fmt.Errorf("loading denylist: %w", err)
		}
	}
	searcher := github.NewClient(cfg.GitHub.BaseURL, cfg.GitHub.Token, denylist)
	if cfg.GitHub.Token == "" {
		printWarning("GITHUB_TOKEN not set, using unauthenticated search requests")
	}

	var vec matching.Vectorizer
	if embeddingsUp {
		vec = matching.NewEmbedder(ollamaClient, cfg.Ollama.EmbedModel)
	}
	ranker := matching.NewRanker(searcher, vec)

	// Wire the guide generator.
	var llm guide.TextGenerator
	if cfg.Gemini.APIKey != "" {
		llm = guide.NewGeminiGenerator(cfg.Gemini.APIKey, cfg.Gemini.Model)
	} else {
		printWarning("GEMINI_API_KEY not set, serving template guides")
	}
	guides := guide.NewGenerator(llm)

	handler := api.NewHandler(api.Deps{
		Version:        version,
		Ranker:         ranker,
		Guides:         guides,
		History:        store,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Start server in a goroutine.
	errCh := make(chan error, 1)
	go func() {
		printSuccess("GitCompass Engine listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for signal or server error.
	select {
	case <-ctx.Done():
		fmt.Fprintln(os.Stderr, "shutting down...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	// Graceful shutdown with timeout.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
