package ollama

import (
	"context"
	"fmt"
	"io"
)

// CheckReady probes the Ollama server and the embed model, writing a status
// line for each to w. It never returns an error: a missing server or model
// only disables semantic scoring, so startup must not fail on it. The
// returned bool reports whether embeddings will be available.
func CheckReady(ctx context.Context, c *Client, embedModel string, w io.Writer) bool {
	if !c.IsRunning(ctx) {
		fmt.Fprintf(w, "ollama: not running, semantic matching disabled (keyword fallback active)\n")
		return false
	}

	if !c.HasModel(ctx, embedModel) {
		fmt.Fprintf(w, "model %s: missing, semantic matching disabled (pull it with: ollama pull %s)\n", embedModel, embedModel)
		return false
	}

	fmt.Fprintf(w, "model %s: ready\n", embedModel)
	return true
}
