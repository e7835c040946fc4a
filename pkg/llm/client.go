// Package llm defines the language-model client contract consumed by agent
// runtimes, plus the gRPC implementation that talks to the model service.
package llm

import (
	"context"
	"time"
)

// EmbeddingDim is the vector size returned by Embed.
const EmbeddingDim = 1536

// Client is the capability agents consume. Implementations must be safe for
// concurrent use and honor the construction-time timeout on every call.
type Client interface {
	// Think sends a prompt with optional structured context and returns the
	// model's text response.
	Think(ctx context.Context, prompt string, promptCtx map[string]any) (string, error)

	// Embed returns an embedding vector for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Options configure client construction.
type Options struct {
	// Timeout bounds every call. Defaults to 60s.
	Timeout time.Duration

	// Model overrides the service-side default model.
	Model string
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return 60 * time.Second
	}
	return o.Timeout
}
