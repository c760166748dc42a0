package intent

import (
	"context"

	"trimly/models"
)

// LLMClient is the capability interface for the chat-completion backend.
// Implementations must honor ctx cancellation and return an error on any
// transport failure; callers degrade to deterministic extraction when the
// client fails or is absent.
type LLMClient interface {
	Complete(ctx context.Context, prompt string, history []models.Turn) (string, error)
}
