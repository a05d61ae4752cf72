package ai

import "context"

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Assistant is an OpenAI-compatible chat completion client. Implementations
// must honor ctx cancellation; callers treat any error as a cue to fall back
// to the canned response text.
type Assistant interface {
	Ask(ctx context.Context, prompt string, history []ChatMessage) (string, error)
}
