package ai

import "context"

// MockAssistant records prompts and replies with a fixed string. Used in
// tests and local development without an upstream model.
type MockAssistant struct {
	Reply   string
	Err     error
	Prompts []string
}

func (m *MockAssistant) Ask(ctx context.Context, prompt string, history []ChatMessage) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}
