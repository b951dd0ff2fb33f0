package mocks

import "context"

type MockAssistant struct {
	AskFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *MockAssistant) Ask(ctx context.Context, prompt string) (string, error) {
	return m.AskFunc(ctx, prompt)
}
