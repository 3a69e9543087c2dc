package service

import "context"

// AIClient is the interface for language-model providers
type AIClient interface {
	// Complete sends one system + user exchange and returns the raw reply text.
	// The reply is expected to be a JSON object.
	Complete(ctx context.Context, system, user string) (string, error)
}

// Ensure OpenAIClient implements AIClient
var _ AIClient = (*OpenAIClient)(nil)
