// Package llm selects and drives the remote completion API for one
// invocation. Each provider issues a single blocking chat request and
// returns the text of the first choice.
package llm

import (
	"context"

	"github.com/llmpipe/llmpipe/internal/config"
)

// systemMessage is sent with every completion request regardless of
// provider.
const systemMessage = "You are a helpful assistant. If the user merely asked a question, do not use a code block. If the user has asked for something written, put it in a code block (```)."

// defaultMaxTokens caps the completion length on every path except GPT-4,
// which is left at the API's own default.
const defaultMaxTokens = 4000

const (
	claudeModel  = "claude-3-haiku-20240307"
	gpt4Model    = "gpt-4-0125-preview"
	mixtralModel = "mixtral-8x7b-32768"
	llamaModel   = "llama3-70b-8192"
)

// Provider is a single remote completion API.
type Provider interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewProvider builds the provider for a resolved route.
func NewProvider(route Route, cfg *config.Config) Provider {
	switch route.Kind {
	case KindClaude:
		return NewAnthropicProvider(cfg.AnthropicAPIKey)
	case KindGPT4:
		return NewGPT4Provider()
	default:
		return NewGroqProvider(cfg.GroqEndpoint, cfg.GroqAPIKey, route.Model)
	}
}
