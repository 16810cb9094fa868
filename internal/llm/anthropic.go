package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicProvider drives the Claude Messages API.
type AnthropicProvider struct {
	client anthropic.Client
	model  string
}

// NewAnthropicProvider builds a Claude provider from the API key held in
// configuration.
func NewAnthropicProvider(apiKey string, opts ...option.RequestOption) *AnthropicProvider {
	clientOpts := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &AnthropicProvider{
		client: anthropic.NewClient(clientOpts...),
		model:  claudeModel,
	}
}

func (p *AnthropicProvider) Name() string { return "anthropic" }

// Complete issues one synchronous Messages request and returns the text of
// the first content block.
func (p *AnthropicProvider) Complete(ctx context.Context, prompt string) (string, error) {
	message, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: defaultMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemMessage},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic completion: %w", err)
	}
	if len(message.Content) == 0 {
		return "", fmt.Errorf("anthropic completion: response contained no content")
	}
	return message.Content[0].Text, nil
}
