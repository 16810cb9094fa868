package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIProvider talks to any OpenAI-shaped chat-completions endpoint. Both
// GPT-4 and the Groq-compatible endpoint go through it; only the base URL,
// credentials and token ceiling differ.
type OpenAIProvider struct {
	client    openai.Client
	name      string
	model     string
	maxTokens int64
}

// NewGroqProvider targets the Groq-compatible endpoint with the given model
// and the shared 4000-token ceiling. An empty endpoint leaves the client on
// its default base URL.
func NewGroqProvider(endpoint, apiKey, model string, opts ...option.RequestOption) *OpenAIProvider {
	clientOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if endpoint != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(endpoint))
	}
	clientOpts = append(clientOpts, opts...)

	return &OpenAIProvider{
		client:    openai.NewClient(clientOpts...),
		name:      "groq",
		model:     model,
		maxTokens: defaultMaxTokens,
	}
}

// NewGPT4Provider targets the OpenAI API with no token ceiling. The SDK
// picks up OPENAI_API_KEY from the environment on its own.
func NewGPT4Provider(opts ...option.RequestOption) *OpenAIProvider {
	return &OpenAIProvider{
		client: openai.NewClient(opts...),
		name:   "openai",
		model:  gpt4Model,
	}
}

func (p *OpenAIProvider) Name() string { return p.name }

// Complete issues one synchronous chat-completion request and returns the
// content of the first choice.
func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemMessage),
			openai.UserMessage(prompt),
		},
	}
	if p.maxTokens > 0 {
		params.MaxTokens = openai.Int(p.maxTokens)
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%s completion: %w", p.name, err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%s completion: response contained no choices", p.name)
	}
	return completion.Choices[0].Message.Content, nil
}
