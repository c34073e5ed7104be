package facades

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"
	"github.com/sbilibin2017/idea2context/internal/logger"
)

// Fixed generation parameters.
const (
	completionMaxTokens   = 2000
	completionTemperature = 0.7
)

// ErrEmptyCompletion is returned when the API answers without any choice.
var ErrEmptyCompletion = errors.New("generation API returned no choices")

// ChatCompletionCreator is the part of the OpenAI client the facade uses.
type ChatCompletionCreator interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAICompletionFacade implements text completion over the OpenAI chat API.
type OpenAICompletionFacade struct {
	client ChatCompletionCreator
	model  string
}

// NewOpenAICompletionFacade creates a facade with an OpenAI client.
// An empty baseURL keeps the library default endpoint.
func NewOpenAICompletionFacade(apiKey, baseURL, model string) *OpenAICompletionFacade {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return NewOpenAICompletionFacadeWithClient(openai.NewClientWithConfig(cfg), model)
}

// NewOpenAICompletionFacadeWithClient creates a facade around an existing client.
func NewOpenAICompletionFacadeWithClient(client ChatCompletionCreator, model string) *OpenAICompletionFacade {
	return &OpenAICompletionFacade{client: client, model: model}
}

// Complete sends the system and user prompts and returns the first choice's content.
func (f *OpenAICompletionFacade) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := f.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: f.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		MaxTokens:   completionMaxTokens,
		Temperature: completionTemperature,
	})
	if err != nil {
		logger.Log.Errorw("chat completion request failed", "model", f.model, "error", err)
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	logger.Log.Infow("chat completion received",
		"model", resp.Model,
		"finish_reason", resp.Choices[0].FinishReason,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
	)

	return resp.Choices[0].Message.Content, nil
}
