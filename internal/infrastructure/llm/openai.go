package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/samber/lo"
	"github.com/sashabaranov/go-openai"

	"github.com/eslsoft/wordlist/internal/entity"
)

// OpenAIClient talks to an OpenAI-compatible chat completions endpoint.
type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAIClient creates a client; an empty baseURL keeps the public OpenAI endpoint.
func NewOpenAIClient(apiKey, baseURL string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return &OpenAIClient{client: openai.NewClientWithConfig(cfg)}
}

func (c *OpenAIClient) Complete(ctx context.Context, req entity.CompletionRequest) (string, error) {
	messages := lo.Map(req.Messages, func(m entity.ChatMessage, _ int) openai.ChatCompletionMessage {
		return openai.ChatCompletionMessage{Role: string(m.Role), Content: m.Content}
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: float32(req.Temperature),
	})
	if err != nil {
		return "", classifyOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", entity.NewEnrichmentError(entity.MalformedReply, errEmptyCompletion)
	}
	return resp.Choices[0].Message.Content, nil
}

func classifyOpenAIError(err error) *entity.EnrichmentError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return statusError(apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return statusError(reqErr.HTTPStatusCode, err)
	}
	return transportError(err)
}
