package utils

import (
	"context"
	"fmt"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

func newOpenAIClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// OpenAIBackend implements CompletionBackend with chat completions.
// The API has no top-k knob, so params.TopK is ignored.
type OpenAIBackend struct {
	client *openai.Client
	model  string
}

func NewOpenAIBackend(apiKey, model, baseURL string) *OpenAIBackend {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIBackend{client: newOpenAIClient(apiKey, baseURL), model: model}
}

func (b *OpenAIBackend) Complete(ctx context.Context, prompt string, params GenerationParams) (string, error) {
	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: params.Temperature,
		TopP:        params.TopP,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// OpenAIEmbeddingClient implements EmbeddingClientInterface with the embeddings API.
type OpenAIEmbeddingClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIEmbeddingClient(apiKey, model, baseURL string) *OpenAIEmbeddingClient {
	if model == "" {
		model = string(openai.SmallEmbedding3)
	}
	return &OpenAIEmbeddingClient{client: newOpenAIClient(apiKey, baseURL), model: model}
}

func (c *OpenAIEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(c.model),
	})
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: empty response")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}
