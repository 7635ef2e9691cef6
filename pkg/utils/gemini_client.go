package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiBackend implements CompletionBackend with Google's Gemini models.
type GeminiBackend struct {
	client *genai.Client
	model  string
}

func NewGeminiBackend(ctx context.Context, apiKey, model string) (*GeminiBackend, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiBackend{client: client, model: model}, nil
}

func (b *GeminiBackend) Complete(ctx context.Context, prompt string, params GenerationParams) (string, error) {
	m := b.client.GenerativeModel(b.model)
	m.SetTemperature(params.Temperature)
	m.SetTopK(params.TopK)
	m.SetTopP(params.TopP)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}

	return geminiText(resp), nil
}

func (b *GeminiBackend) Close() error {
	return b.client.Close()
}

// geminiText concatenates the text parts of the first candidate.
func geminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String()
}
