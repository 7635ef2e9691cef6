package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// FallbackItineraryText is returned when the provider answers with no text.
const FallbackItineraryText = "I couldn't generate an itinerary at this time. Please try again."

type GenerationParams struct {
	Temperature float32
	TopK        int32
	TopP        float32
}

// DefaultGenerationParams are the sampling parameters used for itineraries.
var DefaultGenerationParams = GenerationParams{Temperature: 0.7, TopK: 40, TopP: 0.95}

// CompletionBackend issues exactly one text completion request to a provider.
type CompletionBackend interface {
	Complete(ctx context.Context, prompt string, params GenerationParams) (string, error)
}

type ItineraryGenerator interface {
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
}

// GenerationClient guards a CompletionBackend with the API key precondition,
// the empty-response fallback and error normalization.
type GenerationClient struct {
	provider string
	apiKey   string
	backend  CompletionBackend
	params   GenerationParams
	log      logrus.FieldLogger
}

func NewGenerationClient(provider, apiKey string, backend CompletionBackend, params GenerationParams, log logrus.FieldLogger) *GenerationClient {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &GenerationClient{
		provider: provider,
		apiKey:   apiKey,
		backend:  backend,
		params:   params,
		log:      log,
	}
}

func (g *GenerationClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(g.apiKey) == "" || g.backend == nil {
		return "", fmt.Errorf("%w: set API_KEY for provider %s", ErrMissingAPIKey, g.provider)
	}

	text, err := g.backend.Complete(ctx, prompt, g.params)
	if err != nil {
		g.log.WithError(err).WithField("provider", g.provider).Error("itinerary generation failed")
		if errors.Is(err, context.Canceled) {
			return "", errors.Join(ErrGenerationFailed, context.Canceled)
		}
		return "", ErrGenerationFailed
	}

	if strings.TrimSpace(text) == "" {
		g.log.WithField("provider", g.provider).Warn("provider returned an empty itinerary")
		return FallbackItineraryText, nil
	}

	return text, nil
}
