package planner_fx

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"wildsafari/internal/config"
	"wildsafari/internal/services"
	mem "wildsafari/pkg/memcache"
	"wildsafari/pkg/utils"
)

var Module = fx.Provide(
	ProvideItineraryGenerator,
	ProvideEmbeddingClient,
	services.NewRecommendationService,
	ProvidePlannerService)

const hashEmbeddingDimensions = 256

// ProvideItineraryGenerator builds the generation client for AI_PROVIDER.
// Without an API key the client is still provided and every call reports
// utils.ErrMissingAPIKey, so the rest of the site keeps working.
func ProvideItineraryGenerator(lc fx.Lifecycle, cfg *config.Config, log logrus.FieldLogger) (utils.ItineraryGenerator, error) {
	ai := cfg.AI
	params := utils.GenerationParams{Temperature: ai.Temperature, TopK: ai.TopK, TopP: ai.TopP}
	apiKey := ai.APIKey()

	if strings.TrimSpace(apiKey) == "" {
		log.WithField("provider", ai.Provider).Warn("no API key configured, the itinerary planner is unavailable")
		return utils.NewGenerationClient(ai.Provider, "", nil, params, log), nil
	}

	var backend utils.CompletionBackend
	switch ai.Provider {
	case "openai":
		backend = utils.NewOpenAIBackend(apiKey, ai.OpenAIModel, ai.OpenAIBaseURL)
	default:
		gemini, err := utils.NewGeminiBackend(context.Background(), apiKey, ai.GeminiModel)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error { return gemini.Close() },
		})
		backend = gemini
	}

	log.WithField("provider", ai.Provider).Info("itinerary generator ready")
	return utils.NewGenerationClient(ai.Provider, apiKey, backend, params, log), nil
}

// ProvideEmbeddingClient uses OpenAI embeddings when configured with a key and
// the local hashing vectorizer otherwise.
func ProvideEmbeddingClient(cfg *config.Config, log logrus.FieldLogger) utils.EmbeddingClientInterface {
	if cfg.AI.EmbeddingProvider == "openai" {
		if cfg.AI.OpenAIAPIKey != "" {
			log.WithField("model", cfg.AI.EmbeddingModel).Info("using OpenAI embeddings")
			return utils.NewOpenAIEmbeddingClient(cfg.AI.OpenAIAPIKey, cfg.AI.EmbeddingModel, cfg.AI.OpenAIBaseURL)
		}
		log.Warn("EMBEDDING_PROVIDER=openai without OPENAI_API_KEY, using hash embeddings")
	}
	return utils.NewHashEmbeddingClient(hashEmbeddingDimensions)
}

func ProvidePlannerService(
	generator utils.ItineraryGenerator,
	recommender services.RecommendationServiceInterface,
	sessions mem.SessionStore,
	mail services.IMailService,
	cfg *config.Config,
	log logrus.FieldLogger,
) services.PlannerServiceInterface {
	return services.NewPlannerService(generator, recommender, sessions, mail, cfg.Planner.SessionTTL, log)
}
