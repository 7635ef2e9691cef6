package services

import (
	"cmp"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"wildsafari/internal/models/db_models"
	"wildsafari/internal/models/request_models"
	"wildsafari/internal/models/response_models"
	"wildsafari/internal/repositories"
	"wildsafari/pkg/utils"
)

const defaultRecommendationCount = 3

type RecommendationServiceInterface interface {
	RecommendTours(ctx context.Context, state request_models.PlannerState, limit int) ([]response_models.TourRecommendation, error)
}

type RecommendationService struct {
	tourRepo      repositories.TourRepository
	embeddingRepo repositories.TourEmbeddingRepository
	embedder      utils.EmbeddingClientInterface
	log           logrus.FieldLogger
}

func NewRecommendationService(
	tourRepo repositories.TourRepository,
	embeddingRepo repositories.TourEmbeddingRepository,
	embedder utils.EmbeddingClientInterface,
	log logrus.FieldLogger,
) RecommendationServiceInterface {
	return &RecommendationService{
		tourRepo:      tourRepo,
		embeddingRepo: embeddingRepo,
		embedder:      embedder,
		log:           log,
	}
}

// RecommendTours ranks catalog tours by cosine similarity between the trip
// preferences and each tour's text. Tour vectors are cached and recomputed
// only when the tour text changes.
func (s *RecommendationService) RecommendTours(ctx context.Context, state request_models.PlannerState, limit int) ([]response_models.TourRecommendation, error) {
	if limit <= 0 {
		limit = defaultRecommendationCount
	}

	tours, err := s.tourRepo.GetTours(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if len(tours) == 0 {
		return []response_models.TourRecommendation{}, nil
	}

	query, err := s.embedder.GetEmbedding(ctx, preferenceText(state))
	if err != nil {
		return nil, fmt.Errorf("embed preferences: %w", err)
	}

	cached, err := s.embeddingRepo.GetTourEmbeddings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	byTour := make(map[string]db_models.TourEmbedding, len(cached))
	for _, e := range cached {
		byTour[e.TourID] = e
	}

	recs := make([]response_models.TourRecommendation, 0, len(tours))
	for _, tour := range tours {
		text := tourText(tour)
		hash := contentHash(text)

		emb, ok := byTour[tour.ID]
		if !ok || emb.ContentHash != hash {
			vec, err := s.embedder.GetEmbedding(ctx, text)
			if err != nil {
				return nil, fmt.Errorf("embed tour %s: %w", tour.ID, err)
			}
			emb = db_models.TourEmbedding{TourID: tour.ID, ContentHash: hash, Embedding: vec}
			if err := s.embeddingRepo.UpsertTourEmbedding(ctx, &emb); err != nil {
				s.log.WithError(err).WithField("tour_id", tour.ID).Warn("could not cache tour embedding")
			}
		}

		recs = append(recs, response_models.TourRecommendation{
			TourID:   tour.ID,
			Title:    tour.Title,
			Duration: tour.Duration,
			Price:    tour.Price,
			Image:    tour.Image,
			Score:    utils.CosineSimilarity(query, emb.Embedding),
		})
	}

	slices.SortStableFunc(recs, func(a, b response_models.TourRecommendation) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

// preferenceText leaves out the trip length: every tour text carries a
// duration, so "days" would match all of them equally.
func preferenceText(state request_models.PlannerState) string {
	parts := append([]string{}, state.Interests...)
	parts = append(parts, state.Budget)
	return strings.Join(parts, " ")
}

func tourText(t db_models.TourPackage) string {
	parts := []string{t.Title, t.Duration, t.Description, t.FullDescription}
	parts = append(parts, t.Highlights...)
	for _, d := range t.DailyItinerary {
		parts = append(parts, d.Title)
	}
	return strings.Join(parts, " ")
}

func contentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
