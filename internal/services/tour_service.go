package services

import (
	"context"
	"fmt"

	"gorm.io/datatypes"

	"wildsafari/internal/models/db_models"
	"wildsafari/internal/models/request_models"
	"wildsafari/internal/repositories"
	"wildsafari/pkg/utils"
)

type TourServiceInterface interface {
	ListTours(ctx context.Context, q request_models.ListQuery) ([]db_models.TourPackage, error)
	GetTour(ctx context.Context, id string) (*db_models.TourPackage, error)
	CreateTour(ctx context.Context, req request_models.TourRequest) ([]db_models.TourPackage, error)
	UpdateTour(ctx context.Context, id string, req request_models.TourRequest) ([]db_models.TourPackage, error)
	DeleteTour(ctx context.Context, id string) ([]db_models.TourPackage, error)
}

type TourService struct {
	tourRepo      repositories.TourRepository
	embeddingRepo repositories.TourEmbeddingRepository
}

func NewTourService(tourRepo repositories.TourRepository, embeddingRepo repositories.TourEmbeddingRepository) TourServiceInterface {
	return &TourService{
		tourRepo:      tourRepo,
		embeddingRepo: embeddingRepo,
	}
}

var tourListSpec = listSpec[db_models.TourPackage]{
	text: func(t db_models.TourPackage) []string {
		return append([]string{t.Title, t.Description, t.DestinationID}, t.Highlights...)
	},
	status: func(t db_models.TourPackage) string {
		if t.Featured {
			return "featured"
		}
		return "standard"
	},
	sorts: map[string]func(a, b db_models.TourPackage) int{
		"title":      byString(func(t db_models.TourPackage) string { return t.Title }),
		"price":      byNumber(func(t db_models.TourPackage) float64 { return priceAmount(t.Price) }),
		"duration":   byNumber(func(t db_models.TourPackage) int { return durationDays(t.Duration) }),
		"created_at": byNumber(func(t db_models.TourPackage) int64 { return t.CreatedAt.UnixNano() }),
	},
}

func (s *TourService) ListTours(ctx context.Context, q request_models.ListQuery) ([]db_models.TourPackage, error) {
	tours, err := s.tourRepo.GetTours(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return tourListSpec.apply(tours, q), nil
}

func (s *TourService) GetTour(ctx context.Context, id string) (*db_models.TourPackage, error) {
	tour, err := s.tourRepo.GetTourByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if tour == nil {
		return nil, utils.ErrRecordNotFound
	}
	return tour, nil
}

func (s *TourService) CreateTour(ctx context.Context, req request_models.TourRequest) ([]db_models.TourPackage, error) {
	tour := tourFromRequest(req)
	tours, err := s.tourRepo.AddTour(ctx, &tour)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return tours, nil
}

// UpdateTour replaces every editable field; an unknown id leaves the catalog unchanged.
func (s *TourService) UpdateTour(ctx context.Context, id string, req request_models.TourRequest) ([]db_models.TourPackage, error) {
	tour := tourFromRequest(req)
	tour.ID = id
	tours, err := s.tourRepo.UpdateTour(ctx, &tour)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return tours, nil
}

func (s *TourService) DeleteTour(ctx context.Context, id string) ([]db_models.TourPackage, error) {
	tours, err := s.tourRepo.DeleteTour(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if s.embeddingRepo != nil {
		if err := s.embeddingRepo.DeleteTourEmbedding(ctx, id); err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
	}
	return tours, nil
}

func tourFromRequest(req request_models.TourRequest) db_models.TourPackage {
	days := make(datatypes.JSONSlice[db_models.ItineraryDay], 0, len(req.DailyItinerary))
	for _, d := range req.DailyItinerary {
		days = append(days, db_models.ItineraryDay{
			Day:           d.Day,
			Title:         d.Title,
			Description:   d.Description,
			Accommodation: d.Accommodation,
			Meals:         d.Meals,
		})
	}

	return db_models.TourPackage{
		Title:           req.Title,
		Duration:        req.Duration,
		Price:           req.Price,
		Image:           req.Image,
		Gallery:         db_models.StringList(req.Gallery),
		Description:     req.Description,
		FullDescription: req.FullDescription,
		Highlights:      db_models.StringList(req.Highlights),
		DestinationID:   req.DestinationID,
		DailyItinerary:  days,
		Inclusions:      db_models.StringList(req.Inclusions),
		Exclusions:      db_models.StringList(req.Exclusions),
		Featured:        req.Featured,
	}
}
