package services

import (
	"context"
	"fmt"

	"wildsafari/internal/models/db_models"
	"wildsafari/internal/models/request_models"
	"wildsafari/internal/models/response_models"
	"wildsafari/internal/repositories"
	"wildsafari/pkg/utils"
)

type DestinationServiceInterface interface {
	ListDestinations(ctx context.Context, q request_models.ListQuery) ([]db_models.Destination, error)
	GetDestination(ctx context.Context, id string) (*response_models.DestinationDetail, error)
	CreateDestination(ctx context.Context, req request_models.DestinationRequest) ([]db_models.Destination, error)
	UpdateDestination(ctx context.Context, id string, req request_models.DestinationRequest) ([]db_models.Destination, error)
	DeleteDestination(ctx context.Context, id string) ([]db_models.Destination, error)
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepository
	tourRepo        repositories.TourRepository
}

func NewDestinationService(destinationRepo repositories.DestinationRepository, tourRepo repositories.TourRepository) DestinationServiceInterface {
	return &DestinationService{
		destinationRepo: destinationRepo,
		tourRepo:        tourRepo,
	}
}

var destinationListSpec = listSpec[db_models.Destination]{
	text: func(d db_models.Destination) []string {
		return append([]string{d.Name, d.Description}, d.Highlights...)
	},
	sorts: map[string]func(a, b db_models.Destination) int{
		"name":          byString(func(d db_models.Destination) string { return d.Name }),
		"package_count": byNumber(func(d db_models.Destination) int { return d.PackageCount }),
		"created_at":    byNumber(func(d db_models.Destination) int64 { return d.CreatedAt.UnixNano() }),
	},
}

func (s *DestinationService) ListDestinations(ctx context.Context, q request_models.ListQuery) ([]db_models.Destination, error) {
	destinations, err := s.destinationRepo.GetDestinations(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return destinationListSpec.apply(destinations, q), nil
}

// GetDestination returns the destination with the tours that reference it.
func (s *DestinationService) GetDestination(ctx context.Context, id string) (*response_models.DestinationDetail, error) {
	destination, err := s.destinationRepo.GetDestinationByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if destination == nil {
		return nil, utils.ErrRecordNotFound
	}

	tours, err := s.tourRepo.GetTours(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	linked := make([]db_models.TourPackage, 0)
	for _, t := range tours {
		if t.DestinationID == id {
			linked = append(linked, t)
		}
	}

	return &response_models.DestinationDetail{Destination: *destination, Tours: linked}, nil
}

func (s *DestinationService) CreateDestination(ctx context.Context, req request_models.DestinationRequest) ([]db_models.Destination, error) {
	d := destinationFromRequest(req)
	destinations, err := s.destinationRepo.AddDestination(ctx, &d)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return destinations, nil
}

func (s *DestinationService) UpdateDestination(ctx context.Context, id string, req request_models.DestinationRequest) ([]db_models.Destination, error) {
	d := destinationFromRequest(req)
	d.ID = id
	destinations, err := s.destinationRepo.UpdateDestination(ctx, &d)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return destinations, nil
}

func (s *DestinationService) DeleteDestination(ctx context.Context, id string) ([]db_models.Destination, error) {
	destinations, err := s.destinationRepo.DeleteDestination(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return destinations, nil
}

func destinationFromRequest(req request_models.DestinationRequest) db_models.Destination {
	image := req.Image
	if image == "" {
		image = db_models.DefaultDestinationImage
	}
	return db_models.Destination{
		Name:         req.Name,
		Image:        image,
		Description:  req.Description,
		PackageCount: req.PackageCount,
		Price:        req.Price,
		Highlights:   db_models.StringList(req.Highlights),
	}
}
