package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wildsafari/internal/models/db_models"
)

type DestinationRepository interface {
	GetDestinations(ctx context.Context) ([]db_models.Destination, error)
	GetDestinationByID(ctx context.Context, id string) (*db_models.Destination, error)
	AddDestination(ctx context.Context, d *db_models.Destination) ([]db_models.Destination, error)
	UpdateDestination(ctx context.Context, d *db_models.Destination) ([]db_models.Destination, error)
	DeleteDestination(ctx context.Context, id string) ([]db_models.Destination, error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) GetDestinations(ctx context.Context) ([]db_models.Destination, error) {
	var out []db_models.Destination
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *destinationRepository) GetDestinationByID(ctx context.Context, id string) (*db_models.Destination, error) {
	var d db_models.Destination
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *destinationRepository) AddDestination(ctx context.Context, d *db_models.Destination) ([]db_models.Destination, error) {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		return nil, err
	}
	return r.GetDestinations(ctx)
}

func (r *destinationRepository) UpdateDestination(ctx context.Context, d *db_models.Destination) ([]db_models.Destination, error) {
	existing, err := r.GetDestinationByID(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		d.CreatedAt = existing.CreatedAt
		if err := r.db.WithContext(ctx).Save(d).Error; err != nil {
			return nil, err
		}
	}
	return r.GetDestinations(ctx)
}

func (r *destinationRepository) DeleteDestination(ctx context.Context, id string) ([]db_models.Destination, error) {
	if err := r.db.WithContext(ctx).Delete(&db_models.Destination{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return r.GetDestinations(ctx)
}
