package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wildsafari/internal/models/db_models"
)

// TourRepository mutations return the full updated collection, newest first.
// Updating or deleting an unknown id is a no-op.
type TourRepository interface {
	GetTours(ctx context.Context) ([]db_models.TourPackage, error)
	GetTourByID(ctx context.Context, id string) (*db_models.TourPackage, error)
	AddTour(ctx context.Context, tour *db_models.TourPackage) ([]db_models.TourPackage, error)
	UpdateTour(ctx context.Context, tour *db_models.TourPackage) ([]db_models.TourPackage, error)
	DeleteTour(ctx context.Context, id string) ([]db_models.TourPackage, error)
}

type tourRepository struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) TourRepository {
	return &tourRepository{db: db}
}

func (r *tourRepository) GetTours(ctx context.Context) ([]db_models.TourPackage, error) {
	var tours []db_models.TourPackage
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&tours).Error
	return tours, err
}

func (r *tourRepository) GetTourByID(ctx context.Context, id string) (*db_models.TourPackage, error) {
	var tour db_models.TourPackage
	err := r.db.WithContext(ctx).First(&tour, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tour, nil
}

func (r *tourRepository) AddTour(ctx context.Context, tour *db_models.TourPackage) ([]db_models.TourPackage, error) {
	if err := r.db.WithContext(ctx).Create(tour).Error; err != nil {
		return nil, err
	}
	return r.GetTours(ctx)
}

func (r *tourRepository) UpdateTour(ctx context.Context, tour *db_models.TourPackage) ([]db_models.TourPackage, error) {
	existing, err := r.GetTourByID(ctx, tour.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		tour.CreatedAt = existing.CreatedAt
		if err := r.db.WithContext(ctx).Save(tour).Error; err != nil {
			return nil, err
		}
	}
	return r.GetTours(ctx)
}

func (r *tourRepository) DeleteTour(ctx context.Context, id string) ([]db_models.TourPackage, error) {
	if err := r.db.WithContext(ctx).Delete(&db_models.TourPackage{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return r.GetTours(ctx)
}
