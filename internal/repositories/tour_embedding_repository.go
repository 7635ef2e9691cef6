package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wildsafari/internal/models/db_models"
)

type TourEmbeddingRepository interface {
	GetTourEmbeddings(ctx context.Context) ([]db_models.TourEmbedding, error)
	UpsertTourEmbedding(ctx context.Context, e *db_models.TourEmbedding) error
	DeleteTourEmbedding(ctx context.Context, tourID string) error
}

type tourEmbeddingRepository struct {
	db *gorm.DB
}

func NewTourEmbeddingRepository(db *gorm.DB) TourEmbeddingRepository {
	return &tourEmbeddingRepository{db: db}
}

func (r *tourEmbeddingRepository) GetTourEmbeddings(ctx context.Context) ([]db_models.TourEmbedding, error) {
	var out []db_models.TourEmbedding
	err := r.db.WithContext(ctx).Find(&out).Error
	return out, err
}

func (r *tourEmbeddingRepository) UpsertTourEmbedding(ctx context.Context, e *db_models.TourEmbedding) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tour_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"content_hash", "embedding", "updated_at"}),
	}).Create(e).Error
}

func (r *tourEmbeddingRepository) DeleteTourEmbedding(ctx context.Context, tourID string) error {
	return r.db.WithContext(ctx).Delete(&db_models.TourEmbedding{}, "tour_id = ?", tourID).Error
}
