package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wildsafari/internal/models/db_models"
)

type StoryRepository interface {
	// GetStories filters by status; an empty status returns every story.
	GetStories(ctx context.Context, status db_models.StoryStatus) ([]db_models.Story, error)
	GetStoryByID(ctx context.Context, id string) (*db_models.Story, error)
	AddStory(ctx context.Context, s *db_models.Story) ([]db_models.Story, error)
	UpdateStoryStatus(ctx context.Context, id string, status db_models.StoryStatus) ([]db_models.Story, error)
}

type storyRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) GetStories(ctx context.Context, status db_models.StoryStatus) ([]db_models.Story, error) {
	var out []db_models.Story
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *storyRepository) GetStoryByID(ctx context.Context, id string) (*db_models.Story, error) {
	var s db_models.Story
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *storyRepository) AddStory(ctx context.Context, s *db_models.Story) ([]db_models.Story, error) {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return r.GetStories(ctx, "")
}

func (r *storyRepository) UpdateStoryStatus(ctx context.Context, id string, status db_models.StoryStatus) ([]db_models.Story, error) {
	err := r.db.WithContext(ctx).
		Model(&db_models.Story{}).
		Where("id = ?", id).
		Update("status", status).Error
	if err != nil {
		return nil, err
	}
	return r.GetStories(ctx, "")
}
