package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wildsafari/internal/models/db_models"
)

type SettingsRepository interface {
	GetSettings(ctx context.Context) (*db_models.SiteSettings, error)
	UpdateSettings(ctx context.Context, s *db_models.SiteSettings) (*db_models.SiteSettings, error)
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetSettings(ctx context.Context) (*db_models.SiteSettings, error) {
	var s db_models.SiteSettings
	err := r.db.WithContext(ctx).First(&s, "id = ?", db_models.SiteSettingsID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &db_models.SiteSettings{ID: db_models.SiteSettingsID}, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepository) UpdateSettings(ctx context.Context, s *db_models.SiteSettings) (*db_models.SiteSettings, error) {
	s.ID = db_models.SiteSettingsID
	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}
