package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"wildsafari/internal/models/db_models"
	"wildsafari/internal/models/request_models"
	"wildsafari/internal/repositories"
	"wildsafari/pkg/utils"
)

type SettingsServiceInterface interface {
	GetSettings(ctx context.Context) (*db_models.SiteSettings, error)
	UpdateSettings(ctx context.Context, req request_models.SettingsRequest) (*db_models.SiteSettings, error)
	// InMaintenance satisfies middleware.MaintenanceChecker.
	InMaintenance(ctx context.Context) bool
}

type SettingsService struct {
	settingsRepo repositories.SettingsRepository
	log          logrus.FieldLogger
}

func NewSettingsService(settingsRepo repositories.SettingsRepository, log logrus.FieldLogger) SettingsServiceInterface {
	return &SettingsService{settingsRepo: settingsRepo, log: log}
}

func (s *SettingsService) GetSettings(ctx context.Context) (*db_models.SiteSettings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return settings, nil
}

// UpdateSettings replaces the whole settings record.
func (s *SettingsService) UpdateSettings(ctx context.Context, req request_models.SettingsRequest) (*db_models.SiteSettings, error) {
	settings := &db_models.SiteSettings{
		ID:           db_models.SiteSettingsID,
		SiteName:     req.SiteName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
		SocialLinks: datatypes.NewJSONType(db_models.SocialLinks{
			Instagram: req.SocialLinks.Instagram,
			Facebook:  req.SocialLinks.Facebook,
			Twitter:   req.SocialLinks.Twitter,
			Whatsapp:  req.SocialLinks.Whatsapp,
		}),
		MaintenanceMode: req.MaintenanceMode,
	}
	updated, err := s.settingsRepo.UpdateSettings(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	s.log.WithField("maintenance_mode", updated.MaintenanceMode).Info("site settings updated")
	return updated, nil
}

// InMaintenance fails open: a storage error keeps the site writable.
func (s *SettingsService) InMaintenance(ctx context.Context) bool {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		s.log.WithError(err).Warn("could not read maintenance flag")
		return false
	}
	return settings.MaintenanceMode
}
