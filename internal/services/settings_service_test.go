package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wildsafari/internal/models/db_models"
	"wildsafari/internal/models/request_models"
)

type failingSettingsRepo struct{}

func (failingSettingsRepo) GetSettings(context.Context) (*db_models.SiteSettings, error) {
	return nil, errors.New("db down")
}

func (failingSettingsRepo) UpdateSettings(context.Context, *db_models.SiteSettings) (*db_models.SiteSettings, error) {
	return nil, errors.New("db down")
}

func TestUpdateSettingsReplacesRecord(t *testing.T) {
	svc := NewSettingsService(seededStore(), quietLog())
	ctx := context.Background()

	assert.False(t, svc.InMaintenance(ctx))

	updated, err := svc.UpdateSettings(ctx, request_models.SettingsRequest{
		SiteName:        "Wild Rwanda",
		SocialLinks:     request_models.SocialLinksRequest{Instagram: "https://instagram.com/wild"},
		MaintenanceMode: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Wild Rwanda", updated.SiteName)
	assert.Empty(t, updated.ContactEmail)
	assert.Equal(t, "https://instagram.com/wild", updated.SocialLinks.Data().Instagram)
	assert.Empty(t, updated.SocialLinks.Data().Facebook)

	assert.True(t, svc.InMaintenance(ctx))

	got, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, db_models.SiteSettingsID, got.ID)
}

func TestInMaintenanceFailsOpen(t *testing.T) {
	svc := NewSettingsService(failingSettingsRepo{}, quietLog())
	assert.False(t, svc.InMaintenance(context.Background()))
}
