package db_models

import (
	"time"

	"gorm.io/datatypes"
)

const SiteSettingsID uint = 1

type SocialLinks struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Whatsapp  string `json:"whatsapp"`
}

// SiteSettings is a single row with id SiteSettingsID.
type SiteSettings struct {
	ID              uint                            `gorm:"primaryKey" json:"-"`
	SiteName        string                          `json:"site_name"`
	ContactEmail    string                          `json:"contact_email"`
	ContactPhone    string                          `json:"contact_phone"`
	Address         string                          `json:"address"`
	SocialLinks     datatypes.JSONType[SocialLinks] `json:"social_links"`
	MaintenanceMode bool                            `json:"maintenance_mode"`
	UpdatedAt       time.Time                       `json:"updated_at"`
}
