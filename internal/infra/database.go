package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"wildsafari/internal/config"
	"wildsafari/internal/models/db_models"
	"wildsafari/internal/repositories"
	"wildsafari/pkg/utils"
)

// Models lists every persisted entity, in migration order.
var Models = []interface{}{
	&db_models.TourPackage{},
	&db_models.Destination{},
	&db_models.Booking{},
	&db_models.Story{},
	&db_models.Account{},
	&db_models.ContactMessage{},
	&db_models.NewsletterSignup{},
	&db_models.SiteSettings{},
	&db_models.TourEmbedding{},
}

// OpenDatabase connects to the configured SQL backend. It must not be called
// for the memory driver.
func OpenDatabase(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema. On postgres the vector extension is
// required for tour embeddings.
func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
			return fmt.Errorf("failed to enable pgvector: %w", err)
		}
	}
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// SeedIfEmpty loads seed when the catalog has no tours yet. Reports whether
// anything was written.
func SeedIfEmpty(ctx context.Context, db *gorm.DB, seed repositories.SeedData) (bool, error) {
	var tours int64
	if err := db.WithContext(ctx).Model(&db_models.TourPackage{}).Count(&tours).Error; err != nil {
		return false, err
	}
	if tours > 0 {
		return false, nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		steps := []func() error{
			func() error { return createAll(tx, seed.Tours) },
			func() error { return createAll(tx, seed.Destinations) },
			func() error { return createAll(tx, seed.Bookings) },
			func() error { return createAll(tx, seed.Stories) },
			func() error { return createAll(tx, seed.Accounts) },
			func() error { return createAll(tx, seed.Messages) },
			func() error { return createAll(tx, seed.Signups) },
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return err
			}
		}
		settings := seed.Settings
		settings.ID = db_models.SiteSettingsID
		return tx.Save(&settings).Error
	})
	if err != nil {
		return false, fmt.Errorf("failed to seed database: %w", err)
	}
	return true, nil
}

func createAll[T any](tx *gorm.DB, items []T) error {
	if len(items) == 0 {
		return nil
	}
	return tx.Create(&items).Error
}

// PrepareSeed returns the default catalog. When adminPassword is set, seeded
// admin accounts can log in with it.
func PrepareSeed(adminPassword string) (repositories.SeedData, error) {
	seed := repositories.DefaultSeed()
	if adminPassword == "" {
		return seed, nil
	}
	hash, err := utils.HashPassword(adminPassword)
	if err != nil {
		return seed, err
	}
	for i := range seed.Accounts {
		if seed.Accounts[i].Role == db_models.RoleAdmin {
			seed.Accounts[i].PasswordHash = hash
		}
	}
	return seed, nil
}

func CloseDatabase(db *gorm.DB, log logrus.FieldLogger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Error("Error getting database instance")
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.WithError(err).Error("Error closing database connection")
	} else {
		log.Info("Database connection closed")
	}
}
