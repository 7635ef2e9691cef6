package db_fx

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wildsafari/internal/config"
	"wildsafari/internal/infra"
	"wildsafari/internal/repositories"
)

var Module = fx.Provide(provideRepositories)

type Repositories struct {
	fx.Out

	Tours        repositories.TourRepository
	Destinations repositories.DestinationRepository
	Bookings     repositories.BookingRepository
	Stories      repositories.StoryRepository
	Accounts     repositories.AccountRepository
	Messages     repositories.MessageRepository
	Newsletters  repositories.NewsletterRepository
	Settings     repositories.SettingsRepository
	Embeddings   repositories.TourEmbeddingRepository
}

// provideRepositories picks the in-memory store or the gorm repositories
// depending on DB_DRIVER.
func provideRepositories(lc fx.Lifecycle, cfg *config.Config, log logrus.FieldLogger) (Repositories, error) {
	seed := repositories.SeedData{}
	if cfg.Database.Seed {
		var err error
		seed, err = infra.PrepareSeed(cfg.Security.SeedAdminPassword)
		if err != nil {
			return Repositories{}, fmt.Errorf("prepare seed: %w", err)
		}
	}

	if cfg.Database.Driver == "memory" {
		log.Warn("using the in-memory store, data is lost on restart")
		store := repositories.NewMemoryStore(seed)
		return Repositories{
			Tours:        store,
			Destinations: store,
			Bookings:     store,
			Stories:      store,
			Accounts:     store,
			Messages:     store,
			Newsletters:  store,
			Settings:     store,
			Embeddings:   store,
		}, nil
	}

	db, err := infra.OpenDatabase(&cfg.Database)
	if err != nil {
		return Repositories{}, err
	}
	if err := infra.Migrate(db); err != nil {
		infra.CloseDatabase(db, log)
		return Repositories{}, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !cfg.Database.Seed {
				return nil
			}
			seeded, err := infra.SeedIfEmpty(ctx, db, seed)
			if err != nil {
				return err
			}
			if seeded {
				log.WithField("driver", cfg.Database.Driver).Info("database seeded")
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			infra.CloseDatabase(db, log)
			return nil
		},
	})

	return gormRepositories(db), nil
}

func gormRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Tours:        repositories.NewTourRepository(db),
		Destinations: repositories.NewDestinationRepository(db),
		Bookings:     repositories.NewBookingRepository(db),
		Stories:      repositories.NewStoryRepository(db),
		Accounts:     repositories.NewAccountRepository(db),
		Messages:     repositories.NewMessageRepository(db),
		Newsletters:  repositories.NewNewsletterRepository(db),
		Settings:     repositories.NewSettingsRepository(db),
		Embeddings:   repositories.NewTourEmbeddingRepository(db),
	}
}
