package account_fx

import (
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"wildsafari/internal/config"
	"wildsafari/internal/repositories"
	"wildsafari/internal/services"
)

var Module = fx.Provide(provideAccountService)

func provideAccountService(accountRepo repositories.AccountRepository, cfg *config.Config, log logrus.FieldLogger) services.AccountServiceInterface {
	if cfg.Security.DemoAuth {
		log.Warn("DEMO_AUTH is enabled: anyone can sign in with an email address")
	}
	return services.NewAccountService(accountRepo, services.AccountOptions{
		JWTSecret: []byte(cfg.Security.JWTSecret),
		TokenTTL:  time.Duration(cfg.Security.JWTExpirationMn) * time.Minute,
		DemoAuth:  cfg.Security.DemoAuth,
	}, log)
}
