package mail_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"wildsafari/internal/config"
	"wildsafari/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *config.Config, log logrus.FieldLogger) services.IMailService {
	if cfg.Mail.Host == "" {
		log.Warn("SMTP_HOST not set, emails will only be logged")
	}
	return services.NewMailService(cfg.Mail, log)
}
