package notify_fx

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"wildsafari/internal/config"
	"wildsafari/internal/services"
)

var Module = fx.Provide(provideAdminNotifier)

// provideAdminNotifier falls back to logging when the bot is not configured
// or cannot reach Telegram.
func provideAdminNotifier(cfg *config.Config, log logrus.FieldLogger) services.AdminNotifier {
	if cfg.Telegram.BotToken == "" || cfg.Telegram.AdminChatID == 0 {
		return services.NewLogNotifier(log)
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		log.WithError(err).Warn("telegram bot unavailable, admin alerts will be logged")
		return services.NewLogNotifier(log)
	}
	log.WithField("bot", bot.Self.UserName).Info("telegram admin alerts enabled")
	return services.NewTelegramNotifier(bot, cfg.Telegram.AdminChatID)
}
