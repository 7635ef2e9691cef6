package services

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"wildsafari/internal/models/db_models"
)

// AdminNotifier pushes short operational alerts to the back-office team.
type AdminNotifier interface {
	NotifyAdmins(ctx context.Context, text string) error
}

type telegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type telegramNotifier struct {
	bot    telegramSender
	chatID int64
}

func NewTelegramNotifier(bot *tgbotapi.BotAPI, chatID int64) AdminNotifier {
	return &telegramNotifier{bot: bot, chatID: chatID}
}

func (n *telegramNotifier) NotifyAdmins(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

type logNotifier struct {
	log logrus.FieldLogger
}

// NewLogNotifier is used when no bot is configured.
func NewLogNotifier(log logrus.FieldLogger) AdminNotifier {
	return &logNotifier{log: log}
}

func (n *logNotifier) NotifyAdmins(_ context.Context, text string) error {
	n.log.WithField("channel", "admin").Info(text)
	return nil
}

func bookingAlert(b db_models.Booking) string {
	msg := fmt.Sprintf("New booking: %s\n%s (%s)\nDate: %s, travelers: %d",
		b.TourTitle, firstNonEmpty(b.UserName, b.UserID), b.Email, b.Date, b.Travelers)
	if b.TotalPrice != "" {
		msg += "\nTotal: " + b.TotalPrice
	}
	return msg
}
