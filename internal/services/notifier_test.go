package services

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wildsafari/internal/models/db_models"
)

type fakeBot struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

func TestTelegramNotifierSendsToAdminChat(t *testing.T) {
	bot := &fakeBot{}
	n := &telegramNotifier{bot: bot, chatID: 42}

	alert := bookingAlert(db_models.Booking{TourTitle: "Nyungwe Canopy Walk", UserName: "Jo", Email: "jo@x.com", Date: "2024-07-01", Travelers: 3, TotalPrice: "$3,600"})
	require.NoError(t, n.NotifyAdmins(context.Background(), alert))

	require.Len(t, bot.sent, 1)
	assert.Equal(t, int64(42), bot.sent[0].ChatID)
	assert.Contains(t, bot.sent[0].Text, "Nyungwe Canopy Walk")
	assert.Contains(t, bot.sent[0].Text, "Total: $3,600")
}

func TestTelegramNotifierErrors(t *testing.T) {
	n := &telegramNotifier{bot: &fakeBot{err: errors.New("forbidden")}, chatID: 1}
	assert.ErrorContains(t, n.NotifyAdmins(context.Background(), "x"), "forbidden")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, n.NotifyAdmins(ctx, "x"), context.Canceled)
}
