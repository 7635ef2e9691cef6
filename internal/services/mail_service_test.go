package services

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"wildsafari/internal/config"
	"wildsafari/internal/models/db_models"
	"wildsafari/internal/models/response_models"
)

type captureSender struct {
	sent []*gomail.Message
	err  error
}

func (c *captureSender) DialAndSend(m ...*gomail.Message) error {
	c.sent = append(c.sent, m...)
	return c.err
}

func quietLog() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(&bytes.Buffer{})
	return l
}

func rendered(t *testing.T, m *gomail.Message) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestMailServiceBookingReceived(t *testing.T) {
	sender := &captureSender{}
	svc := newMailService(config.MailConfig{From: "bookings@wildlifesafari.rw", AppBaseURL: "https://wildlifesafari.rw/"}, sender, quietLog())

	err := svc.SendBookingReceived(db_models.Booking{
		TourTitle: "Volcanoes Gorilla Trek", UserName: "Amina", Email: "amina@example.com",
		Date: "2024-06-15", Travelers: 2, TotalPrice: "$3,000",
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	assert.Equal(t, []string{"amina@example.com"}, sender.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"We received your booking"}, sender.sent[0].GetHeader("Subject"))
	assert.Contains(t, rendered(t, sender.sent[0]), "https://wildlifesafari.rw/bookings")
}

func TestMailServiceNotifyUserResolvesSitePaths(t *testing.T) {
	sender := &captureSender{}
	svc := newMailService(config.MailConfig{From: "hello@wildlifesafari.rw", AppBaseURL: "https://wildlifesafari.rw/"}, sender, quietLog())

	require.NoError(t, svc.SendMailToNotifyUser("amina@example.com", "Re: Group discount", "Yes we do.", "Browse safaris", "/tours"))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, []string{"Re: Group discount"}, sender.sent[0].GetHeader("Subject"))
	assert.Contains(t, rendered(t, sender.sent[0]), "https://wildlifesafari.rw/tours")

	assert.Equal(t, "https://example.org/x", svc.resolveLink("https://example.org/x"))
	assert.Equal(t, "https://wildlifesafari.rw/tours", svc.resolveLink("/tours"))
}

func TestRenderEmailIncludesItineraryHTML(t *testing.T) {
	svc := newMailService(config.MailConfig{}, nil, quietLog())
	html, text, err := svc.renderEmail(EmailData{
		Title: "Gorillas & Lakes", Intro: "hi", Body: "<h2>Day 1</h2>", PlainBody: "## Day 1", AppName: "Wild",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "<h2>Day 1</h2>")
	assert.Contains(t, html, "Gorillas &amp; Lakes")
	assert.Contains(t, text, "## Day 1")
}

func TestMailServiceSkipsWithoutRecipientOrSender(t *testing.T) {
	sender := &captureSender{}
	svc := newMailService(config.MailConfig{}, sender, quietLog())
	require.NoError(t, svc.SendNewsletterWelcome(""))
	assert.Empty(t, sender.sent)

	disabled := newMailService(config.MailConfig{}, nil, quietLog())
	assert.NoError(t, disabled.SendItinerary("a@b.com", response_models.ItineraryResult{Content: "# Trip"}))
}

func TestMailServiceWrapsSendErrors(t *testing.T) {
	sender := &captureSender{err: errors.New("connection refused")}
	svc := newMailService(config.MailConfig{From: "x@y.z"}, sender, quietLog())

	err := svc.SendBookingStatus(db_models.Booking{Email: "a@b.com", Status: db_models.BookingConfirmed})
	assert.ErrorContains(t, err, "connection refused")
}
