package services

import (
	"context"
	"sync"

	"wildsafari/internal/models/db_models"
	"wildsafari/internal/models/response_models"
	"wildsafari/internal/repositories"
)

func seededStore() *repositories.MemoryStore {
	return repositories.NewMemoryStore(repositories.DefaultSeed())
}

type recordingMail struct {
	mu        sync.Mutex
	received  []db_models.Booking
	statuses  []db_models.Booking
	welcomes  []string
	itinerary []string
	notices   []mailNotice
	err       error
}

type mailNotice struct {
	to, subject, body, ctaText, ctaURL string
}

func (m *recordingMail) SendMailToNotifyUser(to, subject, body, ctaText, ctaURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.notices = append(m.notices, mailNotice{to, subject, body, ctaText, ctaURL})
	return nil
}

func (m *recordingMail) SendBookingReceived(b db_models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.received = append(m.received, b)
	return m.err
}

func (m *recordingMail) SendBookingStatus(b db_models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statuses = append(m.statuses, b)
	return m.err
}

func (m *recordingMail) SendNewsletterWelcome(email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.welcomes = append(m.welcomes, email)
	return m.err
}

func (m *recordingMail) SendItinerary(to string, _ response_models.ItineraryResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.itinerary = append(m.itinerary, to)
	return m.err
}

type recordingNotifier struct {
	mu    sync.Mutex
	texts []string
}

func (n *recordingNotifier) NotifyAdmins(_ context.Context, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.texts = append(n.texts, text)
	return nil
}

// scriptedGenerator returns the queued replies in order and records prompts.
type scriptedGenerator struct {
	mu      sync.Mutex
	prompts []string
	replies []generatorReply
}

type generatorReply struct {
	text string
	err  error
}

func (g *scriptedGenerator) GenerateItinerary(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	if len(g.replies) == 0 {
		return "# Rwanda Highlights\n\nDay 1", nil
	}
	r := g.replies[0]
	g.replies = g.replies[1:]
	return r.text, r.err
}
