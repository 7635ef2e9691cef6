package repositories

import (
	"context"
	"strings"
	"sync"
	"time"

	"wildsafari/internal/models/db_models"
)

// MemoryStore keeps every collection in process memory. It implements all
// repository interfaces and is lost on restart. Handlers run concurrently, so
// every access goes through mu; reads hand out copies of the slices.
type MemoryStore struct {
	mu sync.RWMutex

	tours        []db_models.TourPackage
	destinations []db_models.Destination
	bookings     []db_models.Booking
	stories      []db_models.Story
	accounts     []db_models.Account
	messages     []db_models.ContactMessage
	signups      []db_models.NewsletterSignup
	settings     db_models.SiteSettings
	embeddings   map[string]db_models.TourEmbedding

	now func() time.Time
}

func NewMemoryStore(seed SeedData) *MemoryStore {
	s := &MemoryStore{
		tours:        clone(seed.Tours),
		destinations: clone(seed.Destinations),
		bookings:     clone(seed.Bookings),
		stories:      clone(seed.Stories),
		accounts:     clone(seed.Accounts),
		messages:     clone(seed.Messages),
		signups:      clone(seed.Signups),
		settings:     seed.Settings,
		embeddings:   make(map[string]db_models.TourEmbedding),
		now:          time.Now,
	}
	s.settings.ID = db_models.SiteSettingsID
	for i := range s.accounts {
		s.accounts[i].Email = normalizeEmail(s.accounts[i].Email)
	}
	return s
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func prepend[T any](items []T, item T) []T {
	return append([]T{item}, items...)
}

func indexByID[T any, PT interface {
	*T
	GetID() string
}](items []T, id string) int {
	for i := range items {
		if PT(&items[i]).GetID() == id {
			return i
		}
	}
	return -1
}

func removeByID[T any, PT interface {
	*T
	GetID() string
}](items []T, id string) []T {
	out := make([]T, 0, len(items))
	for i := range items {
		if PT(&items[i]).GetID() != id {
			out = append(out, items[i])
		}
	}
	return out
}

// ---- tours ----

func (s *MemoryStore) GetTours(context.Context) ([]db_models.TourPackage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.tours), nil
}

func (s *MemoryStore) GetTourByID(_ context.Context, id string) (*db_models.TourPackage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexByID(s.tours, id); i >= 0 {
		t := s.tours[i]
		return &t, nil
	}
	return nil, nil
}

func (s *MemoryStore) AddTour(_ context.Context, tour *db_models.TourPackage) ([]db_models.TourPackage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tour.Stamp(s.now())
	s.tours = prepend(s.tours, *tour)
	return clone(s.tours), nil
}

func (s *MemoryStore) UpdateTour(_ context.Context, tour *db_models.TourPackage) ([]db_models.TourPackage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := indexByID(s.tours, tour.ID); i >= 0 {
		tour.CreatedAt = s.tours[i].CreatedAt
		tour.UpdatedAt = s.now()
		s.tours[i] = *tour
	}
	return clone(s.tours), nil
}

func (s *MemoryStore) DeleteTour(_ context.Context, id string) ([]db_models.TourPackage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tours = removeByID(s.tours, id)
	return clone(s.tours), nil
}

// ---- destinations ----

func (s *MemoryStore) GetDestinations(context.Context) ([]db_models.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.destinations), nil
}

func (s *MemoryStore) GetDestinationByID(_ context.Context, id string) (*db_models.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexByID(s.destinations, id); i >= 0 {
		d := s.destinations[i]
		return &d, nil
	}
	return nil, nil
}

func (s *MemoryStore) AddDestination(_ context.Context, d *db_models.Destination) ([]db_models.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.Stamp(s.now())
	s.destinations = prepend(s.destinations, *d)
	return clone(s.destinations), nil
}

func (s *MemoryStore) UpdateDestination(_ context.Context, d *db_models.Destination) ([]db_models.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := indexByID(s.destinations, d.ID); i >= 0 {
		d.CreatedAt = s.destinations[i].CreatedAt
		d.UpdatedAt = s.now()
		s.destinations[i] = *d
	}
	return clone(s.destinations), nil
}

func (s *MemoryStore) DeleteDestination(_ context.Context, id string) ([]db_models.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destinations = removeByID(s.destinations, id)
	return clone(s.destinations), nil
}

// ---- bookings ----

func (s *MemoryStore) GetBookings(context.Context) ([]db_models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.bookings), nil
}

func (s *MemoryStore) GetBookingByID(_ context.Context, id string) (*db_models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexByID(s.bookings, id); i >= 0 {
		b := s.bookings[i]
		return &b, nil
	}
	return nil, nil
}

func (s *MemoryStore) GetBookingsByUser(_ context.Context, userID string) ([]db_models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]db_models.Booking, 0)
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *MemoryStore) CreateBooking(_ context.Context, b *db_models.Booking) (*db_models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.Stamp(s.now())
	if b.Status == "" {
		b.Status = db_models.BookingPending
	}
	s.bookings = prepend(s.bookings, *b)
	created := *b
	return &created, nil
}

func (s *MemoryStore) UpdateBookingStatus(_ context.Context, id string, status db_models.BookingStatus) ([]db_models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := indexByID(s.bookings, id); i >= 0 {
		s.bookings[i].Status = status
		s.bookings[i].UpdatedAt = s.now()
	}
	return clone(s.bookings), nil
}

// ---- stories ----

func (s *MemoryStore) GetStories(_ context.Context, status db_models.StoryStatus) ([]db_models.Story, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if status == "" {
		return clone(s.stories), nil
	}
	out := make([]db_models.Story, 0)
	for _, st := range s.stories {
		if st.Status == status {
			out = append(out, st)
		}
	}
	return out, nil
}

func (s *MemoryStore) GetStoryByID(_ context.Context, id string) (*db_models.Story, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexByID(s.stories, id); i >= 0 {
		st := s.stories[i]
		return &st, nil
	}
	return nil, nil
}

func (s *MemoryStore) AddStory(_ context.Context, st *db_models.Story) ([]db_models.Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st.Stamp(s.now())
	s.stories = prepend(s.stories, *st)
	return clone(s.stories), nil
}

func (s *MemoryStore) UpdateStoryStatus(_ context.Context, id string, status db_models.StoryStatus) ([]db_models.Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := indexByID(s.stories, id); i >= 0 {
		s.stories[i].Status = status
		s.stories[i].UpdatedAt = s.now()
	}
	return clone(s.stories), nil
}

// ---- accounts ----

func (s *MemoryStore) GetAccounts(context.Context) ([]db_models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.accounts), nil
}

func (s *MemoryStore) FindByID(_ context.Context, id string) (*db_models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexByID(s.accounts, id); i >= 0 {
		a := s.accounts[i]
		return &a, nil
	}
	return nil, nil
}

func (s *MemoryStore) findByEmailLocked(email string) int {
	email = normalizeEmail(email)
	for i := range s.accounts {
		if s.accounts[i].Email == email {
			return i
		}
	}
	return -1
}

func (s *MemoryStore) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.findByEmailLocked(email); i >= 0 {
		a := s.accounts[i]
		return &a, nil
	}
	return nil, nil
}

func (s *MemoryStore) InsertAccount(_ context.Context, account *db_models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	account.Email = normalizeEmail(account.Email)
	account.Stamp(s.now())
	s.accounts = prepend(s.accounts, *account)
	return nil
}

func (s *MemoryStore) FindOrCreateByEmail(_ context.Context, candidate *db_models.Account) (*db_models.Account, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.findByEmailLocked(candidate.Email); i >= 0 {
		a := s.accounts[i]
		return &a, false, nil
	}
	candidate.Email = normalizeEmail(candidate.Email)
	candidate.Stamp(s.now())
	s.accounts = prepend(s.accounts, *candidate)
	created := *candidate
	return &created, true, nil
}

func (s *MemoryStore) UpdateAccountRole(_ context.Context, id, role string) ([]db_models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := indexByID(s.accounts, id); i >= 0 {
		s.accounts[i].Role = role
		s.accounts[i].UpdatedAt = s.now()
	}
	return clone(s.accounts), nil
}

// ---- messages ----

func (s *MemoryStore) GetMessages(context.Context) ([]db_models.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.messages), nil
}

func (s *MemoryStore) AddMessage(_ context.Context, m *db_models.ContactMessage) ([]db_models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.Stamp(s.now())
	s.messages = prepend(s.messages, *m)
	return clone(s.messages), nil
}

func (s *MemoryStore) UpdateMessageStatus(_ context.Context, id string, status db_models.MessageStatus) ([]db_models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := indexByID(s.messages, id); i >= 0 {
		s.messages[i].Status = status
		s.messages[i].UpdatedAt = s.now()
	}
	return clone(s.messages), nil
}

func (s *MemoryStore) DeleteMessage(_ context.Context, id string) ([]db_models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = removeByID(s.messages, id)
	return clone(s.messages), nil
}

// ---- newsletter ----

func (s *MemoryStore) GetSignups(context.Context) ([]db_models.NewsletterSignup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.signups), nil
}

func (s *MemoryStore) FindSignupByEmail(_ context.Context, email string) (*db_models.NewsletterSignup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	email = normalizeEmail(email)
	for _, sg := range s.signups {
		if strings.EqualFold(sg.Email, email) {
			out := sg
			return &out, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) AddSignup(_ context.Context, sg *db_models.NewsletterSignup) ([]db_models.NewsletterSignup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sg.Email = normalizeEmail(sg.Email)
	sg.Stamp(s.now())
	s.signups = prepend(s.signups, *sg)
	return clone(s.signups), nil
}

func (s *MemoryStore) DeleteSignup(_ context.Context, id string) ([]db_models.NewsletterSignup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signups = removeByID(s.signups, id)
	return clone(s.signups), nil
}

// ---- settings ----

func (s *MemoryStore) GetSettings(context.Context) (*db_models.SiteSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.settings
	return &out, nil
}

func (s *MemoryStore) UpdateSettings(_ context.Context, settings *db_models.SiteSettings) (*db_models.SiteSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	settings.ID = db_models.SiteSettingsID
	settings.UpdatedAt = s.now()
	s.settings = *settings
	out := s.settings
	return &out, nil
}

// ---- tour embeddings ----

func (s *MemoryStore) GetTourEmbeddings(context.Context) ([]db_models.TourEmbedding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]db_models.TourEmbedding, 0, len(s.embeddings))
	for _, e := range s.embeddings {
		out = append(out, e)
	}
	return out, nil
}

func (s *MemoryStore) UpsertTourEmbedding(_ context.Context, e *db_models.TourEmbedding) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.UpdatedAt = s.now()
	s.embeddings[e.TourID] = *e
	return nil
}

func (s *MemoryStore) DeleteTourEmbedding(_ context.Context, tourID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.embeddings, tourID)
	return nil
}

var (
	_ TourRepository          = (*MemoryStore)(nil)
	_ DestinationRepository   = (*MemoryStore)(nil)
	_ BookingRepository       = (*MemoryStore)(nil)
	_ StoryRepository         = (*MemoryStore)(nil)
	_ AccountRepository       = (*MemoryStore)(nil)
	_ MessageRepository       = (*MemoryStore)(nil)
	_ NewsletterRepository    = (*MemoryStore)(nil)
	_ SettingsRepository      = (*MemoryStore)(nil)
	_ TourEmbeddingRepository = (*MemoryStore)(nil)
)
