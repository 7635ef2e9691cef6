package services

import (
	"context"
	"fmt"

	"wildsafari/internal/models/db_models"
	"wildsafari/internal/models/response_models"
	"wildsafari/internal/repositories"
	"wildsafari/pkg/utils"
)

const (
	maxNotifications  = 5
	maxRecentBookings = 5
)

type DashboardServiceInterface interface {
	GetOverview(ctx context.Context) (*response_models.DashboardOverview, error)
}

type DashboardService struct {
	tourRepo        repositories.TourRepository
	destinationRepo repositories.DestinationRepository
	bookingRepo     repositories.BookingRepository
	storyRepo       repositories.StoryRepository
	accountRepo     repositories.AccountRepository
	messageRepo     repositories.MessageRepository
	newsletterRepo  repositories.NewsletterRepository
}

func NewDashboardService(
	tourRepo repositories.TourRepository,
	destinationRepo repositories.DestinationRepository,
	bookingRepo repositories.BookingRepository,
	storyRepo repositories.StoryRepository,
	accountRepo repositories.AccountRepository,
	messageRepo repositories.MessageRepository,
	newsletterRepo repositories.NewsletterRepository,
) DashboardServiceInterface {
	return &DashboardService{
		tourRepo:        tourRepo,
		destinationRepo: destinationRepo,
		bookingRepo:     bookingRepo,
		storyRepo:       storyRepo,
		accountRepo:     accountRepo,
		messageRepo:     messageRepo,
		newsletterRepo:  newsletterRepo,
	}
}

func (s *DashboardService) GetOverview(ctx context.Context) (*response_models.DashboardOverview, error) {
	tours, err := s.tourRepo.GetTours(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	destinations, err := s.destinationRepo.GetDestinations(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	bookings, err := s.bookingRepo.GetBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	stories, err := s.storyRepo.GetStories(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	accounts, err := s.accountRepo.GetAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	messages, err := s.messageRepo.GetMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	signups, err := s.newsletterRepo.GetSignups(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	counts := response_models.DashboardCounts{
		Tours:        len(tours),
		Destinations: len(destinations),
		Bookings:     len(bookings),
		Stories:      len(stories),
		Messages:     len(messages),
		Subscribers:  len(signups),
		Users:        len(accounts),
	}
	for _, b := range bookings {
		switch b.Status {
		case db_models.BookingPending:
			counts.PendingBookings++
		case db_models.BookingConfirmed:
			counts.ConfirmedBookings++
		case db_models.BookingRejected:
			counts.RejectedBookings++
		}
	}
	for _, st := range stories {
		if st.Status == db_models.StoryPending {
			counts.PendingStories++
		}
	}
	for _, m := range messages {
		if m.Status == db_models.MessageUnread {
			counts.UnreadMessages++
		}
	}
	for _, a := range accounts {
		if a.Role == db_models.RoleAdmin {
			counts.Admins++
		}
	}

	recent := bookings
	if len(recent) > maxRecentBookings {
		recent = recent[:maxRecentBookings]
	}

	return &response_models.DashboardOverview{
		Counts:         counts,
		Notifications:  buildNotifications(bookings, messages, stories),
		RecentBookings: recent,
	}, nil
}

// buildNotifications lists pending bookings, then unread messages, then
// pending stories, keeping the first maxNotifications.
func buildNotifications(bookings []db_models.Booking, messages []db_models.ContactMessage, stories []db_models.Story) []response_models.AdminNotification {
	out := make([]response_models.AdminNotification, 0, maxNotifications)

	for _, b := range bookings {
		if b.Status == db_models.BookingPending {
			out = append(out, response_models.AdminNotification{
				ID:      "b-" + b.ID,
				Type:    response_models.NotificationBooking,
				Title:   "New Booking Request",
				Message: fmt.Sprintf("%s requested %s", b.UserName, b.TourTitle),
				Time:    b.CreatedAt,
			})
		}
	}
	for _, m := range messages {
		if m.Status == db_models.MessageUnread {
			out = append(out, response_models.AdminNotification{
				ID:      "m-" + m.ID,
				Type:    response_models.NotificationMessage,
				Title:   "New Message",
				Message: fmt.Sprintf("From %s: %s", m.Name, m.Subject),
				Time:    m.CreatedAt,
			})
		}
	}
	for _, st := range stories {
		if st.Status == db_models.StoryPending {
			out = append(out, response_models.AdminNotification{
				ID:      "s-" + st.ID,
				Type:    response_models.NotificationStory,
				Title:   "Story Awaiting Review",
				Message: fmt.Sprintf("%q by %s", st.Title, st.Author),
				Time:    st.CreatedAt,
			})
		}
	}

	if len(out) > maxNotifications {
		out = out[:maxNotifications]
	}
	return out
}
