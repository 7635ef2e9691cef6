package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"wildsafari/internal/models/db_models"
	"wildsafari/internal/models/request_models"
	"wildsafari/internal/repositories"
	"wildsafari/pkg/utils"
)

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, userID string, req request_models.BookingRequest) (*db_models.Booking, error)
	ListBookings(ctx context.Context, q request_models.ListQuery) ([]db_models.Booking, error)
	MyBookings(ctx context.Context, userID string) ([]db_models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id, status string) ([]db_models.Booking, error)
}

type BookingService struct {
	bookingRepo repositories.BookingRepository
	tourRepo    repositories.TourRepository
	accountRepo repositories.AccountRepository
	mail        IMailService
	notifier    AdminNotifier
	log         logrus.FieldLogger
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	tourRepo repositories.TourRepository,
	accountRepo repositories.AccountRepository,
	mail IMailService,
	notifier AdminNotifier,
	log logrus.FieldLogger,
) BookingServiceInterface {
	return &BookingService{
		bookingRepo: bookingRepo,
		tourRepo:    tourRepo,
		accountRepo: accountRepo,
		mail:        mail,
		notifier:    notifier,
		log:         log,
	}
}

var bookingListSpec = listSpec[db_models.Booking]{
	text: func(b db_models.Booking) []string {
		return []string{b.TourTitle, b.UserName, b.Email, b.UserID}
	},
	status: func(b db_models.Booking) string { return string(b.Status) },
	sorts: map[string]func(a, b db_models.Booking) int{
		"date":        byString(func(b db_models.Booking) string { return b.Date }),
		"tour_title":  byString(func(b db_models.Booking) string { return b.TourTitle }),
		"user_name":   byString(func(b db_models.Booking) string { return b.UserName }),
		"travelers":   byNumber(func(b db_models.Booking) int { return b.Travelers }),
		"total_price": byNumber(func(b db_models.Booking) float64 { return priceAmount(b.TotalPrice) }),
		"created_at":  byNumber(func(b db_models.Booking) int64 { return b.CreatedAt.UnixNano() }),
	},
}

// CreateBooking records a pending booking for the signed-in account userID.
// The tour title is copied so later catalog edits do not rewrite history.
func (s *BookingService) CreateBooking(ctx context.Context, userID string, req request_models.BookingRequest) (*db_models.Booking, error) {
	tour, err := s.tourRepo.GetTourByID(ctx, req.TourID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if tour == nil {
		return nil, utils.ErrRecordNotFound
	}

	account, err := s.accountRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	booking := &db_models.Booking{
		TourID:     tour.ID,
		TourTitle:  tour.Title,
		UserID:     account.Email,
		UserName:   firstNonEmpty(strings.TrimSpace(req.UserName), account.Name),
		Email:      strings.ToLower(firstNonEmpty(strings.TrimSpace(req.Email), account.Email)),
		Date:       req.Date,
		Travelers:  req.Travelers,
		Status:     db_models.BookingPending,
		TotalPrice: firstNonEmpty(TotalPrice(tour.Price, req.Travelers), tour.Price),
		Message:    req.Message,
	}

	created, err := s.bookingRepo.CreateBooking(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	entry := s.log.WithFields(logrus.Fields{"booking_id": created.ID, "tour_id": created.TourID})
	if err := s.mail.SendBookingReceived(*created); err != nil {
		entry.WithError(err).Warn("booking confirmation email failed")
	}
	if err := s.notifier.NotifyAdmins(ctx, bookingAlert(*created)); err != nil {
		entry.WithError(err).Warn("admin booking alert failed")
	}
	return created, nil
}

func (s *BookingService) ListBookings(ctx context.Context, q request_models.ListQuery) ([]db_models.Booking, error) {
	bookings, err := s.bookingRepo.GetBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return bookingListSpec.apply(bookings, q), nil
}

func (s *BookingService) MyBookings(ctx context.Context, userID string) ([]db_models.Booking, error) {
	account, err := s.accountRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	bookings, err := s.bookingRepo.GetBookingsByUser(ctx, account.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return bookings, nil
}

// UpdateBookingStatus accepts only confirmed or rejected.
func (s *BookingService) UpdateBookingStatus(ctx context.Context, id, status string) ([]db_models.Booking, error) {
	next := db_models.BookingStatus(strings.ToLower(strings.TrimSpace(status)))
	if next != db_models.BookingConfirmed && next != db_models.BookingRejected {
		return nil, utils.ErrInvalidStatus
	}

	bookings, err := s.bookingRepo.UpdateBookingStatus(ctx, id, next)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	for _, b := range bookings {
		if b.ID == id {
			if err := s.mail.SendBookingStatus(b); err != nil {
				s.log.WithError(err).WithField("booking_id", id).Warn("booking status email failed")
			}
			break
		}
	}
	return bookings, nil
}
