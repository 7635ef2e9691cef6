package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"wildsafari/internal/models/db_models"
	"wildsafari/internal/repositories"
	"wildsafari/pkg/csvexport"
	"wildsafari/pkg/utils"
)

// Export collection names, also used as the file name prefix.
const (
	ExportBookings       = "bookings"
	ExportBookingsReport = "bookings_report"
	ExportDailyManifest  = "daily_manifest"
	ExportPackages       = "safari_packages"
	ExportDestinations   = "destinations"
	ExportStories        = "stories"
	ExportUsers          = "users"
	ExportMessages       = "messages"
	ExportNewsletters    = "newsletters"
)

var ExportCollections = []string{
	ExportBookings, ExportBookingsReport, ExportDailyManifest, ExportPackages,
	ExportDestinations, ExportStories, ExportUsers, ExportMessages, ExportNewsletters,
}

type ExportFile struct {
	Name    string
	Content []byte
}

type ExportServiceInterface interface {
	Export(ctx context.Context, collection string, at time.Time) (*ExportFile, error)
}

type ExportService struct {
	tourRepo        repositories.TourRepository
	destinationRepo repositories.DestinationRepository
	bookingRepo     repositories.BookingRepository
	storyRepo       repositories.StoryRepository
	accountRepo     repositories.AccountRepository
	messageRepo     repositories.MessageRepository
	newsletterRepo  repositories.NewsletterRepository
}

func NewExportService(
	tourRepo repositories.TourRepository,
	destinationRepo repositories.DestinationRepository,
	bookingRepo repositories.BookingRepository,
	storyRepo repositories.StoryRepository,
	accountRepo repositories.AccountRepository,
	messageRepo repositories.MessageRepository,
	newsletterRepo repositories.NewsletterRepository,
) ExportServiceInterface {
	return &ExportService{
		tourRepo:        tourRepo,
		destinationRepo: destinationRepo,
		bookingRepo:     bookingRepo,
		storyRepo:       storyRepo,
		accountRepo:     accountRepo,
		messageRepo:     messageRepo,
		newsletterRepo:  newsletterRepo,
	}
}

// Export renders a collection as CSV. An empty collection yields
// utils.ErrNothingToExport and no file.
func (s *ExportService) Export(ctx context.Context, collection string, at time.Time) (*ExportFile, error) {
	collection = strings.ToLower(strings.TrimSpace(collection))

	records, err := s.records(ctx, collection)
	if err != nil {
		return nil, err
	}

	content, err := csvexport.Encode(records)
	if errors.Is(err, csvexport.ErrNoRecords) {
		return nil, utils.ErrNothingToExport
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", collection, err)
	}
	return &ExportFile{Name: csvexport.FileName(collection, at), Content: content}, nil
}

func (s *ExportService) records(ctx context.Context, collection string) (interface{}, error) {
	var (
		records interface{}
		err     error
	)

	switch collection {
	case ExportBookings, ExportBookingsReport:
		records, err = s.bookingRepo.GetBookings(ctx)
	case ExportDailyManifest:
		var bookings []db_models.Booking
		bookings, err = s.bookingRepo.GetBookings(ctx)
		records = manifest(bookings)
	case ExportPackages:
		records, err = s.tourRepo.GetTours(ctx)
	case ExportDestinations:
		records, err = s.destinationRepo.GetDestinations(ctx)
	case ExportStories:
		records, err = s.storyRepo.GetStories(ctx, "")
	case ExportUsers:
		var accounts []db_models.Account
		accounts, err = s.accountRepo.GetAccounts(ctx)
		records = toAccountResponses(accounts)
	case ExportMessages:
		records, err = s.messageRepo.GetMessages(ctx)
	case ExportNewsletters:
		records, err = s.newsletterRepo.GetSignups(ctx)
	default:
		return nil, utils.ErrUnknownCollection
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return records, nil
}

// manifest keeps bookings that are still going ahead, ordered by travel date.
func manifest(bookings []db_models.Booking) []db_models.Booking {
	out := make([]db_models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status != db_models.BookingRejected {
			out = append(out, b)
		}
	}
	slices.SortStableFunc(out, func(a, b db_models.Booking) int {
		return strings.Compare(a.Date, b.Date)
	})
	return out
}
