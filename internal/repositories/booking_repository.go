package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wildsafari/internal/models/db_models"
)

type BookingRepository interface {
	GetBookings(ctx context.Context) ([]db_models.Booking, error)
	GetBookingByID(ctx context.Context, id string) (*db_models.Booking, error)
	GetBookingsByUser(ctx context.Context, userID string) ([]db_models.Booking, error)
	CreateBooking(ctx context.Context, b *db_models.Booking) (*db_models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status db_models.BookingStatus) ([]db_models.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetBookings(ctx context.Context) ([]db_models.Booking, error) {
	var out []db_models.Booking
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *bookingRepository) GetBookingByID(ctx context.Context, id string) (*db_models.Booking, error) {
	var b db_models.Booking
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) GetBookingsByUser(ctx context.Context, userID string) ([]db_models.Booking, error) {
	var out []db_models.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *bookingRepository) CreateBooking(ctx context.Context, b *db_models.Booking) (*db_models.Booking, error) {
	if b.Status == "" {
		b.Status = db_models.BookingPending
	}
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) UpdateBookingStatus(ctx context.Context, id string, status db_models.BookingStatus) ([]db_models.Booking, error) {
	err := r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
	if err != nil {
		return nil, err
	}
	return r.GetBookings(ctx)
}
