package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wildsafari/internal/models/db_models"
)

type MessageRepository interface {
	GetMessages(ctx context.Context) ([]db_models.ContactMessage, error)
	AddMessage(ctx context.Context, m *db_models.ContactMessage) ([]db_models.ContactMessage, error)
	UpdateMessageStatus(ctx context.Context, id string, status db_models.MessageStatus) ([]db_models.ContactMessage, error)
	DeleteMessage(ctx context.Context, id string) ([]db_models.ContactMessage, error)
}

type NewsletterRepository interface {
	GetSignups(ctx context.Context) ([]db_models.NewsletterSignup, error)
	FindSignupByEmail(ctx context.Context, email string) (*db_models.NewsletterSignup, error)
	AddSignup(ctx context.Context, s *db_models.NewsletterSignup) ([]db_models.NewsletterSignup, error)
	DeleteSignup(ctx context.Context, id string) ([]db_models.NewsletterSignup, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) GetMessages(ctx context.Context) ([]db_models.ContactMessage, error) {
	var out []db_models.ContactMessage
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *messageRepository) AddMessage(ctx context.Context, m *db_models.ContactMessage) ([]db_models.ContactMessage, error) {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.GetMessages(ctx)
}

func (r *messageRepository) UpdateMessageStatus(ctx context.Context, id string, status db_models.MessageStatus) ([]db_models.ContactMessage, error) {
	err := r.db.WithContext(ctx).
		Model(&db_models.ContactMessage{}).
		Where("id = ?", id).
		Update("status", status).Error
	if err != nil {
		return nil, err
	}
	return r.GetMessages(ctx)
}

func (r *messageRepository) DeleteMessage(ctx context.Context, id string) ([]db_models.ContactMessage, error) {
	if err := r.db.WithContext(ctx).Delete(&db_models.ContactMessage{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return r.GetMessages(ctx)
}

type newsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) GetSignups(ctx context.Context) ([]db_models.NewsletterSignup, error) {
	var out []db_models.NewsletterSignup
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *newsletterRepository) FindSignupByEmail(ctx context.Context, email string) (*db_models.NewsletterSignup, error) {
	var s db_models.NewsletterSignup
	err := r.db.WithContext(ctx).First(&s, "email = ?", normalizeEmail(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *newsletterRepository) AddSignup(ctx context.Context, s *db_models.NewsletterSignup) ([]db_models.NewsletterSignup, error) {
	s.Email = normalizeEmail(s.Email)
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return r.GetSignups(ctx)
}

func (r *newsletterRepository) DeleteSignup(ctx context.Context, id string) ([]db_models.NewsletterSignup, error) {
	if err := r.db.WithContext(ctx).Delete(&db_models.NewsletterSignup{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return r.GetSignups(ctx)
}
