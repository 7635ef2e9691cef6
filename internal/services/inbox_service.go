package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"wildsafari/internal/models/db_models"
	"wildsafari/internal/models/request_models"
	"wildsafari/internal/repositories"
	"wildsafari/pkg/utils"
)

type InboxServiceInterface interface {
	SubmitContact(ctx context.Context, req request_models.ContactRequest) error
	Subscribe(ctx context.Context, email string) (created bool, err error)
	ListMessages(ctx context.Context, q request_models.ListQuery) ([]db_models.ContactMessage, error)
	UpdateMessageStatus(ctx context.Context, id, status string) ([]db_models.ContactMessage, error)
	ReplyToMessage(ctx context.Context, id string, req request_models.ReplyRequest) ([]db_models.ContactMessage, error)
	DeleteMessage(ctx context.Context, id string) ([]db_models.ContactMessage, error)
	ListSignups(ctx context.Context, q request_models.ListQuery) ([]db_models.NewsletterSignup, error)
	DeleteSignup(ctx context.Context, id string) ([]db_models.NewsletterSignup, error)
}

type InboxService struct {
	messageRepo    repositories.MessageRepository
	newsletterRepo repositories.NewsletterRepository
	mail           IMailService
	notifier       AdminNotifier
	log            logrus.FieldLogger
}

func NewInboxService(
	messageRepo repositories.MessageRepository,
	newsletterRepo repositories.NewsletterRepository,
	mail IMailService,
	notifier AdminNotifier,
	log logrus.FieldLogger,
) InboxServiceInterface {
	return &InboxService{
		messageRepo:    messageRepo,
		newsletterRepo: newsletterRepo,
		mail:           mail,
		notifier:       notifier,
		log:            log,
	}
}

var messageListSpec = listSpec[db_models.ContactMessage]{
	text: func(m db_models.ContactMessage) []string {
		return []string{m.Name, m.Email, m.Subject, m.Message}
	},
	status: func(m db_models.ContactMessage) string { return string(m.Status) },
	sorts: map[string]func(a, b db_models.ContactMessage) int{
		"name":       byString(func(m db_models.ContactMessage) string { return m.Name }),
		"subject":    byString(func(m db_models.ContactMessage) string { return m.Subject }),
		"created_at": byNumber(func(m db_models.ContactMessage) int64 { return m.CreatedAt.UnixNano() }),
	},
}

var signupListSpec = listSpec[db_models.NewsletterSignup]{
	text: func(s db_models.NewsletterSignup) []string { return []string{s.Email} },
	sorts: map[string]func(a, b db_models.NewsletterSignup) int{
		"email":      byString(func(s db_models.NewsletterSignup) string { return s.Email }),
		"created_at": byNumber(func(s db_models.NewsletterSignup) int64 { return s.CreatedAt.UnixNano() }),
	},
}

func (s *InboxService) SubmitContact(ctx context.Context, req request_models.ContactRequest) error {
	msg := &db_models.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
		Status:  db_models.MessageUnread,
	}
	if _, err := s.messageRepo.AddMessage(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	alert := fmt.Sprintf("New message from %s (%s)\n%s", msg.Name, msg.Email, msg.Subject)
	if err := s.notifier.NotifyAdmins(ctx, alert); err != nil {
		s.log.WithError(err).WithField("message_id", msg.ID).Warn("admin message alert failed")
	}
	return nil
}

// Subscribe is idempotent per email address, compared case-insensitively.
func (s *InboxService) Subscribe(ctx context.Context, email string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.newsletterRepo.FindSignupByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return false, nil
	}

	if _, err := s.newsletterRepo.AddSignup(ctx, &db_models.NewsletterSignup{Email: email}); err != nil {
		return false, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if err := s.mail.SendNewsletterWelcome(email); err != nil {
		s.log.WithError(err).Warn("newsletter welcome email failed")
	}
	return true, nil
}

func (s *InboxService) ListMessages(ctx context.Context, q request_models.ListQuery) ([]db_models.ContactMessage, error) {
	messages, err := s.messageRepo.GetMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return messageListSpec.apply(messages, q), nil
}

func (s *InboxService) UpdateMessageStatus(ctx context.Context, id, status string) ([]db_models.ContactMessage, error) {
	next := db_models.MessageStatus(strings.ToLower(strings.TrimSpace(status)))
	switch next {
	case db_models.MessageUnread, db_models.MessageRead, db_models.MessageReplied:
	default:
		return nil, utils.ErrInvalidStatus
	}
	messages, err := s.messageRepo.UpdateMessageStatus(ctx, id, next)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return messages, nil
}

// ReplyToMessage emails the sender and marks the message replied. The status
// only changes once the email went out.
func (s *InboxService) ReplyToMessage(ctx context.Context, id string, req request_models.ReplyRequest) ([]db_models.ContactMessage, error) {
	messages, err := s.messageRepo.GetMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	i := slices.IndexFunc(messages, func(m db_models.ContactMessage) bool { return m.ID == id })
	if i < 0 {
		return nil, utils.ErrRecordNotFound
	}
	msg := messages[i]

	subject := msg.Subject
	if !strings.HasPrefix(strings.ToLower(subject), "re:") {
		subject = "Re: " + subject
	}
	if err := s.mail.SendMailToNotifyUser(msg.Email, subject, strings.TrimSpace(req.Body), "Browse safaris", "/tours"); err != nil {
		s.log.WithError(err).WithField("message_id", msg.ID).Warn("reply email failed")
		return nil, fmt.Errorf("%w: %v", utils.ErrMailNotSent, err)
	}

	messages, err = s.messageRepo.UpdateMessageStatus(ctx, id, db_models.MessageReplied)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return messages, nil
}

func (s *InboxService) DeleteMessage(ctx context.Context, id string) ([]db_models.ContactMessage, error) {
	messages, err := s.messageRepo.DeleteMessage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return messages, nil
}

func (s *InboxService) ListSignups(ctx context.Context, q request_models.ListQuery) ([]db_models.NewsletterSignup, error) {
	signups, err := s.newsletterRepo.GetSignups(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return signupListSpec.apply(signups, q), nil
}

func (s *InboxService) DeleteSignup(ctx context.Context, id string) ([]db_models.NewsletterSignup, error) {
	signups, err := s.newsletterRepo.DeleteSignup(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return signups, nil
}
