package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"wildsafari/internal/models/db_models"
)

// AccountRepository stores emails lower-cased, so lookups are case-insensitive.
type AccountRepository interface {
	GetAccounts(ctx context.Context) ([]db_models.Account, error)
	FindByID(ctx context.Context, id string) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	InsertAccount(ctx context.Context, account *db_models.Account) error
	// FindOrCreateByEmail returns the account for email, inserting candidate
	// when none exists. created reports whether an insert happened.
	FindOrCreateByEmail(ctx context.Context, candidate *db_models.Account) (account *db_models.Account, created bool, err error)
	UpdateAccountRole(ctx context.Context, id, role string) ([]db_models.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *accountRepository) GetAccounts(ctx context.Context) ([]db_models.Account, error) {
	var out []db_models.Account
	err := a.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (a *accountRepository) FindByID(ctx context.Context, id string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", normalizeEmail(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (a *accountRepository) InsertAccount(ctx context.Context, account *db_models.Account) error {
	account.Email = normalizeEmail(account.Email)
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) FindOrCreateByEmail(ctx context.Context, candidate *db_models.Account) (*db_models.Account, bool, error) {
	var (
		result  *db_models.Account
		created bool
	)
	email := normalizeEmail(candidate.Email)

	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing db_models.Account
		err := tx.First(&existing, "email = ?", email).Error
		if err == nil {
			result = &existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		candidate.Email = email
		if err := tx.Create(candidate).Error; err != nil {
			return err
		}
		result, created = candidate, true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return result, created, nil
}

func (a *accountRepository) UpdateAccountRole(ctx context.Context, id, role string) ([]db_models.Account, error) {
	err := a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Update("role", role).Error
	if err != nil {
		return nil, err
	}
	return a.GetAccounts(ctx)
}
