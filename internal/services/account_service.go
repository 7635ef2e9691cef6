package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"wildsafari/internal/models/db_models"
	"wildsafari/internal/models/request_models"
	"wildsafari/internal/models/response_models"
	"wildsafari/internal/repositories"
	"wildsafari/pkg/utils"
)

type AccountServiceInterface interface {
	Authenticate(ctx context.Context, email string) (*response_models.AccountLoginResponse, error)
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	Me(ctx context.Context, userID string) (*response_models.AccountResponse, error)
	ListAccounts(ctx context.Context, q request_models.ListQuery) ([]response_models.AccountResponse, error)
	UpdateRole(ctx context.Context, id, role string) ([]response_models.AccountResponse, error)
}

type AccountOptions struct {
	JWTSecret []byte
	TokenTTL  time.Duration
	DemoAuth  bool
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	opts        AccountOptions
	log         logrus.FieldLogger
}

func NewAccountService(accountRepo repositories.AccountRepository, opts AccountOptions, log logrus.FieldLogger) AccountServiceInterface {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = time.Hour
	}
	return &AccountService{
		accountRepo: accountRepo,
		opts:        opts,
		log:         log,
	}
}

var accountListSpec = listSpec[db_models.Account]{
	text:   func(a db_models.Account) []string { return []string{a.Name, a.Email} },
	status: func(a db_models.Account) string { return a.Role },
	sorts: map[string]func(a, b db_models.Account) int{
		"name":       byString(func(a db_models.Account) string { return a.Name }),
		"email":      byString(func(a db_models.Account) string { return a.Email }),
		"role":       byString(func(a db_models.Account) string { return a.Role }),
		"created_at": byNumber(func(a db_models.Account) int64 { return a.CreatedAt.UnixNano() }),
	},
}

// Authenticate is the passwordless demo login: the account for email is
// looked up case-insensitively and created on first use. The admin role is
// granted when the address as typed contains lowercase "admin". Only
// available with DEMO_AUTH.
func (a *AccountService) Authenticate(ctx context.Context, email string) (*response_models.AccountLoginResponse, error) {
	if !a.opts.DemoAuth {
		return nil, utils.ErrDemoAuthDisabled
	}

	raw := strings.TrimSpace(email)
	email = strings.ToLower(raw)
	role := db_models.RoleUser
	if strings.Contains(raw, "admin") {
		role = db_models.RoleAdmin
	}
	local, _, _ := strings.Cut(email, "@")

	account, created, err := a.accountRepo.FindOrCreateByEmail(ctx, &db_models.Account{
		Name:  local,
		Email: email,
		Role:  role,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if created {
		a.log.WithFields(logrus.Fields{"account_id": account.ID, "role": account.Role}).Warn("demo login created account")
	}
	return a.issueToken(account)
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &db_models.Account{
		Name:         strings.TrimSpace(request.DisplayName),
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleUser,
	}
	if err := a.accountRepo.InsertAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	resp := toAccountResponse(*account)
	return &resp, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	// Unknown email and wrong password look the same to the caller.
	if account == nil || account.PasswordHash == "" {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}
	return a.issueToken(account)
}

func (a *AccountService) Me(ctx context.Context, userID string) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	resp := toAccountResponse(*account)
	return &resp, nil
}

func (a *AccountService) ListAccounts(ctx context.Context, q request_models.ListQuery) ([]response_models.AccountResponse, error) {
	accounts, err := a.accountRepo.GetAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toAccountResponses(accountListSpec.apply(accounts, q)), nil
}

func (a *AccountService) UpdateRole(ctx context.Context, id, role string) ([]response_models.AccountResponse, error) {
	if role != db_models.RoleUser && role != db_models.RoleAdmin {
		return nil, utils.ErrInvalidRole
	}
	accounts, err := a.accountRepo.UpdateAccountRole(ctx, id, role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toAccountResponses(accounts), nil
}

func (a *AccountService) issueToken(account *db_models.Account) (*response_models.AccountLoginResponse, error) {
	token, err := utils.CreateToken(a.opts.JWTSecret, account.ID, account.Email, account.Role, a.opts.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}
	return &response_models.AccountLoginResponse{
		Token:   token,
		Account: toAccountResponse(*account),
	}, nil
}

func toAccountResponse(a db_models.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:     a.ID,
		Name:   a.Name,
		Email:  a.Email,
		Role:   a.Role,
		Avatar: a.Avatar,
	}
}

func toAccountResponses(accounts []db_models.Account) []response_models.AccountResponse {
	out := make([]response_models.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountResponse(a))
	}
	return out
}
