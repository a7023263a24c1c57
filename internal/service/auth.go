package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/biolink/api/internal/database"
	"github.com/biolink/api/internal/model"
)

const (
	// bcrypt cost factor (10-14 recommended for production)
	bcryptCost = 12

	minPasswordLength = 8
	maxPasswordLength = 128
)

// DefaultAllowedEmailDomains lists the mainstream providers accepted at
// registration. Disposable-address domains are kept out on purpose.
var DefaultAllowedEmailDomains = []string{
	"gmail.com", "outlook.com", "yahoo.com", "icloud.com",
	"proton.me", "hotmail.com", "me.com",
}

// AccountRepository defines the interface for account storage
type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	GetByID(ctx context.Context, id string) (*model.Account, error)
	GetByUsername(ctx context.Context, username string) (*model.Account, error)
	GetByEmail(ctx context.Context, email string) (*model.Account, error)
}

// TokenIssuer mints access tokens for authenticated accounts.
type TokenIssuer interface {
	Generate(claims model.TokenClaims) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	accountRepo    AccountRepository
	tokens         TokenIssuer
	allowedDomains map[string]bool
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	AccountRepo AccountRepository
	Tokens      TokenIssuer

	// AllowedEmailDomains defaults to DefaultAllowedEmailDomains.
	AllowedEmailDomains []string
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	domains := cfg.AllowedEmailDomains
	if len(domains) == 0 {
		domains = DefaultAllowedEmailDomains
	}
	allowed := make(map[string]bool, len(domains))
	for _, d := range domains {
		allowed[strings.ToLower(d)] = true
	}
	return &AuthService{
		accountRepo:    cfg.AccountRepo,
		tokens:         cfg.Tokens,
		allowedDomains: allowed,
	}
}

// AuthResult is a successful registration or login.
type AuthResult struct {
	Account *model.Account
	Token   string
}

// Register creates a new account.
//
// The username pre-check gives a friendly error on the common path; the
// store's unique username index is what actually closes the race between
// two concurrent registrations, surfacing the loser's write as
// ErrUsernameTaken. The account document and the global user counter are
// written in one transaction.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*AuthResult, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if err := s.validateEmail(email); err != nil {
		return nil, err
	}

	username := model.NormalizeUsername(req.Username)
	if !model.ValidUsername(username) {
		return nil, ErrUsernameInvalid
	}

	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.accountRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	byEmail, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if byEmail != nil {
		return nil, ErrEmailExists
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		Email:       email,
		Username:    username,
		DisplayName: req.Username,
		Bio:         "New to Biolink.",
		Theme:       "dark",
		Hash:        &hash,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	token, err := s.tokens.Generate(model.TokenClaims{
		UserID:   account.ID,
		Email:    account.Email,
		Username: account.Username,
	})
	if err != nil {
		return nil, err
	}

	return &AuthResult{Account: account, Token: token}, nil
}

// Login verifies credentials and issues a token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*AuthResult, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil || account.Hash == nil {
		// Run the hash comparison anyway to keep timing uniform.
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$12$AAAAAAAAAAAAAAAAAAAAAA"), []byte(req.Password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*account.Hash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(model.TokenClaims{
		UserID:   account.ID,
		Email:    account.Email,
		Username: account.Username,
	})
	if err != nil {
		return nil, err
	}

	return &AuthResult{Account: account, Token: token}, nil
}

// GetAccount returns the authenticated user's own account.
func (s *AuthService) GetAccount(ctx context.Context, userID string) (*model.Account, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	account, err := s.accountRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

func (s *AuthService) validateEmail(email string) error {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrInvalidEmail
	}
	domain := email[at+1:]
	if !s.allowedDomains[domain] {
		return ErrEmailNotAllowed
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > maxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
