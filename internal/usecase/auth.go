package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/scentshop/internal/config"
	domainErrors "github.com/polkiloo/scentshop/internal/domain/errors"
	"github.com/polkiloo/scentshop/internal/domain/model"
	"github.com/polkiloo/scentshop/internal/domain/repository"
	pkgAuth "github.com/polkiloo/scentshop/internal/pkg/auth"
)

const (
	verifyTokenTTL = 24 * time.Hour
	resetTokenTTL  = time.Hour
)

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users    repository.UserRepository
	hasher   pkgAuth.PasswordHasher
	tokens   pkgAuth.Strategy
	notifier Notifier
	baseURL  string
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, notifier Notifier, cfg *config.Config) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy, notifier: notifier, baseURL: cfg.PublicBaseURL}
}

// Register creates an unverified user and queues the verification email.
// The account cannot authenticate until the email is verified.
func (u *AuthUseCase) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || password == "" || !strings.Contains(email, "@") {
		return nil, domainErrors.ErrValidation
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	token := uuid.NewString()
	usr, err := u.users.Create(ctx, name, email, hash, model.RoleCustomer, token, time.Now().Add(verifyTokenTTL))
	if err != nil {
		return nil, err
	}

	u.notifier.Enqueue(verificationEmail(u.baseURL, usr.Email, usr.Name, token))
	return usr, nil
}

// Authenticate validates credentials and returns an auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	if !usr.IsVerified {
		return nil, "", domainErrors.ErrEmailNotVerified
	}

	token, err := u.tokens.IssueToken(usr.ID, usr.Role)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// VerifyEmail marks the account with the matching unexpired token as verified.
func (u *AuthUseCase) VerifyEmail(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, domainErrors.ErrValidation
	}
	return u.users.VerifyByToken(ctx, token)
}

// RequestPasswordReset queues a reset email. Unknown addresses are ignored so
// the endpoint does not leak which emails are registered.
func (u *AuthUseCase) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return domainErrors.ErrValidation
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil
		}
		return err
	}

	token := uuid.NewString()
	if err := u.users.SetResetToken(ctx, usr.ID, token, time.Now().Add(resetTokenTTL)); err != nil {
		return err
	}

	u.notifier.Enqueue(resetEmail(u.baseURL, usr.Email, usr.Name, token))
	return nil
}

// ResetPassword swaps the password for the matching unexpired reset token.
func (u *AuthUseCase) ResetPassword(ctx context.Context, token, password string) error {
	if token == "" || password == "" {
		return domainErrors.ErrValidation
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return err
	}

	_, err = u.users.ResetPassword(ctx, token, hash)
	return err
}

// ParseToken extracts user identity from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, model.UserRole, error) {
	if token == "" {
		return 0, "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
