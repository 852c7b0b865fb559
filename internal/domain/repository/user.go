package repository

import (
	"context"
	"time"

	"github.com/polkiloo/scentshop/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string, role model.UserRole, verifyToken string, verifyExpires time.Time) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	// VerifyByToken marks the matching unexpired token as verified and clears it.
	VerifyByToken(ctx context.Context, token string) (*model.User, error)
	SetResetToken(ctx context.Context, userID int64, token string, expires time.Time) error
	// ResetPassword swaps the password hash for the matching unexpired reset token.
	ResetPassword(ctx context.Context, token, passwordHash string) (*model.User, error)
}
