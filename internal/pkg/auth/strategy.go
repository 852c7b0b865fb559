package auth

import (
	"time"

	"github.com/polkiloo/scentshop/internal/domain/model"
)

// Strategy issues and verifies auth tokens carrying the user identity and role.
type Strategy interface {
	IssueToken(userID int64, role model.UserRole) (string, error)
	ParseToken(token string) (int64, model.UserRole, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
