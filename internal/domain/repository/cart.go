package repository

import (
	"context"

	"github.com/polkiloo/scentshop/internal/domain/model"
)

// CartRepository stores the ephemeral per-user cart.
type CartRepository interface {
	// Get returns the user's cart or ErrNotFound when none exists.
	Get(ctx context.Context, userID int64) (*model.Cart, error)
	Save(ctx context.Context, cart *model.Cart) error
	Delete(ctx context.Context, userID int64) error
}
