package repository

import (
	"context"

	"github.com/polkiloo/scentshop/internal/domain/model"
)

// CategoryRepository manages catalog categories.
type CategoryRepository interface {
	Create(ctx context.Context, name string) (*model.Category, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]model.Category, error)
}
