package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domainErrors "github.com/polkiloo/scentshop/internal/domain/errors"
	"github.com/polkiloo/scentshop/internal/domain/model"
	"github.com/polkiloo/scentshop/internal/domain/repository"
)

// CartStore keeps carts in Redis as JSON blobs keyed by user. Entries expire
// after the configured TTL so abandoned carts clean themselves up.
type CartStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCartStore(rdb *redis.Client, ttl time.Duration) *CartStore {
	return &CartStore{rdb: rdb, ttl: ttl}
}

func cartKey(userID int64) string {
	return fmt.Sprintf("cart:%d", userID)
}

func (s *CartStore) Get(ctx context.Context, userID int64) (*model.Cart, error) {
	data, err := s.rdb.Get(ctx, cartKey(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	var cart model.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return &cart, nil
}

func (s *CartStore) Save(ctx context.Context, cart *model.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	return s.rdb.Set(ctx, cartKey(cart.UserID), data, s.ttl).Err()
}

func (s *CartStore) Delete(ctx context.Context, userID int64) error {
	return s.rdb.Del(ctx, cartKey(userID)).Err()
}

var _ repository.CartRepository = (*CartStore)(nil)
