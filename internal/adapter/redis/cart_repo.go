package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kurobe2240/NFT-EC/internal/domain/entity"
	"github.com/kurobe2240/NFT-EC/internal/repository"
	"github.com/redis/go-redis/v9"
)

// cartKey matches the persisted-state layout of the web client: the cart is
// one JSON array of listing snapshots under a fixed key.
const cartKey = "cart"

type cartRepository struct {
	client *redis.Client
}

func NewCartRepository(client *redis.Client) repository.CartRepository {
	return &cartRepository{client: client}
}

func (r *cartRepository) Load(ctx context.Context) ([]entity.Listing, error) {
	val, err := r.client.Get(ctx, cartKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cart from redis: %w", err)
	}

	var items []entity.Listing
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart data: %w", err)
	}
	return items, nil
}

func (r *cartRepository) Save(ctx context.Context, items []entity.Listing) error {
	if items == nil {
		items = []entity.Listing{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := r.client.Set(ctx, cartKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save cart to redis: %w", err)
	}
	return nil
}

func (r *cartRepository) Delete(ctx context.Context) error {
	if err := r.client.Del(ctx, cartKey).Err(); err != nil {
		return fmt.Errorf("failed to delete cart from redis: %w", err)
	}
	return nil
}
