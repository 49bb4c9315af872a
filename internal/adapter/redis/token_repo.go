package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/kurobe2240/NFT-EC/internal/repository"
	"github.com/redis/go-redis/v9"
)

const tokenKey = "csrf-token"

type tokenRepository struct {
	client *redis.Client
}

func NewTokenRepository(client *redis.Client) repository.TokenRepository {
	return &tokenRepository{client: client}
}

func (r *tokenRepository) Get(ctx context.Context) (string, error) {
	val, err := r.client.Get(ctx, tokenKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", repository.ErrNotFound
		}
		return "", fmt.Errorf("failed to get csrf token from redis: %w", err)
	}
	return val, nil
}

func (r *tokenRepository) Set(ctx context.Context, token string) error {
	if err := r.client.Set(ctx, tokenKey, token, 0).Err(); err != nil {
		return fmt.Errorf("failed to save csrf token to redis: %w", err)
	}
	return nil
}
