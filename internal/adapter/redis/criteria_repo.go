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

const criteriaKey = "nftFilters"

type criteriaRepository struct {
	client *redis.Client
}

func NewCriteriaRepository(client *redis.Client) repository.CriteriaRepository {
	return &criteriaRepository{client: client}
}

func (r *criteriaRepository) Load(ctx context.Context) (entity.Criteria, error) {
	val, err := r.client.Get(ctx, criteriaKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.Criteria{}, repository.ErrNotFound
		}
		return entity.Criteria{}, fmt.Errorf("failed to get filters from redis: %w", err)
	}

	var c entity.Criteria
	if err := json.Unmarshal([]byte(val), &c); err != nil {
		return entity.Criteria{}, fmt.Errorf("failed to unmarshal filter data: %w", err)
	}
	return c, nil
}

func (r *criteriaRepository) Save(ctx context.Context, c entity.Criteria) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal filters: %w", err)
	}
	if err := r.client.Set(ctx, criteriaKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save filters to redis: %w", err)
	}
	return nil
}
