package repository

import (
	"context"

	"github.com/kurobe2240/NFT-EC/internal/domain/entity"
)

// CriteriaRepository persists the active filter criteria. Load returns
// ErrNotFound when no criteria have been saved yet.
type CriteriaRepository interface {
	Load(ctx context.Context) (entity.Criteria, error)
	Save(ctx context.Context, c entity.Criteria) error
}
