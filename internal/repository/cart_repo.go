package repository

import (
	"context"

	"github.com/kurobe2240/NFT-EC/internal/domain/entity"
)

// CartRepository persists the cart under a single key in the local key-value
// store. Load returns ErrNotFound when no cart has ever been saved; Delete
// removes the key entirely rather than writing an empty set.
type CartRepository interface {
	Load(ctx context.Context) ([]entity.Listing, error)
	Save(ctx context.Context, items []entity.Listing) error
	Delete(ctx context.Context) error
}
