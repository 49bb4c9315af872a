package repository

import "context"

// TokenRepository persists the anti-forgery token. Get returns ErrNotFound
// when no token has been issued yet.
type TokenRepository interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
}
