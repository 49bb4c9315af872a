package security

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/kurobe2240/NFT-EC/internal/platform/logger"
	"github.com/kurobe2240/NFT-EC/internal/repository"
)

// tokenBytes is the entropy of the anti-forgery token: 32 random bytes,
// hex-encoded to 64 characters.
const tokenBytes = 32

// CSRFManager issues and validates the simulated anti-forgery token expected
// in the X-CSRF-Token header of mutating requests.
type CSRFManager struct {
	repo repository.TokenRepository
	log  logger.Logger
}

func NewCSRFManager(repo repository.TokenRepository, log logger.Logger) *CSRFManager {
	return &CSRFManager{repo: repo, log: log}
}

// Token returns the current token, generating and persisting a fresh one if
// none exists yet.
func (m *CSRFManager) Token(ctx context.Context) (string, error) {
	token, err := m.repo.Get(ctx)
	if err == nil && token != "" {
		return token, nil
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		m.log.Warnf("Failed to read csrf token, regenerating: %v", err)
	}

	token, err = generateToken()
	if err != nil {
		return "", err
	}
	if err := m.repo.Set(ctx, token); err != nil {
		return "", fmt.Errorf("failed to store csrf token: %w", err)
	}
	return token, nil
}

// Validate reports whether the presented token matches the stored one, using
// a constant-time comparison.
func (m *CSRFManager) Validate(ctx context.Context, presented string) bool {
	if presented == "" {
		return false
	}
	stored, err := m.repo.Get(ctx)
	if err != nil || stored == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}

func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate csrf token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
