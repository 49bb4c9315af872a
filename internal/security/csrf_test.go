package security

import (
	"context"
	"regexp"
	"sync"
	"testing"

	"github.com/kurobe2240/NFT-EC/internal/platform/logger"
	"github.com/kurobe2240/NFT-EC/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noOpLogger struct{}

func (l *noOpLogger) Debug(args ...interface{})                   {}
func (l *noOpLogger) Debugf(template string, args ...interface{}) {}
func (l *noOpLogger) Info(args ...interface{})                    {}
func (l *noOpLogger) Infof(template string, args ...interface{})  {}
func (l *noOpLogger) Warn(args ...interface{})                    {}
func (l *noOpLogger) Warnf(template string, args ...interface{})  {}
func (l *noOpLogger) Error(args ...interface{})                   {}
func (l *noOpLogger) Errorf(template string, args ...interface{}) {}
func (l *noOpLogger) Fatal(args ...interface{})                   {}
func (l *noOpLogger) Fatalf(template string, args ...interface{}) {}
func (l *noOpLogger) With(args ...interface{}) logger.Logger      { return l }

type memTokenRepo struct {
	mu    sync.Mutex
	token string
}

func (r *memTokenRepo) Get(_ context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.token == "" {
		return "", repository.ErrNotFound
	}
	return r.token, nil
}

func (r *memTokenRepo) Set(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.token = token
	return nil
}

var hexToken = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestCSRFManager_TokenIsGeneratedOnceAndReused(t *testing.T) {
	m := NewCSRFManager(&memTokenRepo{}, &noOpLogger{})
	ctx := context.Background()

	first, err := m.Token(ctx)
	require.NoError(t, err)
	assert.Regexp(t, hexToken, first)

	second, err := m.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCSRFManager_Validate(t *testing.T) {
	m := NewCSRFManager(&memTokenRepo{}, &noOpLogger{})
	ctx := context.Background()

	assert.False(t, m.Validate(ctx, "anything"), "no token issued yet")

	token, err := m.Token(ctx)
	require.NoError(t, err)

	assert.True(t, m.Validate(ctx, token))
	assert.False(t, m.Validate(ctx, ""))
	assert.False(t, m.Validate(ctx, "deadbeef"))
}
