package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kurobe2240/NFT-EC/internal/platform/logger"
	"github.com/kurobe2240/NFT-EC/internal/repository"
	"github.com/kurobe2240/NFT-EC/internal/security"
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
	token string
}

func (r *memTokenRepo) Get(_ context.Context) (string, error) {
	if r.token == "" {
		return "", repository.ErrNotFound
	}
	return r.token, nil
}

func (r *memTokenRepo) Set(_ context.Context, token string) error {
	r.token = token
	return nil
}

func TestCSRFGuard(t *testing.T) {
	csrf := security.NewCSRFManager(&memTokenRepo{}, &noOpLogger{})
	token, err := csrf.Token(context.Background())
	require.NoError(t, err)

	guarded := CSRFGuard(csrf, &noOpLogger{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("safe methods pass without a token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/listings", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("mutating request without a token is rejected with the json envelope", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/cart/items", nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "invalid csrf token", body.Error)
	})

	t.Run("mutating request with the issued token passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/cart/items", nil)
		req.Header.Set(csrfHeader, token)

		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
