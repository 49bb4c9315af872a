package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/kurobe2240/NFT-EC/internal/domain/entity"
	"github.com/kurobe2240/NFT-EC/internal/platform/logger"
	"github.com/kurobe2240/NFT-EC/internal/repository"
)

type NoOpLogger struct{}

func (l *NoOpLogger) Debug(args ...interface{})                   {}
func (l *NoOpLogger) Debugf(template string, args ...interface{}) {}
func (l *NoOpLogger) Info(args ...interface{})                    {}
func (l *NoOpLogger) Infof(template string, args ...interface{})  {}
func (l *NoOpLogger) Warn(args ...interface{})                    {}
func (l *NoOpLogger) Warnf(template string, args ...interface{})  {}
func (l *NoOpLogger) Error(args ...interface{})                   {}
func (l *NoOpLogger) Errorf(template string, args ...interface{}) {}
func (l *NoOpLogger) Fatal(args ...interface{})                   {}
func (l *NoOpLogger) Fatalf(template string, args ...interface{}) {}
func (l *NoOpLogger) With(args ...interface{}) logger.Logger      { return l }

func NewNoOpLogger() logger.Logger {
	return &NoOpLogger{}
}

type notice struct {
	Message  string
	Severity Severity
}

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	mu      sync.Mutex
	notices []notice
}

func (n *recordingNotifier) Notify(_ context.Context, message string, severity Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice{Message: message, Severity: severity})
}

func (n *recordingNotifier) all() []notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]notice, len(n.notices))
	copy(out, n.notices)
	return out
}

func (n *recordingNotifier) hasSeverity(severity Severity) bool {
	for _, ev := range n.all() {
		if ev.Severity == severity {
			return true
		}
	}
	return false
}

func (n *recordingNotifier) hasMessageContaining(substr string) bool {
	for _, ev := range n.all() {
		if strings.Contains(ev.Message, substr) {
			return true
		}
	}
	return false
}

// memCartRepo is an in-memory CartRepository for tests.
type memCartRepo struct {
	mu      sync.Mutex
	saved   []entity.Listing
	exists  bool
	loadErr error
	saveErr error
}

func (r *memCartRepo) Load(_ context.Context) ([]entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if !r.exists {
		return nil, repository.ErrNotFound
	}
	items := make([]entity.Listing, len(r.saved))
	copy(items, r.saved)
	return items, nil
}

func (r *memCartRepo) Save(_ context.Context, items []entity.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = make([]entity.Listing, len(items))
	copy(r.saved, items)
	r.exists = true
	return nil
}

func (r *memCartRepo) Delete(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = nil
	r.exists = false
	return nil
}

func (r *memCartRepo) keyExists() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.exists
}

func (r *memCartRepo) savedItems() []entity.Listing {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]entity.Listing, len(r.saved))
	copy(items, r.saved)
	return items
}

// memCriteriaRepo is an in-memory CriteriaRepository for tests.
type memCriteriaRepo struct {
	mu      sync.Mutex
	saved   entity.Criteria
	exists  bool
	loadErr error
}

func (r *memCriteriaRepo) Load(_ context.Context) (entity.Criteria, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return entity.Criteria{}, r.loadErr
	}
	if !r.exists {
		return entity.Criteria{}, repository.ErrNotFound
	}
	return r.saved, nil
}

func (r *memCriteriaRepo) Save(_ context.Context, c entity.Criteria) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = c
	r.exists = true
	return nil
}

func (r *memCriteriaRepo) savedCriteria() (entity.Criteria, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saved, r.exists
}

func testListing(id string, price float64, likes int, createdAt time.Time) entity.Listing {
	return entity.Listing{
		ID:        id,
		Title:     "Listing " + id,
		Price:     price,
		Likes:     likes,
		CreatedAt: createdAt,
		Category:  entity.CategoryIllustration,
		Style:     entity.StyleCyberpunk,
		Rarity:    entity.RarityCommon,
	}
}
