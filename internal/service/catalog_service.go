package service

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/kurobe2240/NFT-EC/internal/domain/entity"
	"github.com/kurobe2240/NFT-EC/internal/platform/logger"
	"github.com/kurobe2240/NFT-EC/internal/repository"
)

// PageSize is the fixed number of listings per catalog page.
const PageSize = 6

const persistTimeout = 5 * time.Second

var errSimulatedNetwork = errors.New("ネットワークエラーが発生しました")

// CatalogPage is one derived view of the catalog: the visible slice for the
// requested page plus the totals the pager needs.
type CatalogPage struct {
	Visible    []entity.Listing `json:"visible"`
	TotalPages int              `json:"totalPages"`
	TotalCount int              `json:"totalCount"`
}

// Derive filters, sorts, and paginates in one pure pass. Identical inputs
// produce identical output; the input slice is never mutated. Pages are
// 1-based and a page past the end yields an empty slice — callers own
// clamping and must reset to page 1 when criteria change.
func Derive(listings []entity.Listing, criteria entity.Criteria, page int) CatalogPage {
	filtered := make([]entity.Listing, 0, len(listings))
	for _, l := range listings {
		if criteria.Matches(l) {
			filtered = append(filtered, l)
		}
	}

	// Stable so that listings with equal sort keys keep dataset order.
	sort.SliceStable(filtered, func(i, j int) bool {
		return criteria.Less(filtered[i], filtered[j])
	})

	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize

	start := (page - 1) * PageSize
	if page < 1 || start >= total {
		return CatalogPage{Visible: []entity.Listing{}, TotalPages: totalPages, TotalCount: total}
	}
	end := start + PageSize
	if end > total {
		end = total
	}

	visible := make([]entity.Listing, end-start)
	copy(visible, filtered[start:end])
	return CatalogPage{Visible: visible, TotalPages: totalPages, TotalCount: total}
}

type CatalogService interface {
	Browse() CatalogPage
	GetListing(id string) (entity.Listing, error)
	ToggleLike(id string) (entity.Listing, error)
	Criteria() entity.Criteria
	SetCriteria(ctx context.Context, c entity.Criteria) error
	ResetCriteria(ctx context.Context)
	Page() int
	SetPage(page int)
	Refresh(ctx context.Context) error
	Flush()
}

// CatalogConfig tunes the simulated data refresh and its retry policy.
type CatalogConfig struct {
	FailureRate    float64
	FetchDelay     time.Duration
	AttemptTimeout time.Duration
	RetryDelay     time.Duration
	MaxRetries     uint64
}

type catalogService struct {
	mu       sync.Mutex
	listings []entity.Listing
	criteria entity.Criteria
	page     int

	criteriaRepo repository.CriteriaRepository
	notifier     Notifier
	log          logger.Logger
	rng          *rand.Rand
	cfg          CatalogConfig
	wg           sync.WaitGroup
}

// NewCatalogService builds the catalog around a static listing set and
// rehydrates the persisted criteria. Missing or corrupted persisted criteria
// degrade to the default filter; construction never fails because of them.
func NewCatalogService(
	listings []entity.Listing,
	criteriaRepo repository.CriteriaRepository,
	notifier Notifier,
	log logger.Logger,
	rng *rand.Rand,
	cfg CatalogConfig,
) CatalogService {
	if cfg.FetchDelay <= 0 {
		cfg.FetchDelay = 300 * time.Millisecond
	}
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = 5 * time.Second
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}

	s := &catalogService{
		listings:     listings,
		criteria:     entity.DefaultCriteria(),
		page:         1,
		criteriaRepo: criteriaRepo,
		notifier:     notifier,
		log:          log,
		rng:          rng,
		cfg:          cfg,
	}
	s.rehydrate()
	return s
}

func (s *catalogService) rehydrate() {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	saved, err := s.criteriaRepo.Load(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Warnf("Failed to load saved filters, falling back to defaults: %v", err)
		}
		return
	}
	if err := saved.Validate(); err != nil {
		s.log.Warnf("Saved filters are invalid, falling back to defaults: %v", err)
		return
	}
	s.criteria = saved
}

func (s *catalogService) Browse() CatalogPage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Derive(s.listings, s.criteria, s.page)
}

func (s *catalogService) GetListing(id string) (entity.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.listings {
		if l.ID == id {
			return l, nil
		}
	}
	return entity.Listing{}, entity.ErrListingNotFound
}

// ToggleLike flips the per-viewer liked flag and adjusts the like count.
// Like state lives in memory only and resets on restart.
func (s *catalogService) ToggleLike(id string) (entity.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.listings {
		if s.listings[i].ID != id {
			continue
		}
		if s.listings[i].IsLiked {
			s.listings[i].Likes--
		} else {
			s.listings[i].Likes++
		}
		s.listings[i].IsLiked = !s.listings[i].IsLiked
		return s.listings[i], nil
	}
	return entity.Listing{}, entity.ErrListingNotFound
}

func (s *catalogService) Criteria() entity.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// SetCriteria commits the new criteria, resets the page to 1, and schedules
// the durable write. The write runs after the in-memory commit and its
// failure is logged, never rolled back.
func (s *catalogService) SetCriteria(_ context.Context, c entity.Criteria) error {
	if err := c.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.criteria = c
	s.page = 1
	s.mu.Unlock()

	s.persistCriteria(c)
	return nil
}

func (s *catalogService) ResetCriteria(ctx context.Context) {
	def := entity.DefaultCriteria()

	s.mu.Lock()
	s.criteria = def
	s.page = 1
	s.mu.Unlock()

	s.persistCriteria(def)
	s.notifier.Notify(ctx, "フィルターをリセットしました", SeverityInfo)
}

func (s *catalogService) persistCriteria(c entity.Criteria) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := s.criteriaRepo.Save(ctx, c); err != nil {
			s.log.Errorf("Failed to persist filters: %v", err)
		}
	}()
}

func (s *catalogService) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

func (s *catalogService) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.mu.Lock()
	s.page = page
	s.mu.Unlock()
}

// Refresh simulates fetching the catalog from a backend. Each attempt may
// fail with an injected transient error; attempts are bounded by a constant
// retry policy. Exhausting the retries surfaces a recoverable error
// notification and returns the last error so callers can offer a manual
// retry.
func (s *catalogService) Refresh(ctx context.Context) error {
	op := func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, s.cfg.AttemptTimeout)
		defer cancel()
		return s.fetch(attemptCtx)
	}

	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(s.cfg.RetryDelay), s.cfg.MaxRetries)
	if err := backoff.Retry(op, backoff.WithContext(policy, ctx)); err != nil {
		s.log.Errorf("Catalog refresh failed after retries: %v", err)
		s.notifier.Notify(ctx, "最大リトライ回数を超えました", SeverityError)
		return err
	}
	return nil
}

func (s *catalogService) fetch(ctx context.Context) error {
	s.mu.Lock()
	fail := s.rng.Float64() < s.cfg.FailureRate
	s.mu.Unlock()
	if fail {
		return errSimulatedNetwork
	}

	select {
	case <-time.After(s.cfg.FetchDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Flush waits for outstanding asynchronous persistence writes. Production
// code treats them as fire-and-forget; tests and shutdown await them here.
func (s *catalogService) Flush() {
	s.wg.Wait()
}
