package service

import (
	"context"
	"errors"
	"sync"

	"github.com/kurobe2240/NFT-EC/internal/domain/entity"
	"github.com/kurobe2240/NFT-EC/internal/platform/logger"
	"github.com/kurobe2240/NFT-EC/internal/repository"
)

type CartService interface {
	Items() []entity.Listing
	AddToCart(ctx context.Context, l entity.Listing)
	RemoveFromCart(ctx context.Context, id string)
	ClearCart(ctx context.Context)
	IsInCart(id string) bool
	Total() float64
	Flush()
}

type cartService struct {
	mu   sync.Mutex
	cart *entity.Cart

	repo repository.CartRepository
	log  logger.Logger
	wg   sync.WaitGroup
}

// NewCartService rehydrates the cart from durable storage. A missing,
// corrupted, or unreadable persisted cart degrades to an empty one with a
// logged diagnostic; construction never fails.
func NewCartService(repo repository.CartRepository, log logger.Logger) CartService {
	s := &cartService{
		cart: entity.NewCart(),
		repo: repo,
		log:  log,
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	items, err := repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Warnf("Failed to load cart from storage, starting empty: %v", err)
		}
		return s
	}
	for _, item := range items {
		s.cart.Add(item)
	}
	return s
}

func (s *cartService) Items() []entity.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]entity.Listing, len(s.cart.Items))
	copy(items, s.cart.Items)
	return items
}

// AddToCart appends a snapshot of the listing. Adding an ID already in the
// cart is a no-op. The in-memory commit happens first; the durable write is
// scheduled afterwards and never blocks the caller.
func (s *cartService) AddToCart(_ context.Context, l entity.Listing) {
	s.mu.Lock()
	changed := s.cart.Add(l)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if changed {
		s.persist(snapshot)
	}
}

func (s *cartService) RemoveFromCart(_ context.Context, id string) {
	s.mu.Lock()
	changed := s.cart.Remove(id)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if changed {
		s.persist(snapshot)
	}
}

// ClearCart empties the cart and deletes the persisted key entirely rather
// than writing an empty set.
func (s *cartService) ClearCart(_ context.Context) {
	s.mu.Lock()
	s.cart.Clear()
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := s.repo.Delete(ctx); err != nil {
			s.log.Errorf("Failed to delete persisted cart: %v", err)
		}
	}()
}

func (s *cartService) IsInCart(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Contains(id)
}

// Total is recomputed from the current items on every call; there is no
// memoized snapshot to go stale.
func (s *cartService) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

func (s *cartService) snapshotLocked() []entity.Listing {
	items := make([]entity.Listing, len(s.cart.Items))
	copy(items, s.cart.Items)
	return items
}

// persist writes best-effort on a detached context so a cancelled caller
// cannot abort a write for a commit that already happened. Failures are
// logged only; the in-memory state is never rolled back.
func (s *cartService) persist(items []entity.Listing) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := s.repo.Save(ctx, items); err != nil {
			s.log.Errorf("Failed to persist cart: %v", err)
		}
	}()
}

// Flush waits for outstanding persistence writes; used by tests and shutdown.
func (s *cartService) Flush() {
	s.wg.Wait()
}
