package service

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/kurobe2240/NFT-EC/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2024, 2, n, 0, 0, 0, 0, time.UTC)
}

func TestDerive_Deterministic(t *testing.T) {
	listings := SampleListings()
	criteria := entity.DefaultCriteria()

	first := Derive(listings, criteria, 1)
	second := Derive(listings, criteria, 1)

	assert.Equal(t, first, second)
}

func TestDerive_ConjunctionOfPredicates(t *testing.T) {
	listings := SampleListings()
	criteria := entity.Criteria{
		Category: string(entity.CategoryIllustration),
		Style:    string(entity.StyleCyberpunk),
		Rarity:   entity.FilterAll,
		MinPrice: 1.0,
		MaxPrice: 2.5,
		SortBy:   entity.SortNewest,
	}

	result := Derive(listings, criteria, 1)

	for _, l := range result.Visible {
		assert.Equal(t, entity.CategoryIllustration, l.Category)
		assert.Equal(t, entity.StyleCyberpunk, l.Style)
		assert.GreaterOrEqual(t, l.Price, 1.0)
		assert.LessOrEqual(t, l.Price, 2.5)
	}

	// Every listing satisfying all four predicates must appear.
	expected := 0
	for _, l := range listings {
		if criteria.Matches(l) {
			expected++
		}
	}
	assert.Equal(t, expected, result.TotalCount)
}

func TestDerive_SortOrders(t *testing.T) {
	listings := SampleListings()

	cases := []struct {
		sortBy  entity.SortKey
		firstID string
		lastID  string
	}{
		{entity.SortNewest, "1", "6"},
		{entity.SortOldest, "6", "1"},
		{entity.SortPriceHigh, "1", "6"},
		{entity.SortPriceLow, "6", "1"},
		{entity.SortLikes, "1", "5"},
	}

	for _, tc := range cases {
		criteria := entity.DefaultCriteria()
		criteria.SortBy = tc.sortBy

		result := Derive(listings, criteria, 1)
		require.Len(t, result.Visible, 6, "sort %s", tc.sortBy)
		assert.Equal(t, tc.firstID, result.Visible[0].ID, "sort %s first", tc.sortBy)
		assert.Equal(t, tc.lastID, result.Visible[5].ID, "sort %s last", tc.sortBy)
	}
}

func TestDerive_SortIsStable(t *testing.T) {
	// All listings share the same price and creation time, so every sort key
	// must preserve dataset order for them.
	listings := []entity.Listing{
		testListing("a", 1.0, 10, day(1)),
		testListing("b", 1.0, 10, day(1)),
		testListing("c", 1.0, 10, day(1)),
		testListing("d", 1.0, 10, day(1)),
	}

	for _, sortBy := range []entity.SortKey{entity.SortNewest, entity.SortOldest, entity.SortPriceHigh, entity.SortPriceLow, entity.SortLikes} {
		criteria := entity.DefaultCriteria()
		criteria.SortBy = sortBy

		result := Derive(listings, criteria, 1)
		require.Len(t, result.Visible, 4, "sort %s", sortBy)
		for i, want := range []string{"a", "b", "c", "d"} {
			assert.Equal(t, want, result.Visible[i].ID, "sort %s position %d", sortBy, i)
		}
	}
}

func TestDerive_PaginationPartition(t *testing.T) {
	listings := make([]entity.Listing, 0, 13)
	for i := 0; i < 13; i++ {
		listings = append(listings, testListing(string(rune('a'+i)), float64(i)/10, i, day(i+1)))
	}
	criteria := entity.DefaultCriteria()
	criteria.SortBy = entity.SortOldest

	first := Derive(listings, criteria, 1)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 13, first.TotalCount)

	seen := make([]string, 0, 13)
	for page := 1; page <= first.TotalPages; page++ {
		result := Derive(listings, criteria, page)
		for _, l := range result.Visible {
			seen = append(seen, l.ID)
		}
	}
	require.Len(t, seen, 13)
	for i, id := range seen {
		assert.Equal(t, listings[i].ID, id)
	}

	third := Derive(listings, criteria, 3)
	assert.Len(t, third.Visible, 1)
}

func TestDerive_PageBeyondRangeIsEmpty(t *testing.T) {
	listings := SampleListings()
	criteria := entity.DefaultCriteria()

	result := Derive(listings, criteria, 4)
	assert.Empty(t, result.Visible)
	assert.Equal(t, 1, result.TotalPages)

	result = Derive(listings, criteria, 0)
	assert.Empty(t, result.Visible)
}

func newTestCatalog(t *testing.T, repo *memCriteriaRepo, notifier Notifier, cfg CatalogConfig) CatalogService {
	t.Helper()
	if notifier == nil {
		notifier = &recordingNotifier{}
	}
	if cfg.FetchDelay == 0 {
		cfg.FetchDelay = time.Millisecond
	}
	if cfg.AttemptTimeout == 0 {
		cfg.AttemptTimeout = 100 * time.Millisecond
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = time.Millisecond
	}
	rng := rand.New(rand.NewSource(1))
	return NewCatalogService(SampleListings(), repo, notifier, NewNoOpLogger(), rng, cfg)
}

func TestCatalogService_SetCriteriaResetsPage(t *testing.T) {
	repo := &memCriteriaRepo{}
	svc := newTestCatalog(t, repo, nil, CatalogConfig{})

	svc.SetPage(3)
	require.Equal(t, 3, svc.Page())

	criteria := entity.DefaultCriteria()
	criteria.Category = string(entity.CategoryIllustration)
	require.NoError(t, svc.SetCriteria(context.Background(), criteria))

	assert.Equal(t, 1, svc.Page())
	assert.Equal(t, criteria, svc.Criteria())

	svc.Flush()
	saved, ok := repo.savedCriteria()
	require.True(t, ok)
	assert.Equal(t, criteria, saved)
}

func TestCatalogService_SetCriteriaRejectsInvalid(t *testing.T) {
	svc := newTestCatalog(t, &memCriteriaRepo{}, nil, CatalogConfig{})

	bad := entity.DefaultCriteria()
	bad.MinPrice = 5
	bad.MaxPrice = 2

	err := svc.SetCriteria(context.Background(), bad)
	assert.ErrorIs(t, err, entity.ErrInvalidCriteria)
	assert.Equal(t, entity.DefaultCriteria(), svc.Criteria())
}

func TestCatalogService_ResetCriteria(t *testing.T) {
	repo := &memCriteriaRepo{}
	notifier := &recordingNotifier{}
	svc := newTestCatalog(t, repo, notifier, CatalogConfig{})

	criteria := entity.Criteria{
		Category: string(entity.CategoryIllustration),
		Style:    string(entity.StyleCyberpunk),
		Rarity:   entity.FilterAll,
		MinPrice: 1,
		MaxPrice: 2,
		SortBy:   entity.SortPriceLow,
	}
	require.NoError(t, svc.SetCriteria(context.Background(), criteria))
	svc.SetPage(2)

	svc.ResetCriteria(context.Background())

	def := entity.DefaultCriteria()
	assert.Equal(t, def, svc.Criteria())
	assert.Equal(t, 1, svc.Page())
	assert.True(t, notifier.hasSeverity(SeverityInfo))

	svc.Flush()
	saved, ok := repo.savedCriteria()
	require.True(t, ok)
	assert.Equal(t, def, saved)
}

func TestCatalogService_RehydratesSavedCriteria(t *testing.T) {
	saved := entity.DefaultCriteria()
	saved.Style = string(entity.StyleCyberpunk)
	saved.SortBy = entity.SortLikes
	repo := &memCriteriaRepo{saved: saved, exists: true}

	svc := newTestCatalog(t, repo, nil, CatalogConfig{})
	assert.Equal(t, saved, svc.Criteria())
}

func TestCatalogService_CorruptedCriteriaFallsBackToDefault(t *testing.T) {
	repo := &memCriteriaRepo{
		saved:  entity.Criteria{Category: "bogus", SortBy: "nope"},
		exists: true,
	}

	svc := newTestCatalog(t, repo, nil, CatalogConfig{})
	assert.Equal(t, entity.DefaultCriteria(), svc.Criteria())
}

func TestCatalogService_ToggleLike(t *testing.T) {
	svc := newTestCatalog(t, &memCriteriaRepo{}, nil, CatalogConfig{})

	before, err := svc.GetListing("1")
	require.NoError(t, err)

	liked, err := svc.ToggleLike("1")
	require.NoError(t, err)
	assert.True(t, liked.IsLiked)
	assert.Equal(t, before.Likes+1, liked.Likes)

	unliked, err := svc.ToggleLike("1")
	require.NoError(t, err)
	assert.False(t, unliked.IsLiked)
	assert.Equal(t, before.Likes, unliked.Likes)

	_, err = svc.ToggleLike("does-not-exist")
	assert.ErrorIs(t, err, entity.ErrListingNotFound)
}

func TestCatalogService_RefreshSucceedsWithoutInjectedFailures(t *testing.T) {
	svc := newTestCatalog(t, &memCriteriaRepo{}, nil, CatalogConfig{FailureRate: 0})
	assert.NoError(t, svc.Refresh(context.Background()))
}

func TestConcurrentRefreshAndConnect(t *testing.T) {
	// Each service must own its random source: catalog refresh and wallet
	// connect draw from their generators under different mutexes, so sharing
	// one rand.Rand between them races under concurrent requests.
	catalog := newTestCatalog(t, &memCriteriaRepo{}, nil, CatalogConfig{FailureRate: 0.5, MaxRetries: 1})
	wallet := NewWalletService(&recordingNotifier{}, NewNoOpLogger(), rand.New(rand.NewSource(2)), time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = catalog.Refresh(context.Background())
		}()
		go func() {
			defer wg.Done()
			_ = wallet.Connect(context.Background())
			wallet.Disconnect(context.Background())
		}()
	}
	wg.Wait()
}

func TestCatalogService_RefreshExhaustsRetries(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := newTestCatalog(t, &memCriteriaRepo{}, notifier, CatalogConfig{
		FailureRate: 1.0,
		MaxRetries:  3,
	})

	err := svc.Refresh(context.Background())
	assert.Error(t, err)
	assert.True(t, notifier.hasSeverity(SeverityError))
}
