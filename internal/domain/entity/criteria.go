package entity

import "fmt"

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortPriceHigh SortKey = "price_high"
	SortPriceLow  SortKey = "price_low"
	SortLikes     SortKey = "likes"
)

const (
	MinFilterPrice = 0.0
	MaxFilterPrice = 10.0
)

// Criteria is the active combination of catalog filters. The JSON shape is
// the persisted layout under the "nftFilters" key.
type Criteria struct {
	Category string  `json:"category"`
	Style    string  `json:"style"`
	Rarity   string  `json:"rarity"`
	MinPrice float64 `json:"minPrice"`
	MaxPrice float64 `json:"maxPrice"`
	SortBy   SortKey `json:"sortBy"`
}

// DefaultCriteria is the unrestricted filter: every axis open, full price
// range, newest first.
func DefaultCriteria() Criteria {
	return Criteria{
		Category: FilterAll,
		Style:    FilterAll,
		Rarity:   FilterAll,
		MinPrice: MinFilterPrice,
		MaxPrice: MaxFilterPrice,
		SortBy:   SortNewest,
	}
}

func (c Criteria) Validate() error {
	if c.Category != FilterAll && !Category(c.Category).IsValid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidCriteria, c.Category)
	}
	if c.Style != FilterAll && !Style(c.Style).IsValid() {
		return fmt.Errorf("%w: unknown style %q", ErrInvalidCriteria, c.Style)
	}
	if c.Rarity != FilterAll && !Rarity(c.Rarity).IsValid() {
		return fmt.Errorf("%w: unknown rarity %q", ErrInvalidCriteria, c.Rarity)
	}
	switch c.SortBy {
	case SortNewest, SortOldest, SortPriceHigh, SortPriceLow, SortLikes:
	default:
		return fmt.Errorf("%w: unknown sort key %q", ErrInvalidCriteria, c.SortBy)
	}
	if c.MinPrice < MinFilterPrice || c.MaxPrice > MaxFilterPrice || c.MinPrice > c.MaxPrice {
		return fmt.Errorf("%w: price range [%.1f, %.1f] out of bounds", ErrInvalidCriteria, c.MinPrice, c.MaxPrice)
	}
	return nil
}

// Matches reports whether a listing satisfies every active predicate. All
// four predicates must hold; an axis set to "all" always matches.
func (c Criteria) Matches(l Listing) bool {
	categoryMatch := c.Category == FilterAll || string(l.Category) == c.Category
	styleMatch := c.Style == FilterAll || string(l.Style) == c.Style
	rarityMatch := c.Rarity == FilterAll || string(l.Rarity) == c.Rarity
	priceMatch := l.Price >= c.MinPrice && l.Price <= c.MaxPrice
	return categoryMatch && styleMatch && rarityMatch && priceMatch
}

// Less is the comparator selected by the sort key. Callers must apply it with
// a stable sort so that equal keys keep dataset order.
func (c Criteria) Less(a, b Listing) bool {
	switch c.SortBy {
	case SortOldest:
		return a.CreatedAt.Before(b.CreatedAt)
	case SortPriceHigh:
		return a.Price > b.Price
	case SortPriceLow:
		return a.Price < b.Price
	case SortLikes:
		return a.Likes > b.Likes
	default: // newest
		return a.CreatedAt.After(b.CreatedAt)
	}
}
