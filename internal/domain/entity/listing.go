package entity

import "time"

type Category string

const (
	CategoryIllustration Category = "illustration"
	CategoryGenerative   Category = "generative"
	CategoryPixel        Category = "pixel"
	Category3D           Category = "3d"
	CategoryPhotography  Category = "photography"
	CategoryAnimation    Category = "animation"
	CategoryCollage      Category = "collage"
)

type Style string

const (
	StyleAnime      Style = "anime"
	StyleRealistic  Style = "realistic"
	StyleAbstract   Style = "abstract"
	StyleMinimalist Style = "minimalist"
	StylePop        Style = "pop"
	StyleCyberpunk  Style = "cyberpunk"
	StyleFantasy    Style = "fantasy"
	StyleRetro      Style = "retro"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// FilterAll is the sentinel value that disables a filter axis.
const FilterAll = "all"

func (c Category) IsValid() bool {
	switch c {
	case CategoryIllustration, CategoryGenerative, CategoryPixel, Category3D,
		CategoryPhotography, CategoryAnimation, CategoryCollage:
		return true
	}
	return false
}

func (s Style) IsValid() bool {
	switch s {
	case StyleAnime, StyleRealistic, StyleAbstract, StyleMinimalist,
		StylePop, StyleCyberpunk, StyleFantasy, StyleRetro:
		return true
	}
	return false
}

func (r Rarity) IsValid() bool {
	return r.Rank() != 0
}

// Rank orders rarities common < uncommon < rare < epic < legendary.
// Unknown rarities rank 0.
func (r Rarity) Rank() int {
	switch r {
	case RarityCommon:
		return 1
	case RarityUncommon:
		return 2
	case RarityRare:
		return 3
	case RarityEpic:
		return 4
	case RarityLegendary:
		return 5
	}
	return 0
}

// Listing is a single sellable digital-collectible record. The catalog owns
// the canonical copy; cart items hold value snapshots frozen at add time.
type Listing struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Price       float64   `json:"price"`
	Creator     string    `json:"creator"`
	Owner       string    `json:"owner"`
	CreatedAt   time.Time `json:"createdAt"`
	Likes       int       `json:"likes"`
	IsLiked     bool      `json:"isLiked"`
	Category    Category  `json:"category"`
	Style       Style     `json:"style"`
	Rarity      Rarity    `json:"rarity"`
}
