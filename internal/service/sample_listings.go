package service

import (
	"time"

	"github.com/kurobe2240/NFT-EC/internal/domain/entity"
)

// SampleListings is the static demo catalog loaded at process start. IDs and
// prices are fixed; like counts and liked flags mutate in memory only.
func SampleListings() []entity.Listing {
	return []entity.Listing{
		{
			ID:          "1",
			Title:       "ネオン・ユートピア",
			Description: "サイバーパンクの未来都市が広がる、輝くネオンの楽園。無数のホログラム広告が宙を舞い、中心にそびえる巨大なデータタワーが都市の心臓として脈打つ。",
			ImageURL:    "/assets/generated_image (5).webp",
			Price:       2.5,
			Creator:     "0x7890...abcd",
			Owner:       "0x7890...abcd",
			CreatedAt:   time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
			Likes:       62,
			IsLiked:     false,
			Category:    entity.CategoryIllustration,
			Style:       entity.StyleCyberpunk,
			Rarity:      entity.RarityLegendary,
		},
		{
			ID:          "2",
			Title:       "ミッドナイト・メモリーズ",
			Description: "夜の都市に漂う紫煙とネオンの光が幻想的な空間を作り出す。湿ったアスファルトに反射する無数の光が、夢と現実の狭間を彷徨う旅人を誘う。",
			ImageURL:    "/assets/generated_image (4).webp",
			Price:       1.8,
			Creator:     "0x7890...abcd",
			Owner:       "0x7890...abcd",
			CreatedAt:   time.Date(2024, 2, 18, 0, 0, 0, 0, time.UTC),
			Likes:       45,
			IsLiked:     false,
			Category:    entity.CategoryIllustration,
			Style:       entity.StyleCyberpunk,
			Rarity:      entity.RarityEpic,
		},
		{
			ID:          "3",
			Title:       "セレスティアル・ヴァレー",
			Description: "透き通る青空と流れる滝、緑に囲まれた幻想的な渓谷。小さな橋を渡れば、静寂と安らぎに満ちた別次元へと足を踏み入れることができる。",
			ImageURL:    "/assets/generated_image (3).png",
			Price:       2.0,
			Creator:     "0x7890...abcd",
			Owner:       "0x7890...abcd",
			CreatedAt:   time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
			Likes:       56,
			IsLiked:     false,
			Category:    entity.CategoryIllustration,
			Style:       entity.StyleFantasy,
			Rarity:      entity.RarityLegendary,
		},
		{
			ID:          "4",
			Title:       "プールサイドの黒猫",
			Description: "夏の日差しが降り注ぐプールサイド。黒のワンピースを着た少女が水に足を浸し、まるで猫のようにリラックスしている。隣には本物の猫も。",
			ImageURL:    "/assets/generated_image (2).png",
			Price:       1.5,
			Creator:     "0x7890...abcd",
			Owner:       "0x7890...abcd",
			CreatedAt:   time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			Likes:       35,
			IsLiked:     false,
			Category:    entity.CategoryIllustration,
			Style:       entity.StyleAnime,
			Rarity:      entity.RarityRare,
		},
		{
			ID:          "5",
			Title:       "エリートオペレーターズ",
			Description: "近未来の特務部隊、クールな装備に身を包み、夜の街をパトロールする。都市の陰に潜む脅威に立ち向かう彼らの視線は鋭い。",
			ImageURL:    "/assets/generated_image (1).png",
			Price:       1.2,
			Creator:     "0xabcd...ef12",
			Owner:       "0xabcd...ef12",
			CreatedAt:   time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
			Likes:       28,
			IsLiked:     true,
			Category:    entity.CategoryIllustration,
			Style:       entity.StyleCyberpunk,
			Rarity:      entity.RarityLegendary,
		},
		{
			ID:          "6",
			Title:       "ネオンシティの散歩",
			Description: "未来都市の夜、ネオンが輝く街を歩く二人の少女。カジュアルながらもスタイリッシュなファッションが都会の風景と溶け込んでいる。",
			ImageURL:    "/assets/generated_image.png",
			Price:       0.8,
			Creator:     "0x1234...5678",
			Owner:       "0x1234...5678",
			CreatedAt:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			Likes:       42,
			IsLiked:     false,
			Category:    entity.CategoryIllustration,
			Style:       entity.StyleCyberpunk,
			Rarity:      entity.RarityEpic,
		},
	}
}
