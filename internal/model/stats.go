// internal/model/stats.go
package model

import (
	"card_keep/internal/srs"

	"github.com/google/uuid"
)

// DailyActivity は 1 日 (UTC) に復習されたカード枚数です。Day は YYYY-MM-DD。
// 各カードは最後に復習した日にだけ数えられる
type DailyActivity struct {
	Day   string `json:"date"`
	Cards int    `json:"cards_reviewed"`
}

// DeckStatsResponse はデッキ単位の統計
type DeckStatsResponse struct {
	DeckID          uuid.UUID  `json:"deck_id"`
	Name            string     `json:"name"`
	SelectionPolicy srs.Policy `json:"selection_policy"`
	srs.Stats
}

// OverallStatsResponse は学習者全体の統計
type OverallStatsResponse struct {
	TotalDecks int `json:"total_decks"`
	srs.Stats
}

// StatisticsResponse は統計画面用のレスポンス。Activity は古い日付から並ぶ
type StatisticsResponse struct {
	Overall       OverallStatsResponse `json:"overall"`
	ReviewedToday int                  `json:"reviewed_today"`
	Decks         []DeckStatsResponse  `json:"decks"`
	Activity      []DailyActivity      `json:"activity"`
}
