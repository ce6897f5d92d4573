// internal/model/deck.go
package model

import (
	"time"

	"card_keep/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Deck は学習者が所有するカードの束です。
type Deck struct {
	DeckID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"deck_id"`
	LearnerID       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_deck_learner_name" json:"-"`
	Name            string         `gorm:"not null;uniqueIndex:uq_deck_learner_name" json:"name"`
	SelectionPolicy srs.Policy     `gorm:"type:varchar(32);not null" json:"selection_policy"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// 関連 (Preload用)
	Flashcards []Flashcard `gorm:"foreignKey:DeckID" json:"-"`
}

func (Deck) TableName() string {
	return "decks"
}

// デッキ作成リクエストDTO。selection_policy は省略時に設定のデフォルトを使う
type CreateDeckRequest struct {
	Name            string     `json:"name" validate:"required,min=1,max=100"`
	SelectionPolicy srs.Policy `json:"selection_policy,omitempty" validate:"omitempty,oneof=due_date_priority score_weighted_random"`
}
