// internal/model/flashcard.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Flashcard は問題と答えの組を表します
type Flashcard struct {
	FlashcardID uuid.UUID      `gorm:"type:uuid;primaryKey" json:"card_id"`
	DeckID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"deck_id"`
	Question    string         `gorm:"not null" json:"question"`
	Answer      string         `gorm:"not null" json:"answer"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用

	// 関連 (所有者チェック用)
	Deck *Deck `gorm:"foreignKey:DeckID;references:DeckID" json:"-"`
}

func (Flashcard) TableName() string {
	return "flashcards"
}

// カード作成リクエストDTO
type CreateFlashcardRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}
