// internal/model/review.go
package model

import (
	"card_keep/internal/srs"

	"github.com/google/uuid"
)

// SubmitRatingRequest は復習結果送信リクエストのDTO。rating は 0=Again, 1=Hard, 2=Good, 3=Easy
type SubmitRatingRequest struct {
	Rating *int `json:"rating" validate:"required"`
}

// SubmitRecallRequest は旧形式デッキの回答送信リクエストのDTO
type SubmitRecallRequest struct {
	Recalled *bool `json:"recalled" validate:"required"`
}

// ReviewResultResponse は評価後の新しい状態
type ReviewResultResponse struct {
	CardID uuid.UUID     `json:"card_id"`
	State  srs.CardState `json:"state"`
}

// RecallResultResponse は旧形式デッキの回答後のスコア
type RecallResultResponse struct {
	CardID uuid.UUID `json:"card_id"`
	Score  int       `json:"score"`
}

// NextCardResponse は次に出題するカードと残り枚数。Card が nil なら出題するカードがない
type NextCardResponse struct {
	Card   *Flashcard     `json:"card"`
	State  *srs.CardState `json:"state,omitempty"`
	Policy srs.Policy     `json:"policy"`
	Counts CountsResponse `json:"counts"`
}

// CountsResponse は「今日の残りカード」表示用
type CountsResponse struct {
	New         int `json:"new"`
	LearningDue int `json:"learning_due"`
	ReviewDue   int `json:"review_due"`
	Due         int `json:"due"`
	Total       int `json:"total"`
}

func NewCountsResponse(c srs.Counts) CountsResponse {
	return CountsResponse{
		New:         c.New,
		LearningDue: c.LearningDue,
		ReviewDue:   c.ReviewDue,
		Due:         c.Due(),
		Total:       c.Total,
	}
}
