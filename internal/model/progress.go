// internal/model/progress.go
package model

import (
	"time"

	"card_keep/internal/srs"

	"github.com/google/uuid"
)

// CardProgress は (学習者, カード) ごとの SM-2 復習状態です。
// is_learning 列は旧データとの互換のため 1/0 の整数で保存する。
type CardProgress struct {
	ProgressID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	LearnerID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_progress_learner_card"` // 複合ユニークインデックスの一部
	FlashcardID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_progress_learner_card"` // 複合ユニークインデックスの一部
	EaseFactor     float64   `gorm:"not null;default:2.5"`
	Interval       int       `gorm:"column:interval;not null;default:0"`
	DueAt          time.Time `gorm:"not null;index"`
	Step           int       `gorm:"not null;default:0"`
	IsLearning     int       `gorm:"not null"` // default タグを付けると 0 が INSERT されなくなる
	Repetitions    int       `gorm:"not null;default:0"`
	LastReviewedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (CardProgress) TableName() string {
	return "user_progress"
}

// ToState はストレージ表現をスケジューラの状態に変換します。
func (p *CardProgress) ToState() srs.CardState {
	return srs.CardState{
		EaseFactor:  p.EaseFactor,
		Interval:    p.Interval,
		DueAt:       p.DueAt,
		Step:        p.Step,
		Phase:       srs.PhaseFromLearningFlag(p.IsLearning),
		Repetitions: p.Repetitions,
	}
}

// ApplyState はスケジューラの結果をストレージ表現に書き込みます。
func (p *CardProgress) ApplyState(s srs.CardState) {
	p.EaseFactor = s.EaseFactor
	p.Interval = s.Interval
	p.DueAt = s.DueAt
	p.Step = s.Step
	p.IsLearning = s.Phase.LearningFlag()
	p.Repetitions = s.Repetitions
}

// CardScore は旧形式デッキの習熟スコア (0〜5) です。
type CardScore struct {
	ScoreID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	LearnerID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_score_learner_card"`
	FlashcardID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_score_learner_card"`
	Score          int       `gorm:"not null;default:0"`
	LastReviewedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (CardScore) TableName() string {
	return "card_scores"
}

// CardWithProgress はデッキ一覧取得の結果です。Progress が nil なら未学習。
type CardWithProgress struct {
	Flashcard *Flashcard
	Progress  *CardProgress
}

// CardWithScore は旧形式デッキの一覧取得の結果です。Score が nil なら未回答。
type CardWithScore struct {
	Flashcard *Flashcard
	Score     *CardScore
}
