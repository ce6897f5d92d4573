//go:generate mockery --name ScoreRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"card_keep/internal/middleware"
	"card_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScoreRepository は旧形式デッキの習熟スコア (card_scores) を扱います。
type ScoreRepository interface {
	FindByCard(ctx context.Context, db *gorm.DB, learnerID, flashcardID uuid.UUID) (*model.CardScore, error)
	Upsert(ctx context.Context, tx *gorm.DB, score *model.CardScore) error
	ListScoresForDeck(ctx context.Context, db *gorm.DB, learnerID, deckID uuid.UUID) ([]model.CardWithScore, error)
	ReviewActivity(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, since time.Time) ([]model.DailyActivity, error)
}

type gormScoreRepository struct{}

func NewGormScoreRepository() ScoreRepository {
	return &gormScoreRepository{}
}

func (r *gormScoreRepository) FindByCard(ctx context.Context, db *gorm.DB, learnerID, flashcardID uuid.UUID) (*model.CardScore, error) {
	logger := middleware.GetLogger(ctx)
	var score model.CardScore
	result := db.WithContext(ctx).Where("learner_id = ? AND flashcard_id = ?", learnerID, flashcardID).First(&score)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding card score in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
			"flashcard_id", flashcardID.String(),
		)
		return nil, fmt.Errorf("gormScoreRepository.FindByCard: %w", result.Error)
	}
	return &score, nil
}

func (r *gormScoreRepository) Upsert(ctx context.Context, tx *gorm.DB, score *model.CardScore) error {
	logger := middleware.GetLogger(ctx)
	if score.ScoreID == uuid.Nil {
		score.ScoreID = uuid.New()
	}
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "learner_id"}, {Name: "flashcard_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "last_reviewed_at", "updated_at"}),
	}).Create(score)
	if result.Error != nil {
		logger.Error("Error upserting card score in DB",
			"error", result.Error,
			"learner_id", score.LearnerID.String(),
			"flashcard_id", score.FlashcardID.String(),
		)
		return fmt.Errorf("gormScoreRepository.Upsert: %w", result.Error)
	}
	return nil
}

func (r *gormScoreRepository) ListScoresForDeck(ctx context.Context, db *gorm.DB, learnerID, deckID uuid.UUID) ([]model.CardWithScore, error) {
	logger := middleware.GetLogger(ctx)
	var cards []*model.Flashcard
	result := db.WithContext(ctx).
		Where("deck_id = ?", deckID).
		Order("created_at ASC, flashcard_id ASC").
		Find(&cards)
	if result.Error != nil {
		logger.Error("Error listing flashcards for deck in DB",
			"error", result.Error,
			"deck_id", deckID.String(),
		)
		return nil, fmt.Errorf("gormScoreRepository.ListScoresForDeck: %w", result.Error)
	}

	out := make([]model.CardWithScore, 0, len(cards))
	if len(cards) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, len(cards))
	for i, c := range cards {
		ids[i] = c.FlashcardID
	}
	var scores []*model.CardScore
	result = db.WithContext(ctx).Where("learner_id = ? AND flashcard_id IN ?", learnerID, ids).Find(&scores)
	if result.Error != nil {
		logger.Error("Error listing card scores in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
			"deck_id", deckID.String(),
		)
		return nil, fmt.Errorf("gormScoreRepository.ListScoresForDeck: %w", result.Error)
	}

	byCard := make(map[uuid.UUID]*model.CardScore, len(scores))
	for _, s := range scores {
		byCard[s.FlashcardID] = s
	}
	for _, c := range cards {
		out = append(out, model.CardWithScore{Flashcard: c, Score: byCard[c.FlashcardID]})
	}
	return out, nil
}

func (r *gormScoreRepository) ReviewActivity(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, since time.Time) ([]model.DailyActivity, error) {
	var rows []model.DailyActivity
	err := reviewActivityQuery(db.WithContext(ctx).Model(&model.CardScore{}), "card_scores", learnerID, since).
		Scan(&rows).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error aggregating recall activity in DB",
			"error", err,
			"learner_id", learnerID.String(),
		)
		return nil, fmt.Errorf("gormScoreRepository.ReviewActivity: %w", err)
	}
	return rows, nil
}
