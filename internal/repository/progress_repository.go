//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
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

// ProgressRepository は SM-2 の復習状態 (user_progress) を扱います。
// DB接続・トランザクションはService層から渡される
type ProgressRepository interface {
	FindByCard(ctx context.Context, db *gorm.DB, learnerID, flashcardID uuid.UUID) (*model.CardProgress, error)
	Upsert(ctx context.Context, tx *gorm.DB, progress *model.CardProgress) error
	ListStatesForDeck(ctx context.Context, db *gorm.DB, learnerID, deckID uuid.UUID) ([]model.CardWithProgress, error)
	ListStatesForLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) ([]model.CardWithProgress, error)
	ReviewActivity(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, since time.Time) ([]model.DailyActivity, error)
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) FindByCard(ctx context.Context, db *gorm.DB, learnerID, flashcardID uuid.UUID) (*model.CardProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progress model.CardProgress
	// トランザクション内では行ロックを取る (SQLite では FOR UPDATE は出力されない)
	result := db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("learner_id = ? AND flashcard_id = ?", learnerID, flashcardID).
		First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding progress in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
			"flashcard_id", flashcardID.String(),
		)
		return nil, fmt.Errorf("gormProgressRepository.FindByCard: %w", result.Error)
	}
	return &progress, nil
}

// Upsert は (learner_id, flashcard_id) が既にあれば状態列を上書きします。
// 1 文の INSERT ... ON CONFLICT なので同時送信でも行は 1 つのまま
func (r *gormProgressRepository) Upsert(ctx context.Context, tx *gorm.DB, progress *model.CardProgress) error {
	logger := middleware.GetLogger(ctx)
	if progress.ProgressID == uuid.Nil {
		progress.ProgressID = uuid.New()
	}
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "learner_id"}, {Name: "flashcard_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"ease_factor", "interval", "due_at", "step", "is_learning", "repetitions", "last_reviewed_at", "updated_at",
		}),
	}).Create(progress)
	if result.Error != nil {
		logger.Error("Error upserting progress in DB",
			"error", result.Error,
			"learner_id", progress.LearnerID.String(),
			"flashcard_id", progress.FlashcardID.String(),
		)
		return fmt.Errorf("gormProgressRepository.Upsert: %w", result.Error)
	}
	return nil
}

// ListStatesForDeck はデッキの全カードと学習者の状態を作成順で返します。
// 時刻の比較は行わない (期限判定はスケジューラ側)
func (r *gormProgressRepository) ListStatesForDeck(ctx context.Context, db *gorm.DB, learnerID, deckID uuid.UUID) ([]model.CardWithProgress, error) {
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
		return nil, fmt.Errorf("gormProgressRepository.ListStatesForDeck: %w", result.Error)
	}
	return r.attachProgress(ctx, db, learnerID, cards)
}

// ListStatesForLearner は学習者が所有する全デッキのカードと状態を返します。
func (r *gormProgressRepository) ListStatesForLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) ([]model.CardWithProgress, error) {
	logger := middleware.GetLogger(ctx)
	var cards []*model.Flashcard
	// 論理削除されたデッキのカードは対象外
	result := db.WithContext(ctx).
		Joins("JOIN decks ON decks.deck_id = flashcards.deck_id AND decks.deleted_at IS NULL").
		Where("decks.learner_id = ?", learnerID).
		Order("flashcards.created_at ASC, flashcards.flashcard_id ASC").
		Find(&cards)
	if result.Error != nil {
		logger.Error("Error listing flashcards for learner in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
		)
		return nil, fmt.Errorf("gormProgressRepository.ListStatesForLearner: %w", result.Error)
	}
	return r.attachProgress(ctx, db, learnerID, cards)
}

// ReviewActivity は since 以降に最後の復習があったカード数を日付ごとに返します。
// 削除済みのカード・デッキは数えない
func (r *gormProgressRepository) ReviewActivity(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, since time.Time) ([]model.DailyActivity, error) {
	var rows []model.DailyActivity
	err := reviewActivityQuery(db.WithContext(ctx).Model(&model.CardProgress{}), "user_progress", learnerID, since).
		Scan(&rows).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error aggregating review activity in DB",
			"error", err,
			"learner_id", learnerID.String(),
		)
		return nil, fmt.Errorf("gormProgressRepository.ReviewActivity: %w", err)
	}
	return rows, nil
}

// reviewActivityQuery は user_progress / card_scores 共通の日別集計です。
// DATE() は PostgreSQL ではセッションのタイムゾーン、SQLite では UTC で日付を切り出す
func reviewActivityQuery(db *gorm.DB, table string, learnerID uuid.UUID, since time.Time) *gorm.DB {
	return db.
		Select("CAST(DATE("+table+".last_reviewed_at) AS TEXT) AS day, COUNT(DISTINCT "+table+".flashcard_id) AS cards").
		Joins("JOIN flashcards ON flashcards.flashcard_id = "+table+".flashcard_id AND flashcards.deleted_at IS NULL").
		Joins("JOIN decks ON decks.deck_id = flashcards.deck_id AND decks.deleted_at IS NULL").
		Where(table+".learner_id = ? AND "+table+".last_reviewed_at >= ?", learnerID, since.UTC()).
		Group("day").
		Order("day ASC")
}

func (r *gormProgressRepository) attachProgress(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, cards []*model.Flashcard) ([]model.CardWithProgress, error) {
	out := make([]model.CardWithProgress, 0, len(cards))
	if len(cards) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, len(cards))
	for i, c := range cards {
		ids[i] = c.FlashcardID
	}

	var progresses []*model.CardProgress
	result := db.WithContext(ctx).
		Where("learner_id = ? AND flashcard_id IN ?", learnerID, ids).
		Find(&progresses)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error listing progress in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
		)
		return nil, fmt.Errorf("gormProgressRepository.attachProgress: %w", result.Error)
	}

	byCard := make(map[uuid.UUID]*model.CardProgress, len(progresses))
	for _, p := range progresses {
		byCard[p.FlashcardID] = p
	}
	for _, c := range cards {
		out = append(out, model.CardWithProgress{Flashcard: c, Progress: byCard[c.FlashcardID]})
	}
	return out, nil
}
