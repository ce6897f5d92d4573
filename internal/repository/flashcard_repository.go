//go:generate mockery --name FlashcardRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"card_keep/internal/middleware"
	"card_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FlashcardRepository interface {
	Create(ctx context.Context, tx *gorm.DB, card *model.Flashcard) error
	FindByID(ctx context.Context, db *gorm.DB, flashcardID uuid.UUID) (*model.Flashcard, error)
	FindByDeck(ctx context.Context, db *gorm.DB, deckID uuid.UUID) ([]*model.Flashcard, error)
	Delete(ctx context.Context, tx *gorm.DB, flashcardID uuid.UUID) error
}

type gormFlashcardRepository struct{}

func NewGormFlashcardRepository() FlashcardRepository {
	return &gormFlashcardRepository{}
}

func (r *gormFlashcardRepository) Create(ctx context.Context, tx *gorm.DB, card *model.Flashcard) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(card)
	if result.Error != nil {
		logger.Error("Error creating flashcard in DB",
			"error", result.Error,
			"deck_id", card.DeckID.String(),
		)
		return fmt.Errorf("gormFlashcardRepository.Create: %w", result.Error)
	}
	return nil
}

// FindByID は所有者チェック用にデッキも読み込みます。デッキが論理削除済みなら ErrNotFound
func (r *gormFlashcardRepository) FindByID(ctx context.Context, db *gorm.DB, flashcardID uuid.UUID) (*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx)
	var card model.Flashcard
	result := db.WithContext(ctx).Preload("Deck").Where("flashcard_id = ?", flashcardID).First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding flashcard by ID in DB",
			"error", result.Error,
			"flashcard_id", flashcardID.String(),
		)
		return nil, fmt.Errorf("gormFlashcardRepository.FindByID: %w", result.Error)
	}
	if card.Deck == nil {
		return nil, model.ErrNotFound
	}
	return &card, nil
}

func (r *gormFlashcardRepository) FindByDeck(ctx context.Context, db *gorm.DB, deckID uuid.UUID) ([]*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx)
	var cards []*model.Flashcard
	result := db.WithContext(ctx).
		Where("deck_id = ?", deckID).
		Order("created_at ASC, flashcard_id ASC").
		Find(&cards)
	if result.Error != nil {
		logger.Error("Error finding flashcards by deck in DB",
			"error", result.Error,
			"deck_id", deckID.String(),
		)
		return nil, fmt.Errorf("gormFlashcardRepository.FindByDeck: %w", result.Error)
	}
	return cards, nil
}

func (r *gormFlashcardRepository) Delete(ctx context.Context, tx *gorm.DB, flashcardID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("flashcard_id = ?", flashcardID).Delete(&model.Flashcard{})
	if result.Error != nil {
		logger.Error("Error deleting flashcard in DB",
			"error", result.Error,
			"flashcard_id", flashcardID.String(),
		)
		return fmt.Errorf("gormFlashcardRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
