//go:generate mockery --name DeckRepository --output ./mocks --outpkg mocks --case=underscore
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

type DeckRepository interface {
	Create(ctx context.Context, tx *gorm.DB, deck *model.Deck) error
	FindByID(ctx context.Context, db *gorm.DB, learnerID, deckID uuid.UUID) (*model.Deck, error)
	FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) ([]*model.Deck, error)
	Delete(ctx context.Context, tx *gorm.DB, learnerID, deckID uuid.UUID) error
}

type gormDeckRepository struct{}

func NewGormDeckRepository() DeckRepository {
	return &gormDeckRepository{}
}

func (r *gormDeckRepository) Create(ctx context.Context, tx *gorm.DB, deck *model.Deck) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Create(deck)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate key error on create deck",
				"error", result.Error,
				"learner_id", deck.LearnerID.String(),
				"name", deck.Name,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating deck in DB",
			"error", result.Error,
			"learner_id", deck.LearnerID.String(),
			"name", deck.Name,
		)
		return fmt.Errorf("gormDeckRepository.Create: %w", result.Error)
	}
	return nil
}

// FindByID は学習者が所有するデッキを返します。他人のデッキは ErrNotFound
func (r *gormDeckRepository) FindByID(ctx context.Context, db *gorm.DB, learnerID, deckID uuid.UUID) (*model.Deck, error) {
	logger := middleware.GetLogger(ctx)
	var deck model.Deck
	result := db.WithContext(ctx).Where("learner_id = ? AND deck_id = ?", learnerID, deckID).First(&deck)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding deck by ID in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
			"deck_id", deckID.String(),
		)
		return nil, fmt.Errorf("gormDeckRepository.FindByID: %w", result.Error)
	}
	return &deck, nil
}

func (r *gormDeckRepository) FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) ([]*model.Deck, error) {
	logger := middleware.GetLogger(ctx)
	var decks []*model.Deck
	result := db.WithContext(ctx).Where("learner_id = ?", learnerID).Order("created_at ASC").Find(&decks)
	if result.Error != nil {
		logger.Error("Error finding decks by learner in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
		)
		return nil, fmt.Errorf("gormDeckRepository.FindByLearner: %w", result.Error)
	}
	return decks, nil
}

func (r *gormDeckRepository) Delete(ctx context.Context, tx *gorm.DB, learnerID, deckID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("learner_id = ? AND deck_id = ?", learnerID, deckID).Delete(&model.Deck{})
	if result.Error != nil {
		logger.Error("Error deleting deck in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
			"deck_id", deckID.String(),
		)
		return fmt.Errorf("gormDeckRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
