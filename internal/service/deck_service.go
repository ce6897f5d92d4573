//go:generate mockery --name DeckService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"card_keep/internal/middleware"
	"card_keep/internal/model"
	"card_keep/internal/repository"
	"card_keep/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeckService interface {
	CreateDeck(ctx context.Context, learnerID uuid.UUID, req *model.CreateDeckRequest) (*model.Deck, error)
	ListDecks(ctx context.Context, learnerID uuid.UUID) ([]*model.Deck, error)
	GetDeck(ctx context.Context, learnerID, deckID uuid.UUID) (*model.Deck, error)
	DeleteDeck(ctx context.Context, learnerID, deckID uuid.UUID) error
	AddFlashcard(ctx context.Context, learnerID, deckID uuid.UUID, req *model.CreateFlashcardRequest) (*model.Flashcard, error)
	ListFlashcards(ctx context.Context, learnerID, deckID uuid.UUID) ([]*model.Flashcard, error)
	DeleteFlashcard(ctx context.Context, learnerID, cardID uuid.UUID) error
}

type deckService struct {
	db            *gorm.DB
	deckRepo      repository.DeckRepository
	cardRepo      repository.FlashcardRepository
	defaultPolicy srs.Policy
}

// NewDeckService の defaultPolicy はリクエストで selection_policy が省略されたときに使う
func NewDeckService(db *gorm.DB, deckRepo repository.DeckRepository, cardRepo repository.FlashcardRepository, defaultPolicy srs.Policy) DeckService {
	return &deckService{
		db:            db,
		deckRepo:      deckRepo,
		cardRepo:      cardRepo,
		defaultPolicy: defaultPolicy,
	}
}

func (s *deckService) CreateDeck(ctx context.Context, learnerID uuid.UUID, req *model.CreateDeckRequest) (*model.Deck, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	policy := req.SelectionPolicy
	if policy == "" {
		policy = s.defaultPolicy
	}
	if !policy.IsValid() {
		return nil, model.NewAppError("INVALID_SELECTION_POLICY", "selection_policyの値が不正です。", "selection_policy", model.ErrInvalidInput)
	}

	deck := &model.Deck{
		DeckID:          uuid.New(),
		LearnerID:       learnerID,
		Name:            req.Name,
		SelectionPolicy: policy,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.deckRepo.Create(ctx, tx, deck)
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("DECK_ALREADY_EXISTS", "同じ名前のデッキが既に存在します。", "name", err)
		}
		logger.Error("Failed to create deck", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "デッキの作成に失敗しました。", "", err)
	}

	logger.Info("Deck created", "deck_id", deck.DeckID, "policy", deck.SelectionPolicy)
	return deck, nil
}

func (s *deckService) ListDecks(ctx context.Context, learnerID uuid.UUID) ([]*model.Deck, error) {
	decks, err := s.deckRepo.FindByLearner(ctx, s.db, learnerID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list decks", "error", err, "learner_id", learnerID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "デッキ一覧の取得に失敗しました。", "", err)
	}
	return decks, nil
}

func (s *deckService) GetDeck(ctx context.Context, learnerID, deckID uuid.UUID) (*model.Deck, error) {
	deck, err := s.deckRepo.FindByID(ctx, s.db, learnerID, deckID)
	if err != nil {
		return nil, deckLookupError(ctx, err, deckID)
	}
	return deck, nil
}

func (s *deckService) DeleteDeck(ctx context.Context, learnerID, deckID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.deckRepo.Delete(ctx, tx, learnerID, deckID)
	})
	if err != nil {
		return deckLookupError(ctx, err, deckID)
	}
	middleware.GetLogger(ctx).Info("Deck deleted", "learner_id", learnerID, "deck_id", deckID)
	return nil
}

func (s *deckService) AddFlashcard(ctx context.Context, learnerID, deckID uuid.UUID, req *model.CreateFlashcardRequest) (*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "deck_id", deckID)

	if _, err := s.GetDeck(ctx, learnerID, deckID); err != nil {
		return nil, err
	}

	card := &model.Flashcard{
		FlashcardID: uuid.New(),
		DeckID:      deckID,
		Question:    req.Question,
		Answer:      req.Answer,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.cardRepo.Create(ctx, tx, card)
	})
	if err != nil {
		logger.Error("Failed to create flashcard", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "カードの作成に失敗しました。", "", err)
	}

	logger.Info("Flashcard created", "card_id", card.FlashcardID)
	return card, nil
}

func (s *deckService) ListFlashcards(ctx context.Context, learnerID, deckID uuid.UUID) ([]*model.Flashcard, error) {
	if _, err := s.GetDeck(ctx, learnerID, deckID); err != nil {
		return nil, err
	}
	cards, err := s.cardRepo.FindByDeck(ctx, s.db, deckID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list flashcards", "error", err, "deck_id", deckID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "カード一覧の取得に失敗しました。", "", err)
	}
	return cards, nil
}

func (s *deckService) DeleteFlashcard(ctx context.Context, learnerID, cardID uuid.UUID) error {
	if _, err := findOwnedCard(ctx, s.db, s.cardRepo, learnerID, cardID); err != nil {
		return err
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.cardRepo.Delete(ctx, tx, cardID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("CARD_NOT_FOUND", "カードが見つかりません。", "card_id", err)
		}
		middleware.GetLogger(ctx).Error("Failed to delete flashcard", "error", err, "card_id", cardID)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの削除に失敗しました。", "", err)
	}
	middleware.GetLogger(ctx).Info("Flashcard deleted", "learner_id", learnerID, "card_id", cardID)
	return nil
}

func deckLookupError(ctx context.Context, err error, deckID uuid.UUID) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.NewAppError("DECK_NOT_FOUND", "デッキが見つかりません。", "deck_id", err)
	}
	middleware.GetLogger(ctx).Error("Deck operation failed", "error", err, "deck_id", deckID)
	return model.NewAppError("INTERNAL_SERVER_ERROR", "デッキの処理中にエラーが発生しました。", "", err)
}
