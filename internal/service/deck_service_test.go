// internal/service/deck_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"card_keep/internal/model"
	"card_keep/internal/repository/mocks"
	"card_keep/internal/srs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_deckService_CreateDeck(t *testing.T) {
	ctx := context.Background()
	learnerID := uuid.New()

	tests := []struct {
		name       string
		req        *model.CreateDeckRequest
		setupMock  func(repo *mocks.DeckRepository)
		wantPolicy srs.Policy
		wantCode   string
	}{
		{
			name: "正常系: ポリシー省略時はデフォルト",
			req:  &model.CreateDeckRequest{Name: "英単語"},
			setupMock: func(repo *mocks.DeckRepository) {
				repo.On("Create", mock.Anything, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(d *model.Deck) bool {
					return d.LearnerID == learnerID && d.Name == "英単語" && d.DeckID != uuid.Nil
				})).Return(nil).Once()
			},
			wantPolicy: srs.PolicyDueDatePriority,
		},
		{
			name: "正常系: 旧形式ポリシーを指定",
			req:  &model.CreateDeckRequest{Name: "旧", SelectionPolicy: srs.PolicyScoreWeightedRandom},
			setupMock: func(repo *mocks.DeckRepository) {
				repo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantPolicy: srs.PolicyScoreWeightedRandom,
		},
		{
			name:      "異常系: 不明なポリシー",
			req:       &model.CreateDeckRequest{Name: "x", SelectionPolicy: "round_robin"},
			setupMock: func(repo *mocks.DeckRepository) {},
			wantCode:  "INVALID_SELECTION_POLICY",
		},
		{
			name: "異常系: 同名デッキ",
			req:  &model.CreateDeckRequest{Name: "英単語"},
			setupMock: func(repo *mocks.DeckRepository) {
				repo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(model.ErrConflict).Once()
			},
			wantCode: "DECK_ALREADY_EXISTS",
		},
		{
			name: "異常系: DBエラー",
			req:  &model.CreateDeckRequest{Name: "英単語"},
			setupMock: func(repo *mocks.DeckRepository) {
				repo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
			},
			wantCode: "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deckRepo := mocks.NewDeckRepository(t)
			cardRepo := mocks.NewFlashcardRepository(t)
			tt.setupMock(deckRepo)
			svc := NewDeckService(setupTestDB(t), deckRepo, cardRepo, srs.PolicyDueDatePriority)

			deck, err := svc.CreateDeck(ctx, learnerID, tt.req)
			if tt.wantCode != "" {
				var appErr *model.AppError
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, tt.wantCode, appErr.Detail.Code)
				assert.Nil(t, deck)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPolicy, deck.SelectionPolicy)
		})
	}
}

func Test_deckService_GetAndDeleteDeck(t *testing.T) {
	ctx := context.Background()
	learnerID := uuid.New()
	deckID := uuid.New()

	t.Run("正常系: 取得", func(t *testing.T) {
		deckRepo := mocks.NewDeckRepository(t)
		deckRepo.On("FindByID", mock.Anything, mock.Anything, learnerID, deckID).Return(&model.Deck{DeckID: deckID}, nil).Once()
		svc := NewDeckService(setupTestDB(t), deckRepo, mocks.NewFlashcardRepository(t), srs.PolicyDueDatePriority)

		got, err := svc.GetDeck(ctx, learnerID, deckID)
		require.NoError(t, err)
		assert.Equal(t, deckID, got.DeckID)
	})

	t.Run("異常系: 削除対象がない", func(t *testing.T) {
		deckRepo := mocks.NewDeckRepository(t)
		deckRepo.On("Delete", mock.Anything, mock.Anything, learnerID, deckID).Return(model.ErrNotFound).Once()
		svc := NewDeckService(setupTestDB(t), deckRepo, mocks.NewFlashcardRepository(t), srs.PolicyDueDatePriority)

		err := svc.DeleteDeck(ctx, learnerID, deckID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("正常系: 一覧", func(t *testing.T) {
		deckRepo := mocks.NewDeckRepository(t)
		deckRepo.On("FindByLearner", mock.Anything, mock.Anything, learnerID).Return([]*model.Deck{{DeckID: deckID}}, nil).Once()
		svc := NewDeckService(setupTestDB(t), deckRepo, mocks.NewFlashcardRepository(t), srs.PolicyDueDatePriority)

		decks, err := svc.ListDecks(ctx, learnerID)
		require.NoError(t, err)
		assert.Len(t, decks, 1)
	})
}

func Test_deckService_Flashcards(t *testing.T) {
	ctx := context.Background()
	learnerID := uuid.New()
	deckID := uuid.New()

	t.Run("正常系: カード追加", func(t *testing.T) {
		deckRepo := mocks.NewDeckRepository(t)
		cardRepo := mocks.NewFlashcardRepository(t)
		deckRepo.On("FindByID", mock.Anything, mock.Anything, learnerID, deckID).Return(&model.Deck{DeckID: deckID, LearnerID: learnerID}, nil).Once()
		cardRepo.On("Create", mock.Anything, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(c *model.Flashcard) bool {
			return c.DeckID == deckID && c.Question == "apple" && c.Answer == "りんご" && c.FlashcardID != uuid.Nil
		})).Return(nil).Once()
		svc := NewDeckService(setupTestDB(t), deckRepo, cardRepo, srs.PolicyDueDatePriority)

		card, err := svc.AddFlashcard(ctx, learnerID, deckID, &model.CreateFlashcardRequest{Question: "apple", Answer: "りんご"})
		require.NoError(t, err)
		assert.Equal(t, deckID, card.DeckID)
	})

	t.Run("異常系: 他人のデッキにはカードを追加できない", func(t *testing.T) {
		deckRepo := mocks.NewDeckRepository(t)
		deckRepo.On("FindByID", mock.Anything, mock.Anything, learnerID, deckID).Return(nil, model.ErrNotFound).Once()
		svc := NewDeckService(setupTestDB(t), deckRepo, mocks.NewFlashcardRepository(t), srs.PolicyDueDatePriority)

		_, err := svc.AddFlashcard(ctx, learnerID, deckID, &model.CreateFlashcardRequest{Question: "q", Answer: "a"})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("正常系: カード一覧", func(t *testing.T) {
		deckRepo := mocks.NewDeckRepository(t)
		cardRepo := mocks.NewFlashcardRepository(t)
		deckRepo.On("FindByID", mock.Anything, mock.Anything, learnerID, deckID).Return(&model.Deck{DeckID: deckID}, nil).Once()
		cardRepo.On("FindByDeck", mock.Anything, mock.Anything, deckID).Return([]*model.Flashcard{{FlashcardID: uuid.New()}}, nil).Once()
		svc := NewDeckService(setupTestDB(t), deckRepo, cardRepo, srs.PolicyDueDatePriority)

		cards, err := svc.ListFlashcards(ctx, learnerID, deckID)
		require.NoError(t, err)
		assert.Len(t, cards, 1)
	})

	t.Run("正常系: カード削除", func(t *testing.T) {
		cardRepo := mocks.NewFlashcardRepository(t)
		card := ownedCard(learnerID)
		cardRepo.On("FindByID", mock.Anything, mock.Anything, card.FlashcardID).Return(card, nil).Once()
		cardRepo.On("Delete", mock.Anything, mock.Anything, card.FlashcardID).Return(nil).Once()
		svc := NewDeckService(setupTestDB(t), mocks.NewDeckRepository(t), cardRepo, srs.PolicyDueDatePriority)

		require.NoError(t, svc.DeleteFlashcard(ctx, learnerID, card.FlashcardID))
	})

	t.Run("異常系: 他人のカードは削除できない", func(t *testing.T) {
		cardRepo := mocks.NewFlashcardRepository(t)
		card := ownedCard(uuid.New())
		cardRepo.On("FindByID", mock.Anything, mock.Anything, card.FlashcardID).Return(card, nil).Once()
		svc := NewDeckService(setupTestDB(t), mocks.NewDeckRepository(t), cardRepo, srs.PolicyDueDatePriority)

		err := svc.DeleteFlashcard(ctx, learnerID, card.FlashcardID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
