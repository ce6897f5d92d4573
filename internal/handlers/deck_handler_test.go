package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"card_keep/internal/model"
	"card_keep/internal/srs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeckHandler_CreateDeck(t *testing.T) {
	learnerID := uuid.New()

	tests := []struct {
		name      string
		headers   map[string]string
		body      interface{}
		setupMock func(ts *testServer)
		wantCode  int
		wantError string
	}{
		{
			name:    "正常系: デッキ作成",
			headers: learnerHeader(learnerID),
			body:    map[string]string{"name": "英単語", "selection_policy": "score_weighted_random"},
			setupMock: func(ts *testServer) {
				ts.deck.On("CreateDeck", mock.Anything, learnerID, &model.CreateDeckRequest{Name: "英単語", SelectionPolicy: srs.PolicyScoreWeightedRandom}).
					Return(&model.Deck{DeckID: uuid.New(), Name: "英単語", SelectionPolicy: srs.PolicyScoreWeightedRandom}, nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "異常系: X-Learner-ID なし",
			body:      map[string]string{"name": "英単語"},
			setupMock: func(ts *testServer) {},
			wantCode:  http.StatusUnauthorized,
			wantError: "UNAUTHORIZED",
		},
		{
			name:      "異常系: 不明なポリシー",
			headers:   learnerHeader(learnerID),
			body:      map[string]string{"name": "英単語", "selection_policy": "round_robin"},
			setupMock: func(ts *testServer) {},
			wantCode:  http.StatusBadRequest,
			wantError: "VALIDATION_ERROR",
		},
		{
			name:      "異常系: 名前なし",
			headers:   learnerHeader(learnerID),
			body:      map[string]string{},
			setupMock: func(ts *testServer) {},
			wantCode:  http.StatusBadRequest,
			wantError: "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			tt.setupMock(ts)

			body := sendRequest(t, ts, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/decks", Body: tt.body, Headers: tt.headers}, tt.wantCode)
			if tt.wantError != "" {
				verifyErrorCode(t, body, tt.wantError)
				return
			}
			var deck model.Deck
			require.NoError(t, json.Unmarshal(body, &deck))
			assert.Equal(t, srs.PolicyScoreWeightedRandom, deck.SelectionPolicy)
		})
	}
}

func TestDeckHandler_ListAndGet(t *testing.T) {
	learnerID := uuid.New()
	deckID := uuid.New()

	t.Run("正常系: 一覧が空なら []", func(t *testing.T) {
		ts := newTestServer(t)
		ts.deck.On("ListDecks", mock.Anything, learnerID).Return(nil, nil).Once()

		body := sendRequest(t, ts, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/decks", Headers: learnerHeader(learnerID)}, http.StatusOK)
		assert.JSONEq(t, `[]`, string(body))
	})

	t.Run("異常系: deck_id の形式が不正", func(t *testing.T) {
		ts := newTestServer(t)
		body := sendRequest(t, ts, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/decks/not-a-uuid", Headers: learnerHeader(learnerID)}, http.StatusBadRequest)
		verifyErrorCode(t, body, "INVALID_PATH_PARAMETER")
	})

	t.Run("異常系: デッキが見つからない", func(t *testing.T) {
		ts := newTestServer(t)
		ts.deck.On("GetDeck", mock.Anything, learnerID, deckID).
			Return(nil, model.NewAppError("DECK_NOT_FOUND", "デッキが見つかりません。", "deck_id", model.ErrNotFound)).Once()

		body := sendRequest(t, ts, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/decks/" + deckID.String(), Headers: learnerHeader(learnerID)}, http.StatusNotFound)
		verifyErrorCode(t, body, "DECK_NOT_FOUND")
	})

	t.Run("正常系: 削除は 204", func(t *testing.T) {
		ts := newTestServer(t)
		ts.deck.On("DeleteDeck", mock.Anything, learnerID, deckID).Return(nil).Once()
		sendRequest(t, ts, httpRequestDetails{Method: http.MethodDelete, Path: "/api/v1/decks/" + deckID.String(), Headers: learnerHeader(learnerID)}, http.StatusNoContent)
	})
}

func TestDeckHandler_Flashcards(t *testing.T) {
	learnerID := uuid.New()
	deckID := uuid.New()
	cardID := uuid.New()

	t.Run("正常系: カード追加", func(t *testing.T) {
		ts := newTestServer(t)
		ts.deck.On("AddFlashcard", mock.Anything, learnerID, deckID, &model.CreateFlashcardRequest{Question: "apple", Answer: "りんご"}).
			Return(&model.Flashcard{FlashcardID: cardID, DeckID: deckID, Question: "apple", Answer: "りんご"}, nil).Once()

		body := sendRequest(t, ts, httpRequestDetails{
			Method:  http.MethodPost,
			Path:    "/api/v1/decks/" + deckID.String() + "/cards",
			Body:    map[string]string{"question": "apple", "answer": "りんご"},
			Headers: learnerHeader(learnerID),
		}, http.StatusCreated)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &resp))
		assert.Equal(t, cardID.String(), resp["card_id"])
	})

	t.Run("異常系: answer なし", func(t *testing.T) {
		ts := newTestServer(t)
		body := sendRequest(t, ts, httpRequestDetails{
			Method:  http.MethodPost,
			Path:    "/api/v1/decks/" + deckID.String() + "/cards",
			Body:    map[string]string{"question": "apple"},
			Headers: learnerHeader(learnerID),
		}, http.StatusBadRequest)
		verifyErrorCode(t, body, "VALIDATION_ERROR")
	})

	t.Run("正常系: カード一覧", func(t *testing.T) {
		ts := newTestServer(t)
		ts.deck.On("ListFlashcards", mock.Anything, learnerID, deckID).Return([]*model.Flashcard{{FlashcardID: cardID}}, nil).Once()

		body := sendRequest(t, ts, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/decks/" + deckID.String() + "/cards", Headers: learnerHeader(learnerID)}, http.StatusOK)
		var cards []map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &cards))
		assert.Len(t, cards, 1)
	})

	t.Run("正常系: カード削除", func(t *testing.T) {
		ts := newTestServer(t)
		ts.deck.On("DeleteFlashcard", mock.Anything, learnerID, cardID).Return(nil).Once()
		sendRequest(t, ts, httpRequestDetails{Method: http.MethodDelete, Path: "/api/v1/cards/" + cardID.String(), Headers: learnerHeader(learnerID)}, http.StatusNoContent)
	})
}
