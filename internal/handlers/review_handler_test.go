// internal/handlers/review_handler_test.go
package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"card_keep/internal/model"
	"card_keep/internal/srs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewHandler_SubmitRating(t *testing.T) {
	learnerID := uuid.New()
	cardID := uuid.New()
	due := time.Date(2025, 6, 15, 10, 10, 0, 0, time.UTC)

	tests := []struct {
		name      string
		body      interface{}
		setupMock func(ts *testServer)
		wantCode  int
		wantError string
	}{
		{
			name: "正常系: Good",
			body: map[string]int{"rating": 2},
			setupMock: func(ts *testServer) {
				ts.review.On("SubmitRating", mock.Anything, learnerID, cardID, 2).
					Return(&model.ReviewResultResponse{CardID: cardID, State: srs.CardState{EaseFactor: 2.5, DueAt: due, Step: 1, Phase: srs.Learning}}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name: "正常系: Again (0) も必須チェックを通る",
			body: map[string]int{"rating": 0},
			setupMock: func(ts *testServer) {
				ts.review.On("SubmitRating", mock.Anything, learnerID, cardID, 0).
					Return(&model.ReviewResultResponse{CardID: cardID, State: srs.CardState{EaseFactor: 2.5, DueAt: due, Phase: srs.Learning}}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name: "異常系: 範囲外の rating",
			body: map[string]int{"rating": 7},
			setupMock: func(ts *testServer) {
				ts.review.On("SubmitRating", mock.Anything, learnerID, cardID, 7).
					Return(nil, model.NewAppError("INVALID_RATING", "ratingは0〜3の整数で指定してください。", "rating", errors.Join(model.ErrInvalidInput, srs.ErrInvalidRating))).Once()
			},
			wantCode:  http.StatusBadRequest,
			wantError: "INVALID_RATING",
		},
		{
			name:      "異常系: rating なし",
			body:      map[string]int{},
			setupMock: func(ts *testServer) {},
			wantCode:  http.StatusBadRequest,
			wantError: "VALIDATION_ERROR",
		},
		{
			name:      "異常系: rating が文字列",
			body:      `{"rating":"good"}`,
			setupMock: func(ts *testServer) {},
			wantCode:  http.StatusBadRequest,
			wantError: "INVALID_REQUEST_BODY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			tt.setupMock(ts)

			body := sendRequest(t, ts, httpRequestDetails{
				Method:  http.MethodPut,
				Path:    "/api/v1/cards/" + cardID.String() + "/review",
				Body:    tt.body,
				Headers: learnerHeader(learnerID),
			}, tt.wantCode)
			if tt.wantError != "" {
				verifyErrorCode(t, body, tt.wantError)
				return
			}
			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(body, &resp))
			state := resp["state"].(map[string]interface{})
			assert.Equal(t, "learning", state["phase"])
		})
	}
}

func TestReviewHandler_SubmitRecall(t *testing.T) {
	learnerID := uuid.New()
	cardID := uuid.New()

	ts := newTestServer(t)
	ts.review.On("SubmitRecall", mock.Anything, learnerID, cardID, false).
		Return(&model.RecallResultResponse{CardID: cardID, Score: 0}, nil).Once()

	body := sendRequest(t, ts, httpRequestDetails{
		Method:  http.MethodPut,
		Path:    "/api/v1/cards/" + cardID.String() + "/recall",
		Body:    map[string]bool{"recalled": false},
		Headers: learnerHeader(learnerID),
	}, http.StatusOK)
	assert.JSONEq(t, `{"card_id":"`+cardID.String()+`","score":0}`, string(body))
}

func TestReviewHandler_NextCard(t *testing.T) {
	learnerID := uuid.New()
	deckID := uuid.New()

	t.Run("正常系: カードなしは card: null", func(t *testing.T) {
		ts := newTestServer(t)
		ts.review.On("NextCard", mock.Anything, learnerID, deckID).
			Return(&model.NextCardResponse{Policy: srs.PolicyDueDatePriority}, nil).Once()

		body := sendRequest(t, ts, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/decks/" + deckID.String() + "/next", Headers: learnerHeader(learnerID)}, http.StatusOK)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &resp))
		v, ok := resp["card"]
		assert.True(t, ok, "card キーは常に含まれる")
		assert.Nil(t, v)
		assert.Equal(t, "due_date_priority", resp["policy"])
	})

	t.Run("正常系: カードあり", func(t *testing.T) {
		ts := newTestServer(t)
		card := &model.Flashcard{FlashcardID: uuid.New(), DeckID: deckID, Question: "apple", Answer: "りんご"}
		ts.review.On("NextCard", mock.Anything, learnerID, deckID).
			Return(&model.NextCardResponse{Card: card, Policy: srs.PolicyDueDatePriority, Counts: model.CountsResponse{New: 1, Total: 1}}, nil).Once()

		body := sendRequest(t, ts, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/decks/" + deckID.String() + "/next", Headers: learnerHeader(learnerID)}, http.StatusOK)

		var resp model.NextCardResponse
		require.NoError(t, json.Unmarshal(body, &resp))
		require.NotNil(t, resp.Card)
		assert.Equal(t, card.FlashcardID, resp.Card.FlashcardID)
		assert.Equal(t, 1, resp.Counts.New)
	})
}

func TestReviewHandler_Counts(t *testing.T) {
	learnerID := uuid.New()
	deckID := uuid.New()

	ts := newTestServer(t)
	ts.review.On("DeckCounts", mock.Anything, learnerID, deckID).
		Return(&model.CountsResponse{New: 2, LearningDue: 1, ReviewDue: 3, Due: 4, Total: 9}, nil).Once()
	ts.review.On("LearnerCounts", mock.Anything, learnerID).
		Return(&model.CountsResponse{New: 5, Total: 5}, nil).Once()

	body := sendRequest(t, ts, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/decks/" + deckID.String() + "/counts", Headers: learnerHeader(learnerID)}, http.StatusOK)
	assert.JSONEq(t, `{"new":2,"learning_due":1,"review_due":3,"due":4,"total":9}`, string(body))

	body = sendRequest(t, ts, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/counts", Headers: learnerHeader(learnerID)}, http.StatusOK)
	assert.JSONEq(t, `{"new":5,"learning_due":0,"review_due":0,"due":0,"total":5}`, string(body))
}

func TestReviewHandler_Statistics(t *testing.T) {
	learnerID := uuid.New()
	deckID := uuid.New()

	t.Run("正常系: 統計を返す", func(t *testing.T) {
		ts := newTestServer(t)
		ts.review.On("Statistics", mock.Anything, learnerID).Return(&model.StatisticsResponse{
			Overall:       model.OverallStatsResponse{TotalDecks: 1, Stats: srs.Stats{Total: 3, New: 1, Studied: 2, Learning: 1, Mature: 1, Due: 1}},
			ReviewedToday: 2,
			Decks: []model.DeckStatsResponse{
				{DeckID: deckID, Name: "英単語", SelectionPolicy: srs.PolicyDueDatePriority, Stats: srs.Stats{Total: 3, New: 1, Studied: 2, Learning: 1, Mature: 1, Due: 1}},
			},
			Activity: []model.DailyActivity{{Day: "2025-06-15", Cards: 2}},
		}, nil).Once()

		body := sendRequest(t, ts, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/stats", Headers: learnerHeader(learnerID)}, http.StatusOK)

		// srs.Stats のフィールドはフラットに展開される
		assert.JSONEq(t, `{
			"overall": {"total_decks":1,"total":3,"new":1,"studied":2,"learning":1,"mature":1,"due":1},
			"reviewed_today": 2,
			"decks": [{"deck_id":"`+deckID.String()+`","name":"英単語","selection_policy":"due_date_priority","total":3,"new":1,"studied":2,"learning":1,"mature":1,"due":1}],
			"activity": [{"date":"2025-06-15","cards_reviewed":2}]
		}`, string(body))
	})

	t.Run("異常系: X-Learner-ID なし", func(t *testing.T) {
		ts := newTestServer(t)
		body := sendRequest(t, ts, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/stats"}, http.StatusUnauthorized)
		verifyErrorCode(t, body, "UNAUTHORIZED")
	})

	t.Run("異常系: サービスエラーは 500", func(t *testing.T) {
		ts := newTestServer(t)
		ts.review.On("Statistics", mock.Anything, learnerID).
			Return(nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習履歴の集計に失敗しました。", "", errors.New("db down"))).Once()

		body := sendRequest(t, ts, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/stats", Headers: learnerHeader(learnerID)}, http.StatusInternalServerError)
		verifyErrorCode(t, body, "INTERNAL_SERVER_ERROR")
	})
}
