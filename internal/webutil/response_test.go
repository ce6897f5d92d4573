package webutil_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"card_keep/internal/model"
	"card_keep/internal/srs"
	"card_keep/internal/webutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"NotFound", model.NewAppError("CARD_NOT_FOUND", "", "", model.ErrNotFound), http.StatusNotFound},
		{"InvalidInput (rating)", model.NewAppError("INVALID_RATING", "", "rating", errors.Join(model.ErrInvalidInput, srs.ErrInvalidRating)), http.StatusBadRequest},
		{"Conflict", fmt.Errorf("wrap: %w", model.ErrConflict), http.StatusConflict},
		{"Unauthorized", model.ErrUnauthorized, http.StatusUnauthorized},
		{"Forbidden", model.ErrForbidden, http.StatusForbidden},
		{"LearnerNotFound", model.ErrLearnerNotFound, http.StatusForbidden},
		{"その他", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, webutil.MapErrorToStatusCode(tt.err))
		})
	}
}

func TestHandleError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&strings.Builder{}, nil))

	t.Run("AppError は code と field をそのまま返す", func(t *testing.T) {
		rec := httptest.NewRecorder()
		webutil.HandleError(rec, logger, model.NewAppError("DECK_NOT_FOUND", "デッキが見つかりません。", "deck_id", model.ErrNotFound))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"error":{"code":"DECK_NOT_FOUND","message":"デッキが見つかりません。","field":"deck_id"}}`, rec.Body.String())
	})

	t.Run("AppError 以外は詳細を隠して 500", func(t *testing.T) {
		rec := httptest.NewRecorder()
		webutil.HandleError(rec, logger, fmt.Errorf("gormProgressRepository.Upsert: %w", errors.New("disk full")))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "disk full")
		var resp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "INTERNAL_SERVER_ERROR", resp.Error.Code)
	})
}

func TestDecodeAndValidate(t *testing.T) {
	decode := func(body string, dst interface{}) error {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		return webutil.DecodeAndValidate(req, dst)
	}

	t.Run("正常系", func(t *testing.T) {
		var req model.CreateDeckRequest
		require.NoError(t, decode(`{"name":"英単語"}`, &req))
		assert.Equal(t, "英単語", req.Name)
		assert.Empty(t, req.SelectionPolicy)
	})

	t.Run("異常系: 不明なポリシーは日本語メッセージ", func(t *testing.T) {
		var req model.CreateDeckRequest
		err := decode(`{"name":"英単語","selection_policy":"fsrs"}`, &req)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Detail.Code)
		assert.Equal(t, "selection_policy", appErr.Detail.Field)
		assert.Contains(t, appErr.Detail.Message, "出題ポリシー")
	})

	t.Run("異常系: 複数フィールド", func(t *testing.T) {
		var req model.CreateFlashcardRequest
		err := decode(`{}`, &req)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "question,answer", appErr.Detail.Field)
		assert.Contains(t, appErr.Detail.Message, "問題は必須項目です。")
	})

	t.Run("異常系: 未知のフィールド", func(t *testing.T) {
		var req model.SubmitRatingRequest
		err := decode(`{"rating":2,"ease":2.5}`, &req)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_REQUEST_BODY", appErr.Detail.Code)
	})
}
