// internal/middleware/dev_auth.go
package middleware

import (
	"context"
	"net/http"

	"card_keep/internal/model"
	"card_keep/internal/webutil"

	"github.com/google/uuid"
)

// DevLearnerContextMiddleware は開発時用ミドルウェアです (auth.enabled=false)。
// X-Learner-ID ヘッダーからUUIDを抽出し、コンテキストに設定します。
// DBでの学習者の存在チェックは行いません。
func DevLearnerContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		learnerIDStr := r.Header.Get("X-Learner-ID")
		if learnerIDStr == "" {
			logger.Warn("[DEV AUTH] Failed: X-Learner-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-Learner-ID ヘッダーが必要です。", "", model.ErrUnauthorized))
			return
		}

		learnerID, err := uuid.Parse(learnerIDStr)
		if err != nil {
			logger.Warn("[DEV AUTH] Failed: Invalid X-Learner-ID format", "value", learnerIDStr)
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-Learner-ID の形式が正しくありません。", "", model.ErrUnauthorized))
			return
		}

		logger.Debug("[DEV AUTH] Learner ID set to context (no validation)", "learner_id", learnerID)

		ctx := context.WithValue(r.Context(), model.LearnerIDKey, learnerID)
		ctx = WithLogger(ctx, logger.With("learner_id", learnerID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
