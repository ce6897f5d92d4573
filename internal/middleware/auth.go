package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"card_keep/internal/model"
	"card_keep/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// LearnerAuthenticator はトークンの subject が実在する学習者か確認します。
// service.LearnerService が満たす
type LearnerAuthenticator interface {
	GetLearner(ctx context.Context, learnerID uuid.UUID) (*model.Learner, error)
}

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証するミドルウェア
// トークンの発行は別サービスの責務で、ここでは HS256 の署名・有効期限・sub のみを確認する
func JWTAuthMiddleware(secretKey string, auth LearnerAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーが必要です。", "", model.ErrUnauthorized))
				return
			}

			// "Bearer {token}" の形式を検証
			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーの形式が正しくありません。", "", model.ErrUnauthorized))
				return
			}

			var claims model.JWTCustomClaims
			token, err := jwt.ParseWithClaims(headerParts[1], &claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(secretKey), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrUnauthorized))
				return
			}

			learnerID, err := uuid.Parse(claims.Subject)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid subject (sub) format", "subject", claims.Subject, "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "トークンのユーザー情報が不正です。", "", model.ErrUnauthorized))
				return
			}

			if _, err := auth.GetLearner(r.Context(), learnerID); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					logger.Warn("JWT auth failed: learner not found", "learner_id", learnerID)
					webutil.HandleError(w, logger, model.NewAppError("LEARNER_NOT_FOUND", "学習者が見つかりません。", "", model.ErrLearnerNotFound))
					return
				}
				webutil.HandleError(w, logger, err)
				return
			}

			ctx := context.WithValue(r.Context(), model.LearnerIDKey, learnerID)
			ctx = WithLogger(ctx, logger.With("learner_id", learnerID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetLearnerIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.LearnerIDKey).(uuid.UUID)
	if !ok {
		// ミドルウェアが正しく動作していない等の内部エラー
		return uuid.Nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コンテキストから学習者情報を取得できませんでした。", "", model.ErrInternalServer)
	}
	return value, nil
}
