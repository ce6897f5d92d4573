// Package handlers は、HTTPリクエストを処理するハンドラ関数を定義するパッケージです。
// chi のルーターから呼び出され、リクエストの解析、Service の呼び出し、レスポンスの生成を行います。
package handlers

import (
	"net/http"

	"card_keep/internal/middleware"
	"card_keep/internal/model"
	"card_keep/internal/service"
	"card_keep/internal/webutil"
)

/**
 * @struct LearnerHandler
 * @brief 学習者関連のHTTPリクエストを処理するハンドラです。
 *
 * 実際のビジネスロジックは、保持している `service.LearnerService` に委譲します。
 */
type LearnerHandler struct {
	service service.LearnerService
}

/**
 * @function NewLearnerHandler
 * @brief LearnerHandler の新しいインスタンスを作成します (コンストラクタ関数)。
 *
 * @param s service.LearnerService: 依存する学習者サービスの実装。
 * @return *LearnerHandler: 新しく作成された LearnerHandler のポインタ。
 */
func NewLearnerHandler(s service.LearnerService) *LearnerHandler {
	return &LearnerHandler{service: s}
}

/**
 * @method CreateLearner
 * @brief 新しい学習者を登録します。認証不要のエンドポイントです。
 *
 * 処理フロー:
 * 1. リクエストボディを CreateLearnerRequest にデコードし、validate タグを検証
 * 2. LearnerService.CreateLearner を呼び出す
 * 3. 成功時は 201 Created と学習者情報を返す
 *
 * @example
 * r.Post("/learners", learnerHandler.CreateLearner)
 */
func (h *LearnerHandler) CreateLearner(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.CreateLearnerRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid create learner request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	learner, err := h.service.CreateLearner(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, model.NewLearnerResponse(learner))
}
