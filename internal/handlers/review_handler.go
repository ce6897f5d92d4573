// internal/handlers/review_handler.go
package handlers

import (
	"net/http"

	"card_keep/internal/middleware"
	"card_keep/internal/model"
	"card_keep/internal/service"
	"card_keep/internal/webutil"
)

type ReviewHandler struct {
	service service.ReviewService
}

func NewReviewHandler(s service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: s}
}

// SubmitRating は PUT /cards/{card_id}/review {"rating": 0..3}
func (h *ReviewHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	cardID, err := uuidParam(r, "card_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.SubmitRatingRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	// 範囲チェックは Service 側 (INVALID_RATING)
	result, err := h.service.SubmitRating(r.Context(), learnerID, cardID, *req.Rating)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result)
}

// SubmitRecall は PUT /cards/{card_id}/recall {"recalled": bool}
func (h *ReviewHandler) SubmitRecall(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	cardID, err := uuidParam(r, "card_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.SubmitRecallRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.SubmitRecall(r.Context(), learnerID, cardID, *req.Recalled)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result)
}

// NextCard は出題するカードがなくても 200 で {"card": null} を返す
func (h *ReviewHandler) NextCard(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	deckID, err := uuidParam(r, "deck_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	next, err := h.service.NextCard(r.Context(), learnerID, deckID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, next)
}

func (h *ReviewHandler) DeckCounts(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	deckID, err := uuidParam(r, "deck_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	counts, err := h.service.DeckCounts(r.Context(), learnerID, deckID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, counts)
}

func (h *ReviewHandler) LearnerCounts(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	counts, err := h.service.LearnerCounts(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, counts)
}

// Statistics は学習者の統計 (デッキ別の習熟状況と直近の復習履歴) を返します。
func (h *ReviewHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	stats, err := h.service.Statistics(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, stats)
}
