package handlers

import (
	"net/http"

	"card_keep/internal/middleware"
	"card_keep/internal/model"
	"card_keep/internal/service"
	"card_keep/internal/webutil"
)

// DeckHandler はデッキとカードの CRUD を扱います。
type DeckHandler struct {
	service service.DeckService
}

func NewDeckHandler(s service.DeckService) *DeckHandler {
	return &DeckHandler{service: s}
}

func (h *DeckHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.CreateDeckRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	deck, err := h.service.CreateDeck(r.Context(), learnerID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, deck)
}

func (h *DeckHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	decks, err := h.service.ListDecks(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if decks == nil {
		decks = []*model.Deck{} // null ではなく [] を返す
	}
	webutil.RespondWithJSON(w, http.StatusOK, decks)
}

func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
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

	deck, err := h.service.GetDeck(r.Context(), learnerID, deckID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, deck)
}

func (h *DeckHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.DeleteDeck(r.Context(), learnerID, deckID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DeckHandler) AddFlashcard(w http.ResponseWriter, r *http.Request) {
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

	var req model.CreateFlashcardRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	card, err := h.service.AddFlashcard(r.Context(), learnerID, deckID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, card)
}

func (h *DeckHandler) ListFlashcards(w http.ResponseWriter, r *http.Request) {
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

	cards, err := h.service.ListFlashcards(r.Context(), learnerID, deckID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if cards == nil {
		cards = []*model.Flashcard{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, cards)
}

func (h *DeckHandler) DeleteFlashcard(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.DeleteFlashcard(r.Context(), learnerID, cardID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
