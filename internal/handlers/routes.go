package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers は /api/v1 配下のハンドラ一式です。
type Handlers struct {
	Learner *LearnerHandler
	Deck    *DeckHandler
	Review  *ReviewHandler
}

// Routes は /api/v1 にマウントするルーターを返します。auth は保護対象のルートにだけ適用する
func (hs *Handlers) Routes(auth func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	// 認証不要
	r.Post("/learners", hs.Learner.CreateLearner)

	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Route("/decks", func(r chi.Router) {
			r.Post("/", hs.Deck.CreateDeck)
			r.Get("/", hs.Deck.ListDecks)
			r.Route("/{deck_id}", func(r chi.Router) {
				r.Get("/", hs.Deck.GetDeck)
				r.Delete("/", hs.Deck.DeleteDeck)
				r.Post("/cards", hs.Deck.AddFlashcard)
				r.Get("/cards", hs.Deck.ListFlashcards)
				r.Get("/next", hs.Review.NextCard)
				r.Get("/counts", hs.Review.DeckCounts)
			})
		})

		r.Route("/cards/{card_id}", func(r chi.Router) {
			r.Delete("/", hs.Deck.DeleteFlashcard)
			r.Put("/review", hs.Review.SubmitRating)
			r.Put("/recall", hs.Review.SubmitRecall)
		})

		r.Get("/counts", hs.Review.LearnerCounts)
		r.Get("/stats", hs.Review.Statistics)
	})

	return r
}
