//go:generate mockery --name ReviewService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"time"

	"card_keep/internal/middleware"
	"card_keep/internal/model"
	"card_keep/internal/repository"
	"card_keep/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewService interface {
	SubmitRating(ctx context.Context, learnerID, cardID uuid.UUID, rating int) (*model.ReviewResultResponse, error)
	SubmitRecall(ctx context.Context, learnerID, cardID uuid.UUID, recalled bool) (*model.RecallResultResponse, error)
	NextCard(ctx context.Context, learnerID, deckID uuid.UUID) (*model.NextCardResponse, error)
	DeckCounts(ctx context.Context, learnerID, deckID uuid.UUID) (*model.CountsResponse, error)
	LearnerCounts(ctx context.Context, learnerID uuid.UUID) (*model.CountsResponse, error)
	Statistics(ctx context.Context, learnerID uuid.UUID) (*model.StatisticsResponse, error)
}

type reviewService struct {
	db        *gorm.DB
	deckRepo  repository.DeckRepository
	cardRepo  repository.FlashcardRepository
	progRepo  repository.ProgressRepository
	scoreRepo repository.ScoreRepository
	cfg       srs.Config
	clock     func() time.Time
}

// ReviewOption は reviewService の任意設定です。
type ReviewOption func(*reviewService)

// WithClock は現在時刻の取得元を差し替えます (テストや再生用)。
func WithClock(clock func() time.Time) ReviewOption {
	return func(s *reviewService) {
		s.clock = clock
	}
}

func NewReviewService(
	db *gorm.DB,
	deckRepo repository.DeckRepository,
	cardRepo repository.FlashcardRepository,
	progRepo repository.ProgressRepository,
	scoreRepo repository.ScoreRepository,
	cfg srs.Config,
	opts ...ReviewOption,
) ReviewService {
	s := &reviewService{
		db:        db,
		deckRepo:  deckRepo,
		cardRepo:  cardRepo,
		progRepo:  progRepo,
		scoreRepo: scoreRepo,
		cfg:       cfg,
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitRating は SM-2 の評価を記録し、新しい状態を返します。
// 読み込みからUpsertまでを 1 トランザクションで行う
func (s *reviewService) SubmitRating(ctx context.Context, learnerID, cardID uuid.UUID, rating int) (*model.ReviewResultResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "card_id", cardID)

	r, err := srs.ParseRating(rating)
	if err != nil {
		logger.Warn("Invalid rating submitted", "rating", rating)
		return nil, model.NewAppError("INVALID_RATING", "ratingは0〜3の整数で指定してください。", "rating", errors.Join(model.ErrInvalidInput, err))
	}

	if _, err := s.findOwnedCard(ctx, learnerID, cardID); err != nil {
		return nil, err
	}

	now := s.clock()
	var next srs.CardState
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.progRepo.FindByCard(ctx, tx, learnerID, cardID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding progress in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "復習状態の取得中にエラーが発生しました。", "", err)
		}

		var state *srs.CardState
		if current != nil {
			st := current.ToState()
			state = &st
		}

		next, err = srs.Schedule(state, r, s.cfg, now)
		if err != nil {
			logger.Error("Scheduler rejected the review", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "スケジュールの計算に失敗しました。", "", err)
		}

		reviewedAt := now.UTC()
		progress := &model.CardProgress{
			LearnerID:      learnerID,
			FlashcardID:    cardID,
			LastReviewedAt: &reviewedAt,
		}
		if current != nil {
			progress.ProgressID = current.ProgressID
		}
		progress.ApplyState(next)

		if err := s.progRepo.Upsert(ctx, tx, progress); err != nil {
			logger.Error("Error upserting progress", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "復習状態の保存に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Review recorded", "rating", r.String(), "phase", next.Phase.String(), "interval", next.Interval, "due_at", next.DueAt)
	return &model.ReviewResultResponse{CardID: cardID, State: next}, nil
}

// SubmitRecall は旧形式デッキの正誤を記録し、新しい習熟スコアを返します。
func (s *reviewService) SubmitRecall(ctx context.Context, learnerID, cardID uuid.UUID, recalled bool) (*model.RecallResultResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "card_id", cardID)

	if _, err := s.findOwnedCard(ctx, learnerID, cardID); err != nil {
		return nil, err
	}

	now := s.clock()
	var newScore int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.scoreRepo.FindByCard(ctx, tx, learnerID, cardID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding card score in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "習熟スコアの取得中にエラーが発生しました。", "", err)
		}

		reviewedAt := now.UTC()
		score := &model.CardScore{LearnerID: learnerID, FlashcardID: cardID, LastReviewedAt: &reviewedAt}
		prev := srs.MinScore
		if current != nil {
			score.ScoreID = current.ScoreID
			prev = current.Score
		}
		newScore = srs.BumpScore(prev, recalled)
		score.Score = newScore

		if err := s.scoreRepo.Upsert(ctx, tx, score); err != nil {
			logger.Error("Error upserting card score", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "習熟スコアの保存に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Recall recorded", "recalled", recalled, "score", newScore)
	return &model.RecallResultResponse{CardID: cardID, Score: newScore}, nil
}

// NextCard はデッキのポリシーで次のカードを選びます。出せるカードがなければ Card は nil (エラーではない)
func (s *reviewService) NextCard(ctx context.Context, learnerID, deckID uuid.UUID) (*model.NextCardResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "deck_id", deckID)

	deck, err := s.findOwnedDeck(ctx, learnerID, deckID)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	resp := &model.NextCardResponse{Policy: deck.SelectionPolicy}

	switch deck.SelectionPolicy {
	case srs.PolicyScoreWeightedRandom:
		cards, err := s.scoreRepo.ListScoresForDeck(ctx, s.db, learnerID, deckID)
		if err != nil {
			logger.Error("Failed to list card scores", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "カード一覧の取得に失敗しました。", "", err)
		}
		entries, byID := scoredEntries(cards)
		// 乱数源はリクエストごとに作る (*rand.Rand は並行利用できない)
		sel := srs.NewScoreWeightedRandom(entries, rand.New(rand.NewSource(now.UnixNano())))
		if id, ok := sel.Next(now); ok {
			resp.Card = byID[id]
		}
		resp.Counts = model.NewCountsResponse(sel.Counts(now))

	default:
		cards, err := s.progRepo.ListStatesForDeck(ctx, s.db, learnerID, deckID)
		if err != nil {
			logger.Error("Failed to list card states", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "カード一覧の取得に失敗しました。", "", err)
		}
		entries := stateEntries(cards)
		sel := srs.NewDueDatePriority(entries)
		if id, ok := sel.Next(now); ok {
			for i, e := range entries {
				if e.CardID == id {
					resp.Card = cards[i].Flashcard
					resp.State = e.State
					break
				}
			}
		}
		resp.Counts = model.NewCountsResponse(sel.Counts(now))
	}

	if resp.Card == nil {
		logger.Info("No card to present")
	} else {
		logger.Debug("Next card selected", "card_id", resp.Card.FlashcardID)
	}
	return resp, nil
}

func (s *reviewService) DeckCounts(ctx context.Context, learnerID, deckID uuid.UUID) (*model.CountsResponse, error) {
	deck, err := s.findOwnedDeck(ctx, learnerID, deckID)
	if err != nil {
		return nil, err
	}
	counts, err := s.countDeck(ctx, learnerID, deck, s.clock())
	if err != nil {
		return nil, err
	}
	resp := model.NewCountsResponse(counts)
	return &resp, nil
}

// LearnerCounts は学習者の全デッキを合算した残り枚数を返します。
func (s *reviewService) LearnerCounts(ctx context.Context, learnerID uuid.UUID) (*model.CountsResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	decks, err := s.deckRepo.FindByLearner(ctx, s.db, learnerID)
	if err != nil {
		logger.Error("Failed to list decks", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "デッキ一覧の取得に失敗しました。", "", err)
	}

	cards, err := s.progRepo.ListStatesForLearner(ctx, s.db, learnerID)
	if err != nil {
		logger.Error("Failed to list card states", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "カード一覧の取得に失敗しました。", "", err)
	}

	now := s.clock()
	weighted := make(map[uuid.UUID]bool)
	var total srs.Counts
	for _, d := range decks {
		if d.SelectionPolicy != srs.PolicyScoreWeightedRandom {
			continue
		}
		weighted[d.DeckID] = true
		c, err := s.countDeck(ctx, learnerID, d, now)
		if err != nil {
			return nil, err
		}
		total = total.Add(c)
	}

	// 期限ベースのデッキは 1 回の一覧取得でまとめて数える
	sm2 := make([]model.CardWithProgress, 0, len(cards))
	for _, c := range cards {
		if !weighted[c.Flashcard.DeckID] {
			sm2 = append(sm2, c)
		}
	}
	total = total.Add(srs.CountStates(stateEntries(sm2), now))

	resp := model.NewCountsResponse(total)
	return &resp, nil
}

// activityDays は統計の活動履歴に含める過去の日数 (今日を除く)
const activityDays = 30

// Statistics はデッキ別・全体の習熟状況と、直近の日別復習枚数を返します。
// last_reviewed_at はカードごとに最後の 1 回だけなので、活動履歴は「その日が最終復習だったカード数」
func (s *reviewService) Statistics(ctx context.Context, learnerID uuid.UUID) (*model.StatisticsResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	decks, err := s.deckRepo.FindByLearner(ctx, s.db, learnerID)
	if err != nil {
		logger.Error("Failed to list decks", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "デッキ一覧の取得に失敗しました。", "", err)
	}

	cards, err := s.progRepo.ListStatesForLearner(ctx, s.db, learnerID)
	if err != nil {
		logger.Error("Failed to list card states", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "カード一覧の取得に失敗しました。", "", err)
	}
	byDeck := make(map[uuid.UUID][]model.CardWithProgress)
	for _, c := range cards {
		byDeck[c.Flashcard.DeckID] = append(byDeck[c.Flashcard.DeckID], c)
	}

	now := s.clock()
	resp := &model.StatisticsResponse{
		Overall:  model.OverallStatsResponse{TotalDecks: len(decks)},
		Decks:    make([]model.DeckStatsResponse, 0, len(decks)),
		Activity: []model.DailyActivity{},
	}
	for _, d := range decks {
		var st srs.Stats
		if d.SelectionPolicy == srs.PolicyScoreWeightedRandom {
			scored, err := s.scoreRepo.ListScoresForDeck(ctx, s.db, learnerID, d.DeckID)
			if err != nil {
				logger.Error("Failed to list card scores", "error", err, "deck_id", d.DeckID)
				return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "カード一覧の取得に失敗しました。", "", err)
			}
			entries, _ := scoredEntries(scored)
			st = srs.SummarizeScores(entries)
		} else {
			st = srs.SummarizeStates(stateEntries(byDeck[d.DeckID]), now)
		}
		resp.Decks = append(resp.Decks, model.DeckStatsResponse{
			DeckID:          d.DeckID,
			Name:            d.Name,
			SelectionPolicy: d.SelectionPolicy,
			Stats:           st,
		})
		resp.Overall.Stats = resp.Overall.Stats.Add(st)
	}
	sort.SliceStable(resp.Decks, func(i, j int) bool { return resp.Decks[i].Name < resp.Decks[j].Name })

	today := now.UTC().Truncate(24 * time.Hour)
	since := today.AddDate(0, 0, -activityDays)
	reviewed, err := s.progRepo.ReviewActivity(ctx, s.db, learnerID, since)
	if err != nil {
		logger.Error("Failed to aggregate review activity", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習履歴の集計に失敗しました。", "", err)
	}
	recalled, err := s.scoreRepo.ReviewActivity(ctx, s.db, learnerID, since)
	if err != nil {
		logger.Error("Failed to aggregate recall activity", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習履歴の集計に失敗しました。", "", err)
	}
	resp.Activity = mergeActivity(reviewed, recalled)

	todayKey := today.Format("2006-01-02")
	for _, a := range resp.Activity {
		if a.Day == todayKey {
			resp.ReviewedToday = a.Cards
		}
	}
	return resp, nil
}

// mergeActivity は日付ごとに枚数を合算し、日付の昇順で返します。
func mergeActivity(lists ...[]model.DailyActivity) []model.DailyActivity {
	perDay := make(map[string]int)
	for _, l := range lists {
		for _, a := range l {
			perDay[a.Day] += a.Cards
		}
	}
	out := make([]model.DailyActivity, 0, len(perDay))
	for day, n := range perDay {
		out = append(out, model.DailyActivity{Day: day, Cards: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

func (s *reviewService) countDeck(ctx context.Context, learnerID uuid.UUID, deck *model.Deck, now time.Time) (srs.Counts, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "deck_id", deck.DeckID)

	if deck.SelectionPolicy == srs.PolicyScoreWeightedRandom {
		cards, err := s.scoreRepo.ListScoresForDeck(ctx, s.db, learnerID, deck.DeckID)
		if err != nil {
			logger.Error("Failed to list card scores", "error", err)
			return srs.Counts{}, model.NewAppError("INTERNAL_SERVER_ERROR", "カード一覧の取得に失敗しました。", "", err)
		}
		entries, _ := scoredEntries(cards)
		return srs.CountScores(entries), nil
	}

	cards, err := s.progRepo.ListStatesForDeck(ctx, s.db, learnerID, deck.DeckID)
	if err != nil {
		logger.Error("Failed to list card states", "error", err)
		return srs.Counts{}, model.NewAppError("INTERNAL_SERVER_ERROR", "カード一覧の取得に失敗しました。", "", err)
	}
	return srs.CountStates(stateEntries(cards), now), nil
}

func (s *reviewService) findOwnedDeck(ctx context.Context, learnerID, deckID uuid.UUID) (*model.Deck, error) {
	deck, err := s.deckRepo.FindByID(ctx, s.db, learnerID, deckID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("DECK_NOT_FOUND", "デッキが見つかりません。", "deck_id", err)
		}
		middleware.GetLogger(ctx).Error("Failed to find deck", "error", err, "deck_id", deckID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "デッキの取得に失敗しました。", "", err)
	}
	return deck, nil
}

// findOwnedCard は他人のカードを存在しないものとして扱います。
func (s *reviewService) findOwnedCard(ctx context.Context, learnerID, cardID uuid.UUID) (*model.Flashcard, error) {
	return findOwnedCard(ctx, s.db, s.cardRepo, learnerID, cardID)
}

func findOwnedCard(ctx context.Context, db *gorm.DB, cardRepo repository.FlashcardRepository, learnerID, cardID uuid.UUID) (*model.Flashcard, error) {
	card, err := cardRepo.FindByID(ctx, db, cardID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("CARD_NOT_FOUND", "カードが見つかりません。", "card_id", err)
		}
		middleware.GetLogger(ctx).Error("Failed to find card", "error", err, "card_id", cardID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "カードの取得に失敗しました。", "", err)
	}
	if card.Deck == nil || card.Deck.LearnerID != learnerID {
		return nil, model.NewAppError("CARD_NOT_FOUND", "カードが見つかりません。", "card_id", model.ErrNotFound)
	}
	return card, nil
}

func stateEntries(cards []model.CardWithProgress) []srs.Entry {
	entries := make([]srs.Entry, len(cards))
	for i, c := range cards {
		entries[i] = srs.Entry{CardID: c.Flashcard.FlashcardID}
		if c.Progress != nil {
			st := c.Progress.ToState()
			entries[i].State = &st
		}
	}
	return entries
}

func scoredEntries(cards []model.CardWithScore) ([]srs.ScoredEntry, map[uuid.UUID]*model.Flashcard) {
	entries := make([]srs.ScoredEntry, len(cards))
	byID := make(map[uuid.UUID]*model.Flashcard, len(cards))
	for i, c := range cards {
		entries[i] = srs.ScoredEntry{CardID: c.Flashcard.FlashcardID}
		if c.Score != nil {
			entries[i].Score = c.Score.Score
			entries[i].Scored = true
		}
		byID[c.Flashcard.FlashcardID] = c.Flashcard
	}
	return entries, byID
}
