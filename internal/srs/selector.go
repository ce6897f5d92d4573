// internal/srs/selector.go
package srs

import (
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Policy はデッキごとに選択できる出題ポリシーです。
type Policy string

const (
	PolicyDueDatePriority     Policy = "due_date_priority"
	PolicyScoreWeightedRandom Policy = "score_weighted_random"
)

// IsValid は既知のポリシーかを返します。
func (p Policy) IsValid() bool {
	return p == PolicyDueDatePriority || p == PolicyScoreWeightedRandom
}

// Counts は「今日の残りカード」表示用の集計です。New, LearningDue, ReviewDue は互いに重ならない。
type Counts struct {
	New         int `json:"new"`
	LearningDue int `json:"learning_due"`
	ReviewDue   int `json:"review_due"`
	Total       int `json:"total"`
}

// Due は復習期限を迎えたカード数 (学習中 + 復習) です。
func (c Counts) Due() int {
	return c.LearningDue + c.ReviewDue
}

// Add は c と o を合算した値を返します。
func (c Counts) Add(o Counts) Counts {
	return Counts{
		New:         c.New + o.New,
		LearningDue: c.LearningDue + o.LearningDue,
		ReviewDue:   c.ReviewDue + o.ReviewDue,
		Total:       c.Total + o.Total,
	}
}

// Selector はデッキのスナップショットから次に出すカードを選びます。
// カードがない場合は (uuid.Nil, false) を返す。これはエラーではない。
type Selector interface {
	Next(now time.Time) (uuid.UUID, bool)
	Counts(now time.Time) Counts
}

// Entry はデッキ内のカードと、その復習状態 (未学習なら nil) の組です。
type Entry struct {
	CardID uuid.UUID
	State  *CardState
}

// CountStates はスナップショットを集計します。読み取りのみで副作用はない。
func CountStates(entries []Entry, now time.Time) Counts {
	c := Counts{Total: len(entries)}
	for _, e := range entries {
		switch {
		case e.State == nil:
			c.New++
		case !e.State.IsDue(now):
		case e.State.Phase == Review:
			c.ReviewDue++
		default:
			c.LearningDue++
		}
	}
	return c
}

// DueDatePriority は期限ベースの出題ポリシーです。
//
//  1. 未学習カードを最優先
//  2. 次に期限切れカードを遅延の大きい順
//  3. 出せるカードがなければ、期限前のカードを期限の近い順
//
// 同順位は入力順を保つ (ストアはカード作成順で渡す)。
type DueDatePriority struct {
	entries []Entry
}

var _ Selector = (*DueDatePriority)(nil)

// NewDueDatePriority は entries をコピーして保持します。
func NewDueDatePriority(entries []Entry) *DueDatePriority {
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return &DueDatePriority{entries: cp}
}

type rankedEntry struct {
	id      uuid.UUID
	class   int           // 0: new, 1: due, 2: not yet due
	overdue time.Duration // class 1: now - due_at, class 2: due_at - now
}

// Order は now 時点の出題順を返します。期限前カードは、未学習・期限切れカードが 1 枚もないときだけ含まれる。
func (d *DueDatePriority) Order(now time.Time) []uuid.UUID {
	ranked := make([]rankedEntry, 0, len(d.entries))
	available := false
	for _, e := range d.entries {
		r := rankedEntry{id: e.CardID}
		switch {
		case e.State == nil:
			r.class = 0
			available = true
		case e.State.IsDue(now):
			r.class = 1
			r.overdue = now.Sub(e.State.DueAt)
			available = true
		default:
			r.class = 2
			r.overdue = e.State.DueAt.Sub(now)
		}
		ranked = append(ranked, r)
	}

	if available {
		filtered := ranked[:0]
		for _, r := range ranked {
			if r.class != 2 {
				filtered = append(filtered, r)
			}
		}
		ranked = filtered
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.class != b.class {
			return a.class < b.class
		}
		switch a.class {
		case 1:
			return a.overdue > b.overdue // 遅延が大きいほど先
		case 2:
			return a.overdue < b.overdue // 期限が近いほど先
		}
		return false
	})

	ids := make([]uuid.UUID, len(ranked))
	for i, r := range ranked {
		ids[i] = r.id
	}
	return ids
}

func (d *DueDatePriority) Next(now time.Time) (uuid.UUID, bool) {
	order := d.Order(now)
	if len(order) == 0 {
		return uuid.Nil, false
	}
	return order[0], true
}

func (d *DueDatePriority) Counts(now time.Time) Counts {
	return CountStates(d.entries, now)
}

// ---------------------------------------------------------------------------
// 旧形式デッキ: 習熟スコアによる重み付きランダム抽選
// ---------------------------------------------------------------------------

const (
	MinScore = 0
	MaxScore = 5

	scoreWeightNumerator = 10.0
)

// ScoredEntry は旧形式デッキのカードと習熟スコアです。Scored が false なら一度も回答していない。
type ScoredEntry struct {
	CardID uuid.UUID
	Score  int
	Scored bool
}

// ScoreWeightedRandom は 10 / (score + 1) の重みでカードを 1 枚抽選します。
// 期限の概念はなく、全カードが毎回抽選対象になる。
type ScoreWeightedRandom struct {
	entries []ScoredEntry
	rng     *rand.Rand
}

var _ Selector = (*ScoreWeightedRandom)(nil)

// NewScoreWeightedRandom は rng を使う抽選器を作ります。rng は並行利用しないこと。
// rng が nil なら現在時刻をシードにした乱数源を使う
func NewScoreWeightedRandom(entries []ScoredEntry, rng *rand.Rand) *ScoreWeightedRandom {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	cp := make([]ScoredEntry, len(entries))
	copy(cp, entries)
	return &ScoreWeightedRandom{entries: cp, rng: rng}
}

// Weight は習熟スコアに対する抽選の重みです。
func Weight(score int) float64 {
	return scoreWeightNumerator / float64(clampScore(score)+1)
}

func (s *ScoreWeightedRandom) Next(_ time.Time) (uuid.UUID, bool) {
	if len(s.entries) == 0 {
		return uuid.Nil, false
	}
	total := 0.0
	for _, e := range s.entries {
		total += Weight(e.Score)
	}
	r := s.rng.Float64() * total
	for _, e := range s.entries {
		r -= Weight(e.Score)
		if r < 0 {
			return e.CardID, true
		}
	}
	// 浮動小数点の誤差で末尾を越えた場合
	return s.entries[len(s.entries)-1].CardID, true
}

func (s *ScoreWeightedRandom) Counts(_ time.Time) Counts {
	return CountScores(s.entries)
}

// CountScores は旧形式デッキを集計します。未回答は New、回答済みは常に出題対象なので ReviewDue。
func CountScores(entries []ScoredEntry) Counts {
	c := Counts{Total: len(entries)}
	for _, e := range entries {
		if e.Scored {
			c.ReviewDue++
		} else {
			c.New++
		}
	}
	return c
}

// BumpScore は回答結果から新しい習熟スコアを返します。正解で +1 (上限 5)、不正解で 0。
func BumpScore(score int, recalled bool) int {
	if !recalled {
		return MinScore
	}
	next := clampScore(score) + 1
	if next > MaxScore {
		return MaxScore
	}
	return next
}

func clampScore(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
