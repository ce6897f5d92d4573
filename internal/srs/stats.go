// internal/srs/stats.go
package srs

import "time"

// Stats は統計画面用の集計です。Counts と違い Learning と Mature は期限に関係なく数える。
// Studied = Learning + Mature、Total = New + Studied。
type Stats struct {
	Total    int `json:"total"`
	New      int `json:"new"`
	Studied  int `json:"studied"`
	Learning int `json:"learning"`
	Mature   int `json:"mature"`
	Due      int `json:"due"`
}

// Add は s と o を合算した値を返します。
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Total:    s.Total + o.Total,
		New:      s.New + o.New,
		Studied:  s.Studied + o.Studied,
		Learning: s.Learning + o.Learning,
		Mature:   s.Mature + o.Mature,
		Due:      s.Due + o.Due,
	}
}

// SummarizeStates は SM-2 デッキのスナップショットを集計します。Mature は復習フェーズのカード。
func SummarizeStates(entries []Entry, now time.Time) Stats {
	st := Stats{Total: len(entries)}
	for _, e := range entries {
		if e.State == nil {
			st.New++
			continue
		}
		st.Studied++
		if e.State.Phase == Review {
			st.Mature++
		} else {
			st.Learning++
		}
		if e.State.IsDue(now) {
			st.Due++
		}
	}
	return st
}

// SummarizeScores は旧形式デッキを集計します。スコアが上限に達したカードを Mature とし、
// 回答済みのカードはすべて Due (CountScores と同じ扱い)。
func SummarizeScores(entries []ScoredEntry) Stats {
	st := Stats{Total: len(entries)}
	for _, e := range entries {
		if !e.Scored {
			st.New++
			continue
		}
		st.Studied++
		st.Due++
		if clampScore(e.Score) >= MaxScore {
			st.Mature++
		} else {
			st.Learning++
		}
	}
	return st
}
