// internal/srs/state.go
package srs

import (
	"encoding/json"
	"fmt"
	"time"
)

// Phase はカードの学習段階です。
type Phase int

const (
	Learning Phase = iota // 分単位のステップで学習中
	Review                // 卒業後、日単位で復習中
)

var phaseNames = [...]string{Learning: "learning", Review: "review"}

func (p Phase) String() string {
	if p == Learning || p == Review {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

func (p Phase) MarshalJSON() ([]byte, error) {
	if p != Learning && p != Review {
		return nil, fmt.Errorf("srs: invalid phase: %d", int(p))
	}
	return json.Marshal(phaseNames[p])
}

func (p *Phase) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("srs: invalid phase: %s", data)
	}
	switch s {
	case "learning":
		*p = Learning
	case "review":
		*p = Review
	default:
		return fmt.Errorf("srs: invalid phase: %q", s)
	}
	return nil
}

// LearningFlag は旧ストレージ形式 (is_learning 列: 1=学習中, 0=復習) の値を返します。
func (p Phase) LearningFlag() int {
	if p == Learning {
		return 1
	}
	return 0
}

// PhaseFromLearningFlag は is_learning 列の値を Phase に戻します。0 以外は学習中とみなす。
func PhaseFromLearningFlag(flag int) Phase {
	if flag == 0 {
		return Review
	}
	return Learning
}

// CardState は (学習者, カード) ごとの復習状態です。値型として扱い、Schedule は新しい値を返す。
type CardState struct {
	EaseFactor  float64   `json:"ease_factor"`
	Interval    int       `json:"interval"` // 日。Learning 中は意味を持たない
	DueAt       time.Time `json:"due_at"`
	Step        int       `json:"step"` // Learning 中のみ有効
	Phase       Phase     `json:"phase"`
	Repetitions int       `json:"repetitions"`
}

// NewCardState は未学習カードの初期状態を返します。
func NewCardState(cfg Config) CardState {
	return CardState{
		EaseFactor: cfg.StartingEase,
		Phase:      Learning,
	}
}

// IsDue は now 時点で復習対象かを返します。
func (s CardState) IsDue(now time.Time) bool {
	return !s.DueAt.After(now)
}
