// internal/srs/rating.go
package srs

import "fmt"

// Rating は学習者の自己評価 (想起の質) を表します。
// 数値はそのまま保存・通信に使われるため変更しないこと。
type Rating int

const (
	Again Rating = iota // 0: 思い出せなかった
	Hard                // 1: 苦労して思い出した
	Good                // 2: 思い出せた
	Easy                // 3: 簡単に思い出せた
)

var ratingNames = [...]string{Again: "Again", Hard: "Hard", Good: "Good", Easy: "Easy"}

// IsValid は r が Again〜Easy の範囲内かを返します。
func (r Rating) IsValid() bool {
	return r >= Again && r <= Easy
}

func (r Rating) String() string {
	if r.IsValid() {
		return ratingNames[r]
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// ParseRating は整数値を Rating に変換します。範囲外なら ErrInvalidRating を返します。
func ParseRating(v int) (Rating, error) {
	r := Rating(v)
	if !r.IsValid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRating, v)
	}
	return r, nil
}
