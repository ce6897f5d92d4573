// internal/srs/scheduler.go
package srs

import (
	"fmt"
	"time"
)

const (
	hardIntervalFactor = 1.2
	lapseEasePenalty   = 0.2
	hardEasePenalty    = 0.15
	easyEaseBonus      = 0.15

	day = 24 * time.Hour
)

// Schedule は現在の状態 (未学習なら nil) と評価から次の状態を計算します。
// 引数は変更せず、時刻は now のみを使う。同じ入力には常に同じ結果を返す。
func Schedule(state *CardState, rating Rating, cfg Config, now time.Time) (CardState, error) {
	if !rating.IsValid() {
		return CardState{}, fmt.Errorf("%w: %d", ErrInvalidRating, int(rating))
	}
	if len(cfg.LearningSteps) == 0 {
		return CardState{}, fmt.Errorf("%w: learning_steps must not be empty", ErrConfig)
	}

	next := NewCardState(cfg)
	if state != nil {
		next = *state
	}
	next.Step = clampStep(next.Step, len(cfg.LearningSteps))

	if next.Phase == Review {
		scheduleReview(&next, rating, cfg, now)
	} else {
		next.Phase = Learning
		scheduleLearning(&next, rating, cfg, now)
	}
	return next, nil
}

func scheduleLearning(c *CardState, rating Rating, cfg Config, now time.Time) {
	switch rating {
	case Again:
		c.Step = 0
		c.DueAt = afterMinutes(now, cfg.LearningSteps[0])
	case Hard:
		c.DueAt = afterMinutes(now, cfg.LearningSteps[c.Step])
	case Good:
		if c.Step < len(cfg.LearningSteps)-1 {
			c.Step++
			c.DueAt = afterMinutes(now, cfg.LearningSteps[c.Step])
			return
		}
		graduate(c, cfg.GraduatingInterval, cfg, now)
	case Easy:
		graduate(c, cfg.EasyInterval, cfg, now)
	}
}

func graduate(c *CardState, interval int, cfg Config, now time.Time) {
	c.Phase = Review
	c.Interval = clampInterval(float64(interval), cfg.MaxInterval)
	c.DueAt = afterDays(now, c.Interval)
	c.Repetitions = 1
}

func scheduleReview(c *CardState, rating Rating, cfg Config, now time.Time) {
	switch rating {
	case Again:
		// lapse: 学習フェーズへ戻す
		c.Phase = Learning
		c.Step = 0
		c.DueAt = afterMinutes(now, cfg.LearningSteps[0])
		c.Repetitions = 0
		c.EaseFactor = decreaseEase(c.EaseFactor, lapseEasePenalty, cfg.MinEase)
		return
	case Hard:
		c.Interval = clampInterval(float64(c.Interval)*hardIntervalFactor, cfg.MaxInterval)
		c.EaseFactor = decreaseEase(c.EaseFactor, hardEasePenalty, cfg.MinEase)
	case Good:
		switch c.Repetitions {
		case 0:
			c.Interval = clampInterval(1, cfg.MaxInterval)
		case 1:
			c.Interval = clampInterval(6, cfg.MaxInterval)
		default:
			c.Interval = clampInterval(float64(c.Interval)*c.EaseFactor*cfg.IntervalModifier, cfg.MaxInterval)
		}
	case Easy:
		if c.Repetitions == 0 {
			c.Interval = clampInterval(float64(cfg.EasyInterval), cfg.MaxInterval)
		} else {
			c.Interval = clampInterval(float64(c.Interval)*c.EaseFactor*cfg.EasyBonus*cfg.IntervalModifier, cfg.MaxInterval)
		}
		// 上限なし
		c.EaseFactor += easyEaseBonus
	}
	c.DueAt = afterDays(now, c.Interval)
	c.Repetitions++
}

// clampInterval は積を 0 方向へ切り捨て (四捨五入しない)、[0, max] に収めます。
func clampInterval(v float64, max int) int {
	if v >= float64(max) {
		return max
	}
	if v <= 0 {
		return 0
	}
	return int(v)
}

func decreaseEase(ease, penalty, min float64) float64 {
	if e := ease - penalty; e > min {
		return e
	}
	return min
}

// clampStep は保存済みのステップが現在の設定の範囲外でも添字として使えるようにします。
func clampStep(step, n int) int {
	if step < 0 {
		return 0
	}
	if step >= n {
		return n - 1
	}
	return step
}

func afterMinutes(now time.Time, minutes int) time.Time {
	return now.Add(time.Duration(minutes) * time.Minute)
}

func afterDays(now time.Time, days int) time.Time {
	return now.Add(time.Duration(days) * day)
}
