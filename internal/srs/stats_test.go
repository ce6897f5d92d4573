// internal/srs/stats_test.go
package srs

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSummarizeStates(t *testing.T) {
	entries := []Entry{
		{CardID: uuid.New()},
		{CardID: uuid.New(), State: stateDueAt(Learning, t0.Add(-time.Minute))},
		{CardID: uuid.New(), State: stateDueAt(Learning, t0.Add(time.Hour))},
		{CardID: uuid.New(), State: stateDueAt(Review, t0.Add(-24*time.Hour))},
		{CardID: uuid.New(), State: stateDueAt(Review, t0.Add(5*24*time.Hour))},
	}

	got := SummarizeStates(entries, t0)

	// 期限前のカードも Learning / Mature には含まれる
	assert.Equal(t, Stats{Total: 5, New: 1, Studied: 4, Learning: 2, Mature: 2, Due: 2}, got)
	assert.Equal(t, CountStates(entries, t0).Due(), got.Due)
	assert.Equal(t, Stats{}, SummarizeStates(nil, t0))
}

func TestSummarizeScores(t *testing.T) {
	entries := []ScoredEntry{
		{CardID: uuid.New()},
		{CardID: uuid.New(), Score: 0, Scored: true},
		{CardID: uuid.New(), Score: 4, Scored: true},
		{CardID: uuid.New(), Score: 5, Scored: true},
		{CardID: uuid.New(), Score: 9, Scored: true},
	}

	got := SummarizeScores(entries)

	assert.Equal(t, Stats{Total: 5, New: 1, Studied: 4, Learning: 2, Mature: 2, Due: 4}, got)
	assert.Equal(t, CountScores(entries).Due(), got.Due)
}

func TestStats_Add(t *testing.T) {
	a := Stats{Total: 3, New: 1, Studied: 2, Learning: 1, Mature: 1, Due: 1}
	b := Stats{Total: 2, New: 0, Studied: 2, Learning: 0, Mature: 2, Due: 2}
	assert.Equal(t, Stats{Total: 5, New: 1, Studied: 4, Learning: 1, Mature: 3, Due: 3}, a.Add(b))
}
