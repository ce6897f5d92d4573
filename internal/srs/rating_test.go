// internal/srs/rating_test.go
package srs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRating_Values(t *testing.T) {
	// 保存済みデータとの互換のため数値は固定
	assert.Equal(t, 0, int(Again))
	assert.Equal(t, 1, int(Hard))
	assert.Equal(t, 2, int(Good))
	assert.Equal(t, 3, int(Easy))
}

func TestParseRating(t *testing.T) {
	for v := 0; v <= 3; v++ {
		r, err := ParseRating(v)
		require.NoError(t, err)
		assert.Equal(t, Rating(v), r)
	}
	for _, v := range []int{-1, 4} {
		_, err := ParseRating(v)
		assert.ErrorIs(t, err, ErrInvalidRating)
	}
}

func TestRating_String(t *testing.T) {
	assert.Equal(t, "Good", Good.String())
	assert.Equal(t, "Rating(7)", Rating(7).String())
}

func TestPhase_JSONAndLearningFlag(t *testing.T) {
	data, err := json.Marshal(CardState{EaseFactor: 2.5, Phase: Review})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"phase":"review"`)

	var s CardState
	require.NoError(t, json.Unmarshal(data, &s))
	assert.Equal(t, Review, s.Phase)

	var p Phase
	assert.Error(t, json.Unmarshal([]byte(`"relearning"`), &p))

	assert.Equal(t, 1, Learning.LearningFlag())
	assert.Equal(t, 0, Review.LearningFlag())
	assert.Equal(t, Learning, PhaseFromLearningFlag(1))
	assert.Equal(t, Review, PhaseFromLearningFlag(0))
}
