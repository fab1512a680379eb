package ratings

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	t.Run("Empty Input", func(t *testing.T) {
		summary := Summarize(nil)

		assert.Equal(t, 0, summary.Count)
		assert.Equal(t, 0.0, summary.Mean)
	})

	t.Run("Two Scores", func(t *testing.T) {
		summary := Summarize([]int{4, 5})

		assert.Equal(t, 2, summary.Count)
		assert.Equal(t, 4.5, summary.Mean)
	})

	t.Run("Mean Rounds To One Decimal", func(t *testing.T) {
		summary := Summarize([]int{5, 4, 4})

		assert.Equal(t, 3, summary.Count)
		assert.Equal(t, 4.3, summary.Mean)
	})

	t.Run("Half Rounds Away From Zero", func(t *testing.T) {
		// 1+2+2+4 over 4 is 2.25, which must round to 2.3 rather than
		// banker's 2.2.
		summary := Summarize([]int{1, 2, 2, 4})

		assert.Equal(t, 2.3, summary.Mean)
	})

	t.Run("Order Independent", func(t *testing.T) {
		scores := []int{5, 1, 3, 4, 2, 5, 5, 1}
		expected := Summarize(scores)

		shuffled := make([]int, len(scores))
		copy(shuffled, scores)
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 10; i++ {
			rng.Shuffle(len(shuffled), func(a, b int) {
				shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
			})
			assert.Equal(t, expected, Summarize(shuffled))
		}
	})

	t.Run("Input Not Mutated", func(t *testing.T) {
		scores := []int{3, 1, 5}

		Summarize(scores)
		Summarize(scores)

		assert.Equal(t, []int{3, 1, 5}, scores)
	})
}

func TestValidateScore(t *testing.T) {
	t.Run("Accepts Full Range", func(t *testing.T) {
		for score := MinScore; score <= MaxScore; score++ {
			assert.NoError(t, ValidateScore(score))
		}
	})

	t.Run("Rejects Out Of Range", func(t *testing.T) {
		for _, score := range []int{0, 6, -1, 100} {
			assert.ErrorIs(t, ValidateScore(score), ErrScoreOutOfRange)
		}
	})
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 4.5, Round1(4.45))
	assert.Equal(t, 4.4, Round1(4.44))
	assert.Equal(t, 0.0, Round1(0))
	assert.Equal(t, 5.0, Round1(4.999))
}
