// Package ratings holds the pure score math shared by the listing and
// detail views: aggregation into a display-ready (count, mean) pair and
// range validation of incoming scores.
package ratings

import (
	"errors"
	"math"
)

const (
	MinScore = 1
	MaxScore = 5
)

// ErrScoreOutOfRange is returned for scores outside 1..5. The UI surfaces
// this as a blocking alert; it is never silently clamped.
var ErrScoreOutOfRange = errors.New("rating score must be between 1 and 5")

// Summary is the derived aggregate shown next to a doctor's name. Mean is
// rounded to one decimal; a doctor with no ratings has Mean 0, which the
// clients render as "no reviews yet" rather than a zero-star average.
type Summary struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
}

// Summarize reduces the score values into a Summary. It never mutates the
// input and is order-independent.
func Summarize(scores []int) Summary {
	if len(scores) == 0 {
		return Summary{}
	}

	sum := 0
	for _, score := range scores {
		sum += score
	}

	return Summary{
		Count: len(scores),
		Mean:  Round1(float64(sum) / float64(len(scores))),
	}
}

// ValidateScore rejects scores outside MinScore..MaxScore.
func ValidateScore(score int) error {
	if score < MinScore || score > MaxScore {
		return ErrScoreOutOfRange
	}
	return nil
}

// Round1 rounds half away from zero to one decimal, matching the
// one-decimal display convention used on every screen.
func Round1(value float64) float64 {
	return math.Round(value*10) / 10
}
