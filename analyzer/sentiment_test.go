package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreSentimentNoIndicators(t *testing.T) {
	s := ScoreSentiment("The sky outside the window is blue today.")
	assert.Zero(t, s.Score)
	assert.Zero(t, s.Magnitude)
}

func TestScoreSentimentConcerning(t *testing.T) {
	// severe(3) + worsening(3) + urgent(3) over 3 indicators: (0-9)/9 = -1
	s := ScoreSentiment("Severe worsening symptoms, urgent evaluation needed.")
	assert.InDelta(t, -1.0, s.Score, 1e-9)
	assert.InDelta(t, 0.6, s.Magnitude, 1e-9)
}

func TestScoreSentimentReassuring(t *testing.T) {
	// improving(2) + stable(2) + better(2) over 3 indicators: 6/9
	s := ScoreSentiment("Condition improving and stable, feels better overall.")
	assert.InDelta(t, 2.0/3.0, s.Score, 1e-9)
	assert.InDelta(t, 0.6, s.Magnitude, 1e-9)
}

func TestScoreSentimentBalanced(t *testing.T) {
	// mild(+2) against concerning(-2): score 0, but magnitude reflects that
	// sentiment-bearing vocabulary was present.
	s := ScoreSentiment("A mild presentation with one concerning trend.")
	assert.Zero(t, s.Score)
	assert.InDelta(t, 0.4, s.Magnitude, 1e-9)
}

func TestScoreSentimentCountsRepeats(t *testing.T) {
	// The same keyword mentioned repeatedly keeps counting; magnitude
	// saturates at 1 after five indicators.
	s := ScoreSentiment(strings.Repeat("severe ", 6))
	assert.InDelta(t, -1.0, s.Score, 1e-9)
	assert.InDelta(t, 1.0, s.Magnitude, 1e-9)
}

func TestScoreSentimentBounds(t *testing.T) {
	inputs := []string{
		"",
		strings.Repeat("critical emergency deteriorating ", 200),
		strings.Repeat("improving resolved healing ", 200),
		"完全に無関係なテキスト",
	}
	for _, in := range inputs {
		s := ScoreSentiment(in)
		assert.GreaterOrEqual(t, s.Score, -1.0, "input %q", in)
		assert.LessOrEqual(t, s.Score, 1.0, "input %q", in)
		assert.GreaterOrEqual(t, s.Magnitude, 0.0, "input %q", in)
		assert.LessOrEqual(t, s.Magnitude, 1.0, "input %q", in)
	}
}
