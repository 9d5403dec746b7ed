package analyzer

import (
	"strings"

	"go-clinsight/types"
)

const (
	severeWeight   = 3
	moderateWeight = 2
	positiveWeight = 2

	// magnitude saturates once this many indicators appear
	magnitudeSaturation = 5
)

// Keyword tiers for sentiment scoring. Occurrences are counted as
// substrings, so a keyword mentioned twice counts twice.
var (
	severeIndicators = []string{
		"severe", "critical", "urgent", "emergency", "life-threatening",
		"acute", "deteriorating", "worsening", "progressive", "rapid onset",
		"sudden", "intractable", "refractory", "uncontrolled", "persistent",
		"chronic",
	}
	moderateIndicators = []string{
		"concerning", "notable", "significant", "moderate", "elevated",
		"abnormal", "irregular", "intermittent", "recurrent", "episodic",
	}
	positiveIndicators = []string{
		"improving", "stable", "normal", "good", "better", "controlled",
		"managed", "responsive", "resolved", "healing", "recovery",
		"decreased", "reduced", "minimal", "mild", "slight", "tolerable",
	}
)

// ScoreSentiment weighs concerning language against reassuring language.
// Score is clamped to [-1, 1]; magnitude is min(1, indicators/5). A note
// with no tier keyword at all scores exactly 0.
func ScoreSentiment(text string) types.Sentiment {
	lower := strings.ToLower(text)

	severityScore := 0
	positivityScore := 0
	totalIndicators := 0

	for _, kw := range severeIndicators {
		n := strings.Count(lower, kw)
		severityScore += n * severeWeight
		totalIndicators += n
	}
	for _, kw := range moderateIndicators {
		n := strings.Count(lower, kw)
		severityScore += n * moderateWeight
		totalIndicators += n
	}
	for _, kw := range positiveIndicators {
		n := strings.Count(lower, kw)
		positivityScore += n * positiveWeight
		totalIndicators += n
	}

	if totalIndicators == 0 {
		return types.Sentiment{Score: 0, Magnitude: 0}
	}

	score := float64(positivityScore-severityScore) / float64(totalIndicators*3)
	if score > 1 {
		score = 1
	}
	if score < -1 {
		score = -1
	}

	magnitude := float64(totalIndicators) / magnitudeSaturation
	if magnitude > 1 {
		magnitude = 1
	}

	return types.Sentiment{Score: score, Magnitude: magnitude}
}
