package analyzer

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	minFragmentLength  = 10 // trimmed fragments at or below this are noise
	shortSentenceBonus = 100
	veryShortBonus     = 50
	longSentenceLimit  = 200
	maxKeyPhrases      = 3
)

var sentenceTerminators = regexp.MustCompile(`[.!?]+`)

// phraseKeywords mark a sentence as medically relevant; each occurrence is
// worth one point.
var phraseKeywords = []string{
	"patient", "symptoms", "diagnosis", "treatment", "medication",
	"condition", "blood pressure", "heart rate", "pain", "fever",
	"breathing", "chest", "examination", "assessment", "findings",
	"history", "presents", "reports",
}

// ExtractKeyPhrases splits the note into sentences, scores each by medical
// relevance and length, and returns up to three, most relevant first. The
// returned phrases are the trimmed sentences without their terminators.
func ExtractKeyPhrases(text string) []string {
	phrases := []string{}
	if strings.TrimSpace(text) == "" {
		return phrases
	}

	type scoredSentence struct {
		text  string
		score int
	}

	var candidates []scoredSentence
	for _, fragment := range sentenceTerminators.Split(text, -1) {
		sentence := strings.TrimSpace(fragment)
		// Lengths are counted in characters, not bytes.
		length := utf8.RuneCountInString(sentence)
		if length <= minFragmentLength {
			continue
		}

		lower := strings.ToLower(sentence)
		score := 0
		for _, kw := range phraseKeywords {
			score += strings.Count(lower, kw)
		}

		// Short sentences are easier to surface on the dashboard; the two
		// bonuses stack for very short ones.
		if length < shortSentenceBonus {
			score++
		}
		if length < veryShortBonus {
			score++
		}
		if length > longSentenceLimit {
			score -= 2
		}

		candidates = append(candidates, scoredSentence{text: sentence, score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	for i, c := range candidates {
		if i == maxKeyPhrases {
			break
		}
		phrases = append(phrases, c.text)
	}
	return phrases
}
