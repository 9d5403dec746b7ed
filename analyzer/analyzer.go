// Package analyzer is the rule-based clinical text analyzer. It turns a
// free-text clinical note into structured signals: recognized medical
// entities, a sentiment score, key phrases, suggested diagnoses, and a 1-10
// severity estimate. Everything is derived from the input string and fixed
// rule tables; there is no model call, no I/O, and no state, so results are
// deterministic and safe to compute concurrently.
package analyzer

import (
	"strings"

	"go-clinsight/types"
)

// Analyze runs every sub-analyzer over the note and assembles the result.
// The sub-analyzers are independent; none reads another's output.
func Analyze(text string) types.AnalysisResult {
	if strings.TrimSpace(text) == "" {
		return NeutralResult()
	}

	return types.AnalysisResult{
		Entities:           ExtractEntities(text),
		Sentiment:          ScoreSentiment(text),
		KeyPhrases:         ExtractKeyPhrases(text),
		SuggestedDiagnoses: SuggestDiagnoses(text),
		Severity:           AssessSeverity(text),
	}
}

// NeutralResult is the fixed result for empty or whitespace-only notes.
func NeutralResult() types.AnalysisResult {
	return types.AnalysisResult{
		Entities:           []types.Entity{},
		Sentiment:          types.Sentiment{Score: 0, Magnitude: 0},
		KeyPhrases:         []string{},
		SuggestedDiagnoses: []string{},
		Severity:           defaultSeverity,
	}
}
