package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKeyPhrasesEmpty(t *testing.T) {
	assert.Empty(t, ExtractKeyPhrases(""))
	assert.Empty(t, ExtractKeyPhrases(" \n "))
}

func TestExtractKeyPhrasesDropsShortFragments(t *testing.T) {
	phrases := ExtractKeyPhrases("Too short. The patient presents with persistent chest pain and fever today.")

	require.Len(t, phrases, 1)
	assert.Equal(t, "The patient presents with persistent chest pain and fever today", phrases[0])
	for _, p := range phrases {
		assert.Greater(t, len(strings.TrimSpace(p)), 10)
	}
}

func TestExtractKeyPhrasesCountsCharactersNotBytes(t *testing.T) {
	// The first fragment is 9 characters (27 bytes); a byte count would let
	// it through the short-fragment filter.
	phrases := ExtractKeyPhrases("頭痛と吐き気がある. 患者は頭痛と吐き気を強く訴えているところだ.")

	require.Len(t, phrases, 1)
	assert.Equal(t, "患者は頭痛と吐き気を強く訴えているところだ", phrases[0])
}

func TestExtractKeyPhrasesRanking(t *testing.T) {
	text := "Patient reports pain. " +
		"It was quite sunny outside on that particular long afternoon. " +
		"Blood pressure and heart rate were checked today. " +
		"The weather is nice."

	phrases := ExtractKeyPhrases(text)

	require.Len(t, phrases, 3)
	assert.Equal(t, "Patient reports pain", phrases[0])
	assert.Equal(t, "Blood pressure and heart rate were checked today", phrases[1])
	assert.Equal(t, "The weather is nice", phrases[2])
}

func TestExtractKeyPhrasesCapsAtThree(t *testing.T) {
	text := "Patient has a fever. Patient has a cough today. Patient reports chest pain. " +
		"Patient gives a long history. Examination findings were recorded."
	phrases := ExtractKeyPhrases(text)
	assert.LessOrEqual(t, len(phrases), 3)
}

func TestExtractKeyPhrasesStripsTerminators(t *testing.T) {
	phrases := ExtractKeyPhrases("Does the patient report any pain today?! Further assessment pending...")
	require.NotEmpty(t, phrases)
	for _, p := range phrases {
		assert.NotContains(t, p, "?")
		assert.NotContains(t, p, "!")
		assert.False(t, strings.HasSuffix(p, "."))
	}
}

func TestExtractKeyPhrasesLongSentencePenalty(t *testing.T) {
	long := "The patient " + strings.Repeat("was observed over an extended period ", 6) + "with no acute findings"
	require.Greater(t, len(long), 200)

	phrases := ExtractKeyPhrases(long + ". Patient reports pain.")
	require.Len(t, phrases, 2)
	assert.Equal(t, "Patient reports pain", phrases[0])
}
