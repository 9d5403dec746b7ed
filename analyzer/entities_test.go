package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-clinsight/types"
)

func findEntity(entities []types.Entity, text string, category types.Category) (types.Entity, bool) {
	for _, e := range entities {
		if strings.EqualFold(e.Text, text) && e.Category == category {
			return e, true
		}
	}
	return types.Entity{}, false
}

func TestExtractEntitiesEmpty(t *testing.T) {
	assert.Empty(t, ExtractEntities(""))
	assert.Empty(t, ExtractEntities("   \n\t  "))
}

func TestExtractEntitiesSymptoms(t *testing.T) {
	entities := ExtractEntities("Patient reports severe chest pain and shortness of breath on exertion.")

	cp, ok := findEntity(entities, "chest pain", types.CategorySymptom)
	require.True(t, ok, "expected a chest pain symptom entity")
	// base 0.7 plus the context bonus for "patient"
	assert.InDelta(t, 0.8, cp.Confidence, 1e-9)

	_, ok = findEntity(entities, "shortness of breath", types.CategorySymptom)
	assert.True(t, ok, "expected a shortness of breath symptom entity")
}

func TestExtractEntitiesKeepsOriginalCasing(t *testing.T) {
	entities := ExtractEntities("Headache since Monday. No earlier headache episodes.")

	require.Len(t, entities, 1, "same lowercased text and category must collapse to one entity")
	// First-seen occurrence wins the casing.
	assert.Equal(t, "Headache", entities[0].Text)
	assert.Equal(t, types.CategorySymptom, entities[0].Category)
	// No context word in this note, so base confidence only.
	assert.InDelta(t, 0.7, entities[0].Confidence, 1e-9)
}

func TestExtractEntitiesCategoryBonus(t *testing.T) {
	entities := ExtractEntities("Patient on Lisinopril for hypertension.")

	med, ok := findEntity(entities, "Lisinopril", types.CategoryMedication)
	require.True(t, ok)
	// 0.7 base + 0.2 medication + 0.1 context, clamped at 1.0
	assert.InDelta(t, 1.0, med.Confidence, 1e-9)

	cond, ok := findEntity(entities, "hypertension", types.CategoryCondition)
	require.True(t, ok)
	assert.InDelta(t, 1.0, cond.Confidence, 1e-9)
}

func TestExtractEntitiesSortedByConfidence(t *testing.T) {
	// "diabetes" gets the condition bonus, "fever" does not; no context word.
	entities := ExtractEntities("Known diabetes. Fever for two days.")

	require.Len(t, entities, 2)
	assert.Equal(t, types.CategoryCondition, entities[0].Category)
	assert.InDelta(t, 0.9, entities[0].Confidence, 1e-9)
	assert.Equal(t, types.CategorySymptom, entities[1].Category)
	assert.InDelta(t, 0.7, entities[1].Confidence, 1e-9)
}

func TestExtractEntitiesNoDuplicateKeys(t *testing.T) {
	entities := ExtractEntities(strings.Repeat("Patient with chest pain, CHEST PAIN, Chest Pain. ", 3))

	type key struct {
		text     string
		category types.Category
	}
	seen := map[key]bool{}
	for _, e := range entities {
		k := key{strings.ToLower(e.Text), e.Category}
		assert.False(t, seen[k], "duplicate entity key %v", k)
		seen[k] = true
	}
}

func TestEntityPatternTableCompiled(t *testing.T) {
	// Every dictionary phrase must have its regex compiled up front, and each
	// regex must match its own phrase case-insensitively.
	total := 0
	for _, group := range entityGroups {
		total += len(group.patterns)
	}
	require.Len(t, compiledEntityPatterns, total)

	for _, pattern := range compiledEntityPatterns {
		assert.NotNil(t, pattern.re)
		assert.True(t, pattern.re.MatchString(strings.ToUpper(pattern.literal)),
			"pattern %q does not match its own phrase", pattern.literal)
	}
}

func TestExtractEntitiesConfidenceBounds(t *testing.T) {
	inputs := []string{
		"patient symptoms diagnosis treatment medical clinical lisinopril diabetes",
		strings.Repeat("headache fever cough nausea ", 100),
		"nothing medical here at all",
	}
	for _, in := range inputs {
		for _, e := range ExtractEntities(in) {
			assert.GreaterOrEqual(t, e.Confidence, 0.0)
			assert.LessOrEqual(t, e.Confidence, 1.0)
		}
	}
}
