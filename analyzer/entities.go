package analyzer

import (
	"regexp"
	"sort"
	"strings"

	"go-clinsight/types"
)

const (
	baseConfidence = 0.7
	categoryBonus  = 0.2 // conditions and medications are the strongest signals
	contextBonus   = 0.1
	maxConfidence  = 1.0
)

// entityGroup is one medical concept: a category plus the synonym phrases
// that name it in clinical notes. Patterns are lowercase; matching is
// case-insensitive.
type entityGroup struct {
	category types.Category
	patterns []string
}

var entityGroups = []entityGroup{
	{types.CategorySymptom, []string{"headache", "head pain", "cephalgia"}},
	{types.CategorySymptom, []string{"chest pain", "chest discomfort"}},
	{types.CategorySymptom, []string{"shortness of breath", "dyspnea"}},
	{types.CategorySymptom, []string{"nausea", "vomiting"}},
	{types.CategorySymptom, []string{"dizziness", "vertigo", "lightheaded"}},
	{types.CategorySymptom, []string{"fatigue", "exhaustion", "tiredness"}},
	{types.CategorySymptom, []string{"fever", "pyrexia"}},
	{types.CategorySymptom, []string{"cough", "coughing"}},
	{types.CategorySymptom, []string{"sore throat"}},
	{types.CategorySymptom, []string{"palpitations"}},
	{types.CategorySymptom, []string{"heartburn"}},
	{types.CategoryVital, []string{"blood pressure"}},
	{types.CategoryVital, []string{"heart rate", "pulse"}},
	{types.CategoryVital, []string{"temperature"}},
	{types.CategoryVital, []string{"respiratory rate"}},
	{types.CategoryVital, []string{"oxygen saturation", "spo2"}},
	{types.CategoryCondition, []string{"hypertension"}},
	{types.CategoryCondition, []string{"diabetes", "diabetes mellitus"}},
	{types.CategoryCondition, []string{"asthma"}},
	{types.CategoryCondition, []string{"migraine"}},
	{types.CategoryCondition, []string{"pneumonia"}},
	{types.CategoryCondition, []string{"gerd", "acid reflux"}},
	{types.CategoryCondition, []string{"coronary artery disease", "heart disease"}},
	{types.CategoryMedication, []string{"lisinopril"}},
	{types.CategoryMedication, []string{"metformin"}},
	{types.CategoryMedication, []string{"atorvastatin"}},
	{types.CategoryMedication, []string{"aspirin"}},
	{types.CategoryMedication, []string{"ibuprofen"}},
	{types.CategoryMedication, []string{"insulin"}},
	{types.CategoryMedication, []string{"albuterol"}},
	{types.CategoryMedication, []string{"omeprazole"}},
	{types.CategoryProcedure, []string{"ecg", "ekg", "electrocardiogram"}},
	{types.CategoryProcedure, []string{"x-ray", "radiograph"}},
	{types.CategoryProcedure, []string{"mri"}},
	{types.CategoryProcedure, []string{"ct scan"}},
	{types.CategoryProcedure, []string{"blood test", "blood work"}},
	{types.CategoryProcedure, []string{"ultrasound"}},
	{types.CategoryPsychological, []string{"anxiety", "anxious"}},
	{types.CategoryPsychological, []string{"depression", "depressed"}},
	{types.CategoryPsychological, []string{"stress", "stressed"}},
	{types.CategoryPsychological, []string{"insomnia", "sleep disturbance"}},
	{types.CategoryPsychological, []string{"panic attack"}},
	{types.CategoryLifestyle, []string{"smoking", "smoker", "tobacco"}},
	{types.CategoryLifestyle, []string{"alcohol"}},
	{types.CategoryLifestyle, []string{"exercise", "physical activity"}},
	{types.CategoryLifestyle, []string{"diet", "nutrition"}},
	{types.CategoryLifestyle, []string{"obesity", "overweight"}},
}

// compiledPattern pairs one dictionary phrase with its case-insensitive
// regex, compiled once at startup. Table order is group order then pattern
// order, which fixes first-seen order for ties.
type compiledPattern struct {
	literal  string // lowercase, for the containment pre-check
	re       *regexp.Regexp
	category types.Category
}

var compiledEntityPatterns = compileEntityPatterns()

func compileEntityPatterns() []compiledPattern {
	var compiled []compiledPattern
	for _, group := range entityGroups {
		for _, pattern := range group.patterns {
			compiled = append(compiled, compiledPattern{
				literal:  pattern,
				re:       regexp.MustCompile(`(?i)` + regexp.QuoteMeta(pattern)),
				category: group.category,
			})
		}
	}
	return compiled
}

// contextWords bump confidence when the note reads like clinical narrative.
// Checked once per note, not per occurrence.
var contextWords = []string{"patient", "symptoms", "diagnosis", "treatment", "medical", "clinical"}

// ExtractEntities scans the note against the fixed dictionary and returns
// deduplicated, confidence-scored entities sorted by confidence (ties keep
// first-seen order). Never fails; empty input yields an empty slice.
func ExtractEntities(text string) []types.Entity {
	entities := []types.Entity{}
	if strings.TrimSpace(text) == "" {
		return entities
	}

	lower := strings.ToLower(text)

	hasContext := false
	for _, w := range contextWords {
		if strings.Contains(lower, w) {
			hasContext = true
			break
		}
	}

	type entityKey struct {
		text     string
		category types.Category
	}
	seen := make(map[entityKey]int) // key -> index into entities

	for _, pattern := range compiledEntityPatterns {
		// Cheap containment check on the lowered note first; only then
		// re-scan the original text so each occurrence keeps its casing.
		if !strings.Contains(lower, pattern.literal) {
			continue
		}

		for _, occurrence := range pattern.re.FindAllString(text, -1) {
			confidence := baseConfidence
			if pattern.category == types.CategoryCondition || pattern.category == types.CategoryMedication {
				confidence += categoryBonus
			}
			if hasContext {
				confidence += contextBonus
			}
			if confidence > maxConfidence {
				confidence = maxConfidence
			}

			key := entityKey{strings.ToLower(occurrence), pattern.category}
			if i, ok := seen[key]; ok {
				// Same term, same category: keep the best confidence.
				if confidence > entities[i].Confidence {
					entities[i].Confidence = confidence
				}
				continue
			}

			seen[key] = len(entities)
			entities = append(entities, types.Entity{
				Text:       occurrence,
				Category:   pattern.category,
				Confidence: confidence,
			})
		}
	}

	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].Confidence > entities[j].Confidence
	})

	return entities
}
