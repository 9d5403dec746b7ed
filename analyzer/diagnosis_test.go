package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestDiagnosesCoronary(t *testing.T) {
	got := SuggestDiagnoses("Patient reports severe chest pain and shortness of breath on exertion.")
	assert.Equal(t, []string{"Coronary Artery Disease"}, got)
}

func TestSuggestDiagnosesTableOrder(t *testing.T) {
	// Fires three rules; output must follow rule-table order, not text order.
	got := SuggestDiagnoses("Severe headache with nausea, reading of 150/95, heartburn after meals as well.")
	assert.Equal(t, []string{"Hypertension", "Migraine", "GERD"}, got)
}

func TestSuggestDiagnosesNoMatch(t *testing.T) {
	assert.Empty(t, SuggestDiagnoses("Annual wellness visit, no complaints raised."))
	assert.Empty(t, SuggestDiagnoses(""))
}

func TestSuggestDiagnosesSingleLabelPerRule(t *testing.T) {
	// Several anxiety indicators fire but the label appears once.
	got := SuggestDiagnoses("The patient is worried and restless, with palpitations when nervous.")
	count := 0
	for _, d := range got {
		if d == "Anxiety Disorder" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestSuggestDiagnosesGERDRequiresQualifiers(t *testing.T) {
	// Burning must be chest or epigastric, and a sour taste alone is not
	// enough without regurgitation.
	assert.NotContains(t, SuggestDiagnoses("Burning sensation in the feet after eating."), "GERD")
	assert.NotContains(t, SuggestDiagnoses("Notes a sour taste in the morning."), "GERD")
}

func TestSuggestDiagnosesIndicators(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"diabetes keyword", "History of diabetes, well documented.", "Type 2 Diabetes"},
		{"fatigue with weight loss", "Reports fatigue and unexplained weight loss.", "Type 2 Diabetes"},
		{"hypertensive reading", "Clinic reading of 142/91 this morning.", "Hypertension"},
		{"headache with blood pressure language", "Recurring dizziness whenever blood pressure spikes.", "Hypertension"},
		{"cough and fever", "Productive cough with a low fever since Tuesday.", "Upper Respiratory Infection"},
		{"depressed mood", "Depressed mood most days, loss of interest in hobbies.", "Depression"},
		{"reflux", "Complains of acid reflux at night.", "GERD"},
		{"chest burning after eating", "Chest burning after eating large meals.", "GERD"},
		{"regurgitation with sour taste", "Regurgitation with a sour taste most mornings.", "GERD"},
		{"throbbing headache", "Describes a throbbing headache behind one eye.", "Migraine"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, SuggestDiagnoses(tt.text), tt.want)
		})
	}
}
