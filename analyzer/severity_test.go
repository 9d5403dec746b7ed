package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssessSeverity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "no indicators stays at default",
			text: "Annual visit, nothing remarkable to report today.",
			want: 5,
		},
		{
			name: "critical words raise to 8",
			text: "Patient reports severe chest pain and shortness of breath on exertion.",
			want: 8,
		},
		{
			name: "low severity words pull down to 4",
			text: "Routine follow-up, blood pressure stable and controlled at 118/75 mmHg.",
			want: 4,
		},
		{
			name: "low severity words override critical ones",
			text: "Mild headache, resolved after rest. Severe uncontrolled hypertension noted incidentally.",
			want: 4,
		},
		{
			name: "crisis blood pressure raises to 9",
			text: "BP measured at 185/120 during triage.",
			want: 9,
		},
		{
			name: "elevated blood pressure raises to 7",
			text: "Reading of 165/95 noted.",
			want: 7,
		},
		{
			name: "blood pressure rule runs after the low sweep",
			text: "Stable overall but reading of 190/115 taken twice.",
			want: 9,
		},
		{
			name: "in-range reading does not raise",
			text: "Reading of 125/82 at rest.",
			want: 5,
		},
		{
			name: "severe pain combinator",
			text: "Severe abdominal pain since this morning.",
			want: 8,
		},
		{
			name: "high fever combinator",
			text: "High fever reported at home.",
			want: 6,
		},
		{
			name: "reading inside a longer digit run still parses",
			text: "Device printed 1234/567 during calibration.",
			want: 9, // first match is 234/567
		},
		{
			name: "spaced reading is not a vital sign",
			text: "Reading 190 / 115 noted.",
			want: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AssessSeverity(tt.text))
		})
	}
}

// The low-severity sweep runs strictly after the critical and high sweeps,
// so reassuring words drag the estimate back down no matter how high the
// earlier sweeps pushed it, and only the combinators or a blood-pressure
// reading can raise it again. Stored severities depend on this ordering.
func TestAssessSeverityOrderSensitivity(t *testing.T) {
	critical := "Severe bleeding after cardiac arrest."
	assert.Equal(t, 8, AssessSeverity(critical))

	// Same emergency, one reassuring word appended.
	assert.Equal(t, 4, AssessSeverity(critical+" Now stable."))

	// A crisis-range reading still wins because it is evaluated last.
	assert.Equal(t, 9, AssessSeverity(critical+" Now stable. BP 200/130."))
}

func TestAssessSeverityBounds(t *testing.T) {
	inputs := []string{
		"",
		"    ",
		strings.Repeat("severe critical emergency ", 500),
		strings.Repeat("mild stable normal ", 500),
		"0/0 999/999 severe mild",
		"非常に重篤な状態です",
		strings.Repeat("x", 100000),
		"!@#$%^&*()<>?/",
	}
	for _, in := range inputs {
		got := AssessSeverity(in)
		assert.GreaterOrEqual(t, got, 1, "input %q", in)
		assert.LessOrEqual(t, got, 10, "input %q", in)
	}
}
