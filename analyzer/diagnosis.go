package analyzer

import "regexp"

// diagnosisRule suggests a diagnosis when at least minMatches of its
// indicators fire. Every current rule uses minMatches 1, but the threshold
// stays per rule so stricter rules can be added without touching the
// evaluation loop.
type diagnosisRule struct {
	label      string
	indicators []*regexp.Regexp
	minMatches int
}

// diagnosisRules is evaluated in order and the output preserves this order.
// Indicators run against the raw note text, case-insensitively.
var diagnosisRules = []diagnosisRule{
	{
		label: "Hypertension",
		indicators: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(elevated|high)\s+blood\s+pressure`),
			regexp.MustCompile(`\b1[4-9]\d\s*/\s*(9\d|1\d\d)\b`),
			regexp.MustCompile(`(?is)(headache|dizziness).*blood pressure|blood pressure.*(headache|dizziness)`),
		},
		minMatches: 1,
	},
	{
		label: "Migraine",
		indicators: []*regexp.Regexp{
			regexp.MustCompile(`(?i)migraine|severe headache`),
			regexp.MustCompile(`(?is)headache.*(nausea|vomiting)|(nausea|vomiting).*headache`),
			regexp.MustCompile(`(?i)visual aura|light sensitivity|photophobia`),
			regexp.MustCompile(`(?i)(throbbing|pulsating)\s+(pain|headache)`),
		},
		minMatches: 1,
	},
	{
		label: "Type 2 Diabetes",
		indicators: []*regexp.Regexp{
			regexp.MustCompile(`(?i)diabetes|elevated glucose|high blood sugar`),
			regexp.MustCompile(`(?i)frequent urination|polyuria`),
			regexp.MustCompile(`(?i)excessive thirst|polydipsia`),
			regexp.MustCompile(`(?is)fatigue.*weight loss|weight loss.*fatigue`),
		},
		minMatches: 1,
	},
	{
		label: "Coronary Artery Disease",
		indicators: []*regexp.Regexp{
			regexp.MustCompile(`(?i)chest pain|angina|coronary`),
			regexp.MustCompile(`(?is)shortness of breath.*exertion|exertional dyspnea`),
			regexp.MustCompile(`(?is)(crushing|pressure).*chest|chest.*pressure`),
			regexp.MustCompile(`(?is)left arm pain.*chest|chest.*left arm`),
		},
		minMatches: 1,
	},
	{
		label: "Upper Respiratory Infection",
		indicators: []*regexp.Regexp{
			regexp.MustCompile(`(?is)cough.*fever|fever.*cough`),
			regexp.MustCompile(`(?is)sore throat.*congestion|congestion.*sore throat`),
			regexp.MustCompile(`(?is)runny nose.*fatigue|fatigue.*runny nose`),
			regexp.MustCompile(`(?i)cold symptoms|common cold`),
		},
		minMatches: 1,
	},
	{
		label: "Anxiety Disorder",
		indicators: []*regexp.Regexp{
			regexp.MustCompile(`(?i)anxiety|panic|worried`),
			regexp.MustCompile(`(?is)(rapid heart rate|palpitations).*nervous|nervous.*(rapid heart rate|palpitations)`),
			regexp.MustCompile(`(?is)(difficulty sleeping|trouble sleeping).*stress|stress.*(difficulty sleeping|trouble sleeping)`),
			regexp.MustCompile(`(?i)restless|overwhelmed`),
		},
		minMatches: 1,
	},
	{
		label: "Depression",
		indicators: []*regexp.Regexp{
			regexp.MustCompile(`(?i)depression|depressed mood|\bsad\b`),
			regexp.MustCompile(`(?i)loss of interest|anhedonia`),
			regexp.MustCompile(`(?is)(sleep disturbance|insomnia).*mood|mood.*(sleep disturbance|insomnia)`),
			regexp.MustCompile(`(?is)fatigue.*hopeless|hopeless.*fatigue`),
		},
		minMatches: 1,
	},
	{
		label: "GERD",
		indicators: []*regexp.Regexp{
			regexp.MustCompile(`(?i)heartburn|acid reflux|\bgerd\b`),
			regexp.MustCompile(`(?is)(chest|epigastric)\s+burning.*after (eating|meals)`),
			regexp.MustCompile(`(?is)regurgitation.*sour taste|sour taste.*regurgitation`),
		},
		minMatches: 1,
	},
}

// SuggestDiagnoses evaluates the fixed rule table against the raw note text
// and returns the labels whose rules fired, in table order. Duplicates are
// impossible since each label appears once in the table.
func SuggestDiagnoses(text string) []string {
	diagnoses := []string{}
	for _, rule := range diagnosisRules {
		matches := 0
		for _, indicator := range rule.indicators {
			if indicator.MatchString(text) {
				matches++
			}
		}
		if matches >= rule.minMatches {
			diagnoses = append(diagnoses, rule.label)
		}
	}
	return diagnoses
}
