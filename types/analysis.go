package types

// Category classifies a recognized medical entity.
type Category string

const (
	CategorySymptom       Category = "symptom"
	CategoryVital         Category = "vital"
	CategoryCondition     Category = "condition"
	CategoryMedication    Category = "medication"
	CategoryProcedure     Category = "procedure"
	CategoryPsychological Category = "psychological"
	CategoryLifestyle     Category = "lifestyle"
)

// Entity represents a medical term recognized in a clinical note.
// Text is the verbatim substring from the note, original casing preserved.
type Entity struct {
	Text       string   `firestore:"text" json:"text"`
	Category   Category `firestore:"category" json:"category"`
	Confidence float64  `firestore:"confidence" json:"confidence"`
}

// Sentiment holds the tone of the clinical language. Score > 0 reads
// reassuring, < 0 reads concerning; Magnitude says how much sentiment-bearing
// vocabulary was present regardless of direction.
type Sentiment struct {
	Score     float64 `firestore:"score" json:"score"`
	Magnitude float64 `firestore:"magnitude" json:"magnitude"`
}

// AnalysisResult is everything the analyzer derives from a single note.
type AnalysisResult struct {
	Entities           []Entity  `firestore:"entities" json:"entities"`
	Sentiment          Sentiment `firestore:"sentiment" json:"sentiment"`
	KeyPhrases         []string  `firestore:"keyPhrases" json:"keyPhrases"`
	SuggestedDiagnoses []string  `firestore:"suggestedDiagnoses" json:"suggestedDiagnoses"`
	Severity           int       `firestore:"severity" json:"severity"`
}
