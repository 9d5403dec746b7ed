package types

// RecordStatus tracks a medical record through the clearance workflow.
type RecordStatus string

const (
	PendingReview RecordStatus = "pending_review"
	Cleared       RecordStatus = "cleared"
	Flagged       RecordStatus = "flagged"
	Escalated     RecordStatus = "escalated"
)

// MedicalRecord is a clinical note plus the analysis derived from it.
type MedicalRecord struct {
	// Firestore Document ID, hash of (mrn, visit date, note text)
	ID         string `firestore:"-" json:"id"`
	PatientMRN string `firestore:"patientMrn" json:"patientMrn"`
	Author     string `firestore:"author" json:"author"` // recording clinician
	VisitDate  string `firestore:"visitDate" json:"visitDate"`
	NoteText   string `firestore:"noteText" json:"noteText"`

	Status     RecordStatus `firestore:"status" json:"status"`
	ReviewNote string       `firestore:"reviewNote,omitempty" json:"reviewNote,omitempty"`
	ReviewedBy string       `firestore:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`

	Analysis AnalysisResult `firestore:"analysis" json:"analysis"`

	CreatedAt string `firestore:"createdAt" json:"createdAt"`
	UpdatedAt string `firestore:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// RecordIntake is the request payload for creating a record. The analysis is
// always computed server side, never accepted from the caller.
type RecordIntake struct {
	PatientMRN string `json:"patientMrn"`
	Author     string `json:"author"`
	VisitDate  string `json:"visitDate"`
	NoteText   string `json:"noteText"`
}

// ProcessRecordResult reports what happened to one intake note.
type ProcessRecordResult struct {
	SavedRecordID      string   `json:"savedRecordId"`
	PatientMRN         string   `json:"patientMrn"`
	Severity           int      `json:"severity"`
	SuggestedDiagnoses []string `json:"suggestedDiagnoses"`
	SevereCaseID       string   `json:"severeCaseId,omitempty"`
	AlreadyExist       bool     `json:"alreadyExist"`
	ErrorSaving        bool     `json:"errorSaving"`
}

// SevereCase is an entry in the severe-case review queue. One is opened for
// every record whose assessed severity reaches the severe threshold.
type SevereCase struct {
	ID         string   `firestore:"-" json:"id"`
	RecordID   string   `firestore:"recordId" json:"recordId"`
	PatientMRN string   `firestore:"patientMrn" json:"patientMrn"`
	Severity   int      `firestore:"severity" json:"severity"`
	Diagnoses  []string `firestore:"diagnoses" json:"diagnoses"`
	NoteText   string   `firestore:"noteText" json:"noteText"`
	Summary    string   `firestore:"summary,omitempty" json:"summary,omitempty"` // To be filled later by LLM
	Open       bool     `firestore:"open" json:"open"`
	ReportedAt string   `firestore:"reportedAt" json:"reportedAt"`
	LastUpdate string   `firestore:"lastUpdate,omitempty" json:"lastUpdate,omitempty"`
}

// SeverityBucket is one bar of the severity distribution chart.
type SeverityBucket struct {
	Severity int `json:"severity"`
	Count    int `json:"count"`
}

// CategoryCount is one slice of the entity category chart.
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}
