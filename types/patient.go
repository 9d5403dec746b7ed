package types

// PatientRecord is the demographic document stored in the patients collection.
// The Firestore document ID is the SHA-256 hash of the MRN.
type PatientRecord struct {
	MRN              string `firestore:"mrn" json:"mrn"`
	FirstName        string `firestore:"firstName" json:"firstName"`
	LastName         string `firestore:"lastName" json:"lastName"`
	DateOfBirth      string `firestore:"dateOfBirth" json:"dateOfBirth"`
	Sex              string `firestore:"sex" json:"sex"`
	Phone            string `firestore:"phone,omitempty" json:"phone,omitempty"`
	Email            string `firestore:"email,omitempty" json:"email,omitempty"`
	PrimaryPhysician string `firestore:"primaryPhysician,omitempty" json:"primaryPhysician,omitempty"`
	CreatedAt        string `firestore:"createdAt" json:"createdAt"`
	UpdatedAt        string `firestore:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
