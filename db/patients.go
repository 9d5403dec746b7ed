package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"go-clinsight/types"
)

const patientsCollection = "patients"

// SavePatient creates or overwrites the patient document keyed by the hashed MRN.
func SavePatient(client *firestore.Client, patient types.PatientRecord) error {
	ctx := context.Background()
	hashedPatientID := HashString(patient.MRN)

	_, err := client.Collection(patientsCollection).Doc(hashedPatientID).Set(ctx, patient)
	if err != nil {
		return fmt.Errorf("error saving patient %s: %w", patient.MRN, err)
	}

	log.Printf("Saved patient document with hashed ID: %s", hashedPatientID)
	return nil
}

// GetPatient retrieves a single patient by MRN.
func GetPatient(client *firestore.Client, mrn string) (types.PatientRecord, error) {
	ctx := context.Background()
	var patient types.PatientRecord

	doc, err := client.Collection(patientsCollection).Doc(HashString(mrn)).Get(ctx)
	if err != nil {
		return patient, err
	}

	if err := doc.DataTo(&patient); err != nil {
		return patient, fmt.Errorf("error converting document to PatientRecord: %w", err)
	}
	return patient, nil
}

// GetAllPatients retrieves every document from the patients collection.
func GetAllPatients(client *firestore.Client) ([]types.PatientRecord, error) {
	ctx := context.Background()
	var patients []types.PatientRecord

	iter := client.Collection(patientsCollection).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating patients collection: %w", err)
		}

		var patient types.PatientRecord
		if err := doc.DataTo(&patient); err != nil {
			log.Printf("Warning: Error converting document %s to PatientRecord: %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		patients = append(patients, patient)
	}

	return patients, nil
}

// UpdatePatientContact updates the contact fields of an existing patient.
func UpdatePatientContact(client *firestore.Client, mrn, phone, email, updatedAt string) error {
	ctx := context.Background()
	docRef := client.Collection(patientsCollection).Doc(HashString(mrn))

	updates := []firestore.Update{
		{Path: "phone", Value: phone},
		{Path: "email", Value: email},
		{Path: "updatedAt", Value: updatedAt},
	}

	if _, err := docRef.Update(ctx, updates); err != nil {
		return fmt.Errorf("error updating patient %s: %w", mrn, err)
	}
	return nil
}

// DeletePatient removes a patient document by MRN.
func DeletePatient(client *firestore.Client, mrn string) (*firestore.WriteResult, error) {
	ctx := context.Background()
	hashedPatientID := HashString(mrn)

	writeResult, err := client.Collection(patientsCollection).Doc(hashedPatientID).Delete(ctx)
	if err != nil {
		return nil, fmt.Errorf("error deleting patient %s: %w", mrn, err)
	}

	log.Printf("Patient with hashed ID '%s' deleted successfully.", hashedPatientID)
	return writeResult, nil
}
