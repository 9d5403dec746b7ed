package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go-clinsight/types"
)

const recordsCollection = "records"

// SaveCompleteRecord writes a medical record together with its analysis in a
// single transaction. The patient document is looked up first so records for
// unknown MRNs are logged; they are still saved, since intake notes can
// arrive before the patient chart does.
func SaveCompleteRecord(client *firestore.Client, record types.MedicalRecord) error {
	ctx := context.Background()

	log.Printf("Running record transaction for MRN %s, record ID %s", record.PatientMRN, record.ID)

	err := client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		patientRef := client.Collection(patientsCollection).Doc(HashString(record.PatientMRN))
		if _, err := tx.Get(patientRef); err != nil {
			if status.Code(err) == codes.NotFound {
				log.Printf("Warning: no patient document for MRN %s, saving record anyway", record.PatientMRN)
			} else {
				return fmt.Errorf("error getting patient doc for %s: %w", record.PatientMRN, err)
			}
		}

		recordRef := client.Collection(recordsCollection).Doc(record.ID)
		if err := tx.Set(recordRef, record); err != nil {
			return fmt.Errorf("failed to set record document: %w", err)
		}

		return nil
	})

	if err != nil {
		log.Printf("Record transaction failed: %v", err)
		return err
	}

	return nil
}

// RecordExists reports whether a record document with this ID is already stored.
func RecordExists(client *firestore.Client, recordID string) (bool, error) {
	ctx := context.Background()

	_, err := client.Collection(recordsCollection).Doc(recordID).Get(ctx)
	if err == nil {
		return true, nil
	}
	if status.Code(err) == codes.NotFound {
		return false, nil
	}
	return false, err
}

// GetRecordByID retrieves a single medical record by its document ID.
func GetRecordByID(client *firestore.Client, recordID string) (types.MedicalRecord, error) {
	ctx := context.Background()
	var record types.MedicalRecord

	docSnap, err := client.Collection(recordsCollection).Doc(recordID).Get(ctx)
	if err != nil {
		return record, fmt.Errorf("error getting record %s: %w", recordID, err)
	}

	if err := docSnap.DataTo(&record); err != nil {
		return record, fmt.Errorf("error converting document %s to MedicalRecord: %w", recordID, err)
	}
	record.ID = docSnap.Ref.ID

	return record, nil
}

// GetAllRecords retrieves all documents from the records collection.
func GetAllRecords(client *firestore.Client) ([]types.MedicalRecord, error) {
	ctx := context.Background()
	var allRecords []types.MedicalRecord

	iter := client.Collection(recordsCollection).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating records collection: %w", err)
		}

		var record types.MedicalRecord
		if err := doc.DataTo(&record); err != nil {
			log.Printf("Warning: Error converting document %s to MedicalRecord: %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		record.ID = doc.Ref.ID
		allRecords = append(allRecords, record)
	}

	return allRecords, nil
}

// GetRecordsByPatient retrieves every record filed under one MRN.
func GetRecordsByPatient(client *firestore.Client, mrn string) ([]types.MedicalRecord, error) {
	ctx := context.Background()
	var records []types.MedicalRecord

	docs, err := client.Collection(recordsCollection).
		Where("patientMrn", "==", mrn).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("error querying records for MRN %s: %w", mrn, err)
	}

	for _, doc := range docs {
		var record types.MedicalRecord
		if err := doc.DataTo(&record); err != nil {
			log.Printf("Warning: Error converting document %s to MedicalRecord: %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		record.ID = doc.Ref.ID
		records = append(records, record)
	}

	return records, nil
}

// UpdateRecordStatus moves a record through the clearance workflow.
func UpdateRecordStatus(client *firestore.Client, recordID string, newStatus types.RecordStatus, reviewedBy, reviewNote, updatedAt string) error {
	ctx := context.Background()
	docRef := client.Collection(recordsCollection).Doc(recordID)

	updates := []firestore.Update{
		{Path: "status", Value: newStatus},
		{Path: "reviewedBy", Value: reviewedBy},
		{Path: "reviewNote", Value: reviewNote},
		{Path: "updatedAt", Value: updatedAt},
	}

	if _, err := docRef.Update(ctx, updates); err != nil {
		return fmt.Errorf("error updating record %s: %w", recordID, err)
	}

	log.Printf("Record %s moved to status '%s'", recordID, newStatus)
	return nil
}

// DeleteRecord removes a medical record by its document ID.
func DeleteRecord(client *firestore.Client, recordID string) (*firestore.WriteResult, error) {
	ctx := context.Background()

	writeResult, err := client.Collection(recordsCollection).Doc(recordID).Delete(ctx)
	if err != nil {
		return nil, fmt.Errorf("error deleting record %s: %w", recordID, err)
	}

	log.Printf("Record '%s' deleted successfully.", recordID)
	return writeResult, nil
}
