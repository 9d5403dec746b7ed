package processor

import (
	"log"
	"sync"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"go-clinsight/analyzer"
	"go-clinsight/db"
	"go-clinsight/types"
)

// ProcessRecords analyzes and saves a batch of intake notes concurrently,
// one goroutine per note.
func ProcessRecords(intakes []types.RecordIntake, firestoreClient *firestore.Client) []types.ProcessRecordResult {
	resultsChan := make(chan types.ProcessRecordResult, len(intakes))
	var wg sync.WaitGroup

	for _, v := range intakes {
		if v.PatientMRN == "" {
			continue
		}
		wg.Add(1)
		intake := v // capture variable for goroutine
		go func() {
			defer wg.Done()
			result, err := ProcessRecord(intake, firestoreClient)
			if err != nil {
				result = types.ProcessRecordResult{
					SavedRecordID: db.RecordDocID(intake.PatientMRN, intake.VisitDate, intake.NoteText),
					PatientMRN:    intake.PatientMRN,
					ErrorSaving:   true,
				}
			}
			resultsChan <- result
		}()
	}

	wg.Wait()
	close(resultsChan)

	resultsList := make([]types.ProcessRecordResult, 0, len(intakes))
	for result := range resultsChan {
		resultsList = append(resultsList, result)
	}

	return resultsList
}

// ProcessRecord runs the analyzer over one intake note, stores the record
// with its analysis, and opens a severe case when the assessed severity
// reaches the review threshold. Re-submitting an identical note for the same
// visit is a no-op reported through AlreadyExist.
func ProcessRecord(intake types.RecordIntake, firestoreClient *firestore.Client) (types.ProcessRecordResult, error) {
	recordID := db.RecordDocID(intake.PatientMRN, intake.VisitDate, intake.NoteText)

	var result types.ProcessRecordResult
	result.SavedRecordID = recordID
	result.PatientMRN = intake.PatientMRN

	exists, err := db.RecordExists(firestoreClient, recordID)
	if err != nil {
		result.ErrorSaving = true
		return result, err
	}
	if exists {
		log.Printf("Record already exists for MRN %s, visit %s. Hash: %s", intake.PatientMRN, intake.VisitDate, recordID)
		result.AlreadyExist = true
		return result, nil
	}

	analysis := analyzer.Analyze(intake.NoteText)
	result.Severity = analysis.Severity
	result.SuggestedDiagnoses = analysis.SuggestedDiagnoses

	now := time.Now().UTC().Format(time.RFC3339)
	record := types.MedicalRecord{
		ID:         recordID,
		PatientMRN: intake.PatientMRN,
		Author:     intake.Author,
		VisitDate:  intake.VisitDate,
		NoteText:   intake.NoteText,
		Status:     types.PendingReview,
		Analysis:   analysis,
		CreatedAt:  now,
	}

	if err := db.SaveCompleteRecord(firestoreClient, record); err != nil {
		result.ErrorSaving = true
		return result, err
	}

	// Severity at or above the threshold puts the record in the review queue.
	if analysis.Severity >= analyzer.SevereThreshold {
		severeCase := types.SevereCase{
			ID:         uuid.NewString(),
			RecordID:   recordID,
			PatientMRN: intake.PatientMRN,
			Severity:   analysis.Severity,
			Diagnoses:  analysis.SuggestedDiagnoses,
			NoteText:   intake.NoteText,
			Open:       true,
			ReportedAt: now,
		}
		if err := db.SaveSevereCases(firestoreClient, []types.SevereCase{severeCase}); err != nil {
			log.Printf("Error saving severe case for record %s: %v", recordID, err)
		} else {
			result.SevereCaseID = severeCase.ID
		}
	}

	return result, nil
}
