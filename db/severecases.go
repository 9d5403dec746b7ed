package db

import (
	"context"
	"fmt"
	"log"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"go-clinsight/types"
)

const severeCasesCollection = "severeCases"

// SaveSevereCases saves a slice of SevereCase objects to the 'severeCases'
// collection using BulkWriter for efficient non-transactional writes.
// It uses the SevereCase.ID field as the Firestore document ID.
func SaveSevereCases(client *firestore.Client, cases []types.SevereCase) error {
	if len(cases) == 0 {
		log.Println("No severe cases to save.")
		return nil
	}

	ctx := context.Background()
	bw := client.BulkWriter(ctx)
	casesCollectionRef := client.Collection(severeCasesCollection)

	log.Printf("Preparing to save %d severe cases using BulkWriter to collection '%s'...", len(cases), severeCasesCollection)

	savedCount := 0
	for i := range cases {
		severeCase := cases[i]

		if severeCase.ID == "" {
			log.Printf("Warning: Skipping severe case with empty ID: %+v", severeCase)
			continue // Cannot save without an ID
		}
		docRef := casesCollectionRef.Doc(severeCase.ID)

		_, err := bw.Set(docRef, severeCase)
		if err != nil {
			log.Printf("Error enqueueing severe case %s for save: %v", severeCase.ID, err)
		} else {
			savedCount++
		}
	}

	if savedCount == 0 {
		log.Println("No valid severe cases were enqueued for saving.")
		return nil
	}

	// NOTE: Flush sends any remaining writes and waits for them to complete.
	// It should be called before the BulkWriter goes out of scope.
	bw.Flush()

	log.Printf("BulkWriter flushed. Attempted to save %d severe cases.", savedCount)
	return nil
}

// GetOpenSevereCases retrieves every unresolved severe case, highest
// severity first, for the review screen.
func GetOpenSevereCases(client *firestore.Client) ([]types.SevereCase, error) {
	ctx := context.Background()
	var openCases []types.SevereCase

	docs, err := client.Collection(severeCasesCollection).
		Where("open", "==", true).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("error querying open severe cases: %w", err)
	}

	for _, doc := range docs {
		var severeCase types.SevereCase
		if err := doc.DataTo(&severeCase); err != nil {
			log.Printf("Warning: Error converting document %s to SevereCase: %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		severeCase.ID = doc.Ref.ID
		openCases = append(openCases, severeCase)
	}

	sort.SliceStable(openCases, func(i, j int) bool {
		return openCases[i].Severity > openCases[j].Severity
	})

	return openCases, nil
}

// GetSevereCaseByID retrieves a single severe case by its document ID.
func GetSevereCaseByID(client *firestore.Client, caseID string) (types.SevereCase, error) {
	ctx := context.Background()
	var severeCase types.SevereCase

	docSnap, err := client.Collection(severeCasesCollection).Doc(caseID).Get(ctx)
	if err != nil {
		return severeCase, fmt.Errorf("error getting severe case %s: %w", caseID, err)
	}

	if err := docSnap.DataTo(&severeCase); err != nil {
		return severeCase, fmt.Errorf("error converting document %s to SevereCase: %w", caseID, err)
	}
	severeCase.ID = docSnap.Ref.ID

	return severeCase, nil
}

// UpdateSevereCaseSummary stores the generated narrative for a case.
func UpdateSevereCaseSummary(client *firestore.Client, caseID, summary, lastUpdate string) error {
	ctx := context.Background()

	updates := []firestore.Update{
		{Path: "summary", Value: summary},
		{Path: "lastUpdate", Value: lastUpdate},
	}

	if _, err := client.Collection(severeCasesCollection).Doc(caseID).Update(ctx, updates); err != nil {
		return fmt.Errorf("error updating summary for severe case %s: %w", caseID, err)
	}
	return nil
}

// ResolveSevereCasesForRecord closes every open severe case tied to a record,
// typically after a clearance decision.
func ResolveSevereCasesForRecord(client *firestore.Client, recordID, lastUpdate string) (int, error) {
	ctx := context.Background()

	iter := client.Collection(severeCasesCollection).
		Where("recordId", "==", recordID).
		Where("open", "==", true).
		Documents(ctx)
	defer iter.Stop()

	resolved := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return resolved, fmt.Errorf("error iterating severe cases for record %s: %w", recordID, err)
		}

		updates := []firestore.Update{
			{Path: "open", Value: false},
			{Path: "lastUpdate", Value: lastUpdate},
		}
		if _, err := doc.Ref.Update(ctx, updates); err != nil {
			log.Printf("Error resolving severe case %s: %v", doc.Ref.ID, err)
			continue
		}
		resolved++
	}

	if resolved > 0 {
		log.Printf("Resolved %d severe case(s) for record %s", resolved, recordID)
	}
	return resolved, nil
}
