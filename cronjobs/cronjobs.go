package cronjobs

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"github.com/robfig/cron/v3"
	"github.com/sashabaranov/go-openai"

	"go-clinsight/db"
	"go-clinsight/summarization"
	"go-clinsight/types"
)

// sweepSevereCases summarizes any open severe case that is still missing a
// narrative, so the review screen always has something to show.
func sweepSevereCases(firestoreClient *firestore.Client, openaiClient *openai.Client) {
	openCases, err := db.GetOpenSevereCases(firestoreClient)
	if err != nil {
		log.Printf("Error fetching open severe cases for sweep: %v", err)
		return
	}

	var pending []types.SevereCase
	for _, severeCase := range openCases {
		if severeCase.Summary == "" {
			pending = append(pending, severeCase)
		}
	}

	if len(pending) == 0 {
		log.Println("Severe-case sweep: nothing to summarize.")
		return
	}

	if err := summarization.GenerateSummaries(context.Background(), pending, firestoreClient, openaiClient); err != nil {
		log.Printf("Error generating sweep summaries: %v", err)
	}
}

// logSeverityDistribution writes the nightly one-line census of stored
// severities.
func logSeverityDistribution(firestoreClient *firestore.Client) {
	records, err := db.GetAllRecords(firestoreClient)
	if err != nil {
		log.Printf("Error fetching records for nightly census: %v", err)
		return
	}

	counts := make(map[int]int)
	for _, record := range records {
		counts[record.Analysis.Severity]++
	}
	log.Printf("Nightly census: %d records, severity counts: %v", len(records), counts)
}

func InitCronJobs(firestoreClient *firestore.Client, openaiClient *openai.Client) {
	log.Println("\nStarting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	// Severe-case sweep: every 10 minutes
	_, err := c.AddFunc("*/10 * * * *", func() {
		log.Println("\nCronJob: Severe Case Sweep Running")
		sweepSevereCases(firestoreClient, openaiClient)
	})
	if err != nil {
		log.Println("Error scheduling Severe Case Sweep:", err)
	}

	// Nightly severity census at 02:00
	_, err = c.AddFunc("0 2 * * *", func() {
		log.Println("\nCronJob: Nightly Severity Census Running")
		logSeverityDistribution(firestoreClient)
	})
	if err != nil {
		log.Println("Error scheduling Nightly Severity Census:", err)
	}

	c.Start()
}
