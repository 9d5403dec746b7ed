package summarization

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/sashabaranov/go-openai"

	"go-clinsight/db"
	"go-clinsight/types"
)

const maxNoteLength = 15000 // Rough character limit for prompt

// GenerateSummaries produces a short narrative for each severe case that
// does not have one yet and persists it. Cases are summarized concurrently;
// a failure on one case is logged and skipped, never fatal for the batch.
func GenerateSummaries(
	ctx context.Context,
	cases []types.SevereCase,
	firestoreClient *firestore.Client,
	openaiClient *openai.Client,
) error {
	log.Printf("Starting summary generation for %d severe cases...", len(cases))

	var wg sync.WaitGroup

	for i := range cases {
		if cases[i].Summary != "" {
			continue // already summarized
		}

		wg.Add(1)
		go func(caseIndex int) {
			defer wg.Done()
			severeCase := &cases[caseIndex]

			noteText := severeCase.NoteText
			if noteText == "" {
				log.Printf("Severe case %s has no note text. Skipping summary.", severeCase.ID)
				return
			}
			if len(noteText) > maxNoteLength {
				log.Printf("Warning: Note text for case %s exceeds max length (%d), truncating.", severeCase.ID, maxNoteLength)
				noteText = noteText[:maxNoteLength]
			}

			summary, err := callOpenAISummary(ctx, noteText, severeCase.Severity, severeCase.Diagnoses, openaiClient)
			if err != nil {
				log.Printf("Error getting summary from OpenAI for case %s: %v. Skipping summary.", severeCase.ID, err)
				return
			}

			severeCase.Summary = summary

			lastUpdate := time.Now().UTC().Format(time.RFC3339)
			if err := db.UpdateSevereCaseSummary(firestoreClient, severeCase.ID, summary, lastUpdate); err != nil {
				log.Printf("Error persisting summary for case %s: %v", severeCase.ID, err)
			}
		}(i)
	}

	wg.Wait()

	log.Println("Summary generation finished.")
	return nil
}

// callOpenAISummary sends a clinical note to OpenAI and requests a summary.
func callOpenAISummary(
	ctx context.Context,
	noteText string,
	severity int,
	diagnoses []string,
	client *openai.Client,
) (string, error) {
	diagnosisList := "none suggested"
	if len(diagnoses) > 0 {
		diagnosisList = strings.Join(diagnoses, ", ")
	}

	prompt := fmt.Sprintf("Summarize the following clinical note for a reviewer triaging severe cases. The rule-based screen assessed severity %d/10 and suggested: %s. Focus on the presenting complaint, key findings, and what makes the case urgent. Provide a concise summary (2-3 sentences maximum):\n\n---\n%s\n---\n\nSummary:", severity, diagnosisList, noteText)

	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant that summarizes clinical notes for severe-case review, concisely and without speculation.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   150,
			N:           1,
			Temperature: 0.5, // Lower temperature for more focused summary
		},
	)

	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
