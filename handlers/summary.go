package handlers

import (
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"

	"go-clinsight/db"
	"go-clinsight/summarization"
	"go-clinsight/types"
)

// SummarizeSevereCase generates (or returns the cached) narrative summary
// for one severe case.
func SummarizeSevereCase(c *gin.Context, firestoreClient *firestore.Client, openaiClient *openai.Client) {
	caseID := c.Param("id")

	severeCase, err := db.GetSevereCaseByID(firestoreClient, caseID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if severeCase.Summary != "" {
		c.JSON(http.StatusOK, gin.H{"caseId": caseID, "summary": severeCase.Summary, "cached": true})
		return
	}

	if err := summarization.GenerateSummaries(c.Request.Context(),
		[]types.SevereCase{severeCase}, firestoreClient, openaiClient); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Re-read: GenerateSummaries persists through the db layer.
	updated, err := db.GetSevereCaseByID(firestoreClient, caseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"caseId": caseID, "summary": updated.Summary, "cached": false})
}
