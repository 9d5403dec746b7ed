package handlers

import (
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-clinsight/analyzer"
	"go-clinsight/db"
	"go-clinsight/types"
)

// DecideClearance applies a reviewer's decision to a record. Severe records
// cannot be cleared without a reviewer note; clearing a record closes its
// open severe cases.
func DecideClearance(c *gin.Context, firestoreClient *firestore.Client) {
	var request struct {
		RecordID   string             `json:"recordId"`
		Decision   types.RecordStatus `json:"decision"`
		ReviewedBy string             `json:"reviewedBy"`
		ReviewNote string             `json:"reviewNote"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch request.Decision {
	case types.Cleared, types.Flagged, types.Escalated:
		// valid reviewer decisions
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "decision must be cleared, flagged or escalated"})
		return
	}

	record, err := db.GetRecordByID(firestoreClient, request.RecordID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if request.Decision == types.Cleared &&
		record.Analysis.Severity >= analyzer.SevereThreshold &&
		request.ReviewNote == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "clearing a severe record requires a reviewer note",
		})
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if err := db.UpdateRecordStatus(firestoreClient, request.RecordID, request.Decision,
		request.ReviewedBy, request.ReviewNote, now); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resolved := 0
	if request.Decision == types.Cleared {
		resolved, err = db.ResolveSevereCasesForRecord(firestoreClient, request.RecordID, now)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"recordId":      request.RecordID,
		"status":        request.Decision,
		"resolvedCases": resolved,
	})
}
