package handlers

import (
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-clinsight/db"
)

// GetSevereCases lists the open severe-case queue, highest severity first,
// for the review screen.
func GetSevereCases(c *gin.Context, firestoreClient *firestore.Client) {
	openCases, err := db.GetOpenSevereCases(firestoreClient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cases": openCases, "count": len(openCases)})
}
