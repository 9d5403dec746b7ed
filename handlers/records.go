package handlers

import (
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-clinsight/db"
	"go-clinsight/processor"
	"go-clinsight/types"
)

// CreateRecord analyzes one intake note and stores the record with its
// analysis attached.
func CreateRecord(c *gin.Context, firestoreClient *firestore.Client) {
	var intake types.RecordIntake
	if err := c.ShouldBindJSON(&intake); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if intake.PatientMRN == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "patientMrn is required"})
		return
	}

	result, err := processor.ProcessRecord(intake, firestoreClient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if result.AlreadyExist {
		c.JSON(http.StatusOK, result)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// BatchIntake processes a list of intake notes concurrently and reports the
// per-note outcomes.
func BatchIntake(c *gin.Context, firestoreClient *firestore.Client) {
	var request struct {
		Records []types.RecordIntake `json:"records"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(request.Records) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "records list is empty"})
		return
	}

	results := processor.ProcessRecords(request.Records, firestoreClient)
	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}

// GetRecords lists records, optionally filtered by patient MRN.
func GetRecords(c *gin.Context, firestoreClient *firestore.Client) {
	mrn := c.Query("mrn")

	var (
		records []types.MedicalRecord
		err     error
	)
	if mrn != "" {
		records, err = db.GetRecordsByPatient(firestoreClient, mrn)
	} else {
		records, err = db.GetAllRecords(firestoreClient)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records, "count": len(records)})
}

// GetRecord returns a single record by document ID.
func GetRecord(c *gin.Context, firestoreClient *firestore.Client) {
	record, err := db.GetRecordByID(firestoreClient, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

// DeleteRecord removes a record by document ID.
func DeleteRecord(c *gin.Context, firestoreClient *firestore.Client) {
	recordID := c.Param("id")

	if _, err := db.DeleteRecord(firestoreClient, recordID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": recordID})
}
