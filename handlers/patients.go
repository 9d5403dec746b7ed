package handlers

import (
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go-clinsight/db"
	"go-clinsight/types"
)

// CreatePatient stores a new patient document keyed by its MRN.
func CreatePatient(c *gin.Context, firestoreClient *firestore.Client) {
	var patient types.PatientRecord
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if patient.MRN == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mrn is required"})
		return
	}

	patient.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	if err := db.SavePatient(firestoreClient, patient); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, patient)
}

// GetPatients lists every patient for the dashboard table.
func GetPatients(c *gin.Context, firestoreClient *firestore.Client) {
	patients, err := db.GetAllPatients(firestoreClient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"patients": patients, "count": len(patients)})
}

// GetPatientByMRN returns one patient plus their records.
func GetPatientByMRN(c *gin.Context, firestoreClient *firestore.Client) {
	mrn := c.Param("mrn")

	patient, err := db.GetPatient(firestoreClient, mrn)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	records, err := db.GetRecordsByPatient(firestoreClient, mrn)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"patient": patient, "records": records})
}

// UpdatePatientContact patches the contact fields of an existing patient.
func UpdatePatientContact(c *gin.Context, firestoreClient *firestore.Client) {
	mrn := c.Param("mrn")

	var request struct {
		Phone string `json:"phone"`
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedAt := time.Now().UTC().Format(time.RFC3339)
	if err := db.UpdatePatientContact(firestoreClient, mrn, request.Phone, request.Email, updatedAt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mrn": mrn, "updatedAt": updatedAt})
}

// DeletePatient removes a patient document.
func DeletePatient(c *gin.Context, firestoreClient *firestore.Client) {
	mrn := c.Param("mrn")

	if _, err := db.DeletePatient(firestoreClient, mrn); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": mrn})
}
