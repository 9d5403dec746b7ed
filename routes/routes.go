package routes

import (
	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"

	"go-clinsight/handlers"
)

func SetupRouter(firestoreClient *firestore.Client, openaiClient *openai.Client) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to clinsight!",
		})
	})

	// api routes
	api := r.Group("/api/clinsight")
	{
		api.POST("/analyze", handlers.AnalyzeText)

		api.POST("/patients", func(c *gin.Context) {
			handlers.CreatePatient(c, firestoreClient)
		})
		api.GET("/patients", func(c *gin.Context) {
			handlers.GetPatients(c, firestoreClient)
		})
		api.GET("/patients/:mrn", func(c *gin.Context) {
			handlers.GetPatientByMRN(c, firestoreClient)
		})
		api.PATCH("/patients/:mrn", func(c *gin.Context) {
			handlers.UpdatePatientContact(c, firestoreClient)
		})
		api.DELETE("/patients/:mrn", func(c *gin.Context) {
			handlers.DeletePatient(c, firestoreClient)
		})

		api.POST("/records", func(c *gin.Context) {
			handlers.CreateRecord(c, firestoreClient)
		})
		api.POST("/records/batch", func(c *gin.Context) {
			handlers.BatchIntake(c, firestoreClient)
		})
		api.GET("/records", func(c *gin.Context) {
			handlers.GetRecords(c, firestoreClient)
		})
		api.GET("/records/:id", func(c *gin.Context) {
			handlers.GetRecord(c, firestoreClient)
		})
		api.DELETE("/records/:id", func(c *gin.Context) {
			handlers.DeleteRecord(c, firestoreClient)
		})

		api.GET("/severe", func(c *gin.Context) {
			handlers.GetSevereCases(c, firestoreClient)
		})
		api.POST("/severe/:id/summary", func(c *gin.Context) {
			handlers.SummarizeSevereCase(c, firestoreClient, openaiClient)
		})
		api.POST("/clearance", func(c *gin.Context) {
			handlers.DecideClearance(c, firestoreClient)
		})

		api.GET("/stats/severity", func(c *gin.Context) {
			handlers.GetSeverityDistribution(c, firestoreClient)
		})
		api.GET("/stats/categories", func(c *gin.Context) {
			handlers.GetEntityCategoryCounts(c, firestoreClient)
		})
	}

	return r
}
