package handlers

import (
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-clinsight/db"
	"go-clinsight/types"
)

// categoryOrder fixes the chart ordering regardless of map iteration.
var categoryOrder = []types.Category{
	types.CategorySymptom,
	types.CategoryVital,
	types.CategoryCondition,
	types.CategoryMedication,
	types.CategoryProcedure,
	types.CategoryPsychological,
	types.CategoryLifestyle,
}

// GetSeverityDistribution aggregates stored analyses into the ten severity
// buckets the dashboard chart renders.
func GetSeverityDistribution(c *gin.Context, firestoreClient *firestore.Client) {
	records, err := db.GetAllRecords(firestoreClient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	counts := make(map[int]int)
	for _, record := range records {
		counts[record.Analysis.Severity]++
	}

	buckets := make([]types.SeverityBucket, 0, 10)
	for severity := 1; severity <= 10; severity++ {
		buckets = append(buckets, types.SeverityBucket{Severity: severity, Count: counts[severity]})
	}

	c.JSON(http.StatusOK, gin.H{"distribution": buckets, "total": len(records)})
}

// GetEntityCategoryCounts aggregates recognized entities per category.
func GetEntityCategoryCounts(c *gin.Context, firestoreClient *firestore.Client) {
	records, err := db.GetAllRecords(firestoreClient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	counts := make(map[types.Category]int)
	for _, record := range records {
		for _, entity := range record.Analysis.Entities {
			counts[entity.Category]++
		}
	}

	result := make([]types.CategoryCount, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		result = append(result, types.CategoryCount{Category: category, Count: counts[category]})
	}

	c.JSON(http.StatusOK, gin.H{"categories": result})
}
