package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-clinsight/analyzer"
)

// AnalyzeText runs the rule-based analyzer over a clinical note without
// persisting anything. The record editor calls this as the user types.
func AnalyzeText(c *gin.Context) {
	var request struct {
		Text string `json:"text"`
	}
	// Missing or unreadable body is coerced to empty text, which takes the
	// neutral-default path; the analyzer itself has no failure mode.
	if err := c.ShouldBindJSON(&request); err != nil {
		request.Text = ""
	}

	c.JSON(http.StatusOK, analyzer.Analyze(request.Text))
}
