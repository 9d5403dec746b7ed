package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-clinsight/types"
)

func newAnalyzeRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/analyze", AnalyzeText)
	return r
}

func postAnalyze(t *testing.T, r *gin.Engine, body string) types.AnalysisResult {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result types.AnalysisResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	return result
}

func TestAnalyzeTextEmptyBody(t *testing.T) {
	r := newAnalyzeRouter()

	result := postAnalyze(t, r, "")

	assert.Equal(t, 5, result.Severity)
	assert.Empty(t, result.Entities)
	assert.Empty(t, result.KeyPhrases)
	assert.Empty(t, result.SuggestedDiagnoses)
	assert.Zero(t, result.Sentiment.Score)
}

func TestAnalyzeTextMalformedBody(t *testing.T) {
	r := newAnalyzeRouter()

	// Bad JSON falls back to empty text instead of a 400.
	result := postAnalyze(t, r, `{"text": `)

	assert.Equal(t, 5, result.Severity)
	assert.Empty(t, result.Entities)
}

func TestAnalyzeTextCardiacNote(t *testing.T) {
	r := newAnalyzeRouter()

	body, err := json.Marshal(gin.H{
		"text": "Patient presents with severe chest pain radiating to left arm. Blood pressure reading of 185/120. History of hypertension.",
	})
	require.NoError(t, err)

	result := postAnalyze(t, r, string(body))

	assert.Equal(t, 9, result.Severity)
	assert.Contains(t, result.SuggestedDiagnoses, "Coronary Artery Disease")
	assert.Less(t, result.Sentiment.Score, 0.0)

	var entityTexts []string
	for _, entity := range result.Entities {
		entityTexts = append(entityTexts, strings.ToLower(entity.Text))
	}
	assert.Contains(t, entityTexts, "chest pain")
	assert.Contains(t, entityTexts, "hypertension")
}
