package function

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAnalyzeArticleHealthCheck(t *testing.T) {
	t.Chdir(t.TempDir())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	AnalyzeArticle(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if !response.Success || response.Data["status"] != "ok" {
		t.Errorf("Expected status 'ok', got %+v", response)
	}
}

func TestAnalyzeArticleText(t *testing.T) {
	t.Chdir(t.TempDir())

	body := `{"text":"The cat sat on the mat. The cat was happy."}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/text", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	AnalyzeArticle(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	var response struct {
		Data struct {
			Analysis struct {
				WordsCount     int `json:"words_count"`
				SentencesCount int `json:"sentences_count"`
			} `json:"analysis"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if got := response.Data.Analysis; got.WordsCount != 12 || got.SentencesCount != 2 {
		t.Errorf("Expected 12 words in 2 sentences, got %+v", got)
	}
}

func TestAnalyzeArticleInvalidURL(t *testing.T) {
	t.Chdir(t.TempDir())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(`{"url":"ftp://example.com"}`))
	w := httptest.NewRecorder()

	AnalyzeArticle(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}
