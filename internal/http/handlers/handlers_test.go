package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/cruise_insights/backend/internal/assistant"
	"github.com/cruise_insights/backend/internal/dataset"
	"github.com/cruise_insights/backend/internal/models"
	"github.com/cruise_insights/backend/internal/query"
)

func testServer(t *testing.T) (*Handler, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	data := dataset.Build(dataset.Options{})
	engine := query.NewEngine(data)
	h := &Handler{
		Data:      data,
		Engine:    engine,
		Router:    assistant.NewRouter(engine, assistant.WithPhraseSeed(1)),
		Validator: validator.New(),
		Logger:    zerolog.Nop(),
	}

	r := gin.New()
	r.GET("/healthz", h.Healthz)
	r.POST("/api/chat", h.Chat)
	r.GET("/api/insights", h.InsightsList)
	r.POST("/api/insights/:id/response", h.InsightResponse)
	r.POST("/api/audience/preview", h.AudiencePreview)
	return h, r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	_, r := testServer(t)

	req, _ := http.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected body: %v", body)
	}
	if body["customers"].(float64) != float64(dataset.DefaultPopulation) {
		t.Fatalf("expected %d customers in health payload, got %v", dataset.DefaultPopulation, body["customers"])
	}
}

func TestChatValidation(t *testing.T) {
	_, r := testServer(t)

	w := postJSON(t, r, "/api/chat", map[string]any{"message": ""})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty message should be 400, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	errObj, ok := body["error"].(map[string]any)
	if !ok || errObj["code"] != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR envelope, got %v", body)
	}

	w = postJSON(t, r, "/api/chat", map[string]any{"message": "   "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("whitespace message should be 400, got %d", w.Code)
	}
}

func TestChatEndToEnd(t *testing.T) {
	_, r := testServer(t)

	w := postJSON(t, r, "/api/chat", map[string]any{"message": "What's the ROAS by itinerary?"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message.Role != "assistant" || resp.Message.Content == "" {
		t.Fatalf("unexpected message: %+v", resp.Message)
	}
	if resp.Message.Visualization == nil || resp.Message.Visualization.Type != models.VizBar {
		t.Fatalf("expected a bar visualization, got %+v", resp.Message.Visualization)
	}
	if resp.Context.LastQuery != "What's the ROAS by itinerary?" {
		t.Fatalf("context not threaded back: %+v", resp.Context)
	}
	if resp.Enhanced {
		t.Fatalf("no enhancer configured, response must not claim enhancement")
	}
}

func TestChatContextRoundTrip(t *testing.T) {
	_, r := testServer(t)

	w := postJSON(t, r, "/api/chat", map[string]any{
		"message": "break it down by cabin",
		"context": models.QueryContext{LastQuery: "roas by itinerary", LastDimension: "itinerary", LastMetric: "roas"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp ChatResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Message.Visualization == nil || resp.Message.Visualization.Title != "ROAS by Cabin Type" {
		t.Fatalf("expected the cabin follow-up, got %+v", resp.Message.Visualization)
	}
	if resp.Context.LastDimension != "itinerary" {
		t.Fatalf("follow-up should preserve the prior dimension, got %+v", resp.Context)
	}
}

func TestInsightsList(t *testing.T) {
	h, r := testServer(t)

	req, _ := http.NewRequest(http.MethodGet, "/api/insights?limit=3", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Insights []models.Insight `json:"insights"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Insights) != 3 {
		t.Fatalf("expected 3 insights, got %d", len(body.Insights))
	}

	req, _ = http.NewRequest(http.MethodGet, "/api/insights", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body.Insights) != 4 {
		t.Fatalf("expected the default of 4 insights, got %d", len(body.Insights))
	}

	req, _ = http.NewRequest(http.MethodGet, "/api/insights?limit=0", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body.Insights) != len(h.Data.Insights) {
		t.Fatalf("limit=0 should return the full catalog, got %d of %d", len(body.Insights), len(h.Data.Insights))
	}

	req, _ = http.NewRequest(http.MethodGet, "/api/insights?limit=-1", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("negative limit should be 400, got %d", w.Code)
	}
}

func TestInsightResponseEndpoint(t *testing.T) {
	_, r := testServer(t)

	w := postJSON(t, r, "/api/insights/insight-003/response", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var msg models.ChatMessage
	if err := json.Unmarshal(w.Body.Bytes(), &msg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg.Role != "assistant" || msg.Content == "" {
		t.Fatalf("unexpected message: %+v", msg)
	}

	w = postJSON(t, r, "/api/insights/not-a-real-id/response", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown insight should be 404, got %d", w.Code)
	}
}

func TestAudiencePreviewEndpoint(t *testing.T) {
	_, r := testServer(t)

	minLTV := 8000.0
	w := postJSON(t, r, "/api/audience/preview", AudiencePreviewRequest{
		Criteria: models.AudienceCriteria{
			Segments: []models.CustomerSegment{models.SegmentLapsed},
			MinLTV:   &minLTV,
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var preview models.AudiencePreview
	if err := json.Unmarshal(w.Body.Bytes(), &preview); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if preview.Count == 0 {
		t.Fatalf("expected a non-empty audience")
	}
	if len(preview.Sample) > query.SampleSize {
		t.Fatalf("sample exceeds cap: %d", len(preview.Sample))
	}
	if preview.ROIProjection == nil || preview.Recommendation == nil {
		t.Fatalf("preview missing projection or recommendation")
	}
	if preview.ROIProjection.AudienceSize != preview.Count {
		t.Fatalf("projection sized %d for audience of %d", preview.ROIProjection.AudienceSize, preview.Count)
	}
}
