package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cruise_insights/backend/internal/models"
)

func TestEnhanceRewritesDraft(t *testing.T) {
	mock := &MockAssistant{Reply: "Caribbean is carrying the quarter."}
	e := Enhancer{Assistant: mock}

	draft := models.ChatMessage{
		Content: "canned text",
		Visualization: &models.Visualization{
			Type:   models.VizBar,
			Title:  "ROAS by Itinerary",
			Points: []models.ChartPoint{{Label: "Caribbean", Value: 4.2}},
		},
	}
	qctx := models.QueryContext{LastQuery: "overall summary"}

	got, err := e.Enhance(context.Background(), "roas by itinerary", draft, qctx)
	if err != nil {
		t.Fatalf("enhance: %v", err)
	}
	if got != "Caribbean is carrying the quarter." {
		t.Fatalf("unexpected enhancement %q", got)
	}

	if len(mock.Prompts) != 1 {
		t.Fatalf("expected one upstream call, got %d", len(mock.Prompts))
	}
	prompt := mock.Prompts[0]
	if !strings.Contains(prompt, "roas by itinerary") {
		t.Fatalf("prompt missing the user query: %q", prompt)
	}
	if !strings.Contains(prompt, "overall summary") {
		t.Fatalf("prompt missing the prior query: %q", prompt)
	}
	if !strings.Contains(prompt, "Caribbean") {
		t.Fatalf("prompt missing the visualization payload: %q", prompt)
	}
}

func TestEnhanceFailures(t *testing.T) {
	draft := models.ChatMessage{Content: "canned"}

	if _, err := (Enhancer{}).Enhance(context.Background(), "q", draft, models.QueryContext{}); err == nil {
		t.Fatalf("nil assistant must error")
	}

	e := Enhancer{Assistant: &MockAssistant{Err: errors.New("boom")}}
	if _, err := e.Enhance(context.Background(), "q", draft, models.QueryContext{}); err == nil {
		t.Fatalf("upstream error must propagate")
	}

	e = Enhancer{Assistant: &MockAssistant{Reply: "   "}}
	if _, err := e.Enhance(context.Background(), "q", draft, models.QueryContext{}); err == nil {
		t.Fatalf("blank completion must error")
	}
}
