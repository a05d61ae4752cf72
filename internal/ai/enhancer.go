package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cruise_insights/backend/internal/models"
)

const systemPrompt = `You are an AI analytics assistant for a direct mail marketing company serving cruise lines. You help marketing teams understand their campaign performance data.

Your responses should be:
- Conversational and helpful, like a knowledgeable colleague
- Data-driven but not robotic
- Actionable - suggest what they might do with the insight
- Concise - 2-3 sentences max for the main insight

You'll receive the user's question and pre-computed data/analysis. Your job is to present that data in a natural, insightful way. Don't make up numbers - use only the data provided.

Important context:
- ROAS = Return on Ad Spend (revenue / ad spend)
- Campaign types: Prospecting (cold audiences), Reactivation (lapsed customers), Retargeting (site visitors)
- Itineraries: Caribbean, Alaska, Europe, Mediterranean
- Cabin types: Inside, Ocean View, Balcony, Suite (in order of price)`

// Enhancer rewrites a canned response into more natural prose. It only
// touches the narrative text; visualizations and actions pass through
// untouched.
type Enhancer struct {
	Assistant Assistant
	// Timeout bounds a single enhancement call. Zero means 8s.
	Timeout time.Duration
}

// Enhance returns rewritten narrative text for the drafted message. Any
// failure (no assistant, timeout, transport error, blank completion) returns
// an error; callers keep the draft text in that case.
func (e Enhancer) Enhance(ctx context.Context, userQuery string, draft models.ChatMessage, qctx models.QueryContext) (string, error) {
	if e.Assistant == nil {
		return "", fmt.Errorf("no assistant configured")
	}

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var sb strings.Builder
	fmt.Fprintf(&sb, "User asked: %q", userQuery)
	if qctx.LastQuery != "" {
		fmt.Fprintf(&sb, "\n\nPrevious question was: %q", qctx.LastQuery)
	}
	if draft.Visualization != nil {
		if data, err := json.MarshalIndent(draft.Visualization, "", "  "); err == nil {
			fmt.Fprintf(&sb, "\n\nData to present:\n%s", data)
		}
	}
	fmt.Fprintf(&sb, "\n\nDraft answer:\n%s", draft.Content)
	sb.WriteString("\n\nProvide a natural, insightful response presenting this data. Be conversational and suggest what action they might take.")

	answer, err := e.Assistant.Ask(ctx, sb.String(), []ChatMessage{{Role: "system", Content: systemPrompt}})
	if err != nil {
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", fmt.Errorf("empty enhancement")
	}
	return answer, nil
}
