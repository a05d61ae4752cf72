package assistant

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cruise_insights/backend/internal/models"
	"github.com/cruise_insights/backend/internal/query"
)

// Router maps a free-text query plus prior context to exactly one handler.
// Dispatch is a linear first-match-wins scan over ordered rule tables;
// declaration order is the only tie-breaker and is part of the contract.
type Router struct {
	engine  *query.Engine
	phrases *phraser
	primary []rule
	follow  []rule
}

type handlerFunc func(r *Router, rawQuery string, ctx models.QueryContext) models.ChatMessage

// rule binds a set of OR-combined patterns to a handler.
type rule struct {
	patterns []*regexp.Regexp
	handler  handlerFunc
}

func (ru rule) matches(normalized string) bool {
	for _, p := range ru.patterns {
		if p.MatchString(normalized) {
			return true
		}
	}
	return false
}

// Option customizes a Router; used by tests to pin the phrase seed.
type Option func(*Router)

func WithPhraseSeed(seed int64) Option {
	return func(r *Router) {
		r.phrases = newPhraser(seed)
	}
}

func NewRouter(engine *query.Engine, opts ...Option) *Router {
	r := &Router{
		engine:  engine,
		phrases: newPhraser(time.Now().UnixNano()),
	}
	r.primary = primaryRules()
	r.follow = followUpRules()
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Process dispatches one chat turn. Unrecognized input is not an error: the
// fallback message is returned and the incoming context is handed back
// untouched.
func (r *Router) Process(rawQuery string, ctx models.QueryContext) (models.ChatMessage, models.QueryContext) {
	normalized := strings.ToLower(strings.TrimSpace(rawQuery))

	// Follow-up rules only apply when a previous turn established context.
	if !ctx.Empty() {
		for _, ru := range r.follow {
			if ru.matches(normalized) {
				msg := ru.handler(r, rawQuery, ctx)
				next := ctx
				next.LastQuery = rawQuery
				return msg, next
			}
		}
	}

	for _, ru := range r.primary {
		if ru.matches(normalized) {
			msg := ru.handler(r, rawQuery, ctx)
			return msg, models.QueryContext{
				LastQuery:     rawQuery,
				LastDimension: extractDimension(rawQuery),
				LastMetric:    extractMetric(rawQuery),
			}
		}
	}

	return r.fallbackMessage(), ctx
}

func (r *Router) fallbackMessage() models.ChatMessage {
	return newMessage(
		"I can help you analyze your campaign performance data. Try asking about:\n\n"+
			"• ROAS by itinerary, cabin type, or campaign type\n"+
			"• Bookings and revenue breakdowns\n"+
			"• Customer segments and loyalty tiers\n"+
			"• Churn risk analysis\n"+
			"• Revenue trends over time",
		nil, nil)
}

// extractDimension is an independent keyword scan; it is not tied to which
// rule fired.
func extractDimension(rawQuery string) string {
	q := strings.ToLower(rawQuery)
	switch {
	case strings.Contains(q, "itinerar"):
		return "itinerary"
	case strings.Contains(q, "cabin"):
		return "cabin_type"
	case strings.Contains(q, "campaign"):
		return "campaign_type"
	case strings.Contains(q, "channel"):
		return "channel"
	case strings.Contains(q, "tier"):
		return "loyalty_tier"
	}
	return ""
}

func extractMetric(rawQuery string) string {
	q := strings.ToLower(rawQuery)
	switch {
	case strings.Contains(q, "roas"), strings.Contains(q, "return"):
		return "roas"
	case strings.Contains(q, "revenue"):
		return "revenue"
	case strings.Contains(q, "booking"):
		return "bookings"
	case strings.Contains(q, "ltv"), strings.Contains(q, "lifetime"):
		return "ltv"
	}
	return ""
}

func newMessage(content string, viz *models.Visualization, actions []models.ActionButton) models.ChatMessage {
	return models.ChatMessage{
		ID:            "msg-" + uuid.NewString(),
		Role:          "assistant",
		Content:       content,
		Timestamp:     time.Now().UTC(),
		Visualization: viz,
		Actions:       actions,
	}
}
