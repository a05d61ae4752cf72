package assistant

import (
	"fmt"
	"strings"

	"github.com/cruise_insights/backend/internal/models"
)

// InsightResponse builds the detailed walkthrough shown when a user clicks a
// sidebar insight, so the assistant appears to proactively share what it
// found. Matching is by ID first, then by title keyword so renamed catalog
// entries keep working.
func (r *Router) InsightResponse(insight models.Insight) models.ChatMessage {
	title := strings.ToLower(insight.Title)

	switch {
	case insight.ID == "insight-exotic" || insight.ID == "insight-002" ||
		strings.Contains(title, "exotic") || strings.Contains(title, "asia"):
		return r.handleEliteLeakage(insight.Title, models.QueryContext{})

	case insight.ID == "insight-channels" || insight.ID == "insight-001" || insight.ID == "insight-005" ||
		strings.Contains(title, "channel") || strings.Contains(title, "pinterest") || strings.Contains(title, "google"):
		return r.handleChannelQuality(insight.Title, models.QueryContext{})

	case insight.ID == "insight-003" || strings.Contains(title, "relevance"):
		return r.handleRelevancePremium(insight.Title, models.QueryContext{})

	case insight.ID == "insight-004" || strings.Contains(title, "guardrail") || strings.Contains(title, "hawaii"):
		return r.handleGuardrail(insight.Title, models.QueryContext{})

	case insight.ID == "insight-006" || strings.Contains(title, "dark social"):
		return r.handleDarkSocial(insight.Title, models.QueryContext{})

	case strings.Contains(title, "churn"):
		return r.handleChurnRisk(insight.Title, models.QueryContext{})

	case strings.Contains(title, "reactivation"):
		return r.handleCampaignTypeComparison(insight.Title, models.QueryContext{})
	}

	return newMessage(
		fmt.Sprintf("I noticed %s. %s", strings.ToLower(insight.Title), insight.Description),
		nil, nil)
}
