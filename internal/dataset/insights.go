package dataset

import (
	"sort"
	"time"

	"github.com/cruise_insights/backend/internal/models"
)

func change(v float64) *float64 { return &v }

// insightCatalog is the pre-authored set of proactive findings shown in the
// sidebar. Entries are narrative fixtures tied to the audit constants.
func insightCatalog() []models.Insight {
	day := func(d int) time.Time {
		return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
	}

	return []models.Insight{
		{
			ID:          "insight-exotic",
			Type:        models.InsightInfo,
			Title:       "View the Exotic Opportunity",
			Description: "101,153 Elite households for Asia/Australia with 0% matched creative — $500M+ demand pool.",
			Metric:      "$500M+",
			Timestamp:   time.Date(2025, time.February, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "insight-channels",
			Type:        models.InsightInfo,
			Title:       "View Channel Quality Scorecard",
			Description: "See which channels deliver Elite buyers vs. junk traffic. Find the funding source for the fix.",
			Metric:      "Scorecard",
			Timestamp:   time.Date(2025, time.February, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "insight-001",
			Type:        models.InsightWarning,
			Title:       "Pinterest traffic 95% junk",
			Description: "Forensic audit reveals 95.2% of Pinterest visitors are bots or immediate bounces. Only 1.7% are Elite buyers.",
			Metric:      "95%",
			Change:      change(-95),
			Timestamp:   time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "insight-002",
			Type:        models.InsightWarning,
			Title:       "100% leakage on Asia/Australia",
			Description: "Zero matched creative for 101,153 Elite households with propensity score 6.18 — they're ready to buy.",
			Metric:      "0%",
			Change:      change(-100),
			Timestamp:   day(31),
		},
		{
			ID:          "insight-003",
			Type:        models.InsightSuccess,
			Title:       "Relevance Premium confirmed: +$870 AOV",
			Description: "When creative matches intent, AOV jumps from $4,723 to $5,593. That's +18% per booking.",
			Metric:      "+$870",
			Change:      change(18),
			Timestamp:   day(30),
		},
		{
			ID:          "insight-004",
			Type:        models.InsightWarning,
			Title:       "Hawaii guardrail failing: 70% → 15%",
			Description: "Hawaii intenders with matched card retain 70%. With generic card, only 15% stay — $2,400 loss per switch.",
			Metric:      "-55 pts",
			Change:      change(-55),
			Timestamp:   day(29),
		},
		{
			ID:          "insight-005",
			Type:        models.InsightSuccess,
			Title:       "Google Search delivering 40% Elite",
			Description: "13.7M visitors at 40.1% Elite rate — the workhorse channel nearly matches CRM quality. Protect this budget.",
			Metric:      "40.1%",
			Change:      change(40),
			Timestamp:   day(28),
		},
		{
			ID:          "insight-006",
			Type:        models.InsightInfo,
			Title:       "Dark Social: 19.2M unclassified",
			Description: "Tagging failures hiding social spend with 69.6% junk rate. Fix the governance gap to optimize these campaigns.",
			Metric:      "19.2M",
			Timestamp:   day(27),
		},
	}
}

// RecentInsights returns the newest entries first, capped at limit.
func (d *Dataset) RecentInsights(limit int) []models.Insight {
	out := make([]models.Insight, len(d.Insights))
	copy(out, d.Insights)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (d *Dataset) InsightByID(id string) (models.Insight, bool) {
	for _, in := range d.Insights {
		if in.ID == id {
			return in, true
		}
	}
	return models.Insight{}, false
}
