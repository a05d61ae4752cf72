package assistant

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cruise_insights/backend/internal/dataset"
	"github.com/cruise_insights/backend/internal/models"
	"github.com/cruise_insights/backend/internal/query"
)

func testRouter(t *testing.T) *Router {
	t.Helper()
	engine := query.NewEngine(dataset.Build(dataset.Options{}))
	return NewRouter(engine, WithPhraseSeed(1))
}

func TestProcessROASByItinerary(t *testing.T) {
	r := testRouter(t)

	msg, next := r.Process("What's the ROAS by itinerary?", models.QueryContext{})

	if msg.Visualization == nil || msg.Visualization.Type != models.VizBar {
		t.Fatalf("expected a bar visualization, got %+v", msg.Visualization)
	}
	if msg.Visualization.Title != "ROAS by Itinerary" {
		t.Fatalf("unexpected title %q", msg.Visualization.Title)
	}
	if !strings.Contains(msg.Content, "Caribbean") {
		t.Fatalf("narrative should name the top performer: %q", msg.Content)
	}
	if next.LastQuery == "" || next.LastDimension != "itinerary" || next.LastMetric != "roas" {
		t.Fatalf("context not updated: %+v", next)
	}
}

func TestProcessRuleOrderTieBreak(t *testing.T) {
	r := testRouter(t)

	// Matches both the itinerary and cabin ROAS rules; the first declared
	// rule must win.
	msg, _ := r.Process("show roas by itinerary and cabin", models.QueryContext{})
	if msg.Visualization == nil || msg.Visualization.Title != "ROAS by Itinerary" {
		t.Fatalf("expected the itinerary rule to win, got %+v", msg.Visualization)
	}
}

func TestProcessDeterministicDispatch(t *testing.T) {
	r := testRouter(t)

	a, _ := r.Process("customers by segment breakdown", models.QueryContext{})
	b, _ := r.Process("customers by segment breakdown", models.QueryContext{})
	if a.Content != b.Content {
		t.Fatalf("same query produced different narratives")
	}
	if a.Visualization.Title != b.Visualization.Title {
		t.Fatalf("same query produced different visualizations")
	}
}

func TestProcessFallback(t *testing.T) {
	r := testRouter(t)

	ctx := models.QueryContext{LastQuery: "previous", LastDimension: "itinerary"}
	msg, next := r.Process("tell me a joke", ctx)

	if msg.Visualization != nil || msg.Actions != nil {
		t.Fatalf("fallback should carry no visualization or actions")
	}
	if !strings.Contains(msg.Content, "Try asking") {
		t.Fatalf("unexpected fallback text: %q", msg.Content)
	}
	if next != ctx {
		t.Fatalf("fallback must hand the context back unchanged: %+v", next)
	}
}

func TestFollowUpRequiresContext(t *testing.T) {
	r := testRouter(t)

	// Without prior context, "by cabin" matches no primary rule.
	msg, _ := r.Process("by cabin", models.QueryContext{})
	if msg.Visualization != nil {
		t.Fatalf("follow-up phrasing without context should fall back, got %+v", msg.Visualization)
	}

	ctx := models.QueryContext{LastQuery: "roas by itinerary", LastDimension: "itinerary", LastMetric: "roas"}
	msg, next := r.Process("break it down by cabin", ctx)
	if msg.Visualization == nil || msg.Visualization.Title != "ROAS by Cabin Type" {
		t.Fatalf("expected the cabin breakdown, got %+v", msg.Visualization)
	}
	if next.LastQuery != "break it down by cabin" {
		t.Fatalf("follow-up should record the new query, got %q", next.LastQuery)
	}
	if next.LastDimension != "itinerary" || next.LastMetric != "roas" {
		t.Fatalf("follow-up must preserve the prior dimension and metric: %+v", next)
	}
}

func TestLoyaltyTierEndToEnd(t *testing.T) {
	r := testRouter(t)

	msg, _ := r.Process("How many customers are in each loyalty tier?", models.QueryContext{})

	if msg.Visualization == nil || len(msg.Visualization.Points) != 4 {
		t.Fatalf("expected 4 tier points, got %+v", msg.Visualization)
	}
	var total float64
	for _, p := range msg.Visualization.Points {
		total += p.Value
	}
	if int(total) != dataset.DefaultPopulation {
		t.Fatalf("tier counts sum to %d, want %d", int(total), dataset.DefaultPopulation)
	}
	if msg.Visualization.Points[0].Label != "Bronze" || msg.Visualization.Points[3].Label != "Platinum" {
		t.Fatalf("tiers out of order: %+v", msg.Visualization.Points)
	}
}

func TestChurnRiskEndToEnd(t *testing.T) {
	r := testRouter(t)
	engine := query.NewEngine(dataset.Build(dataset.Options{}))
	want := len(engine.ChurnRiskCustomers(query.ChurnMonths))

	msg, _ := r.Process("Which customers are at risk of churning?", models.QueryContext{})

	if msg.Visualization == nil || msg.Visualization.Type != models.VizTable {
		t.Fatalf("expected a table, got %+v", msg.Visualization)
	}
	if len(msg.Visualization.Table.Rows) > 10 {
		t.Fatalf("table should cap at 10 rows, got %d", len(msg.Visualization.Table.Rows))
	}
	if len(msg.Actions) == 0 {
		t.Fatalf("expected action buttons")
	}
	wantLabel := fmt.Sprintf("Create Win-Back Audience (%d)", want)
	if msg.Actions[0].Label != wantLabel {
		t.Fatalf("action label %q, want %q", msg.Actions[0].Label, wantLabel)
	}
	if got := msg.Actions[0].Payload["count"]; got != want {
		t.Fatalf("action payload count %v, want %d", got, want)
	}
}

func TestAudienceBuildEndToEnd(t *testing.T) {
	r := testRouter(t)

	msg, _ := r.Process("build a win-back audience for lapsed customers", models.QueryContext{})

	// "win-back" appears after the churn rule patterns; "lapsed.*customer"
	// fires first, which is the pinned behavior.
	if msg.Visualization == nil || msg.Visualization.Type != models.VizTable {
		t.Fatalf("expected the churn rule to win, got %+v", msg.Visualization)
	}

	msg, _ = r.Process("build a win-back audience", models.QueryContext{})
	if msg.Visualization == nil || msg.Visualization.Type != models.VizAudiencePreview {
		t.Fatalf("expected an audience preview, got %+v", msg.Visualization)
	}
	preview := msg.Visualization.Audience
	if preview == nil || preview.ROIProjection == nil || preview.Recommendation == nil {
		t.Fatalf("audience preview missing projection or recommendation: %+v", preview)
	}
	if len(preview.Sample) > query.SampleSize {
		t.Fatalf("sample exceeds cap: %d", len(preview.Sample))
	}
}

func TestAuditIntents(t *testing.T) {
	r := testRouter(t)

	msg, _ := r.Process("show me the channel quality scorecard", models.QueryContext{})
	if msg.Visualization == nil || msg.Visualization.Type != models.VizTable {
		t.Fatalf("scorecard should be a table, got %+v", msg.Visualization)
	}
	if !strings.Contains(msg.Content, "Pinterest") {
		t.Fatalf("scorecard narrative should call out Pinterest: %q", msg.Content)
	}

	msg, _ = r.Process("what about the exotic itinerary opportunity", models.QueryContext{})
	if !strings.Contains(msg.Content, "101,153") {
		t.Fatalf("leakage narrative should carry the elite household total: %q", msg.Content)
	}

	msg, _ = r.Process("is there a relevance premium in the data", models.QueryContext{})
	if !strings.Contains(msg.Content, "$870") {
		t.Fatalf("premium narrative should carry the AOV lift: %q", msg.Content)
	}

	msg, _ = r.Process("how is the guardrail holding up", models.QueryContext{})
	if msg.Visualization == nil || msg.Visualization.Type != models.VizTable {
		t.Fatalf("guardrail should be a table, got %+v", msg.Visualization)
	}

	msg, _ = r.Process("what's our creative match rate by destination", models.QueryContext{})
	if msg.Visualization == nil || msg.Visualization.Type != models.VizTable {
		t.Fatalf("destination quality should be a table, got %+v", msg.Visualization)
	}
	if !strings.Contains(msg.Content, "Hawaii") {
		t.Fatalf("destination quality narrative should call out the weakest match rate: %q", msg.Content)
	}

	msg, _ = r.Process("what do we know about dark social traffic", models.QueryContext{})
	if !strings.Contains(msg.Content, "19,200,000") {
		t.Fatalf("dark social narrative should carry the visitor total: %q", msg.Content)
	}
}

func TestInsightResponses(t *testing.T) {
	r := testRouter(t)
	d := dataset.Build(dataset.Options{})

	insight, ok := d.InsightByID("insight-003")
	if !ok {
		t.Fatalf("missing insight-003")
	}
	msg := r.InsightResponse(insight)
	if msg.Visualization == nil || msg.Visualization.Type != models.VizMetrics {
		t.Fatalf("relevance insight should produce metrics, got %+v", msg.Visualization)
	}

	unknown := models.Insight{ID: "insight-999", Title: "Totally new finding", Description: "Something happened."}
	msg = r.InsightResponse(unknown)
	if !strings.Contains(msg.Content, "Something happened.") {
		t.Fatalf("fallback should echo the description: %q", msg.Content)
	}
}

func TestExtractDimensionAndMetric(t *testing.T) {
	cases := []struct {
		query     string
		dimension string
		metric    string
	}{
		{"roas by itinerary", "itinerary", "roas"},
		{"revenue by cabin type", "cabin_type", "revenue"},
		{"bookings per campaign", "campaign_type", "bookings"},
		{"ltv by acquisition channel", "channel", "ltv"},
		{"customers per loyalty tier", "loyalty_tier", ""},
		{"hello", "", ""},
	}
	for _, tc := range cases {
		if got := extractDimension(tc.query); got != tc.dimension {
			t.Fatalf("extractDimension(%q) = %q, want %q", tc.query, got, tc.dimension)
		}
		if got := extractMetric(tc.query); got != tc.metric {
			t.Fatalf("extractMetric(%q) = %q, want %q", tc.query, got, tc.metric)
		}
	}
}

func TestCommaInt(t *testing.T) {
	cases := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-4500:    "-4,500",
		19200000: "19,200,000",
	}
	for in, want := range cases {
		if got := commaInt(in); got != want {
			t.Fatalf("commaInt(%d) = %q, want %q", in, got, want)
		}
	}
}
