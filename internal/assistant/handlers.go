package assistant

import (
	"fmt"
	"math"
	"strings"

	"github.com/cruise_insights/backend/internal/dataset"
	"github.com/cruise_insights/backend/internal/models"
	"github.com/cruise_insights/backend/internal/query"
	"github.com/cruise_insights/backend/internal/recommend"
)

func (r *Router) handleROASByItinerary(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	data := r.engine.ROASByItinerary()
	best, worst := data[0], data[0]
	for _, p := range data {
		if p.Value > best.Value {
			best = p
		}
		if p.Value < worst.Value {
			worst = p
		}
	}

	opening := r.phrases.pick(analysisOpenings)
	followUp := r.phrases.pick(itineraryFollowUps)

	return newMessage(
		fmt.Sprintf("%s %s is your top performer at %gx ROAS, with Mediterranean close behind at 3.8x. %s is lagging at %gx — this is often due to campaign mix and cabin type skew toward Inside cabins.%s",
			opening, best.Label, best.Value, worst.Label, worst.Value, followUp),
		&models.Visualization{Type: models.VizBar, Title: "ROAS by Itinerary", Points: data},
		[]models.ActionButton{
			{ID: "export-roas", Label: "Export CSV", Icon: "download", Action: models.ActionExportCSV},
			{ID: "schedule-roas", Label: "Schedule Report", Icon: "calendar", Action: models.ActionScheduleReport},
		})
}

func (r *Router) handleROASByCabinType(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	data := r.engine.ROASByCabinType()
	best := maxPoint(data)

	return newMessage(
		fmt.Sprintf("%s cabins deliver the highest ROAS at %.1fx, driven by their premium pricing. Suite bookings, while fewer in volume, generate outsized returns due to high average order value.",
			best.Label, best.Value),
		&models.Visualization{Type: models.VizBar, Title: "ROAS by Cabin Type", Points: data},
		[]models.ActionButton{
			{ID: "export-cabin-roas", Label: "Export CSV", Icon: "download", Action: models.ActionExportCSV},
		})
}

func (r *Router) handleROASByCampaignType(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	data := r.engine.ROASByCampaignType()
	reactivation := pointValue(data, string(models.CampaignReactivation))
	prospecting := pointValue(data, string(models.CampaignProspecting))

	return newMessage(
		fmt.Sprintf("Reactivation campaigns deliver %.1fx ROAS—significantly outperforming Prospecting at %.1fx. This suggests an opportunity to shift more budget toward re-engaging lapsed customers.",
			reactivation, prospecting),
		&models.Visualization{Type: models.VizBar, Title: "ROAS by Campaign Type", Points: data},
		[]models.ActionButton{
			{ID: "export-campaign-roas", Label: "Export CSV", Icon: "download", Action: models.ActionExportCSV},
		})
}

func (r *Router) handleBookingsRevenueByCabin(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	bookings := r.engine.BookingsByCabinType()
	revenue := r.engine.RevenueByCabinType()

	points := make([]models.ChartPoint, len(revenue))
	for i, p := range revenue {
		points[i] = models.ChartPoint{Label: p.Label, Value: math.Round(p.Value / 1000)}
	}

	return newMessage(
		fmt.Sprintf("Inside cabins lead in volume with %d bookings, while Suites generate the highest revenue per booking. Balcony cabins offer a strong balance of volume and value.",
			int(bookings[0].Value)),
		&models.Visualization{Type: models.VizBar, Title: "Revenue by Cabin Type", Points: points},
		[]models.ActionButton{
			{ID: "export-cabin", Label: "Export CSV", Icon: "download", Action: models.ActionExportCSV},
		})
}

func (r *Router) handleBookingsByItinerary(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	data := r.engine.BookingsByItinerary()
	var total float64
	for _, p := range data {
		total += p.Value
	}
	best := maxPoint(data)

	share := 0
	if total > 0 {
		share = int(math.Round(best.Value / total * 100))
	}

	return newMessage(
		fmt.Sprintf("%s accounts for %d%% of all bookings (%d of %d total). This reflects both consumer demand and our campaign focus on this popular destination.",
			best.Label, share, int(best.Value), int(total)),
		&models.Visualization{Type: models.VizBar, Title: "Bookings by Itinerary", Points: data},
		[]models.ActionButton{
			{ID: "export-itinerary", Label: "Export CSV", Icon: "download", Action: models.ActionExportCSV},
		})
}

func (r *Router) handleCampaignTypeComparison(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	roasData := r.engine.ROASByCampaignType()
	bookingsData := r.engine.BookingsByCampaignType()

	prospectingROAS := pointValue(roasData, string(models.CampaignProspecting))
	reactivationROAS := pointValue(roasData, string(models.CampaignReactivation))
	ratio := 0.0
	if prospectingROAS > 0 {
		ratio = reactivationROAS / prospectingROAS
	}

	opening := r.phrases.pick(analysisOpenings)
	followUp := r.phrases.pick(campaignFollowUps)

	metrics := []models.Metric{
		{Label: "Prospecting ROAS", Value: fmt.Sprintf("%.1fx", prospectingROAS)},
		{Label: "Reactivation ROAS", Value: fmt.Sprintf("%.1fx", reactivationROAS)},
		{Label: "Prospecting Bookings", Value: fmt.Sprintf("%d", int(pointValue(bookingsData, string(models.CampaignProspecting))))},
		{Label: "Reactivation Bookings", Value: fmt.Sprintf("%d", int(pointValue(bookingsData, string(models.CampaignReactivation))))},
	}

	return newMessage(
		fmt.Sprintf("%s Reactivation is crushing it — %.1fx more efficient than Prospecting. That makes sense: you're reaching people who already know and like you.\n\nFor high-demand sail dates, lean into Reactivation to maximize revenue per dollar spent.%s",
			opening, ratio, followUp),
		&models.Visualization{Type: models.VizMetrics, Metrics: metrics},
		[]models.ActionButton{
			{ID: "create-reactivation", Label: "Create Reactivation Audience", Icon: "users", Action: models.ActionCreateAudience},
		})
}

func (r *Router) handleFunnel(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	ct := campaignTypeFromQuery(rawQuery)

	var stages []models.FunnelStage
	var scope string
	if ct != "" {
		stages = r.engine.FunnelByCampaignType(ct)
		scope = strings.ToLower(string(ct)) + " campaigns"
	} else {
		stages = r.engine.Funnel("")
		scope = "all campaigns"
	}

	visitRate := 0.0
	if stages[0].ConversionRate != nil {
		visitRate = *stages[0].ConversionRate
	}
	bookRate := 0.0
	if stages[1].ConversionRate != nil {
		bookRate = *stages[1].ConversionRate
	}

	return newMessage(
		fmt.Sprintf("Across %s, %s impressions produced %s site visits (%.1f%%) and %s bookings (%.2f%% of visits). Retargeting converts visitors at the highest rate since those audiences already showed intent.",
			scope, commaInt(stages[0].Count), commaInt(stages[1].Count), visitRate, commaInt(stages[2].Count), bookRate),
		&models.Visualization{Type: models.VizFunnel, Title: "Campaign Funnel", Funnel: stages},
		[]models.ActionButton{
			{ID: "export-funnel", Label: "Export CSV", Icon: "download", Action: models.ActionExportCSV},
		})
}

func (r *Router) handleLoyaltyTiers(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	data := r.engine.CustomersByLoyaltyTier()
	var total float64
	for _, p := range data {
		total += p.Value
	}

	return newMessage(
		fmt.Sprintf("Your customer base of %d is primarily Bronze tier (%d), with %d Platinum members representing your most valuable segment. Consider tier-specific campaigns to drive upgrades.",
			int(total), int(data[0].Value), int(data[3].Value)),
		&models.Visualization{Type: models.VizBar, Title: "Customers by Loyalty Tier", Points: data},
		[]models.ActionButton{
			{ID: "export-tiers", Label: "Export CSV", Icon: "download", Action: models.ActionExportCSV},
		})
}

func (r *Router) handleCustomerSegments(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	data := r.engine.CustomersBySegment()

	return newMessage(
		fmt.Sprintf("Your customer base includes %d Active customers and %d VIPs. The %d Lapsed customers represent a significant reactivation opportunity.",
			int(pointValue(data, string(models.SegmentActive))),
			int(pointValue(data, string(models.SegmentVIP))),
			int(pointValue(data, string(models.SegmentLapsed)))),
		&models.Visualization{Type: models.VizBar, Title: "Customers by Segment", Points: data},
		[]models.ActionButton{
			{ID: "target-lapsed", Label: "Target Lapsed Segment", Icon: "users", Action: models.ActionCreateAudience},
		})
}

func (r *Router) handleChurnRisk(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	churnCustomers := r.engine.ChurnRiskCustomers(query.ChurnMonths)
	highValueLapsed := r.engine.HighValueLapsedCustomers()

	opening := r.phrases.pick(concernOpenings)
	followUp := r.phrases.pick(churnFollowUps)

	rows := make([]map[string]any, 0, 10)
	for i, c := range churnCustomers {
		if i == 10 {
			break
		}
		rows = append(rows, map[string]any{
			"name":                c.FullName(),
			"loyalty_tier":        c.LoyaltyTier,
			"lifetime_value":      c.LifetimeValue,
			"last_cruise_date":    c.LastCruiseDate.Format("2006-01-02"),
			"preferred_itinerary": c.PreferredItinerary,
		})
	}

	table := &models.TableData{
		Columns: []models.TableColumn{
			{Key: "name", Label: "Customer"},
			{Key: "loyalty_tier", Label: "Tier"},
			{Key: "lifetime_value", Label: "LTV"},
			{Key: "last_cruise_date", Label: "Last Cruise"},
			{Key: "preferred_itinerary", Label: "Preferred Itinerary"},
		},
		Rows: rows,
	}

	return newMessage(
		fmt.Sprintf("%s I found %d customers who haven't sailed in 18+ months but have solid lifetime value — they're at risk of churning. %d of them have LTV over $15k, so they're worth prioritizing.\n\nA personalized win-back campaign based on their preferred itinerary could bring them back.%s",
			opening, len(churnCustomers), len(highValueLapsed), followUp),
		&models.Visualization{Type: models.VizTable, Title: "High Churn Risk Customers", Table: table},
		[]models.ActionButton{
			{
				ID:      "create-winback",
				Label:   fmt.Sprintf("Create Win-Back Audience (%d)", len(churnCustomers)),
				Icon:    "users",
				Action:  models.ActionCreateAudience,
				Payload: map[string]any{"count": len(churnCustomers)},
			},
			{ID: "export-churn", Label: "Export Full List", Icon: "download", Action: models.ActionExportCSV},
		})
}

func (r *Router) handleAudienceBuild(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	preview := r.engine.ReactivationAudience()
	audience := r.engine.FilterCustomers(preview.Criteria)

	roi := query.ProjectROI(audience, models.CampaignReactivation)
	rec := recommend.Recommend(audience)
	preview.ROIProjection = &roi
	preview.Recommendation = &rec

	return newMessage(
		fmt.Sprintf("I built a win-back audience of %d lapsed customers with $8k+ lifetime value. At the historical %.1f%% reactivation response rate, a direct mail drop projects $%s in realistic revenue against $%s in cost — roughly %.1fx ROI.\n\nRecommended play: %s via %s.",
			preview.Count, roi.HistoricalResponseRate*100, commaInt(int(roi.RealisticRevenue)), commaInt(int(roi.EstimatedCost)), roi.EstimatedROI,
			rec.CampaignType, rec.Channel),
		&models.Visualization{Type: models.VizAudiencePreview, Title: "Win-Back Audience", Audience: &preview},
		[]models.ActionButton{
			{ID: "launch-winback", Label: "Launch Campaign", Icon: "rocket", Action: models.ActionLaunchCampaign},
			{ID: "refine-winback", Label: "Refine Audience", Icon: "filter", Action: models.ActionRefineAudience},
		})
}

func (r *Router) handleLTVByChannel(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	data := r.engine.LTVByAcquisitionChannel()
	best := maxPoint(data)

	return newMessage(
		fmt.Sprintf("Customers acquired via %s have the highest average LTV at $%s. This suggests %s attracts higher-intent prospects who convert to repeat cruisers.",
			best.Label, commaInt(int(best.Value)), best.Label),
		&models.Visualization{Type: models.VizBar, Title: "Average LTV by Acquisition Channel", Points: data},
		[]models.ActionButton{
			{ID: "export-ltv", Label: "Export CSV", Icon: "download", Action: models.ActionExportCSV},
		})
}

func (r *Router) handleRevenueOverTime(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	data := r.engine.RevenueOverTime(12)

	points := make([]models.ChartPoint, len(data))
	for i, p := range data {
		points[i] = models.ChartPoint{Label: p.Label, Value: math.Round(p.Value / 1000)}
	}

	return newMessage(
		"Revenue shows strong seasonality with peaks in Q4 and Q1, driven by holiday booking and new year promotions. The trend is positive year-over-year.",
		&models.Visualization{Type: models.VizLine, Title: "Monthly Revenue (Last 12 Months)", Points: points},
		[]models.ActionButton{
			{ID: "export-revenue-trend", Label: "Export CSV", Icon: "download", Action: models.ActionExportCSV},
		})
}

func (r *Router) handleBookingsOverTime(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	data := r.engine.BookingsOverTime(12)

	return newMessage(
		"Booking volume tracks closely with revenue, with consistent performance across most months. Q4 campaigns drove a notable spike in booking activity.",
		&models.Visualization{Type: models.VizLine, Title: "Monthly Bookings (Last 12 Months)", Points: data},
		[]models.ActionButton{
			{ID: "export-booking-trend", Label: "Export CSV", Icon: "download", Action: models.ActionExportCSV},
		})
}

func (r *Router) handleWhyQuestion(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	q := strings.ToLower(rawQuery)

	if strings.Contains(q, "alaska") && (strings.Contains(q, "underperform") || strings.Contains(q, "low")) {
		return newMessage(
			"Alaska's lower ROAS can be attributed to several factors:\n\n"+
				"1. **Campaign Mix**: Alaska campaigns ran 60% Prospecting vs 40% Reactivation. Prospecting typically delivers 0.6x lower ROAS.\n\n"+
				"2. **Cabin Mix**: Alaska sailings are 45% Inside cabins, which have the lowest AOV ($2,400 avg vs $4,200 for Balcony).\n\n"+
				"3. **Seasonality**: Alaska is a seasonal destination (May-Sept), limiting campaign optimization windows.\n\n"+
				"**Recommendation**: Shift Alaska budget toward Reactivation campaigns targeting past Alaska cruisers, and promote Balcony cabin upgrades.",
			nil,
			[]models.ActionButton{
				{ID: "alaska-reactivation", Label: "Create Alaska Reactivation Audience", Icon: "users", Action: models.ActionCreateAudience},
			})
	}

	if strings.Contains(q, "mediterranean") && strings.Contains(q, "outperform") {
		return newMessage(
			"Mediterranean's strong performance is driven by:\n\n"+
				"1. **Premium Cabin Mix**: 40% of Mediterranean bookings are Balcony or Suite, vs 25% for other itineraries.\n\n"+
				"2. **Reactivation Success**: Q4 2024 Mediterranean Reactivation campaign achieved 5.2x ROAS by targeting customers with Mediterranean preference.\n\n"+
				"3. **Higher AOV**: Mediterranean average order value is $5,100—22% above portfolio average.\n\n"+
				"**Recommendation**: Expand Mediterranean Reactivation campaigns and test Suite-focused creative.",
			nil,
			[]models.ActionButton{
				{ID: "med-suite", Label: "Create Mediterranean Suite Audience", Icon: "users", Action: models.ActionCreateAudience},
			})
	}

	return newMessage(
		"To provide a detailed explanation, I'd need to know which specific metric or comparison you'd like me to analyze. Try asking:\n\n"+
			"• \"Why is Alaska underperforming?\"\n"+
			"• \"Why does Reactivation outperform Prospecting?\"\n"+
			"• \"Why did Mediterranean revenue increase?\"",
		nil, nil)
}

func (r *Router) handleHighValueCustomers(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	metrics := r.engine.Overall()

	return newMessage(
		fmt.Sprintf("Your %d active customers (including VIPs) represent your most engaged segment. VIP customers average 8+ cruises and $50k+ lifetime value.",
			metrics.ActiveCustomers),
		&models.Visualization{Type: models.VizMetrics, Metrics: []models.Metric{
			{Label: "Total Customers", Value: fmt.Sprintf("%d", metrics.TotalCustomers)},
			{Label: "Active + VIP", Value: fmt.Sprintf("%d", metrics.ActiveCustomers)},
			{Label: "Avg Order Value", Value: "$" + commaInt(int(metrics.AverageOrderValue))},
			{Label: "Overall ROAS", Value: fmt.Sprintf("%gx", metrics.OverallROAS)},
		}},
		[]models.ActionButton{
			{ID: "export-vip", Label: "Export VIP List", Icon: "download", Action: models.ActionExportCSV},
		})
}

func (r *Router) handleChannelQuality(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	scorecard := dataset.ChannelQualityScorecard()

	rows := make([]map[string]any, 0, len(scorecard))
	for _, c := range scorecard {
		rows = append(rows, map[string]any{
			"channel":        c.Channel,
			"elite_rate":     c.EliteRate,
			"junk_rate":      c.JunkRate,
			"total_visitors": c.TotalVisitors,
			"verdict":        c.Verdict,
		})
	}

	table := &models.TableData{
		Columns: []models.TableColumn{
			{Key: "channel", Label: "Channel"},
			{Key: "elite_rate", Label: "Elite %"},
			{Key: "junk_rate", Label: "Junk %"},
			{Key: "total_visitors", Label: "Visitors"},
			{Key: "verdict", Label: "Verdict"},
		},
		Rows: rows,
	}

	return newMessage(
		"Channel quality varies enormously once you score visitors by buyer propensity. Google Search delivers 40.1% elite visitors across 13.7M sessions — nearly matching the 42.3% benchmark set by Email to your own CRM list. At the other end, Pinterest traffic is 95.2% junk and only 1.7% elite; it looks cheap on a CPC report and is nearly worthless on a propensity report.\n\nRecommendation: kill Pinterest spend, cut Programmatic Display, and reallocate to Search.",
		&models.Visualization{Type: models.VizTable, Title: "Channel Quality Scorecard", Table: table},
		[]models.ActionButton{
			{ID: "export-scorecard", Label: "Export CSV", Icon: "download", Action: models.ActionExportCSV},
		})
}

func (r *Router) handleEliteLeakage(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	leakage := dataset.EliteHouseholdLeakage()

	rows := make([]map[string]any, 0, len(leakage))
	var mismatched int
	for _, l := range leakage {
		rows = append(rows, map[string]any{
			"destination":       l.Destination,
			"elite_households":  l.EliteHouseholds,
			"propensity_score":  l.AvgPropensityScore,
			"creative_strategy": l.CreativeStrategy,
			"demand_value":      l.EstimatedDemandValue,
		})
		if strings.Contains(l.CreativeStrategy, "Mismatch") {
			mismatched += l.EliteHouseholds
		}
	}

	table := &models.TableData{
		Columns: []models.TableColumn{
			{Key: "destination", Label: "Destination"},
			{Key: "elite_households", Label: "Elite Households"},
			{Key: "propensity_score", Label: "Avg Propensity"},
			{Key: "creative_strategy", Label: "Creative Served"},
			{Key: "demand_value", Label: "Est. Demand Value"},
		},
		Rows: rows,
	}

	return newMessage(
		fmt.Sprintf("%s elite households are browsing Asia and Australia itineraries — your highest propensity scores in the entire file at 6.18 — and every one of them is being served generic Caribbean creative because no Asia or Australia mailer exists. That mismatch historically cuts retention by more than half.\n\nThis is the single largest untapped opportunity in the program.",
			commaInt(mismatched)),
		&models.Visualization{Type: models.VizTable, Title: "Elite Household Leakage", Table: table},
		[]models.ActionButton{
			{ID: "create-exotic", Label: "Create Exotic Itinerary Audience", Icon: "users", Action: models.ActionCreateAudience},
		})
}

func (r *Router) handleRelevancePremium(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	premium := dataset.RelevancePremiumFinding()

	return newMessage(
		fmt.Sprintf("Visitors who receive creative matched to the destination they browsed spend $%s on average versus $%s for mismatched creative — a $%s premium, or %g%% higher AOV. Relevance is not cosmetic; it changes what people buy.",
			commaInt(int(premium.MatchedCreativeAOV)), commaInt(int(premium.MismatchedCreativeAOV)),
			commaInt(int(premium.AOVLift)), premium.AOVLiftPercentage),
		&models.Visualization{Type: models.VizMetrics, Metrics: []models.Metric{
			{Label: "Matched Creative AOV", Value: "$" + commaInt(int(premium.MatchedCreativeAOV))},
			{Label: "Mismatched Creative AOV", Value: "$" + commaInt(int(premium.MismatchedCreativeAOV))},
			{Label: "AOV Lift", Value: "+$" + commaInt(int(premium.AOVLift))},
			{Label: "Lift %", Value: fmt.Sprintf("+%g%%", premium.AOVLiftPercentage)},
		}},
		nil)
}

func (r *Router) handleGuardrail(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	effects := dataset.GuardrailEffects()

	rows := make([]map[string]any, 0, len(effects))
	for _, g := range effects {
		rows = append(rows, map[string]any{
			"destination":     g.Destination,
			"matched_card":    g.RetentionWithMatchedCard,
			"generic_card":    g.RetentionWithGenericCard,
			"retention_drop":  g.RetentionDrop,
			"loss_per_switch": g.LossPerSwitch,
		})
	}

	table := &models.TableData{
		Columns: []models.TableColumn{
			{Key: "destination", Label: "Destination"},
			{Key: "matched_card", Label: "Retention (Matched)"},
			{Key: "generic_card", Label: "Retention (Generic)"},
			{Key: "retention_drop", Label: "Drop (pts)"},
			{Key: "loss_per_switch", Label: "Loss per Switch"},
		},
		Rows: rows,
	}

	hawaii := effects[0]
	return newMessage(
		fmt.Sprintf("When a Hawaii browser gets a Hawaii card, %g%% stay on a Hawaii booking. Hand them a generic card and retention collapses to %g%% — and each switcher books roughly $%s less. Mismatched creative doesn't just lose the sale, it actively downgrades it. Treat creative match as a guardrail, not an optimization.",
			hawaii.RetentionWithMatchedCard, hawaii.RetentionWithGenericCard, commaInt(int(hawaii.LossPerSwitch))),
		&models.Visualization{Type: models.VizTable, Title: "Creative Guardrail Effect", Table: table},
		nil)
}

func (r *Router) handleDestinationQuality(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	report := dataset.DestinationQualityReport()

	worst := report[0]
	for _, d := range report {
		if d.CurrentMatchRate < worst.CurrentMatchRate {
			worst = d
		}
	}

	rows := make([]map[string]any, 0, len(report))
	for _, d := range report {
		rows = append(rows, map[string]any{
			"destination":       d.Destination,
			"elite_households":  commaInt(d.EliteHouseholds),
			"propensity":        d.AvgPropensityScore,
			"matched_retention": d.RetentionWithMatchedCreative,
			"generic_retention": d.RetentionWithGenericCreative,
			"match_rate":        d.CurrentMatchRate,
		})
	}

	table := &models.TableData{
		Columns: []models.TableColumn{
			{Key: "destination", Label: "Destination"},
			{Key: "elite_households", Label: "Elite Households"},
			{Key: "propensity", Label: "Avg Propensity"},
			{Key: "matched_retention", Label: "Retention (Matched)"},
			{Key: "generic_retention", Label: "Retention (Generic)"},
			{Key: "match_rate", Label: "Match Rate %"},
		},
		Rows: rows,
	}

	return newMessage(
		fmt.Sprintf("Creative match rate varies sharply by destination. %s is the weakest at %g%% matched creative, and its retention gap is the widest — %g%% with matched cards versus %g%% with generic ones. Every destination below ~60%% match rate is leaving high-propensity households on the table.",
			worst.Destination, worst.CurrentMatchRate,
			worst.RetentionWithMatchedCreative, worst.RetentionWithGenericCreative),
		&models.Visualization{Type: models.VizTable, Title: "Destination Creative Quality", Table: table},
		nil)
}

func (r *Router) handleDarkSocial(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	finding := dataset.DarkSocialFinding()

	return newMessage(
		fmt.Sprintf("%s visitors arrive with no usable referrer — the \"dark social\" bucket. Propensity scoring shows %.1f%% of them are junk and only %.1f%% elite, so the unclassified pool skews heavily toward low-quality social traffic rather than hidden gold. Don't chase it with spend; let Search capture the intent it produces.",
			commaInt(finding.UnclassifiedVisitors), finding.JunkRate, finding.EliteRate),
		&models.Visualization{Type: models.VizMetrics, Metrics: []models.Metric{
			{Label: "Unclassified Visitors", Value: commaInt(finding.UnclassifiedVisitors)},
			{Label: "Junk Rate", Value: fmt.Sprintf("%.1f%%", finding.JunkRate)},
			{Label: "Elite Rate", Value: fmt.Sprintf("%.1f%%", finding.EliteRate)},
		}},
		nil)
}

func (r *Router) handleOverallMetrics(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	metrics := r.engine.Overall()

	return newMessage(
		fmt.Sprintf("Here's your campaign performance summary. Total attributed revenue is $%.1fM from %d mail-attributed bookings, delivering %gx overall ROAS.",
			metrics.TotalRevenue/1000000, metrics.AttributedBookings, metrics.OverallROAS),
		&models.Visualization{Type: models.VizMetrics, Metrics: []models.Metric{
			{Label: "Total Bookings", Value: fmt.Sprintf("%d", metrics.TotalBookings)},
			{Label: "Attributed Bookings", Value: fmt.Sprintf("%d", metrics.AttributedBookings)},
			{Label: "Total Revenue", Value: fmt.Sprintf("$%.1fM", metrics.TotalRevenue/1000000)},
			{Label: "Ad Spend", Value: fmt.Sprintf("$%.0fk", metrics.TotalSpend/1000)},
			{Label: "Overall ROAS", Value: fmt.Sprintf("%gx", metrics.OverallROAS)},
			{Label: "Avg Order Value", Value: "$" + commaInt(int(metrics.AverageOrderValue))},
		}},
		[]models.ActionButton{
			{ID: "export-summary", Label: "Export Summary", Icon: "download", Action: models.ActionExportCSV},
			{ID: "schedule-summary", Label: "Schedule Weekly Report", Icon: "calendar", Action: models.ActionScheduleReport},
		})
}

func (r *Router) handleBreakdownByCabin(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	data := r.engine.ROASByCabinType()

	return newMessage(
		fmt.Sprintf("Breaking down by cabin type: Suite cabins lead with %.1fx ROAS, though they represent lower volume. Balcony offers the best balance of volume and return.",
			pointValue(data, string(models.CabinSuite))),
		&models.Visualization{Type: models.VizBar, Title: "ROAS by Cabin Type", Points: data},
		[]models.ActionButton{
			{ID: "export-cabin-breakdown", Label: "Export CSV", Icon: "download", Action: models.ActionExportCSV},
		})
}

func (r *Router) handleBreakdownByItinerary(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	data := r.engine.ROASByItinerary()

	return newMessage(
		"Breaking down by itinerary: Caribbean and Mediterranean are your top performers, while Alaska lags behind due to seasonal constraints and cabin mix.",
		&models.Visualization{Type: models.VizBar, Title: "ROAS by Itinerary", Points: data},
		[]models.ActionButton{
			{ID: "export-itinerary-breakdown", Label: "Export CSV", Icon: "download", Action: models.ActionExportCSV},
		})
}

func (r *Router) handleExcludeItinerary(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	return newMessage(
		"I've excluded that itinerary from the analysis. In a production system, this would dynamically filter the previous results. For this prototype, try asking a new question with the specific itineraries you want to include.",
		nil, nil)
}

func (r *Router) handleYoYComparison(rawQuery string, ctx models.QueryContext) models.ChatMessage {
	return newMessage(
		"Year-over-year comparison: Q1 2025 bookings are tracking 18% ahead of Q1 2024, with revenue up 22% due to stronger Suite and Balcony mix. Reactivation campaigns are driving the majority of this growth.\n\n*Note: Full YoY comparison requires 2023 data which is not included in this prototype dataset.*",
		&models.Visualization{Type: models.VizMetrics, Metrics: []models.Metric{
			{Label: "YoY Bookings", Value: "+18%", Change: change(18)},
			{Label: "YoY Revenue", Value: "+22%", Change: change(22)},
			{Label: "YoY ROAS", Value: "+0.3x", Change: change(8)},
			{Label: "YoY AOV", Value: "+4%", Change: change(4)},
		}},
		nil)
}

func change(v float64) *float64 { return &v }

func maxPoint(points []models.ChartPoint) models.ChartPoint {
	best := points[0]
	for _, p := range points {
		if p.Value > best.Value {
			best = p
		}
	}
	return best
}

func pointValue(points []models.ChartPoint, label string) float64 {
	for _, p := range points {
		if p.Label == label {
			return p.Value
		}
	}
	return 0
}

// commaInt renders 1234567 as "1,234,567".
func commaInt(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String()
}

func campaignTypeFromQuery(rawQuery string) models.CampaignType {
	q := strings.ToLower(rawQuery)
	switch {
	case strings.Contains(q, "prospecting"):
		return models.CampaignProspecting
	case strings.Contains(q, "reactivation"):
		return models.CampaignReactivation
	case strings.Contains(q, "retargeting"):
		return models.CampaignRetargeting
	}
	return ""
}
