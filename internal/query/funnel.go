package query

import "github.com/cruise_insights/backend/internal/models"

const (
	// Digital spend converts to impressions at roughly $0.02 CPM.
	impressionsPerSpendDollar = 50
	// Baseline share of impressions that turn into site visits.
	siteVisitRate = 0.03
)

// visitRateMultipliers adjust the visit rate for warmer audiences.
var visitRateMultipliers = map[models.CampaignType]float64{
	models.CampaignRetargeting:  1.5,
	models.CampaignReactivation: 1.2,
	models.CampaignProspecting:  1.0,
}

// Funnel computes the impressions → site visits → bookings funnel across
// all campaigns, or a single campaign when campaignID is set. The terminal
// stage never carries a conversion rate.
func (e *Engine) Funnel(campaignID string) []models.FunnelStage {
	campaigns := e.Data.Campaigns
	if campaignID != "" {
		campaigns = nil
		if c, ok := e.Data.CampaignByID(campaignID); ok {
			campaigns = []models.Campaign{c}
		}
	}

	impressions := totalImpressions(campaigns)
	visits := int(float64(impressions) * siteVisitRate)

	var bookings int
	if campaignID != "" {
		for _, b := range e.Data.Bookings {
			if b.CampaignID == campaignID {
				bookings++
			}
		}
	} else {
		bookings = len(e.AttributedBookings())
	}

	return buildFunnel(impressions, visits, bookings)
}

// FunnelByCampaignType restricts the funnel to one campaign type and applies
// its visit-rate adjustment.
func (e *Engine) FunnelByCampaignType(ct models.CampaignType) []models.FunnelStage {
	var campaigns []models.Campaign
	for _, c := range e.Data.Campaigns {
		if c.CampaignType == ct {
			campaigns = append(campaigns, c)
		}
	}

	impressions := totalImpressions(campaigns)
	visits := int(float64(impressions) * siteVisitRate * visitRateMultipliers[ct])
	bookings := len(e.BookingsForCampaignType(ct))

	return buildFunnel(impressions, visits, bookings)
}

func totalImpressions(campaigns []models.Campaign) int {
	var mailVolume int
	var digitalSpend float64
	for _, c := range campaigns {
		mailVolume += c.MailVolume
		if c.Channel == models.ChannelDisplay || c.Channel == models.ChannelEmail {
			digitalSpend += c.AdSpend
		}
	}
	return mailVolume + int(digitalSpend*impressionsPerSpendDollar)
}

func buildFunnel(impressions, visits, bookings int) []models.FunnelStage {
	return []models.FunnelStage{
		{Stage: "Impressions", Count: impressions, ConversionRate: stageRate(visits, impressions)},
		{Stage: "Site Visits", Count: visits, ConversionRate: stageRate(bookings, visits)},
		{Stage: "Bookings", Count: bookings},
	}
}

func stageRate(next, current int) *float64 {
	rate := 0.0
	if current > 0 {
		rate = float64(next) / float64(current) * 100
	}
	return &rate
}
