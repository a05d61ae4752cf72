package query

import "github.com/cruise_insights/backend/internal/models"

// Historical response rates per campaign type. Fixed benchmark figures.
var ResponseRates = map[models.CampaignType]float64{
	models.CampaignProspecting:  0.003,
	models.CampaignReactivation: 0.023,
	models.CampaignRetargeting:  0.015,
}

const (
	// AOV is estimated as a slice of lifetime value, assuming 2-3 cruises
	// per customer on average.
	ltvToAOVDivisor = 2.5
	// optimisticConversion is the best-case scenario rate.
	optimisticConversion = 0.10
	// costPerPiece is the all-in direct mail unit cost.
	costPerPiece = 0.30
)

// ProjectROI sizes a campaign against the given audience. All outputs are
// zero-safe: an empty audience yields zero revenue, cost and ROI.
func ProjectROI(audience []models.Customer, campaignType models.CampaignType) models.ROIProjection {
	size := len(audience)

	var avgLTV float64
	if size > 0 {
		var sum float64
		for _, c := range audience {
			sum += c.LifetimeValue
		}
		avgLTV = sum / float64(size)
	}
	avgOrderValue := float64(int(avgLTV/ltvToAOVDivisor + 0.5))

	responseRate, ok := ResponseRates[campaignType]
	if !ok {
		responseRate = ResponseRates[models.CampaignReactivation]
	}

	optimistic := float64(int(float64(size)*optimisticConversion*avgOrderValue + 0.5))
	realistic := float64(int(float64(size)*responseRate*avgOrderValue + 0.5))
	cost := float64(int(float64(size)*costPerPiece + 0.5))

	var roi float64
	if cost > 0 {
		roi = realistic / cost
	}

	return models.ROIProjection{
		AudienceSize:           size,
		AvgOrderValue:          avgOrderValue,
		HistoricalResponseRate: responseRate,
		OptimisticRevenue:      optimistic,
		RealisticRevenue:       realistic,
		EstimatedCost:          cost,
		EstimatedROI:           roi,
	}
}

// ROIForCriteria projects against the full filtered set, not the preview
// sample.
func (e *Engine) ROIForCriteria(criteria models.AudienceCriteria, campaignType models.CampaignType) models.ROIProjection {
	return ProjectROI(e.FilterCustomers(criteria), campaignType)
}
