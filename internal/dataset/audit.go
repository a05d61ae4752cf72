package dataset

import "github.com/cruise_insights/backend/internal/models"

// Visitor-intent audit figures. These are fixed narrative benchmarks, kept
// deliberately separate from the generated booking population; do not derive
// them from fixture aggregates.

func ChannelQualityScorecard() []models.ChannelQuality {
	return []models.ChannelQuality{
		{Channel: "Email (CRM)", EliteRate: 42.3, JunkRate: 8.1, TotalVisitors: 2400000, Verdict: "Benchmark"},
		{Channel: "Google Search", EliteRate: 40.1, JunkRate: 11.4, TotalVisitors: 13700000, Verdict: "High Performance"},
		{Channel: "Bing Search", EliteRate: 33.6, JunkRate: 14.9, TotalVisitors: 1900000, Verdict: "Good"},
		{Channel: "Paid Search", EliteRate: 24.8, JunkRate: 27.5, TotalVisitors: 8200000, Verdict: "Good"},
		{Channel: "Programmatic Display", EliteRate: 6.4, JunkRate: 71.2, TotalVisitors: 11500000, Verdict: "Waste/Cut"},
		{Channel: "TikTok", EliteRate: 3.1, JunkRate: 88.7, TotalVisitors: 4600000, Verdict: "Low Quality"},
		{Channel: "Pinterest", EliteRate: 1.7, JunkRate: 95.2, TotalVisitors: 3800000, Verdict: "Waste/Kill"},
	}
}

func DestinationQualityReport() []models.DestinationQuality {
	return []models.DestinationQuality{
		{Destination: models.ItineraryCaribbean, EliteHouseholds: 412000, AvgPropensityScore: 3.92, RetentionWithMatchedCreative: 74, RetentionWithGenericCreative: 68, MatchedAOV: 5120, MismatchedAOV: 4480, CurrentMatchRate: 88},
		{Destination: models.ItineraryAlaska, EliteHouseholds: 168000, AvgPropensityScore: 4.35, RetentionWithMatchedCreative: 71, RetentionWithGenericCreative: 34, MatchedAOV: 5480, MismatchedAOV: 4210, CurrentMatchRate: 52},
		{Destination: models.ItineraryMediterranean, EliteHouseholds: 205000, AvgPropensityScore: 4.71, RetentionWithMatchedCreative: 76, RetentionWithGenericCreative: 41, MatchedAOV: 6240, MismatchedAOV: 4890, CurrentMatchRate: 61},
		{Destination: models.ItineraryHawaii, EliteHouseholds: 94000, AvgPropensityScore: 5.02, RetentionWithMatchedCreative: 70, RetentionWithGenericCreative: 15, MatchedAOV: 5870, MismatchedAOV: 3470, CurrentMatchRate: 38},
	}
}

func EliteHouseholdLeakage() []models.EliteHousehold {
	return []models.EliteHousehold{
		{Destination: models.ItineraryAsia, EliteHouseholds: 58420, AvgPropensityScore: 6.18, CreativeStrategy: "Generic/Caribbean (Mismatch)", EstimatedDemandValue: 289000000},
		{Destination: models.ItineraryAustralia, EliteHouseholds: 42733, AvgPropensityScore: 6.18, CreativeStrategy: "Generic/Caribbean (Mismatch)", EstimatedDemandValue: 212000000},
		{Destination: models.ItineraryHawaii, EliteHouseholds: 94000, AvgPropensityScore: 5.02, CreativeStrategy: "Matched", EstimatedDemandValue: 418000000},
	}
}

func RelevancePremiumFinding() models.RelevancePremium {
	return models.RelevancePremium{
		MatchedCreativeAOV:    5593,
		MismatchedCreativeAOV: 4723,
		AOVLift:               870,
		AOVLiftPercentage:     18,
	}
}

func GuardrailEffects() []models.GuardrailEffect {
	return []models.GuardrailEffect{
		{Destination: models.ItineraryHawaii, RetentionWithMatchedCard: 70, RetentionWithGenericCard: 15, RetentionDrop: 55, RetainedAOV: 5870, SwitchedAOV: 3470, LossPerSwitch: 2400},
		{Destination: models.ItineraryAlaska, RetentionWithMatchedCard: 71, RetentionWithGenericCard: 34, RetentionDrop: 37, RetainedAOV: 5480, SwitchedAOV: 4210, LossPerSwitch: 1270},
		{Destination: models.ItineraryMediterranean, RetentionWithMatchedCard: 76, RetentionWithGenericCard: 41, RetentionDrop: 35, RetainedAOV: 6240, SwitchedAOV: 4890, LossPerSwitch: 1350},
	}
}

func DarkSocialFinding() models.DarkSocial {
	return models.DarkSocial{
		UnclassifiedVisitors: 19200000,
		JunkRate:             69.6,
		EliteRate:            4.2,
	}
}

// OverallROAS is the blended headline figure used in summaries. Like the
// per-category ROAS tables in the query package it is a benchmark constant,
// not a fixture aggregate.
const OverallROAS = 3.4
