package models

// Visitor-intent audit shapes. These back the "forensic audit" scorecards;
// the values themselves are fixed narrative constants held in the dataset
// package, not statistics over the generated population.

type ChannelQuality struct {
	Channel       string  `json:"channel"`
	EliteRate     float64 `json:"elite_rate"` // % of visitors above the buyer propensity threshold
	JunkRate      float64 `json:"junk_rate"`  // % below the bot/bounce threshold
	TotalVisitors int     `json:"total_visitors"`
	Verdict       string  `json:"verdict"`
}

type DestinationQuality struct {
	Destination                  Itinerary `json:"destination"`
	EliteHouseholds              int       `json:"elite_households"`
	AvgPropensityScore           float64   `json:"avg_propensity_score"`
	RetentionWithMatchedCreative float64   `json:"retention_with_matched_creative"`
	RetentionWithGenericCreative float64   `json:"retention_with_generic_creative"`
	MatchedAOV                   float64   `json:"matched_aov"`
	MismatchedAOV                float64   `json:"mismatched_aov"`
	CurrentMatchRate             float64   `json:"current_match_rate"`
}

type EliteHousehold struct {
	Destination          Itinerary `json:"destination"`
	EliteHouseholds      int       `json:"elite_households"`
	AvgPropensityScore   float64   `json:"avg_propensity_score"`
	CreativeStrategy     string    `json:"creative_strategy"`
	EstimatedDemandValue float64   `json:"estimated_demand_value"`
}

type RelevancePremium struct {
	MatchedCreativeAOV    float64 `json:"matched_creative_aov"`
	MismatchedCreativeAOV float64 `json:"mismatched_creative_aov"`
	AOVLift               float64 `json:"aov_lift"`
	AOVLiftPercentage     float64 `json:"aov_lift_percentage"`
}

type GuardrailEffect struct {
	Destination              Itinerary `json:"destination"`
	RetentionWithMatchedCard float64   `json:"retention_with_matched_card"`
	RetentionWithGenericCard float64   `json:"retention_with_generic_card"`
	RetentionDrop            float64   `json:"retention_drop"`
	RetainedAOV              float64   `json:"retained_aov"`
	SwitchedAOV              float64   `json:"switched_aov"`
	LossPerSwitch            float64   `json:"loss_per_switch"`
}

type DarkSocial struct {
	UnclassifiedVisitors int     `json:"unclassified_visitors"`
	JunkRate             float64 `json:"junk_rate"`
	EliteRate            float64 `json:"elite_rate"`
}
