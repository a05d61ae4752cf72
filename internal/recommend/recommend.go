package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cruise_insights/backend/internal/models"
	"github.com/cruise_insights/backend/internal/query"
)

const (
	// SmallAudienceThreshold forces low confidence below this size.
	SmallAudienceThreshold = 50

	highLTVThreshold    = 12000
	premiumLTVThreshold = 15000
	lowLTVThreshold     = 5000
	emailLTVCeiling     = 8000
	responseRateCeiling = 0.05
)

// Profile summarizes the descriptive statistics of a filtered audience.
type Profile struct {
	AvgLTV            float64
	AvgCruises        float64
	DominantItinerary models.Itinerary
	ItineraryPct      int
	DominantCabin     models.CabinType
	CabinPct          int
	DominantTier      models.LoyaltyTier
	TierPct           int
	LapsedPct         int
	VIPPct            int
}

// Analyze computes the audience profile. Empty audiences get neutral
// defaults so downstream decisions stay total.
func Analyze(customers []models.Customer) Profile {
	if len(customers) == 0 {
		return Profile{
			DominantItinerary: models.ItineraryCaribbean,
			DominantCabin:     models.CabinBalcony,
			DominantTier:      models.TierBronze,
		}
	}

	n := float64(len(customers))
	var ltvSum, cruiseSum float64
	itineraryCounts := map[models.Itinerary]int{}
	cabinCounts := map[models.CabinType]int{}
	tierCounts := map[models.LoyaltyTier]int{}
	var lapsed, vip int

	for _, c := range customers {
		ltvSum += c.LifetimeValue
		cruiseSum += float64(c.TotalCruises)
		itineraryCounts[c.PreferredItinerary]++
		cabinCounts[c.PreferredCabinType]++
		tierCounts[c.LoyaltyTier]++
		if c.Segment == models.SegmentLapsed {
			lapsed++
		}
		if c.Segment == models.SegmentVIP {
			vip++
		}
	}

	itinerary, itineraryCount := dominant(itineraryCounts, models.Itineraries)
	cabin, cabinCount := dominant(cabinCounts, models.CabinTypes)
	tier, tierCount := dominant(tierCounts, models.LoyaltyTiers)

	return Profile{
		AvgLTV:            ltvSum / n,
		AvgCruises:        cruiseSum / n,
		DominantItinerary: itinerary,
		ItineraryPct:      pct(itineraryCount, len(customers)),
		DominantCabin:     cabin,
		CabinPct:          pct(cabinCount, len(customers)),
		DominantTier:      tier,
		TierPct:           pct(tierCount, len(customers)),
		LapsedPct:         pct(lapsed, len(customers)),
		VIPPct:            pct(vip, len(customers)),
	}
}

// Recommend derives a campaign plan for the audience. Fully deterministic:
// the same customer list always yields the same recommendation.
func Recommend(customers []models.Customer) models.CampaignRecommendation {
	profile := Analyze(customers)

	campaignType := decideCampaignType(profile)
	channel := decideChannel(profile, campaignType)

	return models.CampaignRecommendation{
		CampaignType:         campaignType,
		Channel:              channel,
		Messaging:            buildMessaging(profile),
		Rationale:            buildRationale(profile, campaignType),
		ExpectedResponseRate: expectedResponseRate(profile, campaignType, channel),
		Confidence:           decideConfidence(profile, len(customers)),
	}
}

func decideCampaignType(p Profile) models.CampaignType {
	if p.LapsedPct > 50 {
		return models.CampaignReactivation
	}
	if p.VIPPct > 30 {
		return models.CampaignReactivation
	}
	if p.AvgCruises < 2 && p.AvgLTV < lowLTVThreshold {
		return models.CampaignProspecting
	}
	return models.CampaignRetargeting
}

func decideChannel(p Profile, campaignType models.CampaignType) models.MarketingChannel {
	if p.AvgLTV > highLTVThreshold {
		return models.ChannelDirectMail
	}
	if campaignType == models.CampaignReactivation {
		return models.ChannelDirectMail
	}
	if campaignType == models.CampaignRetargeting && p.AvgLTV < emailLTVCeiling {
		return models.ChannelEmail
	}
	return models.ChannelDirectMail
}

func expectedResponseRate(p Profile, campaignType models.CampaignType, channel models.MarketingChannel) float64 {
	rate := query.ResponseRates[campaignType]

	if channel == models.ChannelEmail {
		rate *= 0.8
	}
	if p.AvgLTV > premiumLTVThreshold {
		rate *= 1.2
	}
	if p.VIPPct > 20 {
		rate *= 1.15
	}
	if p.AvgCruises > 4 {
		rate *= 1.1
	}

	if rate > responseRateCeiling {
		rate = responseRateCeiling
	}
	return rate
}

func decideConfidence(p Profile, audienceSize int) models.Confidence {
	if audienceSize < SmallAudienceThreshold {
		return models.ConfidenceLow
	}
	if p.ItineraryPct > 60 && p.TierPct > 50 {
		return models.ConfidenceHigh
	}
	if p.AvgLTV > highLTVThreshold && audienceSize > 100 {
		return models.ConfidenceHigh
	}
	return models.ConfidenceMedium
}

var itineraryImagery = map[models.Itinerary]string{
	models.ItineraryCaribbean:     "tropical getaway imagery with beach and island highlights",
	models.ItineraryAlaska:        "wildlife and glacier scenery with adventure experiences",
	models.ItineraryEurope:        "cultural immersion and historic port destinations",
	models.ItineraryMediterranean: "coastal elegance with food and wine experiences",
}

func buildMessaging(p Profile) string {
	var parts []string
	parts = append(parts, "Highlight "+itineraryImagery[p.DominantItinerary])

	switch p.DominantCabin {
	case models.CabinInside, models.CabinOceanView:
		parts = append(parts, "Include upgrade offers to Balcony or Suite")
	case models.CabinBalcony:
		parts = append(parts, "Feature suite upgrade incentives")
	}

	if p.TierPct > 40 && (p.DominantTier == models.TierGold || p.DominantTier == models.TierPlatinum) {
		parts = append(parts, "Emphasize exclusive loyalty benefits and recognition")
	}
	if p.LapsedPct > 50 {
		parts = append(parts, `"We miss you" reactivation theme with limited-time offer`)
	}
	if p.VIPPct > 20 {
		parts = append(parts, "Personalized concierge-level invitation")
	}

	return strings.Join(parts, ". ") + "."
}

func buildRationale(p Profile, campaignType models.CampaignType) string {
	var reasons []string

	switch campaignType {
	case models.CampaignReactivation:
		reasons = append(reasons, fmt.Sprintf("%d%% of this segment has lapsed", p.LapsedPct))
		if p.AvgLTV > 10000 {
			reasons = append(reasons, fmt.Sprintf("high average LTV of $%d", int(p.AvgLTV+0.5)))
		}
		reasons = append(reasons, fmt.Sprintf("%.1f avg cruises indicates proven engagement", p.AvgCruises))
	case models.CampaignRetargeting:
		reasons = append(reasons, "Recent site engagement indicates active consideration")
		reasons = append(reasons, fmt.Sprintf("%d%% preference for %s", p.ItineraryPct, p.DominantItinerary))
	default:
		reasons = append(reasons, "Prospect profile matches high-value customer characteristics")
		if p.AvgLTV > 8000 {
			reasons = append(reasons, "Similar audiences have strong LTV potential")
		}
	}

	joined := strings.Join(reasons, "; ")
	return strings.ToUpper(joined[:1]) + joined[1:]
}

// dominant returns the most frequent key; order breaks ties so the result is
// stable across runs.
func dominant[T comparable](counts map[T]int, order []T) (T, int) {
	keys := make([]T, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	rank := map[T]int{}
	for i, k := range order {
		rank[k] = i
	}
	sort.SliceStable(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return rank[keys[i]] < rank[keys[j]]
	})
	best := keys[0]
	return best, counts[best]
}

func pct(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(float64(part)/float64(whole)*100 + 0.5)
}
