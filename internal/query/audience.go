package query

import (
	"sort"

	"github.com/cruise_insights/backend/internal/models"
)

// SampleSize caps the preview sample; the reported count always reflects
// the full filtered set.
const SampleSize = 5

// FilterCustomers applies the criteria as an AND-combined progressive filter
// chain. Absent criteria are no-ops.
func (e *Engine) FilterCustomers(criteria models.AudienceCriteria) []models.Customer {
	filtered := make([]models.Customer, len(e.Data.Customers))
	copy(filtered, e.Data.Customers)

	if len(criteria.Segments) > 0 {
		filtered = keep(filtered, func(c models.Customer) bool {
			return containsSegment(criteria.Segments, c.Segment)
		})
	}
	if len(criteria.LoyaltyTiers) > 0 {
		filtered = keep(filtered, func(c models.Customer) bool {
			return containsTier(criteria.LoyaltyTiers, c.LoyaltyTier)
		})
	}
	if criteria.MinLTV != nil {
		filtered = keep(filtered, func(c models.Customer) bool {
			return c.LifetimeValue >= *criteria.MinLTV
		})
	}
	if criteria.MaxLTV != nil {
		filtered = keep(filtered, func(c models.Customer) bool {
			return c.LifetimeValue <= *criteria.MaxLTV
		})
	}
	if len(criteria.PreferredItinerary) > 0 {
		filtered = keep(filtered, func(c models.Customer) bool {
			return containsItinerary(criteria.PreferredItinerary, c.PreferredItinerary)
		})
	}
	if len(criteria.PreferredCabinType) > 0 {
		filtered = keep(filtered, func(c models.Customer) bool {
			return containsCabin(criteria.PreferredCabinType, c.PreferredCabinType)
		})
	}
	if criteria.ChurnRisk {
		cutoff := e.Now.AddDate(0, -ChurnMonths, 0)
		filtered = keep(filtered, func(c models.Customer) bool {
			return c.LastCruiseDate.Before(cutoff)
		})
	}
	if len(criteria.AcquisitionChannels) > 0 {
		filtered = keep(filtered, func(c models.Customer) bool {
			return containsChannel(criteria.AcquisitionChannels, c.AcquisitionChannel)
		})
	}
	return filtered
}

// BuildAudience filters the population and returns a preview: full count,
// best customers first, sample capped at SampleSize.
func (e *Engine) BuildAudience(criteria models.AudienceCriteria) models.AudiencePreview {
	filtered := e.FilterCustomers(criteria)
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].LifetimeValue > filtered[j].LifetimeValue
	})

	sample := filtered
	if len(sample) > SampleSize {
		sample = sample[:SampleSize]
	}

	return models.AudiencePreview{
		Criteria: criteria,
		Count:    len(filtered),
		Sample:   sample,
	}
}

func (e *Engine) ChurnRiskAudience() models.AudiencePreview {
	minLTV := 5000.0
	return e.BuildAudience(models.AudienceCriteria{
		Segments:  []models.CustomerSegment{models.SegmentLapsed},
		MinLTV:    &minLTV,
		ChurnRisk: true,
	})
}

func (e *Engine) HighValueLapsedAudience() models.AudiencePreview {
	minLTV := 15000.0
	return e.BuildAudience(models.AudienceCriteria{
		Segments: []models.CustomerSegment{models.SegmentLapsed},
		MinLTV:   &minLTV,
	})
}

func (e *Engine) ItineraryAudience(it models.Itinerary) models.AudiencePreview {
	return e.BuildAudience(models.AudienceCriteria{
		PreferredItinerary: []models.Itinerary{it},
		Segments:           []models.CustomerSegment{models.SegmentLapsed, models.SegmentActive},
	})
}

func (e *Engine) ReactivationAudience() models.AudiencePreview {
	minLTV := 8000.0
	return e.BuildAudience(models.AudienceCriteria{
		Segments:  []models.CustomerSegment{models.SegmentLapsed},
		MinLTV:    &minLTV,
		ChurnRisk: true,
	})
}

func keep(customers []models.Customer, pred func(models.Customer) bool) []models.Customer {
	out := customers[:0]
	for _, c := range customers {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}

func containsSegment(set []models.CustomerSegment, v models.CustomerSegment) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsTier(set []models.LoyaltyTier, v models.LoyaltyTier) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsItinerary(set []models.Itinerary, v models.Itinerary) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsCabin(set []models.CabinType, v models.CabinType) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsChannel(set []models.AcquisitionChannel, v models.AcquisitionChannel) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
