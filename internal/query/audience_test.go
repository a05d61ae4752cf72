package query

import (
	"testing"

	"github.com/cruise_insights/backend/internal/models"
)

func TestFilterCustomersProgressiveNarrowing(t *testing.T) {
	e := testEngine(t)

	all := e.FilterCustomers(models.AudienceCriteria{})
	if len(all) != len(e.Data.Customers) {
		t.Fatalf("empty criteria filtered %d of %d customers", len(all), len(e.Data.Customers))
	}

	lapsed := e.FilterCustomers(models.AudienceCriteria{
		Segments: []models.CustomerSegment{models.SegmentLapsed},
	})
	if len(lapsed) > len(all) {
		t.Fatalf("adding a criterion grew the audience")
	}

	minLTV := 10000.0
	narrowed := e.FilterCustomers(models.AudienceCriteria{
		Segments: []models.CustomerSegment{models.SegmentLapsed},
		MinLTV:   &minLTV,
	})
	if len(narrowed) > len(lapsed) {
		t.Fatalf("adding MinLTV grew the audience from %d to %d", len(lapsed), len(narrowed))
	}
	for _, c := range narrowed {
		if c.Segment != models.SegmentLapsed || c.LifetimeValue < minLTV {
			t.Fatalf("customer %s violates the combined criteria", c.CustomerID)
		}
	}
}

func TestBuildAudiencePreview(t *testing.T) {
	e := testEngine(t)

	preview := e.BuildAudience(models.AudienceCriteria{
		Segments: []models.CustomerSegment{models.SegmentLapsed},
	})

	if len(preview.Sample) > SampleSize {
		t.Fatalf("sample of %d exceeds cap %d", len(preview.Sample), SampleSize)
	}
	full := e.FilterCustomers(preview.Criteria)
	if preview.Count != len(full) {
		t.Fatalf("count %d does not reflect the full set of %d", preview.Count, len(full))
	}
	for i := 1; i < len(preview.Sample); i++ {
		if preview.Sample[i].LifetimeValue > preview.Sample[i-1].LifetimeValue {
			t.Fatalf("sample not sorted by LTV descending at index %d", i)
		}
	}
}

func TestFilterCustomersDoesNotMutateDataset(t *testing.T) {
	e := testEngine(t)

	before := e.Data.Customers[0]
	_ = e.BuildAudience(models.AudienceCriteria{})
	if e.Data.Customers[0] != before {
		t.Fatalf("dataset order mutated by audience build")
	}
}

func TestProjectROI(t *testing.T) {
	audience := []models.Customer{
		{CustomerID: "c1", LifetimeValue: 10000},
		{CustomerID: "c2", LifetimeValue: 15000},
	}

	p := ProjectROI(audience, models.CampaignReactivation)
	if p.AudienceSize != 2 {
		t.Fatalf("audience size %d, want 2", p.AudienceSize)
	}
	// avg LTV 12500 / 2.5
	if p.AvgOrderValue != 5000 {
		t.Fatalf("AOV %g, want 5000", p.AvgOrderValue)
	}
	if p.HistoricalResponseRate != 0.023 {
		t.Fatalf("response rate %g, want 0.023", p.HistoricalResponseRate)
	}
	if p.EstimatedCost <= 0 || p.EstimatedROI <= 0 {
		t.Fatalf("expected positive cost and ROI, got %g / %g", p.EstimatedCost, p.EstimatedROI)
	}
}

func TestProjectROIEmptyAudience(t *testing.T) {
	p := ProjectROI(nil, models.CampaignProspecting)
	if p.AudienceSize != 0 || p.RealisticRevenue != 0 || p.EstimatedCost != 0 || p.EstimatedROI != 0 {
		t.Fatalf("empty audience should project all zeros, got %+v", p)
	}
}

func TestProjectROIUnknownTypeFallsBack(t *testing.T) {
	audience := []models.Customer{{CustomerID: "c1", LifetimeValue: 5000}}
	p := ProjectROI(audience, models.CampaignType("Mystery"))
	if p.HistoricalResponseRate != ResponseRates[models.CampaignReactivation] {
		t.Fatalf("unknown campaign type should use the reactivation rate, got %g", p.HistoricalResponseRate)
	}
}

func TestFunnelShape(t *testing.T) {
	e := testEngine(t)

	stages := e.Funnel("")
	if len(stages) != 3 {
		t.Fatalf("expected 3 stages, got %d", len(stages))
	}
	if stages[0].Stage != "Impressions" || stages[2].Stage != "Bookings" {
		t.Fatalf("unexpected stage order: %+v", stages)
	}
	if stages[2].ConversionRate != nil {
		t.Fatalf("terminal stage must not carry a conversion rate")
	}
	for _, s := range stages[:2] {
		if s.ConversionRate == nil {
			t.Fatalf("stage %s missing conversion rate", s.Stage)
		}
		if *s.ConversionRate < 0 || *s.ConversionRate > 100 {
			t.Fatalf("stage %s rate %g out of range", s.Stage, *s.ConversionRate)
		}
	}
	if stages[0].Count < stages[1].Count || stages[1].Count < stages[2].Count {
		t.Fatalf("funnel should narrow: %+v", stages)
	}
}

func TestFunnelByCampaignTypeMultiplier(t *testing.T) {
	e := testEngine(t)

	retargeting := e.FunnelByCampaignType(models.CampaignRetargeting)
	prospecting := e.FunnelByCampaignType(models.CampaignProspecting)

	if retargeting[0].ConversionRate == nil || prospecting[0].ConversionRate == nil {
		t.Fatalf("missing visit rates")
	}
	// Retargeting audiences visit at 1.5x the baseline rate.
	if *retargeting[0].ConversionRate <= *prospecting[0].ConversionRate {
		t.Fatalf("retargeting visit rate %g should exceed prospecting %g",
			*retargeting[0].ConversionRate, *prospecting[0].ConversionRate)
	}
}

func TestFunnelUnknownCampaign(t *testing.T) {
	e := testEngine(t)

	stages := e.Funnel("camp-does-not-exist")
	for _, s := range stages {
		if s.Count != 0 {
			t.Fatalf("unknown campaign should produce an empty funnel, got %+v", stages)
		}
	}
}
