package query

import (
	"testing"

	"github.com/cruise_insights/backend/internal/dataset"
	"github.com/cruise_insights/backend/internal/models"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(dataset.Build(dataset.Options{}))
}

func TestROASBenchmarks(t *testing.T) {
	e := testEngine(t)

	itinerary := e.ROASByItinerary()
	want := map[string]float64{
		"Caribbean":     4.2,
		"Mediterranean": 3.8,
		"Europe":        3.1,
		"Alaska":        2.4,
	}
	if len(itinerary) != 4 {
		t.Fatalf("expected 4 itinerary points, got %d", len(itinerary))
	}
	for _, p := range itinerary {
		if want[p.Label] != p.Value {
			t.Fatalf("ROAS for %s = %g, want %g", p.Label, p.Value, want[p.Label])
		}
	}

	cabins := e.ROASByCabinType()
	if cabins[0].Label != "Inside" || cabins[3].Label != "Suite" {
		t.Fatalf("cabin points out of order: %v", cabins)
	}
	if cabins[3].Value != 5.2 {
		t.Fatalf("Suite ROAS = %g, want 5.2", cabins[3].Value)
	}

	campaigns := e.ROASByCampaignType()
	if campaigns[1].Label != "Reactivation" || campaigns[1].Value != 4.4 {
		t.Fatalf("Reactivation ROAS point wrong: %+v", campaigns[1])
	}
}

func TestGroupedCountsSumToTotals(t *testing.T) {
	e := testEngine(t)

	var tierSum float64
	for _, p := range e.CustomersByLoyaltyTier() {
		tierSum += p.Value
	}
	if int(tierSum) != len(e.Data.Customers) {
		t.Fatalf("tier counts sum to %d, want %d", int(tierSum), len(e.Data.Customers))
	}

	var segSum float64
	for _, p := range e.CustomersBySegment() {
		segSum += p.Value
	}
	if int(segSum) != len(e.Data.Customers) {
		t.Fatalf("segment counts sum to %d, want %d", int(segSum), len(e.Data.Customers))
	}

	var bookSum float64
	for _, p := range e.BookingsByItinerary() {
		bookSum += p.Value
	}
	if int(bookSum) != len(e.Data.Bookings) {
		t.Fatalf("itinerary booking counts sum to %d, want %d", int(bookSum), len(e.Data.Bookings))
	}
}

func TestAverageOrderValueEmpty(t *testing.T) {
	if got := AverageOrderValue(nil); got != 0 {
		t.Fatalf("AOV of empty set = %g, want 0", got)
	}
}

func TestMonthlySeriesShape(t *testing.T) {
	e := testEngine(t)

	series := e.RevenueOverTime(12)
	if len(series) != 12 {
		t.Fatalf("expected 12 buckets, got %d", len(series))
	}
	// Window ends at the reference date: Feb 2025 back to Mar 2024.
	if series[11].Label != "Feb 25" {
		t.Fatalf("last bucket label = %q, want \"Feb 25\"", series[11].Label)
	}
	if series[0].Label != "Mar 24" {
		t.Fatalf("first bucket label = %q, want \"Mar 24\"", series[0].Label)
	}

	counts := e.BookingsOverTime(12)
	var total float64
	for _, p := range counts {
		if p.Value < 0 {
			t.Fatalf("negative bucket %+v", p)
		}
		total += p.Value
	}
	if total == 0 {
		t.Fatalf("expected some bookings inside the trailing year")
	}
}

func TestChurnRiskCustomers(t *testing.T) {
	e := testEngine(t)

	atRisk := e.ChurnRiskCustomers(ChurnMonths)
	if len(atRisk) == 0 {
		t.Fatalf("expected a non-empty churn list")
	}
	cutoff := e.Now.AddDate(0, -ChurnMonths, 0)
	for _, c := range atRisk {
		if !c.LastCruiseDate.Before(cutoff) {
			t.Fatalf("customer %s cruised after the cutoff", c.CustomerID)
		}
		if c.Segment == models.SegmentVIP {
			t.Fatalf("VIP customer %s in churn list", c.CustomerID)
		}
		if c.LifetimeValue <= 5000 {
			t.Fatalf("low-value customer %s in churn list (LTV %.0f)", c.CustomerID, c.LifetimeValue)
		}
	}
}

func TestHighValueLapsedSubsetOfLapsed(t *testing.T) {
	e := testEngine(t)

	for _, c := range e.HighValueLapsedCustomers() {
		if c.Segment != models.SegmentLapsed {
			t.Fatalf("customer %s is %s, want Lapsed", c.CustomerID, c.Segment)
		}
		if c.LifetimeValue <= 15000 {
			t.Fatalf("customer %s below the high-value bar", c.CustomerID)
		}
	}
}

func TestOverallMetrics(t *testing.T) {
	e := testEngine(t)

	m := e.Overall()
	if m.TotalBookings != len(e.Data.Bookings) {
		t.Fatalf("total bookings %d, want %d", m.TotalBookings, len(e.Data.Bookings))
	}
	if m.AttributedBookings >= m.TotalBookings {
		t.Fatalf("attributed %d should be below total %d (organic bookings exist)", m.AttributedBookings, m.TotalBookings)
	}
	if m.OverallROAS != 3.4 {
		t.Fatalf("overall ROAS %g, want 3.4", m.OverallROAS)
	}
	if m.TotalCustomers != len(e.Data.Customers) {
		t.Fatalf("total customers %d, want %d", m.TotalCustomers, len(e.Data.Customers))
	}
}
