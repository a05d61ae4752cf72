package dataset

import (
	"testing"
	"time"

	"github.com/cruise_insights/backend/internal/models"
)

// Generated cruise dates always fall on the first of a month, so whole-month
// arithmetic is exact.
func monthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

func TestBuildDeterministic(t *testing.T) {
	a := Build(Options{})
	b := Build(Options{})

	if len(a.Customers) != len(b.Customers) {
		t.Fatalf("customer counts differ: %d vs %d", len(a.Customers), len(b.Customers))
	}
	for i := range a.Customers {
		if a.Customers[i] != b.Customers[i] {
			t.Fatalf("customer %d differs between identical builds", i)
		}
	}
	if len(a.Bookings) != len(b.Bookings) {
		t.Fatalf("booking counts differ: %d vs %d", len(a.Bookings), len(b.Bookings))
	}
	for i := range a.Bookings {
		if a.Bookings[i] != b.Bookings[i] {
			t.Fatalf("booking %d differs between identical builds", i)
		}
	}
}

func TestBuildPopulation(t *testing.T) {
	d := Build(Options{})

	if len(d.Customers) != DefaultPopulation {
		t.Fatalf("expected %d customers, got %d", DefaultPopulation, len(d.Customers))
	}
	if len(d.Campaigns) != 18 {
		t.Fatalf("expected 18 campaigns, got %d", len(d.Campaigns))
	}
	if len(d.Bookings) == 0 {
		t.Fatalf("expected bookings to be generated")
	}
	if len(d.Insights) == 0 {
		t.Fatalf("expected insight catalog to be attached")
	}
}

func TestBuildCustomSeedDiffers(t *testing.T) {
	a := Build(Options{})
	b := Build(Options{CustomerSeed: 7})

	same := true
	for i := range a.Customers {
		if a.Customers[i] != b.Customers[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("different seeds produced identical customers")
	}
}

func TestBookingsSortedAndBounded(t *testing.T) {
	d := Build(Options{})

	for i := 1; i < len(d.Bookings); i++ {
		if d.Bookings[i].BookingDate.Before(d.Bookings[i-1].BookingDate) {
			t.Fatalf("bookings not sorted by date at index %d", i)
		}
	}
	for _, b := range d.Bookings {
		if b.BookingDate.After(d.ReferenceDate) {
			t.Fatalf("booking %s dated after the reference date", b.BookingID)
		}
		if !b.SailDate.After(b.BookingDate) {
			t.Fatalf("booking %s sails before it was booked", b.BookingID)
		}
		if b.Revenue <= 0 {
			t.Fatalf("booking %s has non-positive revenue", b.BookingID)
		}
	}
}

func TestBookingCampaignLinks(t *testing.T) {
	d := Build(Options{})

	var organic, attributed int
	for _, b := range d.Bookings {
		if b.CampaignID == "" {
			organic++
			continue
		}
		attributed++
		if _, ok := d.CampaignByID(b.CampaignID); !ok {
			t.Fatalf("booking %s references unknown campaign %s", b.BookingID, b.CampaignID)
		}
	}
	if organic == 0 || attributed == 0 {
		t.Fatalf("expected both organic and attributed bookings, got %d/%d", organic, attributed)
	}
}

func TestSegmentAssignment(t *testing.T) {
	d := Build(Options{})

	for _, c := range d.Customers {
		monthsSince := monthsBetween(c.LastCruiseDate, d.ReferenceDate)

		// The VIP rule requires recent activity, so deep recency always
		// means Lapsed regardless of value.
		if monthsSince > 18 && c.Segment != models.SegmentLapsed {
			t.Fatalf("customer %s lapsed %d months ago but tagged %s", c.CustomerID, monthsSince, c.Segment)
		}

		switch c.Segment {
		case models.SegmentVIP:
			if c.LifetimeValue < 50000 || monthsSince >= 12 {
				t.Fatalf("customer %s tagged VIP with LTV %.0f and %d months recency", c.CustomerID, c.LifetimeValue, monthsSince)
			}
		case models.SegmentProspect:
			if c.TotalCruises != 1 || monthsSince <= 12 {
				t.Fatalf("customer %s tagged Prospect with %d cruises and %d months recency", c.CustomerID, c.TotalCruises, monthsSince)
			}
		case models.SegmentLapsed:
			if monthsSince <= 18 {
				t.Fatalf("customer %s tagged Lapsed after only %d months", c.CustomerID, monthsSince)
			}
		}
	}
}

func TestRecentInsightsOrderAndLimit(t *testing.T) {
	d := Build(Options{})

	all := d.RecentInsights(0)
	for i := 1; i < len(all); i++ {
		if all[i].Timestamp.After(all[i-1].Timestamp) {
			t.Fatalf("insights not newest-first at index %d", i)
		}
	}

	capped := d.RecentInsights(3)
	if len(capped) != 3 {
		t.Fatalf("expected 3 insights, got %d", len(capped))
	}
}

func TestInsightByID(t *testing.T) {
	d := Build(Options{})

	if _, ok := d.InsightByID("insight-003"); !ok {
		t.Fatalf("expected insight-003 in catalog")
	}
	if _, ok := d.InsightByID("nope"); ok {
		t.Fatalf("unexpected hit for unknown insight id")
	}
}
