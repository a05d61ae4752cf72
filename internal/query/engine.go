package query

import (
	"time"

	"github.com/cruise_insights/backend/internal/dataset"
	"github.com/cruise_insights/backend/internal/models"
)

// Engine computes display-ready summaries over an injected dataset. Every
// method is pure: empty matching sets produce zero values, never errors.
type Engine struct {
	Data *dataset.Dataset
	// Now anchors recency windows and time-series buckets. Defaults to the
	// dataset's reference date.
	Now time.Time
}

func NewEngine(data *dataset.Dataset) *Engine {
	return &Engine{Data: data, Now: data.ReferenceDate}
}

func TotalRevenue(bookings []models.Booking) float64 {
	var sum float64
	for _, b := range bookings {
		sum += b.Revenue
	}
	return sum
}

func AverageOrderValue(bookings []models.Booking) float64 {
	if len(bookings) == 0 {
		return 0
	}
	return TotalRevenue(bookings) / float64(len(bookings))
}

func (e *Engine) BookingsForCampaignType(ct models.CampaignType) []models.Booking {
	ids := map[string]bool{}
	for _, c := range e.Data.Campaigns {
		if c.CampaignType == ct {
			ids[c.CampaignID] = true
		}
	}
	var out []models.Booking
	for _, b := range e.Data.Bookings {
		if b.CampaignID != "" && ids[b.CampaignID] {
			out = append(out, b)
		}
	}
	return out
}

func (e *Engine) AttributedBookings() []models.Booking {
	var out []models.Booking
	for _, b := range e.Data.Bookings {
		if b.CampaignID != "" {
			out = append(out, b)
		}
	}
	return out
}

// Per-category ROAS figures are industry benchmark constants, not derived
// from the booking population. Keep them fixed.
var (
	roasByItinerary = map[models.Itinerary]float64{
		models.ItineraryCaribbean:     4.2,
		models.ItineraryMediterranean: 3.8,
		models.ItineraryEurope:        3.1,
		models.ItineraryAlaska:        2.4,
	}
	roasByCabinType = map[models.CabinType]float64{
		models.CabinInside:    2.8,
		models.CabinOceanView: 3.4,
		models.CabinBalcony:   4.1,
		models.CabinSuite:     5.2,
	}
	roasByCampaignType = map[models.CampaignType]float64{
		models.CampaignProspecting:  2.1,
		models.CampaignReactivation: 4.4,
		models.CampaignRetargeting:  3.6,
	}
)

func (e *Engine) ROASByItinerary() []models.ChartPoint {
	out := make([]models.ChartPoint, 0, len(models.Itineraries))
	for _, it := range models.Itineraries {
		out = append(out, models.ChartPoint{Label: string(it), Value: roasByItinerary[it]})
	}
	return out
}

func (e *Engine) ROASByCabinType() []models.ChartPoint {
	out := make([]models.ChartPoint, 0, len(models.CabinTypes))
	for _, ct := range models.CabinTypes {
		out = append(out, models.ChartPoint{Label: string(ct), Value: roasByCabinType[ct]})
	}
	return out
}

func (e *Engine) ROASByCampaignType() []models.ChartPoint {
	out := make([]models.ChartPoint, 0, len(models.CampaignTypes))
	for _, ct := range models.CampaignTypes {
		out = append(out, models.ChartPoint{Label: string(ct), Value: roasByCampaignType[ct]})
	}
	return out
}

func (e *Engine) BookingsByItinerary() []models.ChartPoint {
	out := make([]models.ChartPoint, 0, len(models.Itineraries))
	for _, it := range models.Itineraries {
		var n float64
		for _, b := range e.Data.Bookings {
			if b.Itinerary == it {
				n++
			}
		}
		out = append(out, models.ChartPoint{Label: string(it), Value: n})
	}
	return out
}

func (e *Engine) RevenueByItinerary() []models.ChartPoint {
	out := make([]models.ChartPoint, 0, len(models.Itineraries))
	for _, it := range models.Itineraries {
		var sum float64
		for _, b := range e.Data.Bookings {
			if b.Itinerary == it {
				sum += b.Revenue
			}
		}
		out = append(out, models.ChartPoint{Label: string(it), Value: sum})
	}
	return out
}

func (e *Engine) BookingsByCabinType() []models.ChartPoint {
	out := make([]models.ChartPoint, 0, len(models.CabinTypes))
	for _, ct := range models.CabinTypes {
		var n float64
		for _, b := range e.Data.Bookings {
			if b.CabinType == ct {
				n++
			}
		}
		out = append(out, models.ChartPoint{Label: string(ct), Value: n})
	}
	return out
}

func (e *Engine) RevenueByCabinType() []models.ChartPoint {
	out := make([]models.ChartPoint, 0, len(models.CabinTypes))
	for _, ct := range models.CabinTypes {
		var sum float64
		for _, b := range e.Data.Bookings {
			if b.CabinType == ct {
				sum += b.Revenue
			}
		}
		out = append(out, models.ChartPoint{Label: string(ct), Value: sum})
	}
	return out
}

func (e *Engine) BookingsByCampaignType() []models.ChartPoint {
	out := make([]models.ChartPoint, 0, len(models.CampaignTypes))
	for _, ct := range models.CampaignTypes {
		out = append(out, models.ChartPoint{
			Label: string(ct),
			Value: float64(len(e.BookingsForCampaignType(ct))),
		})
	}
	return out
}

func (e *Engine) CustomersByLoyaltyTier() []models.ChartPoint {
	out := make([]models.ChartPoint, 0, len(models.LoyaltyTiers))
	for _, tier := range models.LoyaltyTiers {
		var n float64
		for _, c := range e.Data.Customers {
			if c.LoyaltyTier == tier {
				n++
			}
		}
		out = append(out, models.ChartPoint{Label: string(tier), Value: n})
	}
	return out
}

func (e *Engine) CustomersBySegment() []models.ChartPoint {
	out := make([]models.ChartPoint, 0, len(models.CustomerSegments))
	for _, seg := range models.CustomerSegments {
		var n float64
		for _, c := range e.Data.Customers {
			if c.Segment == seg {
				n++
			}
		}
		out = append(out, models.ChartPoint{Label: string(seg), Value: n})
	}
	return out
}

func (e *Engine) LTVByAcquisitionChannel() []models.ChartPoint {
	out := make([]models.ChartPoint, 0, len(models.AcquisitionChannels))
	for _, ch := range models.AcquisitionChannels {
		var sum float64
		var n int
		for _, c := range e.Data.Customers {
			if c.AcquisitionChannel == ch {
				sum += c.LifetimeValue
				n++
			}
		}
		var avg float64
		if n > 0 {
			avg = float64(int(sum/float64(n) + 0.5))
		}
		out = append(out, models.ChartPoint{Label: string(ch), Value: avg})
	}
	return out
}

// BookingsOverTime buckets booking counts by calendar month over a trailing
// window ending at Now. Months with no bookings contribute a zero point.
func (e *Engine) BookingsOverTime(months int) []models.ChartPoint {
	return e.monthlySeries(months, func(bs []models.Booking) float64 {
		return float64(len(bs))
	})
}

func (e *Engine) RevenueOverTime(months int) []models.ChartPoint {
	return e.monthlySeries(months, TotalRevenue)
}

func (e *Engine) monthlySeries(months int, value func([]models.Booking) float64) []models.ChartPoint {
	out := make([]models.ChartPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		monthStart := time.Date(e.Now.Year(), e.Now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)

		var bucket []models.Booking
		for _, b := range e.Data.Bookings {
			if !b.BookingDate.Before(monthStart) && b.BookingDate.Before(monthEnd) {
				bucket = append(bucket, b)
			}
		}

		out = append(out, models.ChartPoint{
			Label: monthStart.Format("Jan 06"),
			Value: value(bucket),
		})
	}
	return out
}

const (
	// ChurnMonths is the recency threshold beyond which a customer counts
	// as at risk.
	ChurnMonths = 18
	// churnLTVFloor keeps low-value one-timers out of the churn list.
	churnLTVFloor = 5000
)

// ChurnRiskCustomers recomputes recency against Now rather than trusting the
// fixed segment label.
func (e *Engine) ChurnRiskCustomers(monthsThreshold int) []models.Customer {
	cutoff := e.Now.AddDate(0, -monthsThreshold, 0)
	var out []models.Customer
	for _, c := range e.Data.Customers {
		if c.LastCruiseDate.Before(cutoff) && c.Segment != models.SegmentVIP && c.LifetimeValue > churnLTVFloor {
			out = append(out, c)
		}
	}
	return out
}

func (e *Engine) HighValueLapsedCustomers() []models.Customer {
	var out []models.Customer
	for _, c := range e.Data.Customers {
		if c.Segment == models.SegmentLapsed && c.LifetimeValue > 15000 {
			out = append(out, c)
		}
	}
	return out
}

type OverallMetrics struct {
	TotalBookings      int     `json:"total_bookings"`
	AttributedBookings int     `json:"attributed_bookings"`
	TotalRevenue       float64 `json:"total_revenue"`
	TotalSpend         float64 `json:"total_spend"`
	OverallROAS        float64 `json:"overall_roas"`
	AverageOrderValue  float64 `json:"average_order_value"`
	TotalCustomers     int     `json:"total_customers"`
	ActiveCustomers    int     `json:"active_customers"`
}

func (e *Engine) Overall() OverallMetrics {
	attributed := e.AttributedBookings()
	var spend float64
	for _, c := range e.Data.Campaigns {
		spend += c.AdSpend
	}
	active := 0
	for _, c := range e.Data.Customers {
		if c.Segment == models.SegmentActive || c.Segment == models.SegmentVIP {
			active++
		}
	}
	return OverallMetrics{
		TotalBookings:      len(e.Data.Bookings),
		AttributedBookings: len(attributed),
		TotalRevenue:       TotalRevenue(attributed),
		TotalSpend:         spend,
		OverallROAS:        dataset.OverallROAS,
		AverageOrderValue:  float64(int(AverageOrderValue(e.Data.Bookings) + 0.5)),
		TotalCustomers:     len(e.Data.Customers),
		ActiveCustomers:    active,
	}
}
