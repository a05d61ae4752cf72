package dataset

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cruise_insights/backend/internal/models"
)

// Revenue ranges per cabin type, low/high.
var revenueRanges = map[models.CabinType][2]float64{
	models.CabinInside:    {1800, 3500},
	models.CabinOceanView: {2800, 4500},
	models.CabinBalcony:   {4000, 7000},
	models.CabinSuite:     {7000, 15000},
}

const organicBookingCount = 200

func generateBookings(seed int64, customers []models.Customer, campaigns []models.Campaign, refDate time.Time) []models.Booking {
	r := newLCG(seed)
	windowStart := refDate.AddDate(-1, -1, 0)

	var out []models.Booking
	index := 1

	for _, campaign := range campaigns {
		if campaign.LaunchDate.After(refDate) {
			continue
		}

		var conversionRate float64
		switch campaign.CampaignType {
		case models.CampaignRetargeting:
			conversionRate = 0.015
		case models.CampaignReactivation:
			conversionRate = 0.008
		default:
			conversionRate = 0.003
		}

		impressions := float64(campaign.MailVolume)
		if campaign.MailVolume == 0 {
			impressions = campaign.AdSpend * 10
		}
		expected := int(impressions * conversionRate)

		for i := 0; i < expected; i++ {
			customer := pick(r, customers)

			bookingDate := campaign.LaunchDate.AddDate(0, 0, r.IntN(60))
			if bookingDate.After(refDate) {
				continue
			}
			sailDate := bookingDate.AddDate(0, 0, 30+r.IntN(150))

			itinerary := campaignItinerary(r, campaign.CampaignName)
			cabinType := customer.PreferredCabinType
			if r.Float() <= 0.3 {
				cabinType = pickWeighted(r, models.CabinTypes, []float64{35, 30, 25, 10})
			}
			lo, hi := revenueRanges[cabinType][0], revenueRanges[cabinType][1]
			revenue := float64(int(lo + r.Float()*(hi-lo)))

			out = append(out, models.Booking{
				BookingID:     fmt.Sprintf("book-%05d", index),
				CustomerID:    customer.CustomerID,
				BookingDate:   bookingDate,
				SailDate:      sailDate,
				Itinerary:     itinerary,
				CabinType:     cabinType,
				Revenue:       revenue,
				CampaignID:    campaign.CampaignID,
				IsNewCustomer: customer.TotalCruises == 1 && r.Float() > 0.7,
			})
			index++
		}
	}

	// Organic bookings carry no campaign attribution.
	windowSeconds := refDate.Sub(windowStart).Seconds()
	for i := 0; i < organicBookingCount; i++ {
		customer := pick(r, customers)
		bookingDate := windowStart.Add(time.Duration(r.Float()*windowSeconds) * time.Second)
		bookingDate = bookingDate.Truncate(24 * time.Hour)
		sailDate := bookingDate.AddDate(0, 0, 30+r.IntN(150))

		itinerary := pickWeighted(r, models.Itineraries, []float64{45, 15, 20, 20})
		cabinType := customer.PreferredCabinType
		if r.Float() <= 0.4 {
			cabinType = pickWeighted(r, models.CabinTypes, []float64{35, 30, 25, 10})
		}
		lo, hi := revenueRanges[cabinType][0], revenueRanges[cabinType][1]
		revenue := float64(int(lo + r.Float()*(hi-lo)))

		out = append(out, models.Booking{
			BookingID:   fmt.Sprintf("book-%05d", index),
			CustomerID:  customer.CustomerID,
			BookingDate: bookingDate,
			SailDate:    sailDate,
			Itinerary:   itinerary,
			CabinType:   cabinType,
			Revenue:     revenue,
		})
		index++
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].BookingDate.Before(out[j].BookingDate)
	})
	return out
}

// campaignItinerary skews booked itineraries toward the destination named in
// the campaign.
func campaignItinerary(r *lcg, campaignName string) models.Itinerary {
	switch {
	case strings.Contains(campaignName, "Caribbean"):
		return pickWeighted(r, models.Itineraries, []float64{70, 10, 10, 10})
	case strings.Contains(campaignName, "Alaska"):
		return pickWeighted(r, models.Itineraries, []float64{15, 60, 10, 15})
	case strings.Contains(campaignName, "Mediterranean"):
		return pickWeighted(r, models.Itineraries, []float64{15, 5, 15, 65})
	case strings.Contains(campaignName, "Europe"):
		return pickWeighted(r, models.Itineraries, []float64{15, 10, 55, 20})
	default:
		return pickWeighted(r, models.Itineraries, []float64{45, 15, 20, 20})
	}
}
