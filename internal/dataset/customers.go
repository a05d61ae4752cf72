package dataset

import (
	"fmt"
	"strings"
	"time"

	"github.com/cruise_insights/backend/internal/models"
)

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Lisa", "Daniel", "Nancy",
	"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
	"Steven", "Kimberly", "Paul", "Emily", "Andrew", "Donna", "Joshua", "Michelle",
	"Kenneth", "Dorothy", "Kevin", "Carol", "Brian", "Amanda", "George", "Melissa",
	"Timothy", "Deborah", "Ronald", "Stephanie", "Edward", "Rebecca", "Jason", "Sharon",
	"Jeffrey", "Laura", "Ryan", "Cynthia", "Jacob", "Kathleen", "Gary", "Amy",
	"Nicholas", "Angela", "Eric", "Shirley", "Jonathan", "Anna", "Stephen", "Brenda",
	"Larry", "Pamela", "Justin", "Emma", "Scott", "Nicole", "Brandon", "Helen",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
	"Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
	"Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young",
	"Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
	"Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell",
	"Carter", "Roberts", "Gomez", "Phillips", "Evans", "Turner", "Diaz", "Parker",
	"Cruz", "Edwards", "Collins", "Reyes", "Stewart", "Morris", "Morales", "Murphy",
}

func generateCustomers(seed int64, population int, refDate time.Time) []models.Customer {
	r := newLCG(seed)
	out := make([]models.Customer, 0, population)
	for i := 1; i <= population; i++ {
		out = append(out, generateCustomer(r, i, refDate))
	}
	return out
}

func generateCustomer(r *lcg, index int, refDate time.Time) models.Customer {
	firstName := pick(r, firstNames)
	lastName := pick(r, lastNames)
	customerID := fmt.Sprintf("cust-%04d", index)
	email := fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(firstName), strings.ToLower(lastName), index)

	// Most customers sit in the lower tiers.
	tier := pickWeighted(r, models.LoyaltyTiers, []float64{50, 30, 15, 5})

	var totalCruises int
	switch tier {
	case models.TierPlatinum:
		totalCruises = 8 + r.IntN(15)
	case models.TierGold:
		totalCruises = 4 + r.IntN(6)
	case models.TierSilver:
		totalCruises = 2 + r.IntN(3)
	default:
		totalCruises = 1 + r.IntN(2)
	}

	avgCruiseValue := pickWeighted(r, []float64{2500, 3500, 5000, 8000}, []float64{40, 30, 20, 10})
	lifetimeValue := float64(totalCruises) * avgCruiseValue * (0.8 + r.Float()*0.4)

	yearsAsCustomer := float64(totalCruises)*0.5 + r.Float()*2
	firstCruise := refDate.AddDate(-int(yearsAsCustomer), 0, 0)
	firstCruise = time.Date(firstCruise.Year(), time.Month(1+r.IntN(12)), 1, 0, 0, 0, 0, time.UTC)

	// Recency correlates with tier; Bronze customers can be deeply lapsed.
	var monthsAgo int
	switch tier {
	case models.TierPlatinum:
		monthsAgo = r.IntN(6)
	case models.TierGold:
		monthsAgo = r.IntN(12)
	case models.TierSilver:
		monthsAgo = r.IntN(18)
	default:
		monthsAgo = r.IntN(30)
	}
	lastCruise := refDate.AddDate(0, -monthsAgo, 0)

	preferredItinerary := pickWeighted(r, models.Itineraries, []float64{45, 15, 20, 20})

	var cabinWeights []float64
	switch tier {
	case models.TierPlatinum:
		cabinWeights = []float64{5, 15, 30, 50}
	case models.TierGold:
		cabinWeights = []float64{10, 25, 40, 25}
	case models.TierSilver:
		cabinWeights = []float64{25, 35, 30, 10}
	default:
		cabinWeights = []float64{40, 35, 20, 5}
	}
	preferredCabin := pickWeighted(r, models.CabinTypes, cabinWeights)

	acquisition := pickWeighted(r, models.AcquisitionChannels, []float64{35, 25, 20, 10, 10})

	// Segment is assigned once from recency and value and never recomputed.
	var segment models.CustomerSegment
	switch {
	case lifetimeValue > 50000 && monthsAgo < 12:
		segment = models.SegmentVIP
	case monthsAgo > 18:
		segment = models.SegmentLapsed
	case totalCruises == 1 && monthsAgo > 12:
		segment = models.SegmentProspect
	default:
		segment = models.SegmentActive
	}

	return models.Customer{
		CustomerID:         customerID,
		FirstName:          firstName,
		LastName:           lastName,
		Email:              email,
		LoyaltyTier:        tier,
		LifetimeValue:      float64(int(lifetimeValue)),
		TotalCruises:       totalCruises,
		FirstCruiseDate:    firstCruise,
		LastCruiseDate:     lastCruise,
		PreferredItinerary: preferredItinerary,
		PreferredCabinType: preferredCabin,
		AcquisitionChannel: acquisition,
		Segment:            segment,
	}
}
