package dataset

import (
	"time"

	"github.com/cruise_insights/backend/internal/models"
)

// DefaultReferenceDate anchors every date in the fixtures: last-cruise
// recency, booking windows and time-series bucketing all count backwards
// from here.
var DefaultReferenceDate = time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

const (
	DefaultCustomerSeed = 42
	DefaultBookingSeed  = 123
	DefaultPopulation   = 500
)

// Dataset is the read-only fixture population. It is built once in main and
// injected everywhere; nothing mutates it after construction, so it is safe
// for any number of concurrent readers.
type Dataset struct {
	ReferenceDate time.Time
	Customers     []models.Customer
	Bookings      []models.Booking
	Campaigns     []models.Campaign
	Insights      []models.Insight

	customerByID map[string]models.Customer
}

type Options struct {
	CustomerSeed  int64
	BookingSeed   int64
	Population    int
	ReferenceDate time.Time
}

func (o *Options) fill() {
	if o.CustomerSeed == 0 {
		o.CustomerSeed = DefaultCustomerSeed
	}
	if o.BookingSeed == 0 {
		o.BookingSeed = DefaultBookingSeed
	}
	if o.Population == 0 {
		o.Population = DefaultPopulation
	}
	if o.ReferenceDate.IsZero() {
		o.ReferenceDate = DefaultReferenceDate
	}
}

// Build generates the full fixture population. Identical options always
// yield an identical dataset.
func Build(opts Options) *Dataset {
	opts.fill()

	customers := generateCustomers(opts.CustomerSeed, opts.Population, opts.ReferenceDate)
	campaigns := campaignFixtures()
	bookings := generateBookings(opts.BookingSeed, customers, campaigns, opts.ReferenceDate)

	byID := make(map[string]models.Customer, len(customers))
	for _, c := range customers {
		byID[c.CustomerID] = c
	}

	return &Dataset{
		ReferenceDate: opts.ReferenceDate,
		Customers:     customers,
		Bookings:      bookings,
		Campaigns:     campaigns,
		Insights:      insightCatalog(),
		customerByID:  byID,
	}
}

func (d *Dataset) CustomerByID(id string) (models.Customer, bool) {
	c, ok := d.customerByID[id]
	return c, ok
}

func (d *Dataset) CampaignByID(id string) (models.Campaign, bool) {
	for _, c := range d.Campaigns {
		if c.CampaignID == id {
			return c, true
		}
	}
	return models.Campaign{}, false
}
