package models

import "time"

type LoyaltyTier string

const (
	TierBronze   LoyaltyTier = "Bronze"
	TierSilver   LoyaltyTier = "Silver"
	TierGold     LoyaltyTier = "Gold"
	TierPlatinum LoyaltyTier = "Platinum"
)

// LoyaltyTiers in ascending order.
var LoyaltyTiers = []LoyaltyTier{TierBronze, TierSilver, TierGold, TierPlatinum}

type Itinerary string

const (
	ItineraryCaribbean     Itinerary = "Caribbean"
	ItineraryAlaska        Itinerary = "Alaska"
	ItineraryEurope        Itinerary = "Europe"
	ItineraryMediterranean Itinerary = "Mediterranean"
	ItineraryHawaii        Itinerary = "Hawaii"
	ItineraryAsia          Itinerary = "Asia"
	ItineraryAustralia     Itinerary = "Australia"
)

// Itineraries covered by the booking population. Hawaii/Asia/Australia only
// appear in the visitor-intent audit fixtures.
var Itineraries = []Itinerary{ItineraryCaribbean, ItineraryAlaska, ItineraryEurope, ItineraryMediterranean}

type CabinType string

const (
	CabinInside    CabinType = "Inside"
	CabinOceanView CabinType = "Ocean View"
	CabinBalcony   CabinType = "Balcony"
	CabinSuite     CabinType = "Suite"
)

var CabinTypes = []CabinType{CabinInside, CabinOceanView, CabinBalcony, CabinSuite}

type CampaignType string

const (
	CampaignProspecting  CampaignType = "Prospecting"
	CampaignReactivation CampaignType = "Reactivation"
	CampaignRetargeting  CampaignType = "Retargeting"
)

var CampaignTypes = []CampaignType{CampaignProspecting, CampaignReactivation, CampaignRetargeting}

type MarketingChannel string

const (
	ChannelDirectMail MarketingChannel = "Direct Mail"
	ChannelEmail      MarketingChannel = "Email"
	ChannelDisplay    MarketingChannel = "Display"
	ChannelPaidSearch MarketingChannel = "Paid Search"
)

type AcquisitionChannel string

const (
	AcquisitionDirectMail AcquisitionChannel = "Direct Mail"
	AcquisitionEmail      AcquisitionChannel = "Email"
	AcquisitionOrganic    AcquisitionChannel = "Organic"
	AcquisitionReferral   AcquisitionChannel = "Referral"
	AcquisitionPaidSearch AcquisitionChannel = "Paid Search"
)

var AcquisitionChannels = []AcquisitionChannel{
	AcquisitionDirectMail, AcquisitionEmail, AcquisitionOrganic, AcquisitionReferral, AcquisitionPaidSearch,
}

type CustomerSegment string

const (
	SegmentProspect CustomerSegment = "Prospect"
	SegmentActive   CustomerSegment = "Active"
	SegmentLapsed   CustomerSegment = "Lapsed"
	SegmentVIP      CustomerSegment = "VIP"
)

var CustomerSegments = []CustomerSegment{SegmentProspect, SegmentActive, SegmentLapsed, SegmentVIP}

type Customer struct {
	CustomerID         string             `json:"customer_id"`
	FirstName          string             `json:"first_name"`
	LastName           string             `json:"last_name"`
	Email              string             `json:"email"`
	LoyaltyTier        LoyaltyTier        `json:"loyalty_tier"`
	LifetimeValue      float64            `json:"lifetime_value"`
	TotalCruises       int                `json:"total_cruises"`
	FirstCruiseDate    time.Time          `json:"first_cruise_date"`
	LastCruiseDate     time.Time          `json:"last_cruise_date"`
	PreferredItinerary Itinerary          `json:"preferred_itinerary"`
	PreferredCabinType CabinType          `json:"preferred_cabin_type"`
	AcquisitionChannel AcquisitionChannel `json:"acquisition_channel"`
	Segment            CustomerSegment    `json:"segment"`
}

func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

type Booking struct {
	BookingID     string    `json:"booking_id"`
	CustomerID    string    `json:"customer_id"`
	BookingDate   time.Time `json:"booking_date"`
	SailDate      time.Time `json:"sail_date"`
	Itinerary     Itinerary `json:"itinerary"`
	CabinType     CabinType `json:"cabin_type"`
	Revenue       float64   `json:"revenue"`
	CampaignID    string    `json:"campaign_id,omitempty"` // empty = organic
	IsNewCustomer bool      `json:"is_new_customer"`
}

type Campaign struct {
	CampaignID   string           `json:"campaign_id"`
	CampaignName string           `json:"campaign_name"`
	CampaignType CampaignType     `json:"campaign_type"`
	LaunchDate   time.Time        `json:"launch_date"`
	MailVolume   int              `json:"mail_volume"`
	AdSpend      float64          `json:"ad_spend"`
	Channel      MarketingChannel `json:"channel"`
}

// QueryContext is the conversational memory threaded between chat turns. It
// travels with the request and is replaced wholesale on every dispatched
// query; the server keeps no per-conversation state.
type QueryContext struct {
	LastQuery     string `json:"last_query,omitempty"`
	LastDimension string `json:"last_dimension,omitempty"`
	LastMetric    string `json:"last_metric,omitempty"`
}

func (c QueryContext) Empty() bool {
	return c.LastQuery == ""
}

type ActionKind string

const (
	ActionCreateAudience ActionKind = "create_audience"
	ActionExportCSV      ActionKind = "export_csv"
	ActionScheduleReport ActionKind = "schedule_report"
	ActionLaunchCampaign ActionKind = "launch_campaign"
	ActionRefineAudience ActionKind = "refine_audience"
)

type ActionButton struct {
	ID      string         `json:"id"`
	Label   string         `json:"label"`
	Icon    string         `json:"icon"`
	Action  ActionKind     `json:"action"`
	Payload map[string]any `json:"payload,omitempty"`
}

type VisualizationType string

const (
	VizBar             VisualizationType = "bar"
	VizLine            VisualizationType = "line"
	VizMetrics         VisualizationType = "metrics"
	VizTable           VisualizationType = "table"
	VizFunnel          VisualizationType = "funnel"
	VizAudiencePreview VisualizationType = "audience_preview"
)

// Visualization carries a type tag and exactly one populated payload field
// matching the tag. The rendering layer switches on Type.
type Visualization struct {
	Type     VisualizationType `json:"type"`
	Title    string            `json:"title,omitempty"`
	Points   []ChartPoint      `json:"points,omitempty"`
	Metrics  []Metric          `json:"metrics,omitempty"`
	Table    *TableData        `json:"table,omitempty"`
	Funnel   []FunnelStage     `json:"funnel,omitempty"`
	Audience *AudiencePreview  `json:"audience,omitempty"`
}

type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type Metric struct {
	Label       string   `json:"label"`
	Value       string   `json:"value"`
	Change      *float64 `json:"change,omitempty"`
	ChangeLabel string   `json:"change_label,omitempty"`
}

type TableColumn struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type TableData struct {
	Columns []TableColumn    `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

type FunnelStage struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
	// ConversionRate to the next stage, in percent. Nil on the terminal stage.
	ConversionRate *float64 `json:"conversion_rate,omitempty"`
}

type ChatMessage struct {
	ID            string         `json:"id"`
	Role          string         `json:"role"`
	Content       string         `json:"content"`
	Timestamp     time.Time      `json:"timestamp"`
	Visualization *Visualization `json:"visualization,omitempty"`
	Actions       []ActionButton `json:"actions,omitempty"`
}

type AudienceCriteria struct {
	Segments            []CustomerSegment    `json:"segments,omitempty"`
	LoyaltyTiers        []LoyaltyTier        `json:"loyalty_tiers,omitempty"`
	MinLTV              *float64             `json:"min_ltv,omitempty"`
	MaxLTV              *float64             `json:"max_ltv,omitempty"`
	PreferredItinerary  []Itinerary          `json:"preferred_itinerary,omitempty"`
	PreferredCabinType  []CabinType          `json:"preferred_cabin_type,omitempty"`
	ChurnRisk           bool                 `json:"churn_risk,omitempty"`
	AcquisitionChannels []AcquisitionChannel `json:"acquisition_channels,omitempty"`
}

type AudiencePreview struct {
	Criteria       AudienceCriteria        `json:"criteria"`
	Count          int                     `json:"count"`
	Sample         []Customer              `json:"sample"`
	ROIProjection  *ROIProjection          `json:"roi_projection,omitempty"`
	Recommendation *CampaignRecommendation `json:"recommendation,omitempty"`
}

type ROIProjection struct {
	AudienceSize           int     `json:"audience_size"`
	AvgOrderValue          float64 `json:"avg_order_value"`
	HistoricalResponseRate float64 `json:"historical_response_rate"`
	OptimisticRevenue      float64 `json:"optimistic_revenue"`
	RealisticRevenue       float64 `json:"realistic_revenue"`
	EstimatedCost          float64 `json:"estimated_cost"`
	EstimatedROI           float64 `json:"estimated_roi"`
}

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

type CampaignRecommendation struct {
	CampaignType         CampaignType     `json:"campaign_type"`
	Channel              MarketingChannel `json:"channel"`
	Messaging            string           `json:"messaging"`
	Rationale            string           `json:"rationale"`
	ExpectedResponseRate float64          `json:"expected_response_rate"`
	Confidence           Confidence       `json:"confidence"`
}

type InsightType string

const (
	InsightWarning InsightType = "warning"
	InsightSuccess InsightType = "success"
	InsightInfo    InsightType = "info"
)

// Insight is a pre-authored catalog entry for the proactive sidebar. The
// catalog is static narrative data, not derived from the generated
// population.
type Insight struct {
	ID          string      `json:"id"`
	Type        InsightType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Metric      string      `json:"metric,omitempty"`
	Change      *float64    `json:"change,omitempty"`
	Timestamp   time.Time   `json:"timestamp"`
}
