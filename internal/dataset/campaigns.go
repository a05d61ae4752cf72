package dataset

import (
	"time"

	"github.com/cruise_insights/backend/internal/models"
)

// campaignFixtures is the hand-authored campaign calendar: a year of direct
// mail flights plus supporting digital, Jan 2024 through Jan 2025. Volumes
// are sized so the attributed booking population lands in the low thousands.
func campaignFixtures() []models.Campaign {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	return []models.Campaign{
		{CampaignID: "camp-001", CampaignName: "Caribbean New Year Prospecting", CampaignType: models.CampaignProspecting, LaunchDate: day(2024, time.January, 8), MailVolume: 20000, AdSpend: 24000, Channel: models.ChannelDirectMail},
		{CampaignID: "camp-002", CampaignName: "Caribbean Winter Reactivation", CampaignType: models.CampaignReactivation, LaunchDate: day(2024, time.January, 22), MailVolume: 9000, AdSpend: 10800, Channel: models.ChannelDirectMail},
		{CampaignID: "camp-003", CampaignName: "Alaska Early Bird Prospecting", CampaignType: models.CampaignProspecting, LaunchDate: day(2024, time.February, 12), MailVolume: 15000, AdSpend: 18000, Channel: models.ChannelDirectMail},
		{CampaignID: "camp-004", CampaignName: "Spring Site Retargeting", CampaignType: models.CampaignRetargeting, LaunchDate: day(2024, time.March, 4), MailVolume: 6000, AdSpend: 7200, Channel: models.ChannelDirectMail},
		{CampaignID: "camp-005", CampaignName: "Mediterranean Summer Prospecting", CampaignType: models.CampaignProspecting, LaunchDate: day(2024, time.March, 25), MailVolume: 14000, AdSpend: 16800, Channel: models.ChannelDirectMail},
		{CampaignID: "camp-006", CampaignName: "Europe River Display", CampaignType: models.CampaignRetargeting, LaunchDate: day(2024, time.April, 15), MailVolume: 0, AdSpend: 2500, Channel: models.ChannelDisplay},
		{CampaignID: "camp-007", CampaignName: "Alaska Season Reactivation", CampaignType: models.CampaignReactivation, LaunchDate: day(2024, time.May, 6), MailVolume: 7500, AdSpend: 9000, Channel: models.ChannelDirectMail},
		{CampaignID: "camp-008", CampaignName: "Caribbean Summer Retargeting", CampaignType: models.CampaignRetargeting, LaunchDate: day(2024, time.June, 3), MailVolume: 7000, AdSpend: 8400, Channel: models.ChannelDirectMail},
		{CampaignID: "camp-009", CampaignName: "Mediterranean Lapsed Win-Back", CampaignType: models.CampaignReactivation, LaunchDate: day(2024, time.June, 24), MailVolume: 8000, AdSpend: 9600, Channel: models.ChannelDirectMail},
		{CampaignID: "camp-010", CampaignName: "Europe Fall Prospecting", CampaignType: models.CampaignProspecting, LaunchDate: day(2024, time.July, 15), MailVolume: 12500, AdSpend: 15000, Channel: models.ChannelDirectMail},
		{CampaignID: "camp-011", CampaignName: "Email Nurture Retargeting", CampaignType: models.CampaignRetargeting, LaunchDate: day(2024, time.August, 5), MailVolume: 0, AdSpend: 1800, Channel: models.ChannelEmail},
		{CampaignID: "camp-012", CampaignName: "Caribbean Wave Season Prep", CampaignType: models.CampaignProspecting, LaunchDate: day(2024, time.September, 9), MailVolume: 18000, AdSpend: 21600, Channel: models.ChannelDirectMail},
		{CampaignID: "camp-013", CampaignName: "Mediterranean Q4 Reactivation", CampaignType: models.CampaignReactivation, LaunchDate: day(2024, time.October, 7), MailVolume: 9500, AdSpend: 11400, Channel: models.ChannelDirectMail},
		{CampaignID: "camp-014", CampaignName: "Holiday Retargeting Push", CampaignType: models.CampaignRetargeting, LaunchDate: day(2024, time.November, 4), MailVolume: 7500, AdSpend: 9000, Channel: models.ChannelDirectMail},
		{CampaignID: "camp-015", CampaignName: "Caribbean Holiday Reactivation", CampaignType: models.CampaignReactivation, LaunchDate: day(2024, time.November, 25), MailVolume: 10000, AdSpend: 12000, Channel: models.ChannelDirectMail},
		{CampaignID: "camp-016", CampaignName: "Alaska 2025 Early Bird", CampaignType: models.CampaignProspecting, LaunchDate: day(2024, time.December, 9), MailVolume: 11000, AdSpend: 13200, Channel: models.ChannelDirectMail},
		{CampaignID: "camp-017", CampaignName: "Wave Season Retargeting", CampaignType: models.CampaignRetargeting, LaunchDate: day(2025, time.January, 6), MailVolume: 6500, AdSpend: 7800, Channel: models.ChannelDirectMail},
		{CampaignID: "camp-018", CampaignName: "New Year Win-Back", CampaignType: models.CampaignReactivation, LaunchDate: day(2025, time.January, 13), MailVolume: 9000, AdSpend: 10800, Channel: models.ChannelDirectMail},
	}
}
