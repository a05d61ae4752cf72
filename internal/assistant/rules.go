package assistant

import "regexp"

func patterns(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}

// primaryRules is scanned top to bottom and the first matching rule wins.
// Several patterns overlap (a query can mention both "churn" and
// "itinerary"), so the declaration order below is load-bearing; tests pin
// it for ambiguous inputs.
func primaryRules() []rule {
	return []rule{
		{patterns(`roas.*itinerar`, `roas.*(caribbean|alaska|europe|mediterranean)`, `return.*ad.*spend.*itinerar`), (*Router).handleROASByItinerary},
		{patterns(`roas.*cabin`, `roas.*(inside|ocean|balcony|suite)`), (*Router).handleROASByCabinType},
		{patterns(`roas.*(prospecting|reactivation|retargeting)`, `roas.*campaign.*type`), (*Router).handleROASByCampaignType},
		{patterns(`booking.*revenue.*cabin`, `cabin.*type.*booking`, `revenue.*cabin`), (*Router).handleBookingsRevenueByCabin},
		{patterns(`booking.*itinerar`, `itinerar.*booking`), (*Router).handleBookingsByItinerary},
		{patterns(`prospecting.*reactivation`, `reactivation.*prospecting`, `sail.*date.*responsive`, `campaign.*type.*compar`), (*Router).handleCampaignTypeComparison},
		{patterns(`funnel`, `impression.*visit`, `site.*visit.*booking`), (*Router).handleFunnel},
		{patterns(`loyalty.*tier`, `customer.*tier`, `how many.*customer`), (*Router).handleLoyaltyTiers},
		{patterns(`customer.*segment`, `segment.*breakdown`), (*Router).handleCustomerSegments},
		{patterns(`churn`, `at risk`, `risk.*customer`, `haven't cruised`, `lapsed.*customer`), (*Router).handleChurnRisk},
		{patterns(`build.*audience`, `create.*audience`, `win.?back`, `reactivation.*audience`), (*Router).handleAudienceBuild},
		{patterns(`ltv.*channel`, `lifetime.*value.*channel`, `acquisition.*channel`), (*Router).handleLTVByChannel},
		{patterns(`revenue.*over.*time`, `revenue.*trend`, `monthly.*revenue`), (*Router).handleRevenueOverTime},
		{patterns(`booking.*over.*time`, `booking.*trend`, `monthly.*booking`), (*Router).handleBookingsOverTime},
		{patterns(`why.*(alaska|caribbean|mediterranean|europe)`, `why.*underperform`, `why.*outperform`), (*Router).handleWhyQuestion},
		{patterns(`high.*value.*customer`, `vip.*customer`, `top.*customer`), (*Router).handleHighValueCustomers},
		{patterns(`channel.*quality`, `junk.*(traffic|rate)`, `pinterest`, `tiktok`, `scorecard`), (*Router).handleChannelQuality},
		{patterns(`destination.*quality`, `creative.*match.*rate`, `match.*rate`), (*Router).handleDestinationQuality},
		{patterns(`exotic`, `asia`, `australia`, `elite.*household`, `leakage`), (*Router).handleEliteLeakage},
		{patterns(`relevance.*premium`, `matched.*creative`, `creative.*match`), (*Router).handleRelevancePremium},
		{patterns(`guardrail`), (*Router).handleGuardrail},
		{patterns(`dark.*social`, `unclassified.*(traffic|visitor)`), (*Router).handleDarkSocial},
		{patterns(`overall.*metric`, `summary`, `dashboard`, `overview`), (*Router).handleOverallMetrics},
	}
}

// followUpRules is only consulted when the context carries a previous query.
func followUpRules() []rule {
	return []rule{
		{patterns(`break.*down.*cabin`, `by cabin`), (*Router).handleBreakdownByCabin},
		{patterns(`break.*down.*itinerar`, `by itinerar`), (*Router).handleBreakdownByItinerary},
		{patterns(`exclude.*(alaska|caribbean|mediterranean|europe)`), (*Router).handleExcludeItinerary},
		{patterns(`compare.*last.*year`, `year.*over.*year`, `\byoy\b`), (*Router).handleYoYComparison},
	}
}
