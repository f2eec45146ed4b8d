package domain

const UnknownBucket = "Unknown"

// Demand tiers by visit-request count per city.
const (
	DemandLow    = "Low"
	DemandMedium = "Medium"
	DemandHigh   = "High"
)

type CityPrice struct {
	City         string `json:"city"`
	AveragePrice int64  `json:"averagePrice"`
}

type CityDemand struct {
	City   string `json:"city"`
	Demand string `json:"demand"`
}

type CityVisits struct {
	City   string `json:"city"`
	Visits int    `json:"visits"`
}

type PropertyTypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Insights is the market summary computed from listings and visit requests.
type Insights struct {
	AvgPriceByCity    []CityPrice         `json:"avgPriceByCity"`
	DemandByCity      []CityDemand        `json:"demandByCity"`
	TrendingLocations []CityVisits        `json:"trendingLocations"`
	PropertyTypeStats []PropertyTypeCount `json:"propertyTypeStats"`
}
