package dto

// PropertyTypeCount is one row of the per-type breakdown.
type PropertyTypeCount struct {
	PropertyType string `json:"propertyType"`
	Count        int64  `json:"count"`
}

// StatsResponse is the body of GetStats. Money values are decimal strings.
type StatsResponse struct {
	TotalProperties         int64               `json:"totalProperties"`
	AvailableProperties     int64               `json:"availableProperties"`
	ReservedProperties      int64               `json:"reservedProperties"`
	SoldProperties          int64               `json:"soldProperties"`
	TotalOwners             int64               `json:"totalOwners"`
	PropertiesByType        []PropertyTypeCount `json:"propertiesByType"`
	PortfolioValue          string              `json:"portfolioValue"`
	PortfolioValueFormatted string              `json:"portfolioValueFormatted"`
	AveragePrice            string              `json:"averagePrice"`
}
