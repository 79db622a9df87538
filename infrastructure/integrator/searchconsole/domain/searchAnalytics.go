package gscdomain

// SearchAnalyticsRequest é o corpo de searchAnalytics.query
type SearchAnalyticsRequest struct {
	StartDate             string                 `json:"startDate"`
	EndDate               string                 `json:"endDate"`
	Dimensions            []string               `json:"dimensions,omitempty"`
	DimensionFilterGroups []DimensionFilterGroup `json:"dimensionFilterGroups,omitempty"`
	RowLimit              int                    `json:"rowLimit,omitempty"`
	StartRow              int                    `json:"startRow,omitempty"`
	DataState             string                 `json:"dataState,omitempty"`
}

type DimensionFilterGroup struct {
	GroupType string            `json:"groupType,omitempty"`
	Filters   []DimensionFilter `json:"filters"`
}

type DimensionFilter struct {
	Dimension  string `json:"dimension"`
	Operator   string `json:"operator"`
	Expression string `json:"expression"`
}

type SearchAnalyticsResponse struct {
	Rows                    []SearchAnalyticsRow `json:"rows"`
	ResponseAggregationType string               `json:"responseAggregationType"`
}

type SearchAnalyticsRow struct {
	Keys        []string `json:"keys"`
	Clicks      float64  `json:"clicks"`
	Impressions float64  `json:"impressions"`
	Ctr         float64  `json:"ctr"`
	Position    float64  `json:"position"`
}
