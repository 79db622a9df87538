package gscdomain

type InspectionRequest struct {
	InspectionURL string `json:"inspectionUrl"`
	SiteURL       string `json:"siteUrl"`
	LanguageCode  string `json:"languageCode,omitempty"`
}

type InspectionResponse struct {
	InspectionResult InspectionResult `json:"inspectionResult"`
}

type InspectionResult struct {
	InspectionResultLink string             `json:"inspectionResultLink"`
	IndexStatusResult    *IndexStatusResult `json:"indexStatusResult"`
}

type IndexStatusResult struct {
	Verdict         string   `json:"verdict"`
	CoverageState   string   `json:"coverageState"`
	RobotsTxtState  string   `json:"robotsTxtState"`
	IndexingState   string   `json:"indexingState"`
	LastCrawlTime   string   `json:"lastCrawlTime"`
	PageFetchState  string   `json:"pageFetchState"`
	GoogleCanonical string   `json:"googleCanonical"`
	UserCanonical   string   `json:"userCanonical"`
	CrawledAs       string   `json:"crawledAs"`
	ReferringUrls   []string `json:"referringUrls"`
	Sitemap         []string `json:"sitemap"`
}
