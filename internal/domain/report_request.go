package domain

// KeywordReportRequest descreve uma execução do relatório de palavras-chave
type KeywordReportRequest struct {
	SiteURL   string   `json:"site_url"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	MatchType string   `json:"match_type"`
	Targets   []string `json:"targets"`
}

// ComparisonReportRequest descreve o período atual; o anterior é derivado
type ComparisonReportRequest struct {
	SiteURL   string   `json:"site_url"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Targets   []string `json:"targets"`
}

type InspectionReportRequest struct {
	SiteURL      string   `json:"site_url"`
	LanguageCode string   `json:"language_code"`
	Targets      []string `json:"targets"`
}

// ReportResponse é a forma JSON de um relatório devolvida pela API
type ReportResponse struct {
	*Report
	Columns    []string            `json:"columns"`
	Rows       []map[string]string `json:"rows"`
	ErrorCount int                 `json:"error_count"`
}

func NewReportResponse(report *Report) *ReportResponse {
	return &ReportResponse{
		Report:     report,
		Columns:    report.Kind.Columns(),
		Rows:       report.Records(),
		ErrorCount: report.ErrorCount(),
	}
}
