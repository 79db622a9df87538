package domain

import (
	"strconv"

	"github.com/vfg2006/search-console-insights/pkg/utils"
)

// KeywordRow é a linha do relatório de palavras-chave (período único)
type KeywordRow struct {
	Keyword   string
	Range     DateRange
	MatchMode MatchMode
	Metrics   *AggregateMetrics // nil quando a consulta falhou
	Error     string
}

func NewKeywordRow(keyword string, dateRange DateRange, mode MatchMode, result FetchResult) KeywordRow {
	row := KeywordRow{
		Keyword:   keyword,
		Range:     dateRange,
		MatchMode: mode,
	}

	if result.Failed() {
		row.Error = errorText(result.Err)
		return row
	}

	metrics := result.Metrics
	row.Metrics = &metrics
	return row
}

func (r KeywordRow) TargetValue() string  { return r.Keyword }
func (r KeywordRow) ErrorMessage() string { return r.Error }

func (r KeywordRow) Record() []string {
	record := []string{r.Keyword, "", "", "", "", r.Range.StartString(), r.Range.EndString(), string(r.MatchMode), r.Error}
	if r.Metrics != nil {
		record[1] = utils.FormatInteger(r.Metrics.Clicks)
		record[2] = utils.FormatInteger(r.Metrics.Impressions)
		record[3] = utils.FormatDecimal(r.Metrics.CTR, 4)
		record[4] = utils.FormatOptionalDecimal(r.Metrics.Position, 2)
	}
	return record
}

// ComparisonRow compara uma página entre dois períodos adjacentes.
// Imutável depois de construída.
type ComparisonRow struct {
	PageURL         string
	SiteURL         string
	Current         DateRange
	Previous        DateRange
	CurrentMetrics  *AggregateMetrics
	PreviousMetrics *AggregateMetrics
	Clicks          *Change
	Impressions     *Change
	Error           string
}

func NewComparisonRow(pageURL, siteURL string, current, previous DateRange, currentMetrics, previousMetrics AggregateMetrics) ComparisonRow {
	clicks := NewChange(currentMetrics.Clicks, previousMetrics.Clicks)
	impressions := NewChange(currentMetrics.Impressions, previousMetrics.Impressions)

	return ComparisonRow{
		PageURL:         pageURL,
		SiteURL:         siteURL,
		Current:         current,
		Previous:        previous,
		CurrentMetrics:  &currentMetrics,
		PreviousMetrics: &previousMetrics,
		Clicks:          &clicks,
		Impressions:     &impressions,
	}
}

// FailedComparisonRow mantém os períodos e deixa todas as métricas vazias
func FailedComparisonRow(pageURL, siteURL string, current, previous DateRange, err error) ComparisonRow {
	return ComparisonRow{
		PageURL:  pageURL,
		SiteURL:  siteURL,
		Current:  current,
		Previous: previous,
		Error:    errorText(err),
	}
}

func (r ComparisonRow) TargetValue() string  { return r.PageURL }
func (r ComparisonRow) ErrorMessage() string { return r.Error }

func (r ComparisonRow) Record() []string {
	record := make([]string, len(ComparisonColumns))
	record[0] = r.PageURL
	record[1] = r.SiteURL
	record[2] = r.Current.StartString()
	record[3] = r.Current.EndString()
	record[4] = r.Previous.StartString()
	record[5] = r.Previous.EndString()
	record[18] = r.Error

	if r.CurrentMetrics == nil || r.PreviousMetrics == nil {
		return record
	}

	record[6] = utils.FormatInteger(r.CurrentMetrics.Clicks)
	record[7] = utils.FormatInteger(r.PreviousMetrics.Clicks)
	record[8] = utils.FormatInteger(r.Clicks.Absolute)
	record[9] = utils.FormatOptionalDecimal(r.Clicks.Percent, 2)
	record[10] = utils.FormatInteger(r.CurrentMetrics.Impressions)
	record[11] = utils.FormatInteger(r.PreviousMetrics.Impressions)
	record[12] = utils.FormatInteger(r.Impressions.Absolute)
	record[13] = utils.FormatOptionalDecimal(r.Impressions.Percent, 2)
	record[14] = utils.FormatDecimal(r.CurrentMetrics.CTR, 6)
	record[15] = utils.FormatDecimal(r.PreviousMetrics.CTR, 6)
	record[16] = utils.FormatOptionalDecimal(r.CurrentMetrics.Position, 2)
	record[17] = utils.FormatOptionalDecimal(r.PreviousMetrics.Position, 2)

	return record
}

// IndexStatus é o subconjunto de indexStatusResult exportado no relatório de indexação
type IndexStatus struct {
	Verdict         string   `json:"verdict"`
	CoverageState   string   `json:"coverage_state"`
	IndexingState   string   `json:"indexing_state"`
	RobotsTxtState  string   `json:"robots_txt_state"`
	PageFetchState  string   `json:"page_fetch_state"`
	CrawledAs       string   `json:"crawled_as"`
	LastCrawlTime   string   `json:"last_crawl_time"`
	GoogleCanonical string   `json:"canonical_google"`
	UserCanonical   string   `json:"canonical_user"`
	ReferringURLs   []string `json:"referring_urls"`
}

type InspectionRow struct {
	InspectionURL string
	SiteURL       string
	Status        *IndexStatus
	Error         string
}

func NewInspectionRow(inspectionURL, siteURL string, result InspectionResult) InspectionRow {
	row := InspectionRow{
		InspectionURL: inspectionURL,
		SiteURL:       siteURL,
	}

	if result.Failed() {
		row.Error = errorText(result.Err)
		return row
	}

	row.Status = result.Status
	if row.Status == nil {
		row.Status = &IndexStatus{}
	}
	return row
}

func (r InspectionRow) TargetValue() string  { return r.InspectionURL }
func (r InspectionRow) ErrorMessage() string { return r.Error }

func (r InspectionRow) Record() []string {
	record := make([]string, len(InspectionColumns))
	record[0] = r.InspectionURL
	record[1] = r.SiteURL
	record[12] = r.Error

	if r.Status == nil {
		return record
	}

	record[2] = r.Status.Verdict
	record[3] = r.Status.CoverageState
	record[4] = r.Status.IndexingState
	record[5] = r.Status.RobotsTxtState
	record[6] = r.Status.PageFetchState
	record[7] = r.Status.CrawledAs
	record[8] = r.Status.LastCrawlTime
	record[9] = r.Status.GoogleCanonical
	record[10] = r.Status.UserCanonical
	record[11] = strconv.Itoa(len(r.Status.ReferringURLs))

	return record
}

// Site é uma propriedade do Search Console acessível pela credencial
type Site struct {
	SiteURL         string `json:"site_url"`
	PermissionLevel string `json:"permission_level"`
}

func errorText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
