package reporting

import (
	"context"
	"fmt"

	"github.com/vfg2006/search-console-insights/internal/domain"
)

// KeywordPlan consulta cada palavra-chave em um único período
type KeywordPlan struct {
	Fetcher   MetricsFetcher
	SiteURL   string
	Range     domain.DateRange
	MatchMode domain.MatchMode
}

func (p KeywordPlan) Kind() domain.ReportKind { return domain.ReportKindKeywords }

func (p KeywordPlan) Process(ctx context.Context, keyword string) (domain.ReportRow, domain.Outcome) {
	result := p.Fetcher.FetchMetrics(ctx, domain.MetricsQuery{
		SiteURL:   p.SiteURL,
		Target:    keyword,
		Dimension: domain.DimensionQuery,
		MatchMode: p.MatchMode,
		Range:     p.Range,
	})

	return domain.NewKeywordRow(keyword, p.Range, p.MatchMode, result), result.Outcome
}

// ComparisonPlan consulta cada página nos períodos atual e anterior.
// Se o período atual falhar, o anterior não é consultado.
type ComparisonPlan struct {
	Fetcher  MetricsFetcher
	SiteURL  string
	Current  domain.DateRange
	Previous domain.DateRange
}

func (p ComparisonPlan) Kind() domain.ReportKind { return domain.ReportKindComparison }

func (p ComparisonPlan) Process(ctx context.Context, pageURL string) (domain.ReportRow, domain.Outcome) {
	current := p.Fetcher.FetchMetrics(ctx, p.query(pageURL, p.Current))
	if current.Failed() {
		err := fmt.Errorf("current period: %w", current.Err)
		return domain.FailedComparisonRow(pageURL, p.SiteURL, p.Current, p.Previous, err), current.Outcome
	}

	previous := p.Fetcher.FetchMetrics(ctx, p.query(pageURL, p.Previous))
	if previous.Failed() {
		err := fmt.Errorf("previous period: %w", previous.Err)
		return domain.FailedComparisonRow(pageURL, p.SiteURL, p.Current, p.Previous, err), previous.Outcome
	}

	return domain.NewComparisonRow(pageURL, p.SiteURL, p.Current, p.Previous, current.Metrics, previous.Metrics), domain.OutcomeOK
}

func (p ComparisonPlan) query(pageURL string, dateRange domain.DateRange) domain.MetricsQuery {
	return domain.MetricsQuery{
		SiteURL:   p.SiteURL,
		Target:    pageURL,
		Dimension: domain.DimensionPage,
		MatchMode: domain.MatchEquals,
		Range:     dateRange,
	}
}

// InspectionPlan consulta o status de indexação de cada URL
type InspectionPlan struct {
	Inspector    URLInspector
	SiteURL      string
	LanguageCode string
}

func (p InspectionPlan) Kind() domain.ReportKind { return domain.ReportKindInspection }

func (p InspectionPlan) Process(ctx context.Context, inspectionURL string) (domain.ReportRow, domain.Outcome) {
	result := p.Inspector.InspectURL(ctx, p.SiteURL, inspectionURL, p.LanguageCode)
	return domain.NewInspectionRow(inspectionURL, p.SiteURL, result), result.Outcome
}
