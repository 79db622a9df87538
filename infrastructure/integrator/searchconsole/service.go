package searchconsole

import (
	"context"
	"errors"
	"net"

	"github.com/sirupsen/logrus"
	gscdomain "github.com/vfg2006/search-console-insights/infrastructure/integrator/searchconsole/domain"
	"github.com/vfg2006/search-console-insights/infrastructure/integrator/searchconsole/gscclient"
	"github.com/vfg2006/search-console-insights/internal/config"
	"github.com/vfg2006/search-console-insights/internal/domain"
)

const defaultLanguageCode = "en-US"

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type SearchConsoleService interface {
	FetchMetrics(ctx context.Context, query domain.MetricsQuery) domain.FetchResult
	InspectURL(ctx context.Context, siteURL, inspectionURL, languageCode string) domain.InspectionResult
	ListSites(ctx context.Context) ([]domain.Site, error)
}

type SearchConsoleIntegrator struct {
	cfg    *config.Config
	Client gscclient.Client
}

func New(cfg *config.Config, client gscclient.Client) *SearchConsoleIntegrator {
	return &SearchConsoleIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchMetrics consulta um alvo em um período. Falhas viram resultado classificado, nunca erro.
func (s *SearchConsoleIntegrator) FetchMetrics(ctx context.Context, query domain.MetricsQuery) domain.FetchResult {
	request := FactorySearchAnalyticsRequest(query, s.cfg.SearchConsole.RowLimit)

	resp, err := s.Client.QuerySearchAnalytics(ctx, query.SiteURL, request)
	if err != nil {
		outcome := ClassifyError(err)
		logrus.WithFields(logrus.Fields{
			"target":  query.Target,
			"range":   query.Range.String(),
			"outcome": outcome.String(),
			"error":   err.Error(),
		}).Warn("metrics: failed to query search analytics")
		return domain.FetchResult{Outcome: outcome, Err: err}
	}

	rows := FactoryMetricsRows(resp)
	metrics := domain.AggregateRows(rows, query.MatchMode == domain.MatchEquals)

	logrus.WithFields(logrus.Fields{
		"target": query.Target,
		"range":  query.Range.String(),
		"rows":   len(rows),
	}).Debug("metrics: successfully retrieved search analytics")

	return domain.FetchOK(metrics)
}

// InspectURL consulta o status de indexação de uma URL
func (s *SearchConsoleIntegrator) InspectURL(ctx context.Context, siteURL, inspectionURL, languageCode string) domain.InspectionResult {
	if languageCode == "" {
		languageCode = s.cfg.SearchConsole.LanguageCode
	}
	if languageCode == "" {
		languageCode = defaultLanguageCode
	}

	resp, err := s.Client.InspectURL(ctx, &gscdomain.InspectionRequest{
		InspectionURL: inspectionURL,
		SiteURL:       siteURL,
		LanguageCode:  languageCode,
	})
	if err != nil {
		outcome := ClassifyError(err)
		logrus.WithFields(logrus.Fields{
			"target":  inspectionURL,
			"outcome": outcome.String(),
			"error":   err.Error(),
		}).Warn("inspection: failed to inspect url")
		return domain.InspectionResult{Outcome: outcome, Err: err}
	}

	return domain.InspectionResult{
		Outcome: domain.OutcomeOK,
		Status:  FactoryIndexStatus(resp),
	}
}

func (s *SearchConsoleIntegrator) ListSites(ctx context.Context) ([]domain.Site, error) {
	resp, err := s.Client.ListSites(ctx)
	if err != nil {
		logrus.WithError(err).Error("sites: failed to list search console properties")
		return nil, err
	}

	sites := make([]domain.Site, 0, len(resp.SiteEntry))
	for _, entry := range resp.SiteEntry {
		sites = append(sites, domain.Site{
			SiteURL:         entry.SiteURL,
			PermissionLevel: entry.PermissionLevel,
		})
	}

	return sites, nil
}

func FactorySearchAnalyticsRequest(query domain.MetricsQuery, rowLimit int) *gscdomain.SearchAnalyticsRequest {
	dimension := string(query.Dimension)
	if dimension == "" {
		dimension = string(domain.DimensionQuery)
	}

	operator := string(query.MatchMode)
	if operator == "" {
		operator = string(domain.MatchEquals)
	}

	return &gscdomain.SearchAnalyticsRequest{
		StartDate:  query.Range.StartString(),
		EndDate:    query.Range.EndString(),
		Dimensions: []string{dimension},
		DimensionFilterGroups: []gscdomain.DimensionFilterGroup{
			{
				Filters: []gscdomain.DimensionFilter{
					{
						Dimension:  dimension,
						Operator:   operator,
						Expression: query.Target,
					},
				},
			},
		},
		RowLimit: rowLimit,
	}
}

func FactoryMetricsRows(resp *gscdomain.SearchAnalyticsResponse) []domain.MetricsRow {
	if resp == nil {
		return nil
	}

	rows := make([]domain.MetricsRow, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		rows = append(rows, domain.MetricsRow{
			Keys:        row.Keys,
			Clicks:      row.Clicks,
			Impressions: row.Impressions,
			CTR:         row.Ctr,
			Position:    row.Position,
		})
	}
	return rows
}

// FactoryIndexStatus extrai os campos de indexStatusResult; ausente vira status vazio
func FactoryIndexStatus(resp *gscdomain.InspectionResponse) *domain.IndexStatus {
	if resp == nil || resp.InspectionResult.IndexStatusResult == nil {
		return &domain.IndexStatus{}
	}

	result := resp.InspectionResult.IndexStatusResult
	return &domain.IndexStatus{
		Verdict:         result.Verdict,
		CoverageState:   result.CoverageState,
		IndexingState:   result.IndexingState,
		RobotsTxtState:  result.RobotsTxtState,
		PageFetchState:  result.PageFetchState,
		CrawledAs:       result.CrawledAs,
		LastCrawlTime:   result.LastCrawlTime,
		GoogleCanonical: result.GoogleCanonical,
		UserCanonical:   result.UserCanonical,
		ReferringURLs:   result.ReferringUrls,
	}
}

// ClassifyError separa falhas que merecem espera (cota, indisponibilidade, timeout) das demais
func ClassifyError(err error) domain.Outcome {
	if err == nil {
		return domain.OutcomeOK
	}

	var apiErr *gscdomain.APIError
	if errors.As(err, &apiErr) {
		if apiErr.IsTransient() {
			return domain.OutcomeTransient
		}
		return domain.OutcomePermanent
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return domain.OutcomeTransient
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.OutcomeTransient
	}

	return domain.OutcomePermanent
}
