package reporting

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/search-console-insights/infrastructure/targetlist"
	"github.com/vfg2006/search-console-insights/internal/config"
	"github.com/vfg2006/search-console-insights/internal/domain"
	"github.com/vfg2006/search-console-insights/pkg/apiErrors"
	"github.com/vfg2006/search-console-insights/pkg/log"
	"github.com/vfg2006/search-console-insights/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type ReportingService interface {
	RunKeywords(ctx context.Context, request *domain.KeywordReportRequest) (*domain.Report, error)
	RunComparison(ctx context.Context, request *domain.ComparisonReportRequest) (*domain.Report, error)
	RunInspection(ctx context.Context, request *domain.InspectionReportRequest) (*domain.Report, error)
	ListSites(ctx context.Context) ([]domain.Site, error)
}

// SearchConsole agrupa as operações do Search Console usadas pelos relatórios
type SearchConsole interface {
	MetricsFetcher
	URLInspector
	SiteLister
}

type Service struct {
	searchConsole    SearchConsole
	sink             ReportSink
	metricsRunner    *Runner
	inspectionRunner *Runner
	cfg              *config.Config
	now              func() time.Time
	newID            func() (string, error)
}

type Option func(*Service)

// WithClock substitui o relógio usado no cálculo da janela de retenção
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithIDGenerator(newID func() (string, error)) Option {
	return func(s *Service) { s.newID = newID }
}

// WithRunners troca os runners padrão, por exemplo para injetar um Waiter de teste
func WithRunners(metrics, inspection *Runner) Option {
	return func(s *Service) {
		s.metricsRunner = metrics
		s.inspectionRunner = inspection
	}
}

func NewService(cfg *config.Config, searchConsole SearchConsole, sink ReportSink, opts ...Option) *Service {
	s := &Service{
		searchConsole:    searchConsole,
		sink:             sink,
		metricsRunner:    NewRunner(NewRunnerConfig(cfg.Batch, false), SleepWaiter{}, LogProgress{}),
		inspectionRunner: NewRunner(NewRunnerConfig(cfg.Batch, true), SleepWaiter{}, LogProgress{}),
		cfg:              cfg,
		now:              time.Now,
		newID:            utils.GenerateID,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) RunKeywords(ctx context.Context, request *domain.KeywordReportRequest) (*domain.Report, error) {
	if request.SiteURL == "" {
		return nil, preconditionError(domain.ErrSiteURLRequired)
	}

	dateRange, err := domain.ParseDateRange(request.StartDate, request.EndDate)
	if err != nil {
		return nil, preconditionError(err)
	}

	mode, err := domain.ParseMatchMode(request.MatchType)
	if err != nil {
		return nil, preconditionError(err)
	}

	targets, err := normalizeTargets(request.Targets)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		Kind:      domain.ReportKindKeywords,
		SiteURL:   request.SiteURL,
		Current:   &dateRange,
		MatchMode: mode,
	}

	plan := KeywordPlan{
		Fetcher:   s.searchConsole,
		SiteURL:   request.SiteURL,
		Range:     dateRange,
		MatchMode: mode,
	}

	return s.run(ctx, report, targets, s.metricsRunner, plan)
}

func (s *Service) RunComparison(ctx context.Context, request *domain.ComparisonReportRequest) (*domain.Report, error) {
	if request.SiteURL == "" {
		return nil, preconditionError(domain.ErrSiteURLRequired)
	}

	current, err := domain.ParseDateRange(request.StartDate, request.EndDate)
	if err != nil {
		return nil, preconditionError(err)
	}

	previous := domain.PreviousPeriod(current)
	horizon := domain.RetentionHorizon(s.now(), s.cfg.SearchConsole.RetentionMonths)
	if err := domain.ValidatePeriods(current, previous, horizon); err != nil {
		log.ForContext(ctx).WithError(err).Error("reporting: período fora da janela de retenção")
		return nil, preconditionError(err)
	}

	targets, err := normalizeTargets(request.Targets)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		Kind:     domain.ReportKindComparison,
		SiteURL:  request.SiteURL,
		Current:  &current,
		Previous: &previous,
	}

	plan := ComparisonPlan{
		Fetcher:  s.searchConsole,
		SiteURL:  request.SiteURL,
		Current:  current,
		Previous: previous,
	}

	return s.run(ctx, report, targets, s.metricsRunner, plan)
}

func (s *Service) RunInspection(ctx context.Context, request *domain.InspectionReportRequest) (*domain.Report, error) {
	if request.SiteURL == "" {
		return nil, preconditionError(domain.ErrSiteURLRequired)
	}

	targets, err := normalizeTargets(request.Targets)
	if err != nil {
		return nil, err
	}

	language := request.LanguageCode
	if language == "" {
		language = s.cfg.SearchConsole.LanguageCode
	}

	report := &domain.Report{
		Kind:    domain.ReportKindInspection,
		SiteURL: request.SiteURL,
	}

	plan := InspectionPlan{
		Inspector:    s.searchConsole,
		SiteURL:      request.SiteURL,
		LanguageCode: language,
	}

	return s.run(ctx, report, targets, s.inspectionRunner, plan)
}

func (s *Service) ListSites(ctx context.Context) ([]domain.Site, error) {
	sites, err := s.searchConsole.ListSites(ctx)
	if err != nil {
		return nil, NewReportError(ErrListSites, apiErrors.ErrExternalService, err.Error())
	}
	return sites, nil
}

func (s *Service) run(ctx context.Context, report *domain.Report, targets []string, runner *Runner, plan Plan) (*domain.Report, error) {
	id, err := s.newID()
	if err != nil {
		return nil, NewReportError(ErrGenerateRunID, apiErrors.ErrInternalServer, err.Error())
	}

	report.ID = id
	report.StartedAt = s.now()
	ctx = log.WithRunID(ctx, id)
	logger := log.ForContext(ctx)

	logger.WithFields(log.Fields{
		"report_kind": report.Kind,
		"total":       len(targets),
	}).Info("reporting: iniciando execução")

	rows, err := runner.Run(ctx, targets, plan)
	report.Rows = rows
	report.FinishedAt = s.now()
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return report, NewReportError(ErrRunCancelled, apiErrors.ErrInternalServer, err.Error())
		}
		return report, NewReportError(err, apiErrors.ErrInternalServer, "")
	}

	if s.sink != nil {
		if err := s.sink.Save(ctx, report); err != nil {
			logger.WithError(err).Error("reporting: falha ao salvar relatório")
			return report, NewReportError(ErrSaveReport, apiErrors.ErrDatabaseOperation, err.Error())
		}
	}

	logger.WithFields(log.Fields{
		"report_kind": report.Kind,
		"total":       len(rows),
		"error_count": report.ErrorCount(),
	}).Info("reporting: execução concluída")

	return report, nil
}

func normalizeTargets(targets []string) ([]string, error) {
	normalized := targetlist.Normalize(targets)
	if len(normalized) == 0 {
		return nil, preconditionError(domain.ErrEmptyTargetList)
	}
	return normalized, nil
}
