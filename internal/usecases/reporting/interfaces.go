package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/search-console-insights/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

// MetricsFetcher consulta métricas de um único alvo em um período
type MetricsFetcher interface {
	FetchMetrics(ctx context.Context, query domain.MetricsQuery) domain.FetchResult
}

// URLInspector consulta o status de indexação de uma URL
type URLInspector interface {
	InspectURL(ctx context.Context, siteURL, inspectionURL, languageCode string) domain.InspectionResult
}

// SiteLister lista as propriedades acessíveis pela credencial
type SiteLister interface {
	ListSites(ctx context.Context) ([]domain.Site, error)
}

// Waiter pausa o lote entre alvos; retorna erro se o contexto for cancelado
type Waiter interface {
	Wait(ctx context.Context, d time.Duration) error
}

// ProgressReporter recebe o andamento do lote
type ProgressReporter interface {
	Progress(ctx context.Context, kind domain.ReportKind, processed, total int)
}

// ReportSink persiste o relatório final (CSV, SQLite ou Postgres)
type ReportSink interface {
	Save(ctx context.Context, report *domain.Report) error
}
