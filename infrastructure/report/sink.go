package report

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/search-console-insights/infrastructure/repository"
	"github.com/vfg2006/search-console-insights/internal/domain"
)

const (
	SinkCSV      = "csv"
	SinkSQLite   = "sqlite"
	SinkPostgres = "postgres"
)

// Sink persiste um relatório concluído
type Sink interface {
	Save(ctx context.Context, report *domain.Report) error
}

// DefaultPath monta results/YYYY-MM-DD/<tipo>.csv
func DefaultPath(outputDir string, kind domain.ReportKind, day time.Time) string {
	return filepath.Join(outputDir, day.Format(domain.DateLayout), string(kind)+".csv")
}

// CSVSink grava o relatório em disco. Path sobrescreve o caminho padrão.
type CSVSink struct {
	OutputDir string
	Path      string
}

func NewCSVSink(outputDir, path string) *CSVSink {
	return &CSVSink{OutputDir: outputDir, Path: path}
}

func (s *CSVSink) PathFor(report *domain.Report) string {
	if s.Path != "" {
		return s.Path
	}

	day := report.StartedAt
	if day.IsZero() {
		day = time.Now()
	}
	return DefaultPath(s.OutputDir, report.Kind, day)
}

func (s *CSVSink) Save(ctx context.Context, report *domain.Report) error {
	path := s.PathFor(report)

	w, err := NewCSVWriter(path)
	if err != nil {
		return err
	}

	if err := Write(w, report); err != nil {
		_ = w.Close()
		return err
	}

	if err := w.Close(); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"run_id": report.ID,
		"path":   path,
		"rows":   len(report.Rows),
	}).Info("report: relatório salvo em CSV")

	return nil
}

// RepositorySink grava o relatório no banco (SQLite ou Postgres)
type RepositorySink struct {
	repository repository.ReportRepository
}

func NewRepositorySink(repo repository.ReportRepository) *RepositorySink {
	return &RepositorySink{repository: repo}
}

func (s *RepositorySink) Save(ctx context.Context, report *domain.Report) error {
	if err := s.repository.SaveReport(ctx, report); err != nil {
		return fmt.Errorf("erro ao salvar execução %s: %w", report.ID, err)
	}

	logrus.WithFields(logrus.Fields{
		"run_id": report.ID,
		"rows":   len(report.Rows),
	}).Info("report: relatório salvo no banco")

	return nil
}

// MultiSink grava em todos os destinos, na ordem; para no primeiro erro
type MultiSink []Sink

func (m MultiSink) Save(ctx context.Context, report *domain.Report) error {
	for _, sink := range m {
		if err := sink.Save(ctx, report); err != nil {
			return err
		}
	}
	return nil
}
