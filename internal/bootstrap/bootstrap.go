package bootstrap

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/search-console-insights/infrastructure/database"
	"github.com/vfg2006/search-console-insights/infrastructure/database/postgres"
	"github.com/vfg2006/search-console-insights/infrastructure/database/sqlite"
	"github.com/vfg2006/search-console-insights/infrastructure/integrator/searchconsole"
	"github.com/vfg2006/search-console-insights/infrastructure/integrator/searchconsole/gscclient"
	"github.com/vfg2006/search-console-insights/infrastructure/report"
	"github.com/vfg2006/search-console-insights/infrastructure/repository"
	"github.com/vfg2006/search-console-insights/internal/config"
	"github.com/vfg2006/search-console-insights/internal/usecases/reporting"
)

// ConfigureLogger aplica o formato padrão e o nível vindo de LOG_LEVEL
func ConfigureLogger(level string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
}

// SinkOptions escolhe o destino do relatório
type SinkOptions struct {
	Kind       string // csv, sqlite ou postgres; vazio usa REPORT_SINK
	OutputPath string // sobrescreve results/YYYY-MM-DD/<tipo>.csv
}

// Sink agrupa o destino montado e o repositório, quando houver banco
type Sink struct {
	reporting.ReportSink
	Repository repository.ReportRepository
	conn       database.Conn
}

func (s *Sink) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// NewSink monta o destino. Com banco, o CSV continua sendo gravado.
func NewSink(ctx context.Context, cfg *config.Config, opts SinkOptions) (*Sink, error) {
	kind := opts.Kind
	if kind == "" {
		kind = cfg.Sink.Kind
	}

	csvSink := report.NewCSVSink(cfg.Sink.OutputDir, opts.OutputPath)

	var conn database.Conn
	var err error
	switch kind {
	case "", report.SinkCSV:
		return &Sink{ReportSink: csvSink}, nil
	case report.SinkSQLite:
		conn, err = sqlite.NewConnection(ctx, cfg.Database)
	case report.SinkPostgres:
		conn, err = postgres.NewConnection(ctx, cfg.Database)
	default:
		return nil, fmt.Errorf("destino de relatório desconhecido: %q (use csv, sqlite ou postgres)", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao banco (%s): %w", kind, err)
	}

	repo := repository.NewReportRepository(conn)
	if err := repo.Migrate(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}

	logrus.WithField("sink", kind).Info("bootstrap: destino de relatórios com banco configurado")

	return &Sink{
		ReportSink: report.MultiSink{csvSink, report.NewRepositorySink(repo)},
		Repository: repo,
		conn:       conn,
	}, nil
}

// NewSearchConsole carrega as credenciais OAuth e monta o integrador
func NewSearchConsole(ctx context.Context, cfg *config.Config) (*searchconsole.SearchConsoleIntegrator, error) {
	tokenManager := gscclient.NewTokenManager(cfg)
	if err := tokenManager.InitToken(ctx); err != nil {
		return nil, err
	}

	client := gscclient.NewClient(cfg, tokenManager)
	return searchconsole.New(cfg, client), nil
}

// CloseQuietly fecha c registrando o erro, para uso em defer
func CloseQuietly(c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		logrus.WithError(err).Warn("bootstrap: erro ao fechar recurso")
	}
}
