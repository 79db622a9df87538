package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/search-console-insights/internal/api"
	"github.com/vfg2006/search-console-insights/internal/bootstrap"
	"github.com/vfg2006/search-console-insights/internal/config"
	"github.com/vfg2006/search-console-insights/internal/scheduler"
	"github.com/vfg2006/search-console-insights/internal/usecases/authenticating"
	"github.com/vfg2006/search-console-insights/internal/usecases/reporting"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Inicializa configuração de logs
	bootstrap.ConfigureLogger(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	searchConsole, err := bootstrap.NewSearchConsole(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar credenciais do Search Console")
	}

	sink, err := bootstrap.NewSink(ctx, cfg, bootstrap.SinkOptions{})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o destino dos relatórios")
	}
	defer bootstrap.CloseQuietly(sink)

	reportingService := reporting.NewService(cfg, searchConsole, sink)
	authenticator := authenticating.NewService(cfg)

	comparisonSyncService := scheduler.NewComparisonReportSyncService(reportingService, cfg)
	if err := comparisonSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de comparação de períodos")
	} else if cfg.ComparisonSync.Enabled {
		logrus.Info("Agendador de comparação de períodos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportingService,
		sink.Repository, // nil quando o destino é apenas CSV
		authenticator,
		comparisonSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
