package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/search-console-insights/infrastructure/targetlist"
	"github.com/vfg2006/search-console-insights/internal/bootstrap"
	"github.com/vfg2006/search-console-insights/internal/config"
	"github.com/vfg2006/search-console-insights/internal/domain"
	"github.com/vfg2006/search-console-insights/internal/usecases/reporting"
)

// environment reúne o que cada comando precisa para rodar um relatório
type environment struct {
	cfg     *config.Config
	service *reporting.Service
	sink    *bootstrap.Sink
}

func (e *environment) Close() error {
	if e.sink == nil {
		return nil
	}
	return e.sink.Close()
}

// newContext cancela o lote em SIGINT/SIGTERM; o relatório parcial não é gravado
func newContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração: %w", err)
	}

	bootstrap.ConfigureLogger(cfg.App.LogLevel)
	return cfg, nil
}

func newEnvironment(ctx context.Context, withSink bool) (*environment, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	searchConsole, err := bootstrap.NewSearchConsole(ctx, cfg)
	if err != nil {
		return nil, err
	}

	env := &environment{cfg: cfg}

	var sink reporting.ReportSink
	if withSink {
		env.sink, err = bootstrap.NewSink(ctx, cfg, bootstrap.SinkOptions{
			Kind:       sinkFlag,
			OutputPath: outputFlag,
		})
		if err != nil {
			return nil, err
		}
		sink = env.sink
	}

	env.service = reporting.NewService(cfg, searchConsole, sink)
	return env, nil
}

func loadTargets(path string) ([]string, error) {
	targets, err := targetlist.Load(path)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"input":   path,
		"targets": len(targets),
	}).Info("gsc: lista de alvos carregada")

	return targets, nil
}

func printSummary(report *domain.Report) {
	fmt.Fprintf(os.Stdout, "Relatório %s (%s): %d alvos, %d com erro\n",
		report.ID, report.Kind, len(report.Rows), report.ErrorCount())
}
