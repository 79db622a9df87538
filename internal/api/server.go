package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/search-console-insights/infrastructure/repository"
	"github.com/vfg2006/search-console-insights/internal/api/handler"
	"github.com/vfg2006/search-console-insights/internal/api/handler/router"
	"github.com/vfg2006/search-console-insights/internal/config"
	"github.com/vfg2006/search-console-insights/internal/scheduler"
	"github.com/vfg2006/search-console-insights/internal/usecases/authenticating"
	"github.com/vfg2006/search-console-insights/internal/usecases/reporting"
	"github.com/vfg2006/search-console-insights/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// New monta o servidor. reportRepo pode ser nil quando o destino é CSV.
func New(
	config *config.Config,
	reportingService reporting.ReportingService,
	reportRepo repository.ReportRepository,
	authenticator authenticating.Authenticator,
	comparisonSyncService *scheduler.ComparisonReportSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{}
	if comparisonSyncService != nil {
		cronServices[handler.CronJobTypeComparison] = comparisonSyncService
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, reportingService, reportRepo, authenticator, cronServices),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta rotas e middlewares; exposto para testes com httptest
func NewHandler(
	config *config.Config,
	reportingService reporting.ReportingService,
	reportRepo repository.ReportRepository,
	authenticator authenticating.Authenticator,
	cronServices handler.CronJobServices,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Reports(reportingService, reportRepo)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("api: servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("api: erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("api: sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("api: contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("api: iniciando desligamento gracioso")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("api: erro durante o desligamento do servidor")
		return err
	}

	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("api: servidor HTTP desligado")
	return nil
}
