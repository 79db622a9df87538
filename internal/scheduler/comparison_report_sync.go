package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/search-console-insights/infrastructure/targetlist"
	"github.com/vfg2006/search-console-insights/internal/config"
	"github.com/vfg2006/search-console-insights/internal/domain"
	"github.com/vfg2006/search-console-insights/internal/usecases/reporting"
)

// ComparisonReportSyncConfig representa a configuração do relatório comparativo agendado
type ComparisonReportSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SiteURL      string
	InputFile    string
	SyncEnabled  bool
}

// ComparisonReportSyncService agenda o relatório comparativo de páginas
type ComparisonReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              ComparisonReportSyncConfig
	reportingService    reporting.ReportingService
	loadTargets         func(path string) ([]string, error)
	now                 func() time.Time
	ctx                 context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string
	lastErrorCount      int
	lastError           string
}

func NewComparisonReportSyncService(reportingService reporting.ReportingService, appConfig *config.Config) *ComparisonReportSyncService {
	syncConfig := ComparisonReportSyncConfig{
		CronSchedule: appConfig.ComparisonSync.CronSchedule,
		LookbackDays: appConfig.ComparisonSync.LookbackDays,
		SiteURL:      appConfig.ComparisonSync.SiteURL,
		InputFile:    appConfig.ComparisonSync.InputFile,
		SyncEnabled:  appConfig.ComparisonSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"site_url":      syncConfig.SiteURL,
		"input":         syncConfig.InputFile,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("scheduler: configuração do relatório comparativo carregada")

	return &ComparisonReportSyncService{
		scheduler:        gocron.NewScheduler(time.Local),
		config:           syncConfig,
		reportingService: reportingService,
		loadTargets:      targetlist.Load,
		now:              time.Now,
		ctx:              context.Background(),
	}
}

// ComparisonWindow devolve os últimos `days` dias completos, terminando ontem
func ComparisonWindow(now time.Time, days int) (domain.DateRange, error) {
	if days < 1 {
		days = 1
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := today.AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(days - 1))

	return domain.NewDateRange(start, end)
}

func (s *ComparisonReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("scheduler: relatório comparativo desabilitado por configuração")
		return nil
	}

	if s.config.SiteURL == "" {
		return fmt.Errorf("relatório comparativo agendado sem propriedade: %w", domain.ErrSiteURLRequired)
	}

	s.ctx = ctx

	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: iniciando agendador do relatório comparativo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncComparisonReport()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório comparativo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: parando agendador do relatório comparativo")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ComparisonReportSyncService) syncComparisonReport() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("scheduler: relatório comparativo já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	runID, errorCount, err := s.runComparison()

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.lastRunID = runID
	s.lastErrorCount = errorCount
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("scheduler: falha no relatório comparativo agendado")
		return
	}

	s.lastSyncCompletedAt = s.now()
	logrus.WithFields(logrus.Fields{
		"run_id":      runID,
		"error_count": errorCount,
		"duration":    s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt).String(),
	}).Info("scheduler: relatório comparativo concluído")
}

func (s *ComparisonReportSyncService) runComparison() (string, int, error) {
	window, err := ComparisonWindow(s.now(), s.config.LookbackDays)
	if err != nil {
		return "", 0, err
	}

	targets, err := s.loadTargets(s.config.InputFile)
	if err != nil {
		return "", 0, err
	}

	logrus.WithFields(logrus.Fields{
		"start_date": window.StartString(),
		"end_date":   window.EndString(),
		"total":      len(targets),
	}).Info("scheduler: período do relatório comparativo")

	report, err := s.reportingService.RunComparison(s.ctx, &domain.ComparisonReportRequest{
		SiteURL:   s.config.SiteURL,
		StartDate: window.StartString(),
		EndDate:   window.EndString(),
		Targets:   targets,
	})
	if report == nil {
		return "", 0, err
	}

	return report.ID, report.ErrorCount(), err
}

// TriggerManualSync dispara o relatório fora do agendamento
func (s *ComparisonReportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("scheduler: relatório comparativo já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("scheduler: iniciando relatório comparativo manual")
	go s.syncComparisonReport()
}

func (s *ComparisonReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"site_url":               s.config.SiteURL,
		"lookback_days":          s.config.LookbackDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_run_id":            s.lastRunID,
		"last_error_count":       s.lastErrorCount,
		"last_error":             s.lastError,
	}
}
