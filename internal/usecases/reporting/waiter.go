package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/search-console-insights/internal/domain"
	"github.com/vfg2006/search-console-insights/pkg/log"
)

// SleepWaiter espera de verdade, respeitando o cancelamento do contexto
type SleepWaiter struct{}

func (SleepWaiter) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// LogProgress registra o andamento no log
type LogProgress struct{}

func (LogProgress) Progress(ctx context.Context, kind domain.ReportKind, processed, total int) {
	log.ForContext(ctx).WithFields(log.Fields{
		"report_kind": kind,
		"processed":   processed,
		"total":       total,
	}).Infof("reporting: %d/%d alvos processados", processed, total)
}
