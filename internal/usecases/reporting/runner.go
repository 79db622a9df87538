package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/search-console-insights/internal/config"
	"github.com/vfg2006/search-console-insights/internal/domain"
	"github.com/vfg2006/search-console-insights/pkg/log"
)

// Plan processa um único alvo e devolve a linha já montada e o resultado da consulta
type Plan interface {
	Kind() domain.ReportKind
	Process(ctx context.Context, target string) (domain.ReportRow, domain.Outcome)
}

type RunnerConfig struct {
	RequestDelay  time.Duration
	BackoffBase   time.Duration
	BackoffStep   time.Duration
	BackoffMax    time.Duration
	BackoffCycle  int
	ProgressEvery int
}

// NewRunnerConfig lê os parâmetros do lote; inspeção usa a pausa própria
func NewRunnerConfig(batch config.Batch, inspection bool) RunnerConfig {
	delay := batch.RequestDelay
	if inspection {
		delay = batch.InspectionDelay
	}

	return RunnerConfig{
		RequestDelay:  delay,
		BackoffBase:   batch.BackoffBase,
		BackoffStep:   batch.BackoffStep,
		BackoffMax:    batch.BackoffMax,
		BackoffCycle:  batch.BackoffCycle,
		ProgressEvery: batch.ProgressEvery,
	}
}

// Runner percorre os alvos em ordem, um por vez, aplicando pausa e backoff
type Runner struct {
	cfg      RunnerConfig
	waiter   Waiter
	progress ProgressReporter
}

func NewRunner(cfg RunnerConfig, waiter Waiter, progress ProgressReporter) *Runner {
	if cfg.BackoffCycle <= 0 {
		cfg.BackoffCycle = 5
	}
	if cfg.ProgressEvery <= 0 {
		cfg.ProgressEvery = 25
	}
	if waiter == nil {
		waiter = SleepWaiter{}
	}
	if progress == nil {
		progress = LogProgress{}
	}

	return &Runner{
		cfg:      cfg,
		waiter:   waiter,
		progress: progress,
	}
}

// Backoff calcula a espera após uma falha transitória no alvo de índice i (base 1)
func (r *Runner) Backoff(i int) time.Duration {
	wait := r.cfg.BackoffBase + time.Duration(i%r.cfg.BackoffCycle)*r.cfg.BackoffStep
	if r.cfg.BackoffMax > 0 && wait > r.cfg.BackoffMax {
		return r.cfg.BackoffMax
	}
	return wait
}

// Run devolve exatamente uma linha por alvo, na ordem de entrada.
// O cancelamento do contexto interrompe o lote entre alvos.
func (r *Runner) Run(ctx context.Context, targets []string, plan Plan) ([]domain.ReportRow, error) {
	logger := log.ForContext(ctx)
	total := len(targets)
	rows := make([]domain.ReportRow, 0, total)

	for i, target := range targets {
		if err := ctx.Err(); err != nil {
			logger.WithError(err).Warn("reporting: lote interrompido")
			return rows, err
		}

		row, outcome := plan.Process(ctx, target)
		rows = append(rows, row)
		processed := i + 1

		switch outcome {
		case domain.OutcomeTransient:
			backoff := r.Backoff(processed)
			logger.WithFields(log.Fields{
				"target": target,
				"error":  row.ErrorMessage(),
			}).Warnf("reporting: falha transitória, aguardando %s", backoff)
			if err := r.waiter.Wait(ctx, backoff); err != nil {
				return rows, err
			}
		case domain.OutcomePermanent:
			logger.WithFields(log.Fields{
				"target": target,
				"error":  row.ErrorMessage(),
			}).Warn("reporting: falha permanente, seguindo para o próximo alvo")
		}

		if processed%r.cfg.ProgressEvery == 0 || processed == total {
			r.progress.Progress(ctx, plan.Kind(), processed, total)
		}

		if err := r.waiter.Wait(ctx, r.cfg.RequestDelay); err != nil {
			return rows, err
		}
	}

	return rows, nil
}
