package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/search-console-insights/infrastructure/database"
	"github.com/vfg2006/search-console-insights/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	reportRunsTable = "report_runs"
	reportRowsTable = "report_rows"

	// Limite de linhas por INSERT
	rowsChunkSize = 500

	// Largura fixa para que a ordenação textual seja cronológica
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

var reportRunColumns = []string{
	"id", "kind", "site_url", "status",
	"current_start", "current_end", "previous_start", "previous_end", "match_type",
	"target_count", "error_count", "created_at", "finished_at",
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS report_runs (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		site_url TEXT NOT NULL,
		status TEXT NOT NULL,
		current_start TEXT,
		current_end TEXT,
		previous_start TEXT,
		previous_end TEXT,
		match_type TEXT,
		target_count INTEGER NOT NULL DEFAULT 0,
		error_count INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		finished_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS report_rows (
		run_id TEXT NOT NULL REFERENCES report_runs(id) ON DELETE CASCADE,
		row_index INTEGER NOT NULL,
		target TEXT NOT NULL,
		payload TEXT NOT NULL,
		error TEXT,
		PRIMARY KEY (run_id, row_index)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_report_runs_created_at ON report_runs (created_at)`,
}

type ReportRepository interface {
	Migrate(ctx context.Context) error
	CreateRun(ctx context.Context, run *domain.ReportRun) error
	SaveRows(ctx context.Context, rows []domain.StoredRow) error
	FinishRun(ctx context.Context, runID string, errorCount int, finishedAt time.Time) error
	SaveReport(ctx context.Context, report *domain.Report) error
	GetRun(ctx context.Context, runID string) (*domain.ReportRun, error)
	ListRuns(ctx context.Context, limit int) ([]*domain.ReportRun, error)
	GetRunRows(ctx context.Context, runID string) ([]domain.StoredRow, error)
}

type reportRepository struct {
	conn database.Conn
}

func NewReportRepository(conn database.Conn) ReportRepository {
	return &reportRepository{
		conn: conn,
	}
}

func (r *reportRepository) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(r.conn.Placeholder())
}

// Migrate cria as tabelas de execuções caso não existam
func (r *reportRepository) Migrate(ctx context.Context) error {
	for _, statement := range migrations {
		if _, err := r.conn.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("erro ao executar migração: %w", err)
		}
	}

	logrus.Debug("repository: tabelas de relatórios prontas")
	return nil
}

func (r *reportRepository) CreateRun(ctx context.Context, run *domain.ReportRun) error {
	return r.insertRun(ctx, r.conn, run)
}

func (r *reportRepository) SaveRows(ctx context.Context, rows []domain.StoredRow) error {
	return r.insertRows(ctx, r.conn, rows)
}

func (r *reportRepository) FinishRun(ctx context.Context, runID string, errorCount int, finishedAt time.Time) error {
	return r.finishRun(ctx, r.conn, runID, errorCount, finishedAt)
}

// SaveReport grava execução e linhas em uma única transação
func (r *reportRepository) SaveReport(ctx context.Context, report *domain.Report) error {
	run := domain.NewReportRun(report)
	rows := report.StoredRows()

	finishedAt := report.FinishedAt
	if finishedAt.IsZero() {
		finishedAt = time.Now()
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := r.insertRun(ctx, tx, run); err != nil {
			return err
		}
		if err := r.insertRows(ctx, tx, rows); err != nil {
			return err
		}
		return r.finishRun(ctx, tx, run.ID, run.ErrorCount, finishedAt)
	})
}

func (r *reportRepository) GetRun(ctx context.Context, runID string) (*domain.ReportRun, error) {
	query, args, err := r.builder().
		Select(reportRunColumns...).
		From(reportRunsTable).
		Where(squirrel.Eq{"id": runID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	run, err := scanRun(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear execução: %w", err)
	}

	return run, nil
}

func (r *reportRepository) ListRuns(ctx context.Context, limit int) ([]*domain.ReportRun, error) {
	builder := r.builder().
		Select(reportRunColumns...).
		From(reportRunsTable).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.ReportRun, 0)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear execução: %w", err)
		}
		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}

func (r *reportRepository) GetRunRows(ctx context.Context, runID string) ([]domain.StoredRow, error) {
	query, args, err := r.builder().
		Select("run_id", "row_index", "target", "payload", "error").
		From(reportRowsTable).
		Where(squirrel.Eq{"run_id": runID}).
		OrderBy("row_index ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	stored := make([]domain.StoredRow, 0)
	for rows.Next() {
		var row domain.StoredRow
		var payload string
		var rowErr sql.NullString

		if err := rows.Scan(&row.RunID, &row.Position, &row.Target, &payload, &rowErr); err != nil {
			return nil, fmt.Errorf("erro ao escanear linha: %w", err)
		}

		if err := json.Unmarshal([]byte(payload), &row.Values); err != nil {
			return nil, fmt.Errorf("erro ao deserializar payload da linha %d: %w", row.Position, err)
		}
		row.Error = rowErr.String

		stored = append(stored, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stored, nil
}

func (r *reportRepository) insertRun(ctx context.Context, q database.Queryer, run *domain.ReportRun) error {
	var finishedAt *string
	if run.FinishedAt != nil {
		value := formatTime(*run.FinishedAt)
		finishedAt = &value
	}

	query, args, err := r.builder().
		Insert(reportRunsTable).
		Columns(reportRunColumns...).
		Values(
			run.ID,
			string(run.Kind),
			run.SiteURL,
			run.Status,
			run.CurrentStart,
			run.CurrentEnd,
			run.PreviousStart,
			run.PreviousEnd,
			run.MatchMode,
			run.TargetCount,
			run.ErrorCount,
			formatTime(run.StartedAt),
			finishedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir execução %s: %w", run.ID, err)
	}

	return nil
}

func (r *reportRepository) insertRows(ctx context.Context, q database.Queryer, rows []domain.StoredRow) error {
	for start := 0; start < len(rows); start += rowsChunkSize {
		end := min(start+rowsChunkSize, len(rows))

		builder := r.builder().
			Insert(reportRowsTable).
			Columns("run_id", "row_index", "target", "payload", "error")

		for _, row := range rows[start:end] {
			row := row // cópia por iteração (semântica de loop do Go < 1.22)
			payload, err := json.Marshal(row.Values)
			if err != nil {
				return fmt.Errorf("erro ao serializar linha %d para JSON: %w", row.Position, err)
			}

			var rowErr *string
			if row.Error != "" {
				rowErr = &row.Error
			}

			builder = builder.Values(row.RunID, row.Position, row.Target, string(payload), rowErr)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao inserir linhas: %w", err)
		}
	}

	return nil
}

func (r *reportRepository) finishRun(ctx context.Context, q database.Queryer, runID string, errorCount int, finishedAt time.Time) error {
	query, args, err := r.builder().
		Update(reportRunsTable).
		Set("status", domain.RunStatusFinished).
		Set("error_count", errorCount).
		Set("finished_at", formatTime(finishedAt)).
		Where(squirrel.Eq{"id": runID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao finalizar execução %s: %w", runID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("execução %s não encontrada", runID)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(scanner rowScanner) (*domain.ReportRun, error) {
	var run domain.ReportRun
	var kind, createdAt string
	var currentStart, currentEnd, previousStart, previousEnd, matchType, finishedAt sql.NullString

	err := scanner.Scan(
		&run.ID,
		&kind,
		&run.SiteURL,
		&run.Status,
		&currentStart,
		&currentEnd,
		&previousStart,
		&previousEnd,
		&matchType,
		&run.TargetCount,
		&run.ErrorCount,
		&createdAt,
		&finishedAt,
	)
	if err != nil {
		return nil, err
	}

	run.Kind = domain.ReportKind(kind)
	run.CurrentStart = nullableString(currentStart)
	run.CurrentEnd = nullableString(currentEnd)
	run.PreviousStart = nullableString(previousStart)
	run.PreviousEnd = nullableString(previousEnd)
	run.MatchMode = nullableString(matchType)

	if run.StartedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("created_at inválido: %w", err)
	}

	if finishedAt.Valid {
		finished, err := time.Parse(timeLayout, finishedAt.String)
		if err != nil {
			return nil, fmt.Errorf("finished_at inválido: %w", err)
		}
		run.FinishedAt = &finished
	}

	return &run, nil
}

func nullableString(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	return &value.String
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
