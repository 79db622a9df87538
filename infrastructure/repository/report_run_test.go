package repository

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/search-console-insights/infrastructure/database/sqlite"
	"github.com/vfg2006/search-console-insights/internal/config"
	"github.com/vfg2006/search-console-insights/internal/domain"
)

func newTestRepository(t *testing.T) ReportRepository {
	t.Helper()

	ctx := context.Background()
	conn, err := sqlite.NewConnection(ctx, config.Database{
		SQLitePath: filepath.Join(t.TempDir(), "reports.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	repo := NewReportRepository(conn)
	require.NoError(t, repo.Migrate(ctx))
	// Migração é idempotente
	require.NoError(t, repo.Migrate(ctx))

	return repo
}

func keywordReport(t *testing.T, id string, startedAt time.Time, keywords ...string) *domain.Report {
	t.Helper()

	dateRange, err := domain.ParseDateRange("2024-05-01", "2024-05-31")
	require.NoError(t, err)

	report := &domain.Report{
		ID:         id,
		Kind:       domain.ReportKindKeywords,
		SiteURL:    "sc-domain:example.com",
		Current:    &dateRange,
		MatchMode:  domain.MatchContains,
		StartedAt:  startedAt,
		FinishedAt: startedAt.Add(time.Minute),
	}

	for _, keyword := range keywords {
		result := domain.FetchOK(domain.AggregateMetrics{Clicks: 10, Impressions: 100, CTR: 0.1})
		if keyword == "falha" {
			result = domain.FetchPermanent(errors.New("forbidden"))
		}
		report.Rows = append(report.Rows, domain.NewKeywordRow(keyword, dateRange, domain.MatchContains, result))
	}

	return report
}

func TestReportRepository_SaveReport(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	startedAt := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveReport(ctx, keywordReport(t, "run1", startedAt, "seo", "falha", "golang")))

	tests := []struct {
		name     string
		validate func(t *testing.T)
	}{
		{
			name: "Execução salva com status e contadores",
			validate: func(t *testing.T) {
				run, err := repo.GetRun(ctx, "run1")
				require.NoError(t, err)
				require.NotNil(t, run)

				assert.Equal(t, domain.ReportKindKeywords, run.Kind)
				assert.Equal(t, "sc-domain:example.com", run.SiteURL)
				assert.Equal(t, domain.RunStatusFinished, run.Status)
				assert.Equal(t, 3, run.TargetCount)
				assert.Equal(t, 1, run.ErrorCount)
				require.NotNil(t, run.CurrentStart)
				assert.Equal(t, "2024-05-01", *run.CurrentStart)
				assert.Equal(t, "2024-05-31", *run.CurrentEnd)
				assert.Nil(t, run.PreviousStart)
				require.NotNil(t, run.MatchMode)
				assert.Equal(t, "contains", *run.MatchMode)
				assert.True(t, startedAt.Equal(run.StartedAt))
				require.NotNil(t, run.FinishedAt)
				assert.True(t, startedAt.Add(time.Minute).Equal(*run.FinishedAt))
			},
		},
		{
			name: "Linhas preservam a ordem dos alvos e o erro",
			validate: func(t *testing.T) {
				rows, err := repo.GetRunRows(ctx, "run1")
				require.NoError(t, err)
				require.Len(t, rows, 3)

				assert.Equal(t, []string{"seo", "falha", "golang"}, []string{rows[0].Target, rows[1].Target, rows[2].Target})
				assert.Equal(t, 0, rows[0].Position)
				assert.Equal(t, "seo", rows[0].Values["keyword"])
				assert.Equal(t, "2024-05-01", rows[0].Values["start_date"])
				assert.Empty(t, rows[0].Error)
				assert.Equal(t, "forbidden", rows[1].Error)
				assert.Equal(t, "forbidden", rows[1].Values["error"])
			},
		},
		{
			name: "Execução inexistente retorna nil sem erro",
			validate: func(t *testing.T) {
				run, err := repo.GetRun(ctx, "nao-existe")
				assert.NoError(t, err)
				assert.Nil(t, run)
			},
		},
		{
			name: "ID duplicado falha e não grava linhas novas",
			validate: func(t *testing.T) {
				err := repo.SaveReport(ctx, keywordReport(t, "run1", startedAt, "outra"))
				assert.Error(t, err)

				rows, err := repo.GetRunRows(ctx, "run1")
				require.NoError(t, err)
				assert.Len(t, rows, 3)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t)
		})
	}
}

func TestReportRepository_ListRuns(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveReport(ctx, keywordReport(t, "antiga", base, "seo")))
	require.NoError(t, repo.SaveReport(ctx, keywordReport(t, "recente", base.Add(500*time.Millisecond), "seo")))
	require.NoError(t, repo.SaveReport(ctx, keywordReport(t, "meio", base.Add(100*time.Millisecond), "seo")))

	runs, err := repo.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, []string{"recente", "meio", "antiga"}, []string{runs[0].ID, runs[1].ID, runs[2].ID})

	limited, err := repo.ListRuns(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "recente", limited[0].ID)
}

func TestReportRepository_CreateRunAndFinish(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	report := keywordReport(t, "manual", time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC), "seo")

	run := domain.NewReportRun(report)
	require.NoError(t, repo.CreateRun(ctx, run))

	stored, err := repo.GetRun(ctx, "manual")
	require.NoError(t, err)
	assert.Equal(t, domain.RunStatusRunning, stored.Status)
	assert.Nil(t, stored.FinishedAt)

	require.NoError(t, repo.SaveRows(ctx, report.StoredRows()))
	require.NoError(t, repo.FinishRun(ctx, "manual", 0, report.FinishedAt))

	stored, err = repo.GetRun(ctx, "manual")
	require.NoError(t, err)
	assert.Equal(t, domain.RunStatusFinished, stored.Status)
	assert.NotNil(t, stored.FinishedAt)

	err = repo.FinishRun(ctx, "nao-existe", 0, time.Now())
	assert.Error(t, err)
}

func TestReportRepository_SaveRowsInChunks(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	keywords := make([]string, 0, 2*rowsChunkSize+3)
	for i := 0; i < cap(keywords); i++ {
		keywords = append(keywords, fmt.Sprintf("keyword-%04d", i))
	}

	require.NoError(t, repo.SaveReport(ctx, keywordReport(t, "grande", time.Now(), keywords...)))

	rows, err := repo.GetRunRows(ctx, "grande")
	require.NoError(t, err)
	require.Len(t, rows, len(keywords))
	assert.Equal(t, keywords[len(keywords)-1], rows[len(rows)-1].Target)
	assert.Equal(t, len(keywords)-1, rows[len(rows)-1].Position)
}
