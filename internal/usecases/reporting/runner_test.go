package reporting

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/search-console-insights/internal/domain"
	"github.com/vfg2006/search-console-insights/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

// recordingWaiter registra as esperas na mesma linha do tempo das consultas
type recordingWaiter struct {
	events *[]string
	waits  []time.Duration
	onWait func()
}

func (w *recordingWaiter) Wait(ctx context.Context, d time.Duration) error {
	w.waits = append(w.waits, d)
	if w.events != nil {
		*w.events = append(*w.events, "wait:"+d.String())
	}
	if w.onWait != nil {
		w.onWait()
	}
	return nil
}

func testRunnerConfig() RunnerConfig {
	return RunnerConfig{
		RequestDelay:  150 * time.Millisecond,
		BackoffBase:   time.Second,
		BackoffStep:   1500 * time.Millisecond,
		BackoffMax:    10 * time.Second,
		BackoffCycle:  5,
		ProgressEvery: 25,
	}
}

func testRange() domain.DateRange {
	return domain.DateRange{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

func okMetrics(clicks, impressions float64) domain.FetchResult {
	position := 3.0
	return domain.FetchOK(domain.AggregateMetrics{
		Clicks:      clicks,
		Impressions: impressions,
		CTR:         clicks / impressions,
		Position:    &position,
	})
}

func TestRunner_Backoff(t *testing.T) {
	runner := NewRunner(testRunnerConfig(), &recordingWaiter{}, nil)

	tests := []struct {
		index int
		want  time.Duration
	}{
		{index: 1, want: 2500 * time.Millisecond},
		{index: 3, want: 5500 * time.Millisecond},
		{index: 4, want: 7 * time.Second},
		{index: 5, want: time.Second},
		{index: 9, want: 7 * time.Second},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("alvo %d", tt.index), func(t *testing.T) {
			assert.Equal(t, tt.want, runner.Backoff(tt.index))
		})
	}

	t.Run("Respeita o teto configurado", func(t *testing.T) {
		cfg := testRunnerConfig()
		cfg.BackoffMax = 3 * time.Second
		capped := NewRunner(cfg, &recordingWaiter{}, nil)
		assert.Equal(t, 3*time.Second, capped.Backoff(4))
		assert.Equal(t, 2500*time.Millisecond, capped.Backoff(1))
	})
}

func TestRunner_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := mocks.NewMockMetricsFetcher(ctrl)

	plan := KeywordPlan{
		Fetcher:   mockFetcher,
		SiteURL:   "sc-domain:example.com",
		Range:     testRange(),
		MatchMode: domain.MatchEquals,
	}

	t.Run("Falha transitória no terceiro alvo - linha vazia com erro e backoff antes do quarto", func(t *testing.T) {
		var events []string
		waiter := &recordingWaiter{events: &events}
		runner := NewRunner(testRunnerConfig(), waiter, nil)

		targets := []string{"k1", "k2", "k3", "k4", "k5"}
		for _, target := range targets {
			target := target
			result := okMetrics(10, 100)
			if target == "k3" {
				result = domain.FetchTransient(errors.New("rate limit exceeded"))
			}
			mockFetcher.EXPECT().
				FetchMetrics(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, query domain.MetricsQuery) domain.FetchResult {
					assert.Equal(t, target, query.Target)
					assert.Equal(t, domain.DimensionQuery, query.Dimension)
					events = append(events, "fetch:"+query.Target)
					return result
				})
		}

		rows, err := runner.Run(context.Background(), targets, plan)

		require.NoError(t, err)
		require.Len(t, rows, 5)
		for i, target := range targets {
			assert.Equal(t, target, rows[i].TargetValue())
		}

		record := rows[2].Record()
		assert.Equal(t, []string{"k3", "", "", "", "", "2024-03-01", "2024-03-31", "equals", "rate limit exceeded"}, record)
		assert.Empty(t, rows[3].ErrorMessage())

		assert.Equal(t, []string{
			"fetch:k1", "wait:150ms",
			"fetch:k2", "wait:150ms",
			"fetch:k3", "wait:5.5s", "wait:150ms",
			"fetch:k4", "wait:150ms",
			"fetch:k5", "wait:150ms",
		}, events)
	})

	t.Run("Falha permanente não aplica backoff", func(t *testing.T) {
		waiter := &recordingWaiter{}
		runner := NewRunner(testRunnerConfig(), waiter, nil)

		mockFetcher.EXPECT().FetchMetrics(gomock.Any(), gomock.Any()).Return(domain.FetchPermanent(errors.New("forbidden")))
		mockFetcher.EXPECT().FetchMetrics(gomock.Any(), gomock.Any()).Return(okMetrics(1, 10))

		rows, err := runner.Run(context.Background(), []string{"a", "b"}, plan)

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "forbidden", rows[0].ErrorMessage())
		assert.Equal(t, []time.Duration{150 * time.Millisecond, 150 * time.Millisecond}, waiter.waits)
	})

	t.Run("Ordem preservada com resultados mistos", func(t *testing.T) {
		runner := NewRunner(testRunnerConfig(), &recordingWaiter{}, nil)

		results := []domain.FetchResult{
			domain.FetchPermanent(errors.New("bad request")),
			okMetrics(5, 50),
			domain.FetchTransient(errors.New("backend error")),
			okMetrics(2, 20),
		}
		targets := []string{"w", "x", "y", "z"}
		for _, result := range results {
			mockFetcher.EXPECT().FetchMetrics(gomock.Any(), gomock.Any()).Return(result)
		}

		rows, err := runner.Run(context.Background(), targets, plan)

		require.NoError(t, err)
		require.Len(t, rows, len(targets))
		for i, target := range targets {
			assert.Equal(t, target, rows[i].TargetValue())
		}
		assert.NotEmpty(t, rows[0].ErrorMessage())
		assert.Empty(t, rows[1].ErrorMessage())
		assert.NotEmpty(t, rows[2].ErrorMessage())
		assert.Empty(t, rows[3].ErrorMessage())
	})

	t.Run("Cancelamento interrompe o lote entre alvos", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		waiter := &recordingWaiter{onWait: cancel}
		runner := NewRunner(testRunnerConfig(), waiter, nil)

		mockFetcher.EXPECT().FetchMetrics(gomock.Any(), gomock.Any()).Return(okMetrics(1, 10)).Times(1)

		rows, err := runner.Run(ctx, []string{"a", "b", "c"}, plan)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Len(t, rows, 1)
	})
}

func TestRunner_Progress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := mocks.NewMockMetricsFetcher(ctrl)
	mockProgress := mocks.NewMockProgressReporter(ctrl)

	targets := make([]string, 30)
	for i := range targets {
		targets[i] = fmt.Sprintf("keyword-%02d", i+1)
	}

	mockFetcher.EXPECT().FetchMetrics(gomock.Any(), gomock.Any()).Return(okMetrics(1, 10)).Times(30)
	gomock.InOrder(
		mockProgress.EXPECT().Progress(gomock.Any(), domain.ReportKindKeywords, 25, 30),
		mockProgress.EXPECT().Progress(gomock.Any(), domain.ReportKindKeywords, 30, 30),
	)

	runner := NewRunner(testRunnerConfig(), &recordingWaiter{}, mockProgress)
	rows, err := runner.Run(context.Background(), targets, KeywordPlan{
		Fetcher:   mockFetcher,
		SiteURL:   "sc-domain:example.com",
		Range:     testRange(),
		MatchMode: domain.MatchContains,
	})

	require.NoError(t, err)
	assert.Len(t, rows, 30)
}

func TestComparisonPlan_Process(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := mocks.NewMockMetricsFetcher(ctrl)

	current := testRange()
	previous := domain.PreviousPeriod(current)
	plan := ComparisonPlan{
		Fetcher:  mockFetcher,
		SiteURL:  "sc-domain:example.com",
		Current:  current,
		Previous: previous,
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, row domain.ReportRow, outcome domain.Outcome)
	}{
		{
			name: "Dois períodos consultados e variações calculadas",
			setup: func() {
				gomock.InOrder(
					mockFetcher.EXPECT().
						FetchMetrics(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, query domain.MetricsQuery) domain.FetchResult {
							assert.Equal(t, current, query.Range)
							assert.Equal(t, domain.DimensionPage, query.Dimension)
							assert.Equal(t, domain.MatchEquals, query.MatchMode)
							return okMetrics(150, 1000)
						}),
					mockFetcher.EXPECT().
						FetchMetrics(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, query domain.MetricsQuery) domain.FetchResult {
							assert.Equal(t, previous, query.Range)
							return okMetrics(100, 1000)
						}),
				)
			},
			validate: func(t *testing.T, row domain.ReportRow, outcome domain.Outcome) {
				assert.Equal(t, domain.OutcomeOK, outcome)
				record := domain.RecordMap(domain.ComparisonColumns, row.Record())
				assert.Equal(t, "2024-01-30", record["previous_start"])
				assert.Equal(t, "2024-02-29", record["previous_end"])
				assert.Equal(t, "150", record["clicks_current"])
				assert.Equal(t, "100", record["clicks_previous"])
				assert.Equal(t, "50", record["clicks_change_abs"])
				assert.Equal(t, "50", record["clicks_change_pct"])
				assert.Equal(t, "0", record["impressions_change_pct"])
				assert.Empty(t, record["error"])
			},
		},
		{
			name: "Falha no período atual não consulta o anterior",
			setup: func() {
				mockFetcher.EXPECT().
					FetchMetrics(gomock.Any(), gomock.Any()).
					Return(domain.FetchTransient(errors.New("quota"))).
					Times(1)
			},
			validate: func(t *testing.T, row domain.ReportRow, outcome domain.Outcome) {
				assert.Equal(t, domain.OutcomeTransient, outcome)
				record := domain.RecordMap(domain.ComparisonColumns, row.Record())
				assert.Equal(t, "current period: quota", record["error"])
				assert.Equal(t, "2024-03-01", record["current_start"])
				assert.Empty(t, record["clicks_current"])
				assert.Empty(t, record["clicks_change_pct"])
			},
		},
		{
			name: "Falha no período anterior gera linha de erro",
			setup: func() {
				mockFetcher.EXPECT().FetchMetrics(gomock.Any(), gomock.Any()).Return(okMetrics(1, 10))
				mockFetcher.EXPECT().FetchMetrics(gomock.Any(), gomock.Any()).Return(domain.FetchPermanent(errors.New("not found")))
			},
			validate: func(t *testing.T, row domain.ReportRow, outcome domain.Outcome) {
				assert.Equal(t, domain.OutcomePermanent, outcome)
				assert.Equal(t, "previous period: not found", row.ErrorMessage())
				record := domain.RecordMap(domain.ComparisonColumns, row.Record())
				assert.Empty(t, record["clicks_current"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			row, outcome := plan.Process(context.Background(), "https://example.com/page")
			tt.validate(t, row, outcome)
		})
	}
}

func TestInspectionPlan_Process(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInspector := mocks.NewMockURLInspector(ctrl)
	plan := InspectionPlan{Inspector: mockInspector, SiteURL: "sc-domain:example.com", LanguageCode: "pt-BR"}

	mockInspector.EXPECT().
		InspectURL(gomock.Any(), "sc-domain:example.com", "https://example.com/a", "pt-BR").
		Return(domain.InspectionResult{
			Outcome: domain.OutcomeOK,
			Status: &domain.IndexStatus{
				Verdict:       "PASS",
				CoverageState: "Submitted and indexed",
				ReferringURLs: []string{"https://example.com/"},
			},
		})

	row, outcome := plan.Process(context.Background(), "https://example.com/a")

	assert.Equal(t, domain.OutcomeOK, outcome)
	record := domain.RecordMap(domain.InspectionColumns, row.Record())
	assert.Equal(t, "PASS", record["verdict"])
	assert.Equal(t, "1", record["referring_urls_count"])
}
