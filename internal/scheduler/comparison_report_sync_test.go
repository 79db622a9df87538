package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/search-console-insights/internal/config"
	"github.com/vfg2006/search-console-insights/internal/domain"
	"github.com/vfg2006/search-console-insights/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func TestComparisonWindow(t *testing.T) {
	tests := []struct {
		name          string
		now           time.Time
		days          int
		expectedStart string
		expectedEnd   string
	}{
		{
			name:          "28 dias completos terminando ontem",
			now:           time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC),
			days:          28,
			expectedStart: "2024-05-18",
			expectedEnd:   "2024-06-14",
		},
		{
			name:          "Virada de ano",
			now:           time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC),
			days:          7,
			expectedStart: "2023-12-25",
			expectedEnd:   "2023-12-31",
		},
		{
			name:          "Valor inválido vira um único dia",
			now:           time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			days:          0,
			expectedStart: "2024-02-29",
			expectedEnd:   "2024-02-29",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := ComparisonWindow(tt.now, tt.days)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStart, window.StartString())
			assert.Equal(t, tt.expectedEnd, window.EndString())
		})
	}
}

func newTestSyncService(t *testing.T, ctrl *gomock.Controller) (*ComparisonReportSyncService, *mocks.MockReportingService) {
	t.Helper()

	mockReporting := mocks.NewMockReportingService(ctrl)
	cfg := &config.Config{
		ComparisonSync: config.ComparisonSync{
			CronSchedule: "0 6 * * 1",
			LookbackDays: 28,
			SiteURL:      "sc-domain:example.com",
			InputFile:    "input/urls.txt",
			Enabled:      true,
		},
	}

	service := NewComparisonReportSyncService(mockReporting, cfg)
	service.now = func() time.Time { return time.Date(2024, 6, 17, 6, 0, 0, 0, time.UTC) }

	return service, mockReporting
}

func TestComparisonReportSyncService_syncComparisonReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockReporting := newTestSyncService(t, ctrl)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, status map[string]any)
	}{
		{
			name: "Executa a comparação com a janela e os alvos configurados",
			setup: func() {
				service.loadTargets = func(path string) ([]string, error) {
					assert.Equal(t, "input/urls.txt", path)
					return []string{"https://example.com/a", "https://example.com/b"}, nil
				}

				mockReporting.EXPECT().
					RunComparison(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, request *domain.ComparisonReportRequest) (*domain.Report, error) {
						assert.Equal(t, "sc-domain:example.com", request.SiteURL)
						assert.Equal(t, "2024-05-20", request.StartDate)
						assert.Equal(t, "2024-06-16", request.EndDate)
						assert.Len(t, request.Targets, 2)
						return &domain.Report{ID: "run42", Kind: domain.ReportKindComparison}, nil
					})
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, "run42", status["last_run_id"])
				assert.Equal(t, "", status["last_error"])
				assert.Equal(t, false, status["sync_running"])
				assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
			},
		},
		{
			name: "Lista de alvos ausente registra o erro sem chamar o relatório",
			setup: func() {
				service.loadTargets = func(path string) ([]string, error) {
					return nil, domain.ErrTargetListNotFound
				}
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, domain.ErrTargetListNotFound.Error(), status["last_error"])
			},
		},
		{
			name: "Erro fatal do relatório fica no status",
			setup: func() {
				service.loadTargets = func(path string) ([]string, error) {
					return []string{"https://example.com/a"}, nil
				}
				mockReporting.EXPECT().
					RunComparison(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("period outside retention window"))
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, "period outside retention window", status["last_error"])
				assert.Equal(t, "", status["last_run_id"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			service.syncComparisonReport()
			tt.validate(t, service.GetStatus())
		})
	}
}

func TestComparisonReportSyncService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Desabilitado não agenda nada", func(t *testing.T) {
		service, _ := newTestSyncService(t, ctrl)
		service.config.SyncEnabled = false
		assert.NoError(t, service.Start(context.Background()))
	})

	t.Run("Sem propriedade configurada", func(t *testing.T) {
		service, _ := newTestSyncService(t, ctrl)
		service.config.SiteURL = ""
		err := service.Start(context.Background())
		assert.ErrorIs(t, err, domain.ErrSiteURLRequired)
	})

	t.Run("Cron inválido", func(t *testing.T) {
		service, _ := newTestSyncService(t, ctrl)
		service.config.CronSchedule = "isso não é cron"
		assert.Error(t, service.Start(context.Background()))
	})
}
