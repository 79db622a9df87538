package searchconsole

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gscdomain "github.com/vfg2006/search-console-insights/infrastructure/integrator/searchconsole/domain"
	"github.com/vfg2006/search-console-insights/infrastructure/integrator/searchconsole/gscclient/mocks"
	"github.com/vfg2006/search-console-insights/internal/config"
	"github.com/vfg2006/search-console-insights/internal/domain"
	"go.uber.org/mock/gomock"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func testConfig() *config.Config {
	return &config.Config{
		SearchConsole: config.SearchConsole{
			RowLimit:     25000,
			LanguageCode: "en-US",
		},
	}
}

func testQuery(mode domain.MatchMode) domain.MetricsQuery {
	return domain.MetricsQuery{
		SiteURL:   "sc-domain:example.com",
		Target:    "seo",
		Dimension: domain.DimensionQuery,
		MatchMode: mode,
		Range: domain.DateRange{
			Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestSearchConsoleIntegrator_FetchMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(testConfig(), mockClient)

	tests := []struct {
		name     string
		query    domain.MetricsQuery
		setup    func()
		validate func(t *testing.T, result domain.FetchResult)
	}{
		{
			name:  "Várias linhas em contains - soma e média ponderada da posição",
			query: testQuery(domain.MatchContains),
			setup: func() {
				mockClient.EXPECT().
					QuerySearchAnalytics(gomock.Any(), "sc-domain:example.com", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, request *gscdomain.SearchAnalyticsRequest) (*gscdomain.SearchAnalyticsResponse, error) {
						assert.Equal(t, "2024-01-01", request.StartDate)
						assert.Equal(t, "2024-01-31", request.EndDate)
						assert.Equal(t, 25000, request.RowLimit)
						assert.Equal(t, "contains", request.DimensionFilterGroups[0].Filters[0].Operator)
						assert.Equal(t, "seo", request.DimensionFilterGroups[0].Filters[0].Expression)
						return &gscdomain.SearchAnalyticsResponse{
							Rows: []gscdomain.SearchAnalyticsRow{
								{Keys: []string{"seo"}, Clicks: 10, Impressions: 100, Ctr: 0.1, Position: 5},
								{Keys: []string{"seo tools"}, Clicks: 5, Impressions: 50, Ctr: 0.1, Position: 2},
							},
						}, nil
					})
			},
			validate: func(t *testing.T, result domain.FetchResult) {
				require.False(t, result.Failed())
				assert.Equal(t, 15.0, result.Metrics.Clicks)
				assert.Equal(t, 150.0, result.Metrics.Impressions)
				assert.InDelta(t, 0.1, result.Metrics.CTR, 1e-9)
				require.NotNil(t, result.Metrics.Position)
				assert.InDelta(t, 4.0, *result.Metrics.Position, 1e-9)
			},
		},
		{
			name:  "Uma linha em equals - mantém CTR e posição do serviço",
			query: testQuery(domain.MatchEquals),
			setup: func() {
				mockClient.EXPECT().
					QuerySearchAnalytics(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&gscdomain.SearchAnalyticsResponse{
						Rows: []gscdomain.SearchAnalyticsRow{
							{Keys: []string{"seo"}, Clicks: 3, Impressions: 40, Ctr: 0.075, Position: 7.25},
						},
					}, nil)
			},
			validate: func(t *testing.T, result domain.FetchResult) {
				require.False(t, result.Failed())
				assert.Equal(t, 0.075, result.Metrics.CTR)
				assert.Equal(t, 7.25, *result.Metrics.Position)
			},
		},
		{
			name:  "Sem linhas - zeros e posição vazia",
			query: testQuery(domain.MatchEquals),
			setup: func() {
				mockClient.EXPECT().
					QuerySearchAnalytics(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&gscdomain.SearchAnalyticsResponse{}, nil)
			},
			validate: func(t *testing.T, result domain.FetchResult) {
				require.False(t, result.Failed())
				assert.Equal(t, 0.0, result.Metrics.Clicks)
				assert.Nil(t, result.Metrics.Position)
			},
		},
		{
			name:  "Cota excedida - falha transitória",
			query: testQuery(domain.MatchEquals),
			setup: func() {
				mockClient.EXPECT().
					QuerySearchAnalytics(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &gscdomain.APIError{StatusCode: http.StatusTooManyRequests, Message: "quota"})
			},
			validate: func(t *testing.T, result domain.FetchResult) {
				assert.Equal(t, domain.OutcomeTransient, result.Outcome)
				assert.Error(t, result.Err)
			},
		},
		{
			name:  "Sem permissão - falha permanente",
			query: testQuery(domain.MatchEquals),
			setup: func() {
				mockClient.EXPECT().
					QuerySearchAnalytics(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &gscdomain.APIError{StatusCode: http.StatusForbidden, Status: "PERMISSION_DENIED"})
			},
			validate: func(t *testing.T, result domain.FetchResult) {
				assert.Equal(t, domain.OutcomePermanent, result.Outcome)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			tt.validate(t, integrator.FetchMetrics(context.Background(), tt.query))
		})
	}
}

func TestSearchConsoleIntegrator_InspectURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(testConfig(), mockClient)

	t.Run("Usa o idioma padrão e extrai indexStatusResult", func(t *testing.T) {
		mockClient.EXPECT().
			InspectURL(gomock.Any(), &gscdomain.InspectionRequest{
				InspectionURL: "https://example.com/a",
				SiteURL:       "sc-domain:example.com",
				LanguageCode:  "en-US",
			}).
			Return(&gscdomain.InspectionResponse{
				InspectionResult: gscdomain.InspectionResult{
					IndexStatusResult: &gscdomain.IndexStatusResult{
						Verdict:         "PASS",
						CoverageState:   "Submitted and indexed",
						GoogleCanonical: "https://example.com/a",
						ReferringUrls:   []string{"https://example.com/", "https://example.com/b"},
					},
				},
			}, nil)

		result := integrator.InspectURL(context.Background(), "sc-domain:example.com", "https://example.com/a", "")

		require.False(t, result.Failed())
		assert.Equal(t, "PASS", result.Status.Verdict)
		assert.Equal(t, "https://example.com/a", result.Status.GoogleCanonical)
		assert.Len(t, result.Status.ReferringURLs, 2)
	})

	t.Run("Resposta sem indexStatusResult gera status vazio", func(t *testing.T) {
		mockClient.EXPECT().
			InspectURL(gomock.Any(), gomock.Any()).
			Return(&gscdomain.InspectionResponse{}, nil)

		result := integrator.InspectURL(context.Background(), "sc-domain:example.com", "https://example.com/a", "pt-BR")

		require.False(t, result.Failed())
		require.NotNil(t, result.Status)
		assert.Empty(t, result.Status.Verdict)
	})

	t.Run("Erro da API vira resultado com falha", func(t *testing.T) {
		mockClient.EXPECT().
			InspectURL(gomock.Any(), gomock.Any()).
			Return(nil, &gscdomain.APIError{StatusCode: http.StatusServiceUnavailable})

		result := integrator.InspectURL(context.Background(), "sc-domain:example.com", "https://example.com/a", "")

		assert.Equal(t, domain.OutcomeTransient, result.Outcome)
		assert.Nil(t, result.Status)
	})
}

func TestSearchConsoleIntegrator_ListSites(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(testConfig(), mockClient)

	mockClient.EXPECT().ListSites(gomock.Any()).Return(&gscdomain.SitesResponse{
		SiteEntry: []gscdomain.SiteEntry{
			{SiteURL: "sc-domain:example.com", PermissionLevel: "siteOwner"},
			{SiteURL: "https://blog.example.com/", PermissionLevel: "siteFullUser"},
		},
	}, nil)

	sites, err := integrator.ListSites(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.Site{
		{SiteURL: "sc-domain:example.com", PermissionLevel: "siteOwner"},
		{SiteURL: "https://blog.example.com/", PermissionLevel: "siteFullUser"},
	}, sites)
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want domain.Outcome
	}{
		{name: "Sem erro", err: nil, want: domain.OutcomeOK},
		{name: "500 é transitório", err: &gscdomain.APIError{StatusCode: http.StatusInternalServerError}, want: domain.OutcomeTransient},
		{name: "backendError é transitório", err: &gscdomain.APIError{StatusCode: http.StatusBadRequest, Reasons: []string{"backendError"}}, want: domain.OutcomeTransient},
		{name: "404 é permanente", err: &gscdomain.APIError{StatusCode: http.StatusNotFound}, want: domain.OutcomePermanent},
		{name: "Erro embrulhado mantém a classificação", err: fmt.Errorf("consulta: %w", &gscdomain.APIError{StatusCode: http.StatusBadGateway}), want: domain.OutcomeTransient},
		{name: "Timeout de rede é transitório", err: timeoutError{}, want: domain.OutcomeTransient},
		{name: "Prazo do contexto é transitório", err: context.DeadlineExceeded, want: domain.OutcomeTransient},
		{name: "Erro genérico é permanente", err: errors.New("boom"), want: domain.OutcomePermanent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyError(tt.err))
		})
	}
}
