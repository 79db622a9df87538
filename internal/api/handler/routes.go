package handler

import (
	"net/http"

	"github.com/vfg2006/search-console-insights/infrastructure/repository"
	"github.com/vfg2006/search-console-insights/internal/api/handler/router"
	"github.com/vfg2006/search-console-insights/internal/usecases/authenticating"
	"github.com/vfg2006/search-console-insights/internal/usecases/reporting"
	"github.com/vfg2006/search-console-insights/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Reports(service reporting.ReportingService, repo repository.ReportRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sites",
			Method:      http.MethodGet,
			Handler:     ListSites(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/keywords",
			Method:      http.MethodPost,
			Handler:     RunKeywordReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/comparison",
			Method:      http.MethodPost,
			Handler:     RunComparisonReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/inspection",
			Method:      http.MethodPost,
			Handler:     RunInspectionReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/runs",
			Method:      http.MethodGet,
			Handler:     ListRuns(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/runs/:id",
			Method:      http.MethodGet,
			Handler:     GetRun(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
