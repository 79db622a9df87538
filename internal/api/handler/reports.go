package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/search-console-insights/infrastructure/report"
	"github.com/vfg2006/search-console-insights/infrastructure/repository"
	"github.com/vfg2006/search-console-insights/internal/domain"
	"github.com/vfg2006/search-console-insights/internal/usecases/reporting"
	"github.com/vfg2006/search-console-insights/pkg/apiErrors"
	"github.com/vfg2006/search-console-insights/pkg/log"
)

const (
	defaultRunsLimit = 50
	maxRunsLimit     = 500

	contentTypeCSV = "text/csv"
)

func RunKeywordReport(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.KeywordReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.RunKeywords(r.Context(), &req)
		writeReport(w, r, result, err)
	}
}

func RunComparisonReport(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ComparisonReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.RunComparison(r.Context(), &req)
		writeReport(w, r, result, err)
	}
}

func RunInspectionReport(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.InspectionReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.RunInspection(r.Context(), &req)
		writeReport(w, r, result, err)
	}
}

func ListSites(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sites, err := service.ListSites(r.Context())
		if err != nil {
			writeReportingError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, sites)
	}
}

func ListRuns(repo repository.ReportRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Histórico disponível apenas com REPORT_SINK sqlite ou postgres", nil)
			return
		}

		limit := defaultRunsLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = min(parsed, maxRunsLimit)
		}

		runs, err := repo.ListRuns(r.Context(), limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("reporting: erro ao listar execuções")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar execuções", nil)
			return
		}

		writeJSON(w, http.StatusOK, runs)
	}
}

func GetRun(repo repository.ReportRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Histórico disponível apenas com REPORT_SINK sqlite ou postgres", nil)
			return
		}

		runID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if runID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da execução não fornecido", nil)
			return
		}

		run, err := repo.GetRun(r.Context(), runID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("reporting: erro ao buscar execução")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar execução", nil)
			return
		}
		if run == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Execução não encontrada", map[string]string{"id": runID})
			return
		}

		rows, err := repo.GetRunRows(r.Context(), runID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("reporting: erro ao buscar linhas da execução")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar linhas da execução", nil)
			return
		}

		writeJSON(w, http.StatusOK, domain.ReportRunDetail{ReportRun: run, Rows: rows})
	}
}

// writeReport responde em CSV quando o cliente pede text/csv, senão em JSON
func writeReport(w http.ResponseWriter, r *http.Request, result *domain.Report, err error) {
	if err != nil {
		writeReportingError(w, r, err)
		return
	}

	if strings.Contains(r.Header.Get("Accept"), contentTypeCSV) {
		w.Header().Set("Content-Type", contentTypeCSV+"; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", string(result.Kind)+".csv"))
		w.WriteHeader(http.StatusOK)
		if err := report.Encode(w, result); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("reporting: erro ao escrever CSV")
		}
		return
	}

	writeJSON(w, http.StatusOK, domain.NewReportResponse(result))
}

func writeReportingError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		if domain.IsFatal(err) {
			logger.Warn("reporting: requisição recusada")
		} else {
			logger.Error("reporting: falha na execução")
		}
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), nil)
		return
	}

	logger.Error("reporting: falha no serviço externo")
	apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
}
