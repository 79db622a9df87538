package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/search-console-insights/internal/domain"
	"github.com/vfg2006/search-console-insights/pkg/apiErrors"
)

var (
	ErrSaveReport    = errors.New("error saving report")
	ErrGenerateRunID = errors.New("error generating run ID")
	ErrListSites     = errors.New("error listing search console properties")
	ErrRunCancelled  = errors.New("report run cancelled")
)

// ReportError é um erro com contexto adicional para execuções de relatório
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Target  string // Alvo envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// preconditionError traduz erros fatais de validação para o código da API
func preconditionError(err error) *ReportError {
	var rangeErr *domain.DateRangeError
	var retentionErr *domain.RetentionWindowError

	switch {
	case errors.As(err, &rangeErr):
		return NewReportError(err, apiErrors.ErrInvalidDateRange, "")
	case errors.As(err, &retentionErr):
		return NewReportError(err, apiErrors.ErrRetentionWindow, "")
	case errors.Is(err, domain.ErrEmptyTargetList):
		return NewReportError(err, apiErrors.ErrEmptyTargetList, "")
	case errors.Is(err, domain.ErrSiteURLRequired):
		return NewReportError(err, apiErrors.ErrMissingRequiredData, "")
	case errors.Is(err, domain.ErrInvalidDate), errors.Is(err, domain.ErrInvalidMatchMode):
		return NewReportError(err, apiErrors.ErrInvalidFormat, "")
	default:
		return NewReportError(err, apiErrors.ErrInvalidRequest, "")
	}
}
