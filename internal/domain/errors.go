package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrFatalPrecondition marca erros que abortam a execução antes de qualquer consulta
var ErrFatalPrecondition = errors.New("fatal precondition")

var (
	ErrInvalidDate        = fmt.Errorf("%w: invalid date, expected YYYY-MM-DD", ErrFatalPrecondition)
	ErrInvalidMatchMode   = fmt.Errorf("%w: invalid match type, expected equals or contains", ErrFatalPrecondition)
	ErrSiteURLRequired    = fmt.Errorf("%w: site url is required", ErrFatalPrecondition)
	ErrEmptyTargetList    = fmt.Errorf("%w: target list is empty", ErrFatalPrecondition)
	ErrTargetListNotFound = fmt.Errorf("%w: target list file not found", ErrFatalPrecondition)
)

// DateRangeError indica um período cujo fim é anterior ao início
type DateRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *DateRangeError) Error() string {
	return fmt.Sprintf("end date %s is before start date %s", e.End.Format(DateLayout), e.Start.Format(DateLayout))
}

func (e *DateRangeError) Unwrap() error {
	return ErrFatalPrecondition
}

// RetentionWindowError indica que o período atual ou o anterior começa antes
// do horizonte de retenção do Search Console
type RetentionWindowError struct {
	Horizon       time.Time
	CurrentStart  time.Time
	PreviousStart time.Time
}

func (e *RetentionWindowError) Error() string {
	return fmt.Sprintf(
		"requested periods start before the data retention horizon %s (current start %s, previous start %s)",
		e.Horizon.Format(DateLayout),
		e.CurrentStart.Format(DateLayout),
		e.PreviousStart.Format(DateLayout),
	)
}

func (e *RetentionWindowError) Unwrap() error {
	return ErrFatalPrecondition
}

// IsFatal informa se o erro deve interromper o lote inteiro
func IsFatal(err error) bool {
	return errors.Is(err, ErrFatalPrecondition)
}
