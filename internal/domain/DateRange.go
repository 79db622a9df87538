package domain

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = time.DateOnly

// DefaultRetentionMonths é a janela aproximada de dados disponível na Search Analytics API
const DefaultRetentionMonths = 16

// DateRange representa um período fechado [Start, End] em datas de calendário
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// NewDateRange normaliza as datas para meia-noite UTC e valida a ordem
func NewDateRange(start, end time.Time) (DateRange, error) {
	start = truncateDate(start)
	end = truncateDate(end)

	if end.Before(start) {
		return DateRange{}, &DateRangeError{Start: start, End: end}
	}

	return DateRange{Start: start, End: end}, nil
}

// ParseDateRange lê duas datas no formato YYYY-MM-DD
func ParseDateRange(start, end string) (DateRange, error) {
	startDate, err := ParseDate(start)
	if err != nil {
		return DateRange{}, err
	}

	endDate, err := ParseDate(end)
	if err != nil {
		return DateRange{}, err
	}

	return NewDateRange(startDate, endDate)
}

func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return date, nil
}

// Days retorna a quantidade de dias do período, incluindo as duas pontas
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

func (r DateRange) StartString() string {
	return r.Start.Format(DateLayout)
}

func (r DateRange) EndString() string {
	return r.End.Format(DateLayout)
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.StartString(), r.EndString())
}

// PreviousPeriod calcula o período imediatamente anterior com o mesmo tamanho
func PreviousPeriod(current DateRange) DateRange {
	days := current.Days()
	end := current.Start.AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(days - 1))

	return DateRange{Start: start, End: end}
}

// SubtractMonths subtrai meses de calendário, limitando o dia ao último dia válido do mês de destino
// (ex: 31/03 menos 1 mês = 28/02 ou 29/02)
func SubtractMonths(d time.Time, months int) time.Time {
	year, month, day := d.Date()

	total := int(month) - 1 - months
	year += total / 12
	monthIndex := total % 12
	if monthIndex < 0 {
		monthIndex += 12
		year--
	}

	targetMonth := time.Month(monthIndex + 1)
	lastDay := time.Date(year, targetMonth+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(year, targetMonth, day, 0, 0, 0, 0, time.UTC)
}

// RetentionHorizon retorna a data mais antiga ainda consultável
func RetentionHorizon(today time.Time, months int) time.Time {
	if months <= 0 {
		months = DefaultRetentionMonths
	}
	return SubtractMonths(truncateDate(today), months)
}

// ValidatePeriods garante que os dois períodos da comparação estejam dentro da janela de retenção
func ValidatePeriods(current, previous DateRange, horizon time.Time) error {
	if current.Start.Before(horizon) || previous.Start.Before(horizon) {
		return &RetentionWindowError{
			Horizon:       horizon,
			CurrentStart:  current.Start,
			PreviousStart: previous.Start,
		}
	}
	return nil
}

func truncateDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
