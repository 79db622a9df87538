package domain

import (
	"time"
)

// ReportKind identifica o tipo de relatório e também o nome do artefato gerado
type ReportKind string

const (
	ReportKindKeywords   ReportKind = "keywords_performance"
	ReportKindComparison ReportKind = "page_performance_comparison"
	ReportKindInspection ReportKind = "index_status"
)

var (
	KeywordColumns = []string{
		"keyword", "clicks", "impressions", "ctr", "position",
		"start_date", "end_date", "match_type", "error",
	}

	ComparisonColumns = []string{
		"page_url", "site_url",
		"current_start", "current_end", "previous_start", "previous_end",
		"clicks_current", "clicks_previous", "clicks_change_abs", "clicks_change_pct",
		"impressions_current", "impressions_previous", "impressions_change_abs", "impressions_change_pct",
		"ctr_current", "ctr_previous", "position_current", "position_previous",
		"error",
	}

	InspectionColumns = []string{
		"inspection_url", "site_url", "verdict", "coverage_state", "indexing_state",
		"robots_txt_state", "page_fetch_state", "crawled_as", "last_crawl_time",
		"canonical_google", "canonical_user", "referring_urls_count", "error",
	}
)

func ParseReportKind(value string) (ReportKind, bool) {
	switch ReportKind(value) {
	case ReportKindKeywords, ReportKindComparison, ReportKindInspection:
		return ReportKind(value), true
	}
	return "", false
}

// Columns retorna o cabeçalho do CSV para o tipo de relatório
func (k ReportKind) Columns() []string {
	switch k {
	case ReportKindKeywords:
		return KeywordColumns
	case ReportKindComparison:
		return ComparisonColumns
	case ReportKindInspection:
		return InspectionColumns
	default:
		return nil
	}
}

// ReportRow é uma linha de saída, já formatada na ordem de Columns()
type ReportRow interface {
	TargetValue() string
	Record() []string
	ErrorMessage() string
}

// Report agrupa todas as linhas de uma execução, na ordem dos alvos
type Report struct {
	ID         string      `json:"id"`
	Kind       ReportKind  `json:"kind"`
	SiteURL    string      `json:"site_url"`
	Current    *DateRange  `json:"current,omitempty"`
	Previous   *DateRange  `json:"previous,omitempty"`
	MatchMode  MatchMode   `json:"match_type,omitempty"`
	Rows       []ReportRow `json:"-"`
	StartedAt  time.Time   `json:"started_at"`
	FinishedAt time.Time   `json:"finished_at"`
}

func (r *Report) ErrorCount() int {
	count := 0
	for _, row := range r.Rows {
		if row.ErrorMessage() != "" {
			count++
		}
	}
	return count
}

// Records devolve as linhas como mapas coluna -> valor
func (r *Report) Records() []map[string]string {
	columns := r.Kind.Columns()
	records := make([]map[string]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		records = append(records, RecordMap(columns, row.Record()))
	}
	return records
}

func RecordMap(columns, values []string) map[string]string {
	record := make(map[string]string, len(columns))
	for i, column := range columns {
		if i < len(values) {
			record[column] = values[i]
		}
	}
	return record
}

const (
	RunStatusRunning  = "running"
	RunStatusFinished = "finished"
)

// ReportRun é o resumo persistido de uma execução
type ReportRun struct {
	ID            string     `json:"id"`
	Kind          ReportKind `json:"kind"`
	SiteURL       string     `json:"site_url"`
	Status        string     `json:"status"`
	CurrentStart  *string    `json:"current_start,omitempty"`
	CurrentEnd    *string    `json:"current_end,omitempty"`
	PreviousStart *string    `json:"previous_start,omitempty"`
	PreviousEnd   *string    `json:"previous_end,omitempty"`
	MatchMode     *string    `json:"match_type,omitempty"`
	TargetCount   int        `json:"target_count"`
	ErrorCount    int        `json:"error_count"`
	StartedAt     time.Time  `json:"started_at"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
}

// NewReportRun resume o relatório para persistência
func NewReportRun(report *Report) *ReportRun {
	run := &ReportRun{
		ID:          report.ID,
		Kind:        report.Kind,
		SiteURL:     report.SiteURL,
		Status:      RunStatusRunning,
		TargetCount: len(report.Rows),
		ErrorCount:  report.ErrorCount(),
		StartedAt:   report.StartedAt,
	}

	if report.Current != nil {
		run.CurrentStart = stringPtr(report.Current.StartString())
		run.CurrentEnd = stringPtr(report.Current.EndString())
	}
	if report.Previous != nil {
		run.PreviousStart = stringPtr(report.Previous.StartString())
		run.PreviousEnd = stringPtr(report.Previous.EndString())
	}
	if report.MatchMode != "" {
		run.MatchMode = stringPtr(string(report.MatchMode))
	}

	return run
}

// StoredRows converte as linhas do relatório no formato persistido
func (r *Report) StoredRows() []StoredRow {
	columns := r.Kind.Columns()
	rows := make([]StoredRow, 0, len(r.Rows))
	for i, row := range r.Rows {
		rows = append(rows, StoredRow{
			RunID:    r.ID,
			Position: i,
			Target:   row.TargetValue(),
			Values:   RecordMap(columns, row.Record()),
			Error:    row.ErrorMessage(),
		})
	}
	return rows
}

func stringPtr(s string) *string {
	return &s
}

// StoredRow é uma linha de relatório lida do banco
type StoredRow struct {
	RunID    string            `json:"run_id"`
	Position int               `json:"position"`
	Target   string            `json:"target"`
	Values   map[string]string `json:"values"`
	Error    string            `json:"error,omitempty"`
}

// ReportRunDetail é uma execução persistida com suas linhas
type ReportRunDetail struct {
	*ReportRun
	Rows []StoredRow `json:"rows"`
}
