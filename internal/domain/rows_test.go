package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordRow_Record(t *testing.T) {
	r := DateRange{Start: date(2026, 9, 1), End: date(2026, 9, 30)}

	t.Run("Sem dados deixa posição vazia", func(t *testing.T) {
		row := NewKeywordRow("sapato azul", r, MatchEquals, FetchOK(AggregateMetrics{}))

		assert.Equal(t,
			[]string{"sapato azul", "0", "0", "0", "", "2026-09-01", "2026-09-30", "equals", ""},
			row.Record(),
		)
	})

	t.Run("Valores arredondados", func(t *testing.T) {
		position := 4.23456
		row := NewKeywordRow("sapato", r, MatchContains, FetchOK(AggregateMetrics{
			Clicks:      15.4,
			Impressions: 149.6,
			CTR:         0.102941,
			Position:    &position,
		}))

		assert.Equal(t,
			[]string{"sapato", "15", "150", "0.1029", "4.23", "2026-09-01", "2026-09-30", "contains", ""},
			row.Record(),
		)
	})

	t.Run("Falha deixa métricas vazias e registra o erro", func(t *testing.T) {
		row := NewKeywordRow("sapato", r, MatchEquals, FetchTransient(errors.New("rate limit")))

		assert.Equal(t,
			[]string{"sapato", "", "", "", "", "2026-09-01", "2026-09-30", "equals", "rate limit"},
			row.Record(),
		)
	})
}

func TestComparisonRow_Record(t *testing.T) {
	current := DateRange{Start: date(2026, 9, 1), End: date(2026, 9, 30)}
	previous := PreviousPeriod(current)
	pos := 3.456

	t.Run("Base anterior zerada deixa percentual vazio", func(t *testing.T) {
		row := NewComparisonRow("https://example.com/a", "sc-domain:example.com", current, previous,
			AggregateMetrics{Clicks: 10, Impressions: 200, CTR: 0.05, Position: &pos},
			AggregateMetrics{},
		)

		record := RecordMap(ComparisonColumns, row.Record())
		assert.Equal(t, "2026-08-02", record["previous_start"])
		assert.Equal(t, "2026-08-31", record["previous_end"])
		assert.Equal(t, "10", record["clicks_current"])
		assert.Equal(t, "0", record["clicks_previous"])
		assert.Equal(t, "10", record["clicks_change_abs"])
		assert.Equal(t, "", record["clicks_change_pct"])
		assert.Equal(t, "0.05", record["ctr_current"])
		assert.Equal(t, "0", record["ctr_previous"])
		assert.Equal(t, "3.46", record["position_current"])
		assert.Equal(t, "", record["position_previous"])
		assert.Equal(t, "", record["error"])
	})

	t.Run("Percentual arredondado para duas casas", func(t *testing.T) {
		row := NewComparisonRow("https://example.com/a", "https://example.com/", current, previous,
			AggregateMetrics{Clicks: 2, Impressions: 10},
			AggregateMetrics{Clicks: 3, Impressions: 30},
		)

		record := RecordMap(ComparisonColumns, row.Record())
		assert.Equal(t, "-1", record["clicks_change_abs"])
		assert.Equal(t, "-33.33", record["clicks_change_pct"])
		assert.Equal(t, "-66.67", record["impressions_change_pct"])
	})

	t.Run("Falha deixa todas as métricas vazias", func(t *testing.T) {
		row := FailedComparisonRow("https://example.com/a", "https://example.com/", current, previous, errors.New("forbidden"))

		record := row.Record()
		assert.Len(t, record, len(ComparisonColumns))
		for i := 6; i < 18; i++ {
			assert.Empty(t, record[i], ComparisonColumns[i])
		}
		assert.Equal(t, "forbidden", record[18])
	})
}

func TestInspectionRow_Record(t *testing.T) {
	row := NewInspectionRow("https://example.com/a", "https://example.com/", InspectionResult{
		Outcome: OutcomeOK,
		Status: &IndexStatus{
			Verdict:       "PASS",
			CoverageState: "Submitted and indexed",
			ReferringURLs: []string{"https://example.com/", "https://example.com/b"},
		},
	})

	record := RecordMap(InspectionColumns, row.Record())
	assert.Equal(t, "PASS", record["verdict"])
	assert.Equal(t, "Submitted and indexed", record["coverage_state"])
	assert.Equal(t, "2", record["referring_urls_count"])
	assert.Equal(t, "", record["error"])
}
