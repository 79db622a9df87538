package domain

import (
	"fmt"
	"strings"
)

type MatchMode string

const (
	MatchEquals   MatchMode = "equals"
	MatchContains MatchMode = "contains"
)

func ParseMatchMode(value string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(value))) {
	case "", MatchEquals:
		return MatchEquals, nil
	case MatchContains:
		return MatchContains, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMatchMode, value)
	}
}

// Dimension define a chave usada no filtro da consulta
type Dimension string

const (
	DimensionQuery Dimension = "query"
	DimensionPage  Dimension = "page"
)

// MetricsQuery descreve uma consulta filtrada para um único alvo e período
type MetricsQuery struct {
	SiteURL   string
	Target    string
	Dimension Dimension
	MatchMode MatchMode
	Range     DateRange
}

// MetricsRow é uma linha bruta devolvida pela Search Analytics API
type MetricsRow struct {
	Keys        []string
	Clicks      float64
	Impressions float64
	CTR         float64
	Position    float64
}

// AggregateMetrics resume um alvo em um período.
// Position é nil quando não houve impressões.
type AggregateMetrics struct {
	Clicks      float64  `json:"clicks"`
	Impressions float64  `json:"impressions"`
	CTR         float64  `json:"ctr"`
	Position    *float64 `json:"position"`
}

// AggregateRows consolida as linhas de um alvo.
// Cliques e impressões são somados, CTR é recalculado a partir dos totais e a
// posição é a média ponderada pelas impressões. Com uma única linha e
// preferServiceValues, CTR e posição calculados pelo serviço são mantidos.
func AggregateRows(rows []MetricsRow, preferServiceValues bool) AggregateMetrics {
	if len(rows) == 0 {
		return AggregateMetrics{}
	}

	if len(rows) == 1 && preferServiceValues {
		row := rows[0]
		metrics := AggregateMetrics{
			Clicks:      row.Clicks,
			Impressions: row.Impressions,
		}
		if row.Impressions > 0 {
			position := row.Position
			metrics.CTR = row.CTR
			metrics.Position = &position
		}
		return metrics
	}

	var clicks, impressions, weightedPosition float64
	for _, row := range rows {
		clicks += row.Clicks
		impressions += row.Impressions
		weightedPosition += row.Position * row.Impressions
	}

	metrics := AggregateMetrics{
		Clicks:      clicks,
		Impressions: impressions,
	}

	if impressions > 0 {
		position := weightedPosition / impressions
		metrics.CTR = clicks / impressions
		metrics.Position = &position
	}

	return metrics
}
