package domain

// Outcome classifica o resultado de uma consulta individual
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeTransient
	OutcomePermanent
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeTransient:
		return "transient"
	case OutcomePermanent:
		return "permanent"
	default:
		return "unknown"
	}
}

// FetchResult é o resultado de uma consulta de métricas: OK com métricas ou falha com erro
type FetchResult struct {
	Outcome Outcome
	Metrics AggregateMetrics
	Err     error
}

func FetchOK(metrics AggregateMetrics) FetchResult {
	return FetchResult{Outcome: OutcomeOK, Metrics: metrics}
}

func FetchTransient(err error) FetchResult {
	return FetchResult{Outcome: OutcomeTransient, Err: err}
}

func FetchPermanent(err error) FetchResult {
	return FetchResult{Outcome: OutcomePermanent, Err: err}
}

func (r FetchResult) Failed() bool {
	return r.Outcome != OutcomeOK
}

// InspectionResult é o equivalente de FetchResult para a URL Inspection API
type InspectionResult struct {
	Outcome Outcome
	Status  *IndexStatus
	Err     error
}

func (r InspectionResult) Failed() bool {
	return r.Outcome != OutcomeOK
}
