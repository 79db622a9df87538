package domain

// Change guarda a variação absoluta (sempre definida) e percentual (nil quando indefinida)
type Change struct {
	Absolute float64  `json:"absolute"`
	Percent  *float64 `json:"percent"`
}

func NewChange(current, previous float64) Change {
	return Change{
		Absolute: AbsoluteChange(current, previous),
		Percent:  PercentChange(current, previous),
	}
}

func AbsoluteChange(current, previous float64) float64 {
	return current - previous
}

// PercentChange retorna nil quando o período anterior é zero e o atual não
func PercentChange(current, previous float64) *float64 {
	if previous == 0 {
		if current == 0 {
			zero := 0.0
			return &zero
		}
		return nil
	}

	pct := (current - previous) / previous * 100
	return &pct
}
