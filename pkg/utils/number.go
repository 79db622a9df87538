package utils

import (
	"math"
	"strconv"
)

// RoundTo arredonda para o número de casas informado, sem produzir -0
func RoundTo(f float64, places int) float64 {
	if f == 0 {
		return 0
	}

	pow := math.Pow(10, float64(places))
	rounded := math.Round(f*pow) / pow
	if rounded == 0 {
		return 0
	}
	return rounded
}

// FormatDecimal formata com no máximo `places` casas decimais
func FormatDecimal(f float64, places int) string {
	return strconv.FormatFloat(RoundTo(f, places), 'f', -1, 64)
}

// FormatOptionalDecimal devolve string vazia para valores ausentes
func FormatOptionalDecimal(f *float64, places int) string {
	if f == nil {
		return ""
	}
	return FormatDecimal(*f, places)
}

// FormatInteger arredonda para o inteiro mais próximo
func FormatInteger(f float64) string {
	return strconv.FormatInt(int64(math.Round(f)), 10)
}
