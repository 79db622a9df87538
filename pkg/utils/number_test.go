package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		places   int
		expected string
	}{
		{"Quatro casas", 0.102941, 4, "0.1029"},
		{"Seis casas", 0.0123456789, 6, "0.012346"},
		{"Duas casas", 4.006, 2, "4.01"},
		{"Sem casas extras", 4, 2, "4"},
		{"Sem zero negativo", -0.0001, 2, "0"},
		{"Negativo", -33.3333, 2, "-33.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDecimal(tt.value, tt.places))
		})
	}
}

func TestFormatOptionalDecimal(t *testing.T) {
	assert.Equal(t, "", FormatOptionalDecimal(nil, 2))

	v := 2.346
	assert.Equal(t, "2.35", FormatOptionalDecimal(&v, 2))
}

func TestFormatInteger(t *testing.T) {
	assert.Equal(t, "150", FormatInteger(149.5))
	assert.Equal(t, "-2", FormatInteger(-1.5))
	assert.Equal(t, "0", FormatInteger(0))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()

	assert.NoError(t, err)
	assert.Len(t, id, runIDLength)
}
