package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyJson(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		expected string
	}{
		{"Mapa", map[string]int{"clicks": 10}, "{\n  \"clicks\": 10\n}"},
		{"Bytes JSON são reindentados", []byte(`{"a":1}`), "{\n  \"a\": 1\n}"},
		{"Bytes inválidos voltam como texto", []byte("not json"), "not json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PrettyJson(tt.in))
		})
	}
}
