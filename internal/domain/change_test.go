package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentChange(t *testing.T) {
	t.Run("Zero sobre zero é zero", func(t *testing.T) {
		pct := PercentChange(0, 0)
		require.NotNil(t, pct)
		assert.Equal(t, 0.0, *pct)
	})

	t.Run("Base zero com valor atual é indefinido", func(t *testing.T) {
		assert.Nil(t, PercentChange(10, 0))
		assert.Nil(t, PercentChange(0.5, 0))
	})

	t.Run("Crescimento e queda", func(t *testing.T) {
		up := PercentChange(150, 100)
		require.NotNil(t, up)
		assert.Equal(t, 50.0, *up)

		down := PercentChange(50, 100)
		require.NotNil(t, down)
		assert.Equal(t, -50.0, *down)
	})
}

func TestNewChange(t *testing.T) {
	change := NewChange(12, 0)

	assert.Equal(t, 12.0, change.Absolute, "variação absoluta sempre definida")
	assert.Nil(t, change.Percent)
}
