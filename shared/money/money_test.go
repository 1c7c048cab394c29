package money_test

import (
	"math"
	"testing"

	"banquet/shared/money"

	"github.com/stretchr/testify/assert"
)

func TestRoundCents(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "already exact", input: 1680.00, expected: 1680.00},
		{name: "rounds up", input: 503.995, expected: 504.00},
		{name: "rounds down", input: 503.994, expected: 503.99},
		{name: "negative", input: -10.005, expected: -10.00},
		{name: "float artifact", input: 0.1 + 0.2, expected: 0.30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, money.RoundCents(tt.input), 1e-9)
		})
	}
}

func TestComparisons(t *testing.T) {
	assert.True(t, money.Equal(504.00, 504.0000001))
	assert.False(t, money.Equal(504.00, 504.01))

	assert.True(t, money.GTE(503.995, 504.00))
	assert.False(t, money.GTE(503.98, 504.00))

	assert.True(t, money.LTE(1680.005, 1680.00))
	assert.False(t, money.LTE(1680.02, 1680.00))
}

func TestIsPositive(t *testing.T) {
	assert.True(t, money.IsPositive(0.01))
	assert.False(t, money.IsPositive(0))
	assert.False(t, money.IsPositive(-5))
	assert.False(t, money.IsPositive(math.NaN()))
	assert.False(t, money.IsPositive(math.Inf(1)))
}

func TestPercent(t *testing.T) {
	assert.InDelta(t, 504.00, money.Percent(1680.00, 30), 1e-9)
	assert.InDelta(t, 280.00, money.Percent(1400.00, 20), 1e-9)
	assert.InDelta(t, 0, money.Percent(1400.00, 0), 1e-9)
}
