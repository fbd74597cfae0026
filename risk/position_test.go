package risk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateLotSize_Standard(t *testing.T) {
	t.Parallel()

	got, err := CalculateLotSize(10000, 2, 50, 10)
	require.NoError(t, err)

	assert.InDelta(t, 200.0, got.RiskAmount, 1e-9)
	assert.InDelta(t, 0.40, got.LotSize, 1e-9)
	assert.InDelta(t, 40000.0, got.PositionUnits, 1e-6)
}

func TestCalculateLotSize_Rounding(t *testing.T) {
	t.Parallel()

	// 33.333 / (7 * 10) = 0.47619...
	got, err := CalculateLotSize(3333.33, 1, 7, 10)
	require.NoError(t, err)

	assert.InDelta(t, 0.48, got.LotSize, 1e-9)
	assert.InDelta(t, 48000.0, got.PositionUnits, 1e-6)
	assert.InDelta(t, 33.33, got.RiskAmount, 1e-9)
}

func TestCalculateLotSize_Scaling(t *testing.T) {
	t.Parallel()

	base, err := CalculateLotSize(10000, 2, 50, 10)
	require.NoError(t, err)

	tests := []struct {
		name   string
		bal    float64
		risk   float64
		sl     float64
		pv     float64
		factor float64
	}{
		{"double_balance", 20000, 2, 50, 10, 2},
		{"double_risk", 10000, 4, 50, 10, 2},
		{"double_stop", 10000, 2, 100, 10, 0.5},
		{"double_pip_value", 10000, 2, 50, 20, 0.5},
		{"quadruple_balance", 40000, 2, 50, 10, 4},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := CalculateLotSize(tt.bal, tt.risk, tt.sl, tt.pv)
			require.NoError(t, err)
			assert.InDelta(t, base.LotSize*tt.factor, got.LotSize, 1e-9)
		})
	}
}

func TestCalculateLotSize_InvalidParameters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bal  float64
		risk float64
		sl   float64
		pv   float64
	}{
		{"zero_balance", 0, 2, 50, 10},
		{"negative_balance", -100, 2, 50, 10},
		{"zero_risk", 10000, 0, 50, 10},
		{"risk_over_100", 10000, 100.5, 50, 10},
		{"zero_stop", 10000, 2, 0, 10},
		{"negative_pip_value", 10000, 2, 50, -10},
		{"nan_risk", 10000, math.NaN(), 50, 10},
		{"inf_balance", math.Inf(1), 2, 50, 10},
		{"lots_overflow", 1e308, 100, 1e-300, 1e-10},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := CalculateLotSize(tt.bal, tt.risk, tt.sl, tt.pv)
			assert.ErrorIs(t, err, ErrInvalidRiskParameters)
			assert.Equal(t, LotSizeResult{}, got)
		})
	}
}

func TestCalculateLotSize_FullRisk(t *testing.T) {
	t.Parallel()

	got, err := CalculateLotSize(1000, 100, 10, 10)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, got.LotSize, 1e-9)
	assert.InDelta(t, 1000.0, got.RiskAmount, 1e-9)
}
