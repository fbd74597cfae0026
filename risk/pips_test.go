package risk

import (
	"math"
	"testing"

	"github.com/rustyeddy/fxcalc/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePips_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		pair      market.Pair
		entry     float64
		exit      float64
		dir       Direction
		wantPips  float64
		wantPip   float64
		wantDelta float64
	}{
		{"eurusd_buy_up", market.EURUSD, 1.1000, 1.1050, Buy, 50.0, 0.0001, 0.0050},
		{"eurusd_sell_up", market.EURUSD, 1.1000, 1.1050, Sell, -50.0, 0.0001, -0.0050},
		{"gold_buy_up", market.XAUUSD, 2345.67, 2360.00, Buy, 1433.0, 0.01, 14.33},
		{"usdjpy_buy_down", market.USDJPY, 150.00, 149.50, Buy, -50.0, 0.01, -0.50},
		{"usdjpy_sell_down", market.USDJPY, 150.00, 149.50, Sell, 50.0, 0.01, 0.50},
		{"fractional_pip", market.GBPUSD, 1.26340, 1.26355, Buy, 1.5, 0.0001, 0.00015},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := CalculatePips(tt.pair, tt.entry, tt.exit, tt.dir)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPips, got.TotalPips)
			assert.Equal(t, tt.wantPip, got.PipSize)
			assert.InDelta(t, tt.wantDelta, got.PriceDelta, 1e-9)
		})
	}
}

func TestCalculatePips_ZeroDelta(t *testing.T) {
	t.Parallel()

	for _, dir := range []Direction{Buy, Sell} {
		got, err := CalculatePips(market.EURUSD, 1.0867, 1.0867, dir)
		require.NoError(t, err)
		assert.Zero(t, got.TotalPips)
		assert.Zero(t, got.PriceDelta)
	}
}

func TestCalculatePips_DirectionSymmetry(t *testing.T) {
	t.Parallel()

	prices := [][2]float64{
		{1.1000, 1.1050},
		{1.2634, 1.2519},
		{149.67, 150.02},
		{29.45, 28.91},
	}

	for _, p := range market.Pairs() {
		for _, px := range prices {
			buy, err := CalculatePips(p, px[0], px[1], Buy)
			require.NoError(t, err)
			sell, err := CalculatePips(p, px[0], px[1], Sell)
			require.NoError(t, err)

			assert.Equal(t, buy.TotalPips, -sell.TotalPips, "%s %v", p, px)
			assert.Equal(t, buy.PriceDelta, -sell.PriceDelta, "%s %v", p, px)
			if px[1] > px[0] {
				assert.Positive(t, buy.TotalPips)
			} else {
				assert.Negative(t, buy.TotalPips)
			}
		}
	}
}

func TestCalculatePips_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := CalculatePips(market.XAGUSD, 29.45, 30.12, Sell)
	require.NoError(t, err)
	b, err := CalculatePips(market.XAGUSD, 29.45, 30.12, Sell)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCalculatePips_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		pair  market.Pair
		entry float64
		exit  float64
		dir   Direction
		want  error
	}{
		{"unknown_pair", market.Pair(0), 1, 2, Buy, ErrUnsupportedPair},
		{"zero_entry", market.EURUSD, 0, 1.1, Buy, ErrInvalidPrice},
		{"negative_exit", market.EURUSD, 1.1, -1.1, Buy, ErrInvalidPrice},
		{"nan_entry", market.EURUSD, math.NaN(), 1.1, Buy, ErrInvalidPrice},
		{"inf_exit", market.EURUSD, 1.1, math.Inf(1), Sell, ErrInvalidPrice},
		{"bad_direction", market.EURUSD, 1.1, 1.2, Direction("HOLD"), ErrInvalidDirection},
		{"pips_overflow_sell", market.EURUSD, 1e308, 1, Sell, ErrInvalidPrice},
		{"pips_overflow_buy", market.EURUSD, 1, 1e308, Buy, ErrInvalidPrice},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := CalculatePips(tt.pair, tt.entry, tt.exit, tt.dir)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, PipResult{}, got)
		})
	}
}

func TestCalculatePips_UnsupportedSymbol(t *testing.T) {
	t.Parallel()

	_, err := market.ParsePair("ZZZ/ZZZ")
	assert.ErrorIs(t, err, ErrUnsupportedPair)
}

func TestStopPips(t *testing.T) {
	t.Parallel()

	got, err := StopPips(market.EURUSD, 1.2000, 1.1900)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)

	got, err = StopPips(market.USDJPY, 150.00, 150.35)
	require.NoError(t, err)
	assert.Equal(t, 35.0, got)

	_, err = StopPips(market.EURUSD, 1.2, 0)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = StopPips(market.EURUSD, 1e308, 1)
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestParseDirection(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Direction{"buy": Buy, "SELL": Sell, " long ": Buy, "short": Sell} {
		got, err := ParseDirection(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseDirection("hold")
	assert.ErrorIs(t, err, ErrInvalidDirection)
	assert.Equal(t, Sell, Buy.Opposite())
	assert.Equal(t, Buy, Sell.Opposite())
}
