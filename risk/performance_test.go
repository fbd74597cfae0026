package risk

import (
	"math"
	"testing"
	"time"

	"github.com/rustyeddy/fxcalc/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformance_Empty(t *testing.T) {
	t.Parallel()

	m, err := Performance(nil)
	require.NoError(t, err)
	assert.Equal(t, Metrics{}, m)
}

func TestPerformance_Summary(t *testing.T) {
	t.Parallel()

	trades := []ClosedTrade{
		{PnL: PnLResult{Profit: 500, Pips: 50}, RR: 2.5, Duration: 90 * time.Minute},
		{PnL: PnLResult{Profit: -200, Pips: -20}, RR: 0, Duration: 30 * time.Minute},
		{PnL: PnLResult{Profit: 150.5, Pips: 15}, RR: 1.5},
		{PnL: PnLResult{Profit: 0, Pips: 0}},
	}

	m, err := Performance(trades)
	require.NoError(t, err)

	assert.Equal(t, 4, m.Trades)
	assert.Equal(t, 2, m.Wins)
	assert.Equal(t, 1, m.Losses)
	assert.Equal(t, 1, m.Breakeven)
	assert.InDelta(t, 50.0, m.WinRate, 1e-9)
	assert.InDelta(t, 450.5, m.TotalPnL, 1e-9)
	assert.InDelta(t, 112.63, m.AveragePnL, 1e-9)
	assert.InDelta(t, 500.0, m.Best, 1e-9)
	assert.InDelta(t, -200.0, m.Worst, 1e-9)
	assert.InDelta(t, 45.0, m.TotalPips, 1e-9)
	assert.InDelta(t, 2.0, m.AverageRR, 1e-9)
	assert.Equal(t, time.Hour, m.AverageDuration)
}

func TestPerformance_AllLosses(t *testing.T) {
	t.Parallel()

	m, err := Performance([]ClosedTrade{
		{PnL: PnLResult{Profit: -10}},
		{PnL: PnLResult{Profit: -30}},
	})
	require.NoError(t, err)
	assert.Zero(t, m.WinRate)
	assert.InDelta(t, -10.0, m.Best, 1e-9)
	assert.InDelta(t, -30.0, m.Worst, 1e-9)
	assert.Zero(t, m.AverageRR)
	assert.Zero(t, m.AverageDuration)
}

func TestPerformance_FromCalculatedTrades(t *testing.T) {
	t.Parallel()

	win, err := CalculatePnL(market.EURUSD, 1, 1.1000, 1.0950, Sell)
	require.NoError(t, err)
	loss, err := CalculatePnL(market.EURUSD, 1, 1.1000, 1.0950, Buy)
	require.NoError(t, err)

	m, err := Performance([]ClosedTrade{{PnL: win}, {PnL: loss}})
	require.NoError(t, err)
	assert.Zero(t, m.TotalPnL)
	assert.Zero(t, m.TotalPips)
	assert.InDelta(t, 50.0, m.WinRate, 1e-9)
}

func TestPerformance_InvalidProfit(t *testing.T) {
	t.Parallel()

	_, err := Performance([]ClosedTrade{{PnL: PnLResult{Profit: math.NaN()}}})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = Performance([]ClosedTrade{
		{PnL: PnLResult{Profit: math.MaxFloat64}},
		{PnL: PnLResult{Profit: math.MaxFloat64}},
	})
	assert.ErrorIs(t, err, ErrInvalidLotSize)
}
