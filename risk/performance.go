package risk

import (
	"fmt"
	"math"
	"time"
)

// ClosedTrade is one finished signal as seen by the performance summary.
type ClosedTrade struct {
	PnL      PnLResult
	RR       float64       // realized reward/risk, 0 when unknown
	Duration time.Duration // 0 when unknown
}

type Metrics struct {
	Trades     int
	Wins       int
	Losses     int
	Breakeven  int
	WinRate    float64 // percent of trades with positive profit, two decimals
	TotalPnL   float64
	AveragePnL float64
	Best       float64
	Worst      float64
	TotalPips  float64

	// Averaged over the trades that report them.
	AverageRR       float64
	AverageDuration time.Duration
}

// Performance summarizes closed trades. An empty slice yields zero Metrics.
func Performance(trades []ClosedTrade) (Metrics, error) {
	var m Metrics
	if len(trades) == 0 {
		return m, nil
	}

	var (
		total, pips, rrSum float64
		rrCount, durCount  int
		durSum             time.Duration
	)
	m.Best = math.Inf(-1)
	m.Worst = math.Inf(1)

	for i, t := range trades {
		p := t.PnL.Profit
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return Metrics{}, fmt.Errorf("%w: trade %d profit %v", ErrInvalidPrice, i, p)
		}
		switch {
		case p > 0:
			m.Wins++
		case p < 0:
			m.Losses++
		default:
			m.Breakeven++
		}
		total += p
		pips += t.PnL.Pips
		m.Best = math.Max(m.Best, p)
		m.Worst = math.Min(m.Worst, p)

		if t.RR > 0 {
			rrSum += t.RR
			rrCount++
		}
		if t.Duration > 0 {
			durSum += t.Duration
			durCount++
		}
	}

	n := len(trades)
	m.Trades = n

	var ok bool
	if m.TotalPnL, ok = round(total, 2); !ok {
		return Metrics{}, fmt.Errorf("%w: total profit out of range", ErrInvalidLotSize)
	}
	m.AveragePnL, _ = round(total/float64(n), 2)
	m.WinRate, _ = round(float64(m.Wins)/float64(n)*100, 2)
	m.TotalPips, _ = round(pips, 1)
	if rrCount > 0 {
		m.AverageRR, _ = round(rrSum/float64(rrCount), 2)
	}
	if durCount > 0 {
		m.AverageDuration = durSum / time.Duration(durCount)
	}
	return m, nil
}
