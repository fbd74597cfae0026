package risk

import "github.com/rustyeddy/fxcalc/market"

// Policy bounds what a published signal setup may ask of a follower.
type Policy struct {
	MaxRiskPercent float64 // 2 means 2% of balance
	MinRR          float64 // 1.5
	MaxStopPips    float64 // 0 disables the check
}

func DefaultPolicy() Policy {
	return Policy{
		MaxRiskPercent: 2,
		MinRR:          1.5,
	}
}

// Setup is a signal as a follower would take it.
type Setup struct {
	Pair        market.Pair
	Direction   Direction
	Entry       float64
	StopLoss    float64
	TakeProfits []float64 // nearest first

	Balance        float64
	RiskPercent    float64
	PipValuePerLot float64 // 0 uses the pair's standard value
}
