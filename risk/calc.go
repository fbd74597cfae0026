package risk

import (
	"errors"
	"fmt"
	"math"
)

var ErrZeroRisk = errors.New("stop equals entry")

// RiskReward returns reward/risk for a trade setup, rounded to two decimals.
func RiskReward(entry, stop, takeProfit float64) (float64, error) {
	for _, px := range []float64{entry, stop, takeProfit} {
		if !positive(px) {
			return 0, fmt.Errorf("%w: %v", ErrInvalidPrice, px)
		}
	}
	risk := math.Abs(entry - stop)
	if risk == 0 {
		return 0, ErrZeroRisk
	}
	reward := math.Abs(takeProfit - entry)
	rr, ok := round(reward/risk, 2)
	if !ok {
		return 0, fmt.Errorf("%w: risk distance %v too small", ErrInvalidPrice, risk)
	}
	return rr, nil
}
