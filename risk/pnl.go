package risk

import (
	"fmt"
	"math"

	"github.com/rustyeddy/fxcalc/market"
)

type PnLResult struct {
	Profit        float64 // account currency, signed, two decimals
	ProfitPercent float64 // of notional at entry, signed, two decimals
	Pips          float64
}

// CalculatePnL returns the realized result of closing lotSize lots at exit.
// The sign already follows the direction through PriceDelta.
func CalculatePnL(pair market.Pair, lotSize, entry, exit float64, dir Direction) (PnLResult, error) {
	if !positive(lotSize) {
		return PnLResult{}, fmt.Errorf("%w: %v", ErrInvalidLotSize, lotSize)
	}
	pips, err := CalculatePips(pair, entry, exit, dir)
	if err != nil {
		return PnLResult{}, err
	}

	units := lotSize * market.StandardLotUnits
	profit := pips.PriceDelta * units
	notional := entry * units

	rounded, ok := round(profit, 2)
	if !ok || math.IsInf(notional, 0) {
		return PnLResult{}, fmt.Errorf("%w: position too large", ErrInvalidLotSize)
	}
	pct, ok := round(profit/notional*100, 2)
	if !ok {
		return PnLResult{}, fmt.Errorf("%w: position too large", ErrInvalidLotSize)
	}

	return PnLResult{
		Profit:        rounded,
		ProfitPercent: pct,
		Pips:          pips.TotalPips,
	}, nil
}
