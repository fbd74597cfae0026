package risk

import (
	"fmt"
	"math"

	"github.com/rustyeddy/fxcalc/market"
)

type PipResult struct {
	PipSize   float64
	TotalPips float64 // signed, one decimal

	// PriceDelta is exit-entry for BUY and entry-exit for SELL, so a positive
	// value always means the trade moved in the trader's favor.
	PriceDelta float64
}

func checkPrices(entry, exit float64) error {
	if !positive(entry) {
		return fmt.Errorf("%w: entry %v", ErrInvalidPrice, entry)
	}
	if !positive(exit) {
		return fmt.Errorf("%w: exit %v", ErrInvalidPrice, exit)
	}
	return nil
}

func priceDelta(entry, exit float64, dir Direction) float64 {
	if dir == Sell {
		return entry - exit
	}
	return exit - entry
}

// CalculatePips measures the distance between entry and exit in pips of the
// given pair, signed by the trade direction.
func CalculatePips(pair market.Pair, entry, exit float64, dir Direction) (PipResult, error) {
	meta, err := pair.Meta()
	if err != nil {
		return PipResult{}, err
	}
	if err := checkPrices(entry, exit); err != nil {
		return PipResult{}, err
	}
	if !dir.valid() {
		return PipResult{}, fmt.Errorf("%w: %q", ErrInvalidDirection, string(dir))
	}

	delta := priceDelta(entry, exit, dir)
	pips, ok := round(delta/meta.PipSize, 1)
	if !ok {
		return PipResult{}, fmt.Errorf("%w: %v -> %v out of range", ErrInvalidPrice, entry, exit)
	}
	return PipResult{
		PipSize:    meta.PipSize,
		TotalPips:  pips,
		PriceDelta: delta,
	}, nil
}

// StopPips converts a stop price into an unsigned pip distance from entry,
// the form CalculateLotSize expects.
func StopPips(pair market.Pair, entry, stop float64) (float64, error) {
	meta, err := pair.Meta()
	if err != nil {
		return 0, err
	}
	if !positive(entry) || !positive(stop) {
		return 0, fmt.Errorf("%w: entry %v stop %v", ErrInvalidPrice, entry, stop)
	}
	pips, ok := round(math.Abs(entry-stop)/meta.PipSize, 1)
	if !ok {
		return 0, fmt.Errorf("%w: entry %v stop %v out of range", ErrInvalidPrice, entry, stop)
	}
	return pips, nil
}
