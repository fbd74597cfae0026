package risk

import (
	"errors"
	"math"

	"github.com/rustyeddy/fxcalc/market"
)

var (
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidRiskParameters = errors.New("invalid risk parameters")
	ErrInvalidLotSize        = errors.New("invalid lot size")
	ErrInvalidDirection      = errors.New("invalid trade direction")

	// ErrUnsupportedPair is market.ErrUnsupportedPair, re-exported so callers
	// of this package can match every failure with errors.Is.
	ErrUnsupportedPair = market.ErrUnsupportedPair
)

// positive reports whether x is a finite number greater than zero.
func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
