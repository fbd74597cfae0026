package risk

import (
	"math"

	"github.com/shopspring/decimal"
)

// round rounds half away from zero. Going through the shortest decimal
// representation keeps values like 49.999999999999 pips landing on 50.
// It reports false for NaN and ±Inf, which decimal cannot represent.
func round(x float64, places int32) (float64, bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	return decimal.NewFromFloat(x).Round(places).InexactFloat64(), true
}
