package risk

import (
	"fmt"
	"math"

	"github.com/rustyeddy/fxcalc/market"
)

type LotSizeResult struct {
	LotSize       float64 // standard lots, two decimals
	PositionUnits float64 // LotSize * market.StandardLotUnits
	RiskAmount    float64 // account currency, two decimals
}

// CalculateLotSize applies fixed-fractional sizing: the lot size whose stop
// distance costs exactly riskPercent of the balance. riskPercent is in
// percent units (2 means 2%).
func CalculateLotSize(balance, riskPercent, stopLossPips, pipValuePerLot float64) (LotSizeResult, error) {
	switch {
	case !positive(balance):
		return LotSizeResult{}, fmt.Errorf("%w: balance %v must be positive", ErrInvalidRiskParameters, balance)
	case !positive(riskPercent) || riskPercent > 100:
		return LotSizeResult{}, fmt.Errorf("%w: risk percent %v must be in (0, 100]", ErrInvalidRiskParameters, riskPercent)
	case !positive(stopLossPips):
		return LotSizeResult{}, fmt.Errorf("%w: stop loss pips %v must be positive", ErrInvalidRiskParameters, stopLossPips)
	case !positive(pipValuePerLot):
		return LotSizeResult{}, fmt.Errorf("%w: pip value %v must be positive", ErrInvalidRiskParameters, pipValuePerLot)
	}

	riskAmt := balance * riskPercent / 100
	lotSize, ok := round(riskAmt/(stopLossPips*pipValuePerLot), 2)
	if !ok {
		return LotSizeResult{}, fmt.Errorf("%w: result out of range", ErrInvalidRiskParameters)
	}
	riskRounded, ok := round(riskAmt, 2)
	if !ok {
		return LotSizeResult{}, fmt.Errorf("%w: result out of range", ErrInvalidRiskParameters)
	}
	units := lotSize * market.StandardLotUnits
	if math.IsInf(units, 0) {
		return LotSizeResult{}, fmt.Errorf("%w: result out of range", ErrInvalidRiskParameters)
	}

	return LotSizeResult{
		LotSize:       lotSize,
		PositionUnits: units,
		RiskAmount:    riskRounded,
	}, nil
}
