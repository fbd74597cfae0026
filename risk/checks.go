package risk

import (
	"fmt"
)

type Violation struct {
	Code string
	Msg  string
}

type Decision struct {
	Allowed    bool
	Violations []Violation

	StopPips   float64
	TargetPips []float64
	RR         float64 // against the furthest target
	Lots       LotSizeResult
}

func (d *Decision) add(code, msg string) {
	d.Violations = append(d.Violations, Violation{Code: code, Msg: msg})
	d.Allowed = false
}

// Evaluate sizes a setup and checks it against the policy. Input errors
// (unknown pair, bad prices) are returned as errors; policy breaches are
// reported as violations.
func Evaluate(p Policy, s Setup) (Decision, error) {
	meta, err := s.Pair.Meta()
	if err != nil {
		return Decision{}, err
	}
	if !s.Direction.valid() {
		return Decision{}, fmt.Errorf("%w: %q", ErrInvalidDirection, string(s.Direction))
	}
	if err := checkPrices(s.Entry, s.StopLoss); err != nil {
		return Decision{}, err
	}

	d := Decision{Allowed: true}

	stop, err := CalculatePips(s.Pair, s.Entry, s.StopLoss, s.Direction)
	if err != nil {
		return Decision{}, err
	}
	// Side comes from the raw delta; rounded pips lose sub-pip stops.
	if stop.PriceDelta >= 0 {
		d.add("STOP_WRONG_SIDE", fmt.Sprintf("stop %v is not on the loss side of a %s entry", s.StopLoss, s.Direction))
		return d, nil
	}
	if stop.TotalPips == 0 {
		d.add("STOP_TOO_TIGHT", fmt.Sprintf("stop %v is less than 0.1 pips from entry", s.StopLoss))
		return d, nil
	}
	d.StopPips = -stop.TotalPips

	if len(s.TakeProfits) == 0 {
		d.add("NO_TARGET", "at least one take profit is required")
	}
	best := 0.0
	for _, tp := range s.TakeProfits {
		r, err := CalculatePips(s.Pair, s.Entry, tp, s.Direction)
		if err != nil {
			return Decision{}, err
		}
		if r.PriceDelta <= 0 {
			d.add("TARGET_WRONG_SIDE", fmt.Sprintf("take profit %v is not beyond a %s entry", tp, s.Direction))
			continue
		}
		d.TargetPips = append(d.TargetPips, r.TotalPips)
		if r.TotalPips > best {
			best = r.TotalPips
		}
	}
	if best > 0 {
		rr, ok := round(best/d.StopPips, 2)
		if !ok {
			return Decision{}, fmt.Errorf("%w: stop distance %v too small", ErrInvalidPrice, d.StopPips)
		}
		d.RR = rr
		if d.RR < p.MinRR {
			d.add("RR_TOO_LOW", fmt.Sprintf("RR %.2f below minimum %.2f", d.RR, p.MinRR))
		}
	}

	if p.MaxStopPips > 0 && d.StopPips > p.MaxStopPips {
		d.add("STOP_TOO_WIDE", fmt.Sprintf("stop %.1f pips exceeds max %.1f", d.StopPips, p.MaxStopPips))
	}
	if s.RiskPercent > p.MaxRiskPercent {
		d.add("RISK_TOO_HIGH", fmt.Sprintf("risk %.2f%% exceeds max %.2f%%", s.RiskPercent, p.MaxRiskPercent))
	}

	pv := s.PipValuePerLot
	if pv == 0 {
		pv = meta.PipValuePerLot
	}
	lots, err := CalculateLotSize(s.Balance, s.RiskPercent, d.StopPips, pv)
	if err != nil {
		return Decision{}, err
	}
	d.Lots = lots
	if lots.LotSize == 0 {
		d.add("SIZE_TOO_SMALL", "risk budget is below 0.01 lots")
	}
	return d, nil
}
