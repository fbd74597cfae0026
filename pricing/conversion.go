package pricing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rustyeddy/fxcalc/market"
)

var ErrNoConversion = errors.New("no conversion path")

// QuoteToAccountRate returns the number of account currency units one unit of
// the pair's quote currency is worth. Quote-in-account pairs need no price;
// otherwise the catalog pair joining the two currencies is priced from src,
// in either orientation.
func QuoteToAccountRate(ctx context.Context, src Source, pair market.Pair, account string) (float64, error) {
	meta, err := pair.Meta()
	if err != nil {
		return 0, err
	}
	account = strings.ToUpper(strings.TrimSpace(account))
	quote := meta.QuoteCurrency

	// EUR/USD, XAU/USD in a USD account.
	if quote == account {
		return 1.0, nil
	}

	// GBP/USD prices GBP quotes into a USD account.
	if p, ok := market.FindPair(quote, account); ok {
		return price(ctx, src, p)
	}

	// USD/JPY gives JPY per USD; we want USD per JPY.
	if p, ok := market.FindPair(account, quote); ok {
		px, err := price(ctx, src, p)
		if err != nil {
			return 0, err
		}
		return 1.0 / px, nil
	}

	return 0, fmt.Errorf("%w: %s to %s", ErrNoConversion, quote, account)
}

// PipValuePerLot is the account currency value of a one pip move on one
// standard lot of pair. FX pips are worth PipSize x StandardLotUnits in the
// quote currency. Metal contracts are not 100000 units, so their catalog
// value (quoted in USD) is converted instead.
func PipValuePerLot(ctx context.Context, src Source, pair market.Pair, account string) (float64, error) {
	meta, err := pair.Meta()
	if err != nil {
		return 0, err
	}
	rate, err := QuoteToAccountRate(ctx, src, pair, account)
	if err != nil {
		return 0, err
	}

	inQuote := meta.PipSize * float64(meta.StandardLotUnits)
	if isMetal(meta) {
		inQuote = meta.PipValuePerLot
	}
	return inQuote * rate, nil
}

func isMetal(meta market.PairMetadata) bool {
	return meta.BaseCurrency == "XAU" || meta.BaseCurrency == "XAG"
}

func price(ctx context.Context, src Source, pair market.Pair) (float64, error) {
	if src == nil {
		return 0, fmt.Errorf("%w: no source for %s", ErrNoPrice, pair)
	}
	q, err := src.Price(ctx, pair)
	if err != nil {
		return 0, err
	}
	if !(q.Price > 0) || math.IsInf(q.Price, 1) {
		return 0, fmt.Errorf("%w: %s quoted at %v", ErrNoPrice, pair, q.Price)
	}
	return q.Price, nil
}
