package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rustyeddy/fxcalc/market"
)

var ErrNoPrice = errors.New("price not found")

// Source returns the latest price for a pair.
type Source interface {
	Price(ctx context.Context, pair market.Pair) (Quote, error)
}

type Quote struct {
	Pair   market.Pair
	Price  float64
	Time   time.Time
	Source string // "exchangerate", "static", ...
}

// StaticSource serves fixed reference prices. It is the fallback when the
// live source is unavailable.
type StaticSource struct {
	Prices map[market.Pair]float64
	Now    func() time.Time
}

// ReferencePrices returns a StaticSource seeded with recent reference levels.
func ReferencePrices() *StaticSource {
	return &StaticSource{
		Prices: map[market.Pair]float64{
			market.XAUUSD: 2345.67,
			market.XAGUSD: 29.45,
			market.EURUSD: 1.0867,
			market.GBPUSD: 1.2634,
			market.USDJPY: 149.67,
			market.AUDUSD: 0.6542,
		},
	}
}

func (s *StaticSource) Price(ctx context.Context, pair market.Pair) (Quote, error) {
	px, ok := s.Prices[pair]
	if !ok {
		return Quote{}, fmt.Errorf("%w: %s", ErrNoPrice, pair)
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return Quote{Pair: pair, Price: px, Time: now(), Source: "static"}, nil
}
