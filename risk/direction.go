package risk

import (
	"fmt"
	"strings"
)

type Direction string

const (
	Buy  Direction = "BUY"
	Sell Direction = "SELL"
)

// ParseDirection accepts buy/sell in any case, plus long/short.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY", "LONG":
		return Buy, nil
	case "SELL", "SHORT":
		return Sell, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

func (d Direction) valid() bool {
	return d == Buy || d == Sell
}

// Opposite returns the other side of the trade.
func (d Direction) Opposite() Direction {
	if d == Buy {
		return Sell
	}
	return Buy
}
