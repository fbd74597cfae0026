// market/instruments.go
package market

import (
	"errors"
	"fmt"
	"strings"
)

// StandardLotUnits is the number of base currency units in one standard lot.
const StandardLotUnits = 100000

// ErrUnsupportedPair is returned when a symbol is not in the catalog.
var ErrUnsupportedPair = errors.New("unsupported pair")

// Pair is one of the instruments the calculators know about. The zero value
// is not a valid pair.
type Pair int

const (
	XAUUSD Pair = iota + 1
	XAGUSD
	EURUSD
	GBPUSD
	USDJPY
	USDCAD
	USDCHF
	AUDUSD
	NZDUSD
	EURGBP
	EURJPY
	GBPJPY
)

type PairMetadata struct {
	Symbol           string // "EUR/USD"
	DisplayName      string
	BaseCurrency     string
	QuoteCurrency    string
	PipSize          float64
	PriceDigits      int
	StandardLotUnits int

	// PipValuePerLot is the account currency value of a one pip move on one
	// standard lot. It is a reference default for lot sizing, not derived.
	PipValuePerLot float64
}

func fx(sym, name string, pip float64, digits int, pipValue float64) PairMetadata {
	base, quote, _ := strings.Cut(sym, "/")
	return PairMetadata{
		Symbol:           sym,
		DisplayName:      name,
		BaseCurrency:     base,
		QuoteCurrency:    quote,
		PipSize:          pip,
		PriceDigits:      digits,
		StandardLotUnits: StandardLotUnits,
		PipValuePerLot:   pipValue,
	}
}

var catalog = map[Pair]PairMetadata{
	XAUUSD: fx("XAU/USD", "Gold", 0.01, 2, 10),
	XAGUSD: fx("XAG/USD", "Silver", 0.01, 2, 50),
	EURUSD: fx("EUR/USD", "Euro / US Dollar", 0.0001, 4, 10),
	GBPUSD: fx("GBP/USD", "British Pound / US Dollar", 0.0001, 4, 10),
	USDJPY: fx("USD/JPY", "US Dollar / Japanese Yen", 0.01, 2, 10),
	USDCAD: fx("USD/CAD", "US Dollar / Canadian Dollar", 0.0001, 4, 10),
	USDCHF: fx("USD/CHF", "US Dollar / Swiss Franc", 0.0001, 4, 10),
	AUDUSD: fx("AUD/USD", "Australian Dollar / US Dollar", 0.0001, 4, 10),
	NZDUSD: fx("NZD/USD", "New Zealand Dollar / US Dollar", 0.0001, 4, 10),
	EURGBP: fx("EUR/GBP", "Euro / British Pound", 0.0001, 4, 10),
	EURJPY: fx("EUR/JPY", "Euro / Japanese Yen", 0.01, 2, 10),
	GBPJPY: fx("GBP/JPY", "British Pound / Japanese Yen", 0.01, 2, 10),
}

// bySymbol is keyed on the normalized form, e.g. "EURUSD".
var bySymbol = func() map[string]Pair {
	m := make(map[string]Pair, len(catalog))
	for p, meta := range catalog {
		m[normalize(meta.Symbol)] = p
	}
	return m
}()

func normalize(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	return strings.NewReplacer("/", "", "_", "", "-", "").Replace(s)
}

// ParsePair accepts "EUR/USD", "EUR_USD" or "EURUSD" in any case.
func ParsePair(symbol string) (Pair, error) {
	p, ok := bySymbol[normalize(symbol)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedPair, symbol)
	}
	return p, nil
}

// Meta returns the catalog entry for p.
func (p Pair) Meta() (PairMetadata, error) {
	meta, ok := catalog[p]
	if !ok {
		return PairMetadata{}, fmt.Errorf("%w: pair id %d", ErrUnsupportedPair, int(p))
	}
	return meta, nil
}

func (p Pair) String() string {
	if meta, ok := catalog[p]; ok {
		return meta.Symbol
	}
	return fmt.Sprintf("Pair(%d)", int(p))
}

// Lookup returns the metadata for a symbol string.
func Lookup(symbol string) (PairMetadata, error) {
	p, err := ParsePair(symbol)
	if err != nil {
		return PairMetadata{}, err
	}
	return p.Meta()
}

// Pairs returns every supported pair in display order.
func Pairs() []Pair {
	out := make([]Pair, 0, len(catalog))
	for p := XAUUSD; p <= GBPJPY; p++ {
		out = append(out, p)
	}
	return out
}

// FindPair returns the catalog pair quoting base against quote, if any.
func FindPair(base, quote string) (Pair, bool) {
	p, ok := bySymbol[normalize(base+quote)]
	return p, ok
}
