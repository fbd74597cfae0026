package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/fxcalc/market"
	"github.com/rustyeddy/fxcalc/notify"
	"github.com/rustyeddy/fxcalc/pricing"
	"github.com/spf13/cobra"
)

var priceCmd = &cobra.Command{
	Use:   "price [PAIR...]",
	Short: "Fetch current prices",
	Long: `Fetch spot prices from the configured exchange rate API.

When the API is unreachable and pricing.fallback is enabled, reference prices
are shown instead.

Example:
  fxcalc price EUR/USD XAU/USD`,
	RunE: runPrice,
}

func init() {
	rootCmd.AddCommand(priceCmd)
}

// newPriceSource builds the cached source described by the config.
func newPriceSource() (pricing.Source, error) {
	timeout, err := appConfig.Pricing.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	ttl, err := appConfig.Pricing.CacheTTLDuration()
	if err != nil {
		return nil, err
	}

	var fallback pricing.Source
	if appConfig.Pricing.Fallback {
		fallback = pricing.ReferencePrices()
	}
	client := pricing.NewExchangeRateClient(appConfig.Pricing.BaseURL, timeout)
	return pricing.NewCachedSource(client, fallback, pricing.NewCache(ttl), logger), nil
}

func runPrice(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{appConfig.Risk.Pair}
	}

	src, err := newPriceSource()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, sym := range args {
		pair, err := market.ParsePair(sym)
		if err != nil {
			return err
		}
		meta, err := pair.Meta()
		if err != nil {
			return err
		}
		q, err := src.Price(cmd.Context(), pair)
		if err != nil {
			return fmt.Errorf("price %s: %w", meta.Symbol, err)
		}
		fmt.Fprintf(out, "%-8s %s  (%s, %s)\n",
			meta.Symbol, notify.FormatPrice(meta, q.Price), q.Source, q.Time.Format(time.RFC3339))
	}
	return nil
}
