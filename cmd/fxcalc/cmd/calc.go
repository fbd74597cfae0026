package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/rustyeddy/fxcalc/market"
	"github.com/rustyeddy/fxcalc/notify"
	"github.com/rustyeddy/fxcalc/pricing"
	"github.com/rustyeddy/fxcalc/risk"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var pipCmd = &cobra.Command{
	Use:   "pip",
	Short: "Count pips between entry and exit",
	Long: `Measure the distance between two prices in pips.

Positive pips mean the move favored the trade direction.

Example:
  fxcalc pip --pair EUR/USD --entry 1.1000 --exit 1.1050 --type buy`,
	RunE: runPip,
}

var lotCmd = &cobra.Command{
	Use:   "lot",
	Short: "Size a position from account risk",
	Long: `Compute the lot size whose stop loss costs the chosen share of the balance.

The stop may be given in pips (--stop) or as a price (--entry and --stop-price).
Pip value defaults to the pair's pip converted into the account currency at
live prices, or the catalog value per lot when no price is available.

Example:
  fxcalc lot --balance 10000 --risk 2 --stop 50 --pair EUR/USD`,
	RunE: runLot,
}

var pnlCmd = &cobra.Command{
	Use:   "pnl",
	Short: "Profit or loss of a closed trade",
	Long: `Compute realized profit, percent return on notional and pips.

Example:
  fxcalc pnl --pair EUR/USD --lots 1 --entry 1.1000 --exit 1.0950 --type sell`,
	RunE: runPnL,
}

var rrCmd = &cobra.Command{
	Use:   "rr",
	Short: "Risk/reward ratio of a setup",
	RunE:  runRR,
}

var (
	pairFlag      string
	dirFlag       string
	entryFlag     float64
	exitFlag      float64
	lotsFlag      float64
	balanceFlag   float64
	riskFlag      float64
	stopFlag      float64
	stopPriceFlag float64
	pipValueFlag  float64
	tpFlag        float64
)

func init() {
	rootCmd.AddCommand(pipCmd, lotCmd, pnlCmd, rrCmd)

	for _, c := range []*cobra.Command{pipCmd, lotCmd, pnlCmd} {
		c.Flags().StringVarP(&pairFlag, "pair", "p", "", "instrument, e.g. EUR/USD (default from config)")
	}
	for _, c := range []*cobra.Command{pipCmd, pnlCmd} {
		c.Flags().StringVarP(&dirFlag, "type", "t", "buy", "trade direction: buy or sell")
		c.Flags().Float64Var(&exitFlag, "exit", 0, "exit price")
		c.MarkFlagRequired("exit")
	}
	for _, c := range []*cobra.Command{pipCmd, lotCmd, pnlCmd, rrCmd} {
		c.Flags().Float64Var(&entryFlag, "entry", 0, "entry price")
	}
	pipCmd.MarkFlagRequired("entry")
	pnlCmd.MarkFlagRequired("entry")
	rrCmd.MarkFlagRequired("entry")

	pnlCmd.Flags().Float64VarP(&lotsFlag, "lots", "l", 0, "position size in standard lots")
	pnlCmd.MarkFlagRequired("lots")

	lotCmd.Flags().Float64Var(&balanceFlag, "balance", 0, "account balance (default from config)")
	lotCmd.Flags().Float64Var(&riskFlag, "risk", 0, "risk percent of balance (default from config)")
	lotCmd.Flags().Float64Var(&stopFlag, "stop", 0, "stop loss distance in pips (default from config)")
	lotCmd.Flags().Float64Var(&stopPriceFlag, "stop-price", 0, "stop loss price, used with --entry")
	lotCmd.Flags().Float64Var(&pipValueFlag, "pip-value", 0, "value of one pip per lot (default from pair)")

	rrCmd.Flags().Float64Var(&stopPriceFlag, "stop", 0, "stop loss price")
	rrCmd.Flags().Float64Var(&tpFlag, "tp", 0, "take profit price")
	rrCmd.MarkFlagRequired("stop")
	rrCmd.MarkFlagRequired("tp")
}

// resolvePair falls back to the configured pair when --pair is empty.
func resolvePair() (market.Pair, market.PairMetadata, error) {
	sym := pairFlag
	if sym == "" {
		sym = appConfig.Risk.Pair
	}
	p, err := market.ParsePair(sym)
	if err != nil {
		return 0, market.PairMetadata{}, err
	}
	meta, err := p.Meta()
	return p, meta, err
}

func printMessage(w io.Writer, m notify.Message) {
	fmt.Fprintf(w, "\n%s\n  %s\n", m.Title, m.Body)
}

func runPip(cmd *cobra.Command, args []string) error {
	pair, meta, err := resolvePair()
	if err != nil {
		return err
	}
	dir, err := risk.ParseDirection(dirFlag)
	if err != nil {
		return err
	}

	res, err := risk.CalculatePips(pair, entryFlag, exitFlag, dir)
	if err != nil {
		return fmt.Errorf("calculate pips: %w", err)
	}
	logger.Debug("pips calculated", zap.Stringer("pair", pair), zap.Float64("pips", res.TotalPips))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Pair:             %s\n", meta.Symbol)
	fmt.Fprintf(out, "Total Pips:       %.1f\n", res.TotalPips)
	fmt.Fprintf(out, "Pip Size:         %g\n", res.PipSize)
	fmt.Fprintf(out, "Price Difference: %.*f\n", meta.PriceDigits+1, res.PriceDelta)
	printMessage(out, notify.PipMessage(meta, dir, entryFlag, exitFlag, res))
	return nil
}

func runLot(cmd *cobra.Command, args []string) error {
	pair, meta, err := resolvePair()
	if err != nil {
		return err
	}
	flags := cmd.Flags()

	balance := appConfig.Account.Balance
	if flags.Changed("balance") {
		balance = balanceFlag
	}
	riskPct := appConfig.Risk.RiskPercent
	if flags.Changed("risk") {
		riskPct = riskFlag
	}

	stop := appConfig.Risk.StopPips
	switch {
	case flags.Changed("stop"):
		stop = stopFlag
	case flags.Changed("stop-price"):
		stop, err = risk.StopPips(pair, entryFlag, stopPriceFlag)
		if err != nil {
			return fmt.Errorf("stop distance: %w", err)
		}
	}

	pipValue := pipValueFlag
	if !flags.Changed("pip-value") {
		pipValue = derivePipValue(cmd.Context(), pair, meta)
	}

	res, err := risk.CalculateLotSize(balance, riskPct, stop, pipValue)
	if err != nil {
		return fmt.Errorf("calculate lot size: %w", err)
	}
	logger.Debug("lot size calculated",
		zap.Stringer("pair", pair),
		zap.Float64("balance", balance),
		zap.Float64("risk_pct", riskPct),
		zap.Float64("stop_pips", stop),
		zap.Float64("pip_value", pipValue),
		zap.Float64("lots", res.LotSize))

	cur := appConfig.Account.Currency
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Pair:                 %s\n", meta.Symbol)
	fmt.Fprintf(out, "Stop Loss:            %.1f pips\n", stop)
	fmt.Fprintf(out, "Pip Value:            %.2f %s per lot\n", pipValue, cur)
	fmt.Fprintf(out, "Recommended Lot Size: %.2f\n", res.LotSize)
	fmt.Fprintf(out, "Position Size:        %.0f units\n", res.PositionUnits)
	fmt.Fprintf(out, "Risk Amount:          %.2f %s\n", res.RiskAmount, cur)
	printMessage(out, notify.LotSizeMessage(meta, res))
	return nil
}

// derivePipValue converts the pair's pip into the account currency using
// live prices, falling back to the catalog value.
func derivePipValue(ctx context.Context, pair market.Pair, meta market.PairMetadata) float64 {
	src, err := newPriceSource()
	if err == nil {
		var v float64
		v, err = pricing.PipValuePerLot(ctx, src, pair, appConfig.Account.Currency)
		if err == nil {
			return v
		}
	}
	logger.Warn("pip value conversion failed, using catalog value",
		zap.Stringer("pair", pair),
		zap.Float64("pip_value", meta.PipValuePerLot),
		zap.Error(err))
	return meta.PipValuePerLot
}

func runPnL(cmd *cobra.Command, args []string) error {
	pair, meta, err := resolvePair()
	if err != nil {
		return err
	}
	dir, err := risk.ParseDirection(dirFlag)
	if err != nil {
		return err
	}

	res, err := risk.CalculatePnL(pair, lotsFlag, entryFlag, exitFlag, dir)
	if err != nil {
		return fmt.Errorf("calculate pnl: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Pair:       %s\n", meta.Symbol)
	fmt.Fprintf(out, "Profit:     %.2f\n", res.Profit)
	fmt.Fprintf(out, "Return:     %.2f%%\n", res.ProfitPercent)
	fmt.Fprintf(out, "Pips:       %.1f\n", res.Pips)
	printMessage(out, notify.PnLMessage(meta, dir, lotsFlag, res))
	return nil
}

func runRR(cmd *cobra.Command, args []string) error {
	rr, err := risk.RiskReward(entryFlag, stopPriceFlag, tpFlag)
	if err != nil {
		return fmt.Errorf("risk/reward: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "R:R 1:%.2f\n", rr)
	return nil
}
