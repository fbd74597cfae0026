package cmd

import (
	"fmt"

	"github.com/rustyeddy/fxcalc/risk"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Size a signal setup and check it against the risk policy",
	Long: `Evaluate a signal before taking it: stop and target placement, risk/reward,
risk percent and the resulting lot size.

Example:
  fxcalc check --pair EUR/USD --type buy --entry 1.1000 --sl 1.0950 --tp 1.1050 --tp 1.1100`,
	RunE: runCheck,
}

var (
	checkStop   float64
	checkTPs    []float64
	checkMinRR  float64
	checkMaxPct float64
)

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&pairFlag, "pair", "p", "", "instrument (default from config)")
	checkCmd.Flags().StringVarP(&dirFlag, "type", "t", "buy", "trade direction: buy or sell")
	checkCmd.Flags().Float64Var(&entryFlag, "entry", 0, "entry price")
	checkCmd.Flags().Float64Var(&checkStop, "sl", 0, "stop loss price")
	checkCmd.Flags().Float64SliceVar(&checkTPs, "tp", nil, "take profit prices, repeatable")
	checkCmd.Flags().Float64Var(&checkMinRR, "min-rr", risk.DefaultPolicy().MinRR, "minimum risk/reward")
	checkCmd.Flags().Float64Var(&checkMaxPct, "max-risk", risk.DefaultPolicy().MaxRiskPercent, "maximum risk percent")
	checkCmd.MarkFlagRequired("entry")
	checkCmd.MarkFlagRequired("sl")
}

func runCheck(cmd *cobra.Command, args []string) error {
	pair, meta, err := resolvePair()
	if err != nil {
		return err
	}
	dir, err := risk.ParseDirection(dirFlag)
	if err != nil {
		return err
	}

	policy := risk.Policy{MaxRiskPercent: checkMaxPct, MinRR: checkMinRR}
	d, err := risk.Evaluate(policy, risk.Setup{
		Pair:           pair,
		Direction:      dir,
		Entry:          entryFlag,
		StopLoss:       checkStop,
		TakeProfits:    checkTPs,
		Balance:        appConfig.Account.Balance,
		RiskPercent:    appConfig.Risk.RiskPercent,
		PipValuePerLot: derivePipValue(cmd.Context(), pair, meta),
	})
	if err != nil {
		return fmt.Errorf("evaluate setup: %w", err)
	}
	logger.Debug("setup evaluated", zap.Stringer("pair", pair), zap.Bool("allowed", d.Allowed))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Pair:      %s %s\n", meta.Symbol, dir)
	fmt.Fprintf(out, "Stop:      %.1f pips\n", d.StopPips)
	for i, tp := range d.TargetPips {
		fmt.Fprintf(out, "TP%d:       %.1f pips\n", i+1, tp)
	}
	fmt.Fprintf(out, "R:R:       1:%.2f\n", d.RR)
	fmt.Fprintf(out, "Lot Size:  %.2f\n", d.Lots.LotSize)

	if d.Allowed {
		fmt.Fprintln(out, "✓ Setup within policy")
		return nil
	}
	for _, v := range d.Violations {
		fmt.Fprintf(out, "✗ %s: %s\n", v.Code, v.Msg)
	}
	return nil
}
