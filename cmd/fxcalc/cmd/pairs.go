package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/rustyeddy/fxcalc/market"
	"github.com/spf13/cobra"
)

var pairsCmd = &cobra.Command{
	Use:   "pairs",
	Short: "List supported instruments",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SYMBOL\tNAME\tPIP\tDIGITS\tPIP VALUE/LOT")
		for _, p := range market.Pairs() {
			meta, err := p.Meta()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\t%g\t%d\t%g\n",
				meta.Symbol, meta.DisplayName, meta.PipSize, meta.PriceDigits, meta.PipValuePerLot)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(pairsCmd)
}
