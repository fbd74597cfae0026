package cmd

import (
	"github.com/rustyeddy/fxcalc/config"
	"github.com/rustyeddy/fxcalc/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile  string
	logLevel string

	appConfig *config.Config
	logger    = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "fxcalc",
	Short: "Pip, lot size and P&L calculator for forex and metals",
	Long: `fxcalc does the arithmetic behind trading signals.

It provides:
  - Pip distance between two prices, signed by trade direction
  - Fixed-fractional lot sizing from balance, risk and stop distance
  - Realized profit/loss for a closed trade
  - Risk/reward ratio for a setup
  - Live prices with a short-lived cache and offline fallback

Supported pairs: run "fxcalc pairs".`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	defer func() { _ = logger.Sync() }()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
}

func setup(cmd *cobra.Command, args []string) error {
	appConfig = config.Default()
	if cfgFile != "" {
		cfg, err := config.LoadFromFile(cfgFile)
		if err != nil {
			return err
		}
		appConfig = cfg
	}

	level := appConfig.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	l, err := logging.New(level)
	if err != nil {
		return err
	}
	logger = l
	logger.Debug("config loaded", zap.String("file", cfgFile), zap.String("pair", appConfig.Risk.Pair))
	return nil
}
