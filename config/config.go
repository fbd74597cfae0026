package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rustyeddy/fxcalc/market"
	"github.com/rustyeddy/fxcalc/pricing"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds the calculator defaults and the price feed settings.
type Config struct {
	Account AccountConfig `json:"account" yaml:"account"`
	Risk    RiskConfig    `json:"risk" yaml:"risk"`
	Pricing PricingConfig `json:"pricing" yaml:"pricing"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

type AccountConfig struct {
	Currency string  `json:"currency" yaml:"currency"`
	Balance  float64 `json:"balance" yaml:"balance"`
}

// RiskConfig seeds the lot size calculator. RiskPercent is in percent units.
type RiskConfig struct {
	RiskPercent float64 `json:"risk_percent" yaml:"risk_percent"`
	Pair        string  `json:"pair" yaml:"pair"`
	StopPips    float64 `json:"stop_pips" yaml:"stop_pips"`
}

type PricingConfig struct {
	BaseURL  string `json:"base_url" yaml:"base_url"`
	Timeout  string `json:"timeout" yaml:"timeout"`     // e.g. "10s"
	CacheTTL string `json:"cache_ttl" yaml:"cache_ttl"` // e.g. "30s"
	Fallback bool   `json:"fallback" yaml:"fallback"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}

// TimeoutDuration converts the timeout string; empty means zero.
func (p PricingConfig) TimeoutDuration() (time.Duration, error) {
	return parseDuration(p.Timeout)
}

// CacheTTLDuration converts the cache TTL string; empty means zero.
func (p PricingConfig) CacheTTLDuration() (time.Duration, error) {
	return parseDuration(p.CacheTTL)
}

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// YAML is a superset of JSON, but keep the JSON error if both fail.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		cfg = Default()
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", jerr)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes YAML for .yaml/.yml paths and indented JSON otherwise.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Account.Balance <= 0 {
		return fmt.Errorf("account.balance must be positive")
	}
	if c.Risk.RiskPercent <= 0 || c.Risk.RiskPercent > 100 {
		return fmt.Errorf("risk.risk_percent must be in (0, 100]")
	}
	if c.Risk.Pair == "" {
		return fmt.Errorf("risk.pair is required")
	}
	if _, err := market.ParsePair(c.Risk.Pair); err != nil {
		return fmt.Errorf("risk.pair: %w", err)
	}
	if c.Risk.StopPips <= 0 {
		return fmt.Errorf("risk.stop_pips must be positive")
	}
	if d, err := c.Pricing.TimeoutDuration(); err != nil || d < 0 {
		return fmt.Errorf("pricing.timeout must be a non-negative duration")
	}
	if d, err := c.Pricing.CacheTTLDuration(); err != nil || d < 0 {
		return fmt.Errorf("pricing.cache_ttl must be a non-negative duration")
	}
	if c.Log.Level != "" {
		if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Currency: "USD",
			Balance:  10000,
		},
		Risk: RiskConfig{
			RiskPercent: 2,
			Pair:        "XAU/USD",
			StopPips:    50,
		},
		Pricing: PricingConfig{
			BaseURL:  pricing.DefaultExchangeRateURL,
			Timeout:  "10s",
			CacheTTL: pricing.DefaultCacheTTL.String(),
			Fallback: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
