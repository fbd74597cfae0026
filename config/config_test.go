package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, "USD", cfg.Account.Currency)
	assert.Equal(t, 10000.0, cfg.Account.Balance)
	assert.Equal(t, 2.0, cfg.Risk.RiskPercent)
	assert.Equal(t, "XAU/USD", cfg.Risk.Pair)
	assert.NoError(t, cfg.Validate())

	ttl, err := cfg.Pricing.CacheTTLDuration()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, ttl)
}

func TestValidate(t *testing.T) {
	mutate := func(f func(c *Config)) *Config {
		c := Default()
		f(c)
		return c
	}

	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			config: Default(),
		},
		{
			name:    "missing currency",
			config:  mutate(func(c *Config) { c.Account.Currency = "" }),
			wantErr: true,
			errMsg:  "account.currency is required",
		},
		{
			name:    "negative balance",
			config:  mutate(func(c *Config) { c.Account.Balance = -1000 }),
			wantErr: true,
			errMsg:  "account.balance must be positive",
		},
		{
			name:    "risk percent over 100",
			config:  mutate(func(c *Config) { c.Risk.RiskPercent = 150 }),
			wantErr: true,
			errMsg:  "risk.risk_percent must be in (0, 100]",
		},
		{
			name:    "unknown pair",
			config:  mutate(func(c *Config) { c.Risk.Pair = "ZZZ/ZZZ" }),
			wantErr: true,
			errMsg:  "unsupported pair",
		},
		{
			name:    "missing pair",
			config:  mutate(func(c *Config) { c.Risk.Pair = "" }),
			wantErr: true,
			errMsg:  "risk.pair is required",
		},
		{
			name:    "zero stop pips",
			config:  mutate(func(c *Config) { c.Risk.StopPips = 0 }),
			wantErr: true,
			errMsg:  "risk.stop_pips must be positive",
		},
		{
			name:    "bad timeout",
			config:  mutate(func(c *Config) { c.Pricing.Timeout = "soon" }),
			wantErr: true,
			errMsg:  "pricing.timeout",
		},
		{
			name:    "negative cache ttl",
			config:  mutate(func(c *Config) { c.Pricing.CacheTTL = "-5s" }),
			wantErr: true,
			errMsg:  "pricing.cache_ttl",
		},
		{
			name:    "bad log level",
			config:  mutate(func(c *Config) { c.Log.Level = "chatty" }),
			wantErr: true,
			errMsg:  "log.level",
		},
		{
			name:   "empty durations allowed",
			config: mutate(func(c *Config) { c.Pricing.Timeout = ""; c.Pricing.CacheTTL = "" }),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		ext  string
	}{
		{"json format", ".json"},
		{"yaml format", ".yaml"},
		{"yml format", ".yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Risk.Pair = "EUR/USD"
			cfg.Account.Balance = 2500
			path := filepath.Join(tmpDir, "test"+tt.ext)

			require.NoError(t, cfg.SaveToFile(path))

			_, err := os.Stat(path)
			require.NoError(t, err)

			loaded, err := LoadFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("account:\n  balance: 500\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 500.0, cfg.Account.Balance)
	assert.Equal(t, "USD", cfg.Account.Currency)
	assert.Equal(t, "XAU/USD", cfg.Risk.Pair)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path.yaml")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("risk:\n  risk_percent: 500\n"), 0644))
	_, err = LoadFromFile(path)
	assert.ErrorContains(t, err, "invalid config")
}
