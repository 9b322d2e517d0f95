// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the wallet key goes to the OS keychain.
//
// Values are resolved in three layers: built-in defaults, the JSON config file,
// then environment variables (optionally seeded from a .env file in the
// working directory).
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"charity/cli/internal/chain"
	"charity/cli/internal/xdg"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultContractAddress is the deployed Charity contract the CLI talks to.
const DefaultContractAddress = "0x6263CD997403dBCC6A457b9594601947eb3F6Acd"

// DefaultUSDRate is the illustrative ETH/USD rate used for balance estimates.
const DefaultUSDRate = 2000

// Config holds non-sensitive CLI settings.
// A ChainID of zero means the chain id is asked from the node.
type Config struct {
	RPCURL          string  `json:"rpc_url" env:"CHARITY_RPC_URL"`
	ContractAddress string  `json:"contract_address" env:"CHARITY_CONTRACT"`
	ChainID         uint64  `json:"chain_id" env:"CHARITY_CHAIN_ID"`
	USDRate         float64 `json:"usd_rate" env:"CHARITY_USD_RATE"`
	LogLevel        string  `json:"log_level" env:"CHARITY_LOG_LEVEL"`
}

// Defaults returns the configuration used when no file or env override exists.
func Defaults() Config {
	return Config{
		RPCURL:          "http://127.0.0.1:8545",
		ContractAddress: DefaultContractAddress,
		USDRate:         DefaultUSDRate,
		LogLevel:        "info",
	}
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile returns the defaults overlaid with the config file, ignoring the
// environment. It is the layer Save writes back.
func LoadFile() (Config, error) {
	c := Defaults()
	p, err := path()
	if err != nil {
		return c, err
	}
	return c, readFile(p, &c)
}

// Load reads configuration; a missing file yields defaults. Environment
// variables override file values.
func Load() (Config, error) {
	c, err := LoadFile()
	if err != nil {
		return c, err
	}

	// A .env file is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return c, fmt.Errorf("load .env: %w", err)
	}
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}
	if c.ContractAddress == "" {
		c.ContractAddress = DefaultContractAddress
	}
	if c.USDRate <= 0 {
		c.USDRate = DefaultUSDRate
	}
	return c, nil
}

func readFile(p string, c *Config) error {
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", p, err)
	}
	return nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// Keys lists the settings Set accepts, named as in the config file.
var Keys = []string{"rpc_url", "contract_address", "chain_id", "usd_rate", "log_level"}

// Set assigns one setting from its string form.
func (c *Config) Set(key, value string) error {
	switch key {
	case "rpc_url":
		if value == "" {
			return errors.New("rpc_url must not be empty")
		}
		c.RPCURL = value
	case "contract_address":
		if !chain.IsAddress(value) {
			return fmt.Errorf("invalid contract address %q", value)
		}
		c.ContractAddress = value
	case "chain_id":
		id, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid chain id %q", value)
		}
		c.ChainID = id
	case "usd_rate":
		rate, err := strconv.ParseFloat(value, 64)
		if err != nil || rate <= 0 {
			return fmt.Errorf("invalid usd rate %q", value)
		}
		c.USDRate = rate
	case "log_level":
		switch value {
		case "trace", "debug", "info", "warn", "warning", "error", "off":
		default:
			return fmt.Errorf("invalid log level %q", value)
		}
		c.LogLevel = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}
