// Package config loads the deployer configuration from <home>/.mytoken/config.toml
// and the secrets from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	tokentypes "github.com/anmol/mytoken/token/types"
)

type Config struct {
	Network NetworkConfig `mapstructure:"network" toml:"network"`
	Token   TokenConfig   `mapstructure:"token" toml:"token"`
	Deploy  DeployConfig  `mapstructure:"deploy" toml:"deploy"`
}

type NetworkConfig struct {
	Name     string `mapstructure:"name" toml:"name" comment:"network name, used as the key of the deployment record"`
	Endpoint string `mapstructure:"endpoint" toml:"endpoint" comment:"JSON-RPC endpoint, overridden by RPC_URL"`
	ChainID  uint64 `mapstructure:"chain_id" toml:"chain_id" comment:"expected chain id of the endpoint, 0 accepts any"`
}

type TokenConfig struct {
	Name          string `mapstructure:"name" toml:"name"`
	Symbol        string `mapstructure:"symbol" toml:"symbol"`
	InitialSupply string `mapstructure:"initial_supply" toml:"initial_supply" comment:"minted to the owner, in base units"`
}

type DeployConfig struct {
	TimeoutSec     uint64 `mapstructure:"timeout_sec" toml:"timeout_sec" comment:"overall deadline of a deployment"`
	PollIntervalMs uint64 `mapstructure:"poll_interval_ms" toml:"poll_interval_ms" comment:"receipt polling interval"`
	MaxAttempts    uint64 `mapstructure:"max_attempts" toml:"max_attempts"`
	RecordFile     string `mapstructure:"record_file" toml:"record_file" comment:"deployment record, relative paths are resolved against the home directory"`
}

func DefaultConfig() Config {
	return Config{
		Network: NetworkConfig{
			Name:     "localhost",
			Endpoint: "http://127.0.0.1:8545",
			ChainID:  0,
		},
		Token: TokenConfig{
			Name:          tokentypes.DefaultTokenName,
			Symbol:        tokentypes.DefaultTokenSymbol,
			InitialSupply: fmt.Sprint(tokentypes.DefaultInitialSupply),
		},
		Deploy: DeployConfig{
			TimeoutSec:     120,
			PollIntervalMs: 1000,
			MaxAttempts:    120,
			RecordFile:     "deployments.json",
		},
	}
}

func (c DeployConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

func (c DeployConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// RecordPath resolves the record file against home.
func (c DeployConfig) RecordPath(home string) string {
	if filepath.IsAbs(c.RecordFile) {
		return c.RecordFile
	}
	return filepath.Join(home, c.RecordFile)
}

func LoadFile(path string) (*Config, error) {
	if st, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", os.ErrNotExist, path)
		}
		return nil, fmt.Errorf("stat config file: %w", err)
	} else if st.IsDir() {
		return nil, fmt.Errorf("config path is a directory: %s", path)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	def := DefaultConfig()
	v.SetDefault("deploy.timeout_sec", def.Deploy.TimeoutSec)
	v.SetDefault("deploy.poll_interval_ms", def.Deploy.PollIntervalMs)
	v.SetDefault("deploy.max_attempts", def.Deploy.MaxAttempts)
	v.SetDefault("deploy.record_file", def.Deploy.RecordFile)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	if c.Network.Endpoint == "" {
		return fmt.Errorf("network.endpoint is required")
	}
	if strings.TrimSpace(c.Token.Name) == "" {
		return fmt.Errorf("token.name is required")
	}
	if strings.TrimSpace(c.Token.Symbol) == "" {
		return fmt.Errorf("token.symbol is required")
	}
	if _, err := tokentypes.ParseAmount(c.Token.InitialSupply); err != nil {
		return fmt.Errorf("token.initial_supply: %w", err)
	}
	if c.Deploy.TimeoutSec == 0 {
		return fmt.Errorf("deploy.timeout_sec must be > 0")
	}
	if c.Deploy.PollIntervalMs == 0 {
		return fmt.Errorf("deploy.poll_interval_ms must be > 0")
	}
	return nil
}

func WriteDefaultFile(path string) error {
	bz, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to encode default config: %w", err)
	}
	bz = append([]byte("# MyToken deployer configuration\n\n"), bz...)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, bz, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
