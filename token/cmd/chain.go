package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/anmol/mytoken/token/config"
	"github.com/anmol/mytoken/token/deployer"
)

// chainConn is an open connection to a JSON-RPC endpoint.
type chainConn struct {
	deployer.Backend

	// committer is only set for in-process chains that need blocks sealed explicitly.
	committer deployer.Committer
	close     func()
}

func (c *chainConn) Close() {
	if c.close != nil {
		c.close()
	}
}

func (c *chainConn) deployerOptions(cfg *config.Config) []deployer.Option {
	opts := []deployer.Option{
		deployer.WithPolling(cfg.Deploy.PollInterval(), cfg.Deploy.MaxAttempts),
	}
	if c.committer != nil {
		opts = append(opts, deployer.WithCommitter(c.committer))
	}
	return opts
}

// dialChain is replaced in tests by a simulated backend.
var dialChain = func(ctx context.Context, endpoint string) (*chainConn, error) {
	client, err := ethclient.DialContext(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", endpoint, err)
	}
	return &chainConn{Backend: client, close: client.Close}, nil
}

// loadConfig reads the config file created by `mytoken init` and the env file.
func loadConfig() (*config.Config, config.Env, error) {
	if st, err := os.Stat(homeDir()); err != nil || !st.IsDir() {
		return nil, config.Env{}, fmt.Errorf("home directory not initialized at %s (run `mytoken init` first)", homeDir())
	}

	cfgPath := configFilePath()
	cfg, err := config.LoadFile(cfgPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, config.Env{}, fmt.Errorf("config not found at %s (run `mytoken init` first)", cfgPath)
		}
		return nil, config.Env{}, fmt.Errorf("failed to load config from %s: %w", cfgPath, err)
	}

	env, err := config.LoadEnv(envFile)
	if err != nil {
		return nil, config.Env{}, err
	}
	return cfg, env, nil
}
