package cmd

import (
	"context"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/anmol/mytoken/testutil/chain"
	tokentypes "github.com/anmol/mytoken/token/types"
)

var homeMu sync.Mutex

func withHomeBase(t *testing.T, v string, fn func()) {
	t.Helper()
	homeMu.Lock()
	defer homeMu.Unlock()

	prev := homeBase
	homeBase = v
	t.Cleanup(func() { homeBase = prev })

	fn()
}

// withEnvFile points --env-file at a dotenv file holding vars and clears the same
// variables from the process environment.
func withEnvFile(t *testing.T, vars map[string]string) {
	t.Helper()

	for _, k := range []string{tokentypes.EnvOwnerAddress, tokentypes.EnvDeployerKey, tokentypes.EnvRPCURL} {
		t.Setenv(k, "")
	}

	var body string
	for k, v := range vars {
		body += k + "=" + v + "\n"
	}
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	prev := envFile
	envFile = path
	t.Cleanup(func() { envFile = prev })
}

// withSimulatedChain makes every command talk to a fresh in-process chain.
func withSimulatedChain(t *testing.T) *chain.Chain {
	t.Helper()

	c := chain.New(t, 3)
	prev := dialChain
	dialChain = func(context.Context, string) (*chainConn, error) {
		return &chainConn{Backend: c.Client, committer: c.Backend}, nil
	}
	t.Cleanup(func() { dialChain = prev })
	return c
}

func keyHex(s chain.Signer) string {
	return "0x" + hex.EncodeToString(crypto.FromECDSA(s.Key))
}

func envFor(owner common.Address, deployer chain.Signer) map[string]string {
	return map[string]string{
		tokentypes.EnvOwnerAddress: owner.Hex(),
		tokentypes.EnvDeployerKey:  keyHex(deployer),
	}
}

// resetFlags restores the defaults of the flags set by a test.
func resetFlags(t *testing.T, cmd *cobra.Command) {
	t.Helper()
	t.Cleanup(func() {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	})
}
