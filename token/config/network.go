package config

import (
	"sort"

	errorsmod "cosmossdk.io/errors"

	tokentypes "github.com/anmol/mytoken/token/types"
)

// Network is a resolved deployment target.
type Network struct {
	Name     string
	Endpoint string
	ChainID  uint64
}

// Networks maps the known network names to their defaults. The guru entries expect the
// JSON-RPC server of a locally running node; point RPC_URL elsewhere for remote nodes.
var Networks = map[string]Network{
	"localhost":    {Name: "localhost", Endpoint: "http://127.0.0.1:8545", ChainID: 31337},
	"hardhat":      {Name: "hardhat", Endpoint: "http://127.0.0.1:8545", ChainID: 31337},
	"guru":         {Name: "guru", Endpoint: "http://127.0.0.1:8545", ChainID: 631},
	"guru-testnet": {Name: "guru-testnet", Endpoint: "http://127.0.0.1:8545", ChainID: 630},
}

// NetworkNames returns the known network names, sorted.
func NetworkNames() []string {
	names := make([]string, 0, len(Networks))
	for name := range Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveNetwork picks the network to deploy to. An empty name selects the configured
// network. A non-empty RPC_URL replaces the endpoint in every case.
func ResolveNetwork(cfg *Config, name string, env Env) (Network, error) {
	var n Network
	switch {
	case name == "" || name == cfg.Network.Name:
		n = Network{Name: cfg.Network.Name, Endpoint: cfg.Network.Endpoint, ChainID: cfg.Network.ChainID}
	default:
		preset, ok := Networks[name]
		if !ok {
			return Network{}, errorsmod.Wrapf(tokentypes.ErrUnknownNetwork, "%q, known networks are %v", name, NetworkNames())
		}
		n = preset
	}

	if env.RPCURL != "" {
		n.Endpoint = env.RPCURL
	}
	if n.Name == "" {
		n.Name = "default"
	}
	return n, nil
}
