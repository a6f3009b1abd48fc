package deployer

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	tokentypes "github.com/anmol/mytoken/token/types"
)

// Record is the persisted form of a Deployment, stored per network in a JSON file.
type Record struct {
	Address     common.Address
	TxHash      common.Hash
	BlockNumber uint64
	Deployer    common.Address
	Owner       common.Address
	Name        string
	Symbol      string
	TotalSupply *big.Int
	DeployedAt  time.Time
}

// networkPath escapes network so that it is always read as a single literal key.
func networkPath(network string) string {
	key := gjson.Escape(network)
	if strings.HasPrefix(key, ":") {
		key = `\` + key
	}
	return "networks." + key
}

// WriteRecord stores d under the given network in the JSON file at path, keeping the
// entries of other networks.
func WriteRecord(path, network string, d *Deployment, at time.Time) error {
	doc := "{}"
	bz, err := os.ReadFile(path)
	switch {
	case err == nil:
		if len(strings.TrimSpace(string(bz))) > 0 {
			if !gjson.ValidBytes(bz) {
				return fmt.Errorf("deployment record %s is not valid JSON", path)
			}
			doc = string(bz)
		}
	case !os.IsNotExist(err):
		return err
	}

	entry := map[string]any{
		"address":      d.Address.Hex(),
		"tx_hash":      d.TxHash.Hex(),
		"block_number": d.BlockNumber,
		"deployer":     d.Deployer.Hex(),
		"owner":        d.Params.Owner.Hex(),
		"name":         d.Params.Name,
		"symbol":       d.Params.Symbol,
		"total_supply": d.TotalSupply.String(),
		"deployed_at":  at.UTC().Format(time.RFC3339),
	}
	doc, err = sjson.Set(doc, networkPath(network), entry)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(gjson.Get(doc, "@pretty").Raw), 0o644)
}

// ReadRecord loads the deployment stored for network.
func ReadRecord(path, network string) (*Record, error) {
	bz, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errorsmod.Wrapf(tokentypes.ErrRecordNotFound, "%s does not exist", path)
	}
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(bz) {
		return nil, fmt.Errorf("deployment record %s is not valid JSON", path)
	}

	entry := gjson.GetBytes(bz, networkPath(network))
	if !entry.Exists() || !entry.IsObject() {
		return nil, errorsmod.Wrapf(tokentypes.ErrRecordNotFound, "network %q", network)
	}

	address := entry.Get("address").String()
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("record for %q has invalid address %q", network, address)
	}

	supply, ok := new(big.Int).SetString(entry.Get("total_supply").String(), 10)
	if !ok {
		supply = new(big.Int)
	}

	var deployedAt time.Time
	if s := entry.Get("deployed_at").String(); s != "" {
		deployedAt, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, fmt.Errorf("record for %q: %w", network, err)
		}
	}

	return &Record{
		Address:     common.HexToAddress(address),
		TxHash:      common.HexToHash(entry.Get("tx_hash").String()),
		BlockNumber: entry.Get("block_number").Uint(),
		Deployer:    common.HexToAddress(entry.Get("deployer").String()),
		Owner:       common.HexToAddress(entry.Get("owner").String()),
		Name:        entry.Get("name").String(),
		Symbol:      entry.Get("symbol").String(),
		TotalSupply: supply,
		DeployedAt:  deployedAt,
	}, nil
}
