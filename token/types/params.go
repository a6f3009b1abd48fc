package types

import (
	"math/big"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/common"
)

// Params are the constructor arguments of the token contract.
type Params struct {
	Owner         common.Address
	InitialSupply *big.Int
	Name          string
	Symbol        string
}

// DefaultParams returns the arguments the token is deployed with unless overridden.
func DefaultParams(owner common.Address) Params {
	return Params{
		Owner:         owner,
		InitialSupply: big.NewInt(DefaultInitialSupply),
		Name:          DefaultTokenName,
		Symbol:        DefaultTokenSymbol,
	}
}

func (p Params) Validate() error {
	if p.Owner == (common.Address{}) {
		return errorsmod.Wrap(ErrInvalidOwner, "owner is the zero address")
	}
	if p.InitialSupply == nil || p.InitialSupply.Sign() < 0 {
		return errorsmod.Wrapf(ErrInvalidSupply, "initial supply must be non-negative, got %v", p.InitialSupply)
	}
	if p.InitialSupply.BitLen() > 256 {
		return errorsmod.Wrapf(ErrInvalidSupply, "initial supply %s overflows uint256", p.InitialSupply)
	}
	if strings.TrimSpace(p.Name) == "" {
		return errorsmod.Wrap(ErrInvalidMetadata, "name is empty")
	}
	if strings.TrimSpace(p.Symbol) == "" {
		return errorsmod.Wrap(ErrInvalidMetadata, "symbol is empty")
	}
	return nil
}

// ParseOwner parses a hex encoded owner address, rejecting malformed and zero addresses.
func ParseOwner(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return common.Address{}, errorsmod.Wrapf(ErrInvalidOwner, "%s is not set", EnvOwnerAddress)
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, errorsmod.Wrapf(ErrInvalidOwner, "%q is not a hex address", s)
	}
	addr := common.HexToAddress(s)
	if addr == (common.Address{}) {
		return common.Address{}, errorsmod.Wrap(ErrInvalidOwner, "owner is the zero address")
	}
	return addr, nil
}
