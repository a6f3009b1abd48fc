// Package mytoken is a Go binding around the MyToken ERC-20 contract.
package mytoken

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/anmol/mytoken/contracts"
)

// MyToken is a bound instance of a deployed MyToken contract.
type MyToken struct {
	address  common.Address
	abi      abi.ABI
	contract *bind.BoundContract
}

// DeployMyToken deploys a new MyToken contract, minting initialSupply to initialOwner.
func DeployMyToken(
	opts *bind.TransactOpts,
	backend bind.ContractBackend,
	initialOwner common.Address,
	initialSupply *big.Int,
	name string,
	symbol string,
) (common.Address, *ethtypes.Transaction, *MyToken, error) {
	parsed := contracts.MyTokenContract.ABI
	address, tx, contract, err := bind.DeployContract(
		opts,
		parsed,
		contracts.MyTokenContract.Bin,
		backend,
		initialOwner,
		initialSupply,
		name,
		symbol,
	)
	if err != nil {
		return common.Address{}, nil, nil, err
	}
	return address, tx, &MyToken{address: address, abi: parsed, contract: contract}, nil
}

// NewMyToken binds an already deployed contract.
func NewMyToken(address common.Address, backend bind.ContractBackend) *MyToken {
	parsed := contracts.MyTokenContract.ABI
	return &MyToken{
		address:  address,
		abi:      parsed,
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
	}
}

// Address returns the address the contract is deployed at.
func (t *MyToken) Address() common.Address {
	return t.address
}

func (t *MyToken) call(opts *bind.CallOpts, method string, args ...any) ([]any, error) {
	var out []any
	if err := t.contract.Call(opts, &out, method, args...); err != nil {
		return nil, err
	}
	return out, nil
}

func (t *MyToken) callBig(opts *bind.CallOpts, method string, args ...any) (*big.Int, error) {
	out, err := t.call(opts, method, args...)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (t *MyToken) callString(opts *bind.CallOpts, method string) (string, error) {
	out, err := t.call(opts, method)
	if err != nil {
		return "", err
	}
	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

func (t *MyToken) Name(opts *bind.CallOpts) (string, error) {
	return t.callString(opts, "name")
}

func (t *MyToken) Symbol(opts *bind.CallOpts) (string, error) {
	return t.callString(opts, "symbol")
}

func (t *MyToken) Decimals(opts *bind.CallOpts) (uint8, error) {
	out, err := t.call(opts, "decimals")
	if err != nil {
		return 0, err
	}
	return *abi.ConvertType(out[0], new(uint8)).(*uint8), nil
}

func (t *MyToken) TotalSupply(opts *bind.CallOpts) (*big.Int, error) {
	return t.callBig(opts, "totalSupply")
}

func (t *MyToken) BalanceOf(opts *bind.CallOpts, account common.Address) (*big.Int, error) {
	return t.callBig(opts, "balanceOf", account)
}

func (t *MyToken) Allowance(opts *bind.CallOpts, owner, spender common.Address) (*big.Int, error) {
	return t.callBig(opts, "allowance", owner, spender)
}

func (t *MyToken) Owner(opts *bind.CallOpts) (common.Address, error) {
	out, err := t.call(opts, "owner")
	if err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

func (t *MyToken) Transfer(opts *bind.TransactOpts, to common.Address, value *big.Int) (*ethtypes.Transaction, error) {
	return t.contract.Transact(opts, "transfer", to, value)
}

func (t *MyToken) Approve(opts *bind.TransactOpts, spender common.Address, value *big.Int) (*ethtypes.Transaction, error) {
	return t.contract.Transact(opts, "approve", spender, value)
}

func (t *MyToken) TransferFrom(opts *bind.TransactOpts, from, to common.Address, value *big.Int) (*ethtypes.Transaction, error) {
	return t.contract.Transact(opts, "transferFrom", from, to, value)
}

// Mint creates amount new tokens for to. Only the owner may call it.
func (t *MyToken) Mint(opts *bind.TransactOpts, to common.Address, amount *big.Int) (*ethtypes.Transaction, error) {
	return t.contract.Transact(opts, "mint", to, amount)
}

func (t *MyToken) TransferOwnership(opts *bind.TransactOpts, newOwner common.Address) (*ethtypes.Transaction, error) {
	return t.contract.Transact(opts, "transferOwnership", newOwner)
}

func (t *MyToken) RenounceOwnership(opts *bind.TransactOpts) (*ethtypes.Transaction, error) {
	return t.contract.Transact(opts, "renounceOwnership")
}
