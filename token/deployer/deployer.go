package deployer

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/anmol/mytoken/contracts/mytoken"
	tokentypes "github.com/anmol/mytoken/token/types"
)

// Backend is the chain connection a Deployer needs. Both *ethclient.Client and
// simulated.Client satisfy it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// Deployment describes a successfully deployed token.
type Deployment struct {
	Address     common.Address
	TxHash      common.Hash
	BlockNumber uint64
	Deployer    common.Address
	Params      tokentypes.Params
	TotalSupply *big.Int
}

// Deployer deploys the token contract and sends transactions signed with a single key.
type Deployer struct {
	logger  log.Logger
	backend Backend
	key     *ecdsa.PrivateKey
	from    common.Address

	committer    Committer
	pollInterval time.Duration
	maxAttempts  uint64
}

type Option func(*Deployer)

// WithCommitter seals a block after every sent transaction.
func WithCommitter(c Committer) Option {
	return func(d *Deployer) { d.committer = c }
}

// WithPolling sets how receipts are polled.
func WithPolling(interval time.Duration, maxAttempts uint64) Option {
	return func(d *Deployer) {
		d.pollInterval = interval
		d.maxAttempts = maxAttempts
	}
}

func New(logger log.Logger, backend Backend, key *ecdsa.PrivateKey, opts ...Option) *Deployer {
	d := &Deployer{
		logger:  logger.With("module", "deployer"),
		backend: backend,
		key:     key,
		from:    crypto.PubkeyToAddress(key.PublicKey),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ParsePrivateKey decodes a hex private key, with or without the 0x prefix.
func ParsePrivateKey(s string) (*ecdsa.PrivateKey, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if s == "" {
		return nil, errorsmod.Wrapf(tokentypes.ErrInvalidKey, "%s is not set", tokentypes.EnvDeployerKey)
	}
	key, err := crypto.HexToECDSA(s)
	if err != nil {
		return nil, errorsmod.Wrap(tokentypes.ErrInvalidKey, err.Error())
	}
	return key, nil
}

// From returns the address transactions are signed with.
func (d *Deployer) From() common.Address {
	return d.from
}

func (d *Deployer) waiter() *Waiter {
	return NewWaiter(d.backend, d.committer, d.pollInterval, d.maxAttempts)
}

func (d *Deployer) transactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	chainID, err := d.backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("query chain id: %w", err)
	}
	opts, err := bind.NewKeyedTransactorWithChainID(d.key, chainID)
	if err != nil {
		return nil, fmt.Errorf("create transactor: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}

// VerifyChainID fails unless the backend reports the expected chain ID. Zero accepts any chain.
func (d *Deployer) VerifyChainID(ctx context.Context, want uint64) error {
	if want == 0 {
		return nil
	}
	got, err := d.backend.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("query chain id: %w", err)
	}
	if !got.IsUint64() || got.Uint64() != want {
		return errorsmod.Wrapf(tokentypes.ErrChainIDMismatch, "expected %d, endpoint reports %s", want, got)
	}
	return nil
}

// Deploy sends the contract creation, waits for it and reads back the total supply.
func (d *Deployer) Deploy(ctx context.Context, params tokentypes.Params) (*Deployment, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	opts, err := d.transactOpts(ctx)
	if err != nil {
		return nil, err
	}

	d.logger.Info("deploying token",
		"deployer", d.from.Hex(),
		"owner", params.Owner.Hex(),
		"initial_supply", params.InitialSupply.String(),
		"name", params.Name,
		"symbol", params.Symbol,
	)

	address, tx, token, err := mytoken.DeployMyToken(opts, d.backend, params.Owner, params.InitialSupply, params.Name, params.Symbol)
	if err != nil {
		if rev, ok := mytoken.UnpackRevert(err); ok {
			return nil, errorsmod.Wrap(tokentypes.ErrDeployFailed, rev.Error())
		}
		return nil, errors.Join(errorsmod.Wrap(tokentypes.ErrDeployFailed, "send creation tx"), err)
	}
	d.logger.Debug("deployment sent", "tx_hash", tx.Hash().Hex(), "address", address.Hex())

	receipt, err := d.waiter().WaitDeployed(ctx, tx)
	if err != nil {
		return nil, err
	}

	totalSupply, err := token.TotalSupply(&bind.CallOpts{Context: ctx})
	if err != nil {
		return nil, fmt.Errorf("read total supply: %w", err)
	}

	d.logger.Info(fmt.Sprintf("myToken deployed to %s with an initialSupply %s", token.Address().Hex(), totalSupply),
		"tx_hash", tx.Hash().Hex(),
		"block", receipt.BlockNumber.Uint64(),
	)

	return &Deployment{
		Address:     token.Address(),
		TxHash:      tx.Hash(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		Deployer:    d.from,
		Params:      params,
		TotalSupply: totalSupply,
	}, nil
}

// Transfer sends amount of the token at tokenAddr to the given address and returns the
// Transfer event it emitted.
func (d *Deployer) Transfer(ctx context.Context, tokenAddr, to common.Address, amount *big.Int) (*mytoken.MyTokenTransfer, error) {
	if amount == nil || amount.Sign() < 0 {
		return nil, errorsmod.Wrapf(tokentypes.ErrInvalidAmount, "%v", amount)
	}

	opts, err := d.transactOpts(ctx)
	if err != nil {
		return nil, err
	}

	token := mytoken.NewMyToken(tokenAddr, d.backend)
	tx, err := token.Transfer(opts, to, amount)
	if err != nil {
		if rev, ok := mytoken.UnpackRevert(err); ok {
			return nil, rev
		}
		return nil, fmt.Errorf("send transfer: %w", err)
	}

	receipt, err := d.waiter().WaitMined(ctx, tx)
	if err != nil {
		return nil, err
	}

	events, err := token.TransferEvents(receipt)
	if err != nil {
		return nil, err
	}
	if len(events) != 1 {
		return nil, fmt.Errorf("expected 1 transfer event in tx %s, got %d", tx.Hash().Hex(), len(events))
	}

	d.logger.Info("transfer mined",
		"token", tokenAddr.Hex(),
		"from", events[0].From.Hex(),
		"to", events[0].To.Hex(),
		"value", events[0].Value.String(),
		"tx_hash", tx.Hash().Hex(),
	)
	return events[0], nil
}
