package deployer

import (
	"context"
	"errors"
	"time"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/sethvargo/go-retry"

	tokentypes "github.com/anmol/mytoken/token/types"
)

const (
	DefaultPollInterval = time.Second
	DefaultMaxAttempts  = 120
)

// Committer seals pending transactions into a block. Only simulated chains need it.
type Committer interface {
	Commit() common.Hash
}

// Waiter polls for transaction receipts.
type Waiter struct {
	backend   bind.DeployBackend
	committer Committer
	interval  time.Duration
	attempts  uint64
}

func NewWaiter(backend bind.DeployBackend, committer Committer, interval time.Duration, attempts uint64) *Waiter {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if attempts == 0 {
		attempts = DefaultMaxAttempts
	}
	return &Waiter{
		backend:   backend,
		committer: committer,
		interval:  interval,
		attempts:  attempts,
	}
}

// WaitMined blocks until tx has a receipt. A receipt with a failed status is returned
// together with ErrTxFailed.
func (w *Waiter) WaitMined(ctx context.Context, tx *ethtypes.Transaction) (*ethtypes.Receipt, error) {
	if w.committer != nil {
		w.committer.Commit()
	}

	backoff := retry.NewConstant(w.interval)

	var receipt *ethtypes.Receipt
	err := retry.Do(ctx, retry.WithMaxRetries(w.attempts, backoff), func(ctx context.Context) error {
		r, err := w.backend.TransactionReceipt(ctx, tx.Hash())
		if errors.Is(err, ethereum.NotFound) {
			return retry.RetryableError(err)
		}
		if err != nil {
			return err
		}
		receipt = r
		return nil
	})
	if err != nil {
		return nil, errors.Join(errorsmod.Wrapf(tokentypes.ErrTxNotMined, "tx %s", tx.Hash().Hex()), err)
	}

	if receipt.Status != ethtypes.ReceiptStatusSuccessful {
		return receipt, errorsmod.Wrapf(tokentypes.ErrTxFailed, "tx %s in block %s", tx.Hash().Hex(), receipt.BlockNumber)
	}
	return receipt, nil
}

// WaitDeployed waits for a contract creation transaction and checks that code was
// left at the new address.
func (w *Waiter) WaitDeployed(ctx context.Context, tx *ethtypes.Transaction) (*ethtypes.Receipt, error) {
	if tx.To() != nil {
		return nil, errorsmod.Wrapf(tokentypes.ErrDeployFailed, "tx %s is not a contract creation", tx.Hash().Hex())
	}

	receipt, err := w.WaitMined(ctx, tx)
	if err != nil {
		return receipt, err
	}

	code, err := w.backend.CodeAt(ctx, receipt.ContractAddress, nil)
	if err != nil {
		return receipt, errors.Join(errorsmod.Wrapf(tokentypes.ErrDeployFailed, "read code at %s", receipt.ContractAddress.Hex()), err)
	}
	if len(code) == 0 {
		return receipt, errorsmod.Wrapf(tokentypes.ErrNoCode, "%s", receipt.ContractAddress.Hex())
	}
	return receipt, nil
}
