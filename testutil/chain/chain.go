// Package chain provides a local simulated Ethereum chain with funded signers for tests.
package chain

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/ethereum/go-ethereum/params"
)

// TB is the subset of testing.TB the helpers need. GinkgoT() satisfies it as well.
type TB interface {
	Helper()
	Cleanup(func())
	Fatalf(format string, args ...any)
}

// DefaultBalance is the ether balance every signer starts with.
var DefaultBalance = new(big.Int).Mul(big.NewInt(10_000), big.NewInt(params.Ether))

// Signer is a funded account on the simulated chain.
type Signer struct {
	Key     *ecdsa.PrivateKey
	Address common.Address
}

// Chain wraps a simulated backend. Transactions stay pending until Commit is called.
type Chain struct {
	Backend *simulated.Backend
	Client  simulated.Client
	ChainID *big.Int
	Signers []Signer
}

// New starts a fresh simulated chain with the given number of funded signers.
// The chain is closed when the test finishes.
func New(t TB, accounts int) *Chain {
	t.Helper()

	signers := make([]Signer, accounts)
	alloc := ethtypes.GenesisAlloc{}
	for i := range signers {
		key, err := crypto.GenerateKey()
		if err != nil {
			t.Fatalf("generate key: %v", err)
		}
		signers[i] = Signer{Key: key, Address: crypto.PubkeyToAddress(key.PublicKey)}
		alloc[signers[i].Address] = ethtypes.Account{Balance: DefaultBalance}
	}

	backend := simulated.NewBackend(alloc)
	t.Cleanup(func() { _ = backend.Close() })

	client := backend.Client()
	chainID, err := client.ChainID(context.Background())
	if err != nil {
		t.Fatalf("chain id: %v", err)
	}

	return &Chain{
		Backend: backend,
		Client:  client,
		ChainID: chainID,
		Signers: signers,
	}
}

// Commit seals the pending block.
func (c *Chain) Commit() common.Hash {
	return c.Backend.Commit()
}

// Opts returns transaction options signed by the i-th signer.
func (c *Chain) Opts(t TB, i int) *bind.TransactOpts {
	t.Helper()

	opts, err := bind.NewKeyedTransactorWithChainID(c.Signers[i].Key, c.ChainID)
	if err != nil {
		t.Fatalf("transactor for signer %d: %v", i, err)
	}
	return opts
}

// Mine commits the pending block and returns the receipt of tx.
func (c *Chain) Mine(t TB, tx *ethtypes.Transaction) *ethtypes.Receipt {
	t.Helper()

	c.Backend.Commit()
	receipt, err := c.Client.TransactionReceipt(context.Background(), tx.Hash())
	if err != nil {
		t.Fatalf("receipt for %s: %v", tx.Hash().Hex(), err)
	}
	return receipt
}

// MustMine is Mine that also fails the test when tx reverted.
func (c *Chain) MustMine(t TB, tx *ethtypes.Transaction) *ethtypes.Receipt {
	t.Helper()

	receipt := c.Mine(t, tx)
	if receipt.Status != ethtypes.ReceiptStatusSuccessful {
		t.Fatalf("tx %s reverted", tx.Hash().Hex())
	}
	return receipt
}
