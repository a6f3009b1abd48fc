// Package query reads token state from a deployed contract.
package query

import (
	"context"
	"fmt"
	"math/big"
	"slices"

	"cosmossdk.io/log"
	"github.com/creachadair/taskgroup"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	cmap "github.com/orcaman/concurrent-map/v2"
)

// DefaultConcurrency bounds the number of in-flight calls of a snapshot.
const DefaultConcurrency = 8

// Reader is the read side of the token binding.
type Reader interface {
	Address() common.Address
	Name(opts *bind.CallOpts) (string, error)
	Symbol(opts *bind.CallOpts) (string, error)
	Decimals(opts *bind.CallOpts) (uint8, error)
	TotalSupply(opts *bind.CallOpts) (*big.Int, error)
	Owner(opts *bind.CallOpts) (common.Address, error)
	BalanceOf(opts *bind.CallOpts, account common.Address) (*big.Int, error)
}

type Balance struct {
	Holder common.Address
	Amount *big.Int
}

// Snapshot is the token state observed at a single block.
type Snapshot struct {
	Address     common.Address
	BlockNumber *big.Int
	Name        string
	Symbol      string
	Decimals    uint8
	Owner       common.Address
	TotalSupply *big.Int
	Balances    []Balance
}

// Take reads the token metadata and the balances of holders concurrently. Balances are
// returned in the order holders were given, without duplicates. A nil block reads the
// latest state.
func Take(ctx context.Context, logger log.Logger, token Reader, block *big.Int, holders []common.Address) (*Snapshot, error) {
	opts := &bind.CallOpts{Context: ctx, BlockNumber: block}
	s := &Snapshot{Address: token.Address(), BlockNumber: block}

	g, start := taskgroup.New(nil).Limit(DefaultConcurrency)

	start(func() (err error) {
		s.Name, err = token.Name(opts)
		return wrap("name", err)
	})
	start(func() (err error) {
		s.Symbol, err = token.Symbol(opts)
		return wrap("symbol", err)
	})
	start(func() (err error) {
		s.Decimals, err = token.Decimals(opts)
		return wrap("decimals", err)
	})
	start(func() (err error) {
		s.Owner, err = token.Owner(opts)
		return wrap("owner", err)
	})
	start(func() (err error) {
		s.TotalSupply, err = token.TotalSupply(opts)
		return wrap("totalSupply", err)
	})

	unique := dedup(holders)
	balances := cmap.New[*big.Int]()
	for _, holder := range unique {
		start(func() error {
			amount, err := token.BalanceOf(opts, holder)
			if err != nil {
				return wrap("balanceOf "+holder.Hex(), err)
			}
			balances.Set(holder.Hex(), amount)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.Balances = make([]Balance, 0, len(unique))
	for _, holder := range unique {
		amount, _ := balances.Get(holder.Hex())
		s.Balances = append(s.Balances, Balance{Holder: holder, Amount: amount})
	}

	logger.Debug("token snapshot taken", "token", s.Address.Hex(), "holders", len(s.Balances))
	return s, nil
}

// HeldBy returns the sum of the snapshot balances.
func (s *Snapshot) HeldBy() *big.Int {
	sum := new(big.Int)
	for _, b := range s.Balances {
		sum.Add(sum, b.Amount)
	}
	return sum
}

func dedup(holders []common.Address) []common.Address {
	out := make([]common.Address, 0, len(holders))
	for _, h := range holders {
		if !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}

func wrap(call string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", call, err)
}
