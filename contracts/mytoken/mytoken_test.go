package mytoken_test

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/anmol/mytoken/contracts/mytoken"
	"github.com/anmol/mytoken/testutil/chain"
	tokentypes "github.com/anmol/mytoken/token/types"
)

var _ = ginkgo.Describe("MyToken", func() {
	var f *chain.TokenFixture

	balanceOf := func(addr common.Address) *big.Int {
		b, err := f.Token.BalanceOf(nil, addr)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		return b
	}

	transfer := func(from chain.Signer, to common.Address, amount int64) *ethtypes.Receipt {
		for i, s := range f.Signers {
			if s.Address == from.Address {
				tx, err := f.Token.Transfer(f.Opts(ginkgo.GinkgoT(), i), to, big.NewInt(amount))
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				return f.MustMine(ginkgo.GinkgoT(), tx)
			}
		}
		ginkgo.Fail("unknown signer " + from.Address.Hex())
		return nil
	}

	singleTransfer := func(receipt *ethtypes.Receipt) *mytoken.MyTokenTransfer {
		events, err := f.Token.TransferEvents(receipt)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(events).To(gomega.HaveLen(1))
		return events[0]
	}

	ginkgo.BeforeEach(func() {
		f = chain.DeployMyTokenFixture(ginkgo.GinkgoT())
	})

	ginkgo.Describe("Deployment", func() {
		ginkgo.It("should set the right owner", func() {
			owner, err := f.Token.Owner(nil)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(owner).To(gomega.Equal(f.Owner.Address))
		})

		ginkgo.It("should assign the total supply of tokens to the owner", func() {
			total, err := f.Token.TotalSupply(nil)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(total.Int64()).To(gomega.Equal(int64(tokentypes.DefaultInitialSupply)))
			gomega.Expect(balanceOf(f.Owner.Address)).To(gomega.Equal(total))
		})

		ginkgo.It("should expose the token metadata", func() {
			name, err := f.Token.Name(nil)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(name).To(gomega.Equal(tokentypes.DefaultTokenName))

			symbol, err := f.Token.Symbol(nil)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(symbol).To(gomega.Equal(tokentypes.DefaultTokenSymbol))

			decimals, err := f.Token.Decimals(nil)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(decimals).To(gomega.Equal(uint8(18)))
		})

		ginkgo.It("should emit the ownership and mint events", func() {
			gomega.Expect(f.Receipt.ContractAddress).To(gomega.Equal(f.Address))
			gomega.Expect(f.Token.Address()).To(gomega.Equal(f.Address))

			ownership, err := f.Token.OwnershipTransferredEvents(f.Receipt)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(ownership).To(gomega.HaveLen(1))
			gomega.Expect(ownership[0].PreviousOwner).To(gomega.Equal(common.Address{}))
			gomega.Expect(ownership[0].NewOwner).To(gomega.Equal(f.Owner.Address))

			mint := singleTransfer(f.Receipt)
			gomega.Expect(mint.From).To(gomega.Equal(common.Address{}))
			gomega.Expect(mint.To).To(gomega.Equal(f.Owner.Address))
			gomega.Expect(mint.Value.Int64()).To(gomega.Equal(int64(tokentypes.DefaultInitialSupply)))
		})

		ginkgo.It("should deploy with an initial supply of zero", func() {
			address, tx, token, err := mytoken.DeployMyToken(
				f.Opts(ginkgo.GinkgoT(), 1), f.Client, f.OtherAccount.Address, big.NewInt(0), "Zero", "ZRO",
			)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			receipt := f.MustMine(ginkgo.GinkgoT(), tx)
			gomega.Expect(receipt.ContractAddress).To(gomega.Equal(address))

			total, err := token.TotalSupply(nil)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(total.Sign()).To(gomega.Equal(0))
		})
	})

	ginkgo.Describe("Transactions", func() {
		ginkgo.It("should transfer tokens between accounts", func() {
			ownerBefore := balanceOf(f.Owner.Address)
			otherBefore := balanceOf(f.OtherAccount.Address)

			transfer(f.Owner, f.OtherAccount.Address, 50)

			gomega.Expect(new(big.Int).Sub(ownerBefore, balanceOf(f.Owner.Address)).Int64()).To(gomega.Equal(int64(50)))
			gomega.Expect(new(big.Int).Sub(balanceOf(f.OtherAccount.Address), otherBefore).Int64()).To(gomega.Equal(int64(50)))

			transfer(f.OtherAccount, f.OtherAccount2.Address, 50)

			gomega.Expect(balanceOf(f.OtherAccount.Address).Sign()).To(gomega.Equal(0))
			gomega.Expect(balanceOf(f.OtherAccount2.Address).Int64()).To(gomega.Equal(int64(50)))
		})

		ginkgo.It("should emit Transfer events", func() {
			first := singleTransfer(transfer(f.Owner, f.OtherAccount.Address, 50))
			gomega.Expect(first.From).To(gomega.Equal(f.Owner.Address))
			gomega.Expect(first.To).To(gomega.Equal(f.OtherAccount.Address))
			gomega.Expect(first.Value.Int64()).To(gomega.Equal(int64(50)))

			second := singleTransfer(transfer(f.OtherAccount, f.OtherAccount2.Address, 50))
			gomega.Expect(second.From).To(gomega.Equal(f.OtherAccount.Address))
			gomega.Expect(second.To).To(gomega.Equal(f.OtherAccount2.Address))
			gomega.Expect(second.Value.Int64()).To(gomega.Equal(int64(50)))
		})

		ginkgo.It("should allow transfers of zero and to self", func() {
			zero := singleTransfer(transfer(f.OtherAccount, f.OtherAccount2.Address, 0))
			gomega.Expect(zero.Value.Sign()).To(gomega.Equal(0))

			transfer(f.Owner, f.Owner.Address, 10)
			gomega.Expect(balanceOf(f.Owner.Address).Int64()).To(gomega.Equal(int64(tokentypes.DefaultInitialSupply)))
		})

		ginkgo.It("should fail if the sender does not have enough tokens", func() {
			ownerBefore := balanceOf(f.Owner.Address)

			_, err := f.Token.Transfer(f.Opts(ginkgo.GinkgoT(), 1), f.Owner.Address, big.NewInt(1))
			gomega.Expect(err).To(gomega.HaveOccurred())

			rev, ok := mytoken.UnpackRevert(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(rev.Name).To(gomega.Equal(mytoken.ErrNameInsufficientBalance))
			gomega.Expect(rev.Args).To(gomega.HaveLen(3))
			gomega.Expect(rev.Args[0]).To(gomega.Equal(f.OtherAccount.Address))
			gomega.Expect(rev.Args[1].(*big.Int).Sign()).To(gomega.Equal(0))
			gomega.Expect(rev.Args[2].(*big.Int).Int64()).To(gomega.Equal(int64(1)))

			gomega.Expect(balanceOf(f.Owner.Address)).To(gomega.Equal(ownerBefore))
		})

		ginkgo.It("should reject the zero address as receiver", func() {
			_, err := f.Token.Transfer(f.Opts(ginkgo.GinkgoT(), 0), common.Address{}, big.NewInt(1))
			gomega.Expect(mytoken.IsRevert(err, mytoken.ErrNameInvalidReceiver)).To(gomega.BeTrue())
		})
	})

	ginkgo.Describe("Allowances", func() {
		ginkgo.It("should let an approved spender transfer", func() {
			tx, err := f.Token.Approve(f.Opts(ginkgo.GinkgoT(), 0), f.OtherAccount.Address, big.NewInt(100))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			approvals, err := f.Token.ApprovalEvents(f.MustMine(ginkgo.GinkgoT(), tx))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(approvals).To(gomega.HaveLen(1))
			gomega.Expect(approvals[0].Owner).To(gomega.Equal(f.Owner.Address))
			gomega.Expect(approvals[0].Spender).To(gomega.Equal(f.OtherAccount.Address))
			gomega.Expect(approvals[0].Value.Int64()).To(gomega.Equal(int64(100)))

			tx, err = f.Token.TransferFrom(f.Opts(ginkgo.GinkgoT(), 1), f.Owner.Address, f.OtherAccount2.Address, big.NewInt(60))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			moved := singleTransfer(f.MustMine(ginkgo.GinkgoT(), tx))
			gomega.Expect(moved.From).To(gomega.Equal(f.Owner.Address))
			gomega.Expect(moved.To).To(gomega.Equal(f.OtherAccount2.Address))

			allowance, err := f.Token.Allowance(nil, f.Owner.Address, f.OtherAccount.Address)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(allowance.Int64()).To(gomega.Equal(int64(40)))
			gomega.Expect(balanceOf(f.OtherAccount2.Address).Int64()).To(gomega.Equal(int64(60)))

			_, err = f.Token.TransferFrom(f.Opts(ginkgo.GinkgoT(), 1), f.Owner.Address, f.OtherAccount2.Address, big.NewInt(41))
			gomega.Expect(mytoken.IsRevert(err, mytoken.ErrNameInsufficientAllowance)).To(gomega.BeTrue())
		})

		ginkgo.It("should not decrease an infinite allowance", func() {
			tx, err := f.Token.Approve(f.Opts(ginkgo.GinkgoT(), 0), f.OtherAccount.Address, math.MaxBig256)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			f.MustMine(ginkgo.GinkgoT(), tx)

			tx, err = f.Token.TransferFrom(f.Opts(ginkgo.GinkgoT(), 1), f.Owner.Address, f.OtherAccount.Address, big.NewInt(10))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			f.MustMine(ginkgo.GinkgoT(), tx)

			allowance, err := f.Token.Allowance(nil, f.Owner.Address, f.OtherAccount.Address)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(allowance.Cmp(math.MaxBig256)).To(gomega.Equal(0))
		})

		ginkgo.It("should reject the zero address as spender", func() {
			_, err := f.Token.Approve(f.Opts(ginkgo.GinkgoT(), 0), common.Address{}, big.NewInt(1))
			gomega.Expect(mytoken.IsRevert(err, mytoken.ErrNameInvalidSpender)).To(gomega.BeTrue())
		})
	})

	ginkgo.Describe("Ownership", func() {
		ginkgo.It("should let only the owner mint", func() {
			tx, err := f.Token.Mint(f.Opts(ginkgo.GinkgoT(), 0), f.OtherAccount.Address, big.NewInt(5))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			minted := singleTransfer(f.MustMine(ginkgo.GinkgoT(), tx))
			gomega.Expect(minted.From).To(gomega.Equal(common.Address{}))

			total, err := f.Token.TotalSupply(nil)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(total.Int64()).To(gomega.Equal(int64(tokentypes.DefaultInitialSupply + 5)))
			gomega.Expect(balanceOf(f.OtherAccount.Address).Int64()).To(gomega.Equal(int64(5)))

			_, err = f.Token.Mint(f.Opts(ginkgo.GinkgoT(), 1), f.OtherAccount.Address, big.NewInt(5))
			rev, ok := mytoken.UnpackRevert(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(rev.Name).To(gomega.Equal(mytoken.ErrNameUnauthorizedAccount))
			gomega.Expect(rev.Args).To(gomega.Equal([]any{f.OtherAccount.Address}))
		})

		ginkgo.It("should transfer and renounce ownership", func() {
			tx, err := f.Token.TransferOwnership(f.Opts(ginkgo.GinkgoT(), 0), f.OtherAccount.Address)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			events, err := f.Token.OwnershipTransferredEvents(f.MustMine(ginkgo.GinkgoT(), tx))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(events).To(gomega.HaveLen(1))
			gomega.Expect(events[0].PreviousOwner).To(gomega.Equal(f.Owner.Address))
			gomega.Expect(events[0].NewOwner).To(gomega.Equal(f.OtherAccount.Address))

			_, err = f.Token.RenounceOwnership(f.Opts(ginkgo.GinkgoT(), 0))
			gomega.Expect(mytoken.IsRevert(err, mytoken.ErrNameUnauthorizedAccount)).To(gomega.BeTrue())

			tx, err = f.Token.RenounceOwnership(f.Opts(ginkgo.GinkgoT(), 1))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			f.MustMine(ginkgo.GinkgoT(), tx)

			owner, err := f.Token.Owner(nil)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(owner).To(gomega.Equal(common.Address{}))
		})

		ginkgo.It("should reject the zero address as new owner", func() {
			_, err := f.Token.TransferOwnership(f.Opts(ginkgo.GinkgoT(), 0), common.Address{})
			gomega.Expect(mytoken.IsRevert(err, mytoken.ErrNameInvalidOwner)).To(gomega.BeTrue())
		})
	})

	ginkgo.Describe("Event filtering", func() {
		ginkgo.It("should return past Transfer events", func() {
			transfer(f.Owner, f.OtherAccount.Address, 50)
			transfer(f.OtherAccount, f.OtherAccount2.Address, 20)

			opts := &bind.FilterOpts{Start: 0, Context: context.Background()}
			all, err := f.Token.FilterTransfer(opts, nil, nil)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(all).To(gomega.HaveLen(3))

			fromOther, err := f.Token.FilterTransfer(opts, []common.Address{f.OtherAccount.Address}, nil)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(fromOther).To(gomega.HaveLen(1))
			gomega.Expect(fromOther[0].To).To(gomega.Equal(f.OtherAccount2.Address))
			gomega.Expect(fromOther[0].Value.Int64()).To(gomega.Equal(int64(20)))
		})
	})
})
