package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/anmol/mytoken/contracts/mytoken"
	tokentypes "github.com/anmol/mytoken/token/types"
)

// TokenFixture is a freshly deployed token on its own chain.
type TokenFixture struct {
	*Chain

	Token         *mytoken.MyToken
	Address       common.Address
	Receipt       *ethtypes.Receipt
	Owner         Signer
	OtherAccount  Signer
	OtherAccount2 Signer
}

// DeployMyTokenFixture deploys the token from the first of three signers with the
// default constructor arguments. Every call starts from a new chain, so state never
// leaks between test cases.
func DeployMyTokenFixture(t TB) *TokenFixture {
	t.Helper()

	c := New(t, 3)
	owner := c.Signers[0]

	address, tx, token, err := mytoken.DeployMyToken(
		c.Opts(t, 0),
		c.Client,
		owner.Address,
		big.NewInt(tokentypes.DefaultInitialSupply),
		tokentypes.DefaultTokenName,
		tokentypes.DefaultTokenSymbol,
	)
	if err != nil {
		t.Fatalf("deploy token: %v", err)
	}

	return &TokenFixture{
		Chain:         c,
		Token:         token,
		Address:       address,
		Receipt:       c.MustMine(t, tx),
		Owner:         owner,
		OtherAccount:  c.Signers[1],
		OtherAccount2: c.Signers[2],
	}
}
