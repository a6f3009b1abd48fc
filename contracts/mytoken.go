package contracts

import (
	_ "embed"

	contractutils "github.com/anmol/mytoken/contracts/utils"
)

var (
	// MyTokenJSON are the compiled bytes of the MyTokenContract
	//
	//go:embed solidity/MyToken.json
	MyTokenJSON []byte

	// MyTokenContract is the compiled ERC-20 token contract
	MyTokenContract contractutils.CompiledContract
)

func init() {
	var err error
	if MyTokenContract, err = contractutils.ConvertHardhatBytesToCompiledContract(
		MyTokenJSON,
	); err != nil {
		panic(err)
	}
}
