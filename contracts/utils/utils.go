package utils

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/tidwall/gjson"
)

// CompiledContract holds the ABI together with the creation and runtime bytecode of a contract.
type CompiledContract struct {
	Name        string
	ABI         abi.ABI
	Bin         []byte
	DeployedBin []byte
}

// ConvertHardhatBytesToCompiledContract parses the JSON artifact Hardhat writes under
// artifacts/contracts/<source>/<Contract>.json.
func ConvertHardhatBytesToCompiledContract(bz []byte) (CompiledContract, error) {
	if !gjson.ValidBytes(bz) {
		return CompiledContract{}, errors.New("invalid hardhat artifact: malformed json")
	}

	abiField := gjson.GetBytes(bz, "abi")
	if !abiField.IsArray() {
		return CompiledContract{}, errors.New("invalid hardhat artifact: abi must be an array")
	}
	parsed, err := abi.JSON(strings.NewReader(abiField.Raw))
	if err != nil {
		return CompiledContract{}, fmt.Errorf("parse abi: %w", err)
	}

	bin, err := decodeBytecode(gjson.GetBytes(bz, "bytecode"))
	if err != nil {
		return CompiledContract{}, fmt.Errorf("decode bytecode: %w", err)
	}
	if len(bin) == 0 {
		return CompiledContract{}, errors.New("invalid hardhat artifact: empty bytecode")
	}

	var deployed []byte
	if field := gjson.GetBytes(bz, "deployedBytecode"); field.Exists() {
		if deployed, err = decodeBytecode(field); err != nil {
			return CompiledContract{}, fmt.Errorf("decode deployed bytecode: %w", err)
		}
	}

	return CompiledContract{
		Name:        gjson.GetBytes(bz, "contractName").String(),
		ABI:         parsed,
		Bin:         bin,
		DeployedBin: deployed,
	}, nil
}

// LoadContractFromJSONFile reads a Hardhat artifact from disk.
func LoadContractFromJSONFile(path string) (CompiledContract, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return CompiledContract{}, fmt.Errorf("read artifact: %w", err)
	}
	return ConvertHardhatBytesToCompiledContract(bz)
}

func decodeBytecode(field gjson.Result) ([]byte, error) {
	if field.Type != gjson.String {
		return nil, errors.New("bytecode must be a hex string")
	}
	s := field.String()
	if !strings.HasPrefix(s, "0x") {
		s = "0x" + s
	}
	return hexutil.Decode(s)
}
