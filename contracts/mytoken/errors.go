package mytoken

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/anmol/mytoken/contracts"
)

// Custom errors declared by the contract.
const (
	ErrNameInsufficientBalance   = "ERC20InsufficientBalance"
	ErrNameInsufficientAllowance = "ERC20InsufficientAllowance"
	ErrNameInvalidSender         = "ERC20InvalidSender"
	ErrNameInvalidReceiver       = "ERC20InvalidReceiver"
	ErrNameInvalidSpender        = "ERC20InvalidSpender"
	ErrNameUnauthorizedAccount   = "OwnableUnauthorizedAccount"
	ErrNameInvalidOwner          = "OwnableInvalidOwner"

	// ErrNameRevertReason covers the builtin Error(string) and Panic(uint256) payloads.
	ErrNameRevertReason = "Revert"
)

// RevertError is a decoded contract revert.
type RevertError struct {
	Name string
	Args []any
	Data []byte
}

func (e *RevertError) Error() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = fmt.Sprint(a)
	}
	return fmt.Sprintf("execution reverted: %s(%s)", e.Name, strings.Join(args, ", "))
}

// UnpackRevert extracts and decodes the revert payload carried by an RPC error,
// as returned by eth_call and eth_estimateGas.
func UnpackRevert(err error) (*RevertError, bool) {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return nil, false
	}

	var data []byte
	switch v := dataErr.ErrorData().(type) {
	case string:
		bz, err := hexutil.Decode(v)
		if err != nil {
			return nil, false
		}
		data = bz
	case []byte:
		data = v
	case hexutil.Bytes:
		data = v
	default:
		return nil, false
	}
	return DecodeRevert(data)
}

// DecodeRevert decodes raw revert data against the contract's error table.
func DecodeRevert(data []byte) (*RevertError, bool) {
	if len(data) < 4 {
		return nil, false
	}

	for name, abiErr := range contracts.MyTokenContract.ABI.Errors {
		if !bytes.Equal(abiErr.ID[:4], data[:4]) {
			continue
		}
		unpacked, err := abiErr.Unpack(data)
		if err != nil {
			return nil, false
		}
		args, _ := unpacked.([]any)
		return &RevertError{Name: name, Args: args, Data: data}, true
	}

	reason, err := abi.UnpackRevert(data)
	if err != nil {
		return nil, false
	}
	return &RevertError{Name: ErrNameRevertReason, Args: []any{reason}, Data: data}, true
}

// IsRevert reports whether err carries a revert with the given custom error name.
func IsRevert(err error, name string) bool {
	rev, ok := UnpackRevert(err)
	return ok && rev.Name == name
}
