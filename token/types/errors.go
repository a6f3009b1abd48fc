package types

import (
	errorsmod "cosmossdk.io/errors"
)

// errors
var (
	ErrInvalidOwner    = errorsmod.Register(ModuleName, 2, "invalid owner address")
	ErrInvalidSupply   = errorsmod.Register(ModuleName, 3, "invalid initial supply")
	ErrInvalidMetadata = errorsmod.Register(ModuleName, 4, "invalid token metadata")
	ErrInvalidKey      = errorsmod.Register(ModuleName, 5, "invalid deployer private key")
	ErrDeployFailed    = errorsmod.Register(ModuleName, 6, "contract deployment failed")
	ErrTxNotMined      = errorsmod.Register(ModuleName, 7, "transaction not mined")
	ErrTxFailed        = errorsmod.Register(ModuleName, 8, "transaction execution failed")
	ErrNoCode          = errorsmod.Register(ModuleName, 9, "no contract code at address")
	ErrChainIDMismatch = errorsmod.Register(ModuleName, 10, "chain id mismatch")
	ErrInvalidAmount   = errorsmod.Register(ModuleName, 11, "invalid token amount")
	ErrUnknownNetwork  = errorsmod.Register(ModuleName, 12, "unknown network")
	ErrRecordNotFound  = errorsmod.Register(ModuleName, 13, "deployment record not found")
)
