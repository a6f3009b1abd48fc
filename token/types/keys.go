package types

const (
	// ModuleName is the codespace of the errors registered by this repository.
	ModuleName = "mytoken"

	DefaultTokenName     = "AnmolToken"
	DefaultTokenSymbol   = "AnmolTK"
	DefaultInitialSupply = 10000

	// EnvOwnerAddress holds the address that owns the token and receives the initial supply.
	EnvOwnerAddress = "OWNER_ADDRESS"
	// EnvDeployerKey holds the hex private key that signs the deployment.
	EnvDeployerKey = "DEPLOYER_PRIVATE_KEY"
	// EnvRPCURL overrides the configured network endpoint.
	EnvRPCURL = "RPC_URL"
)
