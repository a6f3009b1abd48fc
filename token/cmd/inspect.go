package cmd

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/anmol/mytoken/contracts/mytoken"
	"github.com/anmol/mytoken/token/config"
	"github.com/anmol/mytoken/token/deployer"
	"github.com/anmol/mytoken/token/query"
	tokentypes "github.com/anmol/mytoken/token/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [token-address] [holders...]",
	Short: "Print the token metadata and holder balances",
	Long: "Print the token metadata and the balances of the given holders. Without a token address " +
		"the address recorded by the last deploy to the network is used. The owner is always listed.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, env, err := loadConfig()
		if err != nil {
			return err
		}

		networkName, _ := cmd.Flags().GetString(flagNetwork)
		network, err := config.ResolveNetwork(cfg, networkName, env)
		if err != nil {
			return err
		}

		tokenAddr, holders, err := inspectTargets(cfg, network, args)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmdContext(cmd), cfg.Deploy.Timeout())
		defer cancel()

		conn, err := dialChain(ctx, network.Endpoint)
		if err != nil {
			return err
		}
		defer conn.Close()

		token := mytoken.NewMyToken(tokenAddr, conn)
		owner, err := token.Owner(&bind.CallOpts{Context: ctx})
		if err != nil {
			return fmt.Errorf("read owner of %s: %w", tokenAddr.Hex(), err)
		}
		if owner != (common.Address{}) {
			holders = append([]common.Address{owner}, holders...)
		}

		snapshot, err := query.Take(ctx, componentLogger(cmd.ErrOrStderr()), token, nil, holders)
		if err != nil {
			return err
		}
		log.Debug().Str("token", tokenAddr.Hex()).Int("holders", len(snapshot.Balances)).Msg("inspected token")

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "token:        %s\n", snapshot.Address.Hex())
		fmt.Fprintf(out, "name:         %s\n", snapshot.Name)
		fmt.Fprintf(out, "symbol:       %s\n", snapshot.Symbol)
		fmt.Fprintf(out, "decimals:     %d\n", snapshot.Decimals)
		fmt.Fprintf(out, "owner:        %s\n", snapshot.Owner.Hex())
		fmt.Fprintf(out, "total supply: %s (%s %s)\n", snapshot.TotalSupply,
			tokentypes.FormatUnits(snapshot.TotalSupply, snapshot.Decimals), snapshot.Symbol)
		for _, b := range snapshot.Balances {
			fmt.Fprintf(out, "balance %s: %s\n", b.Holder.Hex(), b.Amount)
		}
		return nil
	},
}

func inspectTargets(cfg *config.Config, network config.Network, args []string) (common.Address, []common.Address, error) {
	if len(args) == 0 {
		record, err := deployer.ReadRecord(cfg.Deploy.RecordPath(homeDir()), network.Name)
		if err != nil {
			return common.Address{}, nil, err
		}
		return record.Address, nil, nil
	}

	addrs := make([]common.Address, len(args))
	for i, arg := range args {
		if !common.IsHexAddress(arg) {
			return common.Address{}, nil, fmt.Errorf("%q is not a hex address", arg)
		}
		addrs[i] = common.HexToAddress(arg)
	}
	return addrs[0], addrs[1:], nil
}

func init() {
	inspectCmd.Flags().String(flagNetwork, "", "network to query (defaults to network.name of the config)")
	rootCmd.AddCommand(inspectCmd)
}
