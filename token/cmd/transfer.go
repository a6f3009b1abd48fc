package cmd

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/anmol/mytoken/token/config"
	"github.com/anmol/mytoken/token/deployer"
	tokentypes "github.com/anmol/mytoken/token/types"
)

var transferCmd = &cobra.Command{
	Use:   "transfer <token-address> <to> <amount>",
	Short: "Transfer tokens from the DEPLOYER_PRIVATE_KEY account",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args[:2] {
			if !common.IsHexAddress(arg) {
				return fmt.Errorf("%q is not a hex address", arg)
			}
		}
		tokenAddr, to := common.HexToAddress(args[0]), common.HexToAddress(args[1])

		amount, err := tokentypes.ParseAmount(args[2])
		if err != nil {
			return err
		}

		cfg, env, err := loadConfig()
		if err != nil {
			return err
		}

		networkName, _ := cmd.Flags().GetString(flagNetwork)
		network, err := config.ResolveNetwork(cfg, networkName, env)
		if err != nil {
			return err
		}

		key, err := deployer.ParsePrivateKey(env.DeployerKey)
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

		d := deployer.New(componentLogger(cmd.ErrOrStderr()), conn, key, conn.deployerOptions(cfg)...)
		if err := d.VerifyChainID(ctx, network.ChainID); err != nil {
			return err
		}

		event, err := d.Transfer(ctx, tokenAddr, to, amount)
		if err != nil {
			return err
		}

		log.Info().Str("tx_hash", event.Raw.TxHash.Hex()).Uint64("block", event.Raw.BlockNumber).Msg("transfer mined")
		fmt.Fprintf(cmd.OutOrStdout(), "Transfer(from: %s, to: %s, value: %s)\n", event.From.Hex(), event.To.Hex(), event.Value)
		return nil
	},
}

func init() {
	transferCmd.Flags().String(flagNetwork, "", "network to send to (defaults to network.name of the config)")
	rootCmd.AddCommand(transferCmd)
}
