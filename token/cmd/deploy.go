package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/anmol/mytoken/token/config"
	"github.com/anmol/mytoken/token/deployer"
	tokentypes "github.com/anmol/mytoken/token/types"
)

const (
	flagNetwork = "network"
	flagSupply  = "supply"
	flagName    = "name"
	flagSymbol  = "symbol"
	flagDryRun  = "dry-run"
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy the token, minting the initial supply to OWNER_ADDRESS",
	Args:  cobra.NoArgs,
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

		params, err := deployParams(cmd, cfg, env)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if dryRun, _ := cmd.Flags().GetBool(flagDryRun); dryRun {
			fmt.Fprintf(out, "network:        %s (%s)\n", network.Name, network.Endpoint)
			fmt.Fprintf(out, "owner:          %s\n", params.Owner.Hex())
			fmt.Fprintf(out, "initial supply: %s\n", params.InitialSupply)
			fmt.Fprintf(out, "name:           %s\n", params.Name)
			fmt.Fprintf(out, "symbol:         %s\n", params.Symbol)
			return nil
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

		log.Info().Str("network", network.Name).Str("deployer", d.From().Hex()).Msg("deploying MyToken")

		deployment, err := d.Deploy(ctx, params)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "myToken deployed to %s with an initialSupply %s\n", deployment.Address.Hex(), deployment.TotalSupply)

		recordPath := cfg.Deploy.RecordPath(homeDir())
		if err := deployer.WriteRecord(recordPath, network.Name, deployment, time.Now()); err != nil {
			return fmt.Errorf("failed to write deployment record: %w", err)
		}
		log.Info().Str("path", recordPath).Str("network", network.Name).Msg("deployment recorded")
		return nil
	},
}

// deployParams builds the constructor arguments from config, env and flags, in
// increasing order of precedence.
func deployParams(cmd *cobra.Command, cfg *config.Config, env config.Env) (tokentypes.Params, error) {
	owner, err := tokentypes.ParseOwner(env.OwnerAddress)
	if err != nil {
		return tokentypes.Params{}, err
	}

	supply := cfg.Token.InitialSupply
	if cmd.Flags().Changed(flagSupply) {
		supply, _ = cmd.Flags().GetString(flagSupply)
	}
	amount, err := tokentypes.ParseAmount(supply)
	if err != nil {
		return tokentypes.Params{}, err
	}

	params := tokentypes.Params{
		Owner:         owner,
		InitialSupply: amount,
		Name:          cfg.Token.Name,
		Symbol:        cfg.Token.Symbol,
	}
	if cmd.Flags().Changed(flagName) {
		params.Name, _ = cmd.Flags().GetString(flagName)
	}
	if cmd.Flags().Changed(flagSymbol) {
		params.Symbol, _ = cmd.Flags().GetString(flagSymbol)
	}
	params.Name = strings.TrimSpace(params.Name)
	params.Symbol = strings.TrimSpace(params.Symbol)

	return params, params.Validate()
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func init() {
	deployCmd.Flags().String(flagNetwork, "", "network to deploy to (defaults to network.name of the config)")
	deployCmd.Flags().String(flagSupply, "", "initial supply in base units, overrides token.initial_supply")
	deployCmd.Flags().String(flagName, "", "token name, overrides token.name")
	deployCmd.Flags().String(flagSymbol, "", "token symbol, overrides token.symbol")
	deployCmd.Flags().Bool(flagDryRun, false, "validate and print the deployment parameters without sending anything")
	rootCmd.AddCommand(deployCmd)
}
