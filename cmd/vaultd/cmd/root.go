package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paw-chain/vault-network/x/asset/client/cli"
)

// NewRootCmd creates a new root command for vaultd. It is called once in the
// main function.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "vaultd",
		Short: "Vault network asset tooling",
		Long: `vaultd encodes, inspects and validates the assets handled by vault network
pools: native bank denoms and CW20 tokens.

Settings are read from flags, VAULTD_* environment variables and an optional
TOML config file, in that order of precedence.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// set the default command outputs
			cmd.SetOut(cmd.OutOrStdout())
			cmd.SetErr(cmd.ErrOrStderr())

			return loadConfig(v, cmd)
		},
	}

	rootCmd.PersistentFlags().String(FlagConfig, "", "Path to a TOML config file (default <home>/config/vaultd.toml)")

	rootCmd.AddCommand(
		cli.GetAssetCmd(),
	)

	return rootCmd
}
