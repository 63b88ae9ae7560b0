package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"github.com/paw-chain/vault-network/x/asset/types"
)

// GetAssetCmd returns the offline asset commands. None of them need a node.
func GetAssetCmd() *cobra.Command {
	assetCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Asset encoding and validation utilities",
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	assetCmd.PersistentFlags().String(FlagBech32Prefix, sdk.GetConfig().GetBech32AccountAddrPrefix(), "Bech32 prefix of account addresses")
	assetCmd.PersistentFlags().StringP(flags.FlagOutput, "o", flags.OutputFormatText, "Output format (text|json)")

	assetCmd.AddCommand(
		GetCmdLabel(),
		GetCmdID(),
		GetCmdCanonicalize(),
		GetCmdHumanize(),
		GetCmdTransferMsg(),
		GetCmdCheckFunds(),
	)

	return assetCmd
}

// GetCmdLabel returns the command printing the display label of a native denom
func GetCmdLabel() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label [denom]",
		Short: "Print the display label of a native denom",
		Long: `Print the display label of a native denom. IBC denoms are shortened to
their first and last four hash characters, other denoms are printed as is.

Example:
  $ vaultd asset label ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, clientCtx, err := commandContext(cmd)
			if err != nil {
				return err
			}

			label, err := types.NewNativeAssetInfo(args[0]).GetLabel(cmd.Context(), nil, codec)
			if err != nil {
				return err
			}
			return clientCtx.PrintString(label + "\n")
		},
	}
	return cmd
}

// GetCmdID returns the command printing the identifier of an asset
func GetCmdID() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "id [asset-json]",
		Short: "Print the denom or contract address identifying an asset",
		Example: `  $ vaultd asset id '{"info":{"native_token":{"denom":"uusd"}},"amount":"100"}'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, clientCtx, err := commandContext(cmd)
			if err != nil {
				return err
			}

			asset, err := parseAsset(args[0])
			if err != nil {
				return err
			}
			return clientCtx.PrintString(asset.GetID() + "\n")
		},
	}
	return cmd
}

// GetCmdCanonicalize returns the command printing the canonical bytes of an address
func GetCmdCanonicalize() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "canonicalize [address]",
		Short: "Print the canonical form of an address as upper case hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, clientCtx, err := commandContext(cmd)
			if err != nil {
				return err
			}

			canonical, err := codec.Canonicalize(args[0])
			if err != nil {
				return err
			}
			return clientCtx.PrintString(canonical.String() + "\n")
		},
	}
	return cmd
}

// GetCmdHumanize returns the command converting canonical hex back to an address
func GetCmdHumanize() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "humanize [hex]",
		Short: "Print the address of a canonical hex encoded address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, clientCtx, err := commandContext(cmd)
			if err != nil {
				return err
			}

			bz, err := hex.DecodeString(args[0])
			if err != nil {
				return types.ErrInvalidAddress.Wrapf("invalid hex: %s", err)
			}
			human, err := codec.Humanize(types.CanonicalAddr(bz))
			if err != nil {
				return err
			}
			return clientCtx.PrintString(human + "\n")
		},
	}
	return cmd
}

// GetCmdTransferMsg returns the command building the message that transfers an asset
func GetCmdTransferMsg() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer-msg [recipient] [asset-json]",
		Short: "Build the message transferring an asset to recipient",
		Long: `Build the message transferring an asset to recipient. Native assets become
a bank send, CW20 tokens a contract execution of the token's transfer.

Example:
  $ vaultd asset transfer-msg cosmos1... '{"info":{"token":{"contract_addr":"cosmos1..."}},"amount":"100"}' --submsg`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, clientCtx, err := commandContext(cmd)
			if err != nil {
				return err
			}

			recipient, err := codec.Validate(args[0])
			if err != nil {
				return err
			}

			asset, err := parseAsset(args[1])
			if err != nil {
				return err
			}

			wrap, err := cmd.Flags().GetBool(FlagSubMsg)
			if err != nil {
				return err
			}

			var out any
			if wrap {
				out, err = asset.IntoSubMsg(recipient)
			} else {
				out, err = asset.IntoMsg(recipient)
			}
			if err != nil {
				return err
			}

			bz, err := json.Marshal(out)
			if err != nil {
				return err
			}
			return clientCtx.PrintRaw(bz)
		},
	}

	cmd.Flags().Bool(FlagSubMsg, false, "Wrap the message in a sub message that never replies")
	return cmd
}

// GetCmdCheckFunds returns the command checking that funds carry a native asset
func GetCmdCheckFunds() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-funds [asset-json] [coins]",
		Short: "Check that the coins sent with a call match a native asset amount",
		Example: `  $ vaultd asset check-funds '{"info":{"native_token":{"denom":"uusd"}},"amount":"100"}' 100uusd,5uluna`,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, clientCtx, err := commandContext(cmd)
			if err != nil {
				return err
			}

			asset, err := parseAsset(args[0])
			if err != nil {
				return err
			}

			var funds sdk.Coins
			if len(args) == 2 && strings.TrimSpace(args[1]) != "" {
				funds, err = sdk.ParseCoinsNormalized(args[1])
				if err != nil {
					return err
				}
			}

			if err := asset.AssertSentNativeTokenBalance(funds); err != nil {
				return err
			}
			return clientCtx.PrintString(fmt.Sprintf("ok: %s\n", asset))
		},
	}
	return cmd
}

func commandContext(cmd *cobra.Command) (types.Bech32AddressCodec, client.Context, error) {
	prefix, err := cmd.Flags().GetString(FlagBech32Prefix)
	if err != nil {
		return types.Bech32AddressCodec{}, client.Context{}, err
	}
	output, err := cmd.Flags().GetString(flags.FlagOutput)
	if err != nil {
		return types.Bech32AddressCodec{}, client.Context{}, err
	}

	clientCtx := client.Context{}.
		WithOutput(cmd.OutOrStdout()).
		WithOutputFormat(output)
	return types.NewBech32AddressCodec(prefix), clientCtx, nil
}

func parseAsset(arg string) (types.Asset, error) {
	var asset types.Asset
	if err := json.Unmarshal([]byte(arg), &asset); err != nil {
		return types.Asset{}, types.ErrInvalidAssetInfo.Wrapf("invalid asset json: %s", err)
	}
	if err := asset.Validate(); err != nil {
		return types.Asset{}, err
	}
	return asset, nil
}
