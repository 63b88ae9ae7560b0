package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/cosmos/cosmos-sdk/types/bech32"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/vault-network/x/asset/types"
)

func runAssetCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := GetAssetCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(append(args, "--"+FlagBech32Prefix, "cosmos"))

	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func testAddr(t *testing.T, seed string) string {
	t.Helper()

	bz := make([]byte, 20)
	copy(bz, seed)
	addr, err := bech32.ConvertAndEncode("cosmos", bz)
	require.NoError(t, err)
	return addr
}

// TestFlagConstants verifies all flag constants are properly defined
func TestFlagConstants(t *testing.T) {
	t.Parallel()

	require.Equal(t, "bech32-prefix", FlagBech32Prefix)
	require.Equal(t, "submsg", FlagSubMsg)
}

// TestGetAssetCmdStructure verifies the command tree structure
func TestGetAssetCmdStructure(t *testing.T) {
	t.Parallel()

	assetCmd := GetAssetCmd()
	require.Equal(t, types.ModuleName, assetCmd.Use)

	names := map[string]bool{}
	for _, sub := range assetCmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"label", "id", "canonicalize", "humanize", "transfer-msg", "check-funds"} {
		require.True(t, names[expected], "missing subcommand %s", expected)
	}
}

func TestLabelCmd(t *testing.T) {
	hash := "27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2"

	out, err := runAssetCmd(t, "label", "ibc/"+hash)
	require.NoError(t, err)
	require.Equal(t, "ibc/2739...5EB2", out)

	out, err = runAssetCmd(t, "label", "uusd")
	require.NoError(t, err)
	require.Equal(t, "uusd", out)
}

func TestIDCmd(t *testing.T) {
	out, err := runAssetCmd(t, "id", `{"info":{"native_token":{"denom":"uusd"}},"amount":"100"}`)
	require.NoError(t, err)
	require.Equal(t, "uusd", out)

	_, err = runAssetCmd(t, "id", `{"info":{},"amount":"100"}`)
	require.ErrorIs(t, err, types.ErrInvalidAssetInfo)

	_, err = runAssetCmd(t, "id", `not json`)
	require.ErrorIs(t, err, types.ErrInvalidAssetInfo)
}

func TestCanonicalizeHumanizeCmd(t *testing.T) {
	addr := testAddr(t, "alice")

	hexAddr, err := runAssetCmd(t, "canonicalize", addr)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hexAddr, "616C696365"))

	human, err := runAssetCmd(t, "humanize", hexAddr)
	require.NoError(t, err)
	require.Equal(t, addr, human)

	_, err = runAssetCmd(t, "canonicalize", "cosmos1invalid")
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	_, err = runAssetCmd(t, "humanize", "zz")
	require.ErrorIs(t, err, types.ErrInvalidAddress)
}

func TestTransferMsgCmd(t *testing.T) {
	recipient := testAddr(t, "bob")
	token := testAddr(t, "token")

	out, err := runAssetCmd(t, "transfer-msg", recipient,
		`{"info":{"native_token":{"denom":"uusd"}},"amount":"100"}`, "--output", "json")
	require.NoError(t, err)
	require.JSONEq(t,
		`{"bank":{"send":{"to_address":"`+recipient+`","amount":[{"denom":"uusd","amount":"100"}]}}}`,
		out)

	out, err = runAssetCmd(t, "transfer-msg", recipient,
		`{"info":{"token":{"contract_addr":"`+token+`"}},"amount":"7"}`, "--output", "json", "--"+FlagSubMsg)
	require.NoError(t, err)

	var subMsg types.SubMsg
	require.NoError(t, json.Unmarshal([]byte(out), &subMsg))
	require.Equal(t, types.ReplyNever, subMsg.ReplyOn)
	require.NotNil(t, subMsg.Msg.Wasm)
	require.Equal(t, token, subMsg.Msg.Wasm.Execute.ContractAddr)
	require.JSONEq(t,
		`{"transfer":{"recipient":"`+recipient+`","amount":"7"}}`,
		string(subMsg.Msg.Wasm.Execute.Msg))

	_, err = runAssetCmd(t, "transfer-msg", strings.ToUpper(recipient),
		`{"info":{"native_token":{"denom":"uusd"}},"amount":"100"}`)
	require.ErrorIs(t, err, types.ErrInvalidAddress)
}

func TestCheckFundsCmd(t *testing.T) {
	asset := `{"info":{"native_token":{"denom":"uusd"}},"amount":"100"}`

	out, err := runAssetCmd(t, "check-funds", asset, "5uluna,100uusd")
	require.NoError(t, err)
	require.Equal(t, "ok: 100uusd", out)

	_, err = runAssetCmd(t, "check-funds", asset, "99uusd")
	require.ErrorIs(t, err, types.ErrBalanceMismatch)

	_, err = runAssetCmd(t, "check-funds", asset)
	require.ErrorIs(t, err, types.ErrBalanceMismatch)

	_, err = runAssetCmd(t, "check-funds", `{"info":{"native_token":{"denom":"uusd"}},"amount":"0"}`)
	require.NoError(t, err)
}
