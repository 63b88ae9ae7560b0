package types_test

import (
	"strings"
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	"pgregory.net/rapid"

	"github.com/paw-chain/vault-network/x/asset/types"
)

func assetInfoGen(t *rapid.T) types.AssetInfo {
	if rapid.Bool().Draw(t, "native") {
		return types.NewNativeAssetInfo(rapid.StringMatching(`[a-z][a-z0-9/]{2,40}`).Draw(t, "denom"))
	}

	bz := rapid.SliceOfN(rapid.Byte(), 20, 32).Draw(t, "addr")
	addr, err := bech32.ConvertAndEncode(testPrefix, bz)
	if err != nil {
		t.Fatalf("encode address: %v", err)
	}
	if rapid.Bool().Draw(t, "upper") {
		addr = strings.ToUpper(addr)
	}
	return types.NewTokenAssetInfo(addr)
}

func TestPropertyRawRoundTrip(t *testing.T) {
	codec := types.NewBech32AddressCodec(testPrefix)

	rapid.Check(t, func(t *rapid.T) {
		info := assetInfoGen(t)

		raw, err := info.ToRaw(codec)
		if err != nil {
			t.Fatalf("to raw: %v", err)
		}
		back, err := raw.ToNormal(codec)
		if err != nil {
			t.Fatalf("to normal: %v", err)
		}
		if !back.Equal(info) {
			t.Fatalf("round trip changed %v into %v", info, back)
		}

		again, err := back.ToRaw(codec)
		if err != nil {
			t.Fatalf("to raw again: %v", err)
		}
		if !again.Equal(raw) {
			t.Fatal("raw form is not stable")
		}
	})
}

func TestPropertyEqual(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := assetInfoGen(t)
		b := assetInfoGen(t)

		if !a.Equal(a) {
			t.Fatalf("%v not equal to itself", a)
		}
		if a.Equal(b) != b.Equal(a) {
			t.Fatalf("equal is not symmetric for %v and %v", a, b)
		}

		s := a.String()
		if types.NewNativeAssetInfo(s).Equal(types.NewTokenAssetInfo(s)) {
			t.Fatalf("native and token %q compare equal", s)
		}
	})
}

func TestPropertyIBCLabel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hash := rapid.StringMatching(`[A-Za-z0-9]{64}`).Draw(t, "hash")

		label, ok := types.IBCTokenLabel("ibc/" + hash)
		if !ok {
			t.Fatalf("ibc/%s not detected", hash)
		}
		if label != "ibc/"+hash[:4]+"..."+hash[60:] {
			t.Fatalf("unexpected label %s for %s", label, hash)
		}

		n := rapid.IntRange(0, 63).Draw(t, "short")
		if types.IsIBCToken("ibc/" + hash[:n]) {
			t.Fatalf("short hash of %d chars detected", n)
		}
		if types.IsIBCToken("ibc/" + hash + strings.Repeat("f", rapid.IntRange(1, 8).Draw(t, "extra"))) {
			t.Fatal("long hash detected")
		}
	})
}

func TestPropertyAssertSentNativeTokenBalance(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		amount := rapid.Int64Range(0, 1<<40).Draw(t, "amount")
		sent := rapid.Int64Range(0, 1<<40).Draw(t, "sent")
		asset := types.NewAsset(types.NewNativeAssetInfo("uusd"), sdkmath.NewInt(amount))

		err := asset.AssertSentNativeTokenBalance(sdk.Coins{sdk.NewInt64Coin("uusd", sent)})
		if (err == nil) != (amount == sent) {
			t.Fatalf("amount %d sent %d: unexpected result %v", amount, sent, err)
		}

		err = asset.AssertSentNativeTokenBalance(nil)
		if (err == nil) != (amount == 0) {
			t.Fatalf("amount %d without funds: unexpected result %v", amount, err)
		}
	})
}
