package types_test

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/types/bech32"

	"github.com/paw-chain/vault-network/x/asset/types"
)

const testPrefix = "cosmos"

// testAddr returns a bech32 address whose 20 bytes start with seed.
func testAddr(seed string) string {
	bz := make([]byte, 20)
	copy(bz, seed)
	addr, err := bech32.ConvertAndEncode(testPrefix, bz)
	if err != nil {
		panic(err)
	}
	return addr
}

type fakeQuerier struct {
	native         map[string]sdkmath.Int // holder|denom
	tokens         map[string]sdkmath.Int // token|holder
	tokenInfo      map[string]types.TokenInfoResponse
	nativeDecimals map[string]uint8 // account|denom
	calls          []string
}

func newFakeQuerier() *fakeQuerier {
	return &fakeQuerier{
		native:         map[string]sdkmath.Int{},
		tokens:         map[string]sdkmath.Int{},
		tokenInfo:      map[string]types.TokenInfoResponse{},
		nativeDecimals: map[string]uint8{},
	}
}

func (f *fakeQuerier) QueryBalance(_ context.Context, holder, denom string) (sdkmath.Int, error) {
	f.calls = append(f.calls, "native:"+holder+":"+denom)
	if amount, ok := f.native[holder+"|"+denom]; ok {
		return amount, nil
	}
	return sdkmath.ZeroInt(), nil
}

func (f *fakeQuerier) QueryTokenBalance(_ context.Context, tokenAddr, holder string) (sdkmath.Int, error) {
	f.calls = append(f.calls, "token:"+tokenAddr+":"+holder)
	if amount, ok := f.tokens[tokenAddr+"|"+holder]; ok {
		return amount, nil
	}
	return sdkmath.Int{}, types.ErrQuery.Wrapf("unknown token %s", tokenAddr)
}

func (f *fakeQuerier) QueryNativeDecimals(_ context.Context, account, denom string) (uint8, error) {
	f.calls = append(f.calls, "native_decimals:"+account+":"+denom)
	if decimals, ok := f.nativeDecimals[account+"|"+denom]; ok {
		return decimals, nil
	}
	return 0, types.ErrQuery.Wrapf("unknown denom %s", denom)
}

func (f *fakeQuerier) QueryTokenInfo(_ context.Context, tokenAddr string) (types.TokenInfoResponse, error) {
	f.calls = append(f.calls, "token_info:"+tokenAddr)
	if info, ok := f.tokenInfo[tokenAddr]; ok {
		return info, nil
	}
	return types.TokenInfoResponse{}, types.ErrQuery.Wrap(fmt.Sprintf("unknown token %s", tokenAddr))
}
