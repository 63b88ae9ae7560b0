package types

import (
	"bytes"
	"fmt"
	"strings"

	"cosmossdk.io/core/address"
	errorsmod "cosmossdk.io/errors"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
)

// CanonicalAddr is the binary form of an address as kept in persisted state.
// It encodes to JSON as base64.
type CanonicalAddr []byte

// Bytes returns the raw address bytes.
func (a CanonicalAddr) Bytes() []byte {
	return a
}

// Equals reports whether both addresses hold the same bytes.
func (a CanonicalAddr) Equals(other CanonicalAddr) bool {
	return bytes.Equal(a, other)
}

// String returns the upper case hex encoding of the address.
func (a CanonicalAddr) String() string {
	return fmt.Sprintf("%X", []byte(a))
}

var _ AddressCodec = Bech32AddressCodec{}

// Bech32AddressCodec implements AddressCodec on top of the SDK bech32 codec.
type Bech32AddressCodec struct {
	prefix string
	codec  address.Codec
}

// NewBech32AddressCodec creates a codec for addresses with the given human readable prefix.
func NewBech32AddressCodec(prefix string) Bech32AddressCodec {
	return Bech32AddressCodec{
		prefix: prefix,
		codec:  addresscodec.NewBech32Codec(prefix),
	}
}

// Prefix returns the bech32 human readable part handled by the codec.
func (c Bech32AddressCodec) Prefix() string {
	return c.prefix
}

// Canonicalize implements AddressCodec.
func (c Bech32AddressCodec) Canonicalize(human string) (CanonicalAddr, error) {
	if strings.TrimSpace(human) == "" {
		return nil, errorsmod.Wrap(ErrInvalidAddress, "empty address")
	}

	bz, err := c.codec.StringToBytes(human)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidAddress, "%s: %s", human, err)
	}
	return CanonicalAddr(bz), nil
}

// Humanize implements AddressCodec.
func (c Bech32AddressCodec) Humanize(canonical CanonicalAddr) (string, error) {
	if len(canonical) == 0 {
		return "", errorsmod.Wrap(ErrInvalidAddress, "empty canonical address")
	}

	human, err := c.codec.BytesToString(canonical)
	if err != nil {
		return "", errorsmod.Wrapf(ErrInvalidAddress, "%s: %s", canonical, err)
	}
	return human, nil
}

// Validate implements AddressCodec. Upper case input decodes fine but is
// rejected here because it is not the normalized form.
func (c Bech32AddressCodec) Validate(human string) (string, error) {
	canonical, err := c.Canonicalize(human)
	if err != nil {
		return "", err
	}

	normalized, err := c.Humanize(canonical)
	if err != nil {
		return "", err
	}

	if normalized != human {
		return "", errorsmod.Wrapf(ErrInvalidAddress, "address not normalized: %s", human)
	}
	return normalized, nil
}
