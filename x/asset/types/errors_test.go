package types

import (
	"errors"
	"testing"

	sdkerrors "cosmossdk.io/errors"
)

func TestErrorDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode uint32
	}{
		{"ErrInvalidAddress", ErrInvalidAddress, 2},
		{"ErrQuery", ErrQuery, 3},
		{"ErrBalanceMismatch", ErrBalanceMismatch, 4},
		{"ErrInvalidAssetInfo", ErrInvalidAssetInfo, 5},
		{"ErrInvalidAmount", ErrInvalidAmount, 6},
		{"ErrInvalidPair", ErrInvalidPair, 7},
		{"ErrPairNotFound", ErrPairNotFound, 8},
		{"ErrPairAlreadyExists", ErrPairAlreadyExists, 9},
		{"ErrInvalidMsg", ErrInvalidMsg, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sdkErr *sdkerrors.Error
			if !errors.As(tt.err, &sdkErr) {
				t.Fatalf("Error is not an sdkerrors.Error")
			}

			if sdkErr.ABCICode() != tt.wantCode {
				t.Errorf("Expected code %d, got %d", tt.wantCode, sdkErr.ABCICode())
			}

			if sdkErr.Codespace() != ModuleName {
				t.Errorf("Expected codespace %s, got %s", ModuleName, sdkErr.Codespace())
			}

			if tt.err.Error() == "" {
				t.Error("Error message should not be empty")
			}
		})
	}
}

func TestWrappedErrorsKeepIdentity(t *testing.T) {
	err := sdkerrors.Wrapf(ErrBalanceMismatch, "expected %d", 10)
	if !errors.Is(err, ErrBalanceMismatch) {
		t.Fatal("wrapped error lost its identity")
	}
	if errors.Is(err, ErrQuery) {
		t.Fatal("wrapped error matches an unrelated sentinel")
	}
}
