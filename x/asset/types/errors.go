package types

import (
	"cosmossdk.io/errors"
)

// Asset module sentinel errors
var (
	ErrInvalidAddress    = errors.Register(ModuleName, 2, "invalid address")
	ErrQuery             = errors.Register(ModuleName, 3, "query failed")
	ErrBalanceMismatch   = errors.Register(ModuleName, 4, "native token balance mismatch between the argument and the transferred")
	ErrInvalidAssetInfo  = errors.Register(ModuleName, 5, "invalid asset info")
	ErrInvalidAmount     = errors.Register(ModuleName, 6, "invalid amount")
	ErrInvalidPair       = errors.Register(ModuleName, 7, "invalid pair")
	ErrPairNotFound      = errors.Register(ModuleName, 8, "pair not found")
	ErrPairAlreadyExists = errors.Register(ModuleName, 9, "pair already exists")
	ErrInvalidMsg        = errors.Register(ModuleName, 10, "invalid message")
)
