package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/vault-network/x/asset/types"
)

// MockCW20 is an in-memory CW20 token contract.
type MockCW20 struct {
	Info     types.TokenInfoResponse
	Balances map[string]sdkmath.Int
}

// ExecuteCall records a contract execution seen by MockWasmKeeper.
type ExecuteCall struct {
	Contract string
	Caller   string
	Msg      []byte
	Funds    sdk.Coins
}

// MockWasmKeeper serves CW20 balance/token_info queries, factory
// native_token_decimals queries and CW20 transfers.
type MockWasmKeeper struct {
	Tokens         map[string]*MockCW20
	NativeDecimals map[string]map[string]uint8
	Calls          []ExecuteCall
	Queries        int
}

// NewMockWasmKeeper returns an empty mock wasm keeper.
func NewMockWasmKeeper() *MockWasmKeeper {
	return &MockWasmKeeper{
		Tokens:         map[string]*MockCW20{},
		NativeDecimals: map[string]map[string]uint8{},
	}
}

// AddToken deploys a mock CW20 at addr.
func (m *MockWasmKeeper) AddToken(addr sdk.AccAddress, name, symbol string, decimals uint8) *MockCW20 {
	token := &MockCW20{
		Info: types.TokenInfoResponse{
			Name:        name,
			Symbol:      symbol,
			Decimals:    decimals,
			TotalSupply: sdkmath.ZeroInt(),
		},
		Balances: map[string]sdkmath.Int{},
	}
	m.Tokens[addr.String()] = token
	return token
}

// Mint credits amount tokens to holder.
func (t *MockCW20) Mint(holder sdk.AccAddress, amount sdkmath.Int) {
	t.Balances[holder.String()] = t.balance(holder.String()).Add(amount)
	t.Info.TotalSupply = t.Info.TotalSupply.Add(amount)
}

// BalanceOf returns the balance of holder.
func (t *MockCW20) BalanceOf(holder sdk.AccAddress) sdkmath.Int {
	return t.balance(holder.String())
}

func (t *MockCW20) balance(holder string) sdkmath.Int {
	if b, ok := t.Balances[holder]; ok {
		return b
	}
	return sdkmath.ZeroInt()
}

// SetNativeDecimals registers decimals for denom in the factory at factory.
func (m *MockWasmKeeper) SetNativeDecimals(factory sdk.AccAddress, denom string, decimals uint8) {
	if m.NativeDecimals[factory.String()] == nil {
		m.NativeDecimals[factory.String()] = map[string]uint8{}
	}
	m.NativeDecimals[factory.String()][denom] = decimals
}

// QuerySmart implements types.WasmKeeper.
func (m *MockWasmKeeper) QuerySmart(_ context.Context, contractAddr sdk.AccAddress, req []byte) ([]byte, error) {
	m.Queries++

	if registry, ok := m.NativeDecimals[contractAddr.String()]; ok {
		var msg types.FactoryQueryMsg
		if err := json.Unmarshal(req, &msg); err != nil || msg.NativeTokenDecimals == nil {
			return nil, fmt.Errorf("unsupported factory query: %s", req)
		}
		decimals, found := registry[msg.NativeTokenDecimals.Denom]
		if !found {
			return nil, fmt.Errorf("denom %s not registered", msg.NativeTokenDecimals.Denom)
		}
		return json.Marshal(types.NativeTokenDecimalsResponse{Decimals: decimals})
	}

	token, ok := m.Tokens[contractAddr.String()]
	if !ok {
		return nil, fmt.Errorf("no such contract: %s", contractAddr)
	}

	var msg types.Cw20QueryMsg
	if err := json.Unmarshal(req, &msg); err != nil {
		return nil, err
	}
	switch {
	case msg.Balance != nil:
		return json.Marshal(types.Cw20BalanceResponse{Balance: token.balance(msg.Balance.Address)})
	case msg.TokenInfo != nil:
		return json.Marshal(token.Info)
	default:
		return nil, fmt.Errorf("unsupported cw20 query: %s", req)
	}
}

// Execute implements types.WasmKeeper. Only CW20 transfer is supported.
func (m *MockWasmKeeper) Execute(_ context.Context, contractAddr, caller sdk.AccAddress, msg []byte, coins sdk.Coins) ([]byte, error) {
	m.Calls = append(m.Calls, ExecuteCall{
		Contract: contractAddr.String(),
		Caller:   caller.String(),
		Msg:      msg,
		Funds:    coins,
	})

	token, ok := m.Tokens[contractAddr.String()]
	if !ok {
		return nil, fmt.Errorf("no such contract: %s", contractAddr)
	}

	var exec types.Cw20ExecuteMsg
	if err := json.Unmarshal(msg, &exec); err != nil {
		return nil, err
	}
	if exec.Transfer == nil {
		return nil, fmt.Errorf("unsupported cw20 execute: %s", msg)
	}

	from := token.balance(caller.String())
	if from.LT(exec.Transfer.Amount) {
		return nil, fmt.Errorf("insufficient funds: %s < %s", from, exec.Transfer.Amount)
	}
	token.Balances[caller.String()] = from.Sub(exec.Transfer.Amount)
	token.Balances[exec.Transfer.Recipient] = token.balance(exec.Transfer.Recipient).Add(exec.Transfer.Amount)
	return nil, nil
}
