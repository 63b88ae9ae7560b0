package types

import (
	"encoding/json"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ReplyNever is the only reply mode produced for asset transfers.
const ReplyNever = "never"

// CosmosMsg is a message to be dispatched by the host chain. Exactly one field is set.
type CosmosMsg struct {
	Bank *BankMsg `json:"bank,omitempty"`
	Wasm *WasmMsg `json:"wasm,omitempty"`
}

// BankMsg moves native coins.
type BankMsg struct {
	Send *SendMsg `json:"send,omitempty"`
}

// SendMsg sends coins from the dispatching account to ToAddress.
type SendMsg struct {
	ToAddress string    `json:"to_address"`
	Amount    sdk.Coins `json:"amount"`
}

// WasmMsg calls into a contract.
type WasmMsg struct {
	Execute *ExecuteMsg `json:"execute,omitempty"`
}

// ExecuteMsg executes Msg on ContractAddr with Funds attached.
type ExecuteMsg struct {
	ContractAddr string    `json:"contract_addr"`
	Msg          []byte    `json:"msg"`
	Funds        sdk.Coins `json:"funds"`
}

// SubMsg wraps a CosmosMsg with reply settings.
type SubMsg struct {
	ID       uint64    `json:"id"`
	Msg      CosmosMsg `json:"msg"`
	GasLimit *uint64   `json:"gas_limit"`
	ReplyOn  string    `json:"reply_on"`
}

// NewSubMsg wraps msg in a SubMsg that never replies.
func NewSubMsg(msg CosmosMsg) SubMsg {
	return SubMsg{Msg: msg, ReplyOn: ReplyNever}
}

// ValidateBasic checks that exactly one message variant is populated.
func (m CosmosMsg) ValidateBasic() error {
	switch {
	case m.Bank != nil && m.Wasm == nil:
		if m.Bank.Send == nil {
			return ErrInvalidMsg.Wrap("empty bank message")
		}
		if m.Bank.Send.ToAddress == "" {
			return ErrInvalidMsg.Wrap("missing recipient")
		}
		return nil
	case m.Wasm != nil && m.Bank == nil:
		if m.Wasm.Execute == nil {
			return ErrInvalidMsg.Wrap("empty wasm message")
		}
		if m.Wasm.Execute.ContractAddr == "" {
			return ErrInvalidMsg.Wrap("missing contract address")
		}
		return nil
	default:
		return ErrInvalidMsg.Wrap("exactly one of bank or wasm must be set")
	}
}

// Cw20ExecuteMsg is the subset of the CW20 execute API used for transfers.
type Cw20ExecuteMsg struct {
	Transfer *Cw20TransferMsg `json:"transfer,omitempty"`
}

// Cw20TransferMsg moves Amount tokens from the sender to Recipient.
type Cw20TransferMsg struct {
	Recipient string      `json:"recipient"`
	Amount    sdkmath.Int `json:"amount"`
}

// Cw20QueryMsg is the subset of the CW20 query API used by the balance querier.
type Cw20QueryMsg struct {
	Balance   *Cw20BalanceQuery   `json:"balance,omitempty"`
	TokenInfo *Cw20TokenInfoQuery `json:"token_info,omitempty"`
}

// Cw20BalanceQuery asks for the balance of Address.
type Cw20BalanceQuery struct {
	Address string `json:"address"`
}

// Cw20TokenInfoQuery asks for the token metadata.
type Cw20TokenInfoQuery struct{}

// Cw20BalanceResponse is the reply to Cw20BalanceQuery.
type Cw20BalanceResponse struct {
	Balance sdkmath.Int `json:"balance"`
}

// TokenInfoResponse is the reply to Cw20TokenInfoQuery.
type TokenInfoResponse struct {
	Name        string      `json:"name"`
	Symbol      string      `json:"symbol"`
	Decimals    uint8       `json:"decimals"`
	TotalSupply sdkmath.Int `json:"total_supply"`
}

// FactoryQueryMsg is the subset of the pair factory query API used to resolve
// native token decimals.
type FactoryQueryMsg struct {
	NativeTokenDecimals *NativeTokenDecimalsQuery `json:"native_token_decimals,omitempty"`
}

// NativeTokenDecimalsQuery asks the factory for the decimals registered for Denom.
type NativeTokenDecimalsQuery struct {
	Denom string `json:"denom"`
}

// NativeTokenDecimalsResponse is the reply to NativeTokenDecimalsQuery.
type NativeTokenDecimalsResponse struct {
	Decimals uint8 `json:"decimals"`
}

// NewCw20TransferMsg encodes a CW20 transfer of amount to recipient.
func NewCw20TransferMsg(recipient string, amount sdkmath.Int) ([]byte, error) {
	return json.Marshal(Cw20ExecuteMsg{
		Transfer: &Cw20TransferMsg{
			Recipient: recipient,
			Amount:    amount,
		},
	})
}
